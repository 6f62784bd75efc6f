// Command life-sweep evolves random soups with several worker counts, checks
// that every worker count produces the same population and reports timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"sparse-life/pkg/core"
	"sparse-life/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	seed    int64
	workers int
}

type scenarioResult struct {
	scenario
	population int
	final      core.CellSet
	elapsed    time.Duration
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-sweep: ")

	generations := flag.Int("generations", 100, "generations to simulate per scenario")
	soups := flag.Int("soups", 4, "number of random soups")
	size := flag.Int("size", 64, "soup edge length in cells")
	density := flag.Float64("density", 0.35, "initial live-cell probability")
	workerList := flag.String("workers", "1,2,4,8", "comma-separated worker counts to compare")
	parallel := flag.Int("parallel", runtime.NumCPU(), "scenarios to run at once")
	flag.Parse()

	workerCounts, err := parseCounts(*workerList)
	if err != nil {
		log.Fatal(err)
	}

	var sets []scenario
	for seed := int64(1); seed <= int64(*soups); seed++ {
		for _, w := range workerCounts {
			sets = append(sets, scenario{seed: seed, workers: w})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d at once, %d generations, %dx%d soups)\n",
		len(sets), *parallel, *generations, *size, *size)

	results := make([]scenarioResult, len(sets))
	var g errgroup.Group
	g.SetLimit(*parallel)
	start := time.Now()
	for i, sc := range sets {
		g.Go(func() error {
			res, err := runScenario(sc, *generations, *size, *density)
			if err != nil {
				return fmt.Errorf("seed %d workers %d: %w", sc.seed, sc.workers, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	if err := checkAgreement(results); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].seed != results[j].seed {
			return results[i].seed < results[j].seed
		}
		return results[i].workers < results[j].workers
	})
	for _, res := range results {
		fmt.Printf("seed=%d workers=%d population=%d elapsed=%s\n",
			res.seed, res.workers, res.population, res.elapsed.Round(time.Microsecond))
	}
	fmt.Printf("\nAll worker counts agree (elapsed %s)\n", time.Since(start).Round(time.Millisecond))
}

func runScenario(sc scenario, generations, size int, density float64) (scenarioResult, error) {
	cfg := life.DefaultConfig()
	cfg.Generations = generations
	cfg.Workers = sc.workers

	initial := core.NewRNG(sc.seed).Soup(core.Coord{X: int64(-size / 2), Y: int64(-size / 2)}, size, size, density, cfg.Bounds)
	began := time.Now()
	final, err := life.Run(initial, cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	return scenarioResult{
		scenario:   sc,
		population: final.Len(),
		final:      final,
		elapsed:    time.Since(began),
	}, nil
}

// checkAgreement verifies that every run of a seed ended with the same cells.
func checkAgreement(results []scenarioResult) error {
	first := map[int64]scenarioResult{}
	for _, res := range results {
		ref, ok := first[res.seed]
		if !ok {
			first[res.seed] = res
			continue
		}
		if !ref.final.Equal(res.final) {
			return fmt.Errorf("seed %d: %d workers gave %d cells, %d workers gave %d cells",
				res.seed, ref.workers, ref.population, res.workers, res.population)
		}
	}
	return nil
}

func parseCounts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid worker count %q", field)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no worker counts given")
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
