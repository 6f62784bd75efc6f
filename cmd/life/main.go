// Command life reads a population from stdin, evolves it and prints the
// result in Life 1.06 format.
//
// Input is a cell count followed by one "x, y" pair per line.
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"sparse-life/internal/lifeio"
	"sparse-life/pkg/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := life.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	in := flag.String("in", "", "read the population from this file instead of stdin")
	verbose := flag.Bool("v", false, "log timing to stderr")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	initial, err := lifeio.ReadCells(bufio.NewReader(r), cfg.Bounds)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	start := time.Now()
	final, err := life.Run(initial, cfg)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
	if *verbose {
		log.Printf("%d cells -> %d cells after %d generations on %d workers (%s)",
			initial.Len(), final.Len(), cfg.Generations, cfg.Workers, time.Since(start).Round(time.Microsecond))
	}

	if err := lifeio.WriteLife106(os.Stdout, final); err != nil {
		log.Fatalf("write output: %v", err)
	}
}
