package life

import (
	"errors"
	"fmt"
	"sync"

	"sparse-life/pkg/core"
)

// ErrPoolClosed is returned by Next once Close has been called.
var ErrPoolClosed = errors.New("life: pool closed")

// WorkerError reports a worker that panicked while evaluating a chunk. The
// generation it belonged to is discarded.
type WorkerError struct {
	Chunk int
	Value any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("life: worker failed on chunk %d: %v", e.Chunk, e.Value)
}

type evalFunc func(core.Coord, core.CellSet, core.Bounds) bool

type job struct {
	chunk   int
	cells   []core.Coord
	live    core.CellSet
	results chan<- chunkResult
}

type chunkResult struct {
	chunk int
	alive []core.Coord
	err   *WorkerError
}

// Pool is a fixed set of worker goroutines that evaluate candidate chunks. It
// is created once per simulation and reused for every generation.
type Pool struct {
	workers int
	bounds  core.Bounds
	eval    evalFunc

	jobs chan job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool starts workers goroutines. Non-positive counts run a single worker.
func NewPool(workers int, b core.Bounds) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{
		workers: workers,
		bounds:  b,
		eval:    AliveNext,
		jobs:    make(chan job),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				j.results <- p.evaluate(j)
			}
		}()
	}
	return p
}

// Workers returns the pool size.
func (p *Pool) Workers() int { return p.workers }

// Next computes the generation following live. The candidates are split into
// at most Workers contiguous chunks; every chunk result is merged on the
// calling goroutine, so the accumulator has a single writer.
func (p *Pool) Next(live core.CellSet) (core.CellSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return core.CellSet{}, ErrPoolClosed
	}
	if live.Len() == 0 {
		return core.NewCellSet(0), nil
	}

	chunks := Partition(Candidates(live, p.bounds).Slice(), p.workers)
	// Buffered so workers never block on delivery while jobs are still being
	// handed out.
	results := make(chan chunkResult, len(chunks))
	for i, cells := range chunks {
		p.jobs <- job{chunk: i, cells: cells, live: live, results: results}
	}

	next := core.NewCellSet(live.Len())
	var failed *WorkerError
	for range chunks {
		r := <-results
		if r.err != nil {
			if failed == nil || r.err.Chunk < failed.Chunk {
				failed = r.err
			}
			continue
		}
		for _, c := range r.alive {
			next.Insert(c)
		}
	}
	if failed != nil {
		return core.CellSet{}, failed
	}
	return next, nil
}

func (p *Pool) evaluate(j job) (res chunkResult) {
	res.chunk = j.chunk
	defer func() {
		if v := recover(); v != nil {
			res.alive = nil
			res.err = &WorkerError{Chunk: j.chunk, Value: v}
		}
	}()
	alive := make([]core.Coord, 0, len(j.cells)/4+1)
	for _, c := range j.cells {
		if p.eval(c, j.live, p.bounds) {
			alive = append(alive, c)
		}
	}
	res.alive = alive
	return res
}

// Close stops the workers. It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
	p.wg.Wait()
}

// Partition splits cells into at most n contiguous, non-empty chunks whose
// sizes differ by at most one.
func Partition(cells []core.Coord, n int) [][]core.Coord {
	if len(cells) == 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > len(cells) {
		n = len(cells)
	}
	size, rem := len(cells)/n, len(cells)%n
	out := make([][]core.Coord, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i < rem {
			end++
		}
		out = append(out, cells[start:end:end])
		start = end
	}
	return out
}

// NextGeneration runs a single step on a short-lived pool.
func NextGeneration(live core.CellSet, workers int, b core.Bounds) (core.CellSet, error) {
	p := NewPool(workers, b)
	defer p.Close()
	return p.Next(live)
}
