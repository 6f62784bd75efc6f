package life

import (
	"errors"
	"fmt"

	"sparse-life/pkg/core"
)

// ErrInvalidBounds is returned for a configuration whose Min exceeds Max.
var ErrInvalidBounds = errors.New("life: bounds minimum exceeds maximum")

// Simulation owns the current generation and the worker pool that produces
// the next one. Only the latest live set is retained.
type Simulation struct {
	cfg  Config
	pool *Pool
	live core.CellSet
	gen  int
}

// NewSimulation starts a pool sized by cfg.Workers. Cells of initial outside
// cfg.Bounds are dropped. Callers must Close the simulation when done.
func NewSimulation(initial core.CellSet, cfg Config) (*Simulation, error) {
	if !cfg.Bounds.Valid() {
		return nil, ErrInvalidBounds
	}
	s := &Simulation{cfg: cfg, pool: NewPool(cfg.Workers, cfg.Bounds)}
	s.Reset(initial)
	return s, nil
}

// Config returns the configuration the simulation was created with.
func (s *Simulation) Config() Config { return s.cfg }

// Live returns the current generation. It must be treated as read-only.
func (s *Simulation) Live() core.CellSet { return s.live }

// Generation returns how many steps have been applied since the last Reset.
func (s *Simulation) Generation() int { return s.gen }

// Reset replaces the live set and rewinds the generation counter.
func (s *Simulation) Reset(live core.CellSet) {
	s.live = clip(live, s.cfg.Bounds)
	s.gen = 0
}

// Step advances one generation. On error the current generation is kept.
func (s *Simulation) Step() error {
	next, err := s.pool.Next(s.live)
	if err != nil {
		return fmt.Errorf("generation %d: %w", s.gen+1, err)
	}
	s.live = next
	s.gen++
	return nil
}

// Close releases the worker pool.
func (s *Simulation) Close() { s.pool.Close() }

// Run evolves initial for cfg.Generations steps on one pool and returns the
// final live set.
func Run(initial core.CellSet, cfg Config) (core.CellSet, error) {
	s, err := NewSimulation(initial, cfg)
	if err != nil {
		return core.CellSet{}, err
	}
	defer s.Close()
	for s.Generation() < cfg.Generations {
		if err := s.Step(); err != nil {
			return core.CellSet{}, err
		}
	}
	return s.Live(), nil
}

func clip(live core.CellSet, b core.Bounds) core.CellSet {
	inside := true
	live.All(func(c core.Coord) bool {
		inside = b.Contains(c)
		return inside
	})
	if inside {
		return live
	}
	out := core.NewCellSet(live.Len())
	live.All(func(c core.Coord) bool {
		if b.Contains(c) {
			out.Insert(c)
		}
		return true
	})
	return out
}
