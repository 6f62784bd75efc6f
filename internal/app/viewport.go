package app

import (
	"fmt"
	"os"

	"sparse-life/internal/core"
	"sparse-life/internal/lifeio"
	lifecore "sparse-life/pkg/core"
	"sparse-life/pkg/sims/life"
)

// SoupPattern seeds a random population over the middle of the viewport.
const SoupPattern = "soup"

const soupDensity = 0.35

// Viewport adapts a sparse Life simulation to core.Sim by rasterising a
// fixed-size window of the unbounded plane.
type Viewport struct {
	sim     *life.Simulation
	grid    *core.ByteGrid
	origin  lifecore.Coord
	pattern string
	loaded  lifecore.CellSet
	hasFile bool
}

// NewViewport builds the simulation described by cfg. The window starts
// centred on (0, 0) when the bounds allow it.
func NewViewport(cfg Config) (*Viewport, error) {
	v := &Viewport{
		grid:    core.NewByteGrid(cfg.Width, cfg.Height),
		pattern: cfg.Pattern,
	}
	b := cfg.Life.Bounds
	v.origin = lifecore.Coord{X: -int64(v.grid.W / 2), Y: -int64(v.grid.H / 2)}
	if !b.Contains(v.origin) {
		v.origin = lifecore.Coord{X: b.Min, Y: b.Min}
	}

	if cfg.File != "" {
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		cells, err := lifeio.ReadLife106(f, b)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", cfg.File, err)
		}
		v.loaded, v.hasFile = cells, true
	} else if _, ok := life.Pattern(cfg.Pattern); !ok && cfg.Pattern != SoupPattern {
		return nil, fmt.Errorf("unknown pattern %q", cfg.Pattern)
	}

	sim, err := life.NewSimulation(lifecore.NewCellSet(0), cfg.Life)
	if err != nil {
		return nil, err
	}
	v.sim = sim
	if err := v.Reset(cfg.Seed); err != nil {
		sim.Close()
		return nil, err
	}
	return v, nil
}

// Name returns the simulation identifier.
func (v *Viewport) Name() string { return "life" }

// Size returns the window dimensions.
func (v *Viewport) Size() core.Size { return core.Size{W: v.grid.W, H: v.grid.H} }

// Reset restores the starting population. The seed only affects the soup.
func (v *Viewport) Reset(seed int64) error {
	switch {
	case v.hasFile:
		v.sim.Reset(v.loaded)
	case v.pattern == SoupPattern:
		b := v.sim.Config().Bounds
		start := lifecore.Coord{
			X: shift(v.origin.X, int64(v.grid.W/4), b),
			Y: shift(v.origin.Y, int64(v.grid.H/4), b),
		}
		v.sim.Reset(lifecore.NewRNG(seed).Soup(start, v.grid.W/2, v.grid.H/2, soupDensity, b))
	default:
		cells, ok := life.Pattern(v.pattern)
		if !ok {
			return fmt.Errorf("unknown pattern %q", v.pattern)
		}
		v.sim.Reset(cells)
	}
	return nil
}

// Step advances one generation.
func (v *Viewport) Step() error { return v.sim.Step() }

// Cells rasterises the visible part of the current generation.
func (v *Viewport) Cells() []uint8 {
	v.grid.Plot(v.sim.Live(), v.origin)
	return v.grid.Cells()
}

// Pan moves the window by dx, dy cells, stopping at the bounds.
func (v *Viewport) Pan(dx, dy int) {
	b := v.sim.Config().Bounds
	v.origin.X = shift(v.origin.X, int64(dx), b)
	v.origin.Y = shift(v.origin.Y, int64(dy), b)
}

// Stats reports the HUD statistics.
func (v *Viewport) Stats() core.Stats {
	return core.Stats{
		Generation: v.sim.Generation(),
		Population: v.sim.Live().Len(),
		Workers:    v.sim.Config().Workers,
		OriginX:    v.origin.X,
		OriginY:    v.origin.Y,
	}
}

// Close releases the simulation's worker pool.
func (v *Viewport) Close() { v.sim.Close() }

// shift adds d to v, saturating at the bounds. v must lie within b.
func shift(v, d int64, b lifecore.Bounds) int64 {
	switch {
	case d > 0 && uint64(b.Max-v) < uint64(d):
		return b.Max
	case d < 0 && uint64(v-b.Min) < uint64(-d):
		return b.Min
	}
	return v + d
}
