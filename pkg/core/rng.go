package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Soup scatters live cells over the w*h rectangle whose lowest corner is
// origin, each cell alive with the given probability. Positions that would
// fall outside b are skipped.
func (r *RNG) Soup(origin Coord, w, h int, density float64, b Bounds) CellSet {
	out := NewCellSet(0)
	if w <= 0 || h <= 0 || density <= 0 || !b.Contains(origin) {
		return out
	}
	for dy := 0; dy < h; dy++ {
		if !fits(origin.Y, int64(dy), b.Max) {
			break
		}
		for dx := 0; dx < w; dx++ {
			if !fits(origin.X, int64(dx), b.Max) {
				break
			}
			if r.r.Float64() < density {
				out.Insert(Coord{X: origin.X + int64(dx), Y: origin.Y + int64(dy)})
			}
		}
	}
	return out
}

// fits reports whether v+d stays at or below hi for v <= hi and d >= 0.
// The unsigned difference is exact even when hi-v overflows int64.
func fits(v, d, hi int64) bool {
	return uint64(hi-v) >= uint64(d)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
