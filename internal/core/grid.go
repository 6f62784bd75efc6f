package core

import lifecore "sparse-life/pkg/core"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Plot clears the grid and marks every live cell inside the window whose
// bottom-left plane coordinate is origin. Plane y grows upwards while grid
// rows grow downwards, so the top row holds origin.Y+H-1.
func (g *ByteGrid) Plot(live lifecore.CellSet, origin lifecore.Coord) {
	g.Clear()
	w, h := uint64(g.W), uint64(g.H)
	live.All(func(c lifecore.Coord) bool {
		if c.X < origin.X || c.Y < origin.Y {
			return true
		}
		// Differences are taken unsigned so far-apart int64 values cannot overflow.
		dx, dy := uint64(c.X-origin.X), uint64(c.Y-origin.Y)
		if dx >= w || dy >= h {
			return true
		}
		g.data[g.Index(int(dx), g.H-1-int(dy))] = 1
		return true
	})
}
