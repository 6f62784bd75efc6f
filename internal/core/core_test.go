package core

import (
	"math"
	"testing"
	"time"

	lifecore "sparse-life/pkg/core"
)

func TestPlotWindow(t *testing.T) {
	g := NewByteGrid(4, 3)
	live := lifecore.CellSetOf(
		lifecore.Coord{X: 10, Y: 20}, // bottom-left
		lifecore.Coord{X: 13, Y: 22}, // top-right
		lifecore.Coord{X: 14, Y: 20}, // right of window
		lifecore.Coord{X: 10, Y: 19}, // below window
	)
	g.Plot(live, lifecore.Coord{X: 10, Y: 20})

	want := map[[2]int]bool{{0, 2}: true, {3, 0}: true}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Cells()[g.Index(x, y)] == 1
			if alive != want[[2]int{x, y}] {
				t.Fatalf("pixel (%d,%d) alive=%v, expected %v", x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestPlotClearsAndHandlesExtremes(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Cells()[0] = 1
	live := lifecore.CellSetOf(
		lifecore.Coord{X: math.MaxInt64, Y: math.MaxInt64},
		lifecore.Coord{X: math.MinInt64, Y: math.MinInt64},
	)
	g.Plot(live, lifecore.Coord{X: math.MinInt64, Y: math.MinInt64})
	cells := g.Cells()
	if cells[g.Index(0, 1)] != 1 {
		t.Fatal("corner cell at the window origin not plotted")
	}
	if cells[0] != 0 || cells[1] != 0 || cells[3] != 0 {
		t.Fatalf("stale or far-away cells plotted: %v", cells)
	}
}

func TestNewByteGridClampsSize(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("unexpected grid %dx%d len=%d", g.W, g.H, len(g.Cells()))
	}
}

func TestFixedStep(t *testing.T) {
	fs := NewFixedStep(4)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
	start := time.Unix(100, 0)
	if !fs.advance(start) {
		t.Fatal("first step should fire immediately")
	}
	if fs.advance(start.Add(100 * time.Millisecond)) {
		t.Fatal("stepped before the interval elapsed")
	}
	if !fs.advance(start.Add(260 * time.Millisecond)) {
		t.Fatal("did not step after the interval elapsed")
	}
	fs.SetRate(0)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("non-positive rate should fall back to 10/s, got %v", fs.Interval())
	}
}
