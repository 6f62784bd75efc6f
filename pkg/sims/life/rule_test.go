package life

import (
	"testing"

	"sparse-life/pkg/core"
)

func TestAliveNextRules(t *testing.T) {
	b := core.DefaultBounds()
	ring := []core.Coord{
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: -1, Y: 0},
		{X: 1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	}
	center := core.Coord{}
	for n := 0; n <= 8; n++ {
		dead := core.CellSetOf(ring[:n]...)
		alive := dead.Clone()
		alive.Insert(center)

		if got, want := AliveNext(center, alive, b), n == 2 || n == 3; got != want {
			t.Fatalf("live cell with %d neighbours: got %v, want %v", n, got, want)
		}
		if got, want := AliveNext(center, dead, b), n == 3; got != want {
			t.Fatalf("dead cell with %d neighbours: got %v, want %v", n, got, want)
		}
	}
}

func TestNextSequentialBlinker(t *testing.T) {
	b := core.DefaultBounds()
	live, _ := Pattern("blinker")
	next := NextSequential(live, b)
	want := core.CellSetOf(core.Coord{X: 1, Y: -1}, core.Coord{X: 1, Y: 0}, core.Coord{X: 1, Y: 1})
	if !next.Equal(want) {
		t.Fatalf("blinker step = %v, want %v", next.Sorted(), want.Sorted())
	}
}
