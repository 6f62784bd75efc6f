package core

import (
	"math"
	"slices"
	"testing"
)

func TestCellSetMembership(t *testing.T) {
	var empty CellSet
	if empty.Len() != 0 || empty.Contains(Coord{}) {
		t.Fatal("zero CellSet must be empty")
	}

	s := CellSetOf(Coord{1, 2}, Coord{1, 2}, Coord{-3, 4})
	if s.Len() != 2 {
		t.Fatalf("expected duplicates to collapse, got %d members", s.Len())
	}
	if !s.Contains(Coord{-3, 4}) {
		t.Fatal("missing inserted coordinate")
	}
	if s.Contains(Coord{4, -3}) {
		t.Fatal("unexpected member")
	}
}

func TestCellSetCloneIsIndependent(t *testing.T) {
	s := CellSetOf(Coord{0, 0})
	c := s.Clone()
	c.Insert(Coord{1, 1})
	if s.Contains(Coord{1, 1}) {
		t.Fatal("Clone must not share storage with the original")
	}
	if !s.Equal(CellSetOf(Coord{0, 0})) {
		t.Fatal("original changed after cloning")
	}
	if s.Equal(c) {
		t.Fatal("sets with different members reported equal")
	}
}

func TestCellSetSorted(t *testing.T) {
	s := CellSetOf(Coord{2, 0}, Coord{-1, 5}, Coord{2, -7}, Coord{math.MinInt64, 0})
	want := []Coord{{math.MinInt64, 0}, {-1, 5}, {2, -7}, {2, 0}}
	if got := s.Sorted(); !slices.Equal(got, want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}
}

func TestBoundsContains(t *testing.T) {
	b := DefaultBounds()
	if !b.Contains(Coord{math.MaxInt64, math.MinInt64}) {
		t.Fatal("default bounds must include the int64 extremes")
	}
	small := Bounds{Min: -2, Max: 2}
	if small.Contains(Coord{3, 0}) || small.Contains(Coord{0, -3}) {
		t.Fatal("coordinate outside narrowed bounds accepted")
	}
	if (Bounds{Min: 1, Max: 0}).Valid() {
		t.Fatal("inverted bounds must be invalid")
	}
}

func TestSoupDeterministic(t *testing.T) {
	b := DefaultBounds()
	a := NewRNG(7).Soup(Coord{-10, -10}, 20, 20, 0.35, b)
	c := NewRNG(7).Soup(Coord{-10, -10}, 20, 20, 0.35, b)
	if a.Len() == 0 {
		t.Fatal("soup with positive density should contain cells")
	}
	if !a.Equal(c) {
		t.Fatal("Soup not deterministic for a fixed seed")
	}
	a.All(func(cell Coord) bool {
		if cell.X < -10 || cell.X >= 10 || cell.Y < -10 || cell.Y >= 10 {
			t.Fatalf("cell %v outside soup rectangle", cell)
		}
		return true
	})
}

func TestSoupRespectsBounds(t *testing.T) {
	b := DefaultBounds()
	origin := Coord{math.MaxInt64 - 2, math.MaxInt64 - 1}
	s := NewRNG(1).Soup(origin, 10, 10, 1, b)
	if s.Len() != 3*2 {
		t.Fatalf("expected soup clipped to 3x2 cells at the corner, got %d", s.Len())
	}
}
