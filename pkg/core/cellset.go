package core

import (
	"cmp"
	"slices"
)

// CellSet is an unordered set of coordinates. A generation's live set is
// built once and then only read, so concurrent readers need no locking.
type CellSet struct {
	m map[Coord]struct{}
}

// NewCellSet allocates an empty set sized for roughly n members.
func NewCellSet(n int) CellSet {
	if n < 0 {
		n = 0
	}
	return CellSet{m: make(map[Coord]struct{}, n)}
}

// CellSetOf builds a set from the provided coordinates.
func CellSetOf(cells ...Coord) CellSet {
	s := NewCellSet(len(cells))
	for _, c := range cells {
		s.Insert(c)
	}
	return s
}

// Insert adds c to the set.
func (s *CellSet) Insert(c Coord) {
	if s.m == nil {
		s.m = make(map[Coord]struct{})
	}
	s.m[c] = struct{}{}
}

// Contains reports membership. The zero CellSet is empty.
func (s CellSet) Contains(c Coord) bool {
	_, ok := s.m[c]
	return ok
}

// Len returns the number of members.
func (s CellSet) Len() int { return len(s.m) }

// All calls fn for every member in unspecified order, stopping early when fn
// returns false.
func (s CellSet) All(fn func(Coord) bool) {
	for c := range s.m {
		if !fn(c) {
			return
		}
	}
}

// Slice returns the members in unspecified order.
func (s CellSet) Slice() []Coord {
	out := make([]Coord, 0, len(s.m))
	for c := range s.m {
		out = append(out, c)
	}
	return out
}

// Sorted returns the members ordered by X, then Y.
func (s CellSet) Sorted() []Coord {
	out := s.Slice()
	slices.SortFunc(out, CompareCoord)
	return out
}

// Clone returns an independent copy.
func (s CellSet) Clone() CellSet {
	out := NewCellSet(len(s.m))
	for c := range s.m {
		out.m[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s CellSet) Equal(o CellSet) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for c := range s.m {
		if _, ok := o.m[c]; !ok {
			return false
		}
	}
	return true
}

// CompareCoord orders coordinates by X, then Y.
func CompareCoord(a, b Coord) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}
