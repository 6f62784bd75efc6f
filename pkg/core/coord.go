package core

import "math"

// Coord is a cell position on the Life plane.
type Coord struct {
	X, Y int64
}

// Bounds clamps both axes to the closed range [Min, Max].
type Bounds struct {
	Min int64
	Max int64
}

// DefaultBounds spans the full signed 64-bit range.
func DefaultBounds() Bounds {
	return Bounds{Min: math.MinInt64, Max: math.MaxInt64}
}

// Contains reports whether c lies within the bounds on both axes.
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.Min && c.X <= b.Max && c.Y >= b.Min && c.Y <= b.Max
}

// Valid reports whether the range is non-empty.
func (b Bounds) Valid() bool { return b.Min <= b.Max }
