package life

import (
	"sort"

	"sparse-life/pkg/core"
)

var patterns = map[string][]core.Coord{}

// Register adds a named seed pattern. Empty names and empty patterns are ignored.
func Register(name string, cells []core.Coord) {
	if name == "" || len(cells) == 0 {
		return
	}
	patterns[name] = append([]core.Coord(nil), cells...)
}

// Pattern returns a fresh live set for the named pattern.
func Pattern(name string) (core.CellSet, bool) {
	cells, ok := patterns[name]
	if !ok {
		return core.CellSet{}, false
	}
	return core.CellSetOf(cells...), true
}

// PatternNames lists the registered patterns alphabetically.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("block", []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}})
	Register("blinker", []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	Register("l-tromino", []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	// y grows upwards; travels towards +x, -y.
	Register("glider", []core.Coord{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	Register("r-pentomino", []core.Coord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}})
}
