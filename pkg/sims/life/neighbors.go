package life

import "sparse-life/pkg/core"

// Neighbors appends the up-to-eight Moore neighbours of c to buf and returns
// the extended slice. Offsets that would step past b on either axis are
// omitted; the grid has hard edges and never wraps.
func Neighbors(c core.Coord, b core.Bounds, buf []core.Coord) []core.Coord {
	left, right := c.X > b.Min, c.X < b.Max
	down, up := c.Y > b.Min, c.Y < b.Max

	if left && up {
		buf = append(buf, core.Coord{X: c.X - 1, Y: c.Y + 1})
	}
	if up {
		buf = append(buf, core.Coord{X: c.X, Y: c.Y + 1})
	}
	if right && up {
		buf = append(buf, core.Coord{X: c.X + 1, Y: c.Y + 1})
	}
	if left {
		buf = append(buf, core.Coord{X: c.X - 1, Y: c.Y})
	}
	if right {
		buf = append(buf, core.Coord{X: c.X + 1, Y: c.Y})
	}
	if left && down {
		buf = append(buf, core.Coord{X: c.X - 1, Y: c.Y - 1})
	}
	if down {
		buf = append(buf, core.Coord{X: c.X, Y: c.Y - 1})
	}
	if right && down {
		buf = append(buf, core.Coord{X: c.X + 1, Y: c.Y - 1})
	}
	return buf
}

// Candidates returns every cell that can be alive in the next generation: the
// live cells themselves plus all of their neighbours. live is not modified.
func Candidates(live core.CellSet, b core.Bounds) core.CellSet {
	out := core.NewCellSet(live.Len() * 4)
	var buf [8]core.Coord
	live.All(func(c core.Coord) bool {
		out.Insert(c)
		for _, n := range Neighbors(c, b, buf[:0]) {
			out.Insert(n)
		}
		return true
	})
	return out
}
