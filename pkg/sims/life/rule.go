package life

import "sparse-life/pkg/core"

// AliveNext applies B3/S23 to a single cell. Counting stops as soon as more
// than three live neighbours are seen since no outcome survives that.
//
// live is only read, so any number of goroutines may evaluate against the
// same set while nobody writes to it.
func AliveNext(c core.Coord, live core.CellSet, b core.Bounds) bool {
	var buf [8]core.Coord
	count := 0
	for _, n := range Neighbors(c, b, buf[:0]) {
		if !live.Contains(n) {
			continue
		}
		count++
		if count > 3 {
			return false
		}
	}
	if live.Contains(c) {
		return count == 2 || count == 3
	}
	return count == 3
}

// NextSequential computes the successor of live on the calling goroutine.
func NextSequential(live core.CellSet, b core.Bounds) core.CellSet {
	next := core.NewCellSet(live.Len())
	Candidates(live, b).All(func(c core.Coord) bool {
		if AliveNext(c, live, b) {
			next.Insert(c)
		}
		return true
	})
	return next
}
