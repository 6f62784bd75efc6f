// Package lifeio converts live-cell sets to and from their text forms.
package lifeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sparse-life/pkg/core"
)

// ErrShortInput is returned when the stream ends before the announced number
// of coordinate pairs has been read.
var ErrShortInput = errors.New("lifeio: fewer coordinate pairs than announced")

// ReadCells parses a count line followed by that many "x, y" lines. Pairs
// that do not fit in int64 or lie outside b are dropped without error. Blank
// lines are ignored.
func ReadCells(r io.Reader, b core.Bounds) (core.CellSet, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			if text := strings.TrimSpace(sc.Text()); text != "" {
				return text, true
			}
		}
		return "", false
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return core.CellSet{}, err
		}
		return core.CellSet{}, fmt.Errorf("lifeio: missing cell count: %w", io.ErrUnexpectedEOF)
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return core.CellSet{}, fmt.Errorf("lifeio: line %d: invalid cell count %q", line, head)
	}

	cells := core.NewCellSet(n)
	for i := 0; i < n; i++ {
		text, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return core.CellSet{}, err
			}
			return core.CellSet{}, fmt.Errorf("%w: got %d of %d", ErrShortInput, i, n)
		}
		xs, ys, found := strings.Cut(text, ",")
		if !found {
			return core.CellSet{}, fmt.Errorf("lifeio: line %d: expected \"x, y\", got %q", line, text)
		}
		c, keep, err := parsePair(xs, ys, b)
		if err != nil {
			return core.CellSet{}, fmt.Errorf("lifeio: line %d: %w", line, err)
		}
		if keep {
			cells.Insert(c)
		}
	}
	return cells, nil
}

// ReadLife106 parses the Life 1.06 format written by WriteLife106. Lines
// starting with '#' are treated as headers or comments.
func ReadLife106(r io.Reader, b core.Bounds) (core.CellSet, error) {
	sc := bufio.NewScanner(r)
	cells := core.NewCellSet(0)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return core.CellSet{}, fmt.Errorf("lifeio: line %d: expected \"x y\", got %q", line, text)
		}
		c, keep, err := parsePair(fields[0], fields[1], b)
		if err != nil {
			return core.CellSet{}, fmt.Errorf("lifeio: line %d: %w", line, err)
		}
		if keep {
			cells.Insert(c)
		}
	}
	if err := sc.Err(); err != nil {
		return core.CellSet{}, err
	}
	return cells, nil
}

// parsePair reports keep=false for integers that overflow int64 or fall
// outside b; any other parse failure is an error.
func parsePair(xs, ys string, b core.Bounds) (core.Coord, bool, error) {
	x, xok, err := parseInt(xs)
	if err != nil {
		return core.Coord{}, false, err
	}
	y, yok, err := parseInt(ys)
	if err != nil {
		return core.Coord{}, false, err
	}
	c := core.Coord{X: x, Y: y}
	return c, xok && yok && b.Contains(c), nil
}

func parseInt(s string) (int64, bool, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err == nil {
		return v, true, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("invalid integer %q", strings.TrimSpace(s))
}
