package lifeio

import (
	"bufio"
	"io"
	"strconv"

	"sparse-life/pkg/core"
)

// Life106Header is the first line of every Life 1.06 document.
const Life106Header = "#Life 1.06"

// WriteLife106 writes the header followed by one "x y" line per cell, ordered
// by x then y.
func WriteLife106(w io.Writer, live core.CellSet) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Life106Header)
	bw.WriteByte('\n')
	var buf []byte
	for _, c := range live.Sorted() {
		buf = strconv.AppendInt(buf[:0], c.X, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, c.Y, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
