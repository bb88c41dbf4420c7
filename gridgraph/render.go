package gridgraph

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/gridstate/coord"
)

// Render draws bounds row by row, one rune per cell: fn(values[c]) where a
// value is present, fill elsewhere. Rows are separated by '\n'.
func Render[V any](bounds coord.Rect, values map[coord.Coordinate]V, fn func(V) rune, fill rune) string {
	var sb strings.Builder
	sb.Grow(bounds.Rows() * (bounds.Cols() + 1))
	for r := bounds.Min.Row; r <= bounds.Max.Row; r++ {
		if r > bounds.Min.Row {
			sb.WriteByte('\n')
		}
		for c := bounds.Min.Col; c <= bounds.Max.Col; c++ {
			if v, ok := values[coord.At(r, c)]; ok {
				sb.WriteRune(fn(v))
			} else {
				sb.WriteRune(fill)
			}
		}
	}
	return sb.String()
}

// Draw renders the index itself with fill in unrecorded cells.
func (ix *Index) Draw(fill rune) string {
	return Render(ix.bounds, ix.cells, func(r rune) rune { return r }, fill)
}

// Overlay draws the index with the cells in marks replaced by mark.
func (ix *Index) Overlay(marks []coord.Coordinate, mark, fill rune) string {
	cells := ix.Cells()
	for _, c := range marks {
		cells[c] = mark
	}
	return Render(ix.bounds, cells, func(r rune) rune { return r }, fill)
}

// Fingerprint returns an xxhash digest of the bounds and the row-major
// (coordinate, label) contents. Equal indexes have equal fingerprints.
func (ix *Index) Fingerprint() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%v|%v|", ix.bounds.Min, ix.bounds.Max)
	ix.Each(func(c coord.Coordinate, label rune) {
		fmt.Fprintf(d, "%d,%d=%d;", c.Row, c.Col, label)
	})
	return d.Sum64()
}
