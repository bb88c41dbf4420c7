package gridgraph

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/katalvlaran/gridstate/coord"
)

// Parse builds an Index from text lines. Row r of the input maps to
// Origin.Row+r and rune column c to Origin.Col+c.
// Returns ErrEmptyGrid if there are no lines or every line is empty,
// ErrNonRectangular if row lengths differ and WithRagged was not given.
// Complexity: O(W×H) time and memory.
func Parse(lines []string, opts ...Option) (*Index, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	width := 0
	for i, line := range lines {
		n := utf8.RuneCountInString(line)
		if i > 0 && n != width && !o.Ragged {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, n, width)
		}
		width = max(width, n)
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	ix := &Index{
		bounds: coord.Bounds(o.Origin, len(lines), width),
		cells:  make(map[coord.Coordinate]rune),
	}
	for r, line := range lines {
		c := 0
		for _, ch := range line {
			keep := ch != o.Blank
			if o.Sparse {
				keep = ch == o.Marker
			}
			if keep {
				ix.cells[coord.At(o.Origin.Row+r, o.Origin.Col+c)] = ch
			}
			c++
		}
	}
	return ix, nil
}

// FromCoordinates builds an Index over bounds holding label at every cell in cs.
func FromCoordinates(bounds coord.Rect, cs []coord.Coordinate, label rune) *Index {
	ix := &Index{bounds: bounds, cells: make(map[coord.Coordinate]rune, len(cs))}
	for _, c := range cs {
		ix.cells[c] = label
	}
	return ix
}

// Bounds returns the declared rectangle of the grid.
func (ix *Index) Bounds() coord.Rect { return ix.bounds }

// Rows returns the number of rows in the grid.
func (ix *Index) Rows() int { return ix.bounds.Rows() }

// Cols returns the number of columns in the grid.
func (ix *Index) Cols() int { return ix.bounds.Cols() }

// Len returns the number of recorded cells.
func (ix *Index) Len() int { return len(ix.cells) }

// InBounds reports whether c lies within the declared bounds.
// Complexity: O(1).
func (ix *Index) InBounds(c coord.Coordinate) bool {
	return ix.bounds.Contains(c)
}

// Contains reports whether a cell is recorded at c.
func (ix *Index) Contains(c coord.Coordinate) bool {
	_, ok := ix.cells[c]
	return ok
}

// Get returns the label recorded at c.
func (ix *Index) Get(c coord.Coordinate) (rune, bool) {
	r, ok := ix.cells[c]
	return r, ok
}

// Find returns the single cell labelled label.
// Returns ErrMissingCell if none exists, ErrDuplicateCell if several do.
func (ix *Index) Find(label rune) (coord.Coordinate, error) {
	found := ix.FindAll(label)
	switch len(found) {
	case 0:
		return coord.Coordinate{}, fmt.Errorf("%w %q", ErrMissingCell, label)
	case 1:
		return found[0], nil
	default:
		return coord.Coordinate{}, fmt.Errorf("%w: %q appears %d times", ErrDuplicateCell, label, len(found))
	}
}

// FindAll returns every cell labelled label in row-major order.
func (ix *Index) FindAll(label rune) []coord.Coordinate {
	var out []coord.Coordinate
	for c, r := range ix.cells {
		if r == label {
			out = append(out, c)
		}
	}
	coord.Sort(out)
	return out
}

// Cells returns a copy of the coordinate→label map.
func (ix *Index) Cells() map[coord.Coordinate]rune {
	return maps.Clone(ix.cells)
}

// Each calls fn for every recorded cell in row-major order.
func (ix *Index) Each(fn func(c coord.Coordinate, label rune)) {
	keys := slices.SortedFunc(maps.Keys(ix.cells), coord.Coordinate.Compare)
	for _, c := range keys {
		fn(c, ix.cells[c])
	}
}

// Without returns a new Index with the cells at cs removed.
func (ix *Index) Without(cs ...coord.Coordinate) *Index {
	next := &Index{bounds: ix.bounds, cells: maps.Clone(ix.cells)}
	for _, c := range cs {
		delete(next.cells, c)
	}
	return next
}

// WithObstacles returns a new Index with label recorded at every cell in cs.
// Bounds are unchanged.
func (ix *Index) WithObstacles(label rune, cs ...coord.Coordinate) *Index {
	next := &Index{bounds: ix.bounds, cells: make(map[coord.Coordinate]rune, len(ix.cells)+len(cs))}
	maps.Copy(next.cells, ix.cells)
	for _, c := range cs {
		next.cells[c] = label
	}
	return next
}

// Passable returns the movement predicate under conv. Cells labelled with
// one of except are treated as if they were absent, so the start and goal
// markers of a wall-set maze stay walkable. Out-of-bounds cells never pass.
func (ix *Index) Passable(conv Convention, except ...rune) func(coord.Coordinate) bool {
	recorded := func(c coord.Coordinate) bool {
		r, ok := ix.cells[c]
		return ok && !slices.Contains(except, r)
	}
	if conv == OpenSet {
		return func(c coord.Coordinate) bool {
			return ix.bounds.Contains(c) && recorded(c)
		}
	}
	return func(c coord.Coordinate) bool {
		return ix.bounds.Contains(c) && !recorded(c)
	}
}

// Neighbors returns the in-bounds neighbors of c under conn, clockwise from Right.
// Complexity: O(d).
func (ix *Index) Neighbors(c coord.Coordinate, conn Connectivity) []coord.Coordinate {
	dirs := conn.Directions()
	out := make([]coord.Coordinate, 0, len(dirs))
	for _, d := range dirs {
		if n := c.Translate(d, 1); ix.bounds.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
