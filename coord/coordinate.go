package coord

import (
	"cmp"
	"fmt"
	"slices"
)

// Coordinate is a (row, column) grid position. Rows grow downward and
// columns grow to the right. It is a comparable value type and may be used
// directly as a map key.
type Coordinate struct {
	Row, Col int
}

// At returns the Coordinate (row, col).
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Position returns c itself, so a plain Coordinate can serve as a search state.
func (c Coordinate) Position() Coordinate {
	return c
}

// Add returns c + o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns c - o.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Scale returns c multiplied component-wise by k.
func (c Coordinate) Scale(k int) Coordinate {
	return Coordinate{Row: c.Row * k, Col: c.Col * k}
}

// Translate returns c moved magnitude steps along d.
// No bounds checking is done; callers filter against their grid.
func (c Coordinate) Translate(d Direction, magnitude int) Coordinate {
	return c.Add(d.Vector().Scale(magnitude))
}

// Adjacent4 returns the four orthogonal neighbours of c, clockwise from Right.
func (c Coordinate) Adjacent4() []Coordinate {
	out := make([]Coordinate, 0, len(Orthogonal))
	for _, d := range Orthogonal {
		out = append(out, c.Add(d.Vector()))
	}
	return out
}

// Adjacent8 returns all eight neighbours of c, clockwise from Right.
func (c Coordinate) Adjacent8() []Coordinate {
	out := make([]Coordinate, 0, len(All))
	for _, d := range All {
		out = append(out, c.Add(d.Vector()))
	}
	return out
}

// Manhattan returns |dr| + |dc| between c and o.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Chebyshev returns max(|dr|, |dc|) between c and o.
func (c Coordinate) Chebyshev(o Coordinate) int {
	return max(abs(c.Row-o.Row), abs(c.Col-o.Col))
}

// WithinManhattan returns every coordinate whose Manhattan distance from c
// lies in [1, radius], in row-major order. A radius below 1 yields nil.
func (c Coordinate) WithinManhattan(radius int) []Coordinate {
	return c.within(radius, c.Manhattan)
}

// WithinChebyshev returns every coordinate whose Chebyshev distance from c
// lies in [1, radius], in row-major order. A radius below 1 yields nil.
func (c Coordinate) WithinChebyshev(radius int) []Coordinate {
	return c.within(radius, c.Chebyshev)
}

func (c Coordinate) within(radius int, dist func(Coordinate) int) []Coordinate {
	if radius < 1 {
		return nil
	}
	var out []Coordinate
	for r := c.Row - radius; r <= c.Row+radius; r++ {
		for col := c.Col - radius; col <= c.Col+radius; col++ {
			o := Coordinate{Row: r, Col: col}
			if d := dist(o); d >= 1 && d <= radius {
				out = append(out, o)
			}
		}
	}
	return out
}

// Compare orders coordinates by row, then column.
// It returns -1, 0 or +1 in the manner of cmp.Compare.
func (c Coordinate) Compare(o Coordinate) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, o.Col)
}

// Less reports whether c sorts before o.
func (c Coordinate) Less(o Coordinate) bool {
	return c.Compare(o) < 0
}

// String renders c as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Sort orders cs in place by row, then column.
func Sort(cs []Coordinate) {
	slices.SortFunc(cs, Coordinate.Compare)
}

// Rect is an inclusive rectangle of coordinates, Min at the top-left corner
// and Max at the bottom-right. It declares the bounds of a grid; coordinates
// themselves carry none.
type Rect struct {
	Min, Max Coordinate
}

// Bounds returns the Rect spanning rows×cols cells starting at origin.
func Bounds(origin Coordinate, rows, cols int) Rect {
	return Rect{Min: origin, Max: Coordinate{Row: origin.Row + rows - 1, Col: origin.Col + cols - 1}}
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coordinate) bool {
	return c.Row >= r.Min.Row && c.Row <= r.Max.Row && c.Col >= r.Min.Col && c.Col <= r.Max.Col
}

// Rows returns the number of rows spanned by r (0 when empty).
func (r Rect) Rows() int {
	return max(0, r.Max.Row-r.Min.Row+1)
}

// Cols returns the number of columns spanned by r (0 when empty).
func (r Rect) Cols() int {
	return max(0, r.Max.Col-r.Min.Col+1)
}

// Empty reports whether r contains no coordinates.
func (r Rect) Empty() bool {
	return r.Rows() == 0 || r.Cols() == 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
