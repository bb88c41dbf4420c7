package gridgraph

import (
	"github.com/katalvlaran/gridstate/coord"
)

// Components finds all contiguous regions of in-bounds cells satisfying
// pass, according to conn connectivity. Components are listed in the
// row-major order of their first cell; each component lists its cells in
// BFS discovery order from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (ix *Index) Components(pass func(coord.Coordinate) bool, conn Connectivity) [][]coord.Coordinate {
	return ix.flood(pass, conn, func(coord.Coordinate, coord.Coordinate) bool { return true })
}

// Regions groups recorded cells into orthogonally connected regions of
// equal label. Regions are listed in row-major order of their first cell.
//
// Time:   O(N·4) for N recorded cells.
func (ix *Index) Regions() [][]coord.Coordinate {
	return ix.flood(ix.Contains, Conn4, func(a, b coord.Coordinate) bool {
		return ix.cells[a] == ix.cells[b]
	})
}

// flood is the shared BFS: a neighbor joins the component when it passes
// and links to the cell it was reached from.
func (ix *Index) flood(pass func(coord.Coordinate) bool, conn Connectivity, link func(from, to coord.Coordinate) bool) [][]coord.Coordinate {
	seen := make(map[coord.Coordinate]bool)
	var comps [][]coord.Coordinate
	dirs := conn.Directions()

	b := ix.bounds
	for r := b.Min.Row; r <= b.Max.Row; r++ {
		for c := b.Min.Col; c <= b.Max.Col; c++ {
			c0 := coord.At(r, c)
			if seen[c0] || !pass(c0) {
				continue
			}
			// BFS to collect component
			queue := []coord.Coordinate{c0}
			seen[c0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range dirs {
					v := u.Translate(d, 1)
					if seen[v] || !b.Contains(v) || !pass(v) || !link(u, v) {
						continue
					}
					seen[v] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Perimeter counts the unit edges between cells of region and cells outside it.
func Perimeter(region []coord.Coordinate) int {
	in := make(map[coord.Coordinate]struct{}, len(region))
	for _, c := range region {
		in[c] = struct{}{}
	}
	edges := 0
	for _, c := range region {
		for _, n := range c.Adjacent4() {
			if _, ok := in[n]; !ok {
				edges++
			}
		}
	}
	return edges
}

// Sides counts the straight fence segments around region, which equals
// the number of corners of its outline.
func Sides(region []coord.Coordinate) int {
	in := make(map[coord.Coordinate]struct{}, len(region))
	for _, c := range region {
		in[c] = struct{}{}
	}
	has := func(c coord.Coordinate) bool {
		_, ok := in[c]
		return ok
	}
	corners := 0
	for _, c := range region {
		for _, d := range coord.Orthogonal {
			a := c.Translate(d, 1)
			b := c.Translate(d.RotateRight(), 1)
			diag := c.Translate(d.Rotate45(1), 1)
			// convex corner, or concave corner seen from inside
			if (!has(a) && !has(b)) || (has(a) && has(b) && !has(diag)) {
				corners++
			}
		}
	}
	return corners
}
