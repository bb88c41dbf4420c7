// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridstate.
package gridgraph

import "github.com/katalvlaran/gridstate/coord"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: Right, Down, Left, Up.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, diagonals included.
	Conn8
)

// Directions returns the movement set of c, clockwise from Right.
func (c Connectivity) Directions() []coord.Direction {
	if c == Conn8 {
		return coord.All[:]
	}
	return coord.Orthogonal[:]
}

// Convention states what a recorded cell means to movement.
type Convention int

const (
	// WallSet: a recorded cell blocks; an absent in-bounds cell is open.
	WallSet Convention = iota
	// OpenSet: a recorded cell is open; everything else blocks.
	OpenSet
)

func (c Convention) String() string {
	if c == OpenSet {
		return "open-set"
	}
	return "wall-set"
}

// Options contains the parsing parameters for Parse.
type Options struct {
	// Blank is the rune left out of a dense parse.
	Blank rune
	// Marker, when Sparse is set, is the only rune recorded.
	Marker rune
	// Sparse selects marker mode over blank mode.
	Sparse bool
	// Origin is the coordinate assigned to the first rune of the first line.
	Origin coord.Coordinate
	// Ragged accepts rows of differing length; bounds span the longest row.
	Ragged bool
}

// Option configures Parse.
type Option func(*Options)

// DefaultOptions returns dense parsing with '.' as blank, origin (1, 1),
// and rectangular input required.
func DefaultOptions() Options {
	return Options{
		Blank:  '.',
		Origin: coord.At(1, 1),
	}
}

// WithBlank records every rune except r.
func WithBlank(r rune) Option {
	return func(o *Options) {
		o.Blank = r
		o.Sparse = false
	}
}

// WithMarker records only cells holding r.
func WithMarker(r rune) Option {
	return func(o *Options) {
		o.Marker = r
		o.Sparse = true
	}
}

// WithOrigin sets the coordinate of the top-left cell.
func WithOrigin(c coord.Coordinate) Option {
	return func(o *Options) { o.Origin = c }
}

// WithRagged allows rows of differing length.
func WithRagged() Option {
	return func(o *Options) { o.Ragged = true }
}

// Index is an immutable sparse map from coordinate to label with declared bounds.
// All methods are safe for concurrent use; rebuilding methods return a new Index.
type Index struct {
	bounds coord.Rect
	cells  map[coord.Coordinate]rune
}
