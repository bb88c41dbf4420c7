// Package coord provides the value types every grid search is built from:
// Coordinate, an immutable (row, column) integer vector, Rect, an inclusive
// bounding rectangle, and Direction, the closed set of eight movement vectors.
//
// What:
//
//   - Coordinate arithmetic (Add, Sub, Scale, Translate) with no bounds embedded.
//   - Adjacency enumeration (Adjacent4, Adjacent8) and radius balls
//     (WithinManhattan, WithinChebyshev) that never consult a grid.
//   - Distance metrics: Manhattan and Chebyshev.
//   - Direction codecs (FromSymbol, FromLetter), Opposite, Rotate, Between.
//
// Ordering:
//
//	Coordinates order by row, then column. Adjacent4/Adjacent8 list neighbours
//	clockwise starting from Right, so every search built on them is reproducible.
//
// Errors:
//
//   - ErrUnknownDirectionCode: a symbol or letter that names no Direction.
//   - ErrInvalidRotation:      a rotation that is not a multiple of 90 degrees.
package coord
