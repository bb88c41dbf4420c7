// Package gridgraph turns text grid maps into an immutable, sparse index of
// labelled cells that the search engine can query.
//
// What:
//
//   - Index maps coord.Coordinate to a rune label and carries explicit bounds.
//   - Parse reads lines top-to-bottom, left-to-right, 1-indexed by default,
//     either densely (every rune but the blank) or sparsely (one marker rune).
//   - Passable exposes the wall-set / open-set convention explicitly, so a
//     caller always states whether a recorded cell blocks or admits movement.
//   - Regions and Components group orthogonally (Conn4) or fully (Conn8)
//     connected cells.
//   - WithObstacles / Without rebuild the index; an Index is never mutated.
//   - Render and Fingerprint support debugging and log correlation.
//
// Complexity:
//
//   - Parse:        O(W×H) time and memory.
//   - Find/FindAll: O(N log N) for N recorded cells (FindAll sorts).
//   - Regions:      O(N×d), d = 4 or 8.
//   - WithObstacles: O(N + k) for k added cells.
//
// Options:
//
//   - WithBlank(r):  dense parse, skip r (default '.').
//   - WithMarker(r): sparse parse, record only r.
//   - WithOrigin(c): coordinate of the top-left cell (default (1, 1)).
//   - WithRagged():  accept rows of differing length.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingCell:    Find found no cell with the label.
//   - ErrDuplicateCell:  Find found more than one cell with the label.
package gridgraph
