package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrMissingCell indicates that no cell carries the requested label.
	ErrMissingCell = errors.New("gridgraph: no cell with label")
	// ErrDuplicateCell indicates that a label expected once appears several times.
	ErrDuplicateCell = errors.New("gridgraph: label is not unique")
)
