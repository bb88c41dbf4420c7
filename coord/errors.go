package coord

import "errors"

var (
	// ErrUnknownDirectionCode indicates a symbol or letter that names no Direction.
	ErrUnknownDirectionCode = errors.New("coord: unknown direction code")
	// ErrInvalidRotation indicates a rotation that is not a multiple of 90 degrees.
	ErrInvalidRotation = errors.New("coord: rotation must be a multiple of 90 degrees")
)
