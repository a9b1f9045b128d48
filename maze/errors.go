package maze

import "errors"

// Custom error types
var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrOutOfBounds      = errors.New("cell position out of bounds")
	ErrNilGrid          = errors.New("grid is nil")
)
