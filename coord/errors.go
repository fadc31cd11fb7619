package coord

import "errors"

// Sentinel errors for coord operations.
var (
	// ErrDimensionMismatch indicates two vectors of differing length were combined.
	ErrDimensionMismatch = errors.New("coord: vectors must have the same length")
)
