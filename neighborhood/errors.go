package neighborhood

import "errors"

// Sentinel errors for neighborhood table construction and classification.
var (
	// ErrDimensionCount indicates a dimension count outside [1, MaxDims].
	ErrDimensionCount = errors.New("neighborhood: dimension count must be between 1 and MaxDims")
	// ErrDimensionMismatch indicates a vector whose length differs from the expected dimensionality.
	ErrDimensionMismatch = errors.New("neighborhood: vector length does not match dimensionality")
	// ErrBadExtent indicates an extent with a component below 1.
	ErrBadExtent = errors.New("neighborhood: extent components must be at least 1")
	// ErrOutOfRange indicates a point lying outside its extent.
	ErrOutOfRange = errors.New("neighborhood: point lies outside the extent")
	// ErrUnknownKind indicates a Kind other than Direct or Indirect.
	ErrUnknownKind = errors.New("neighborhood: unknown neighborhood kind")
)
