package neighborhood

import (
	"github.com/katalvlaran/lvgrid/coord"
)

// Classify reduces a cell position to its BorderCode within an array of the
// given extents. Bits from different dimensions never collide, so the fold
// order over dimensions is irrelevant.
//
// Returns ErrDimensionCount when extent has fewer than 1 or more than
// MaxDims components, ErrDimensionMismatch when point and extent differ in
// length, ErrBadExtent when any extent component is below 1, and
// ErrOutOfRange when point[d] is not in [0, extent[d]) for some d — an
// out-of-bounds cell has no meaningful border code and must not be silently
// classified.
//
// A dimension of extent 1 yields both its low and high bit set: the cell is
// simultaneously on both borders of that dimension.
//
// Complexity: O(N).
func Classify(point, extent coord.Vec) (BorderCode, error) {
	n := extent.Dim()
	if n < 1 || n > MaxDims {
		return 0, ErrDimensionCount
	}
	if point.Dim() != n {
		return 0, ErrDimensionMismatch
	}
	var code BorderCode
	for d := 0; d < n; d++ {
		if extent[d] < 1 {
			return 0, ErrBadExtent
		}
		if point[d] < 0 || point[d] >= extent[d] {
			return 0, ErrOutOfRange
		}
		if point[d] == 0 {
			code |= 1 << (2 * uint(d))
		}
		if point[d] == extent[d]-1 {
			code |= 2 << (2 * uint(d))
		}
	}
	return code, nil
}
