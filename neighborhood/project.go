package neighborhood

import (
	"github.com/katalvlaran/lvgrid/coord"
)

// Project flattens the canonical offsets onto an arbitrary stride vector:
// for each border code, for each slot in ascending order, the dot product
// dot(offsets[l], strides) is appended whenever exists[code][l] is true.
//
// Slot order is preserved, not re-sorted: under a non-canonical stride
// vector the causal entries are not necessarily contiguous, so callers must
// not assume the causal/anticausal grouping survives projection.
//
// Returns ErrDimensionMismatch when strides and the offsets differ in
// length.
//
// Complexity: O(codes · count).
func Project(offsets []coord.Vec, exists [][]bool, strides coord.Vec) ([][]int, error) {
	if len(offsets) > 0 && offsets[0].Dim() != strides.Dim() {
		return nil, ErrDimensionMismatch
	}
	out := make([][]int, len(exists))
	for code := range exists {
		var row []int
		for l, off := range offsets {
			if exists[code][l] {
				row = append(row, dot(off, strides))
			}
		}
		out[code] = row
	}
	return out, nil
}

// LinearOffsets projects the table's existing offsets onto the memory
// strides of a concrete array, yielding per-border-code lists of flat
// pointer displacements. strides is typically coord.Strides(extent) for a
// row-major array, but any length-N vector is accepted.
//
// Returns ErrDimensionMismatch when strides has the wrong length.
//
// Complexity: O(4^N · count).
func (t *Table) LinearOffsets(strides coord.Vec) ([][]int, error) {
	if strides.Dim() != t.dims {
		return nil, ErrDimensionMismatch
	}
	return Project(t.offsets, t.exists, strides)
}
