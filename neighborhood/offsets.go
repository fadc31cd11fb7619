package neighborhood

import (
	"github.com/katalvlaran/lvgrid/coord"
)

// Offsets enumerates the canonical neighbor offsets of a cell in an
// n-dimensional lattice: 2n offsets for Direct, 3^n−1 for Indirect.
//
// The list is sorted by ascending dot product with the canonical stride
// vector (1, 3, ..., 3^(n−1)) and is point-symmetric: slot k holds the exact
// negation of slot count−1−k. Existence tables and scan-order algorithms
// rely on these slot positions, so the enumeration order is part of the
// contract: two calls with identical arguments yield identical output.
//
// Returns ErrDimensionCount when n is outside [1, MaxDims] and
// ErrUnknownKind for an unrecognized kind.
//
// Complexity: O(n · count).
func Offsets(n int, kind Kind) ([]coord.Vec, error) {
	if n < 1 || n > MaxDims {
		return nil, ErrDimensionCount
	}
	switch kind {
	case Direct:
		return appendDirectOffsets(make([]coord.Vec, 0, 2*n), n, n-1), nil
	case Indirect:
		return appendIndirectOffsets(make([]coord.Vec, 0, pow3(n)-1), coord.New(n), n-1, true), nil
	default:
		return nil, ErrUnknownKind
	}
}

// appendDirectOffsets emits, for each level from the outermost dimension
// down to 0, the −1 step before descending and the +1 step after ascending.
// The interleaving is what produces both the stride-ascending order and the
// antipodal slot symmetry.
func appendDirectOffsets(a []coord.Vec, n, level int) []coord.Vec {
	p := coord.New(n)
	p[level] = -1
	a = append(a, p.Clone())
	if level > 0 {
		a = appendDirectOffsets(a, n, level-1)
	}
	p[level] = 1
	return append(a, p)
}

// appendIndirectOffsets takes the Cartesian product {−1,0,+1} per dimension
// in nested order, skipping the all-zero center combination exactly once.
// The scratch vector p carries the choices of the outer levels; each level
// restores its component to 0 before returning.
func appendIndirectOffsets(a []coord.Vec, p coord.Vec, level int, center bool) []coord.Vec {
	if level == 0 {
		p[0] = -1
		a = append(a, p.Clone())
		if !center {
			p[0] = 0
			a = append(a, p.Clone())
		}
		p[0] = 1
		a = append(a, p.Clone())
		p[0] = 0
		return a
	}
	p[level] = -1
	a = appendIndirectOffsets(a, p, level-1, false)
	p[level] = 0
	a = appendIndirectOffsets(a, p, level-1, center)
	p[level] = 1
	a = appendIndirectOffsets(a, p, level-1, false)
	p[level] = 0
	return a
}

// canonicalStrides returns (1, 3, 9, ..., 3^(n−1)): the row-major strides of
// a hypothetical all-3-extent array, used solely to define slot ordering.
func canonicalStrides(n int) coord.Vec {
	three := coord.New(n)
	for d := range three {
		three[d] = 3
	}
	return coord.Strides(three)
}

// pow3 returns 3^n for small non-negative n.
func pow3(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 3
	}
	return r
}

// dot is the unchecked scalar product used on vectors whose lengths were
// validated up front.
func dot(a, b coord.Vec) int {
	sum := 0
	for d := range a {
		sum += a[d] * b[d]
	}
	return sum
}
