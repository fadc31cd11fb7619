// Package neighborhood defines core types for the neighborhood subpackage
// of github.com/katalvlaran/lvgrid.
package neighborhood

import (
	"github.com/katalvlaran/lvgrid/coord"
)

// Kind selects the neighborhood structure of the lattice.
type Kind int

const (
	// Direct uses the 2N axis-aligned unit-step neighbors
	// (4-connectivity on a 2D image, 6-connectivity on a volume).
	Direct Kind = iota
	// Indirect uses all 3^N−1 nonzero unit-step combinations, diagonals
	// included (8-connectivity on a 2D image, 26-connectivity on a volume).
	Indirect
)

// DefaultKind is the connectivity assumed when callers have no preference.
const DefaultKind = Direct

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Direct:
		return "Direct"
	case Indirect:
		return "Indirect"
	default:
		return "Unknown"
	}
}

// MaxDims bounds the supported dimension count: a BorderCode spends two bits
// per dimension and must fit its unsigned 32-bit representation.
const MaxDims = 15

// BorderCode compactly encodes which borders of the array a cell touches.
// Bit 2d is set when the cell sits on the low border of dimension d
// (coordinate 0); bit 2d+1 when it sits on the high border (coordinate
// extent[d]−1). Code 0 means the cell is strictly interior. A dimension of
// extent 1 sets both of its bits.
type BorderCode uint32

// Table holds the precomputed neighbor metadata of an N-dimensional lattice
// for every possible border code. It is immutable once built and safe to
// share across any number of concurrent readers.
//
// All per-code slices are aligned with the canonical offset list: slot l of
// Exists(code) refers to CanonicalOffsets()[l].
type Table struct {
	dims int
	kind Kind

	// canonical stride-sorted offset list, shared by all codes
	offsets []coord.Vec
	// canonical stride sign per slot (−1 or +1), fixed across codes
	signs []int8

	exists     [][]bool
	causal     [][]bool
	anticausal [][]bool
	active     [][]int
	compact    [][]coord.Vec
}
