package neighborhood

import (
	"github.com/katalvlaran/lvgrid/coord"
)

// New builds the complete neighbor metadata tables for an n-dimensional
// lattice with the given neighborhood kind: for each of the 4^n border
// codes, the existence mask over the canonical offset list, its
// causal/anticausal split, the ascending active-index list, and the
// compacted offset list.
//
// Construction is all-or-nothing: on error no partial table escapes.
// Returns ErrDimensionCount when n is outside [1, MaxDims] and
// ErrUnknownKind for an unrecognized kind.
//
// Complexity: O(4^n · count) time and memory, count = 2n or 3^n−1.
// Tables are meant to be built once per (n, kind) and reused read-only;
// see Cache.
func New(n int, kind Kind) (*Table, error) {
	offsets, err := Offsets(n, kind)
	if err != nil {
		return nil, err
	}
	count := len(offsets)

	// The stride sign of a slot is fixed across all border codes: it depends
	// only on the canonical offset, never on the cell position.
	strides := canonicalStrides(n)
	signs := make([]int8, count)
	for l, off := range offsets {
		if dot(off, strides) < 0 {
			signs[l] = -1
		} else {
			signs[l] = 1
		}
	}

	size := 1 << (2 * uint(n)) // one entry per border code
	t := &Table{
		dims:       n,
		kind:       kind,
		offsets:    offsets,
		signs:      signs,
		exists:     make([][]bool, size),
		causal:     make([][]bool, size),
		anticausal: make([][]bool, size),
		active:     make([][]int, size),
		compact:    make([][]coord.Vec, size),
	}

	for code := 0; code < size; code++ {
		var exists []bool
		if kind == Direct {
			exists = appendDirectExists(make([]bool, 0, count), BorderCode(code), n-1)
		} else {
			exists = appendIndirectExists(make([]bool, 0, count), BorderCode(code), n-1, true)
		}

		causal := make([]bool, count)
		anticausal := make([]bool, count)
		var active []int
		var compact []coord.Vec
		for l := 0; l < count; l++ {
			if signs[l] < 0 {
				causal[l] = exists[l]
			} else {
				anticausal[l] = exists[l]
			}
			if exists[l] {
				active = append(active, l)
				compact = append(compact, offsets[l])
			}
		}

		t.exists[code] = exists
		t.causal[code] = causal
		t.anticausal[code] = anticausal
		t.active[code] = active
		t.compact[code] = compact
	}

	return t, nil
}

// Dims returns the dimensionality N the table was built for.
// Complexity: O(1).
func (t *Table) Dims() int {
	return t.dims
}

// Kind returns the neighborhood kind the table was built for.
// Complexity: O(1).
func (t *Table) Kind() Kind {
	return t.kind
}

// NeighborCount returns the number of canonical neighbor slots:
// 2N for Direct, 3^N−1 for Indirect.
// Complexity: O(1).
func (t *Table) NeighborCount() int {
	return len(t.offsets)
}

// NumCodes returns 4^N, the number of distinct border codes.
// Complexity: O(1).
func (t *Table) NumCodes() int {
	return len(t.exists)
}

// CanonicalOffsets returns the stride-sorted canonical offset list shared by
// every border code. The slice is owned by the table; treat it as read-only.
// Complexity: O(1).
func (t *Table) CanonicalOffsets() []coord.Vec {
	return t.offsets
}

// Exists returns the existence mask for the given border code, aligned with
// CanonicalOffsets. Read-only; code must be below NumCodes.
// Complexity: O(1).
func (t *Table) Exists(code BorderCode) []bool {
	return t.exists[code]
}

// Causal returns the mask of existing scan-order predecessors (negative
// canonical stride) for the given border code. Read-only.
// Complexity: O(1).
func (t *Table) Causal(code BorderCode) []bool {
	return t.causal[code]
}

// Anticausal returns the mask of existing scan-order successors (positive
// canonical stride) for the given border code. Read-only.
// Complexity: O(1).
func (t *Table) Anticausal(code BorderCode) []bool {
	return t.anticausal[code]
}

// ActiveIndices returns the ascending slot indices whose neighbors exist at
// the given border code, letting hot loops skip non-existing slots outright.
// Read-only.
// Complexity: O(1).
func (t *Table) ActiveIndices(code BorderCode) []int {
	return t.active[code]
}

// ActiveOffsets returns the canonical offsets that exist at the given border
// code, in slot order. Read-only.
// Complexity: O(1).
func (t *Table) ActiveOffsets(code BorderCode) []coord.Vec {
	return t.compact[code]
}
