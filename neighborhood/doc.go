// Package neighborhood precomputes, once per dimensionality, the complete
// neighbor lookup tables of a regular N-dimensional lattice.
//
// What:
//
//   - Classify reduces a cell's position to a BorderCode: two bits per
//     dimension recording whether the cell touches the low or high border.
//   - Offsets enumerates the canonical neighbor offsets of a cell for a
//     Direct (2N axis-aligned) or Indirect (3^N−1, diagonals included)
//     neighborhood, sorted by ascending canonical stride and point-symmetric.
//   - New builds, for every one of the 4^N border codes, the existence mask,
//     the causal/anticausal split, the compacted active-index list, and the
//     compacted offset list.
//   - Table.LinearOffsets projects existing offsets onto a caller-supplied
//     stride vector, yielding flat memory displacements per border code.
//   - Cache memoizes tables by (dimensionality, Kind) for concurrent reuse.
//
// Why:
//
//   - Scan-order algorithms (flood fill, distance transforms, labeling,
//     morphological filters) visit millions of cells; re-deriving border
//     logic per cell is wasteful. With these tables the per-cell cost is one
//     Classify call and one slice index.
//
// Ordering guarantees downstream code relies on:
//
//   - Slot k and slot count−1−k hold antipodal (negated) offsets.
//   - Slots are sorted by ascending dot product with the canonical stride
//     vector (1, 3, 9, ..., 3^(N−1)); the first half are scan-order
//     predecessors (causal), the second half successors (anticausal).
//
// Complexity:
//
//   - Classify: O(N). Offsets: O(N·count). New: O(4^N · count).
//     Table.LinearOffsets: O(4^N · count). count = 2N or 3^N−1.
//
// Errors:
//
//   - ErrDimensionCount: dimension count outside [1, MaxDims].
//   - ErrDimensionMismatch: vector length differs from the dimensionality.
//   - ErrBadExtent: extent with a component below 1.
//   - ErrOutOfRange: point outside its extent.
//   - ErrUnknownKind: Kind other than Direct or Indirect.
package neighborhood
