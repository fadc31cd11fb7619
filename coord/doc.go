// Package coord provides the fixed-length signed-integer vector shared by
// every lvgrid component.
//
// What:
//
//   - Vec is a length-N sequence of ints. Depending on context it denotes a
//     lattice coordinate, a relative neighbor offset (components in {-1,0,+1}),
//     an array extent (components ≥ 1), or a memory stride vector.
//   - Dot, CumProd, Strides, Negate, Clone, Equal cover the arithmetic the
//     table builders in lvgrid/neighborhood need.
//
// Why:
//
//   - One concrete vector type keeps the public API free of generics and lets
//     tables, classifiers, and callers exchange coordinates without adapters.
//
// Complexity:
//
//   - All operations run in O(N) time; Clone, Negate, CumProd, and Strides
//     allocate one new vector, the rest allocate nothing.
//
// Errors:
//
//   - ErrDimensionMismatch: two vectors of differing length were combined.
package coord
