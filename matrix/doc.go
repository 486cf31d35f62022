// Package matrix offers exact integer matrices for modular linear algebra.
//
// The matrix package provides:
//
//   - Matrix, a small interface over bounds-checked two-dimensional storage,
//     and Dense, its row-major int64 implementation.
//   - Constructors from row literals (NewFromRows) and from column-major
//     sequences (NewFromColumnMajor), the layout used to pack message blocks.
//   - Kernels that never round: Mul, Transpose, Scale, Mod, Determinant
//     (Bareiss), Minor, Cofactor and Adjugate.
//
// Every kernel validates its inputs, returns sentinel errors wrapped with an
// operation tag (match them with errors.Is) and allocates a fresh result,
// leaving operands untouched.
//
// See the examples in this package and the hill package for usage patterns.
package matrix
