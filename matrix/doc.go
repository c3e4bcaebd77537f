// Package matrix offers small square matrices (2×2, 3×3, 4×4) for affine
// geometry.
//
// The matrix package provides:
//
//   - Dense, a single row-major square matrix type whose size is fixed at
//     construction (New2/New3/New4 or New with an explicit size).
//   - Submatrix, Minor and Cofactor with the checkerboard sign rule, and
//     Determinant via Laplace expansion along row 0 (2×2 closed form as the
//     recursion base).
//   - Mul, Transpose, Identity and the affine products MulPoint/MulVector
//     for 4×4 transforms of geom.Point and geom.Vector.
//   - Approximate equality (Equal, AllClose) under approx.Epsilon.
//   - Conversions to and from gonum's *mat.Dense.
//
// Storage is a fixed array, so Dense is a plain value: assignment copies it,
// and the algebra kernels (Submatrix, Determinant, Mul, MulPoint, MulVector,
// Transpose) do not allocate. Values, String and ToGonum return fresh
// heap-backed results.
//
// Indexing outside [0, Size()) and algebra between mismatched sizes are
// programming defects and panic with an error wrapping ErrOutOfRange or
// ErrDimensionMismatch. Constructors validate user data and return errors.
//
// See the examples in this package for usage patterns.
package matrix
