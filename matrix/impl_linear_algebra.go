// SPDX-License-Identifier: MIT
// Package matrix provides the algebra on square matrices: submatrix
// extraction, minors, cofactors, Laplace-expansion determinants,
// multiplication and affine point/vector transforms.
//
// Purpose:
//   - Write submatrix and cofactor expansion once and apply them to every
//     supported size; the 2×2 closed form ends the recursion.
//   - Keep operation tags in constants for uniform error reporting.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/approx"
	"github.com/katalvlaran/lvltrace/geom"
)

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMulPoint  = "MulPoint"
	opMulVector = "MulVector"
	opAllClose  = "AllClose"
)

// affineSize is the only size that can transform points and vectors.
const affineSize = 4

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Submatrix returns the (n-1)×(n-1) matrix left after deleting row and col.
// MAIN DESCRIPTION:
//   - Copy every cell outside the deleted row/column, keeping relative order.
//
// Implementation:
//   - Stage 1: validate n > 2 (a 1×1 result is not a supported size) and
//     the coordinates.
//   - Stage 2: for each source (i, j) with i != row and j != col, write into
//     (i', j') where i' = i if i < row else i-1, and j' likewise.
//
// Behavior highlights:
//   - The result is an independent value; the receiver is untouched.
//
// Errors:
//   - Panics wrapping ErrDimensionMismatch for 2×2, ErrOutOfRange for bad
//     coordinates.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (m Dense) Submatrix(row, col int) Dense {
	if m.n <= MinSize {
		panic(denseErrorf(ctxSubmatrix, row, col, ErrDimensionMismatch))
	}
	if err := ValidateIndex(m.n, row, col); err != nil {
		panic(denseErrorf(ctxSubmatrix, row, col, err))
	}

	sub := Dense{n: m.n - 1}
	var i, j, si, sj int
	for i = 0; i < m.n; i++ {
		if i == row {
			continue
		}
		si = i
		if i > row {
			si = i - 1
		}
		for j = 0; j < m.n; j++ {
			if j == col {
				continue
			}
			sj = j
			if j > col {
				sj = j - 1
			}
			sub.data[si*sub.n+sj] = m.data[i*m.n+j]
		}
	}

	return sub
}

// Minor returns the determinant of Submatrix(row, col).
// Complexity: O(n!) worst case through Determinant; trivial for n ≤ 4.
func (m Dense) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns Minor(row, col), negated when row+col is odd.
func (m Dense) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}

	return minor
}

// Determinant returns det(m).
// Implementation:
//   - Stage 1: 2×2 closed form ad − bc (recursion base).
//   - Stage 2: otherwise Σ_j At(0,j)·Cofactor(0,j), expansion along row 0.
//
// Behavior highlights:
//   - Exact for integer-valued inputs of the supported sizes (no pivoting,
//     no division).
//
// Complexity:
//   - 3×3: 3 minors of 2×2; 4×4: 4 cofactors of 3×3 (12 base cases).
func (m Dense) Determinant() float64 {
	if m.n == MinSize {
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	det := ZeroSum
	for j := 0; j < m.n; j++ {
		det += m.data[j] * m.Cofactor(0, j)
	}

	return det
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate both operands non-nil and of the same size.
//   - Stage 2: if both are *Dense, use flat indexing (i→k→j); otherwise a
//     fixed i→j→k loop over At.
//
// Returns:
//   - Dense C with C[i][j] = Σ_k A[i][k]·B[k][j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³) (64 multiply-adds for 4×4), Space O(1).
func Mul(a, b Matrix) (Dense, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return Dense{}, matrixErrorf(opMul, err)
	}

	n := a.Size()
	res := Dense{n: n}
	var i, j, k int

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var av float64
			for i = 0; i < n; i++ {
				for k = 0; k < n; k++ {
					av = da.data[i*n+k]
					for j = 0; j < n; j++ {
						res.data[i*n+j] += av * db.data[k*n+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var acc float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc = ZeroSum
			for k = 0; k < n; k++ {
				acc += a.At(i, k) * b.At(k, j)
			}
			res.data[i*n+j] = acc
		}
	}

	return res, nil
}

// Mul returns m × o. Panics wrapping ErrDimensionMismatch when sizes differ.
func (m Dense) Mul(o Dense) Dense {
	res, err := Mul(&m, &o)
	mustf(err)

	return res
}

// MulPoint transforms p by a 4×4 matrix, treating p as (x, y, z, 1).
// MAIN DESCRIPTION:
//   - Affine point transform; translation column applies.
//
// Behavior highlights:
//   - Only rows 0..2 are computed. The w row is not derived: the result is
//     a Point by construction, which assumes a well-formed affine transform.
//
// Errors:
//   - Panics wrapping ErrDimensionMismatch when m is not 4×4.
//
// Complexity:
//   - Time O(1) (12 multiply-adds).
func (m Dense) MulPoint(p geom.Point) geom.Point {
	x, y, z := m.mulTuple(opMulPoint, p.Tuple())

	return geom.NewPoint(x, y, z)
}

// MulVector transforms v by a 4×4 matrix, treating v as (x, y, z, 0):
// the translation column does not apply.
// Panics wrapping ErrDimensionMismatch when m is not 4×4.
func (m Dense) MulVector(v geom.Vector) geom.Vector {
	x, y, z := m.mulTuple(opMulVector, v.Tuple())

	return geom.NewVector(x, y, z)
}

// mulTuple computes the first three rows of m·t for a homogeneous tuple.
// The x, y and z columns always contribute; the translation column is
// added only for points (w == 1).
func (m Dense) mulTuple(tag string, t [4]float64) (x, y, z float64) {
	if m.n != affineSize {
		panic(matrixErrorf(tag, fmt.Errorf("size %d: %w", m.n, ErrDimensionMismatch)))
	}
	var out [3]float64
	var i, j, base int
	for i = 0; i < len(out); i++ {
		base = i * affineSize
		acc := ZeroSum
		for j = 0; j < len(out); j++ {
			acc += m.data[base+j] * t[j]
		}
		if t[3] == geom.PointW {
			acc += m.data[base+3]
		}
		out[i] = acc
	}

	return out[0], out[1], out[2]
}

// AllClose reports whether a and b have the same size and every pair of
// elements is within the configured tolerance (WithEpsilon; default
// approx.Epsilon, which makes it agree with Dense.Equal).
//
// Errors:
//   - ErrNilMatrix when either operand is nil. A size mismatch is not an
//     error: it simply yields false.
//
// Complexity:
//   - Time O(n²).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Size() != b.Size() {
		return false, nil
	}

	o := gatherOptions(opts...)
	n := a.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !approx.EqualEps(a.At(i, j), b.At(i, j), o.eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
