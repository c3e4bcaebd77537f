// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors return them (optionally wrapped with %w); indexers and
// algebra kernels panic with an error wrapping them, since a violation there is
// a programming defect. Tests check both forms via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when the
// call site has useful context; callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested size is not one of 2, 3 or 4.
	ErrBadShape = errors.New("matrix: unsupported size")

	// ErrOutOfRange indicates that a row or column index is outside [0, Size()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// a value slice of the wrong length, or an operation undefined for the size
	// (e.g., Submatrix of a 2×2, MulPoint on a 3×3).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the finite-value policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
