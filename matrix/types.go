// SPDX-License-Identifier: MIT

// Package matrix: the capability interface shared by every square size.
package matrix

// Matrix is the capability set common to 2×2, 3×3 and 4×4 matrices.
// *Dense is the only implementation; the interface exists so kernels such
// as Mul and AllClose are written once against element access.
//
// Complexity notes: all methods are O(1) except Transpose (O(n²)).
type Matrix interface {
	// Size returns N for an N×N matrix.
	Size() int

	// At reads the element at (row, col). Panics with ErrOutOfRange when
	// either index is outside [0, Size()).
	At(row, col int) float64

	// Set overwrites the element at (row, col). Same precondition as At.
	Set(row, col int, v float64)

	// Index maps (row, col) to the row-major slot row*N + col.
	Index(row, col int) int

	// Transpose returns a new matrix with rows and columns swapped.
	Transpose() Dense
}
