// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide one square matrix type for every supported size, backed by a
//     fixed array with the explicit index formula row*n + col.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Validate user data at construction; treat bad indices as defects.
//
// Complexity quicksheet:
//   - New/Zero/Identity: O(n²); At/Set/Index: O(1); Transpose: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvltrace/approx"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxIndex     = "Index"     // method tag used in error wrappers
	ctxSubmatrix = "Submatrix" // method tag used in error wrappers
	ctxNew       = "New"       // ctor tag
	ctxIdentity  = "Identity"  // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of size 2, 3 or 4.
//   - n is the size (rows == cols == n).
//   - data holds n*n elements in row-major order (offset = i*n + j); slots
//     past n*n stay zero.
//
// Dense is a value type: assigning or passing it copies the storage.
type Dense struct {
	n    int                       // size; 0 only for the invalid zero value
	data [MaxSize * MaxSize]float64 // row-major storage, first n*n slots used
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = Dense{}
)

// New creates an n×n matrix from row-major values.
// MAIN DESCRIPTION:
//   - Public constructor with strict size and value validation.
//
// Implementation:
//   - Stage 1: resolve options (finite-value policy).
//   - Stage 2: validate n ∈ {2,3,4} and len(values) == n*n (and finiteness).
//   - Stage 3: copy values into the fixed array.
//
// Inputs:
//   - n: matrix size.
//   - values: n*n elements in row-major order (copied, not retained).
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf (policy on by default).
//
// Complexity:
//   - Time O(n²), Space O(1).
func New(n int, values []float64, opts ...Option) (Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSize(n); err != nil {
		return Dense{}, fmt.Errorf("%s(%d): %w", ctxNew, n, err)
	}
	if err := ValidateValues(n, values, o.validateNaNInf); err != nil {
		return Dense{}, fmt.Errorf("%s(%d): %w", ctxNew, n, err)
	}

	m := Dense{n: n}
	copy(m.data[:n*n], values)

	return m, nil
}

// MustNew is like New but panics on error. Intended for fixtures and
// package-level literals.
func MustNew(n int, values ...float64) Dense {
	m, err := New(n, values)
	mustf(err)

	return m
}

// New2 builds a 2×2 matrix from row-major values.
func New2(values [4]float64) Dense {
	m := Dense{n: 2}
	copy(m.data[:], values[:])

	return m
}

// New3 builds a 3×3 matrix from row-major values.
func New3(values [9]float64) Dense {
	m := Dense{n: 3}
	copy(m.data[:], values[:])

	return m
}

// New4 builds a 4×4 matrix from row-major values.
func New4(values [16]float64) Dense {
	return Dense{n: 4, data: values}
}

// Zero returns the n×n zero matrix or ErrBadShape.
func Zero(n int) (Dense, error) {
	if err := ValidateSize(n); err != nil {
		return Dense{}, fmt.Errorf("Zero(%d): %w", n, err)
	}

	return Dense{n: n}, nil
}

// Identity returns the n×n identity matrix or ErrBadShape.
// Complexity: O(n).
func Identity(n int) (Dense, error) {
	if err := ValidateSize(n); err != nil {
		return Dense{}, fmt.Errorf("%s(%d): %w", ctxIdentity, n, err)
	}
	m := Dense{n: n}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Identity4 returns the 4×4 identity matrix.
func Identity4() Dense {
	return New4([16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Size returns N for an N×N matrix. Complexity: O(1).
func (m Dense) Size() int { return m.n }

// Index maps (row, col) to the row-major slot row*N + col.
// Panics with ErrOutOfRange when either index is outside [0, N).
// Complexity: O(1).
func (m Dense) Index(row, col int) int {
	if err := ValidateIndex(m.n, row, col); err != nil {
		panic(denseErrorf(ctxIndex, row, col, err))
	}

	return row*m.n + col
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Element read at coordinates.
//
// Behavior highlights:
//   - Indices come from fixed geometry; a violation is a defect, so At
//     panics with an error wrapping ErrOutOfRange instead of returning it.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Dense) At(row, col int) float64 {
	if err := ValidateIndex(m.n, row, col); err != nil {
		panic(denseErrorf(ctxAt, row, col, err))
	}

	return m.data[row*m.n+col]
}

// Set stores v at (row, col). Same precondition as At.
// Set is the only mutator; concurrent writers to one instance must
// serialize externally.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) {
	if err := ValidateIndex(m.n, row, col); err != nil {
		panic(denseErrorf(ctxSet, row, col, err))
	}
	m.data[row*m.n+col] = v
}

// Values returns a row-major copy of the n*n elements.
// Complexity: O(n²).
func (m Dense) Values() []float64 {
	out := make([]float64, m.n*m.n)
	copy(out, m.data[:m.n*m.n])

	return out
}

// Transpose returns a new matrix with r.At(i,j) == m.At(j,i).
// The receiver is a value, so it is never mutated.
// Complexity: O(n²).
func (m Dense) Transpose() Dense {
	t := Dense{n: m.n}
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			t.data[j*m.n+i] = m.data[i*m.n+j]
		}
	}

	return t
}

// Equal reports whether m and o have the same size and every pair of
// corresponding elements satisfies approx.Equal.
// Complexity: O(n²).
func (m Dense) Equal(o Dense) bool {
	if m.n != o.n {
		return false
	}
	for i := 0; i < m.n*m.n; i++ {
		if !approx.Equal(m.data[i], o.data[i]) {
			return false
		}
	}

	return true
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values formatted with %g into a strings.Builder.
//
// Complexity:
//   - Time O(n²), Space O(n²) for formatting.
func (m Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
