// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat.Dense,
// for callers that need general-purpose routines (decompositions, solvers)
// on top of the small fixed-size matrices.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const ctxFromGonum = "FromGonum"

// ToGonum returns a freshly allocated *mat.Dense with the same elements.
// Complexity: O(n²).
func (m Dense) ToGonum() *mat.Dense {
	return mat.NewDense(m.n, m.n, m.Values())
}

// FromGonum copies a gonum matrix into a Dense.
//
// Errors:
//   - ErrNilMatrix for nil input, ErrNonSquare when rows != cols,
//     ErrBadShape when the size is not 2, 3 or 4, ErrNaNInf for non-finite
//     elements (default policy; see WithNoValidateNaNInf).
//
// Complexity: O(n²).
func FromGonum(g mat.Matrix, opts ...Option) (Dense, error) {
	if g == nil {
		return Dense{}, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r != c {
		return Dense{}, fmt.Errorf("%s(%dx%d): %w", ctxFromGonum, r, c, ErrNonSquare)
	}
	values := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			values = append(values, g.At(i, j))
		}
	}
	m, err := New(r, values, opts...)
	if err != nil {
		return Dense{}, fmt.Errorf("%s: %w", ctxFromGonum, err)
	}

	return m, nil
}
