// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/lvltrace/approx"
)

// Tuple is anything with a homogeneous (x, y, z, w) representation.
type Tuple interface {
	Tuple() [4]float64
	W() float64
}

var (
	_ Tuple = Vector{}
	_ Tuple = Point{}
)

// FromTuple decodes a raw 4-tuple. w≈1 yields a Point, w≈0 yields a Vector;
// anything else is ErrNotHomogeneous.
// Complexity: O(1).
func FromTuple(t [4]float64) (Tuple, error) {
	switch {
	case approx.Equal(t[3], PointW):
		return Point{X: t[0], Y: t[1], Z: t[2]}, nil
	case approx.Equal(t[3], VectorW):
		return Vector{X: t[0], Y: t[1], Z: t[2]}, nil
	default:
		return nil, fmt.Errorf("FromTuple(%v): %w", t, ErrNotHomogeneous)
	}
}

// IsPoint reports whether t carries the point discriminant.
func IsPoint(t Tuple) bool { return approx.Equal(t.W(), PointW) }

// IsVector reports whether t carries the vector discriminant.
func IsVector(t Tuple) bool { return approx.Equal(t.W(), VectorW) }
