// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvltrace/approx"
)

// Homogeneous discriminants.
const (
	VectorW = 0.0
	PointW  = 1.0
)

// Vector is a direction/displacement in 3D (homogeneous w = 0).
// It shares r3.Vec storage; the distinct type keeps vectors and points
// from mixing outside the methods below.
type Vector r3.Vec

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// W returns the homogeneous discriminant, always 0 for vectors.
func (v Vector) W() float64 { return VectorW }

// Tuple returns (x, y, z, 0).
func (v Vector) Tuple() [4]float64 { return [4]float64{v.X, v.Y, v.Z, VectorW} }

// Vec returns v as a gonum r3.Vec.
func (v Vector) Vec() r3.Vec { return r3.Vec(v) }

// Add returns v + o.
func (v Vector) Add(o Vector) Vector { return Vector(r3.Add(r3.Vec(v), r3.Vec(o))) }

// AddPoint returns the point p translated by v (vector + point → point).
func (v Vector) AddPoint(p Point) Point { return Point(r3.Add(r3.Vec(v), r3.Vec(p))) }

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector { return Vector(r3.Sub(r3.Vec(v), r3.Vec(o))) }

// Neg returns -v.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// Scale returns s·v.
func (v Vector) Scale(s float64) Vector { return Vector(r3.Scale(s, r3.Vec(v))) }

// Div returns v / s. Division by zero follows IEEE-754 (±Inf/NaN components).
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the scalar product v·o.
func (v Vector) Dot(o Vector) float64 { return r3.Dot(r3.Vec(v), r3.Vec(o)) }

// Cross returns v × o = (y1z2−z1y2, z1x2−x1z2, x1y2−y1x2).
func (v Vector) Cross(o Vector) Vector { return Vector(r3.Cross(r3.Vec(v), r3.Vec(o))) }

// Magnitude returns sqrt(x²+y²+z²).
func (v Vector) Magnitude() float64 { return r3.Norm(r3.Vec(v)) }

// Normalize returns v divided by its magnitude. The zero vector is returned
// unchanged; use NormalizeErr to detect that case.
func (v Vector) Normalize() Vector {
	n, err := v.NormalizeErr()
	if err != nil {
		return v
	}

	return n
}

// NormalizeErr is Normalize with an explicit ErrZeroVector for zero input.
func (v Vector) NormalizeErr() (Vector, error) {
	if v.Magnitude() == 0 {
		return Vector{}, fmt.Errorf("Vector.Normalize(%v): %w", v, ErrZeroVector)
	}

	return Vector(r3.Unit(r3.Vec(v))), nil
}

// Equal reports approximate equality on x, y and z.
func (v Vector) Equal(o Vector) bool {
	return approx.Equal(v.X, o.X) && approx.Equal(v.Y, o.Y) && approx.Equal(v.Z, o.Z)
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("vector(%g, %g, %g)", v.X, v.Y, v.Z)
}
