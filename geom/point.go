// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvltrace/approx"
)

// Point is a location in 3D (homogeneous w = 1), stored as an r3.Vec.
type Point r3.Vec

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Origin is the point (0, 0, 0).
var Origin = Point{}

// W returns the homogeneous discriminant, always 1 for points.
func (p Point) W() float64 { return PointW }

// Tuple returns (x, y, z, 1).
func (p Point) Tuple() [4]float64 { return [4]float64{p.X, p.Y, p.Z, PointW} }

// Vec returns p as a gonum r3.Vec.
func (p Point) Vec() r3.Vec { return r3.Vec(p) }

// AddVector returns p translated by v (point + vector → point).
func (p Point) AddVector(v Vector) Point { return Point(r3.Add(r3.Vec(p), r3.Vec(v))) }

// Sub returns the displacement from o to p (point − point → vector).
func (p Point) Sub(o Point) Vector { return Vector(r3.Sub(r3.Vec(p), r3.Vec(o))) }

// SubVector returns p translated by -v (point − vector → point).
func (p Point) SubVector(v Vector) Point { return Point(r3.Sub(r3.Vec(p), r3.Vec(v))) }

// Equal reports approximate equality on x, y and z.
func (p Point) Equal(o Point) bool {
	return approx.Equal(p.X, o.X) && approx.Equal(p.Y, o.Y) && approx.Equal(p.Z, o.Z)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("point(%g, %g, %g)", p.X, p.Y, p.Z)
}
