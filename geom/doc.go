// Package geom provides homogeneous-coordinate points and vectors in 3D.
//
// The package provides:
//
//   - Vector (w = 0): addition, subtraction, negation, scaling, dot and
//     cross products, magnitude and normalization.
//   - Point (w = 1): translation by a vector, point difference.
//   - FromTuple for decoding a raw 4-tuple into the right kind.
//
// Operations keep the operand-to-result mapping typed: Point.Sub(Point)
// yields a Vector, Point.AddVector yields a Point, and there is no way to
// add two points. Equality is approximate (approx.Equal on x, y and z).
package geom
