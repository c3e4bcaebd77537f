// Package lvltrace is a small 3D-geometry and raster math toolkit: points
// and vectors in homogeneous coordinates, square matrices for affine
// transforms, RGB colors and a pixel canvas that writes PPM images.
//
// Under the hood, everything is organized under these subpackages:
//
//	approx/     — tolerance-based float comparison shared by every Equal
//	geom/       — Point and Vector with a typed algebra (point − point → vector, ...)
//	matrix/     — 2×2, 3×3 and 4×4 matrices: submatrix, minor, cofactor,
//	              determinant, transpose, multiply, point/vector transforms
//	canvas/     — Color and Canvas; PPM (P3), PNG, BMP and TIFF output
//	projectile/ — projectile-motion simulation rendered onto a canvas
//
// Quick example:
//
//	m := matrix.New4([16]float64{
//		1, 0, 0, 5,
//		0, 1, 0, -3,
//		0, 0, 1, 2,
//		0, 0, 0, 1,
//	})
//	p := m.MulPoint(geom.NewPoint(-3, 4, 5)) // point(2, 1, 7)
//
// See examples/projectile for a runnable demo.
//
//	go get github.com/katalvlaran/lvltrace
package lvltrace
