package geom_test

import (
	"testing"

	"github.com/katalvlaran/lvltrace/geom"
	"github.com/stretchr/testify/require"
)

// TestPointDiscriminant ensures points always carry w = 1.
func TestPointDiscriminant(t *testing.T) {
	p := geom.NewPoint(4.3, -4.2, 3.1)
	require.Equal(t, 1.0, p.W())
	require.Equal(t, [4]float64{4.3, -4.2, 3.1, 1}, p.Tuple())
	require.True(t, geom.IsPoint(p))
}

// TestPointAlgebra covers the typed point/vector result mapping.
func TestPointAlgebra(t *testing.T) {
	p := geom.NewPoint(3, -2, 5)
	v := geom.NewVector(-2, 3, 1)

	// point + vector → point
	require.True(t, p.AddVector(v).Equal(geom.NewPoint(1, 1, 6)))

	// point − point → vector
	d := geom.NewPoint(3, 2, 1).Sub(geom.NewPoint(5, 6, 7))
	require.True(t, d.Equal(geom.NewVector(-2, -4, -6)))
	require.Equal(t, 0.0, d.W())

	// point − vector → point
	q := geom.NewPoint(3, 2, 1).SubVector(geom.NewVector(5, 6, 7))
	require.True(t, q.Equal(geom.NewPoint(-2, -4, -6)))
	require.Equal(t, 1.0, q.W())
}

// TestFromTuple decodes points, vectors and rejects other w values.
func TestFromTuple(t *testing.T) {
	got, err := geom.FromTuple([4]float64{4, -4, 3, 1})
	require.NoError(t, err)
	require.IsType(t, geom.Point{}, got)
	require.True(t, got.(geom.Point).Equal(geom.NewPoint(4, -4, 3)))

	got, err = geom.FromTuple([4]float64{4, -4, 3, 0})
	require.NoError(t, err)
	require.IsType(t, geom.Vector{}, got)

	_, err = geom.FromTuple([4]float64{4, -4, 3, 0.5})
	require.ErrorIs(t, err, geom.ErrNotHomogeneous)
}

// TestPointString checks the diagnostic representation.
func TestPointString(t *testing.T) {
	require.Equal(t, "point(1, 2.5, -3)", geom.NewPoint(1, 2.5, -3).String())
	require.Equal(t, "vector(0, 0, 1)", geom.NewVector(0, 0, 1).String())
}
