package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvltrace/geom"
	"github.com/katalvlaran/lvltrace/matrix"
	"github.com/stretchr/testify/require"
)

// TestDeterminant2 checks the ad−bc closed form.
func TestDeterminant2(t *testing.T) {
	m := matrix.New2([4]float64{1, 5, -3, 2})
	require.Equal(t, 17.0, m.Determinant())
}

// TestSubmatrix3 deletes a row and a column from a 3×3.
func TestSubmatrix3(t *testing.T) {
	a := matrix.New3([9]float64{
		1, 5, 0,
		-3, 2, 7,
		0, 6, -3,
	})
	got := a.Submatrix(0, 2)
	require.Equal(t, 2, got.Size())
	require.True(t, got.Equal(matrix.New2([4]float64{-3, 2, 0, 6})))
}

// TestSubmatrix4 deletes an interior row and column from a 4×4.
func TestSubmatrix4(t *testing.T) {
	a := matrix.New4([16]float64{
		-6, 1, 1, 6,
		-8, 5, 8, 6,
		-1, 0, 8, 2,
		-7, 1, -1, 1,
	})
	want := matrix.New3([9]float64{
		-6, 1, 6,
		-8, 8, 6,
		-7, -1, 1,
	})
	got := a.Submatrix(2, 1)
	require.Equal(t, 3, got.Size())
	require.True(t, got.Equal(want))
}

// TestSubmatrixIndexShift checks every deletion position against a direct
// filter of the source cells, so an off-by-one in the shift rule shows up.
func TestSubmatrixIndexShift(t *testing.T) {
	vals := [16]float64{}
	for i := range vals {
		vals[i] = float64(i)
	}
	a := matrix.New4(vals)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var want []float64
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					if i != row && j != col {
						want = append(want, a.At(i, j))
					}
				}
			}
			require.Equal(t, want, a.Submatrix(row, col).Values(), "delete (%d,%d)", row, col)
		}
	}
}

// TestSubmatrixPreconditions covers the 2×2 and out-of-range cases.
func TestSubmatrixPreconditions(t *testing.T) {
	m2 := matrix.New2([4]float64{1, 2, 3, 4})
	requirePanicsWithErr(t, matrix.ErrDimensionMismatch, func() { m2.Submatrix(0, 0) })

	m3 := matrix.New3([9]float64{})
	requirePanicsWithErr(t, matrix.ErrOutOfRange, func() { m3.Submatrix(3, 0) })
	requirePanicsWithErr(t, matrix.ErrOutOfRange, func() { m3.Submatrix(0, -1) })
}

// TestMinorCofactor3 checks the checkerboard sign rule.
func TestMinorCofactor3(t *testing.T) {
	a := matrix.New3([9]float64{
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	})
	require.Equal(t, 25.0, a.Submatrix(1, 0).Determinant())
	require.Equal(t, -12.0, a.Minor(0, 0))
	require.Equal(t, -12.0, a.Cofactor(0, 0)) // even parity, unchanged
	require.Equal(t, 25.0, a.Minor(1, 0))
	require.Equal(t, -25.0, a.Cofactor(1, 0)) // odd parity, negated
}

// TestDeterminant3 expands a 3×3 along row 0.
func TestDeterminant3(t *testing.T) {
	a := matrix.New3([9]float64{
		1, 2, 6,
		-5, 8, -4,
		2, 6, 4,
	})
	require.Equal(t, 56.0, a.Cofactor(0, 0))
	require.Equal(t, 12.0, a.Cofactor(0, 1))
	require.Equal(t, -46.0, a.Cofactor(0, 2))
	require.Equal(t, -196.0, a.Determinant())
}

// TestDeterminant4 expands a 4×4 along row 0.
func TestDeterminant4(t *testing.T) {
	a := matrix.New4([16]float64{
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	})
	require.Equal(t, 690.0, a.Cofactor(0, 0))
	require.Equal(t, 447.0, a.Cofactor(0, 1))
	require.Equal(t, 210.0, a.Cofactor(0, 2))
	require.Equal(t, 51.0, a.Cofactor(0, 3))
	require.Equal(t, -4071.0, a.Determinant())
}

// TestDeterminantTransposeInvariant checks det(A) == det(Aᵀ).
func TestDeterminantTransposeInvariant(t *testing.T) {
	for _, m := range []matrix.Dense{fixtureA, fixtureB, fixtureAB} {
		require.InDelta(t, m.Determinant(), m.Transpose().Determinant(), 1e-9)
	}
	require.Equal(t, 1.0, matrix.Identity4().Determinant())
}

// TestMul4 multiplies two 4×4 matrices.
func TestMul4(t *testing.T) {
	require.True(t, fixtureA.Mul(fixtureB).Equal(fixtureAB))
}

// TestMulFallbackMatchesFastPath forces the interface path and compares.
func TestMulFallbackMatchesFastPath(t *testing.T) {
	a, b := fixtureA, fixtureB
	fast, err := matrix.Mul(&a, &b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{&a}, hide{&b})
	require.NoError(t, err)
	require.True(t, fast.Equal(slow))
	require.True(t, slow.Equal(fixtureAB))
}

// TestMulIdentity checks A·I == A and I·A == A for every size.
func TestMulIdentity(t *testing.T) {
	ms := []matrix.Dense{
		matrix.New2([4]float64{1, 5, -3, 2}),
		matrix.New3([9]float64{1, 2, 6, -5, 8, -4, 2, 6, 4}),
		fixtureA,
		fixtureB,
	}
	for _, m := range ms {
		id, err := matrix.Identity(m.Size())
		require.NoError(t, err)
		require.True(t, m.Mul(id).Equal(m))
		require.True(t, id.Mul(m).Equal(m))
	}
}

// TestMulErrors covers nil operands and size mismatch.
func TestMulErrors(t *testing.T) {
	a := matrix.New2([4]float64{})
	b := matrix.New3([9]float64{})

	_, err := matrix.Mul(&a, &b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, &b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Mul(&a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	requirePanicsWithErr(t, matrix.ErrDimensionMismatch, func() { a.Mul(b) })
}

// TestMulPoint transforms a point (translation applies).
func TestMulPoint(t *testing.T) {
	a := matrix.New4([16]float64{
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	})
	got := a.MulPoint(geom.NewPoint(1, 2, 3))
	require.True(t, got.Equal(geom.NewPoint(18, 24, 33)), "got %v", got)
}

// TestMulVector transforms a vector (translation column ignored).
func TestMulVector(t *testing.T) {
	a := matrix.New4([16]float64{
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	})
	got := a.MulVector(geom.NewVector(1, 2, 3))
	require.True(t, got.Equal(geom.NewVector(14, 22, 32)), "got %v", got)
}

// TestIdentityTransforms checks I·p == p and I·v == v.
func TestIdentityTransforms(t *testing.T) {
	id := matrix.Identity4()
	for _, p := range []geom.Point{
		geom.NewPoint(0, 0, 0),
		geom.NewPoint(1, 2, 3),
		geom.NewPoint(-4.5, 1e3, 0.25),
	} {
		require.True(t, id.MulPoint(p).Equal(p))
	}
	v := geom.NewVector(-1, 7, 2)
	require.True(t, id.MulVector(v).Equal(v))
}

// TestAffineNonFinitePropagates keeps IEEE semantics for zero components:
// Inf·0 is NaN, so a zero coordinate must still enter the product.
func TestAffineNonFinitePropagates(t *testing.T) {
	m := matrix.Identity4()
	m.Set(0, 0, math.Inf(1))

	p := m.MulPoint(geom.NewPoint(0, 1, 1))
	require.True(t, math.IsNaN(p.X), "got %v", p)
	require.Equal(t, 1.0, p.Y)
	require.Equal(t, 1.0, p.Z)

	v := m.MulVector(geom.NewVector(0, 2, 3))
	require.True(t, math.IsNaN(v.X), "got %v", v)

	// the translation column never reaches a vector, even when it is infinite
	tr := matrix.Identity4()
	tr.Set(1, 3, math.Inf(-1))
	require.True(t, tr.MulVector(geom.NewVector(1, 2, 3)).Equal(geom.NewVector(1, 2, 3)))
	require.True(t, math.IsInf(tr.MulPoint(geom.NewPoint(1, 2, 3)).Y, -1))
}

// TestAffineRequires4 ensures point/vector transforms reject other sizes.
func TestAffineRequires4(t *testing.T) {
	m3 := matrix.New3([9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	requirePanicsWithErr(t, matrix.ErrDimensionMismatch, func() { m3.MulPoint(geom.NewPoint(1, 2, 3)) })
	requirePanicsWithErr(t, matrix.ErrDimensionMismatch, func() { m3.MulVector(geom.NewVector(1, 2, 3)) })
}

// TestAllClose compares with the default and a custom tolerance.
func TestAllClose(t *testing.T) {
	a := fixtureA
	b := fixtureA
	b.Set(0, 0, 1.001)

	ok, err := matrix.AllClose(&a, &b)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(&a, &b, matrix.WithEpsilon(0.01))
	require.NoError(t, err)
	require.True(t, ok)

	c := matrix.New2([4]float64{})
	ok, err = matrix.AllClose(&a, &c)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(nil, &a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKernelsDoNotAllocate pins the value-semantics kernels to zero heap use.
func TestKernelsDoNotAllocate(t *testing.T) {
	m := matrix.New4([16]float64{
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	})
	p := geom.NewPoint(1, 2, 3)
	v := geom.NewVector(1, 2, 3)

	var sink float64
	allocs := testing.AllocsPerRun(100, func() {
		sink += m.Determinant()
		sink += m.Transpose().At(1, 2)
		sink += m.Submatrix(1, 1).At(0, 0)
		sink += m.MulPoint(p).X + m.MulVector(v).Y
	})
	require.Zero(t, allocs)
	require.NotZero(t, sink)
}
