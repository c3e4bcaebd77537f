// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared across test files.
//   • Assert panics that carry a sentinel error (indexers, kernels).

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvltrace/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS a *Dense to hide its concrete type from type assertions,
// forcing kernels onto their generic (interface) path.
type hide struct{ matrix.Matrix }

// Fixtures reused by several files.
var (
	// fixtureA and fixtureB multiply to fixtureAB.
	fixtureA = matrix.New4([16]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	})
	fixtureB = matrix.New4([16]float64{
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	})
	fixtureAB = matrix.New4([16]float64{
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	})
)

// requirePanicsWithErr asserts that f panics with an error matching target.
func requirePanicsWithErr(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}
