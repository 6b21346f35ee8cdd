// SPDX-License-Identifier: MIT
// Package matrix_test cross-checks the float64 kernels against gonum/mat
// as an independent reference implementation. gonum is deliberately kept
// out of the kernels themselves (it owns its storage and its inverse is
// decomposition-based); here it serves purely as an oracle.

package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// oracleTol bounds the divergence from gonum caused by different
// summation orders at embedded-class sizes with O(1) magnitudes.
const oracleTol = 1e-12

// toGonum converts a descriptor into an owning gonum Dense (copied data,
// so the oracle can never alias the kernel's buffers).
func toGonum(m *matrix.Matrix[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), append([]float64(nil), m.Data()...))
}

// randomFill fills m with deterministic pseudo-random values in [-1, 1).
func randomFill(m *matrix.Matrix[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
}

// assertMatchesGonum compares a kernel result against a gonum result.
func assertMatchesGonum(t *testing.T, want mat.Matrix, got *matrix.Matrix[float64]) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows(), "row count")
	require.Equal(t, c, got.Cols(), "column count")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), oracleTol, "at [%d,%d]", i, j)
		}
	}
}

func TestMultiplyMatchesGonum(t *testing.T) {
	for _, tc := range []struct{ r, n, c int }{
		{2, 3, 2},
		{3, 3, 3},
		{5, 4, 6},
		{1, 7, 1},
	} {
		t.Run(fmt.Sprintf("%dx%d_%dx%d", tc.r, tc.n, tc.n, tc.c), func(t *testing.T) {
			a := mustNew[float64](t, tc.r, tc.n)
			b := mustNew[float64](t, tc.n, tc.c)
			randomFill(a, 1337)
			randomFill(b, 4242)

			got := mustNew[float64](t, tc.r, tc.c)
			require.NoError(t, matrix.Multiply(a, b, got))

			var want mat.Dense
			want.Mul(toGonum(a), toGonum(b))
			assertMatchesGonum(t, &want, got)
		})
	}
}

func TestMultiplyTransAMatchesGonum(t *testing.T) {
	a := mustNew[float64](t, 5, 3)
	b := mustNew[float64](t, 5, 4)
	randomFill(a, 7)
	randomFill(b, 11)

	got := mustNew[float64](t, 3, 4)
	require.NoError(t, matrix.MultiplyTransA(a, b, got))

	var want mat.Dense
	want.Mul(toGonum(a).T(), toGonum(b))
	assertMatchesGonum(t, &want, got)
}

func TestMultiplyTransBMatchesGonum(t *testing.T) {
	a := mustNew[float64](t, 4, 6)
	b := mustNew[float64](t, 3, 6)
	randomFill(a, 13)
	randomFill(b, 17)

	got := mustNew[float64](t, 4, 3)
	require.NoError(t, matrix.MultiplyTransB(a, b, got))

	var want mat.Dense
	want.Mul(toGonum(a), toGonum(b).T())
	assertMatchesGonum(t, &want, got)
}

func TestTransposeMatchesGonum(t *testing.T) {
	a := mustNew[float64](t, 3, 5)
	randomFill(a, 23)

	got := mustNew[float64](t, 5, 3)
	require.NoError(t, matrix.Transpose(a, got))

	assertMatchesGonum(t, toGonum(a).T(), got)
}

func TestInverseMatchesGonum(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := mustNew[float64](t, n, n)
			randomFill(a, int64(29+n))
			// Make the matrix diagonally dominant so both the closed form
			// and the oracle operate on a well-conditioned input.
			for i := 0; i < n; i++ {
				a.AddAt(i, i, 3)
			}

			got := mustNew[float64](t, n, n)
			require.NoError(t, matrix.Inverse(a, got))

			var want mat.Dense
			require.NoError(t, want.Inverse(toGonum(a)))
			assertMatchesGonum(t, &want, got)
		})
	}
}
