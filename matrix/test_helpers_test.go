// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy noise.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew allocates an r×c matrix or fails the test (fatal on error).
func mustNew[T matrix.Float](t testing.TB, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// mustFromSlice wraps caller storage or fails the test (fatal on error).
func mustFromSlice[T matrix.Float](t testing.TB, r, c int, data []T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromSlice(r, c, data)
	require.NoError(t, err, "FromSlice(%d,%d,len=%d)", r, c, len(data))

	return m
}

// fillSeq fills m with 1, 2, 3, ... in row-major order — a deterministic
// non-symmetric pattern that makes transposition mistakes visible.
func fillSeq[T matrix.Float](m *matrix.Matrix[T]) {
	data := m.Data()
	for i := range data {
		data[i] = T(i + 1)
	}
}

// snapshot copies the backing storage so tests can assert the
// untouched-on-failure discipline byte for byte.
func snapshot[T matrix.Float](m *matrix.Matrix[T]) []T {
	return append([]T(nil), m.Data()...)
}

// assertUntouched fails the test unless m's storage is identical to the
// snapshot taken before the failing call.
func assertUntouched[T matrix.Float](t *testing.T, before []T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, before, m.Data(), "destination must be untouched on failure")
}

// assertAllClose fails the test unless every element of got is within tol
// of the corresponding element of want (both flat row-major).
func assertAllClose[T matrix.Float](t *testing.T, want, got *matrix.Matrix[T], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "column count")

	wd, gd := want.Data(), got.Data()
	for i := range wd {
		require.InDelta(t, float64(wd[i]), float64(gd[i]), tol, "flat index %d", i)
	}
}
