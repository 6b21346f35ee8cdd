// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for descriptor construction,
// storage disciplines and element access.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNewZeroInitialized verifies the allocating constructor returns a
// zero-initialized owning descriptor, for both precisions.
func testNewZeroInitialized[T matrix.Float](t *testing.T) {
	m := mustNew[T](t, 3, 4)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	require.Len(t, m.Data(), 12, "data length must equal rows*cols")
	for i, v := range m.Data() {
		assert.Zero(t, v, "element at flat index %d", i)
	}
}

func TestNewZeroInitialized(t *testing.T) {
	t.Run("float64", testNewZeroInitialized[float64])
	t.Run("float32", testNewZeroInitialized[float32])
}

func TestNewRejectsNonPositiveDims(t *testing.T) {
	for _, tc := range []struct{ r, c int }{
		{0, 3}, {3, 0}, {-1, 2}, {2, -1}, {0, 0},
	} {
		_, err := matrix.New[float64](tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "New(%d,%d)", tc.r, tc.c)
	}
}

// TestFromSliceIsAView pins the view contract: FromSlice wraps the caller
// buffer without copying, so writes are visible in both directions. This is
// how static, stack-scoped and aggregate-embedded storage is supported.
func TestFromSliceIsAView(t *testing.T) {
	buf := make([]float64, 6) // stands in for any caller-owned storage
	m := mustFromSlice(t, 2, 3, buf)

	m.Set(1, 2, 42)
	assert.Equal(t, 42.0, buf[5], "descriptor writes must hit the caller buffer")

	buf[0] = 7
	assert.Equal(t, 7.0, m.At(0, 0), "caller writes must be visible through the descriptor")
}

func TestFromSliceRejectsBadShape(t *testing.T) {
	buf := make([]float64, 6)

	_, err := matrix.FromSlice(2, 2, buf) // 4 != 6
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "length must equal rows*cols")

	_, err = matrix.FromSlice(0, 6, buf)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "zero rows")

	_, err = matrix.FromSlice[float64](2, 3, nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "nil buffer cannot satisfy 2*3")
}

// TestRowMajorLayout pins element (r,c) to flat offset r*cols + c.
func TestRowMajorLayout(t *testing.T) {
	m := mustNew[float64](t, 2, 3)
	fillSeq(m)

	// fillSeq wrote 1..6 row-major: [[1,2,3],[4,5,6]]
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 3.0, m.At(0, 2))
	assert.Equal(t, 4.0, m.At(1, 0))
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestSetAddAt(t *testing.T) {
	m := mustNew[float64](t, 2, 2)

	m.Set(0, 1, 5)
	assert.Equal(t, 5.0, m.At(0, 1))

	m.AddAt(0, 1, 2.5)
	assert.Equal(t, 7.5, m.At(0, 1), "AddAt must accumulate in place")

	m.AddAt(1, 0, -1)
	assert.Equal(t, -1.0, m.At(1, 0), "AddAt on a zero element behaves like Set")
}

func TestSetRowSetColumn(t *testing.T) {
	m := mustNew[float64](t, 3, 3)
	fillSeq(m)

	m.SetRow(1, 9)
	for j := 0; j < 3; j++ {
		assert.Equal(t, 9.0, m.At(1, j), "row broadcast at col %d", j)
	}
	assert.Equal(t, 1.0, m.At(0, 0), "other rows untouched")

	m.SetColumn(2, -3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, -3.0, m.At(i, 2), "column broadcast at row %d", i)
	}
	assert.Equal(t, 9.0, m.At(1, 0), "other columns untouched")
}

func TestZero(t *testing.T) {
	m := mustNew[float32](t, 2, 3)
	fillSeq(m)

	m.Zero()
	for i, v := range m.Data() {
		assert.Zero(t, v, "flat index %d", i)
	}
}

// TestClone verifies the deep copy owns independent storage.
func TestClone(t *testing.T) {
	m := mustNew[float64](t, 2, 2)
	fillSeq(m)

	c := m.Clone()
	require.Equal(t, m.Data(), c.Data())

	c.Set(0, 0, 99)
	assert.Equal(t, 1.0, m.At(0, 0), "mutating the clone must not touch the source")
}

func TestString(t *testing.T) {
	m := mustNew[float64](t, 2, 2)
	fillSeq(m)

	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
