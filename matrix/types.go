// SPDX-License-Identifier: MIT
// Package matrix: descriptor type, storage constructors and element access.
// Matrix is a concrete, row-major view over a flat slice, generic over the
// element precision, chosen for performance and cache friendliness.

package matrix

import "fmt"

// Float is the element-type constraint for all kernels in this package.
// Each instantiation computes entirely in its own precision; there is no
// implicit promotion and no conversion between instantiations.
type Float interface {
	~float32 | ~float64
}

// Matrix is a row-major matrix descriptor of Float values.
// rows and cols describe the shape; data holds exactly rows*cols elements
// in row-major order (element (r,c) lives at data[r*cols+c]).
//
// A Matrix is a view: it does not own its buffer's lifetime in general.
// FromSlice wraps caller-supplied storage (static, stack-scoped, or
// embedded in a larger aggregate); New is the one allocating constructor.
type Matrix[T Float] struct {
	rows, cols int // shape metadata
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols Matrix owning freshly allocated, zero-initialized
// storage. It is the only operation in the package that allocates.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(rows*cols) time and memory.
func New[T Float](rows, cols int) (*Matrix[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, opErrorf(opNew, ErrDimensionMismatch)
	}

	// Allocate flat slice and return the owning descriptor
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// FromSlice creates a rows×cols view over a caller-supplied buffer.
// The buffer is used as-is (no copy): mutations through the returned
// descriptor are visible to the caller and vice versa. The caller keeps
// full responsibility for the buffer's lifetime.
// Stage 1 (Validate): rows, cols > 0 and len(data) == rows*cols.
// Stage 2 (Finalize): wrap without copying.
// Complexity: O(1).
func FromSlice[T Float](rows, cols int, data []T) (*Matrix[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, opErrorf(opFromSlice, ErrDimensionMismatch)
	}
	// The length invariant is the package's single structural contract.
	if len(data) != rows*cols {
		return nil, opErrorf(opFromSlice, ErrDimensionMismatch)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Data returns the backing slice in row-major order. The slice is the live
// storage, not a copy; it is exposed so descriptors can be embedded over any
// storage discipline. Complexity: O(1).
func (m *Matrix[T]) Data() []T { return m.data }

// At returns the element at (row, col).
// Index validity is the caller's contract: out-of-range indices are not a
// reportable error kind and panic via the runtime bounds check.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) T {
	return m.data[row*m.cols+col]
}

// Set assigns v at (row, col). Indices must be valid (see At).
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.data[row*m.cols+col] = v
}

// AddAt accumulates v into the element at (row, col) in place.
// Indices must be valid (see At). Complexity: O(1).
func (m *Matrix[T]) AddAt(row, col int, v T) {
	m.data[row*m.cols+col] += v
}

// SetRow broadcasts v into every element of the given row.
// The row index must be valid (see At). Complexity: O(cols).
func (m *Matrix[T]) SetRow(row int, v T) {
	base := row * m.cols // flat offset of the row
	for j := 0; j < m.cols; j++ {
		m.data[base+j] = v
	}
}

// SetColumn broadcasts v into every element of the given column.
// The column index must be valid (see At). Complexity: O(rows).
func (m *Matrix[T]) SetColumn(col int, v T) {
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+col] = v
	}
}

// Zero sets every element to 0. Complexity: O(rows*cols).
func (m *Matrix[T]) Zero() {
	var i, n int // predeclared loop bounds (deterministic flat walk)
	n = m.rows * m.cols
	for i = 0; i < n; i++ {
		m.data[i] = 0
	}
}

// Clone returns a deep copy of the matrix as a new owning descriptor.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	// Allocate a fresh buffer and copy the flat data across.
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) String() string {
	var s string
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		s += "[" // open row
		for j = 0; j < m.cols; j++ {
			// compute the flat index directly for performance
			s += fmt.Sprintf("%g", float64(m.data[i*m.cols+j]))
			if j < m.cols-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
