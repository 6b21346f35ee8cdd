// SPDX-License-Identifier: MIT
// Package matrix: structural transforms and the multiply family.
// Every kernel validates the full conformance contract before the first
// write, runs a fixed deterministic loop order over row-major storage,
// and documents its aliasing contract explicitly.

package matrix

// Transpose writes aᵗ into dst. Requires dst.Rows == a.Cols and
// dst.Cols == a.Rows; on mismatch dst is untouched.
//
// Behavior highlights:
//   - dst must use storage disjoint from a: an in-place transpose of a
//     non-square matrix is not defined, and even the square case is only
//     meaningful when the caller handles in-place semantics explicitly.
//
// Inputs:
//   - a  : source matrix (r×c).
//   - dst: destination matrix (c×r), disjoint storage.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j traversal; data[i*c+j] → dst.data[j*r+i].
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Transpose[T Float](a, dst *Matrix[T]) error {
	// Validate the flipped-shape contract before writing.
	if err := validateTranspose(a, dst); err != nil {
		return opErrorf(opTranspose, err)
	}

	var i, j, base int // predeclared iterators
	for i = 0; i < a.rows; i++ {
		base = i * a.cols // flat offset of source row i
		for j = 0; j < a.cols; j++ {
			dst.data[j*a.rows+i] = a.data[base+j]
		}
	}

	return nil
}

// Multiply computes the standard matrix product dst = a·b.
// Requires a.Cols == b.Rows, dst.Rows == a.Rows, dst.Cols == b.Cols;
// on mismatch dst is untouched.
//
// Implementation:
//   - Stage 1: validate the full conformance contract (no partial writes).
//   - Stage 2: zero dst, then accumulate with the canonical triple loop in
//     i→k→j order using row-major strides (one stride per operand row).
//
// Behavior highlights:
//   - dst must use storage disjoint from a and b: the kernel accumulates
//     partial sums into dst, so aliasing a read operand corrupts them.
//   - No blocking or tiling — the target is small embedded-class matrices.
//
// Inputs:
//   - a  : left operand (r×n).
//   - b  : right operand (n×c).
//   - dst: destination (r×c), disjoint storage.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→k→j loop order; identical inputs give identical results.
//
// Complexity:
//   - Time O(r*n*c), Space O(1).
func Multiply[T Float](a, b, dst *Matrix[T]) error {
	if err := validateMultiply(a, b, dst); err != nil {
		return opErrorf(opMultiply, err)
	}

	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetC int // row-major stride caches
		av                                 T
	)
	// dst.data layout: i*b.cols + j; start from an explicit zero state.
	dst.Zero()
	for i = 0; i < a.rows; i++ {
		rowOffsetA = i * a.cols
		rowOffsetC = i * b.cols
		for k = 0; k < a.cols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * b.cols
			for j = 0; j < b.cols; j++ {
				dst.data[rowOffsetC+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return nil
}

// MultiplyTransA computes dst = aᵗ·b without materializing aᵗ.
// Requires a.Rows == b.Rows, dst.Rows == a.Cols, dst.Cols == b.Cols;
// on mismatch dst is untouched.
//
// Implementation:
//   - Stage 1: validate the conformance contract.
//   - Stage 2: zero dst, then accumulate in k→i→j order: for each shared
//     row k, dst[i,j] += a[k,i]·b[k,j]. Both operands are walked along
//     their natural rows, so no transposed access pattern is needed.
//
// Behavior highlights:
//   - dst must use storage disjoint from a and b (accumulation).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed k→i→j loop order.
//
// Complexity:
//   - Time O(n*r*c) where n = a.Rows, Space O(1).
func MultiplyTransA[T Float](a, b, dst *Matrix[T]) error {
	if err := validateMultiplyTransA(a, b, dst); err != nil {
		return opErrorf(opMulTransA, err)
	}

	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetC int
		av                                 T
	)
	dst.Zero()
	for k = 0; k < a.rows; k++ { // shared row index of a and b
		rowOffsetA = k * a.cols
		rowOffsetB = k * b.cols
		for i = 0; i < a.cols; i++ {
			av = a.data[rowOffsetA+i] // aᵗ[i,k] == a[k,i]
			rowOffsetC = i * b.cols
			for j = 0; j < b.cols; j++ {
				dst.data[rowOffsetC+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return nil
}

// MultiplyTransB computes dst = a·bᵗ without materializing bᵗ.
// Requires a.Cols == b.Cols, dst.Rows == a.Rows, dst.Cols == b.Rows;
// on mismatch dst is untouched.
//
// Implementation:
//   - Stage 1: validate the conformance contract.
//   - Stage 2: dst[i,j] is the dot product of row i of a and row j of b —
//     both contiguous in row-major storage, so the inner loop is a flat
//     dual-stride accumulation.
//
// Behavior highlights:
//   - dst must use storage disjoint from a and b (accumulation).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j→k loop order.
//
// Complexity:
//   - Time O(r*c*n) where n = a.Cols, Space O(1).
func MultiplyTransB[T Float](a, b, dst *Matrix[T]) error {
	if err := validateMultiplyTransB(a, b, dst); err != nil {
		return opErrorf(opMulTransB, err)
	}

	var (
		i, j, k                int
		rowOffsetA, rowOffsetB int
		sum                    T
	)
	for i = 0; i < a.rows; i++ {
		rowOffsetA = i * a.cols
		for j = 0; j < b.rows; j++ {
			rowOffsetB = j * b.cols
			sum = 0
			for k = 0; k < a.cols; k++ { // row-by-row dot product
				sum += a.data[rowOffsetA+k] * b.data[rowOffsetB+k]
			}
			dst.data[i*b.rows+j] = sum
		}
	}

	return nil
}
