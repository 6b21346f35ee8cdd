// SPDX-License-Identifier: MIT
// Package matrix: elementwise arithmetic, identity composition and
// reductions. All kernels validate fail-fast and leave the destination
// untouched on failure; successful kernels run deterministic flat loops
// over the row-major backing storage.

package matrix

// SetIdentity overwrites m with the identity pattern: diagonal 1,
// off-diagonal 0. Requires a square matrix.
//
// Inputs:
//   - m: non-nil square matrix (mutated in place).
//
// Errors:
//   - ErrDimensionMismatch (non-square); m is untouched on failure.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func (m *Matrix[T]) SetIdentity() error {
	// Validate the square precondition before the first write.
	if err := validateSquare(m); err != nil {
		return opErrorf(opSetIdentity, err)
	}

	var i, n int // predeclared iterators (deterministic flat walk)
	n = m.rows * m.cols
	for i = 0; i < n; i++ {
		m.data[i] = 0
	}
	for i = 0; i < m.rows; i++ {
		m.data[i*m.cols+i] = 1
	}

	return nil
}

// AddIdentity computes m = m + I in place. Requires a square matrix.
//
// Errors:
//   - ErrDimensionMismatch (non-square); m is untouched on failure.
//
// Complexity:
//   - Time O(n) (diagonal only), Space O(1).
func (m *Matrix[T]) AddIdentity() error {
	if err := validateSquare(m); err != nil {
		return opErrorf(opAddIdentity, err)
	}

	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+i] += 1
	}

	return nil
}

// MinusIdentity computes m = m - I in place. Requires a square matrix.
//
// Errors:
//   - ErrDimensionMismatch (non-square); m is untouched on failure.
//
// Complexity:
//   - Time O(n) (diagonal only), Space O(1).
func (m *Matrix[T]) MinusIdentity() error {
	if err := validateSquare(m); err != nil {
		return opErrorf(opMinusIdentity, err)
	}

	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+i] -= 1
	}

	return nil
}

// IdentityMinus computes m = I - m in place (negate everything, then add
// one to the diagonal). Requires a square matrix.
//
// Errors:
//   - ErrDimensionMismatch (non-square); m is untouched on failure.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func (m *Matrix[T]) IdentityMinus() error {
	if err := validateSquare(m); err != nil {
		return opErrorf(opIdentityMinus, err)
	}

	var i, n int
	n = m.rows * m.cols
	for i = 0; i < n; i++ {
		m.data[i] = -m.data[i]
	}
	for i = 0; i < m.rows; i++ {
		m.data[i*m.cols+i] += 1
	}

	return nil
}

// AddInPlace computes m = m + b in place. Shapes must match.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; m is untouched on failure.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	if err := validateBinarySameShape(m, b); err != nil {
		return opErrorf(opAddInPlace, err)
	}

	var i, n int
	n = m.rows * m.cols
	for i = 0; i < n; i++ { // deterministic 0..n-1
		m.data[i] += b.data[i]
	}

	return nil
}

// Scale multiplies every element by s in place. No failure path: there is
// no shape precondition to violate. NaN/Inf scalars propagate per IEEE.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) Scale(s T) {
	var i, n int
	n = m.rows * m.cols
	for i = 0; i < n; i++ {
		m.data[i] *= s
	}
}

// DotRows returns the dot product of rows rowA and rowB of m.
// Row indices must be valid (see At); both rows have length cols.
// Complexity: Time O(cols), Space O(1).
func (m *Matrix[T]) DotRows(rowA, rowB int) T {
	var (
		baseA = rowA * m.cols // flat offset of row A
		baseB = rowB * m.cols // flat offset of row B
		sum   T
	)
	for j := 0; j < m.cols; j++ {
		sum += m.data[baseA+j] * m.data[baseB+j]
	}

	return sum
}

// IdentityError returns the sum of squared deviations of m from the
// identity pattern (1 on the r==c diagonal, 0 elsewhere). The metric is
// useful as a convergence check for iterative algorithms whose result
// should be orthonormal: IdentityError(A·Aᵗ) ≈ 0 for orthonormal A.
// Any shape is accepted; a rectangular matrix simply has a shorter
// diagonal. Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) IdentityError() T {
	var (
		i, j, base int
		d, sum     T
	)
	for i = 0; i < m.rows; i++ { // fixed i→j order
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			d = m.data[base+j]
			if i == j {
				d -= 1 // deviation from the unit diagonal
			}
			sum += d * d
		}
	}

	return sum
}

// Copy copies src into dst elementwise. Shapes must match exactly; on
// mismatch dst is untouched.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Copy[T Float](src, dst *Matrix[T]) error {
	if err := validateBinarySameShape(src, dst); err != nil {
		return opErrorf(opCopy, err)
	}

	// Flat copy over the shared row-major layout.
	copy(dst.data, src.data)

	return nil
}

// Add computes dst = a + b elementwise. All three shapes must match.
// dst may alias a or b: the kernel is a flat elementwise pass, so
// self-assignment is well defined.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; dst is untouched on failure.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Add[T Float](a, b, dst *Matrix[T]) error {
	// Validate operands against each other, then the destination.
	if err := validateBinarySameShape(a, b); err != nil {
		return opErrorf(opAdd, err)
	}
	if err := validateBinarySameShape(a, dst); err != nil {
		return opErrorf(opAdd, err)
	}

	var i, n int
	n = a.rows * a.cols
	for i = 0; i < n; i++ { // deterministic 0..n-1
		dst.data[i] = a.data[i] + b.data[i]
	}

	return nil
}

// Average computes dst = (a + b) / 2 elementwise. All three shapes must
// match. dst may alias a or b (flat elementwise pass).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; dst is untouched on failure.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Average[T Float](a, b, dst *Matrix[T]) error {
	if err := validateBinarySameShape(a, b); err != nil {
		return opErrorf(opAverage, err)
	}
	if err := validateBinarySameShape(a, dst); err != nil {
		return opErrorf(opAverage, err)
	}

	// half is computed once in precision T (no promotion).
	var half T = 0.5
	var i, n int
	n = a.rows * a.cols
	for i = 0; i < n; i++ {
		dst.data[i] = (a.data[i] + b.data[i]) * half
	}

	return nil
}
