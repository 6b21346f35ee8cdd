// SPDX-License-Identifier: MIT
// Package matrix: dimension-restricted closed-form inverse.
// Inverse is defined only for the smallest square dimensions where a
// cofactor/adjugate formula is tractable. Larger dimensions are explicitly
// unsupported — the kernel never falls back to Gaussian elimination or LU.

package matrix

// Inverse computes dst = a⁻¹ using the closed-form cofactor/adjugate
// formula. Supported shapes: square with n ∈ {1, 2, 3}. Any other shape
// fails unconditionally with ErrDimensionMismatch.
//
// Implementation:
//   - Stage 1: validate non-nil, square, same-shape dst, supported n.
//   - Stage 2: compute the determinant in precision T; fail with
//     ErrSingular when it is exactly zero. Near-singular determinants are
//     NOT specially detected — conditioning is the caller's concern.
//   - Stage 3: compute the adjugate into locals, then write dst in one
//     pass. Because all reads complete before the first write, dst may
//     alias a.
//
// Inputs:
//   - a  : source matrix, square, n ∈ {1, 2, 3}.
//   - dst: destination with the same shape as a; may alias a.
//
// Errors:
//   - ErrNilMatrix         (nil operand or destination).
//   - ErrDimensionMismatch (non-square a, shape mismatch with dst, or any
//     dimension outside {1, 2, 3}).
//   - ErrSingular          (determinant exactly zero).
//   - dst is untouched on every failure.
//
// Determinism:
//   - Fixed algebraic formulas; no pivoting, no iteration.
//
// Complexity:
//   - Time O(1) at the supported sizes, Space O(1).
func Inverse[T Float](a, dst *Matrix[T]) error {
	if err := validateSquareNonNil(a); err != nil {
		return opErrorf(opInverse, err)
	}
	if err := validateNotNil(dst); err != nil {
		return opErrorf(opInverse, err)
	}
	if err := validateSameShape(a, dst); err != nil {
		return opErrorf(opInverse, err)
	}

	switch a.rows {
	case 1:
		return inverse1(a, dst)
	case 2:
		return inverse2(a, dst)
	case 3:
		return inverse3(a, dst)
	default:
		// No decomposition fallback exists for larger dimensions.
		return opErrorf(opInverse, ErrDimensionMismatch)
	}
}

// inverse1 handles the 1×1 case: dst = [1/a₀₀].
func inverse1[T Float](a, dst *Matrix[T]) error {
	d := a.data[0] // the determinant of a 1×1 matrix is its element
	if d == 0 {
		return opErrorf(opInverse, ErrSingular)
	}
	dst.data[0] = 1 / d

	return nil
}

// inverse2 handles the 2×2 case: dst = adj(a)/det(a) with
// adj([[a,b],[c,d]]) = [[d,-b],[-c,a]].
func inverse2[T Float](a, dst *Matrix[T]) error {
	var (
		a00, a01 = a.data[0], a.data[1]
		a10, a11 = a.data[2], a.data[3]
	)
	det := a00*a11 - a01*a10
	if det == 0 {
		return opErrorf(opInverse, ErrSingular)
	}

	// All reads are complete; writing now keeps dst==a aliasing safe.
	inv := 1 / det
	dst.data[0] = a11 * inv
	dst.data[1] = -a01 * inv
	dst.data[2] = -a10 * inv
	dst.data[3] = a00 * inv

	return nil
}

// inverse3 handles the 3×3 case via the cofactor expansion along the
// first row: det = a₀₀C₀₀ + a₀₁C₀₁ + a₀₂C₀₂, dst = adj(a)/det where
// adj(a)[i,j] = C(j,i) (transposed cofactors).
func inverse3[T Float](a, dst *Matrix[T]) error {
	var (
		a00, a01, a02 = a.data[0], a.data[1], a.data[2]
		a10, a11, a12 = a.data[3], a.data[4], a.data[5]
		a20, a21, a22 = a.data[6], a.data[7], a.data[8]
	)

	// Cofactors of the first row, reused for the determinant.
	c00 := a11*a22 - a12*a21
	c01 := a12*a20 - a10*a22
	c02 := a10*a21 - a11*a20

	det := a00*c00 + a01*c01 + a02*c02
	if det == 0 {
		return opErrorf(opInverse, ErrSingular)
	}

	inv := 1 / det
	dst.data[0] = c00 * inv
	dst.data[1] = (a02*a21 - a01*a22) * inv
	dst.data[2] = (a01*a12 - a02*a11) * inv
	dst.data[3] = c01 * inv
	dst.data[4] = (a00*a22 - a02*a20) * inv
	dst.data[5] = (a02*a10 - a00*a12) * inv
	dst.data[6] = c02 * inv
	dst.data[7] = (a01*a20 - a00*a21) * inv
	dst.data[8] = (a00*a11 - a01*a10) * inv

	return nil
}
