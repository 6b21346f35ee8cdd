// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Every validator is O(1): shapes are metadata, never scanned.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Kernels wrap the returned sentinel with their operation tag via opErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew           = "New"
	opFromSlice     = "FromSlice"
	opCopy          = "Copy"
	opAdd           = "Add"
	opAddInPlace    = "AddInPlace"
	opAverage       = "Average"
	opSetIdentity   = "SetIdentity"
	opAddIdentity   = "AddIdentity"
	opMinusIdentity = "MinusIdentity"
	opIdentityMinus = "IdentityMinus"
	opTranspose     = "Transpose"
	opMultiply      = "Multiply"
	opMulTransA     = "MultiplyTransA"
	opMulTransB     = "MultiplyTransB"
	opInverse       = "Inverse"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is keeps matching the sentinel. Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func validateNotNil[T Float](m *Matrix[T]) error {
	// Fail with the unified sentinel; the kernel adds its operation tag.
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (caller must ensure). Complexity: O(1).
func validateSameShape[T Float](a, b *Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare ensures m is square (rows == cols).
// Assumes m is non-nil. Complexity: O(1).
func validateSquare[T Float](m *Matrix[T]) error {
	if m.rows != m.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func validateBinarySameShape[T Float](a, b *Matrix[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}

	return validateSameShape(a, b)
}

// validateSquareNonNil — composite: NotNil → Square. Complexity: O(1).
func validateSquareNonNil[T Float](m *Matrix[T]) error {
	if err := validateNotNil(m); err != nil {
		return err
	}

	return validateSquare(m)
}

// validateMultiply checks the full conformance contract of C = A·B:
// a.cols == b.rows, dst.rows == a.rows, dst.cols == b.cols. Complexity: O(1).
func validateMultiply[T Float](a, b, dst *Matrix[T]) error {
	if err := validateTernaryNotNil(a, b, dst); err != nil {
		return err
	}
	if a.cols != b.rows || dst.rows != a.rows || dst.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMultiplyTransA checks the conformance contract of C = Aᵗ·B:
// a.rows == b.rows, dst.rows == a.cols, dst.cols == b.cols. Complexity: O(1).
func validateMultiplyTransA[T Float](a, b, dst *Matrix[T]) error {
	if err := validateTernaryNotNil(a, b, dst); err != nil {
		return err
	}
	if a.rows != b.rows || dst.rows != a.cols || dst.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMultiplyTransB checks the conformance contract of C = A·Bᵗ:
// a.cols == b.cols, dst.rows == a.rows, dst.cols == b.rows. Complexity: O(1).
func validateMultiplyTransB[T Float](a, b, dst *Matrix[T]) error {
	if err := validateTernaryNotNil(a, b, dst); err != nil {
		return err
	}
	if a.cols != b.cols || dst.rows != a.rows || dst.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// validateTranspose checks dst has the flipped shape of a:
// dst.rows == a.cols && dst.cols == a.rows. Complexity: O(1).
func validateTranspose[T Float](a, dst *Matrix[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(dst); err != nil {
		return err
	}
	if dst.rows != a.cols || dst.cols != a.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// validateTernaryNotNil — composite nil check over two operands and a
// destination. Complexity: O(1).
func validateTernaryNotNil[T Float](a, b, dst *Matrix[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}

	return validateNotNil(dst)
}
