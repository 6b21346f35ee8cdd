// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for index-contract violations caught by the runtime.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with opErrorf at the facade —
// callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil *Matrix (operand or destination)
	// was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands or between operands and the destination: Add/Average with
	// different shapes, Multiply where a.Cols != b.Rows, Transpose into a
	// non-flipped destination, identity ops on a non-square matrix, and
	// Inverse on any unsupported dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by Inverse when the determinant is exactly
	// zero. Near-singular inputs are NOT specially detected; callers
	// operating near machine epsilon must apply their own conditioning.
	ErrSingular = errors.New("matrix: singular matrix")
)
