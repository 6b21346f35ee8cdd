// SPDX-License-Identifier: MIT

// Package matrix implements a row-major matrix engine over caller-owned
// storage, duplicated across two floating-point precisions through a
// single generic implementation.
//
// 🚀 What is matrix?
//
//	A dynamically-dimensioned {rows, cols, data} descriptor plus the
//	arithmetic kernels an embedded estimator actually needs:
//	  • element access & mutation (At, Set, AddAt, SetRow, SetColumn)
//	  • construction & reset (New, FromSlice, Zero, SetIdentity)
//	  • elementwise arithmetic (Add, AddInPlace, Average, Scale)
//	  • identity composition (AddIdentity, MinusIdentity, IdentityMinus)
//	  • structural transforms (Copy, Clone, Transpose)
//	  • the multiply family (Multiply, MultiplyTransA, MultiplyTransB)
//	  • the dimension-restricted closed-form Inverse (1×1, 2×2, 3×3)
//	  • reductions (DotRows, IdentityError)
//
// ⚙️ Storage model:
//
//	A Matrix[T] is a *view*: rows/cols metadata over a flat row-major
//	buffer whose length is exactly rows*cols. The buffer may live
//	anywhere — a static array, a stack slice, a field of a larger
//	struct — and is wrapped with FromSlice. New is the one allocating
//	constructor and returns a descriptor owning fresh zeroed storage.
//	The engine never retains a reference beyond a single call, so
//	concurrent callers operating on disjoint buffers need no locking.
//
// Error policy:
//
//	The failure taxonomy is small: nil operands, dimension/shape
//	mismatch, and the singular-matrix case of Inverse. Fallible kernels
//	return sentinel errors (ErrNilMatrix, ErrDimensionMismatch,
//	ErrSingular) matchable via errors.Is, and leave the destination
//	untouched on failure. Element indices are the caller's contract:
//	out-of-range indices are not a reportable error kind and panic via
//	the runtime bounds check.
//
// Precision policy:
//
//	Every kernel is generic over Float (~float32 | ~float64). All
//	intermediates are computed in the instantiated precision; the two
//	precisions never interoperate and nothing converts between them.
//
// Complexity:
//
//   - Multiply family: O(rows·inner·cols) canonical triple loop —
//     no blocking or tiling; the target is small embedded-class
//     matrices, not HPC throughput.
//   - Inverse: O(1) at the supported sizes (fixed cofactor formulas).
//
// See examples in example_test.go.
package matrix
