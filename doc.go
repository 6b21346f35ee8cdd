// Package linalg is a small linear-algebra kernel for embedded and
// real-time workloads — fixed-length 3D vector arithmetic plus a
// general row-major matrix engine with a closed-form inverse for the
// smallest dimensions.
//
// 🚀 What is linalg?
//
//	A deterministic, allocation-conscious library that brings together:
//		• Vector3 kernel: copy, sum, difference, dot, cross, scaled
//		  accumulate, length, unit-normalize
//		• Matrix engine: element access, row/column fill, identity
//		  manipulation, transpose, elementwise add/average/scale
//		• Multiply family: A·B, Aᵗ·B and A·Bᵗ without materializing
//		  the transpose
//		• Closed-form inverse for 1×1, 2×2 and 3×3 matrices
//		• Identity error metric for validating near-orthonormal results
//
// ✨ Why choose linalg?
//
//   - Caller-owned storage – descriptors are views over your buffers;
//     the engine never retains a reference beyond a single call
//   - Dual precision – one generic implementation instantiated for
//     float64 and float32, with no implicit promotion between them
//   - Deterministic kernels – fixed loop orders, no hidden allocation
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	vec3/   — fixed-length-3 vector operations (value semantics)
//	matrix/ — row-major {rows, cols, data} descriptor + kernels
//
// Quick example:
//
//	a, _ := matrix.FromSlice[float64](2, 3, buf[:])
//	c, _ := matrix.New[float64](2, 2)
//	if err := matrix.MultiplyTransB(a, a, c); err != nil { ... }
//
// Inverse is restricted to dimensions where a cofactor formula is
// tractable; larger sizes return ErrDimensionMismatch. This is a kernel
// for small embedded-class matrices, not an LAPACK.
//
//	go get github.com/katalvlaran/linalg
package linalg
