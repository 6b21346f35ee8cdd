// SPDX-License-Identifier: MIT

// Package vec3 implements closed-form arithmetic on fixed-length 3D
// vectors, duplicated across two floating-point precisions through a
// single generic implementation.
//
// 🚀 What is vec3?
//
//	A [3]T value type with the closed-form operations an embedded
//	estimator needs next to its matrix engine:
//	  • Add, Sub — elementwise sum and difference
//	  • MulAdd   — scaled accumulate v + w·s
//	  • Dot, Cross — scalar and vector products
//	  • LengthSquared, Length — Euclidean norms
//	  • Scale, Unit — scalar multiply and unit-normalize
//
// ⚙️ Value semantics:
//
//	Vec3 is a plain array value. Assignment IS the elementwise copy,
//	every operation returns a fresh value, and the aliasing hazards of
//	buffer-based cross products simply do not exist: inputs are never
//	mutated. There are no error conditions — shapes are fixed at the
//	type level, so there is nothing to validate.
//
// Precision policy:
//
//	Every operation is generic over Float (~float32 | ~float64) and
//	computes entirely in the instantiated precision; the two
//	precisions never interoperate. Length and Unit round through the
//	float64 square root and convert back, the standard Go idiom for a
//	float32 sqrt.
//
// Edge case:
//
//	Unit of a zero-length vector divides by zero and yields NaN/Inf
//	per the precision's IEEE semantics — untrapped; avoiding zero
//	vectors is the caller's responsibility.
//
// Complexity: every operation is O(1) with no allocation.
package vec3
