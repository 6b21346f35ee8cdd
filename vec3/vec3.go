// SPDX-License-Identifier: MIT

package vec3

import "math"

// Float is the element-type constraint for Vec3. Each instantiation
// computes entirely in its own precision; there is no implicit promotion.
type Float interface {
	~float32 | ~float64
}

// Component indices of a Vec3.
const (
	X = iota // first component
	Y        // second component
	Z        // third component

	// Dims is the fixed component count.
	Dims
)

// Vec3 is a fixed-length 3D vector with value semantics: assignment
// copies elementwise and methods never mutate their receiver.
type Vec3[T Float] [Dims]T

// Add returns the elementwise sum v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[X] + w[X], v[Y] + w[Y], v[Z] + w[Z]}
}

// Sub returns the elementwise difference v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[X] - w[X], v[Y] - w[Y], v[Z] - w[Z]}
}

// MulAdd returns the scaled accumulate v + w*s, the fused update step of
// predictor/corrector loops.
func (v Vec3[T]) MulAdd(w Vec3[T], s T) Vec3[T] {
	return Vec3[T]{v[X] + w[X]*s, v[Y] + w[Y]*s, v[Z] + w[Z]*s}
}

// Dot returns the dot product Σ v[i]*w[i].
// Dot is commutative: v.Dot(w) == w.Dot(v).
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v[X]*w[X] + v[Y]*w[Y] + v[Z]*w[Z]
}

// Cross returns the standard 3D cross product v × w.
// Anticommutative: v.Cross(w) == w.Cross(v).Scale(-1). The result is a
// fresh value, so no aliasing discipline is required of the caller.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[Y]*w[Z] - v[Z]*w[Y],
		v[Z]*w[X] - v[X]*w[Z],
		v[X]*w[Y] - v[Y]*w[X],
	}
}

// LengthSquared returns Σ v[i]², the squared Euclidean norm.
// Cheaper than Length when only comparisons are needed.
func (v Vec3[T]) LengthSquared() T {
	return v[X]*v[X] + v[Y]*v[Y] + v[Z]*v[Z]
}

// Length returns the Euclidean norm √(Σ v[i]²).
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[X] * s, v[Y] * s, v[Z] * s}
}

// Unit returns v scaled to unit length: v / Length(v).
// A zero-length input divides by zero and yields NaN components; callers
// that need a guard should check LengthSquared first.
func (v Vec3[T]) Unit() Vec3[T] {
	return v.Scale(1 / v.Length())
}
