// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/fixmat/scalar"

// RootRing is the constraint of NormRing: ring arithmetic plus a square root.
type RootRing[T any] interface {
	scalar.Ring[T]
	scalar.Rooter[T]
}

// NormSquared returns the sum of v[i]*v[i] over the column vector v,
// accumulated left to right from zero.
// Only R×1 matrices are accepted; any other shape does not compile.
// Complexity: Time O(R), Space O(1).
func NormSquared[T scalar.Number, R Dim](v *Matrix[T, R, D1]) T {
	return normSquaredKernel[T](numeric[T]{}, v)
}

// Norm returns the Euclidean length of the column vector v:
// scalar.Sqrt(NormSquared(v)).
// Complexity: Time O(R), Space O(1).
func Norm[T scalar.Float, R Dim](v *Matrix[T, R, D1]) T {
	return scalar.Sqrt(NormSquared(v))
}

// NormSquaredRing is NormSquared for method-based element types.
func NormSquaredRing[T scalar.Ring[T], R Dim](v *Matrix[T, R, D1]) T {
	return normSquaredKernel[T](ring[T]{}, v)
}

// NormRing is Norm for method-based element types: NormSquaredRing(v).Sqrt().
func NormRing[T RootRing[T], R Dim](v *Matrix[T, R, D1]) T {
	return NormSquaredRing(v).Sqrt()
}

func normSquaredKernel[T any, R Dim](ar arithmetic[T], v *Matrix[T, R, D1]) T {
	acc := ar.zero()
	for _, x := range v.data {
		acc = ar.add(acc, ar.mul(x, x))
	}

	return acc
}
