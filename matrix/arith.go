// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/fixmat/scalar"

// arithmetic is the element algebra the kernels in this package run on.
// Built-in numbers and scalar.Ring types each get one implementation, so
// Mul/MulRing (and friends) share a single loop.
type arithmetic[T any] interface {
	zero() T
	add(a, b T) T
	mul(a, b T) T
}

// numeric is the operator-based algebra of built-in numbers.
type numeric[T scalar.Number] struct{}

func (numeric[T]) zero() T { return scalar.Zero[T]() }

func (numeric[T]) add(a, b T) T { return a + b }

// mul rounds the product to T explicitly. The conversion stops the compiler
// from fusing it with a following add into an FMA, so accumulations keep
// the same rounding on every target.
func (numeric[T]) mul(a, b T) T { return T(a * b) }

// ring forwards to the element's own methods.
type ring[T scalar.Ring[T]] struct{}

func (ring[T]) zero() T { return scalar.ZeroOf[T]() }

func (ring[T]) add(a, b T) T { return a.Add(b) }

func (ring[T]) mul(a, b T) T { return a.Mul(b) }
