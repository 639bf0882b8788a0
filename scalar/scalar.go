// SPDX-License-Identifier: MIT

package scalar

import "math"

// Signed matches every built-in signed integer kind.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every built-in unsigned integer kind.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer matches signed and unsigned integers.
type Integer interface {
	Signed | Unsigned
}

// Float matches the two IEEE-754 binary precisions.
type Float interface {
	~float32 | ~float64
}

// Complex matches the built-in complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Number matches every built-in numeric kind. All of them convert from the
// constant 0 and support + and * natively.
type Number interface {
	Integer | Float | Complex
}

// Zero returns the additive identity of a built-in numeric type.
// It is built by conversion from the integer 0, which every Number accepts.
// Complexity: O(1).
func Zero[T Number]() T {
	return T(0)
}

// Sqrt returns the non-negative square root of v.
//
// Behavior highlights:
//   - Computed in float64 and rounded once to T; for float32 this is the
//     correctly rounded result.
//   - Negative input yields NaN, +Inf yields +Inf, ±0 yields ±0. Nothing panics.
//
// Complexity: O(1).
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}
