// SPDX-License-Identifier: MIT

package scalar

// Zeroer is implemented by element types that define their own additive identity.
//
// Zero is invoked on the zero value of T, so implementations must not read
// receiver state. For pointer types this means Zero has to work on a nil
// receiver.
type Zeroer[T any] interface {
	Zero() T
}

// Ring is the arithmetic a user-defined element type provides in place of
// the + and * operators. Add and Mul must return fresh values and leave both
// operands untouched.
type Ring[T any] interface {
	Zeroer[T]
	Add(T) T
	Mul(T) T
}

// Rooter is implemented by element types that can take their own square root.
type Rooter[T any] interface {
	Sqrt() T
}

// Copyable marks element types whose values may be duplicated by plain
// assignment: the copy shares no pointers, slices or maps with the original.
//
// The marker is opt-in. A type that carries references (a wrapper around
// *big.Int, say) must not implement it, because replicating one value into
// many slots would alias them.
type Copyable interface {
	TriviallyCopyable()
}

// ZeroOf returns the additive identity declared by T.
// Complexity: O(1) plus the cost of T.Zero.
func ZeroOf[T Zeroer[T]]() T {
	var z T

	return z.Zero()
}

// IsCopyable reports whether T opted into the Copyable marker.
//
// The check runs on the zero value of T; for pointer element types the
// method set of the pointer type decides.
// Complexity: O(1).
func IsCopyable[T any]() bool {
	var z T
	_, ok := any(z).(Copyable)

	return ok
}
