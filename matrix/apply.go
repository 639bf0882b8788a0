// SPDX-License-Identifier: MIT

package matrix

// Apply returns a new matrix with f applied to every element of m.
// The shape is preserved; only the element type and values may change.
//
// Behavior highlights:
//   - m is not modified.
//   - f is called exactly once per element, in storage order. Keep f pure;
//     the visiting order is not part of the contract.
//
// Complexity: Time O(R*C), Space O(R*C).
func Apply[T, U any, R, C Dim](m *Matrix[T, R, C], f func(T) U) *Matrix[U, R, C] {
	out := alloc[U, R, C]()
	for i, v := range m.data {
		out.data[i] = f(v)
	}

	return out
}

// ApplyInPlace replaces every element v with f(v) and returns m.
// No allocation; f is called once per element in storage order.
// Complexity: Time O(R*C), Space O(1).
func (m *Matrix[T, R, C]) ApplyInPlace(f func(T) T) *Matrix[T, R, C] {
	for i, v := range m.data {
		m.data[i] = f(v)
	}

	return m
}
