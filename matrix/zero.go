// SPDX-License-Identifier: MIT

// Package matrix - zero construction.
//
// Two strategies build a zero matrix:
//   - ZeroEach asks the element type for a fresh identity once per slot.
//     Always correct, including for element types that carry references.
//   - ZeroFill asks once and replicates the value into every slot. It is only
//     reachable for element types that opted into scalar.Copyable, so a
//     reference-carrying type can never end up with aliased cells.
//
// NewZero picks between them at the call site; New serves built-in numbers,
// which are always safe to replicate.

package matrix

import "github.com/katalvlaran/fixmat/scalar"

// CopyableZeroer is the constraint of the bulk-fill path: a user-defined
// additive identity plus the Copyable marker.
type CopyableZeroer[T any] interface {
	scalar.Zeroer[T]
	scalar.Copyable
}

// New returns an R×C matrix of built-in numbers with every element equal to
// scalar.Zero[T]().
// Complexity: Time O(R*C), Space O(R*C).
func New[T scalar.Number, R, C Dim]() *Matrix[T, R, C] {
	m := alloc[T, R, C]()
	fill(m.data, scalar.Zero[T]())

	return m
}

// NewZero returns an R×C matrix whose elements equal T's Zero().
//
// Implementation:
//   - Stage 1: detect the Copyable marker on T.
//   - Stage 2: bulk fill when present, per-element construction otherwise.
//
// Both stages yield observably identical matrices; the marker only decides
// how many times Zero() runs.
// Complexity: Time O(R*C), Space O(R*C).
func NewZero[T scalar.Zeroer[T], R, C Dim]() *Matrix[T, R, C] {
	if scalar.IsCopyable[T]() {
		m := alloc[T, R, C]()
		fill(m.data, scalar.ZeroOf[T]())

		return m
	}

	return ZeroEach[T, R, C]()
}

// ZeroEach builds every element with its own Zero() call.
// Complexity: Time O(R*C) Zero() calls, Space O(R*C).
func ZeroEach[T scalar.Zeroer[T], R, C Dim]() *Matrix[T, R, C] {
	m := alloc[T, R, C]()
	for i := range m.data {
		m.data[i] = scalar.ZeroOf[T]()
	}

	return m
}

// ZeroFill computes Zero() once and replicates it into every element.
// Complexity: Time O(R*C) copies and one Zero() call, Space O(R*C).
func ZeroFill[T CopyableZeroer[T], R, C Dim]() *Matrix[T, R, C] {
	m := alloc[T, R, C]()
	fill(m.data, scalar.ZeroOf[T]())

	return m
}

// fill writes v into every slot of dst.
func fill[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}
