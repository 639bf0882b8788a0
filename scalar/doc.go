// SPDX-License-Identifier: MIT

// Package scalar declares the element capabilities the matrix package builds on.
//
// What & Why:
//
//	A matrix only asks a few things of its elements: an additive identity,
//	addition, multiplication and, for norms, a square root. Built-in numeric
//	kinds get all of these from the language (operators plus conversion from
//	the untyped constant 0). User-defined element types opt in through small
//	method sets (Zeroer, Ring, Rooter).
//
// Capabilities:
//
//	Number    built-in integers, floats and complex numbers (operators).
//	Float     float32/float64; the kinds that have a square root.
//	Zeroer    Zero() T for user-defined additive identities.
//	Ring      Zeroer + Add + Mul for user-defined arithmetic.
//	Rooter    Sqrt() T for user-defined square roots.
//	Copyable  opt-in marker: duplicating a value by assignment is safe.
//
// Complexity:
//
//	Every function in this package is O(1) and allocation-free.
package scalar
