// Package fixmat is a small library of fixed-dimension matrices for Go,
// where the shape of every matrix is part of its type.
//
// 🚀 What is fixmat?
//
//	A generic, allocation-predictable matrix toolkit that brings together:
//		• Scalar capabilities: zero, ring arithmetic, square root
//		• Dense R×C storage with O(1) indexed access
//		• Zero construction: per-element or bulk-filled for copyable types
//		• Elementwise mapping, scaling and addition
//		• Matrix product with compile-time inner-dimension checks
//		• Euclidean norm of column vectors
//
// ✨ Why choose fixmat?
//
//   - Shape mistakes are compile errors: (M×N)·(N×L) is the only product that type-checks
//   - Deterministic – fixed loop orders, bit-for-bit reproducible float results
//   - Pure Go – no cgo, works with built-in numbers and user-defined rings alike
//
// Under the hood, everything is organized under two subpackages:
//
//	scalar/  element capabilities: Number/Float constraints, Zeroer, Ring, Rooter, Copyable
//	matrix/  Matrix[T, R, C], dimension markers D1..D16, arithmetic, norms, comparisons
//
// Quick example:
//
//	a, _ := matrix.FromValues[int, matrix.D2, matrix.D2](1, 2, 3, 4)
//	b, _ := matrix.FromValues[int, matrix.D2, matrix.D2](5, 6, 7, 8)
//	p := matrix.Mul(a, b) // *Matrix[int, D2, D2]
//
// See examples/ for a runnable power-iteration demo.
//
//	go get github.com/katalvlaran/fixmat
package fixmat
