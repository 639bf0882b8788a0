// SPDX-License-Identifier: MIT

// Package matrix implements dense matrices whose dimensions are part of the type.
//
// What & Why:
//
//	Matrix[T, R, C] holds R×C elements of T in one flat buffer. R and C are
//	marker types implementing Dim, so a 2×3 matrix and a 3×2 matrix are
//	different Go types. Multiplying operands with mismatched inner
//	dimensions, or asking for the norm of something that is not a column
//	vector, fails to compile instead of failing at runtime.
//
// Element types:
//
//   - Built-in numbers (scalar.Number) use the operator-based functions:
//     New, Scale, Add, Mul, NormSquared, Norm.
//   - User-defined types implementing scalar.Ring use the *Ring variants:
//     NewZero, ScaleRing, AddRing, MulRing, NormSquaredRing, NormRing.
//
// Layout:
//
//	Element (row, col) lives at offset row + col*C. Read against the usual
//	row-major picture, the first coordinate walks along a stored row of C
//	elements and the second selects the row. Mul, Transpose and String all
//	follow this mapping.
//
// Errors:
//
//	Dimension errors are compile errors. Index misuse is a programmer error
//	and panics with an error wrapping ErrOutOfRange. Constructors that take
//	runtime input (FromValues) return wrapped sentinels instead.
//
// Complexity:
//
//	At/Set/Ptr O(1); zero construction, Apply, Scale, Add, Clone O(R*C);
//	Mul O(M*N*L); NormSquared/Norm O(R).
package matrix
