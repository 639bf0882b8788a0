// SPDX-License-Identifier: MIT
// Package matrix: scalar scaling, elementwise sum, matrix product, transpose.
//
// Purpose:
//   - Shape compatibility lives in the signatures. Mul only accepts
//     (M×N)·(N×L); Add only accepts operands of one shape. Nothing is
//     validated at runtime because nothing can go wrong there.
//   - Each operation has an operator-based form for scalar.Number and a
//     *Ring form for method-based element types; both run the same kernel.
//
// Determinism:
//   - Fixed loop orders; accumulations run left to right from the additive
//     identity, so floating-point results are reproducible bit for bit.

package matrix

import "github.com/katalvlaran/fixmat/scalar"

// Scale multiplies every element of m by s in place and returns m.
//
// Behavior highlights:
//   - Implemented with ApplyInPlace; no allocation.
//   - Keep the original by scaling a Clone: Scale(m.Clone(), s).
//
// Complexity: Time O(R*C), Space O(1).
func Scale[T scalar.Number, R, C Dim](m *Matrix[T, R, C], s T) *Matrix[T, R, C] {
	return m.ApplyInPlace(func(v T) T { return v * s })
}

// ScaleRing is Scale for method-based element types: v becomes v.Mul(s).
// Complexity: Time O(R*C), Space O(1).
func ScaleRing[T scalar.Ring[T], R, C Dim](m *Matrix[T, R, C], s T) *Matrix[T, R, C] {
	return m.ApplyInPlace(func(v T) T { return v.Mul(s) })
}

// Add returns a new matrix with out[k] = a[k] + b[k].
// Complexity: Time O(R*C), Space O(R*C).
func Add[T scalar.Number, R, C Dim](a, b *Matrix[T, R, C]) *Matrix[T, R, C] {
	return addKernel[T](numeric[T]{}, a, b)
}

// AddRing is Add for method-based element types.
func AddRing[T scalar.Ring[T], R, C Dim](a, b *Matrix[T, R, C]) *Matrix[T, R, C] {
	return addKernel[T](ring[T]{}, a, b)
}

func addKernel[T any, R, C Dim](ar arithmetic[T], a, b *Matrix[T, R, C]) *Matrix[T, R, C] {
	out := alloc[T, R, C]()
	for i := range out.data {
		out.data[i] = ar.add(a.data[i], b.data[i])
	}

	return out
}

// Mul returns the product of a (M×N) and b (N×L) as a new M×L matrix.
//
// Implementation:
//   - Stage 1: allocate the M×L result.
//   - Stage 2: for each result slot idx (row = idx/L, col = idx%L) fold
//     acc = acc + a.At(i, row) * b.At(col, i) over i = 0..N-1, starting
//     from the additive identity.
//
// Behavior highlights:
//   - The inner dimension N is shared by both signatures, so a mismatched
//     product does not compile.
//   - Plain O(M*N*L) reference loop: no blocking, no zero skipping, every
//     product is accumulated in index order.
//   - Operands are never mutated; a and b may be the same matrix.
//
// Inputs:
//   - a: left operand, M×N.
//   - b: right operand, N×L.
//
// Returns:
//   - *Matrix[T, M, L]: freshly allocated product.
//
// Complexity:
//   - Time O(M*N*L), Space O(M*L).
func Mul[T scalar.Number, M, N, L Dim](a *Matrix[T, M, N], b *Matrix[T, N, L]) *Matrix[T, M, L] {
	return mulKernel[T](numeric[T]{}, a, b)
}

// MulRing is Mul for method-based element types; each step computes
// acc.Add(x.Mul(y)).
// Complexity: Time O(M*N*L), Space O(M*L).
func MulRing[T scalar.Ring[T], M, N, L Dim](a *Matrix[T, M, N], b *Matrix[T, N, L]) *Matrix[T, M, L] {
	return mulKernel[T](ring[T]{}, a, b)
}

// mulKernel walks the flat buffers directly. With a.At(i, row) at
// a.data[i + row*N] and b.At(col, i) at b.data[col + i*L], the product for
// slot idx is the dot of a's stored row `row` with b's stored column `col`.
func mulKernel[T any, M, N, L Dim](ar arithmetic[T], a *Matrix[T, M, N], b *Matrix[T, N, L]) *Matrix[T, M, L] {
	out := alloc[T, M, L]()
	n, l := dimLen[N](), dimLen[L]()

	var (
		idx, row, col, i int // loop iterators
		rowBase          int // offset of a's stored row
		acc              T
	)
	for idx = range out.data {
		row, col = idx/l, idx%l
		rowBase = row * n
		acc = ar.zero()
		for i = 0; i < n; i++ {
			acc = ar.add(acc, ar.mul(a.data[rowBase+i], b.data[col+i*l]))
		}
		out.data[idx] = acc
	}

	return out
}

// Transpose returns a new C×R matrix t with t.At(p, q) == m.At(q, p).
//
// Behavior highlights:
//   - Transpose(Transpose(m)) equals m.
//   - Transpose(Mul(a, b)) equals Mul(Transpose(b), Transpose(a)) for exact
//     element types.
//
// Complexity: Time O(R*C), Space O(R*C).
func Transpose[T any, R, C Dim](m *Matrix[T, R, C]) *Matrix[T, C, R] {
	out := alloc[T, C, R]()
	rows, cols := dimLen[R](), dimLen[C]()

	var p, q int
	for p = 0; p < rows; p++ {
		for q = 0; q < cols; q++ {
			out.data[p+q*rows] = m.data[q+p*cols]
		}
	}

	return out
}
