// SPDX-License-Identifier: MIT

// Package matrix - fixed-shape storage & accessors.
//
// Purpose:
//   - Own one flat buffer of exactly R*C elements, allocated at construction.
//   - Map (row, col) to the offset row + col*C and nothing else.
//   - Treat index misuse as a programmer error: panic with a wrapped ErrOutOfRange.
//
// Complexity quicksheet:
//   - construction O(R*C); At/Set/Ptr O(1); Clone/Values O(R*C).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- panic context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxPtr = "Ptr"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense R×C matrix of T.
//   - data holds R*C elements; (row, col) lives at data[row + col*C].
//   - The buffer is never resized and never shared with another Matrix.
//
// Use *Matrix values; copying the struct would share the buffer. Clone
// makes an independent copy.
type Matrix[T any, R, C Dim] struct {
	data []T // flat storage, len == R*C
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64, D1, D1])(nil)

// alloc validates R and C and returns a matrix whose buffer holds the Go
// zero value of T. Callers must overwrite every element before the matrix
// escapes unless the zero value is the intended content.
func alloc[T any, R, C Dim]() *Matrix[T, R, C] {
	rows, cols := shapeOf[R, C]()

	return &Matrix[T, R, C]{data: make([]T, rows*cols)}
}

// FromValues builds a matrix from vals given in storage order
// (offset row + col*C).
//
// Errors:
//   - ErrDimensionMismatch when len(vals) != R*C.
//
// Complexity:
//   - Time O(R*C), Space O(R*C). vals is copied, never retained.
func FromValues[T any, R, C Dim](vals ...T) (*Matrix[T, R, C], error) {
	m := alloc[T, R, C]()
	if len(vals) != len(m.data) {
		return nil, fmt.Errorf("FromValues: got %d values for %d×%d: %w",
			len(vals), m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	copy(m.data, vals)

	return m, nil
}

// Rows returns R. Complexity: O(1).
func (m *Matrix[T, R, C]) Rows() int { return dimLen[R]() }

// Cols returns C. Complexity: O(1).
func (m *Matrix[T, R, C]) Cols() int { return dimLen[C]() }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T, R, C]) Shape() (rows, cols int) { return dimLen[R](), dimLen[C]() }

// Len returns the element count R*C.
func (m *Matrix[T, R, C]) Len() int { return len(m.data) }

// offset maps (row, col) to row + col*C.
//
// Behavior highlights:
//   - Negative coordinates and offsets past the buffer panic with ErrOutOfRange.
//   - Any pair whose offset lands inside the buffer is accepted; the
//     coordinates are not checked one by one.
func (m *Matrix[T, R, C]) offset(method string, row, col int) int {
	off := row + col*dimLen[C]()
	if row < 0 || col < 0 || off < 0 || off >= len(m.data) {
		panic(fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange))
	}

	return off
}

// At returns the element at (row, col). Panics on out-of-range access.
// Complexity: O(1).
func (m *Matrix[T, R, C]) At(row, col int) T {
	return m.data[m.offset(ctxAt, row, col)]
}

// Set stores v at (row, col). Panics on out-of-range access.
// Complexity: O(1).
func (m *Matrix[T, R, C]) Set(row, col int, v T) {
	m.data[m.offset(ctxSet, row, col)] = v
}

// Ptr returns a pointer to the element at (row, col) for in-place updates.
// The pointer stays valid for the lifetime of m. Panics on out-of-range access.
// Complexity: O(1).
func (m *Matrix[T, R, C]) Ptr(row, col int) *T {
	return &m.data[m.offset(ctxPtr, row, col)]
}

// Clone returns a deep copy with its own buffer.
// Element values are copied by assignment; elements that hold references
// keep sharing what they point to.
// Complexity: O(R*C).
func (m *Matrix[T, R, C]) Clone() *Matrix[T, R, C] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T, R, C]{data: cp}
}

// Values returns a copy of the elements in storage order.
func (m *Matrix[T, R, C]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Do visits every element in storage order and calls f(row, col, v),
// where offset = row + col*C. Iteration stops when f returns false.
// Complexity: O(R*C), no allocations.
func (m *Matrix[T, R, C]) Do(f func(row, col int, v T) bool) {
	cols := dimLen[C]()
	for off, v := range m.data {
		if !f(off%cols, off/cols, v) {
			return
		}
	}
}

// String renders the buffer as lines of C elements each, values formatted
// with %v:
//
//	[1, 2]
//	[3, 4]
//
// Line k holds offsets k*C .. k*C+C-1, i.e. At(0,k) .. At(C-1,k).
// Intended for diagnostics.
func (m *Matrix[T, R, C]) String() string {
	var b strings.Builder
	cols := dimLen[C]()
	for base := 0; base < len(m.data); base += cols {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
