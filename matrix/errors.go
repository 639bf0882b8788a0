// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Call sites wrap with context via
// fmt.Errorf("...: %w", ErrX); callers match with errors.Is. Contract
// violations panic with such a wrapped error as the panic value, so a
// recovering caller can still use errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is raised when a Dim reports a non-positive length.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that (row, col) maps outside the element buffer.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that runtime input does not match the
	// static shape, e.g. FromValues with the wrong number of values.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
