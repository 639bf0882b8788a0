// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and element types for the kernels.
//   • Keep all data exact (small integers) unless a test is about rounding.

package matrix_test

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/scalar"
)

// mod7 is a value-type ring (integers modulo 7) that opts into bulk fill.
type mod7 uint8

func (mod7) Zero() mod7         { return 0 }
func (a mod7) Add(b mod7) mod7  { return (a + b) % 7 }
func (a mod7) Mul(b mod7) mod7  { return mod7((uint16(a) * uint16(b)) % 7) }
func (mod7) TriviallyCopyable() {}

func toMod7(v int) mod7 { return mod7(((v % 7) + 7) % 7) }

// bigInt wraps *big.Int. It must never be bulk-filled: copies share the pointer.
type bigInt struct{ v *big.Int }

func (bigInt) Zero() bigInt { return bigInt{v: new(big.Int)} }

func (a bigInt) Add(b bigInt) bigInt { return bigInt{v: new(big.Int).Add(a.v, b.v)} }

func (a bigInt) Mul(b bigInt) bigInt { return bigInt{v: new(big.Int).Mul(a.v, b.v)} }

func newBig(v int64) bigInt { return bigInt{v: big.NewInt(v)} }

// real64 is a float64 that goes through the method-based arithmetic path.
type real64 float64

func (real64) Zero() real64          { return 0 }
func (a real64) Add(b real64) real64 { return real64(float64(a) + float64(b)) }
func (a real64) Mul(b real64) real64 { return real64(float64(a) * float64(b)) }
func (a real64) Sqrt() real64        { return real64(math.Sqrt(float64(a))) }
func (real64) TriviallyCopyable()    {}

// zeroCalls counts Zero() invocations of the counting element types below.
var zeroCalls int

// countedRef has no Copyable marker: every slot triggers a Zero() call.
type countedRef struct{ n int }

func (countedRef) Zero() countedRef {
	zeroCalls++

	return countedRef{}
}

// countedVal carries the marker: one Zero() call per matrix.
type countedVal struct{ n int }

func (countedVal) Zero() countedVal {
	zeroCalls++

	return countedVal{}
}

func (countedVal) TriviallyCopyable() {}

// Compile-time capability checks for the fixtures.
var (
	_ scalar.Ring[mod7]     = mod7(0)
	_ scalar.Copyable       = mod7(0)
	_ scalar.Ring[bigInt]   = bigInt{}
	_ scalar.Ring[real64]   = real64(0)
	_ scalar.Rooter[real64] = real64(0)
)

// requirePanicIs RUNS f and asserts that it panics with an error matching target.
// Implementation:
//   - Stage 1: recover the panic value inside a deferred closure.
//   - Stage 2: assert it is an error and errors.Is(err, target).
func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		f()
	}()

	require.NotNil(t, recovered, "expected a panic wrapping %v", target)
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %#v is not an error", recovered)
	require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
}

// mustFromValues BUILDS an R×C matrix from storage-order values or fails the test.
func mustFromValues[T any, R, C matrix.Dim](t testing.TB, vals ...T) *matrix.Matrix[T, R, C] {
	t.Helper()
	m, err := matrix.FromValues[T, R, C](vals...)
	require.NoError(t, err)

	return m
}

// randInts FILLS an R×C int matrix with values in [-9, 9] from a seeded source.
func randInts[R, C matrix.Dim](rng *rand.Rand) *matrix.Matrix[int, R, C] {
	m := matrix.New[int, R, C]()
	m.ApplyInPlace(func(int) int { return rng.Intn(19) - 9 })

	return m
}

// randFloats FILLS an R×C float64 matrix with values in [-1, 1).
func randFloats[R, C matrix.Dim](rng *rand.Rand) *matrix.Matrix[float64, R, C] {
	m := matrix.New[float64, R, C]()
	m.ApplyInPlace(func(float64) float64 { return rng.Float64()*2 - 1 })

	return m
}
