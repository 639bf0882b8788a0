// Package matrix_test cross-checks the kernels against gonum.
//
// Storage order of Matrix[T, R, C] is the row-major layout of an R×C gonum
// Dense, so Values() can be handed to mat.NewDense unchanged.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixmat/matrix"
)

// toGonum COPIES m into a gonum Dense of the same shape.
func toGonum[R, C matrix.Dim](m *matrix.Matrix[float64, R, C]) *mat.Dense {
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Values())
}

func TestMulAgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 10; trial++ {
		a := randFloats[matrix.D5, matrix.D8](rng)
		b := randFloats[matrix.D8, matrix.D3](rng)

		var want mat.Dense
		want.Mul(toGonum(a), toGonum(b))

		got := matrix.Mul(a, b)
		require.True(t, floats.EqualApprox(want.RawMatrix().Data, got.Values(), 1e-12), "trial %d", trial)
	}
}

func TestReferenceProductAgreesWithGonum(t *testing.T) {
	a, b := referenceOperands(t)

	var want mat.Dense
	want.Mul(toGonum(a), toGonum(b))
	require.Equal(t, want.RawMatrix().Data, matrix.Mul(a, b).Values())
}

func TestTransposeAgreesWithGonum(t *testing.T) {
	m := randFloats[matrix.D4, matrix.D7](rand.New(rand.NewSource(8)))

	want := mat.DenseCopyOf(toGonum(m).T())
	require.Equal(t, want.RawMatrix().Data, matrix.Transpose(m).Values())
}

func TestNormAgreesWithGonum(t *testing.T) {
	v := randFloats[matrix.D16, matrix.D1](rand.New(rand.NewSource(16)))

	require.InDelta(t, floats.Norm(v.Values(), 2), matrix.Norm(v), 1e-14)
	require.InDelta(t, floats.Dot(v.Values(), v.Values()), matrix.NormSquared(v), 1e-14)
}
