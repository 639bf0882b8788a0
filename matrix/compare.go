// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/fixmat/scalar"
)

// Equal reports whether a and b hold identical elements.
// Shapes always match: both operands share one type.
// NaN never equals itself, so a float matrix holding NaN is not Equal to itself.
// Complexity: Time O(R*C), Space O(1).
func Equal[T comparable, R, C Dim](a, b *Matrix[T, R, C]) bool {
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// AllClose checks |a-b| <= atol + rtol*|b| for every element pair.
//
// Behavior highlights:
//   - Identical values are close, including equal infinities.
//   - NaN is never close to anything.
//   - Tolerances default to DefaultRelTol/DefaultAbsTol; override with
//     WithRelTol/WithAbsTol.
//   - Stops at the first violating pair.
//
// Complexity: Time O(R*C), Space O(1).
func AllClose[T scalar.Float, R, C Dim](a, b *Matrix[T, R, C], opts ...Option) bool {
	o := gatherOptions(opts...)

	var av, bv float64
	for i := range a.data {
		av, bv = float64(a.data[i]), float64(b.data[i])
		if av == bv {
			continue
		}
		// Unequal pairs involving NaN or an infinity are never close.
		if math.IsNaN(av) || math.IsNaN(bv) || math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return false
		}
		if math.Abs(av-bv) > o.atol+o.rtol*math.Abs(bv) {
			return false
		}
	}

	return true
}
