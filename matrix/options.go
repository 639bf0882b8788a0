// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for tolerance-based comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions, which applies setters over the defaults.
//
// Design goals:
//   - No global state; options are resolved per call.
//   - Panic only on invalid parameters (programmer error).

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative tolerance used by AllClose.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute tolerance used by AllClose.
	DefaultAbsTol = 1e-12
)

// ---------- Internal panic messages ----------

const (
	panicRelTolInvalid = "matrix: WithRelTol: rtol must be finite, non-negative"
	panicAbsTolInvalid = "matrix: WithAbsTol: atol must be finite, non-negative"
)

// Option mutates internal options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	rtol float64 // >= 0; DefaultRelTol
	atol float64 // >= 0; DefaultAbsTol
}

// WithRelTol sets the relative tolerance rtol of |a-b| <= atol + rtol*|b|.
// Panics with a stable message when rtol is negative, NaN or infinite.
func WithRelTol(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithAbsTol sets the absolute tolerance atol of |a-b| <= atol + rtol*|b|.
// Panics with a stable message when atol is negative, NaN or infinite.
func WithAbsTol(atol float64) Option {
	if isNonFinite(atol) || atol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// RelTol returns the effective relative tolerance.
func (o Options) RelTol() float64 { return o.rtol }

// AbsTol returns the effective absolute tolerance.
func (o Options) AbsTol() float64 { return o.atol }

// gatherOptions starts from the defaults and applies setters in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		rtol: DefaultRelTol,
		atol: DefaultAbsTol,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
