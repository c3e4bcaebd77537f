// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"github.com/katalvlaran/lvltrace/approx"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by AllClose; it matches the
	// toolkit-wide approx.Epsilon so Equal and AllClose agree by default.
	DefaultEpsilon = approx.Epsilon

	// DefaultValidateNaNInf toggles strict finite-value validation in New.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the tolerance used by AllClose.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes New reject NaN and ±Inf values (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets New accept NaN and ±Inf values.
// Useful when a caller deliberately builds degenerate transforms.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts on top of the defaults. Exposed for tests and
// callers that want to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether New rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
