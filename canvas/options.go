// SPDX-License-Identifier: MIT

// Package canvas: functional configuration for serialization.
//   - Option / Options with documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions applies setters last-writer-wins.
package canvas

import "math"

const (
	// DefaultLineWidth is the PPM line budget in characters (newline excluded).
	DefaultLineWidth = 70
)

const (
	panicLineWidthInvalid = "canvas: WithLineWidth: width must be > 0"
	panicMaxColorInvalid  = "canvas: WithMaxColorValue: value must be in [1, 65535]"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective serialization configuration.
type Options struct {
	lineWidth int // DefaultLineWidth
	maxValue  int // DefaultMaxColorValue
}

// WithLineWidth sets the maximum PPM line length. A single value longer
// than the budget still gets a line of its own.
func WithLineWidth(n int) Option {
	if n <= 0 {
		panic(panicLineWidthInvalid)
	}

	return func(o *Options) { o.lineWidth = n }
}

// WithMaxColorValue sets the PPM maxval (header and channel scale).
func WithMaxColorValue(n int) Option {
	if n < 1 || n > math.MaxUint16 {
		panic(panicMaxColorInvalid)
	}

	return func(o *Options) { o.maxValue = n }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// LineWidth returns the effective line budget.
func (o Options) LineWidth() int { return o.lineWidth }

// MaxColorValue returns the effective maxval.
func (o Options) MaxColorValue() int { return o.maxValue }

func gatherOptions(user ...Option) Options {
	o := Options{
		lineWidth: DefaultLineWidth,
		maxValue:  DefaultMaxColorValue,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
