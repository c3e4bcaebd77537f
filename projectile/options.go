// SPDX-License-Identifier: MIT

package projectile

import "github.com/katalvlaran/lvltrace/geom"

// DefaultMaxTicks bounds Simulate so a projectile that never lands fails
// instead of looping forever.
const DefaultMaxTicks = 10000

const (
	panicMaxTicksInvalid = "projectile: WithMaxTicks: n must be > 0"
	panicSpeedInvalid    = "projectile: WithSpeed: s must be > 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective simulation configuration.
type Options struct {
	maxTicks int                   // DefaultMaxTicks
	speed    float64               // launch speed; 0 keeps the velocity as given
	onTick   func(int, Projectile) // optional observer, nil by default
}

// WithMaxTicks sets the tick budget for Simulate.
func WithMaxTicks(n int) Option {
	if n <= 0 {
		panic(panicMaxTicksInvalid)
	}

	return func(o *Options) { o.maxTicks = n }
}

// WithSpeed makes Simulate launch along the initial velocity's direction
// with magnitude s. A zero initial velocity has no direction and is kept.
func WithSpeed(s float64) Option {
	if !(s > 0) {
		panic(panicSpeedInvalid)
	}

	return func(o *Options) { o.speed = s }
}

// WithOnTick registers an observer called after every tick with the tick
// number (1-based) and the new state. Used by the demo to log progress.
func WithOnTick(f func(tick int, p Projectile)) Option {
	return func(o *Options) { o.onTick = f }
}

func gatherOptions(user ...Option) Options {
	o := Options{maxTicks: DefaultMaxTicks}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Launch defaults reproduce the classic demo: start one unit above the
// ground with velocity (3, 3, 0), gravity −0.1 and a light headwind.
var (
	DefaultStart    = geom.NewPoint(0, 1, 0)
	DefaultVelocity = geom.NewVector(3, 3, 0)
	DefaultGravity  = geom.NewVector(0, -0.1, 0)
	DefaultWind     = geom.NewVector(-0.01, 0, 0)
)
