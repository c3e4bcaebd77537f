// SPDX-License-Identifier: MIT

package projectile

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvltrace/geom"
)

// Projectile is a moving point.
type Projectile struct {
	Position geom.Point
	Velocity geom.Vector
}

// Environment holds the constant accelerations applied every tick.
type Environment struct {
	Gravity geom.Vector
	Wind    geom.Vector
}

// New returns a projectile at position moving with velocity.
func New(position geom.Point, velocity geom.Vector) Projectile {
	return Projectile{Position: position, Velocity: velocity}
}

// NewEnvironment returns an environment with the given gravity and wind.
func NewEnvironment(gravity, wind geom.Vector) Environment {
	return Environment{Gravity: gravity, Wind: wind}
}

// Default returns the classic demo projectile.
func Default() Projectile { return New(DefaultStart, DefaultVelocity) }

// DefaultEnvironment returns the classic demo environment.
func DefaultEnvironment() Environment { return NewEnvironment(DefaultGravity, DefaultWind) }

// Landed reports whether the projectile is at or below the ground.
func (p Projectile) Landed() bool { return p.Position.Y <= 0 }

// Tick advances p by one step: position += velocity, then
// velocity += gravity + wind.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.AddVector(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Simulate ticks p until it lands and returns the position after every
// tick, the landing position last. A projectile that starts on the ground
// yields an empty path. With WithSpeed the initial velocity is normalized
// and scaled first.
//
// Errors:
//   - ErrMaxTicks when the budget (WithMaxTicks) runs out first; the path
//     so far is returned alongside.
//   - ctx.Err() when ctx is cancelled.
//
// Complexity: O(ticks).
func Simulate(ctx context.Context, env Environment, p Projectile, opts ...Option) ([]geom.Point, error) {
	o := gatherOptions(opts...)
	if o.speed > 0 {
		p.Velocity = p.Velocity.Normalize().Scale(o.speed)
	}
	var path []geom.Point
	for tick := 1; !p.Landed(); tick++ {
		if tick > o.maxTicks {
			return path, fmt.Errorf("Simulate after %d ticks at %v: %w", o.maxTicks, p.Position, ErrMaxTicks)
		}
		if err := ctx.Err(); err != nil {
			return path, fmt.Errorf("Simulate at tick %d: %w", tick, err)
		}
		p = Tick(env, p)
		path = append(path, p.Position)
		if o.onTick != nil {
			o.onTick(tick, p)
		}
	}

	return path, nil
}
