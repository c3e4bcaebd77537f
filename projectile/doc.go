// Package projectile simulates a point projectile under constant gravity
// and wind, and renders its trajectory.
//
// Each Tick moves the projectile by its velocity and then adds gravity and
// wind to the velocity. Simulate ticks until the projectile reaches the
// ground (y ≤ 0), Render plots the visited positions onto a canvas with y
// pointing up, and Plot draws a line chart of the same path.
package projectile
