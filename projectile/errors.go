// SPDX-License-Identifier: MIT

package projectile

import "errors"

var (
	// ErrMaxTicks is returned when the projectile has not landed after the
	// configured tick budget (e.g., it is thrown upward with no gravity).
	ErrMaxTicks = errors.New("projectile: tick budget exhausted before landing")

	// ErrEmptyPath is returned when there is nothing to plot.
	ErrEmptyPath = errors.New("projectile: empty path")
)
