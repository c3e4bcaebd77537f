// SPDX-License-Identifier: MIT
// Package canvas: sentinel error set.
// Constructors and encoders return these (wrapped with %w where context
// helps); fail-fast pixel accessors panic with an error wrapping
// ErrOutOfBounds.

package canvas

import "errors"

var (
	// ErrBadShape is returned when a canvas is requested with width or height ≤ 0.
	ErrBadShape = errors.New("canvas: width and height must be > 0")

	// ErrOutOfBounds indicates pixel coordinates outside the canvas.
	ErrOutOfBounds = errors.New("canvas: coordinates outside of canvas")

	// ErrUnsupportedFormat indicates an unknown output format or extension.
	ErrUnsupportedFormat = errors.New("canvas: unsupported image format")

	// ErrUnknownColor indicates a color name missing from the palette.
	ErrUnknownColor = errors.New("canvas: unknown color name")
)
