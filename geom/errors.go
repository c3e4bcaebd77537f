// SPDX-License-Identifier: MIT

package geom

import "errors"

var (
	// ErrZeroVector is returned when a direction is requested from a zero-length vector.
	ErrZeroVector = errors.New("geom: zero-length vector")

	// ErrNotHomogeneous signals a 4-tuple whose w is neither 0 (vector) nor 1 (point).
	ErrNotHomogeneous = errors.New("geom: w must be 0 (vector) or 1 (point)")
)
