// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating size/index/nil checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    either return them (constructors) or panic with them (indexers, kernels).
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// MinSize and MaxSize bound the supported square sizes.
const (
	MinSize = 2
	MaxSize = 4
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustf panics with err when it is non-nil. Reserved for precondition
// violations that indicate a programming defect.
func mustf(err error) {
	if err != nil {
		panic(err)
	}
}

// ValidateSize ensures n is a supported square size (2, 3 or 4).
//
// Returns ErrBadShape otherwise.
// Complexity: O(1).
func ValidateSize(n int) error {
	if n < MinSize || n > MaxSize {
		return validatorErrorf("ValidateSize", ErrBadShape)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense inside the interface is still nil for our purposes.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b are both non-nil and of equal size.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameSize(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Size() != b.Size() {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ row, col < n.
//
// Returns ErrOutOfRange otherwise.
// Complexity: O(1).
func ValidateIndex(n, row, col int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateValues ensures values holds exactly n*n entries and, when finite
// is true, that none of them is NaN or ±Inf.
//
// Errors: ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n²).
func ValidateValues(n int, values []float64, finite bool) error {
	if len(values) != n*n {
		return validatorErrorf("ValidateValues", ErrDimensionMismatch)
	}
	if !finite {
		return nil
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateValues: element %d", i), ErrNaNInf)
		}
	}

	return nil
}
