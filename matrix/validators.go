// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for nil/shape checks shared by kernels and
//     by the solver's precondition checks.
//   - Return sentinel errors tagged with the validator name; callers wrap
//     again with their own operation tag.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps err with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Real](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape[T Real](a, b *Dense[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAugmented ensures m has the n×(n+1) shape of a square system with
// a single right-hand side, n >= 1. Assumes m is not nil.
func ValidateAugmented[T Real](m *Dense[T]) error {
	if m.r == 0 || m.c != m.r+1 {
		return validatorErrorf("ValidateAugmented", fmt.Errorf("shape %dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite ensures every element of m is finite.
// Returns ErrNaNInf wrapped with the coordinates of the first offending
// element in row-major order. Assumes m is not nil.
// Complexity: O(r*c).
func ValidateFinite[T Real](m *Dense[T]) error {
	for idx, v := range m.data {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return validatorErrorf("ValidateFinite", denseErrorf(opAt, idx/m.c, idx%m.c, ErrNaNInf))
		}
	}

	return nil
}
