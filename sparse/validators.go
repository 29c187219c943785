// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - One canonical source of truth for nil/shape/index checks.
//   - Return sentinel errors tagged with the validator name; call sites wrap
//     once more with their operation tag.
//
// All checks are pure, deterministic and allocate nothing on success.

package sparse

import "fmt"

// validatorErrorf tags a sentinel violation with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// The mismatch error names both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return shapeMismatchf("ValidateSameShape", a.Shape(), b.Shape())
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for non-nil operands.
// It performs no transpose retry; see ResolveMul for that.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return shapeMismatchf("ValidateMulCompatible", a.Shape(), b.Shape())
	}

	return nil
}

// validateDims rejects negative dimensions.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("validateDims(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// validateIndex checks 0 <= row < rows and 0 <= col < cols.
// method names the public caller for the error context.
func (m *Matrix) validateIndex(method string, row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("Matrix.%s(%d,%d) on %v: %w", method, row, col, m.Shape(), ErrOutOfRange)
	}

	return nil
}
