// SPDX-License-Identifier: MIT
// Package sparse: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points; each delegates to the canonical
//     method without adding logic.
//   - Function forms accept nil operands and surface ErrNilMatrix instead of
//     panicking on a nil receiver.

package sparse

// Zeros returns an empty rows×cols matrix. Alias of New.
func Zeros(rows, cols int) (*Matrix, error) { return New(rows, cols) }

// Identity returns the n×n identity matrix.
// Complexity: O(n).
func Identity(n int) (*Matrix, error) {
	id, err := New(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		_ = id.Set(i, i, 1) // in range by construction
	}

	return id, nil
}

// Sum returns a + b. See Matrix.Add.
func Sum(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Diff returns a - b. See Matrix.Sub.
func Diff(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Product returns a × b together with the resolved plan. See Matrix.Mul.
func Product(a, b *Matrix, opts ...Option) (*Matrix, MulPlan, error) { return a.Mul(b, opts...) }

// T returns mᵀ, or nil for a nil m. See Matrix.Transpose.
func T(m *Matrix) *Matrix { return m.Transpose() }
