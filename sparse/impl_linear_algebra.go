// SPDX-License-Identifier: MIT

// Package sparse - element-wise kernels and transpose.
//
// Purpose:
//   - Add/Sub over the union of both operands' stored cells, never touching
//     absent-in-both cells.
//   - Transpose by re-keying every entry.
//
// Contract:
//   - Operands are never mutated; every kernel allocates a fresh result.
//   - Every write goes through Set, so cancelling cells simply vanish.
package sparse

// operation tags for error wrapping
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b); allocate result with a's shape.
//   - Stage 2: for every entry of a, write a(r,c) + sign*b(r,c).
//   - Stage 3: for every entry of b whose key is absent from a, write sign*b(r,c).
//
// Behavior highlights:
//   - Cells whose combined value is 0 are dropped by Set; no cleanup pass.
//   - Inputs remain immutable.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (with both shapes), wrapped with opTag.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Matrix, sign int, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newMatrix(a.rows, a.cols, len(a.elements))
	var err error
	for k, av := range a.elements {
		// b(r,c) is 0 when absent.
		if err = res.Set(k.row, k.col, av+sign*b.elements[k]); err != nil {
			return nil, matrixErrorf(opTag, err)
		}
	}
	for k, bv := range b.elements {
		if _, seen := a.elements[k]; seen {
			continue
		}
		if err = res.Set(k.row, k.col, sign*bv); err != nil {
			return nil, matrixErrorf(opTag, err)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh matrix.
//
// Implementation:
//   - Stage 1: validate both operands are non-nil with identical shapes.
//   - Stage 2: combine A's entries with B's, then copy B-only entries.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch, both shapes in message).
//
// Complexity:
//   - Time O(nnz(A) + nnz(B)).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return addSub(m, other, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh matrix.
// B-only entries appear negated. Same errors and complexity as Add.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return addSub(m, other, -1, opSub) }

// Transpose returns a new cols×rows matrix with every entry (r, c, v) moved
// to (c, r, v). A nil receiver yields nil.
//
// Complexity:
//   - Time O(nnz), Space O(nnz). No dense allocation.
func (m *Matrix) Transpose() *Matrix {
	if m == nil {
		return nil
	}
	res := newMatrix(m.cols, m.rows, len(m.elements))
	for k, v := range m.elements {
		// Indices are in range by construction; Set cannot fail here.
		_ = res.Set(k.col, k.row, v)
	}

	return res
}
