// SPDX-License-Identifier: MIT

// Package sparse - multiplication with adaptive shape resolution.
//
// Multiplication runs in two explicit steps:
//  1. ResolveMul decides which right operand is multiplied: B itself when
//     A.Cols == B.Rows, otherwise Bᵀ when A.Cols == B.Cols. The decision is a
//     MulPlan value the caller can inspect or log.
//  2. Mul applies the plan using a row-grouping index of the effective right
//     operand, built once per call and discarded afterwards.
package sparse

import (
	"fmt"

	"go.uber.org/zap"
)

// MulPlan records how Mul resolved the operand shapes.
type MulPlan struct {
	Left       Shape // shape of the left operand
	Right      Shape // shape of the right operand as supplied
	Effective  Shape // shape of the right operand actually multiplied
	Transposed bool  // true when the right operand was transposed to fit
}

// Result returns the shape of the product under this plan.
func (p MulPlan) Result() Shape {
	return Shape{Rows: p.Left.Rows, Cols: p.Effective.Cols}
}

// Diagnostics returns human-readable lines describing the resolution.
// Direct plans yield one line; transpose recovery yields three.
func (p MulPlan) Diagnostics() []string {
	if !p.Transposed {
		return []string{fmt.Sprintf("multiplying %v with %v", p.Left, p.Right)}
	}

	return []string{
		fmt.Sprintf("dimensions incompatible for multiplication: %v with %v", p.Left, p.Right),
		"retrying with the second matrix transposed",
		fmt.Sprintf("multiplying %v with %v", p.Left, p.Effective),
	}
}

// ResolveMul decides how a × b is computed.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) passes ⇒ direct plan.
//   - Stage 2: otherwise substitute bᵀ (shape b.Cols×b.Rows) and recheck
//     a.Cols == bᵀ.Rows ⇒ transposed plan.
//   - Stage 3: otherwise ErrDimensionMismatch naming a, b and bᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - O(1); nothing is transposed here.
func ResolveMul(a, b *Matrix) (MulPlan, error) {
	if err := ValidateNotNil(a); err != nil {
		return MulPlan{}, matrixErrorf("ResolveMul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return MulPlan{}, matrixErrorf("ResolveMul", err)
	}

	plan := MulPlan{Left: a.Shape(), Right: b.Shape(), Effective: b.Shape()}
	if ValidateMulCompatible(a, b) == nil {
		return plan, nil
	}

	plan.Effective = plan.Right.T()
	plan.Transposed = true
	if a.cols != plan.Effective.Rows {
		return MulPlan{}, fmt.Errorf("ResolveMul: %v with %v (transposed %v): %w",
			plan.Left, plan.Right, plan.Effective, ErrDimensionMismatch)
	}

	return plan, nil
}

// Mul computes C = A × B', where B' is B or Bᵀ as decided by ResolveMul.
//
// Implementation:
//   - Stage 1: ResolveMul(m, other); transpose other when the plan says so and
//     log the recovery at Info level through the configured logger.
//   - Stage 2: group B' entries by row: row → [(col, value)...].
//   - Stage 3: for each entry (r, k, va) of A and each (c, vb) in row k of B',
//     read C(r,c), add va*vb, write it back through Set.
//
// Behavior highlights:
//   - Result shape is (A.Rows, B'.Cols); no dense buffer is allocated.
//   - Sums that cancel to 0 leave no entry.
//   - The returned plan is valid whenever err == nil.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (after the transpose retry).
//
// Complexity:
//   - Time O(nnz(B) + nnz(A) × average row bucket of B'), Space O(nnz(B) + nnz(C)).
func (m *Matrix) Mul(other *Matrix, opts ...Option) (*Matrix, MulPlan, error) {
	o := gatherOptions(opts...)

	plan, err := ResolveMul(m, other)
	if err != nil {
		return nil, MulPlan{}, matrixErrorf(opMul, err)
	}

	right := other
	if plan.Transposed {
		o.logger.Info("multiply: second operand transposed to match inner dimension",
			zap.Stringer("left", plan.Left),
			zap.Stringer("right", plan.Right),
			zap.Stringer("effective", plan.Effective))
		right = other.Transpose()
	} else {
		o.logger.Debug("multiply",
			zap.Stringer("left", plan.Left),
			zap.Stringer("right", plan.Right))
	}

	byRow := buildRowIndex(right)
	res := newMatrix(plan.Result().Rows, plan.Result().Cols, 0)

	var cur int
	for ka, va := range m.elements {
		for _, cell := range byRow[ka.col] {
			if cur, err = res.At(ka.row, cell.col); err != nil {
				return nil, MulPlan{}, matrixErrorf(opMul, err)
			}
			if err = res.Set(ka.row, cell.col, cur+va*cell.value); err != nil {
				return nil, MulPlan{}, matrixErrorf(opMul, err)
			}
		}
	}

	return res, plan, nil
}

// buildRowIndex groups m's entries by row index. The index lives only for the
// duration of one Mul call.
func buildRowIndex(m *Matrix) map[int][]rowCell {
	idx := make(map[int][]rowCell, len(m.elements))
	for k, v := range m.elements {
		idx[k.row] = append(idx[k.row], rowCell{col: k.col, value: v})
	}

	return idx
}
