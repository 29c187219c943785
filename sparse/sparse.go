// SPDX-License-Identifier: MIT

// Package sparse - dictionary-of-keys storage & safe accessors.
//
// Purpose:
//   - Store only non-zero cells in a map keyed by (row, col).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce zero-suppression in exactly one place (Set); every kernel writes through it.
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) average; Clone/Entries: O(nnz) (+ sort for Entries);
//     Dense/String: O(rows*cols).
package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a sparse integer matrix.
//   - rows, cols are fixed at construction.
//   - elements holds only non-zero values; every key lies inside the shape.
//
// A Matrix is not safe for concurrent mutation.
type Matrix struct {
	rows, cols int
	elements   map[key]int
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty rows×cols matrix.
// Zero-sized shapes are legal; negative ones return ErrInvalidDimensions.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf("New", err)
	}

	return newMatrix(rows, cols, 0), nil
}

// newMatrix allocates without validation; kernels call it with shapes derived
// from already valid operands.
func newMatrix(rows, cols, capHint int) *Matrix {
	return &Matrix{
		rows:     rows,
		cols:     cols,
		elements: make(map[key]int, capHint),
	}
}

// FromEntries builds a rows×cols matrix and applies entries in order through Set,
// so later entries overwrite earlier ones and zero values are dropped.
func FromEntries(rows, cols int, entries []Entry) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf("FromEntries", err)
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, matrixErrorf("FromEntries", err)
		}
	}

	return m, nil
}

// FromDense ingests a rectangular table, storing only its non-zero cells.
// An empty table yields a 0×0 matrix; ragged rows return ErrBadShape.
func FromDense(data [][]int) (*Matrix, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	m := newMatrix(rows, cols, 0)
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(fmt.Sprintf("FromDense: row %d has %d cols, want %d", i, len(row), cols), ErrBadShape)
		}
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				return nil, matrixErrorf("FromDense", err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count. A nil matrix has 0 rows.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the column count. A nil matrix has 0 cols.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// Shape returns (Rows, Cols).
func (m *Matrix) Shape() Shape {
	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// NNZ returns the number of stored (non-zero) entries.
func (m *Matrix) NNZ() int {
	if m == nil {
		return 0
	}
	return len(m.elements)
}

// At returns the value at (row, col), or 0 when no entry is stored.
// Returns ErrOutOfRange on bad indices and ErrNilMatrix on a nil receiver.
// Complexity: O(1) average.
func (m *Matrix) At(row, col int) (int, error) {
	if m == nil {
		return 0, matrixErrorf("Matrix."+ctxAt, ErrNilMatrix)
	}
	if err := m.validateIndex(ctxAt, row, col); err != nil {
		return 0, err
	}

	return m.elements[key{row, col}], nil
}

// Set assigns v at (row, col). v == 0 removes the entry (no-op when absent).
// This is the single mutation primitive; every kernel writes through it so the
// store never holds a zero.
// Complexity: O(1) average.
func (m *Matrix) Set(row, col, v int) error {
	if m == nil {
		return matrixErrorf("Matrix."+ctxSet, ErrNilMatrix)
	}
	if err := m.validateIndex(ctxSet, row, col); err != nil {
		return err
	}
	k := key{row, col}
	if v == 0 {
		delete(m.elements, k)
		return nil
	}
	m.elements[k] = v

	return nil
}

// Entries returns a snapshot of the stored entries sorted by (row, col).
// The slice is owned by the caller.
func (m *Matrix) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.elements))
	for k, v := range m.elements {
		out = append(out, Entry{Row: k.row, Col: k.col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	c := newMatrix(m.rows, m.cols, len(m.elements))
	for k, v := range m.elements {
		c.elements[k] = v
	}

	return c
}

// Equal reports whether m and other have the same shape and the same entries.
// Two nil matrices are equal.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.elements) != len(other.elements) {
		return false
	}
	for k, v := range m.elements {
		if other.elements[k] != v {
			return false
		}
	}

	return true
}

// Dense materializes the matrix as a rows×cols table.
// Intended for display of small matrices; cost is O(rows*cols).
func (m *Matrix) Dense() [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, m.rows)
	for i := range out {
		out[i] = make([]int, m.cols)
	}
	for k, v := range m.elements {
		out[k.row][k.col] = v
	}

	return out
}

// Info returns a one-line summary: "RxC with N non-zero elements".
func (m *Matrix) Info() string {
	return fmt.Sprintf("%v with %d non-zero elements", m.Shape(), m.NNZ())
}

// String renders one bracketed row per line, e.g. "[1, 0]\n[0, 1]\n".
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for _, row := range m.Dense() {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
