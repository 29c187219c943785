// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the storage, kernels and codec.
package sparse

import "fmt"

// Entry is one stored (row, col, value) triple. Value is never 0 when the
// Entry comes out of a Matrix.
type Entry struct {
	Row   int
	Col   int
	Value int
}

// String renders the entry in the on-disk line form "(row, col, value)".
func (e Entry) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e.Row, e.Col, e.Value)
}

// Shape is a (rows, cols) pair. It formats as "RxC".
type Shape struct {
	Rows int
	Cols int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// T returns the shape with rows and cols swapped.
func (s Shape) T() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// key addresses one cell in the element map. Two ints keep it compact and
// hash-friendly.
type key struct {
	row int
	col int
}

// rowCell is one (col, value) pair in a row-grouping index.
type rowCell struct {
	col   int
	value int
}
