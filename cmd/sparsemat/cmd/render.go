package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/sparse"
)

// maxTableCells caps dense rendering; larger matrices print as triplets.
const maxTableCells = 10000

// renderMatrix prints m in the requested format.
func renderMatrix(w io.Writer, title string, m *sparse.Matrix, format config.OutputFormat) error {
	if format == config.OutputFormatTable && fitsTable(m) {
		_, err := fmt.Fprintln(w, buildMatrixTable(title, m).Render())
		return err
	}
	if format == config.OutputFormatTable {
		if _, err := fmt.Fprintf(w, "%s: %s, too large for a table\n", title, m.Shape()); err != nil {
			return err
		}
	}
	return m.Write(w)
}

// fitsTable reports rows*cols <= maxTableCells without overflowing.
func fitsTable(m *sparse.Matrix) bool {
	return m.Cols() == 0 || m.Rows() <= maxTableCells/m.Cols()
}

// buildMatrixTable lays m out densely with row and column indices.
func buildMatrixTable(title string, m *sparse.Matrix) table.Writer {
	w := table.NewWriter()
	w.SetTitle(title)
	w.SetStyle(table.StyleLight)

	header := table.Row{""}
	configs := make([]table.ColumnConfig, 0, m.Cols())
	for c := 0; c < m.Cols(); c++ {
		header = append(header, c)
		configs = append(configs, table.ColumnConfig{Number: c + 2, Align: text.AlignRight})
	}
	w.AppendHeader(header)
	w.SetColumnConfigs(configs)

	for r, row := range m.Dense() {
		tr := make(table.Row, 0, len(row)+1)
		tr = append(tr, r)
		for _, v := range row {
			tr = append(tr, v)
		}
		w.AppendRow(tr)
	}

	return w
}
