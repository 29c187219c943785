// SPDX-License-Identifier: MIT

// Package sparse - line-oriented text codec.
//
// Format:
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Header values are read as the maximum index: the loaded dimension is the
// declared value plus the header offset (DefaultHeaderOffset, 1). Write emits
// the raw dimensions, so a Save followed by Load grows each dimension by the
// offset. dimFromHeader/headerFromDim are the only places that know this.
//
// Both file-boundary functions (Load, Save) release their handle on every path.
package sparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	headerRows = "rows="
	headerCols = "cols="

	entryOpen  = "("
	entryClose = ")"
	entrySep   = ","
	entryArity = 3

	// maxLineBytes bounds a single line; entry lines are short.
	maxLineBytes = 1 << 20
)

var (
	errEmptySource   = errors.New("source is empty")
	errMissingCols   = errors.New("missing cols= header line")
	errEntrySyntax   = errors.New("entry must be in format (row, col, value)")
	errEntryArity    = errors.New("entry must have three integers separated by commas")
	errHeaderPrefix  = errors.New("header has wrong prefix")
	errHeaderValue   = errors.New("header value is not an integer")
	errEntryNotAnInt = errors.New("entry field is not an integer")
	errHeaderRange   = errors.New("header value overflows int")
	errLineTooLong   = errors.New("line exceeds maximum length")
)

// dimFromHeader converts a declared header value into a dimension.
func dimFromHeader(declared, offset int) int { return declared + offset }

// headerFromDim converts a dimension into the value written after rows=/cols=.
// It is deliberately not the inverse of dimFromHeader; see the package comment.
func headerFromDim(dim int) int { return dim }

// Read parses a matrix from r.
//
// Implementation:
//   - Stage 1: read "rows=" and "cols=" header lines; dims = value + header offset.
//   - Stage 2: parse every non-blank following line as "(row, col, value)" and
//     store it through Set after a bounds check.
//
// Errors:
//   - *FormatError (errors.Is ErrFormat) with the 1-based line and raw text for
//     malformed or out-of-range lines (out-of-range also matches ErrOutOfRange).
//   - *IOError (errors.Is ErrIO) when r fails.
//
// No partial matrix is ever returned.
func Read(r io.Reader, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return sc.Text(), true
	}

	raw, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, scanFailure(err, lineNo)
		}
		return nil, &FormatError{Err: errEmptySource}
	}
	rows, err := parseHeader(raw, headerRows, o.headerOffset)
	if err != nil {
		return nil, &FormatError{Line: lineNo, Text: raw, Err: err}
	}

	raw, ok = next()
	if !ok {
		if err = sc.Err(); err != nil {
			return nil, scanFailure(err, lineNo)
		}
		return nil, &FormatError{Err: errMissingCols}
	}
	cols, err := parseHeader(raw, headerCols, o.headerOffset)
	if err != nil {
		return nil, &FormatError{Line: lineNo, Text: raw, Err: err}
	}

	m := newMatrix(rows, cols, 0)
	o.logger.Debug("loading matrix", zap.Stringer("shape", m.Shape()))

	for {
		raw, ok = next()
		if !ok {
			break
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		e, perr := parseEntry(line)
		if perr != nil {
			return nil, &FormatError{Line: lineNo, Text: raw, Err: perr}
		}
		if perr = m.Set(e.Row, e.Col, e.Value); perr != nil {
			return nil, &FormatError{Line: lineNo, Text: raw, Err: perr}
		}
	}
	if err = sc.Err(); err != nil {
		return nil, scanFailure(err, lineNo)
	}

	o.logger.Debug("loaded matrix", zap.Stringer("shape", m.Shape()), zap.Int("nnz", m.NNZ()))

	return m, nil
}

// Load opens path and parses it with Read.
// IOErrors carry the path; FormatErrors are wrapped with it.
func Load(path string, opts ...Option) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
			return nil, ioErr
		}
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return m, nil
}

// Write serializes m to w: two header lines, then one "(row, col, value)" line
// per stored entry in ascending (row, col) order.
func (m *Matrix) Write(w io.Writer) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Write", err)
	}

	bw := bufio.NewWriter(w)
	// bufio.Writer latches the first error; checking Flush is sufficient.
	fmt.Fprintf(bw, "%s%d\n", headerRows, headerFromDim(m.rows))
	fmt.Fprintf(bw, "%s%d\n", headerCols, headerFromDim(m.cols))
	for _, e := range m.Entries() {
		fmt.Fprintf(bw, "%v\n", e)
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}

	return nil
}

// Save creates or truncates path and writes m to it.
func (m *Matrix) Save(path string) (err error) {
	if err = ValidateNotNil(m); err != nil {
		return matrixErrorf("Save", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err = m.Write(f); err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return err
	}

	return nil
}

// scanFailure classifies a scanner error. lineNo is the last line read, so an
// over-long line is the next one.
func scanFailure(err error, lineNo int) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return &FormatError{Line: lineNo + 1, Err: fmt.Errorf("%w (%d bytes)", errLineTooLong, maxLineBytes)}
	}
	return &IOError{Op: "read", Err: err}
}

// parseHeader checks prefix on the trimmed line and converts the remainder.
func parseHeader(raw, prefix string, offset int) (int, error) {
	line := strings.TrimSpace(raw)
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("%w: want %q", errHeaderPrefix, prefix)
	}
	declared, err := strconv.Atoi(strings.TrimSpace(line[len(prefix):]))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errHeaderValue, err)
	}
	if offset > 0 && declared > math.MaxInt-offset {
		return 0, fmt.Errorf("%w: %d + %d", errHeaderRange, declared, offset)
	}
	dim := dimFromHeader(declared, offset)
	if err = validateDims(dim, 0); err != nil {
		return 0, err
	}

	return dim, nil
}

// parseEntry parses a trimmed "(row, col, value)" line.
func parseEntry(line string) (Entry, error) {
	if len(line) < 2 || !strings.HasPrefix(line, entryOpen) || !strings.HasSuffix(line, entryClose) {
		return Entry{}, errEntrySyntax
	}
	parts := strings.Split(line[1:len(line)-1], entrySep)
	if len(parts) != entryArity {
		return Entry{}, errEntryArity
	}

	var vals [entryArity]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Entry{}, fmt.Errorf("%w: %v", errEntryNotAnInt, err)
		}
		vals[i] = v
	}

	return Entry{Row: vals[0], Col: vals[1], Value: vals[2]}, nil
}
