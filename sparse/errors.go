// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set and the two rich error carriers used at the
// file boundary (FormatError, IOError).
//
// Every sentinel is prefixed with "sparse: ..." so messages grep cleanly in logs.
// Kernels return sentinels wrapped with an operation tag via fmt.Errorf("%s: %w");
// callers match with errors.Is. FormatError and IOError additionally satisfy
// errors.As for callers that need the line number or path.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a requested row or column count is negative.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrBadShape is returned when dense input is ragged (rows of different length).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0,rows)×[0,cols).
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes for Add/Sub, or for
	// Mul after the transposed-operand retry.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrFormat marks malformed serialized input. Concrete errors are *FormatError.
	ErrFormat = errors.New("sparse: malformed matrix source")

	// ErrIO marks a source or destination that could not be opened, read or written.
	// Concrete errors are *IOError.
	ErrIO = errors.New("sparse: i/o failure")
)

// FormatError reports a malformed header or entry line.
// Line is 1-based; it is 0 when the problem concerns the source as a whole
// (for example an empty source).
type FormatError struct {
	Line int    // 1-based line number, 0 for whole-source problems
	Text string // raw offending line as read (before trimming)
	Err  error  // underlying cause (strconv error, ErrOutOfRange, ...)
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %v", ErrFormat, e.Err)
	}
	return fmt.Sprintf("%v: line %d %q: %v", ErrFormat, e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying cause so errors.Is(err, ErrOutOfRange) holds
// for out-of-bounds entries.
func (e *FormatError) Unwrap() error { return e.Err }

// Is reports ErrFormat membership for every FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IOError reports a failure to open, read or write a matrix file.
type IOError struct {
	Op   string // "open", "read", "create", "write", "close"
	Path string // path as given by the caller; empty for plain readers/writers
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s: %v", ErrIO, e.Op, e.Err)
	}
	return fmt.Sprintf("%v: %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports ErrIO membership for every IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Callers must not pass a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeMismatchf attaches both operand shapes to ErrDimensionMismatch.
func shapeMismatchf(tag string, a, b Shape) error {
	return fmt.Errorf("%s: %v vs %v: %w", tag, a, b, ErrDimensionMismatch)
}
