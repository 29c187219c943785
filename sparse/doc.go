// Package sparse implements integer sparse matrices stored as a
// dictionary of keys: only non-zero cells are kept, keyed by (row, col).
//
// The package provides:
//
//   - Construction from explicit dimensions (New), entries (FromEntries),
//     a dense table (FromDense) or the line-oriented text format (Read, Load).
//   - Bounds-checked element access (At, Set). Set is the only mutation
//     primitive and drops zero values, so the store stays minimal.
//   - Value-semantics kernels: Add, Sub, Transpose and Mul each return a fresh
//     matrix and never alias or mutate their operands.
//   - Serialization back to the text format (Write, Save).
//
// Mul resolves shapes adaptively: when A.Cols != B.Rows it retries with Bᵀ.
// The decision is returned as a MulPlan and, when a logger is supplied with
// WithLogger, logged at Info level.
//
// The text format stores maximum indices in its rows=/cols= header; Load adds
// one to each. Save writes the stored dimensions unchanged, so a saved matrix
// reloads one row and one column larger. This asymmetry is part of the format.
//
// Errors are sentinels (ErrOutOfRange, ErrDimensionMismatch, ErrFormat, ErrIO,
// ...) matched with errors.Is; *FormatError and *IOError carry line numbers and
// paths for errors.As.
package sparse
