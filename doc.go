// Package sparsemat is a small toolkit for sparse integer matrices stored as
// triplet text files.
//
// What is in the box?
//
//	sparse/               - the Matrix type: dictionary-of-keys storage, add,
//	                        subtract, transpose, multiply with automatic
//	                        transpose recovery, and the rows=/cols= file codec
//	internal/config/      - .sparsemat.yaml loading (viper) with SPARSEMAT_* env overrides
//	cmd/sparsemat/        - the sparsemat CLI (add, sub, mul, transpose, info, show, init)
//	examples/             - runnable scenarios
//
// File format:
//
//	rows=2
//	cols=2
//	(0, 1, 5)
//	(2, 2, -3)
//
// The header values are the largest valid index, so the file above loads as a
// 3x3 matrix. Writing emits the actual dimensions, so a saved file read back
// grows by one in each direction.
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsemat@latest
package sparsemat
