// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures for kernels and codec tests.
//   - Fail fast (t.Fatal via require) so test bodies stay linear.

package sparse_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/sparsemat/sparse"
)

// mustNew allocates an empty r×c matrix or fails the test.
func mustNew(tb testing.TB, r, c int) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.New(r, c)
	require.NoError(tb, err)

	return m
}

// mustDense builds a matrix from a rectangular table or fails the test.
func mustDense(tb testing.TB, data [][]int) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.FromDense(data)
	require.NoError(tb, err)

	return m
}

// mustRead parses src with Read or fails the test.
func mustRead(tb testing.TB, src string, opts ...sparse.Option) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.Read(strings.NewReader(src), opts...)
	require.NoError(tb, err)

	return m
}

// randomSparse fills an r×c matrix with about density*r*c non-zero values in
// [-9, 9], deterministically for a given seed.
func randomSparse(tb testing.TB, r, c int, density float64, seed int64) *sparse.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustNew(tb, r, c)
	n := int(density * float64(r*c))
	for k := 0; k < n; k++ {
		v := rng.Intn(19) - 9
		require.NoError(tb, m.Set(rng.Intn(r), rng.Intn(c), v))
	}

	return m
}

// requireSameEntries compares shape and every stored entry.
func requireSameEntries(tb testing.TB, want, got *sparse.Matrix) {
	tb.Helper()
	require.Equal(tb, want.Shape(), got.Shape(), "shape")
	require.Equal(tb, want.Entries(), got.Entries(), "entries")
}

// newDebugObserver returns a logger that records every entry at Debug and above.
func newDebugObserver() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return zap.New(core), logs
}
