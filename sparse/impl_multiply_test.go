// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/sparsemat/sparse"
)

// denseProduct is the textbook i-k-j triple loop, used as an oracle.
func denseProduct(a, b [][]int) [][]int {
	if len(a) == 0 {
		return nil
	}
	inner, cols := len(b), 0
	if inner > 0 {
		cols = len(b[0])
	}
	out := make([][]int, len(a))
	for i := range a {
		out[i] = make([]int, cols)
		for k := 0; k < inner; k++ {
			for j := 0; j < cols; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 2}, {3, 4}})
	id := mustDense(t, [][]int{{1, 0}, {0, 1}})

	got, plan, err := a.Mul(id)
	require.NoError(t, err)
	require.False(t, plan.Transposed)
	require.True(t, got.Equal(a))
}

func TestMul_Known(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 2, 0}, {0, 1, 3}})
	b := mustDense(t, [][]int{{1, 0}, {0, 2}, {4, 0}})

	got, plan, err := a.Mul(b)
	require.NoError(t, err)
	require.False(t, plan.Transposed)
	require.Equal(t, sparse.Shape{Rows: 2, Cols: 2}, plan.Result())
	require.Equal(t, [][]int{{1, 4}, {12, 2}}, got.Dense())
}

func TestMul_TransposeRecovery(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := mustDense(t, [][]int{{1, 0, 0}, {0, 1, 0}}) // 2x3, incompatible as given

	got, plan, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, plan.Transposed)
	require.Equal(t, sparse.Shape{Rows: 2, Cols: 3}, plan.Right)
	require.Equal(t, sparse.Shape{Rows: 3, Cols: 2}, plan.Effective)
	require.Equal(t, sparse.Shape{Rows: 2, Cols: 2}, got.Shape())
	require.Equal(t, [][]int{{1, 2}, {4, 5}}, got.Dense())

	explicit, direct, err := a.Mul(b.Transpose())
	require.NoError(t, err)
	require.False(t, direct.Transposed)
	require.True(t, got.Equal(explicit))
}

func TestMul_MismatchAfterTranspose(t *testing.T) {
	t.Parallel()
	a := mustNew(t, 2, 3)
	b := mustNew(t, 4, 5)

	got, plan, err := a.Mul(b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	require.Nil(t, got)
	require.Equal(t, sparse.MulPlan{}, plan)
	require.Contains(t, err.Error(), "2x3 with 4x5 (transposed 5x4)")
}

func TestResolveMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		a, b           sparse.Shape
		wantTransposed bool
		wantResult     sparse.Shape
		wantErr        error
	}{
		{"direct square", sparse.Shape{Rows: 2, Cols: 2}, sparse.Shape{Rows: 2, Cols: 2}, false, sparse.Shape{Rows: 2, Cols: 2}, nil},
		{"direct rect", sparse.Shape{Rows: 2, Cols: 3}, sparse.Shape{Rows: 3, Cols: 4}, false, sparse.Shape{Rows: 2, Cols: 4}, nil},
		{"recovered", sparse.Shape{Rows: 2, Cols: 3}, sparse.Shape{Rows: 4, Cols: 3}, true, sparse.Shape{Rows: 2, Cols: 4}, nil},
		{"zero inner", sparse.Shape{Rows: 2, Cols: 0}, sparse.Shape{Rows: 0, Cols: 3}, false, sparse.Shape{Rows: 2, Cols: 3}, nil},
		{"unrecoverable", sparse.Shape{Rows: 2, Cols: 3}, sparse.Shape{Rows: 4, Cols: 4}, false, sparse.Shape{}, sparse.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			plan, err := sparse.ResolveMul(mustNew(t, tc.a.Rows, tc.a.Cols), mustNew(t, tc.b.Rows, tc.b.Cols))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantTransposed, plan.Transposed)
			require.Equal(t, tc.wantResult, plan.Result())
		})
	}

	_, err := sparse.ResolveMul(nil, mustNew(t, 1, 1))
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.ResolveMul(mustNew(t, 1, 1), nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestMulPlan_Diagnostics(t *testing.T) {
	t.Parallel()
	direct := sparse.MulPlan{
		Left:      sparse.Shape{Rows: 2, Cols: 3},
		Right:     sparse.Shape{Rows: 3, Cols: 1},
		Effective: sparse.Shape{Rows: 3, Cols: 1},
	}
	require.Equal(t, []string{"multiplying 2x3 with 3x1"}, direct.Diagnostics())

	recovered := sparse.MulPlan{
		Left:       sparse.Shape{Rows: 2, Cols: 3},
		Right:      sparse.Shape{Rows: 1, Cols: 3},
		Effective:  sparse.Shape{Rows: 3, Cols: 1},
		Transposed: true,
	}
	lines := recovered.Diagnostics()
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "2x3 with 1x3")
	require.Contains(t, lines[2], "2x3 with 3x1")
}

func TestMul_LogsTransposeRecovery(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	a := mustNew(t, 2, 3)
	b := mustNew(t, 2, 3)
	_, _, err := a.Mul(b, sparse.WithLogger(logger))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.Equal(t, "2x3", fields["right"])
	require.Equal(t, "3x2", fields["effective"])

	// a direct multiply only logs at Debug, filtered out here
	_, _, err = a.Mul(b.Transpose(), sparse.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
}

func TestMul_CancellationLeavesNoEntry(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 1}})
	b := mustDense(t, [][]int{{1}, {-1}})

	got, _, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, sparse.Shape{Rows: 1, Cols: 1}, got.Shape())
	require.Zero(t, got.NNZ())
}

func TestMul_MatchesDenseOracle(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 6; seed++ {
		a := randomSparse(t, 5, 7, 0.35, seed)
		b := randomSparse(t, 7, 4, 0.35, seed+50)

		got, _, err := a.Mul(b)
		require.NoError(t, err)
		require.Equal(t, denseProduct(a.Dense(), b.Dense()), got.Dense(), "seed %d", seed)
	}
}

func TestMul_OperandsUntouched(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]int{{7, 8, 9}, {1, 2, 3}})
	aBefore, bBefore := a.Clone(), b.Clone()

	_, plan, err := sparse.Product(a, b)
	require.NoError(t, err)
	require.True(t, plan.Transposed)
	require.True(t, a.Equal(aBefore))
	require.True(t, b.Equal(bBefore))
}

func TestMul_Nil(t *testing.T) {
	t.Parallel()
	a := mustNew(t, 2, 2)

	_, _, err := a.Mul(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, _, err = sparse.Product(nil, a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
