// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

func TestAdd_Basic(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 0, 2}, {0, 3, 0}})
	b := mustDense(t, [][]int{{0, 4, -2}, {5, 0, 0}})

	got, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 4, 0}, {5, 3, 0}}, got.Dense())
	// (0,2) cancels and must not be stored
	require.Equal(t, 4, got.NNZ())
}

func TestSub_Basic(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 0}, {2, 3}})
	b := mustDense(t, [][]int{{0, 4}, {2, 1}})

	got, err := a.Sub(b)
	require.NoError(t, err)
	// B-only entry (0,1) appears negated; (1,0) cancels
	require.Equal(t, [][]int{{1, -4}, {0, 2}}, got.Dense())
	require.Equal(t, 3, got.NNZ())
}

func TestAdd_Commutative(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 5; seed++ {
		a := randomSparse(t, 6, 7, 0.3, seed)
		b := randomSparse(t, 6, 7, 0.3, seed+100)

		ab, err := a.Add(b)
		require.NoError(t, err)
		ba, err := b.Add(a)
		require.NoError(t, err)
		require.True(t, ab.Equal(ba), "seed %d", seed)
	}
}

func TestAdd_ZeroIsNeutral(t *testing.T) {
	t.Parallel()
	a := randomSparse(t, 5, 4, 0.5, 7)
	zero := mustNew(t, 5, 4)

	got, err := a.Add(zero)
	require.NoError(t, err)
	requireSameEntries(t, a, got)

	got, err = zero.Add(a)
	require.NoError(t, err)
	requireSameEntries(t, a, got)
}

func TestSub_SelfIsEmpty(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 5; seed++ {
		a := randomSparse(t, 8, 3, 0.4, seed)
		got, err := a.Sub(a)
		require.NoError(t, err)
		require.Zero(t, got.NNZ())
		require.Equal(t, a.Shape(), got.Shape())
	}
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	t.Parallel()
	a := mustNew(t, 2, 3)

	tests := []struct {
		name string
		b    *sparse.Matrix
	}{
		{"rows differ", mustNew(t, 3, 3)},
		{"cols differ", mustNew(t, 2, 4)},
		{"transposed shape", mustNew(t, 3, 2)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.Add(tc.b)
			require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
			require.Contains(t, err.Error(), "2x3 vs "+tc.b.Shape().String())

			_, err = a.Sub(tc.b)
			require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
		})
	}
}

func TestAddSub_Nil(t *testing.T) {
	t.Parallel()
	a := mustNew(t, 1, 1)

	_, err := a.Add(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Sum(nil, a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Diff(a, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestAddSub_OperandsUntouched(t *testing.T) {
	t.Parallel()
	a := mustDense(t, [][]int{{1, 2}, {3, 4}})
	b := mustDense(t, [][]int{{-1, 0}, {0, 5}})
	aBefore, bBefore := a.Clone(), b.Clone()

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.NoError(t, sum.Set(0, 1, 100))

	_, err = a.Sub(b)
	require.NoError(t, err)
	require.True(t, a.Equal(aBefore))
	require.True(t, b.Equal(bBefore))
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	m := mustDense(t, [][]int{{1, 2, 3}, {0, 0, 6}})
	tr := m.Transpose()
	require.Equal(t, sparse.Shape{Rows: 3, Cols: 2}, tr.Shape())
	require.Equal(t, [][]int{{1, 0}, {2, 0}, {3, 6}}, tr.Dense())
	require.Equal(t, m.NNZ(), tr.NNZ())
	require.True(t, tr.Equal(sparse.T(m)))
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()
	shapes := []sparse.Shape{{Rows: 1, Cols: 1}, {Rows: 4, Cols: 9}, {Rows: 9, Cols: 4}, {Rows: 0, Cols: 3}}
	for i, s := range shapes {
		var m *sparse.Matrix
		if s.Rows == 0 {
			m = mustNew(t, s.Rows, s.Cols)
		} else {
			m = randomSparse(t, s.Rows, s.Cols, 0.4, int64(i+1))
		}
		require.True(t, m.Transpose().Transpose().Equal(m), "shape %v", s)
	}
}
