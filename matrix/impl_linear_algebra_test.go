// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the exact linear-algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b [][]int64
		want [][]int64
	}{
		{
			name: "2x2 by 2x3 message block",
			a:    [][]int64{{3, 3}, {2, 5}},
			b:    [][]int64{{7, 11, 14}, {4, 11, 28}},
			want: [][]int64{{33, 66, 126}, {34, 77, 168}},
		},
		{
			name: "negative entries",
			a:    [][]int64{{-1, 2}},
			b:    [][]int64{{3}, {-4}},
			want: [][]int64{{-11}},
		},
		{
			name: "identity",
			a:    [][]int64{{1, 0}, {0, 1}},
			b:    [][]int64{{5, 6}, {7, 8}},
			want: [][]int64{{5, 6}, {7, 8}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Mul(mustRows(t, tc.a), mustRows(t, tc.b))
			require.NoError(t, err)
			Compare(t, tc.want, got)

			// generic path must agree with the *Dense fast path
			gotGeneric, err := matrix.Mul(newSparse(tc.a), newSparse(tc.b))
			require.NoError(t, err)
			require.True(t, got.Equal(gotGeneric))
		})
	}
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int64{{1, 2, 3}})
	b := mustRows(t, [][]int64{{1, 2}})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Mul:")

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.Mul(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Overflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b [][]int64
	}{
		{"product", [][]int64{{1 << 62}}, [][]int64{{4}}},
		{"negative product", [][]int64{{-(1 << 62)}}, [][]int64{{3}}},
		{"min times minus one", [][]int64{{math.MinInt64}}, [][]int64{{-1}}},
		{"sum of fitting products", [][]int64{{1 << 62, 1 << 62}}, [][]int64{{1}, {1}}},
		{"near 2^62 key entry", [][]int64{{3 + 29<<57, 0}, {0, 1}}, [][]int64{{7}, {4}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.Mul(mustRows(t, tc.a), mustRows(t, tc.b))
			require.ErrorIs(t, err, matrix.ErrOverflow)
			require.Contains(t, err.Error(), "Mul:")
		})
	}

	// The extremes that still fit are computed exactly.
	got, err := matrix.Mul(mustRows(t, [][]int64{{math.MaxInt64, -1}}), mustRows(t, [][]int64{{1}, {1}}))
	require.NoError(t, err)
	Compare(t, [][]int64{{math.MaxInt64 - 1}}, got)

	got, err = matrix.Mul(mustRows(t, [][]int64{{math.MinInt64}}), mustRows(t, [][]int64{{1}}))
	require.NoError(t, err)
	Compare(t, [][]int64{{math.MinInt64}}, got)
}

func TestMul_DoesNotMutateOperands(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int64{{5, 6}, {7, 8}})
	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	Compare(t, [][]int64{{1, 2}, {3, 4}}, a)
	Compare(t, [][]int64{{5, 6}, {7, 8}}, b)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	got, err := matrix.Transpose(mustRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)
	Compare(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}, got)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	t.Parallel()

	src := mustRows(t, [][]int64{{5, -3}, {-2, 3}})
	got, err := matrix.Scale(src, 13)
	require.NoError(t, err)
	Compare(t, [][]int64{{65, -39}, {-26, 39}}, got)
	Compare(t, [][]int64{{5, -3}, {-2, 3}}, src)

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Scale(mustRows(t, [][]int64{{1, 1 << 61}}), 4)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	require.Contains(t, err.Error(), "entry (0,1)")

	got, err = matrix.Scale(mustRows(t, [][]int64{{1 << 61}}), -4)
	require.NoError(t, err)
	Compare(t, [][]int64{{math.MinInt64}}, got)
}

func TestMod(t *testing.T) {
	t.Parallel()

	got, err := matrix.Mod(mustRows(t, [][]int64{{65, -39}, {-26, 39}}), 29)
	require.NoError(t, err)
	Compare(t, [][]int64{{7, 19}, {3, 10}}, got)

	got, err = matrix.Mod(newSparse([][]int64{{-1, 0}}), 26)
	require.NoError(t, err)
	Compare(t, [][]int64{{25, 0}}, got)

	_, err = matrix.Mod(mustRows(t, [][]int64{{1}}), 0)
	require.ErrorIs(t, err, matrix.ErrBadModulus)

	_, err = matrix.Mod(nil, 29)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
