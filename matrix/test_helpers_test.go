package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/stretchr/testify/require"
)

// Compare asserts that m holds exactly the given rows.
func Compare(t testing.TB, want [][]int64, m matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, len(want), m.Rows(), "row count")
	for i, row := range want {
		require.Equalf(t, len(row), m.Cols(), "col count in row %d", i)
		for j, w := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, w, got, "entry (%d,%d)", i, j)
		}
	}
}

// mustRows builds a Dense from row literals or fails the test.
func mustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// sparse is a minimal Matrix implementation used to exercise the non-*Dense
// paths of the kernels.
type sparse struct {
	r, c int
	cell map[[2]int]int64
}

func newSparse(rows [][]int64) *sparse {
	s := &sparse{r: len(rows), c: len(rows[0]), cell: map[[2]int]int64{}}
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				s.cell[[2]int{i, j}] = v
			}
		}
	}

	return s
}

func (s *sparse) Rows() int { return s.r }
func (s *sparse) Cols() int { return s.c }

func (s *sparse) At(i, j int) (int64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, matrix.ErrOutOfRange
	}

	return s.cell[[2]int{i, j}], nil
}

func (s *sparse) Set(i, j int, v int64) error {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return matrix.ErrOutOfRange
	}
	s.cell[[2]int{i, j}] = v

	return nil
}

func (s *sparse) Clone() matrix.Matrix {
	cp := &sparse{r: s.r, c: s.c, cell: make(map[[2]int]int64, len(s.cell))}
	for k, v := range s.cell {
		cp.cell[k] = v
	}

	return cp
}
