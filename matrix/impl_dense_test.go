// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -789))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-789), val)
}

// TestNewFromRows covers literal construction, copying and ragged input.
func TestNewFromRows(t *testing.T) {
	src := [][]int64{{3, 3}, {2, 5}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err)
	Compare(t, src, m)

	src[0][0] = 100 // caller mutation must not leak in
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]int64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

// TestColumnMajorLayout pins the message-block layout: element k lands at
// row k%r, column k/r, and ColumnMajor reads it back in the same order.
func TestColumnMajorLayout(t *testing.T) {
	vals := []int64{7, 4, 11, 11, 14, 28} // H E L L O !
	m, err := matrix.NewFromColumnMajor(2, 3, vals)
	require.NoError(t, err)

	Compare(t, [][]int64{
		{7, 11, 14},
		{4, 11, 28},
	}, m)
	require.Equal(t, vals, m.ColumnMajor())

	_, err = matrix.NewFromColumnMajor(2, 3, vals[:5])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures Clone() yields an independent copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	cd, ok := c.(*matrix.Dense)
	require.True(t, ok)
	require.False(t, m.Equal(cd))
}

func TestIdentityAndString(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())

	m, err := matrix.NewFromRows([][]int64{{-3, 10}})
	require.NoError(t, err)
	require.Equal(t, "[-3, 10]\n", m.String())
}

func TestRows2DAndApply(t *testing.T) {
	m, err := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	m.Apply(func(i, j int, v int64) int64 { return v*10 + int64(i+j) })
	rows := m.Rows2D()
	require.Equal(t, [][]int64{{10, 21}, {31, 42}}, rows)

	rows[0][0] = -1 // copy, not a view
	v, _ := m.At(0, 0)
	require.Equal(t, int64(10), v)
}

func TestEqual(t *testing.T) {
	a, _ := matrix.NewFromRows([][]int64{{1, 2}})
	b, _ := matrix.NewFromRows([][]int64{{1, 2}})
	c, _ := matrix.NewFromRows([][]int64{{1}, {2}})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
}
