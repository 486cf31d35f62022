// SPDX-License-Identifier: MIT

// Package matrix - exact determinant, minors, cofactors and adjugate.
//
// Purpose:
//   - Compute det(A) without any floating-point rounding, so that results can
//     be reduced modulo small integers safely.
//   - Provide adj(A) = cof(A)ᵀ, the integer matrix satisfying A·adj(A) = det(A)·I,
//     i.e. adj(A) = det(A)·A⁻¹ whenever A is invertible over the rationals.
//
// Determinant uses fraction-free Gaussian elimination (Bareiss): every
// intermediate division is exact, so the only growth is in magnitude. The
// intermediates are held in math/big to rule out silent overflow; the final
// value must fit in int64, otherwise ErrOverflow is returned.

package matrix

import (
	"fmt"
	"math/big"
)

// Determinant returns det(m) exactly.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy entries into a big.Int work grid.
//   - Stage 2: Bareiss elimination with row swaps on zero pivots
//     (each swap flips the sign).
//   - Stage 3: the last pivot is the determinant; narrow it to int64.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOverflow.
//
// Complexity:
//   - Time O(n³) big-integer operations, Space O(n²).
func Determinant(m Matrix) (int64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	det := bareiss(d)
	if !det.IsInt64() {
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("%s: %w", det.String(), ErrOverflow))
	}

	return det.Int64(), nil
}

// bareiss runs fraction-free elimination over a copy of d (square, n ≥ 1).
func bareiss(d *Dense) *big.Int {
	n := d.r
	grid := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		grid[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			grid[i][j] = big.NewInt(d.data[i*n+j])
		}
	}

	sign := 1
	prev := big.NewInt(1)
	var (
		i, j, k, p int
		t1, t2     big.Int
	)
	for k = 0; k < n-1; k++ {
		if grid[k][k].Sign() == 0 {
			// find a row below with a non-zero entry in column k
			for p = k + 1; p < n && grid[p][k].Sign() == 0; p++ {
			}
			if p == n {
				return new(big.Int)
			}
			grid[k], grid[p] = grid[p], grid[k]
			sign = -sign
		}
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				// grid[i][j] = (grid[i][j]*grid[k][k] - grid[i][k]*grid[k][j]) / prev
				t1.Mul(grid[i][j], grid[k][k])
				t2.Mul(grid[i][k], grid[k][j])
				t1.Sub(&t1, &t2)
				grid[i][j] = new(big.Int).Quo(&t1, prev)
			}
		}
		prev = grid[k][k]
	}

	det := new(big.Int).Set(grid[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}

	return det
}

// Minor returns the (n-1)×(n-1) submatrix of m with row i and column j removed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange (i or j outside [0,n)),
//     ErrInvalidDimensions when m is 1×1 (the minor would be empty).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := d.r
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	res, err := NewDense(n-1, n-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	var r, c, dst int
	for r = 0; r < n; r++ {
		if r == i {
			continue
		}
		for c = 0; c < n; c++ {
			if c == j {
				continue
			}
			res.data[dst] = d.data[r*n+c]
			dst++
		}
	}

	return res, nil
}

// Cofactor returns (-1)^(i+j) · det(Minor(m, i, j)).
// The cofactor of a 1×1 matrix is 1 by convention (empty minor).
//
// Complexity:
//   - Time O(n³).
func Cofactor(m Matrix, i, j int) (int64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if m.Rows() == 1 {
		if i != 0 || j != 0 {
			return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
		}
		return 1, nil
	}
	minor, err := Minor(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	det, err := Determinant(minor)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if (i+j)%2 == 1 {
		det = -det
	}

	return det, nil
}

// Adjugate returns adj(m), the transpose of the cofactor matrix.
//
// Behavior highlights:
//   - m·adj(m) = adj(m)·m = det(m)·I holds exactly, singular m included.
//   - For invertible m, adj(m) = det(m)·m⁻¹ without forming m⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOverflow (from cofactor determinants).
//
// Complexity:
//   - Time O(n⁵) (n² cofactors, each O(n³)); n is small in practice.
func Adjugate(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	var (
		i, j int
		cof  int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if cof, err = Cofactor(m, i, j); err != nil {
				return nil, matrixErrorf(opAdjugate, err)
			}
			res.data[j*n+i] = cof // transpose on write
		}
	}

	return res, nil
}
