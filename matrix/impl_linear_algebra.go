// SPDX-License-Identifier: MIT

// Package matrix provides exact operations on any Matrix implementation:
// multiplication, transpose, scalar scaling and entrywise modular reduction.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches. Inputs are never mutated; every kernel allocates a
// fresh *Dense result.
//
// Notes:
//   - Arithmetic is int64 throughout. Mul and Scale check every product and
//     sum and report ErrOverflow instead of wrapping.
//   - All kernels return plain sentinels wrapped via matrixErrorf.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hillcipher/modular"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMod         = "Mod"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mulInt64 returns a*b, or false when the product does not fit in int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}

	return p, true
}

// addInt64 returns a+b, or false when the sum does not fit in int64.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

// asDense returns m itself when it is a *Dense, or a *Dense copy built through
// the interface accessors otherwise. Callers must not mutate the result.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    int64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); materialize both operands as *Dense.
//   - Stage 2: row-major i→k→j accumulation into the result buffer, skipping
//     zero a[i,k].
//
// Inputs:
//   - a: r×n, b: n×c.
//
// Returns:
//   - *Dense r×c.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch),
//     ErrOverflow (a product or partial sum leaves the int64 range).
//
// Determinism:
//   - Fixed loop order; integer arithmetic is exact, so the order does not
//     affect the result.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av, p                              int64
		ok                                 bool
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				if p, ok = mulInt64(av, db.data[rowOffsetB+j]); ok {
					p, ok = addInt64(res.data[rowOffsetR+j], p)
				}
				if !ok {
					return nil, matrixErrorf(opMul, fmt.Errorf("entry (%d,%d): %w", i, j, ErrOverflow))
				}
				res.data[rowOffsetR+j] = p
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns k·m.
// Errors: ErrNilMatrix; ErrOverflow when an entry leaves the int64 range.
// Complexity: O(r*c).
func Scale(m Matrix, k int64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := d.clone()
	var ok bool
	for idx, v := range res.data {
		if res.data[idx], ok = mulInt64(v, k); !ok {
			return nil, matrixErrorf(opScale, fmt.Errorf("entry (%d,%d): %w", idx/d.c, idx%d.c, ErrOverflow))
		}
	}

	return res, nil
}

// Mod returns a copy of m with every entry reduced into [0, modulus) using
// the mathematical (non-negative) modulo.
//
// Errors:
//   - ErrNilMatrix; ErrBadModulus when modulus <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Mod(m Matrix, modulus int64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMod, err)
	}
	if modulus <= 0 {
		return nil, matrixErrorf(opMod, fmt.Errorf("modulus %d: %w", modulus, ErrBadModulus))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMod, err)
	}
	res := d.clone()
	for idx, v := range res.data {
		res.data[idx] = modular.Mod(v, modulus)
	}

	return res, nil
}
