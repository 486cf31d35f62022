// SPDX-License-Identifier: MIT

package hill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hillcipher/alphabet"
	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/katalvlaran/hillcipher/modular"
)

// Engine encodes and decodes messages with a key matrix and a modulus.
// It holds configuration only and never mutates its arguments, so a single
// Engine may be shared between goroutines.
type Engine struct {
	opts Options
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Engine{opts: o}
}

// trace hands a copy of m to the trace hook, if any.
func (e *Engine) trace(stage Stage, m *matrix.Dense) {
	if e.opts.Trace == nil {
		return
	}
	cp, err := matrix.ToDense(m)
	if err != nil {
		return
	}
	e.opts.Trace(stage, cp)
}

// validateKey checks the modulus and the key shape shared by every operation.
func validateKey(key matrix.Matrix, modulus int64) error {
	if modulus < 1 {
		return fmt.Errorf("modulus %d: %w", modulus, ErrInvalidModulus)
	}
	if err := matrix.ValidateSquare(key); err != nil {
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	if key.Rows() == 0 {
		return fmt.Errorf("empty key: %w", ErrDimensionMismatch)
	}

	return nil
}

// reduceKey validates key and returns a copy with every entry reduced into
// [0, modulus). Congruent keys encode alike, and the reduced copy keeps
// products and determinants within int64.
func reduceKey(key matrix.Matrix, modulus int64) (*matrix.Dense, error) {
	if err := validateKey(key, modulus); err != nil {
		return nil, err
	}

	return matrix.Mod(key, modulus)
}

// IsValidEncodingMatrix reports whether key can be undone under modulus:
// key is square and det(key) has a multiplicative inverse modulo modulus,
// which is the same as gcd(det mod m, m) == 1.
// The engine only reports validity; it never repairs a key.
func (e *Engine) IsValidEncodingMatrix(key matrix.Matrix, modulus int64) bool {
	k, err := reduceKey(key, modulus)
	if err != nil {
		return false
	}
	det, err := matrix.Determinant(k)
	if err != nil {
		return false
	}
	_, ok := modular.Inverse(det, modulus)

	return ok
}

// Encode applies key to message under modulus.
//
// Implementation:
//   - Stage 1: validate modulus and key shape, then reduce the key modulo
//     modulus.
//   - Stage 2: uppercase and map every rune through the alphabet (fail-fast).
//   - Stage 3: require len % n == 0, then pack the indices column-major into
//     an n×(len/n) block (symbol i at row i%n, column i/n).
//   - Stage 4: product = key × block in exact integers.
//   - Stage 5: reduce each entry modulo modulus and read the result
//     column-major back into symbols.
//
// Errors:
//   - ErrInvalidModulus, ErrDimensionMismatch, ErrInvalidSymbol,
//     ErrLengthMismatch, alphabet.ErrIndexOutOfRange (modulus above the
//     alphabet size produced an index with no symbol), matrix.ErrOverflow
//     (a modulus so large that reduced products leave int64).
//
// Complexity:
//   - Time O(n²·len/n) = O(n·len), Space O(len).
func (e *Engine) Encode(message string, key matrix.Matrix, modulus int64) (string, error) {
	k, err := reduceKey(key, modulus)
	if err != nil {
		return "", engineErrorf(opEncode, err)
	}

	idx, err := alphabet.Indices(strings.ToUpper(message))
	if err != nil {
		return "", engineErrorf(opEncode, err)
	}
	n := k.Rows()
	if len(idx)%n != 0 {
		return "", engineErrorf(opEncode,
			fmt.Errorf("length %d, dimension %d: %w", len(idx), n, ErrLengthMismatch))
	}
	if len(idx) == 0 {
		return "", nil
	}

	vals := make([]int64, len(idx))
	for i, v := range idx {
		vals[i] = int64(v)
	}
	block, err := matrix.NewFromColumnMajor(n, len(idx)/n, vals)
	if err != nil {
		return "", engineErrorf(opEncode, err)
	}
	product, err := matrix.Mul(k, block)
	if errors.Is(err, matrix.ErrOverflow) {
		return "", engineErrorf(opEncode, err)
	}
	if err != nil {
		return "", engineErrorf(opEncode, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	reduced, err := matrix.Mod(product, modulus)
	if err != nil {
		return "", engineErrorf(opEncode, err)
	}
	e.trace(StageKey, k)
	e.trace(StageBlock, block)
	e.trace(StageProduct, product)

	flat := reduced.ColumnMajor()
	out := make([]int, len(flat))
	for i, v := range flat {
		out[i] = int(v)
	}
	s, err := alphabet.String(out)
	if err != nil {
		return "", engineErrorf(opEncode, fmt.Errorf("modulus %d exceeds alphabet size %d: %w",
			modulus, alphabet.Size, err))
	}
	e.opts.Logger.Debug("encoded block", "dimension", n, "columns", len(idx)/n, "modulus", modulus)

	return s, nil
}

// DecodingMatrix derives the key that undoes key under modulus:
//
//	D = ((adj(key) mod m) · det⁻¹) mod m
//
// where det⁻¹ is the modular inverse of det(key). The key is reduced modulo
// m first and the adjugate is computed exactly, so no rounding is involved;
// the reduction is applied before and after scaling to keep intermediates
// small.
//
// Errors:
//   - ErrInvalidModulus, ErrDimensionMismatch, ErrNotInvertible,
//     matrix.ErrOverflow (determinant of the reduced key beyond int64).
//
// Complexity:
//   - Time O(n⁵) for the adjugate, O(log m) for the inverse.
func (e *Engine) DecodingMatrix(key matrix.Matrix, modulus int64) (*matrix.Dense, error) {
	k, err := reduceKey(key, modulus)
	if err != nil {
		return nil, engineErrorf(opDecoding, err)
	}
	det, err := matrix.Determinant(k)
	if err != nil {
		return nil, engineErrorf(opDecoding, err)
	}
	inv, ok := modular.Inverse(det, modulus)
	if !ok {
		return nil, engineErrorf(opDecoding, fmt.Errorf("det %d, modulus %d (gcd %d): %w",
			det, modulus, modular.GCD(modular.Mod(det, modulus), modulus), ErrNotInvertible))
	}

	adj, err := matrix.Adjugate(k)
	if err != nil {
		return nil, engineErrorf(opDecoding, err)
	}
	adj, err = matrix.Mod(adj, modulus)
	if err != nil {
		return nil, engineErrorf(opDecoding, err)
	}
	scaled, err := matrix.Scale(adj, inv)
	if err != nil {
		return nil, engineErrorf(opDecoding, err)
	}
	dec, err := matrix.Mod(scaled, modulus)
	if err != nil {
		return nil, engineErrorf(opDecoding, err)
	}
	e.trace(StageDecodingMatrix, dec)
	e.opts.Logger.Debug("derived decoding matrix", "det", det, "inverse", inv, "modulus", modulus)

	return dec, nil
}

// Decode undoes Encode: it derives the decoding matrix and encodes message
// with it.
//
// Errors:
//   - everything DecodingMatrix and Encode return.
func (e *Engine) Decode(message string, key matrix.Matrix, modulus int64) (string, error) {
	dec, err := e.DecodingMatrix(key, modulus)
	if err != nil {
		return "", engineErrorf(opDecode, err)
	}
	out, err := e.Encode(message, dec, modulus)
	if err != nil {
		return "", engineErrorf(opDecode, err)
	}

	return out, nil
}
