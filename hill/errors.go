// SPDX-License-Identifier: MIT

package hill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillcipher/alphabet"
)

// Sentinel errors returned by the engine, the chain and the session.
// All are recoverable: the caller re-prompts or aborts the current operation.
var (
	// ErrInvalidSymbol indicates a character outside the 29-symbol alphabet.
	// It is the alphabet package sentinel, so either name matches via errors.Is.
	ErrInvalidSymbol = alphabet.ErrInvalidSymbol

	// ErrLengthMismatch indicates the message length is not a multiple of the
	// key dimension. Messages are never padded or truncated.
	ErrLengthMismatch = errors.New("hill: message length is not a multiple of the key dimension")

	// ErrNotInvertible indicates the key determinant has no inverse modulo the modulus.
	ErrNotInvertible = errors.New("hill: key matrix is not invertible modulo the modulus")

	// ErrDimensionMismatch indicates a nil, empty or non-square key matrix.
	ErrDimensionMismatch = errors.New("hill: dimension mismatch")

	// ErrInvalidModulus indicates a modulus below 1.
	ErrInvalidModulus = errors.New("hill: modulus must be positive")

	// ErrChainEmpty indicates a decode was requested with no encoded layer left.
	ErrChainEmpty = errors.New("hill: no encoded layer to decode")
)

// Operation tags used in error wrapping.
const (
	opEncode   = "Encode"
	opDecode   = "Decode"
	opDecoding = "DecodingMatrix"
	opPush     = "Chain.Push"
)

// engineErrorf wraps err with an operation tag, preserving errors.Is matching.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
