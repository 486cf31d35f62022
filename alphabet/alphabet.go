// SPDX-License-Identifier: MIT

package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of encodable symbols.
const Size = 29

// Symbols lists the alphabet in index order.
const Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ .!"

// InvalidIndex is returned by IndexOf alongside ErrInvalidSymbol.
const InvalidIndex = -1

// Sentinel errors returned by the codec.
var (
	// ErrInvalidSymbol indicates a rune outside the 29-symbol alphabet.
	ErrInvalidSymbol = errors.New("alphabet: invalid symbol")

	// ErrIndexOutOfRange indicates an index outside [0, Size).
	ErrIndexOutOfRange = errors.New("alphabet: index out of range")
)

// symbols is Symbols as runes, indexed by symbol index.
var symbols = []rune(Symbols)

// IndexOf returns the index of r in the alphabet.
// Complexity: O(1).
func IndexOf(r rune) (int, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), nil
	case r == ' ':
		return 26, nil
	case r == '.':
		return 27, nil
	case r == '!':
		return 28, nil
	}

	return InvalidIndex, fmt.Errorf("%q: %w", r, ErrInvalidSymbol)
}

// CharOf returns the symbol stored at index i.
// Complexity: O(1).
func CharOf(i int) (rune, error) {
	if i < 0 || i >= Size {
		return 0, fmt.Errorf("%d: %w", i, ErrIndexOutOfRange)
	}

	return symbols[i], nil
}

// Indices maps every rune of s to its index, failing on the first rune that
// is not in the alphabet. The error names the rune and its 0-based position.
// Complexity: O(len(s)).
func Indices(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	pos := 0
	for _, r := range s {
		idx, err := IndexOf(r)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", pos, err)
		}
		out = append(out, idx)
		pos++
	}

	return out, nil
}

// String is the inverse of Indices.
// Complexity: O(len(idx)).
func String(idx []int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(idx))
	for pos, i := range idx {
		r, err := CharOf(i)
		if err != nil {
			return "", fmt.Errorf("position %d: %w", pos, err)
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// Valid reports whether every rune of s belongs to the alphabet.
func Valid(s string) bool {
	for _, r := range s {
		if _, err := IndexOf(r); err != nil {
			return false
		}
	}

	return true
}
