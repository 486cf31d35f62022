// SPDX-License-Identifier: MIT

// Package alphabet_test contains unit tests for the symbol codec.
package alphabet_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hillcipher/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndexOf_FixedOrder pins the documented order of the alphabet.
func TestIndexOf_FixedOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    rune
		want int
	}{
		{'A', 0}, {'B', 1}, {'H', 7}, {'Z', 25},
		{' ', 26}, {'.', 27}, {'!', 28},
	}
	for _, tc := range tests {
		got, err := alphabet.IndexOf(tc.r)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "IndexOf(%q)", tc.r)
	}
}

// TestRoundTrip checks CharOf(IndexOf(c)) == c for every symbol.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	require.Len(t, []rune(alphabet.Symbols), alphabet.Size)
	seen := make(map[int]bool, alphabet.Size)
	for _, c := range alphabet.Symbols {
		idx, err := alphabet.IndexOf(c)
		require.NoError(t, err)
		require.False(t, seen[idx], "index %d assigned twice", idx)
		seen[idx] = true

		back, err := alphabet.CharOf(idx)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

// TestIndexOf_Invalid covers runes outside the alphabet.
func TestIndexOf_Invalid(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'a', 'z', '0', '9', ',', '?', '\n', '\t', 'É', 'ß', '你'} {
		idx, err := alphabet.IndexOf(r)
		require.Errorf(t, err, "IndexOf(%q)", r)
		assert.True(t, errors.Is(err, alphabet.ErrInvalidSymbol))
		assert.Equal(t, alphabet.InvalidIndex, idx)
	}
}

// TestCharOf_OutOfRange covers indices outside [0, Size).
func TestCharOf_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, i := range []int{-1, alphabet.Size, 100} {
		_, err := alphabet.CharOf(i)
		require.Error(t, err)
		assert.ErrorIs(t, err, alphabet.ErrIndexOutOfRange)
	}
}

// TestIndicesAndString covers whole-string mapping in both directions.
func TestIndicesAndString(t *testing.T) {
	t.Parallel()

	idx, err := alphabet.Indices("HELLO!")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 4, 11, 11, 14, 28}, idx)

	s, err := alphabet.String(idx)
	require.NoError(t, err)
	assert.Equal(t, "HELLO!", s)

	empty, err := alphabet.Indices("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestIndices_ReportsPosition checks the failing position is named.
func TestIndices_ReportsPosition(t *testing.T) {
	t.Parallel()

	_, err := alphabet.Indices("AB?C")
	require.ErrorIs(t, err, alphabet.ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "position 2")

	_, err = alphabet.String([]int{0, 29})
	require.ErrorIs(t, err, alphabet.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "position 1")
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, alphabet.Valid("HELLO WORLD."))
	assert.True(t, alphabet.Valid(""))
	assert.False(t, alphabet.Valid("hello"))
	assert.False(t, alphabet.Valid("HI?"))
}
