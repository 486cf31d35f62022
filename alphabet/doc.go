// SPDX-License-Identifier: MIT

// Package alphabet maps the fixed 29-symbol cipher alphabet to integer
// indices and back.
//
// The alphabet is closed and ordered:
//
//	A..Z  -> 0..25
//	' '   -> 26
//	'.'   -> 27
//	'!'   -> 28
//
// Every mapping is a bijection over [0, Size). Runes outside the alphabet
// (lowercase letters included) have no index; IndexOf returns -1 together
// with ErrInvalidSymbol. Callers that accept free-form input are expected to
// uppercase it first.
//
// Errors (sentinel):
//
//	– ErrInvalidSymbol    if a rune is not one of the 29 symbols.
//	– ErrIndexOutOfRange  if an index lies outside [0, Size).
//
// Example usage:
//
//	idx, err := alphabet.Indices("HELLO!")
//	// idx == []int{7, 4, 11, 11, 14, 28}
//	s, _ := alphabet.String(idx)
//	// s == "HELLO!"
package alphabet
