// SPDX-License-Identifier: MIT

// Package hill implements the Hill cipher over the 29-symbol alphabet.
//
// A key is a square n×n integer matrix used together with a modulus m.
// Encoding uppercases the message, maps it to indices, packs those indices
// column by column into an n×(len/n) block, multiplies by the key and reduces
// modulo m. Decoding encodes again with the decoding matrix
//
//	D = ((adj(K) mod m) · det(K)⁻¹) mod m
//
// which exists only when gcd(det(K) mod m, m) == 1.
//
// What:
//
//   - Engine: stateless encode/decode/validity checks, safe for concurrent use.
//   - Chain: caller-owned LIFO of applied layers (key + modulus).
//   - Session: a message travelling through successive layers that can be
//     decoded again one layer at a time.
//
// Errors (sentinel):
//
//	– ErrInvalidSymbol      if the message holds a rune outside the alphabet.
//	– ErrLengthMismatch     if len(message) is not a multiple of n.
//	– ErrNotInvertible      if det(K) has no inverse modulo m.
//	– ErrDimensionMismatch  if the key is nil, empty or not square.
//	– ErrInvalidModulus     if m < 1.
//	– ErrChainEmpty         if a session has no layer left to decode.
//
// Messages are never padded or truncated, and no error is ever replaced by a
// default value.
//
// Example usage:
//
//	key, _ := matrix.NewFromRows([][]int64{{3, 3}, {2, 5}})
//	e := hill.New()
//	ct, _ := e.Encode("HELLO!", key, 29) // "EFITKX"
//	pt, _ := e.Decode(ct, key, 29)       // "HELLO!"
package hill
