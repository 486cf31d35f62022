// Package hillcipher is a Hill cipher over a closed 29-symbol alphabet:
// the letters A–Z, space, '.' and '!'.
//
// What is inside?
//
//	alphabet/      - symbol ⇄ index codec (A=0 … Z=25, ' '=26, '.'=27, '!'=28)
//	modular/       - canonical residues, gcd, modular inverses
//	matrix/        - exact int64 matrices: product, transpose, determinant,
//	                 minors, cofactors, adjugate, element-wise modulo
//	hill/          - Engine (encode/decode/validity), Chain and Session for
//	                 layered encodings
//	shell/         - interactive request/validate/retry console
//	cmd/hillcipher - command-line front end (encode, decode, check, shell)
//
// Quick start:
//
//	key, _ := matrix.NewFromRows([][]int64{{3, 3}, {2, 5}})
//	e := hill.New()
//	ct, _ := e.Encode("HELLO!", key, 29) // "EFITKX"
//	pt, _ := e.Decode(ct, key, 29)       // "HELLO!"
//
// A key is usable only when its determinant is invertible modulo the
// modulus, i.e. gcd(det mod m, m) == 1. All arithmetic is exact; nothing is
// rounded.
package hillcipher
