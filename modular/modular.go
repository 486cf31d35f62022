// SPDX-License-Identifier: MIT

// Package modular provides the small integer arithmetic the cipher needs:
// a true mathematical modulo, greatest common divisor and the modular
// multiplicative inverse.
//
// Two inverse routines are offered. Inverse runs the extended Euclidean
// algorithm and is what the cipher uses. InverseSearch is the linear
// candidate search over 1..m-1; it is only practical for small moduli and is
// kept as an independent oracle. Both report "no inverse" exactly when
// gcd(v mod m, m) != 1.
//
// Complexity:
//
//	– Mod, Coprime:   O(1) / O(log m)
//	– GCD, Inverse:   O(log m)
//	– InverseSearch:  O(m)
package modular

// Mod returns the representative of v in [0, m).
// Unlike Go's % operator the result is never negative.
// Mod panics if m <= 0; a non-positive modulus is a programmer error.
func Mod(v, m int64) int64 {
	if m <= 0 {
		panic("modular: modulus must be positive")
	}
	r := v % m
	if r < 0 {
		r += m
	}

	return r
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Coprime reports whether v has an inverse modulo m.
func Coprime(v, m int64) bool {
	if m < 2 {
		return false
	}

	return GCD(Mod(v, m), m) == 1
}

// Inverse returns x in [1, m) with (v*x) mod m == 1.
// ok is false when m < 2 or gcd(v mod m, m) != 1.
func Inverse(v, m int64) (x int64, ok bool) {
	if m < 2 {
		return 0, false
	}
	// Invariant: oldR ≡ oldS·v (mod m), r ≡ s·v (mod m).
	oldR, r := Mod(v, m), m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false
	}

	return Mod(oldS, m), true
}

// InverseSearch returns the same result as Inverse by trying every candidate
// in 1..m-1 in ascending order.
func InverseSearch(v, m int64) (x int64, ok bool) {
	if m < 2 {
		return 0, false
	}
	nv := Mod(v, m)
	for x = 1; x < m; x++ {
		if (nv*x)%m == 1 {
			return x, true
		}
	}

	return 0, false
}
