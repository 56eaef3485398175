// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

// This file implements Karatsuba multiplication, grounded on bford-go
// nat.go's karatsuba/karatsubaAdd/karatsubaSub/karatsubaLen/addAt,
// trimmed of the constant-time "zcap" selection paths that package
// carries for cryptographic callers (out of scope here).

// karatsubaAdd implements z[0:n+n/2) += x[0:n) without bounds checks,
// factored out for readability; do not use outside karatsuba.
func karatsubaAdd(z, x []Word, n int) {
	if c := addVV(z[0:n], z[0:n], x); c != 0 {
		addVW(z[n:n+n>>1], z[n:n+n>>1], c)
	}
}

// karatsubaSub is the subtracting dual of karatsubaAdd.
func karatsubaSub(z, x []Word, n int) {
	if c := subVV(z[0:n], z[0:n], x); c != 0 {
		subVW(z[n:n+n>>1], z[n:n+n>>1], c)
	}
}

// mulKaratsuba multiplies equal-length x, y (len n, of the form p<<i that
// karatsubaLen returns; odd lengths fall back to mulClassical) into
// z[0:2n). z must have length >= 6n of scratch: offsets [0,2n) hold the
// final result, [2n,6n) are consumed as working storage during the
// recursion.
func mulKaratsuba(z, x, y []Word) {
	n := len(y)
	if n&1 != 0 || n < MulKaratsubaThreshold || n < 2 {
		mulClassical(z[:len(x)+len(y)], x, y)
		return
	}

	// x = x1*b + x0, y = y1*b + y0, b = 1<<(n/2 * _W)
	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]
	y1, y0 := y[n2:], y[0:n2]

	// z layout during recursion:
	//   6n      5n      4n      3n      2n      1n      0n
	// z = [z2cp | z0cp  | xd*yd | yd:xd | x1*y1 | x0*y0 ]
	mulKaratsuba(z, x0, y0)     // z0 = x0*y0
	mulKaratsuba(z[n:], x1, y1) // z2 = x1*y1

	neg := false
	xd := z[2*n : 2*n+n2]
	c := subVV(xd, x1, x0)
	if c != 0 {
		subVV(xd, x0, x1)
		neg = !neg
	}

	yd := z[2*n+n2 : 3*n]
	c = subVV(yd, y0, y1)
	if c != 0 {
		subVV(yd, y1, y0)
		neg = !neg
	}

	p := z[3*n:]
	mulKaratsuba(p, xd, yd)

	r := z[4*n:]
	copy(r, z[:2*n])

	zn2 := z[n2 : 2*n]
	karatsubaAdd(zn2, r, n)
	karatsubaAdd(zn2, r[n:], n)
	if !neg {
		karatsubaAdd(zn2, p, n)
	} else {
		karatsubaSub(zn2, p, n)
	}
}

// addAt implements z[i:] += x<<(i*_W) without normalisation; z must be
// long enough.
func addAt(z, x []Word, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:i+n], x); c != 0 {
			j := i + n
			if j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

// karatsubaLen computes the largest k <= n with k = p<<i for p <=
// MulKaratsubaThreshold, i.e. the longest chain of halvings before the
// classical threshold is reached.
func karatsubaLen(n int) int {
	i := uint(0)
	for n > MulKaratsubaThreshold {
		n >>= 1
		i++
	}
	return n << i
}

// mulKaratsubaUnbalanced handles m >= n > 0 (not necessarily equal) by
// picking a Karatsuba chunk length k = karatsubaLen(n), multiplying the
// low k-word chunks via Karatsuba, and adding in the remaining cross
// terms via recursive calls to the same Mul dispatcher used for the
// unbalanced m >> n case generally.
func mulKaratsubaUnbalanced(z, x, y []Word) []Word {
	m, n := len(x), len(y)
	k := karatsubaLen(n)

	z = ensureLen(z, maxInt(6*k, m+n))
	x0, y0 := x[0:k], y[0:k]
	mulKaratsuba(z, x0, y0)
	z = z[:m+n]
	zero(z[2*k:])

	if k < n || m != n {
		var t Nat
		x0n := Nat(x0).Norm()
		y1 := y[k:]
		t = t.Mul(x0n, y1)
		addAt(z, t, k)

		y0n := Nat(y0).Norm()
		for i := k; i < len(x); i += k {
			xi := x[i:]
			if len(xi) > k {
				xi = xi[:k]
			}
			xin := Nat(xi).Norm()
			t = t.Mul(xin, y0n)
			addAt(z, t, i)
			t = t.Mul(xin, y1)
			addAt(z, t, i+k)
		}
	}
	return z
}

func ensureLen(z []Word, n int) []Word {
	if n <= cap(z) {
		return z[:n]
	}
	return make([]Word, n)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
