// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nat implements the dispatched multi-precision natural-number
// engine: word primitives, linear vector ops, and the three multiplication
// and three division algorithms selected by the threshold dispatcher in
// dispatch.go.
package nat

import "math/bits"

// Word is a single machine digit of a Nat. Arithmetic on Word values wraps
// modulo 2^_W; carries and borrows are always returned explicitly.
type Word = uint

const (
	_S = bits.UintSize / 8 // word size in bytes
	_W = bits.UintSize     // word size in bits
	_B = 1 << (_W - 1) << 1
	_M = _B - 1

	_W2 = _W / 2
	_B2 = 1 << _W2
	_M2 = _B2 - 1
)

// addc returns s = x + y + cin mod 2^_W and the carry out of that sum.
func addc(x, y, cin Word) (s, cout Word) {
	s, cout = bits.Add(x, y, cin)
	return
}

// subb returns d = x - y - bin mod 2^_W and the borrow out of that
// difference.
func subb(x, y, bin Word) (d, bout Word) {
	d, bout = bits.Sub(x, y, bin)
	return
}

// mulw returns the full 2-word product x*y as (hi, lo).
func mulw(x, y Word) (hi, lo Word) {
	hi, lo = bits.Mul(x, y)
	return
}

// nlz returns the number of leading zero bits of x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros(x))
}

// preinvert1 computes the precomputed reciprocal pi1 of a normalised
// single word d (top bit set): pi1 is the unique word such that
//
//	pi1 = floor((2^(2W)-1)/d) - 2^W.
//
// d must have its top bit set; this is a contract violation otherwise.
func preinvert1(d Word) Word {
	if d&(Word(1)<<(_W-1)) == 0 {
		panic("nat: preinvert1 requires a normalised divisor")
	}
	q, _ := bits.Div(^d, ^Word(0), d)
	return q
}

// divw2by1 divides the two-word value hi*2^_W + lo by the normalised word
// d using the precomputed reciprocal pi1 = preinvert1(d). Requires hi < d.
// This is the constant-structure 2-by-1 division primitive, following the
// algorithm in Möller & Granlund, "Improved division by
// invariant integers".
func divw2by1(hi, lo, d, pi1 Word) (q, r Word) {
	if hi >= d {
		panic("nat: divw2by1 requires hi < d")
	}
	qh, ql := mulw(pi1, hi)
	ql, c := addc(ql, lo, 0)
	qh, _ = addc(qh, hi, c)
	qh++

	r = lo - qh*d
	if r > ql {
		qh--
		r += d
	}
	if r >= d {
		qh++
		r -= d
	}
	return qh, r
}
