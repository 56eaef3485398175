// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the Nat type itself: the little-endian word-vector
// representation, normalisation, and the top-level add, sub, compare, and
// shift operations built on the linear primitives of vector.go. The shape
// of add/sub/cmp follows bford-go nat.go's cadd/csub/cmp, trimmed of the
// constant-time zcap machinery that package carries for cryptographic
// callers — this engine has no modular arithmetic or constant-time
// requirement.

package nat

// Nat is a little-endian, unsigned, arbitrary-length natural number: value
// = sum(a[i] * 2^(i*_W)). A Nat is normalised iff it is empty or its last
// word is nonzero; zero is represented by a nil or zero-length slice.
type Nat []Word

// Norm trims z to its normalised length (no leading zero word).
func (z Nat) Norm() Nat {
	return z[:normalise(z)]
}

// Normalised reports whether z is already in normalised form.
func (z Nat) Normalised() bool {
	return len(z) == 0 || z[len(z)-1] != 0
}

// IsZero reports whether z represents the value 0.
func (z Nat) IsZero() bool {
	for _, w := range z {
		if w != 0 {
			return false
		}
	}
	return true
}

// make returns a Nat of length n, reusing z's backing array when it has
// enough capacity (mirrors bford-go nat.go's own nat.make).
func (z Nat) make(n int) Nat {
	if n <= cap(z) {
		return z[:n]
	}
	const extra = 4
	return make(Nat, n, n+extra)
}

// SetWord sets z to a single-word value.
func (z Nat) SetWord(x Word) Nat {
	z = z.make(1)
	z[0] = x
	return z.Norm()
}

// Set copies x into z.
func (z Nat) Set(x Nat) Nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// aliases reports whether x and y share a backing array.
func aliases(x, y Nat) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	return &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// Add sets z = x + y and returns z, normalised. The asymmetric case adds
// over the shared low length, then propagates the carry through the
// remainder of the longer operand.
func (z Nat) Add(x, y Nat) Nat {
	m, n := len(x), len(y)
	if m < n {
		return z.Add(y, x)
	}
	switch {
	case m == 0:
		return z[:0]
	case n == 0:
		return z.Set(x)
	}
	z = z.make(m + 1)
	cy := addVasym(z, x, y, m, n)
	z[m] = cy
	return z.Norm()
}

// Sub sets z = x - y and returns z, normalised. Panics on underflow
// (x < y): natural numbers have no representation for a negative result.
func (z Nat) Sub(x, y Nat) Nat {
	m, n := len(x), len(y)
	if m < n {
		panic("nat: Sub underflow")
	}
	switch {
	case m == 0:
		return z[:0]
	case n == 0:
		return z.Set(x)
	}
	z = z.make(m)
	bw := subVasym(z, x, y, m, n)
	if bw != 0 {
		panic("nat: Sub underflow")
	}
	return z.Norm()
}

// Cmp returns -1, 0, +1 as x <=> y.
func (x Nat) Cmp(y Nat) int {
	m, n := len(x), len(y)
	switch {
	case m != n:
		if m < n {
			return -1
		}
		return 1
	case m == 0:
		return 0
	}
	return cmpVV(x, y)
}

// Neg two's-complement negates x into z at fixed width len(x), returning
// true iff x was zero.
func (z Nat) Neg(x Nat) (zeroInput bool, out Nat) {
	z = z.make(len(x))
	bw := negV(z, x)
	return bw == 1, z
}

// BitLen returns the number of bits required to represent x; x need not be
// normalised.
func (x Nat) BitLen() int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*_W + (_W - int(nlz(x[i])))
		}
	}
	return 0
}

// Shl sets z = x << s for an arbitrary non-negative shift count s,
// extending into new high words as needed: whole-word shifts are a copy
// of x at the appropriate offset, the sub-word remainder uses shlVU.
func (z Nat) Shl(x Nat, s uint) Nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	words, bits := int(s/_W), s%_W
	n := m + words
	z = z.make(n + 1)
	z[n] = shlVU(z[words:n], x, bits)
	zero(z[:words])
	return z.Norm()
}

// Shr sets z = x >> s.
func (z Nat) Shr(x Nat, s uint) Nat {
	m := len(x)
	words, bits := int(s/_W), s%_W
	n := m - words
	if n <= 0 {
		return z[:0]
	}
	z = z.make(n)
	shrVU(z, x[words:], bits)
	return z.Norm()
}

// String returns the canonical base-10 representation of z (getstr, see
// decimal.go). Implements fmt.Stringer so Nat values print sensibly in
// logs and test failures.
func (z Nat) String() string {
	return GetString(z)
}
