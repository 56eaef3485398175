// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

// Algorithm-selection thresholds. bford-go's own multiplication dispatcher
// carries a karatsubaThreshold of 40; this engine tunes the crossover
// points instead to: Karatsuba beats schoolbook multiplication past 30
// words, FFT beats Karatsuba past 1000, and the divide-and-conquer and
// Newton division crossovers follow the same 30/1000 split.
const (
	defaultMulKaratsubaThreshold = 30
	defaultMulFFTThreshold       = 1000

	defaultDivConquerThreshold = 30
	defaultDivNewtonThreshold  = 1000
)

// Exported as vars, not consts, so internal/config can retune the
// dispatcher from a TOML file without a rebuild.
var (
	MulKaratsubaThreshold = defaultMulKaratsubaThreshold
	MulFFTThreshold       = defaultMulFFTThreshold

	DivConquerThreshold = defaultDivConquerThreshold
	DivNewtonThreshold  = defaultDivNewtonThreshold
)

// AlgoTrace, when non-nil, is invoked with the name of each algorithm the
// dispatcher selects; internal/metricsx wires a counter through it so the
// CLI and any embedding service can observe the distribution of algorithm
// choices without the core package importing prometheus itself.
var AlgoTrace func(op, algo string)

func trace(op, algo string) {
	if AlgoTrace != nil {
		AlgoTrace(op, algo)
	}
}

// Mul returns z = x*y. Handles the unbalanced case (len(x) >> len(y)) by
// chunking through Karatsuba, and the balanced case by dispatching among
// classical, Karatsuba and FFT multiplication by operand length.
func (z Nat) Mul(x, y Nat) Nat {
	x = x.Norm()
	y = y.Norm()
	if aliases(z, x) || aliases(z, y) {
		panic("nat: Mul result must not overlap either operand")
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return z.make(0)
	}
	if len(y) == 1 {
		z = z.make(len(x) + 1)
		z[len(x)] = mulAddVWW(z[:len(x)], x, y[0], 0)
		return z.Norm()
	}

	m, n := len(x), len(y)
	z = z.make(m + n)

	switch {
	case n <= MulKaratsubaThreshold:
		trace("mul", "classical")
		mulClassical(z, x, y)
	case m == n:
		if n <= MulFFTThreshold {
			trace("mul", "karatsuba")
			k := karatsubaLen(n)
			if k == n {
				buf := make([]Word, 6*n)
				mulKaratsuba(buf, x, y)
				copy(z, buf[:2*n])
			} else {
				z = mulKaratsubaUnbalanced(z, x, y)
			}
		} else {
			trace("mul", "fft")
			copy(z, mulFFT(x, y))
		}
	default:
		trace("mul", "karatsuba-unbalanced")
		z = mulKaratsubaUnbalanced(z, x, y)
	}
	return z.Norm()
}

// MulWord returns z = x*y for a single-word y, the fast path named by the
// feature supplement (natural when a caller's second operand is already
// known to fit in one machine word, e.g. scaling by a small constant).
func (z Nat) MulWord(x Nat, y Word) Nat {
	x = x.Norm()
	if y == 0 || len(x) == 0 {
		return z.make(0)
	}
	z = z.make(len(x) + 1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, 0)
	return z.Norm()
}

// DivMod returns (q, r) such that z = q*y + r, 0 <= r < y, for y != 0.
// Normalises y by left-shifting both operands, dispatches the body among
// classical, divide-and-conquer and Newton division by size, then
// right-shifts the remainder back.
func (z Nat) DivMod(y Nat) (q, r Nat) {
	y = y.Norm()
	x := z.Norm()
	if len(y) == 0 {
		panic("nat: division by zero")
	}
	if x.Cmp(y) < 0 {
		return Nat{}, append(Nat{}, x...)
	}
	if len(y) == 1 {
		qq, rr := x.DivWord(y[0])
		return qq, Nat{rr}.Norm()
	}

	shift := nlz(y[len(y)-1])
	dn := make(Nat, len(y)).Shl(y, shift).Norm()
	// dn may have gained no extra word since Shl drops leading zero words;
	// pad explicitly to len(y) so the divisor length used below is stable.
	if len(dn) < len(y) {
		dn = append(dn, make(Nat, len(y)-len(dn))...)
	}

	un := make(Nat, len(x)+1)
	un = Nat(shlVUFull(un, x, shift))

	n := len(y)
	m := len(un) - n
	qv := make(Nat, m+1)

	pi1 := preinvert1(dn[n-1])
	divremDispatch(qv, un, dn, pi1)

	rem := make(Nat, n)
	copy(rem, un[:n])
	rem = rem.Shr(rem, shift).Norm()

	return Nat(qv).Norm(), rem
}

// shlVUFull shifts x left by s bits into dst (length len(x)+1), returning
// the carry-extended result; used by DivMod to normalise the numerator
// without losing the overflow word that left-shifting a divisor-aligned
// numerator can produce.
func shlVUFull(dst, x Nat, s uint) Nat {
	if s == 0 {
		copy(dst, x)
		dst[len(x)] = 0
		return dst
	}
	cy := shlVU(dst[:len(x)], x, s)
	dst[len(x)] = cy
	return dst
}

// DivWord returns (q, r) such that x = q*d + r, 0 <= r < d, the single-word
// fast path named in the feature supplement for the common case of a
// divisor already known to fit one machine word.
func (x Nat) DivWord(d Word) (q Nat, r Word) {
	q = make(Nat, len(x))
	r = divWVW(q, 0, x, d)
	return q.Norm(), r
}

// divremDispatch selects among classical, divide-and-conquer and Newton
// division for the extended numerator a (its top word already folded in,
// as DivMod arranges), d normalised. When the quotient is long enough
// that the divide-and-conquer/Newton kernels' 2n-1 >= window >= n
// precondition would be violated, it processes the numerator from the
// top down in blocks of at most n quotient words, carrying each block's
// n-word remainder in as the top words of the next block's window (its
// top word passed to the kernel as the external carry cy) — the
// same block-recursive framing the retrieval pack's multiexp natdiv.go
// uses to let a bounded-window division kernel cover an arbitrarily long
// numerator.
func divremDispatch(q, a, d []Word, pi1 Word) {
	n := len(d)
	totalQ := len(a) - n + 1

	if totalQ-1 < DivConquerThreshold || n < 2 {
		divClassicalPi1(q, a, d, 0, pi1)
		return
	}

	qend := len(q)
	var cy Word
	for qend > 0 {
		want := n
		if qend < n {
			want = qend
		}
		lo := qend - want
		divremOne(q[lo:qend], cy, a[lo:qend+n-1], d, pi1, want-1)
		qend = lo
		if qend > 0 {
			cy = a[lo+n-1]
		}
	}
}

// divremOne divides one window (cy, a[0:len(a))) of true quotient length
// qn+1 by d, choosing the classical, divide-and-conquer or Newton kernel.
// Newton only engages once both the quotient length and the divisor
// itself clear the threshold — a short divisor gives Newton's reciprocal
// nothing to amortise, so divide-and-conquer stays cheaper there even at
// large qn.
func divremOne(q []Word, cy Word, a []Word, d []Word, pi1 Word, qn int) {
	switch {
	case qn < DivConquerThreshold || len(d) < 2:
		trace("div", "classical")
		divClassicalPi1(q, a, d, cy, pi1)
	case qn < DivNewtonThreshold || len(d) < DivNewtonThreshold:
		trace("div", "divconquer")
		divConquerPi1(q, a, d, cy, pi1)
	default:
		trace("div", "newton")
		divNewtonPi1(q, a, d, cy, pi1)
	}
}
