// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

// This file implements Newton-iteration division for the largest operand
// sizes: build an approximate reciprocal of the normalised divisor by
// Newton-Raphson iteration on 1/D, recover a quotient estimate from one
// high-precision multiplication, then correct it to the exact quotient
// with the same bounded add/sub-back loop the classical and
// divide-and-conquer kernels use. The quadratic-convergence shape
// (doubling the number of correct bits each round) is grounded on the
// retrieval pack's db47h/decimal decimal_sqrt.go Newton loop and
// bford-go nat.go's own sqrt(); with X scaled so that D*X is close to
// B^(2n), the iteration step is X_{k+1} = X_k*(2*B^(2n) - D*X_k)/B^(2n).

// invertNewton returns the n-word value dinv such that, with
// X = B^n + dinv (the leading bit implicit), D*X < B^(2n) < D*(X+4) for
// the normalised n-word divisor D = {d,n}. It seeds the iteration from
// d's leading word alone (via preinvert1, itself exact to within one
// unit) and applies the doubling Newton step at full n-word width until
// the relative error is squared down past n words of precision;
// correctness of the final quotient never depends on how tight dinv
// lands, only on how many corrective steps divNewtonPi1 needs to run,
// which is why the loop below errs on the side of one extra round.
func invertNewton(d []Word) Nat {
	n := len(d)
	if n == 1 {
		return Nat{preinvert1(d[0])}
	}

	pi1 := preinvert1(d[n-1])
	y := make(Nat, n+1)
	y[n] = 1
	y[n-1] = pi1

	twoB2n := make(Nat, 2*n+1)
	twoB2n[2*n] = 2

	rounds := 1
	for bits := _W; bits < n*_W; bits *= 2 {
		rounds++
	}

	d2 := Nat(d)
	for i := 0; i < rounds; i++ {
		var prod, diff, next Nat
		prod = prod.Mul(d2, y)
		diff = diff.Sub(twoB2n, prod)
		next = next.Mul(y, diff)
		y = next.Shr(next, uint(2*n)*_W)
	}

	dinv := make(Nat, n)
	copy(dinv, y)
	return dinv.Norm()
}

// divNewtonPi1 divides the extended numerator a (cy its externally
// carried leading word, as the classical and divide-and-conquer kernels
// also accept) by the normalised divisor d, using a Newton-refined
// reciprocal to produce a quotient estimate from a single multiplication
// and then correcting it to the exact quotient and remainder by
// comparison against the true product. The correction loops are capped
// at four rounds each, per the <4 ulp slack the reciprocal carries by
// construction; exceeding that bound means the reciprocal (or its
// caller's window) violated its contract, so the loop escalates to a
// panic rather than looping unboundedly.
func divNewtonPi1(q, a, d []Word, cy Word, pi1 Word) {
	n := len(d)
	m := len(a) - n

	if n < 2 {
		divClassicalPi1(q, a, d, cy, pi1)
		return
	}

	numerator := make(Nat, len(a)+1)
	copy(numerator[:len(a)], a)
	numerator[len(a)] = cy
	numerator = numerator.Norm()

	dinv := invertNewton(d)
	x := make(Nat, n+1)
	copy(x, dinv)
	x[n] = 1

	var est Nat
	est = est.Mul(numerator, x)
	qv := est.Shr(est, uint(2*n)*_W).Norm()

	var prod Nat
	prod = prod.Mul(qv, Nat(d))
	for i := 0; i < 4 && prod.Cmp(numerator) > 0; i++ {
		qv = qv.Sub(qv, Nat{1})
		prod = prod.Sub(prod, Nat(d))
	}
	if prod.Cmp(numerator) > 0 {
		panic("nat: newton quotient estimate exceeded its corrective decrement bound")
	}

	rem := make(Nat, len(numerator))
	rem = rem.Sub(numerator, prod)
	for i := 0; i < 4 && rem.Cmp(Nat(d)) >= 0; i++ {
		rem = rem.Sub(rem, Nat(d))
		qv = qv.Add(qv, Nat{1})
	}
	if rem.Cmp(Nat(d)) >= 0 {
		panic("nat: newton remainder exceeded its corrective increment bound")
	}
	if len(qv) > m+1 {
		panic("nat: newton quotient does not fit the window's quotient length")
	}

	zero(q)
	copy(q, qv)
	zero(a)
	copy(a[:len(rem)], rem)
}
