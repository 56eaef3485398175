// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

// This file implements classical division with a precomputed reciprocal:
// Knuth Algorithm D (TAOCP vol. 2, §4.3.1) refined with the 2-by-1
// precomputed-reciprocal guess of word.go's divw2by1, grounded on the
// modern divBasic in the retrieval pack's jiajunxin/multiexp natdiv.go
// (itself derived from math/big's lineage, updated to the reciprocal-word
// technique).
//
// Precondition: the top n words of the extended numerator (cy, a[0:m))
// are strictly less than {d,n}, d normalised, pi1 = preinvert1(d[n-1]).
// q must have length m-n+1; a is overwritten in place with the remainder
// in a[0:n).
func divClassicalPi1(q, a, d []Word, cy Word, pi1 Word) {
	n := len(d)
	m := len(a) - n

	scope := defaultArena.Start()
	defer scope.End()
	qhatv := scope.Alloc(n + 1)
	window := scope.Alloc(n + 1)

	vn1 := d[n-1]
	vn2 := d[n-2]

	for j := m; j >= 0; j-- {
		top := cy
		if j < m {
			top = a[j+n]
		}

		// D3: form the 2-by-1 trial quotient digit.
		qhat := Word(_M)
		if top != vn1 {
			var rhat Word
			qhat, rhat = divw2by1(top, a[j+n-1], vn1, pi1)

			// Refine to a 3-by-2 guess.
			x1, x2 := mulw(qhat, vn2)
			ujn2 := a[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat { // rhat overflowed: q̂v_{n-2} can't exceed now
					break
				}
				x1, x2 = mulw(qhat, vn2)
			}
		}

		// D4/D5/D6: subtract q̂·d from the working window; the refined trial
		// digit is at most one too large, so a single add-back corrects it.
		qhatv[n] = mulAddVWW(qhatv[0:n], d, qhat, 0)
		copy(window[:n], a[j:j+n])
		window[n] = top
		c := subVV(window, window, qhatv)
		if c != 0 {
			c = addVV(window[:n], window[:n], d)
			window[n] += c
			qhat--
		}
		copy(a[j:j+n], window[:n])
		if j < m {
			a[j+n] = window[n]
		}

		q[j] = qhat
	}
}

// greaterThan reports whether the two-word number x1:x2 > y1:y2.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || (x1 == y1 && x2 > y2)
}
