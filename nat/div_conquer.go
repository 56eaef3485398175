// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

// This file implements divide-and-conquer division: given the extended
// numerator (cy, a[0:M)) with 2n-1 >= M >= n > 0, compute q[0:M-n+1) and
// overwrite a[0:n) with the remainder. The recursive split (halve the
// quotient length, recurse on the high half to get a partial remainder,
// splice the low digits back in, recurse on the low half) is grounded on
// the overall recursive-halving strategy of the retrieval pack's
// jiajunxin/multiexp natdiv.go divRecursive/divRecursiveStep (itself a
// Burnikel-Ziegler-style division), simplified to a single-level halving
// contract rather than that file's "wide digit" grouping. Recursion
// bottoms out in divClassicalPi1 once the quotient length no longer
// exceeds DivConquerThreshold.
func divConquerPi1(q, a, d []Word, cy Word, pi1 Word) {
	n := len(d)
	m := len(a) - n // quotient length - 1

	if m < DivConquerThreshold || n < 2 {
		divClassicalPi1(q, a, d, cy, pi1)
		return
	}

	s := (m + 1) / 2 // ceil(m/2): size of the high half's quotient - 1
	s0 := m - s       // floor(m/2): size of the low half's quotient

	// High half: divide (cy, a[s0:M)) — length n+s — by d, producing the
	// top s+1 quotient words in q[s0:] and leaving an n-word partial
	// remainder in a[s0:s0+n).
	divConquerPi1(q[s0:], a[s0:], d, cy, pi1)

	// Low half: the partial remainder (now at a[s0:s0+n)) together with
	// the untouched low s0 digits a[0:s0) form the numerator for the
	// second recursive division, whose s0 quotient words go to q[0:s0);
	// the remainder's top word a[s0+n-1] is passed in as the external
	// carry and the window below it is a[0:s0+n-1).
	divConquerPi1(q[0:s0], a[0:s0+n-1], d, a[s0+n-1], pi1)
}
