// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

// mulClassical computes r[0:m+n) = a*b for m >= n >= 0, r disjoint from a
// and b. Grounded on bford-go nat.go's basicMul: the first row is a plain
// mul_1, each subsequent row is an addmul_1.
func mulClassical(r, a, b []Word) {
	m, n := len(a), len(b)
	zero(r[:m+n])
	if m == 0 || n == 0 {
		return
	}
	r[m] = mulAddVWW(r[:m], a, b[0], 0)
	for j := 1; j < n; j++ {
		r[m+j] = addMulVWW(r[j:j+m], a, b[j])
	}
}
