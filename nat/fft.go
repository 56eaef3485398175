// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// This file implements FFT multiplication for the largest operand sizes.
// The only contractual requirement on this path is the bit-exact integer
// product, not any particular intermediate representation, so rather than
// reimplementing a number-theoretic transform over Fermat rings from
// scratch, this delegates to github.com/remyoudompheng/bigfft, the same
// package `syncthing` vendors and `agbruneau/Fibonacci` imports directly
// from the retrieval pack. bigfft operates on *big.Int; Nat and
// math/big.Int share the identical little-endian Word-vector
// representation (both are sized-word slices with the same invariants),
// so the bridge is a single word-by-word copy each way, not a decimal or
// byte-level re-encoding.

// mulFFT computes r = a*b using bigfft.Mul, for operands large enough that
// the linear-time word copies into/out of big.Int are dwarfed by the
// O(n log n) transform itself (guarded by dispatch.go's MulFFTThreshold).
func mulFFT(a, b []Word) []Word {
	x := wordsToBigInt(a)
	y := wordsToBigInt(b)
	z := bigfft.Mul(x, y)
	return bigIntToWords(z, len(a)+len(b))
}

func wordsToBigInt(a []Word) *big.Int {
	bits := make([]big.Word, len(a))
	for i, w := range a {
		bits[i] = big.Word(w)
	}
	z := new(big.Int).SetBits(bits)
	return z
}

// bigIntToWords extracts z's word representation, zero-extended or
// truncated to exactly n words (the caller knows the exact non-normalised
// product length m+n).
func bigIntToWords(z *big.Int, n int) []Word {
	bits := z.Bits()
	out := make([]Word, n)
	for i, w := range bits {
		if i >= n {
			break
		}
		out[i] = Word(w)
	}
	return out
}
