// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

// Pow sets z = x**y using binary exponentiation, exercising the Mul
// dispatcher at whatever operand sizes the exponent drives it to —
// the natctl "pow" subcommand is this engine's main lever for pushing
// operands past the Karatsuba and FFT thresholds without needing a
// multi-gigabyte literal on the command line.
func (z Nat) Pow(x Nat, y uint64) Nat {
	if y == 0 {
		return z.SetWord(1)
	}
	x = x.Norm()
	if len(x) == 0 {
		return z.make(0)
	}

	result := Nat{}.SetWord(1)
	base := append(Nat{}, x...)
	for y > 0 {
		if y&1 == 1 {
			var next Nat
			result = next.Mul(result, base)
		}
		y >>= 1
		if y > 0 {
			var sq Nat
			base = sq.Mul(base, base)
		}
	}
	return z.Set(result)
}
