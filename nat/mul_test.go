// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import (
	"math/rand"
	"testing"
)

func TestMulClassicalKnown(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"0", "12345", "0"},
		{"1", "12345", "12345"},
		{"999999999999999999", "999999999999999999", "999999999999999998000000000000000001"},
	}
	for _, c := range cases {
		x, y, want := mustParse(t, c.x), mustParse(t, c.y), mustParse(t, c.want)
		var z Nat
		if got := z.Mul(x, y); got.Cmp(want) != 0 {
			t.Errorf("%s*%s = %s, want %s", c.x, c.y, got, want)
		}
	}
}

// TestMulAgreesAcrossAlgorithms checks that schoolbook, Karatsuba and FFT
// multiplication produce bit-identical products. Schoolbook and FFT are
// forced directly rather than waiting for operands large enough to reach
// them through Mul's own thresholds; Karatsuba is reached through Mul for
// the operands here longer than MulKaratsubaThreshold words.
func TestMulAgreesAcrossAlgorithms(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		bits := uint(64 + rnd.Intn(4000))
		x := Random(rnd, bits)
		y := Random(rnd, bits)
		if len(x) == 0 || len(y) == 0 {
			continue
		}

		classical := make(Nat, len(x)+len(y))
		mulClassical(classical, x, y)
		classical = classical.Norm()

		var z Nat
		want := z.Mul(x, y)

		if classical.Cmp(want) != 0 {
			t.Fatalf("trial %d: classical disagrees with dispatcher: %s vs %s", trial, classical, want)
		}

		fft := Nat(mulFFT(x, y)).Norm()
		if fft.Cmp(classical) != 0 {
			t.Fatalf("trial %d: fft disagrees with classical: %s vs %s", trial, fft, classical)
		}
	}
}

func TestMulCommutative(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		x := Random(rnd, uint(8+rnd.Intn(500)))
		y := Random(rnd, uint(8+rnd.Intn(500)))
		var a, b Nat
		if a.Mul(x, y).Cmp(b.Mul(y, x)) != 0 {
			t.Fatalf("mul not commutative for %s, %s", x, y)
		}
	}
}

func TestPow(t *testing.T) {
	cases := []struct {
		x    string
		y    uint64
		want string
	}{
		{"2", 0, "1"},
		{"2", 10, "1024"},
		{"3", 20, "3486784401"},
		{"0", 5, "0"},
	}
	for _, c := range cases {
		x := mustParse(t, c.x)
		want := mustParse(t, c.want)
		var z Nat
		if got := z.Pow(x, c.y); got.Cmp(want) != 0 {
			t.Errorf("%s**%d = %s, want %s", c.x, c.y, got, c.want)
		}
	}
}
