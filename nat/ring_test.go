// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import "testing"

func TestAsRingArithmetic(t *testing.T) {
	x := AsRing{mustParse(t, "12")}
	y := AsRing{mustParse(t, "30")}

	var sum Ring = x.Add(x, y)
	if got := sum.(AsRing).Nat.String(); got != "42" {
		t.Fatalf("Add: got %s, want 42", got)
	}

	diff := y.Sub(y, x)
	if got := diff.(AsRing).Nat.String(); got != "18" {
		t.Fatalf("Sub: got %s, want 18", got)
	}

	var prodOut AsRing
	prod := prodOut.Mul(x, y)
	if got := prod.(AsRing).Nat.String(); got != "360" {
		t.Fatalf("Mul: got %s, want 360", got)
	}

	if x.Cmp(y) >= 0 {
		t.Fatalf("Cmp: expected x < y")
	}

	if x.IsZero() {
		t.Fatalf("IsZero: 12 should not report zero")
	}
	zero := x.Zero()
	if !zero.(AsRing).IsZero() {
		t.Fatalf("Zero: expected zero value")
	}
	one := x.One()
	if one.(AsRing).Nat.String() != "1" {
		t.Fatalf("One: got %s, want 1", one.(AsRing).Nat.String())
	}
}
