// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import "testing"

func mustParse(t *testing.T, s string) Nat {
	t.Helper()
	x, ok := SetString(s)
	if !ok {
		t.Fatalf("SetString(%q) failed", s)
	}
	return x
}

func TestAddSub(t *testing.T) {
	cases := []struct{ x, y, want string }{
		{"0", "0", "0"},
		{"1", "1", "2"},
		{"18446744073709551615", "1", "18446744073709551616"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "1111111110111111111011111111100"},
	}
	for _, c := range cases {
		x, y, want := mustParse(t, c.x), mustParse(t, c.y), mustParse(t, c.want)
		var z Nat
		if got := z.Add(x, y); got.Cmp(want) != 0 {
			t.Errorf("%s+%s = %s, want %s", c.x, c.y, got, want)
		}
		var back Nat
		if got := back.Sub(want, x); got.Cmp(y) != 0 {
			t.Errorf("%s-%s = %s, want %s", c.want, c.x, got, c.y)
		}
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on underflow")
		}
	}()
	var z Nat
	z.Sub(mustParse(t, "1"), mustParse(t, "2"))
}

func TestCmp(t *testing.T) {
	a := mustParse(t, "100")
	b := mustParse(t, "99")
	if a.Cmp(b) <= 0 {
		t.Errorf("100 should be > 99")
	}
	if b.Cmp(a) >= 0 {
		t.Errorf("99 should be < 100")
	}
	if a.Cmp(a) != 0 {
		t.Errorf("100 should equal itself")
	}
}

func TestShiftRoundTrip(t *testing.T) {
	x := mustParse(t, "123456789012345678901234567890")
	for _, s := range []uint{0, 1, 7, 63, 64, 65, 191} {
		var z, back Nat
		z = z.Shl(x, s)
		back = back.Shr(z, s)
		if back.Cmp(x) != 0 {
			t.Errorf("shift round trip failed at s=%d: got %s want %s", s, back, x)
		}
	}
}

func TestBitLen(t *testing.T) {
	cases := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"2", 2},
		{"255", 8},
		{"256", 9},
	}
	for _, c := range cases {
		if got := mustParse(t, c.x).BitLen(); got != c.want {
			t.Errorf("BitLen(%s) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "9", "10", "999999999999999999", "1000000000000000000",
		"123456789012345678901234567890123456789012345678901234567890",
	}
	for _, s := range values {
		x := mustParse(t, s)
		if got := GetString(x); got != s {
			t.Errorf("GetString(SetString(%q)) = %q", s, got)
		}
	}
}

func TestSetStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "01", "1a", "-1", " 1"} {
		if _, ok := SetString(s); ok {
			t.Errorf("SetString(%q) should have failed", s)
		}
	}
}

func TestNormIdempotent(t *testing.T) {
	x := Nat{1, 2, 0, 0}
	once := x.Norm()
	twice := once.Norm()
	if len(once) != 2 || len(twice) != 2 {
		t.Errorf("Norm not idempotent: %v -> %v -> %v", x, once, twice)
	}
}
