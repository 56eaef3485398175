// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

// Ring is the minimal arithmetic surface a generic algorithm (e.g. a
// power or GCD routine written once and reused across number types)
// needs from a natural-number implementation. Grounded on the parent
// ring/field abstraction named in the original source's parent.h, which
// keeps the elementary operations behind an interface so higher-level
// routines do not depend on a concrete representation.
type Ring interface {
	Zero() Ring
	One() Ring
	IsZero() bool
	Cmp(Ring) int
	Add(Ring, Ring) Ring
	Sub(Ring, Ring) Ring
	Mul(Ring, Ring) Ring
}

// AsRing adapts a Nat to the Ring interface; Nat's own Add/Sub/Mul/Cmp
// methods are typed in terms of Nat (for zero-conversion use within this
// package), so the adapter carries the boxing in one place rather than
// retyping every arithmetic method.
type AsRing struct{ Nat Nat }

func (r AsRing) Zero() Ring { return AsRing{r.Nat.make(0)} }
func (r AsRing) One() Ring  { return AsRing{r.Nat.SetWord(1)} }
func (r AsRing) IsZero() bool { return r.Nat.IsZero() }

func (r AsRing) Cmp(y Ring) int {
	return r.Nat.Cmp(y.(AsRing).Nat)
}

func (r AsRing) Add(x, y Ring) Ring {
	var z Nat
	return AsRing{z.Add(x.(AsRing).Nat, y.(AsRing).Nat)}
}

func (r AsRing) Sub(x, y Ring) Ring {
	var z Nat
	return AsRing{z.Sub(x.(AsRing).Nat, y.(AsRing).Nat)}
}

func (r AsRing) Mul(x, y Ring) Ring {
	var z Nat
	return AsRing{z.Mul(x.(AsRing).Nat, y.(AsRing).Nat)}
}
