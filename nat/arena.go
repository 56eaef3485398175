// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import "sync"

// Arena is a stack-discipline scratch allocator used by the classical
// division kernel and friends: scoped allocation with guaranteed release
// on every exit path, built on a sync.Pool of recycled []Word buffers
// (bford-go nat.go's getNat/putNat), generalized from a single freelist
// into an explicit scope stack so nested recursive calls release their
// scratch in LIFO order even when a panic unwinds through them.
type Arena struct {
	pool sync.Pool
}

// NewArena returns a ready-to-use scratch arena. The zero value is also
// usable.
func NewArena() *Arena { return &Arena{} }

// Start begins a scratch scope. Callers must defer (*Scope).End() to
// guarantee release on every exit path, including panics.
func (ar *Arena) Start() *Scope {
	return &Scope{ar: ar}
}

// Scope is one TMP_START/TMP_END lifetime. Buffers obtained via Alloc are
// returned to the arena's pool when the scope ends.
type Scope struct {
	ar   *Arena
	bufs []*Word2D
}

// Word2D is a single scratch buffer of natural-number words.
type Word2D = []Word

// Alloc returns a zeroed scratch buffer of length n, owned by the scope.
func (s *Scope) Alloc(n int) Word2D {
	var p *Word2D
	if v := s.ar.pool.Get(); v != nil {
		p = v.(*Word2D)
	} else {
		p = new(Word2D)
	}
	if cap(*p) < n {
		*p = make(Word2D, n)
	} else {
		*p = (*p)[:n]
		zero(*p)
	}
	s.bufs = append(s.bufs, p)
	return *p
}

// End releases every buffer the scope allocated back to the arena. It is
// safe to call End more than once; subsequent calls are no-ops.
func (s *Scope) End() {
	for _, p := range s.bufs {
		s.ar.pool.Put(p)
	}
	s.bufs = nil
}

// defaultArena backs the package-level dispatcher entry points that don't
// thread an explicit Arena through.
var defaultArena = NewArena()
