// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import "github.com/pkg/errors"

// ErrParse is returned by ParseDecimal (wrapped with the rejected input)
// when SetString rejects its input. Contract violations inside the package (aliasing
// misuse, subtraction underflow, division by zero) stay as panics,
// matching bford-go nat.go's own convention of panicking on programmer
// error rather than on malformed external input; ErrParse is reserved
// for the one boundary where input genuinely comes from outside the
// program.
var ErrParse = errors.New("nat: invalid decimal string")

// ParseDecimal wraps SetString with an error return for callers (the CLI,
// config loaders) that sit at a real I/O boundary instead of operating on
// already-validated internal values.
func ParseDecimal(s string) (Nat, error) {
	z, ok := SetString(s)
	if !ok {
		return nil, errors.Wrapf(ErrParse, "input %q", s)
	}
	return z, nil
}
