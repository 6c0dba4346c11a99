// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Natural, the public unsigned integer type.

package bignum

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// A Natural represents an unsigned integer of unbounded magnitude.
// The zero value for a Natural represents the value 0.
//
// Operations whose exact result would be negative (Sub, Dec) panic
// with ErrUnderflow; Div, Mod and DivMod panic with ErrDivisionByZero
// for a zero divisor.
type Natural struct {
	abs nat
}

// NewNatural allocates and returns a new Natural set to x.
func NewNatural(x uint64) *Natural {
	return new(Natural).SetUint64(x)
}

// SetUint64 sets z to x and returns z.
func (z *Natural) SetUint64(x uint64) *Natural {
	z.abs = z.abs.setUint64(x)
	return z
}

// Set sets z to x and returns z.
func (z *Natural) Set(x *Natural) *Natural {
	if z != x {
		z.abs = z.abs.set(x.abs)
	}
	return z
}

// SetInt sets z to the magnitude |x| and returns z.
func (z *Natural) SetInt(x *Int) *Natural {
	z.abs = z.abs.set(x.abs)
	return z
}

// Uint64 returns the low 64 bits of x.
func (x *Natural) Uint64() uint64 {
	var v uint64
	if len(x.abs) > 0 {
		v = uint64(x.abs[0])
	}
	if len(x.abs) > 1 {
		v |= uint64(x.abs[1]) << _W
	}
	return v
}

// LowWord returns the least significant word of x, 0 for x == 0.
func (x *Natural) LowWord() Word {
	if len(x.abs) == 0 {
		return 0
	}
	return x.abs[0]
}

// BitLen returns the length of the absolute value of x in bits.
// The bit length of 0 is 0.
func (x *Natural) BitLen() int {
	return x.abs.bitLen()
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Natural) Cmp(y *Natural) int {
	return x.abs.cmp(y.abs)
}

// Add sets z to the sum x+y and returns z.
func (z *Natural) Add(x, y *Natural) *Natural {
	z.abs = z.abs.add(x.abs, y.abs)
	return z
}

// Sub sets z to the difference x-y and returns z.
// It panics with ErrUnderflow if x < y.
func (z *Natural) Sub(x, y *Natural) *Natural {
	z.abs = z.abs.sub(x.abs, y.abs)
	return z
}

// Mul sets z to the product x*y and returns z.
func (z *Natural) Mul(x, y *Natural) *Natural {
	z.abs = z.abs.mul(x.abs, y.abs)
	return z
}

// Div sets z to the quotient x/y and returns z.
// It panics with ErrDivisionByZero if y == 0.
func (z *Natural) Div(x, y *Natural) *Natural {
	z.abs, _ = z.abs.div(nil, x.abs, y.abs)
	return z
}

// Mod sets z to the remainder x%y and returns z.
// It panics with ErrDivisionByZero if y == 0.
func (z *Natural) Mod(x, y *Natural) *Natural {
	_, z.abs = nat(nil).div(z.abs, x.abs, y.abs)
	return z
}

// DivMod sets z to the quotient x/y and m to the remainder x%y
// and returns the pair (z, m), so that x = z*y + m and 0 <= m < y.
// It panics with ErrDivisionByZero if y == 0.
func (z *Natural) DivMod(x, y, m *Natural) (*Natural, *Natural) {
	z.abs, m.abs = z.abs.div(m.abs, x.abs, y.abs)
	return z, m
}

// Lsh sets z to x << n and returns z.
func (z *Natural) Lsh(x *Natural, n uint) *Natural {
	z.abs = z.abs.shl(x.abs, n)
	return z
}

// Rsh sets z to x >> n and returns z.
func (z *Natural) Rsh(x *Natural, n uint) *Natural {
	z.abs = z.abs.shr(x.abs, n)
	return z
}

// And sets z to x & y and returns z.
func (z *Natural) And(x, y *Natural) *Natural {
	z.abs = z.abs.and(x.abs, y.abs)
	return z
}

// Or sets z to x | y and returns z.
func (z *Natural) Or(x, y *Natural) *Natural {
	z.abs = z.abs.or(x.abs, y.abs)
	return z
}

// Xor sets z to x ^ y and returns z.
func (z *Natural) Xor(x, y *Natural) *Natural {
	z.abs = z.abs.xor(x.abs, y.abs)
	return z
}

// AndNot sets z to x &^ y and returns z.
func (z *Natural) AndNot(x, y *Natural) *Natural {
	z.abs = z.abs.andNot(x.abs, y.abs)
	return z
}

// Inc sets z to x+1 and returns z.
func (z *Natural) Inc(x *Natural) *Natural {
	z.abs = z.abs.add(x.abs, natOne)
	return z
}

// Dec sets z to x-1 and returns z.
// It panics with ErrUnderflow if x == 0.
func (z *Natural) Dec(x *Natural) *Natural {
	z.abs = z.abs.sub(x.abs, natOne)
	return z
}

// String returns the decimal representation of x.
func (x *Natural) String() string {
	return string(x.abs.utoa())
}

// SetString sets z to the value of s and returns z and a boolean
// indicating success. s must be a non-empty run of decimal digits,
// optionally preceded by whitespace; nothing may follow the digits.
// If the operation failed, the value of z is undefined but the
// returned value is nil.
func (z *Natural) SetString(s string) (*Natural, bool) {
	r := strings.NewReader(strings.TrimLeftFunc(s, unicode.IsSpace))
	abs, _, err := z.abs.scan(r)
	if err != nil {
		return nil, false
	}
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, false
	}
	z.abs = abs
	return z, true
}

var _ fmt.Scanner = &Natural{} // *Natural must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value
// of the scanned number.
func (z *Natural) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	abs, _, err := z.abs.scan(byteReader{s})
	if err != nil {
		return err
	}
	z.abs = abs
	return nil
}
