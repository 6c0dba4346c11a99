// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Rat-to-string conversion and back, including
// fixed-precision and exact (repetend) decimal rendering.

package bignum

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// String returns the canonical representation of x: the numerator
// alone if the denominator is 1, and "a/b" otherwise.
func (x *Rat) String() string {
	s := x.a.String()
	if x.IsInt() {
		return s
	}
	return s + "/" + x.b.String()
}

// scan sets z to the longest prefix of r matching
//
//	Rational = SignedInt [ ( "/" Natural ) | ( "." { digit } ) ]
//
// and reports how it went. A fraction is reduced; "x." with no
// fractional digits is the integer x.
func (z *Rat) scan(r io.ByteScanner) (*Rat, error) {
	neg, err := scanSign(r)
	if err != nil {
		return nil, err
	}
	abs, _, err := z.a.abs.scan(r)
	if err != nil {
		return nil, err
	}
	z.a.abs = abs
	b := nat(nil).setWord(1)

	switch ch, err := r.ReadByte(); {
	case err == io.EOF:
		// integer
	case err != nil:
		return nil, err
	case ch == '/':
		if b, _, err = b.scan(r); err != nil {
			return nil, err
		}
	case ch == '.':
		// each fractional digit d: a = 10*a + d, b = 10*b
		for {
			ch, err = r.ReadByte()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			if ch < '0' || ch > '9' {
				_ = r.UnreadByte()
				break
			}
			z.a.abs = z.a.abs.mulAddWW(z.a.abs, 10, Word(ch-'0'))
			b = b.mulAddWW(b, 10, 0)
		}
	default:
		_ = r.UnreadByte()
	}

	z.a.neg = neg && len(z.a.abs) > 0 // the sign applies last
	z.b.abs = b
	z.b.neg = false
	return z.norm(), nil
}

// SetString sets z to the value of s and returns z and a boolean
// indicating success. s must match the grammar accepted by scan,
// optionally preceded by whitespace; nothing may follow the number.
// If the operation failed, the value of z is undefined but the
// returned value is nil.
func (z *Rat) SetString(s string) (*Rat, bool) {
	r := strings.NewReader(strings.TrimLeftFunc(s, unicode.IsSpace))
	if _, err := z.scan(r); err != nil {
		return nil, false
	}
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, false
	}
	return z, true
}

var _ fmt.Scanner = &Rat{} // *Rat must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value
// of the scanned number.
func (z *Rat) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	_, err := z.scan(byteReader{s})
	return err
}

// FloatString returns a decimal representation of x rounded to digits
// decimal places with halfway cases rounded to even. Trailing zeros
// in the fraction are omitted, as is the decimal point for integral
// results. digits must not be negative.
func (x *Rat) FloatString(digits int) string {
	r := new(Rat).Round(x, digits)

	var buf []byte
	if r.a.neg {
		buf = append(buf, '-')
	}
	d := r.denom().abs
	q, rem := nat(nil).div(nat(nil), r.a.abs, d)
	buf = append(buf, q.utoa()...)
	if len(rem) > 0 {
		buf = append(buf, '.')
		for i := 0; i < digits && len(rem) > 0; i++ {
			rem = rem.mulAddWW(rem, 10, 0)
			var dq nat
			dq, rem = nat(nil).div(nat(nil), rem, d)
			digit := byte('0')
			if len(dq) > 0 {
				digit += byte(dq[0])
			}
			buf = append(buf, digit)
		}
	}
	return string(buf)
}

// PreciseString returns the exact decimal representation of x. A
// terminating expansion is returned in full; otherwise the repeating
// part is set in parentheses:
//
//	NewRat(1, 4).PreciseString() // "0.25"
//	NewRat(1, 6).PreciseString() // "0.1(6)"
//	NewRat(1, 7).PreciseString() // "0.(142857)"
//
// Termination is guaranteed: the long-division remainder is bounded
// by the denominator, so a (remainder, digit) pair must eventually
// repeat unless the remainder reaches zero.
func (x *Rat) PreciseString() string {
	var buf []byte
	if x.a.neg {
		buf = append(buf, '-')
	}
	d := x.denom().abs
	q, rem := nat(nil).div(nat(nil), x.a.abs, d)
	buf = append(buf, q.utoa()...)
	if len(rem) == 0 {
		return string(buf)
	}
	buf = append(buf, '.')

	// seen maps a remainder to the digits produced from it, each with
	// the position where that (remainder, digit) pair first appeared.
	seen := make(map[string]map[Word]int)
	for len(rem) > 0 {
		key := string(rem.utoa())
		t := nat(nil).mulAddWW(rem, 10, 0)
		var dq nat
		dq, rem = nat(nil).div(nat(nil), t, d)
		var digit Word
		if len(dq) > 0 {
			digit = dq[0]
		}
		if pos, ok := seen[key][digit]; ok {
			return string(buf[:pos]) + "(" + string(buf[pos:]) + ")"
		}
		if seen[key] == nil {
			seen[key] = make(map[Word]int)
		}
		seen[key][digit] = len(buf)
		buf = append(buf, '0'+byte(digit))
	}
	return string(buf)
}
