// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int-to-string conversion and back.

package bignum

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// String returns the decimal representation of x, with a leading '-'
// if x is negative.
func (x *Int) String() string {
	return string(x.abs.itoa(x.neg))
}

// scan sets z to the longest prefix of r matching
// [ "+" | "-" ] digit { digit } and reports how it went.
func (z *Int) scan(r io.ByteScanner) (*Int, error) {
	neg, err := scanSign(r)
	if err != nil {
		return nil, err
	}
	abs, _, err := z.abs.scan(r)
	if err != nil {
		return nil, err
	}
	z.abs = abs
	z.neg = len(z.abs) > 0 && neg // "-0" is 0, without sign
	return z, nil
}

// SetString sets z to the value of s and returns z and a boolean
// indicating success. s must be a decimal number with an optional
// leading sign, optionally preceded by whitespace; nothing may follow
// the digits. If the operation failed, the value of z is undefined
// but the returned value is nil.
func (z *Int) SetString(s string) (*Int, bool) {
	r := strings.NewReader(strings.TrimLeftFunc(s, unicode.IsSpace))
	if _, err := z.scan(r); err != nil {
		return nil, false
	}
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, false
	}
	return z, true
}

var _ fmt.Scanner = &Int{} // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value
// of the scanned number.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	_, err := z.scan(byteReader{s})
	return err
}
