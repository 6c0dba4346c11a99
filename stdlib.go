// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file holds supporting types shared by the three numeric types:
// the error kinds raised by arithmetic, scan helpers, and small slice
// utilities.

package bignum

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// An ErrUnderflow panic is raised by a Natural operation whose exact
// result would be negative: Sub with a larger subtrahend, or Dec of
// zero. ErrUnderflow implements the error interface.
type ErrUnderflow struct {
	msg string
}

func (err ErrUnderflow) Error() string {
	return err.msg
}

// An ErrDivisionByZero panic is raised by division or modulo with a
// zero divisor, and by any Rat operation that would produce a zero
// denominator. ErrDivisionByZero implements the error interface.
type ErrDivisionByZero struct {
	msg string
}

func (err ErrDivisionByZero) Error() string {
	return err.msg
}

// An ErrRange panic is raised when setting a Rat from a NaN or
// infinite float64. ErrRange implements the error interface.
type ErrRange struct {
	msg string
}

func (err ErrRange) Error() string {
	return err.msg
}

func panicUnderflow() {
	panic(ErrUnderflow{"bignum: Natural underflow"})
}

func panicDivisionByZero() {
	panic(ErrDivisionByZero{"bignum: division by zero"})
}

// scan errors
var (
	errNoDigits = errors.New("number has no digits")
)

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

// scanSign consumes an optional leading '+' or '-'.
func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
