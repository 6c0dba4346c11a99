// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bignum implements arbitrary-precision integer and rational
arithmetic.

The package provides three numeric types, each built on top of the
previous one:

	Natural  unsigned integer of unbounded magnitude
	Int      signed integer (sign and Natural magnitude)
	Rat      exact rational number in canonical reduced form

A Natural stores its value as a little-endian slice of 32-bit words;
all arithmetic runs directly on the word slice with 64-bit carry
accumulators. Division uses normalized schoolbook long division
(Knuth's Algorithm D), multiplication is schoolbook. The zero value
for each type is ready to use and denotes 0:

	x := new(Int) // x is an *Int of value 0

Setters, numeric operations and predicates are represented as methods
of the form:

	func (z *Int) SetV(v V) *Int            // z = v
	func (z *Int) Unary(x *Int) *Int        // z = unary x
	func (z *Int) Binary(x, y *Int) *Int    // z = x binary y
	func (x *Int) Pred() P                  // p = pred(x)

For unary and binary operations the result is the receiver (usually
named z); if the receiver is one of the operands it may be safely
overwritten, so compound assignment is spelled x.Add(x, y) and even
x.Mul(x, x) is legal.

Arithmetic errors are reported by panicking with a typed error value:
ErrUnderflow for a Natural operation whose exact result would be
negative, ErrDivisionByZero for division or modulo by zero and for a
Rat with zero denominator, and ErrRange for converting a NaN or
infinity to a Rat. Malformed text is reported through ordinary error
returns (or the boolean result of SetString); it never panics.

Rationals are kept reduced at all times: the denominator is positive,
numerator and denominator are coprime, and zero is uniquely 0/1.
Besides exact arithmetic, Rat converts to and from float64 with
correct round-to-even in both directions, renders fixed-precision
decimal strings with banker's rounding (FloatString), and renders
exact decimal expansions with the repeating part in parentheses
(PreciseString):

	r, _ := new(Rat).SetString("1/6")
	s := r.PreciseString() // "0.1(6)"
*/
package bignum
