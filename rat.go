// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Rat, the exact rational number, and its
// conversions to and from float64.

package bignum

import "math"

// A Rat represents a quotient a/b of integers in canonical form: the
// denominator is positive, numerator and denominator are coprime, and
// the value zero is uniquely 0/1. The zero value for a Rat represents
// the value 0.
//
// Any operation that would produce a zero denominator panics with
// ErrDivisionByZero.
type Rat struct {
	// To make the zero value of Rat represent 0, an empty
	// denominator magnitude is read as 1.
	a, b Int
}

// float64 mantissa and exponent limits (IEEE-754 binary64).
const (
	mantDig = 53    // mantissa bits, implicit bit included
	minExp  = -1021 // smallest base-2 exponent of a normalized float64, frexp convention
)

// NewRat creates a new Rat with numerator a and denominator b.
func NewRat(a, b int64) *Rat {
	return new(Rat).SetFrac(NewInt(a), NewInt(b))
}

// denom returns the denominator of x as an Int; it is 1 if x is the
// zero value. The result must not be modified.
func (x *Rat) denom() *Int {
	if len(x.b.abs) == 0 {
		return intOne
	}
	return &x.b
}

// norm re-establishes the canonical form of z: positive denominator,
// coprime numerator and denominator, zero uniquely 0/1. It panics
// with ErrDivisionByZero if the denominator is zero.
func (z *Rat) norm() *Rat {
	switch z.b.Sign() {
	case 0:
		panicDivisionByZero()
	case -1:
		z.a.Neg(&z.a)
		z.b.Neg(&z.b)
	}
	// z.b > 0
	if len(z.a.abs) == 0 {
		z.a.neg = false
		z.b.abs = z.b.abs.setWord(1)
		return z
	}
	g := nat(nil).gcd(z.a.abs, z.b.abs)
	if g.cmp(natOne) != 0 {
		z.a.abs, _ = nat(nil).div(nil, z.a.abs, g)
		z.b.abs, _ = nat(nil).div(nil, z.b.abs, g)
	}
	return z
}

// Set sets z to x (by making a copy of x) and returns z.
func (z *Rat) Set(x *Rat) *Rat {
	if z != x {
		z.a.Set(&x.a)
		z.b.Set(&x.b)
	}
	return z
}

// SetFrac sets z to a/b and returns z.
// It panics with ErrDivisionByZero if b == 0.
func (z *Rat) SetFrac(a, b *Int) *Rat {
	z.a.Set(a)
	if &z.b != b {
		z.b.Set(b)
	}
	return z.norm()
}

// SetInt sets z to x (x/1) and returns z.
func (z *Rat) SetInt(x *Int) *Rat {
	z.a.Set(x)
	z.b.SetInt64(1)
	return z
}

// SetInt64 sets z to x (x/1) and returns z.
func (z *Rat) SetInt64(x int64) *Rat {
	z.a.SetInt64(x)
	z.b.SetInt64(1)
	return z
}

// SetNatural sets z to x (x/1) and returns z.
func (z *Rat) SetNatural(x *Natural) *Rat {
	z.a.SetNatural(x)
	z.b.SetInt64(1)
	return z
}

// Num returns the numerator of x; it may be <= 0. The result is a
// reference to x's numerator; changing it changes x.
func (x *Rat) Num() *Int {
	return &x.a
}

// Denom returns the denominator of x; it is always > 0. The result
// is a reference to x's denominator.
func (x *Rat) Denom() *Int {
	if len(x.b.abs) == 0 {
		x.b.abs = x.b.abs.setWord(1)
	}
	return &x.b
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Rat) Sign() int {
	return x.a.Sign()
}

// IsInt reports whether the denominator of x is 1.
func (x *Rat) IsInt() bool {
	return len(x.b.abs) == 0 || x.b.abs.cmp(natOne) == 0
}

// Neg sets z to -x and returns z.
func (z *Rat) Neg(x *Rat) *Rat {
	z.Set(x)
	z.a.Neg(&z.a)
	return z
}

// Abs sets z to |x| and returns z.
func (z *Rat) Abs(x *Rat) *Rat {
	z.Set(x)
	z.a.Abs(&z.a)
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Rat) Add(x, y *Rat) *Rat {
	// a/b + c/d == (a*d + b*c)/(b*d)
	xb, yb := x.denom(), y.denom()
	var ad, bc Int
	ad.Mul(&x.a, yb)
	bc.Mul(xb, &y.a)
	z.a.Add(&ad, &bc)
	z.b.Mul(xb, yb)
	return z.norm()
}

// Sub sets z to the difference x-y and returns z.
func (z *Rat) Sub(x, y *Rat) *Rat {
	// a/b - c/d == (a*d - b*c)/(b*d)
	xb, yb := x.denom(), y.denom()
	var ad, bc Int
	ad.Mul(&x.a, yb)
	bc.Mul(xb, &y.a)
	z.a.Sub(&ad, &bc)
	z.b.Mul(xb, yb)
	return z.norm()
}

// Mul sets z to the product x*y and returns z.
func (z *Rat) Mul(x, y *Rat) *Rat {
	// a/b * c/d == (a*c)/(b*d)
	xb, yb := x.denom(), y.denom()
	z.a.Mul(&x.a, &y.a)
	z.b.Mul(xb, yb)
	return z.norm()
}

// Quo sets z to the quotient x/y and returns z.
// It panics with ErrDivisionByZero if y == 0.
func (z *Rat) Quo(x, y *Rat) *Rat {
	// (a/b) / (c/d) == (a*d)/(b*c)
	var ad, bc Int
	ad.Mul(&x.a, y.denom())
	bc.Mul(x.denom(), &y.a)
	z.a.Set(&ad)
	z.b.Set(&bc)
	return z.norm()
}

// Inc sets z to x+1 and returns z.
func (z *Rat) Inc(x *Rat) *Rat {
	b := x.denom()
	z.a.Add(&x.a, b)
	if &z.b != b {
		z.b.Set(b)
	}
	return z.norm()
}

// Dec sets z to x-1 and returns z.
func (z *Rat) Dec(x *Rat) *Rat {
	b := x.denom()
	z.a.Sub(&x.a, b)
	if &z.b != b {
		z.b.Set(b)
	}
	return z.norm()
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Rat) Cmp(y *Rat) int {
	// a/b cmp c/d == a*d cmp b*c since both denominators are positive
	var ad, bc Int
	ad.Mul(&x.a, y.denom())
	bc.Mul(x.denom(), &y.a)
	return ad.Cmp(&bc)
}

// SetFloat64 sets z to exactly f and returns z.
// It panics with ErrRange if f is NaN or an infinity.
func (z *Rat) SetFloat64(f float64) *Rat {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(ErrRange{"bignum: Rat from non-finite float64"})
	}
	neg := math.Signbit(f)

	// f == m * 2**e with 1/2 <= m < 1; peel off the mantissa bits by
	// doubling, at most mantDig of them.
	m, e := math.Frexp(math.Abs(f))
	z.a.SetInt64(0)
	for i := 0; i < mantDig && m != 0; i++ {
		m *= 2
		bit := int64(m)
		m -= float64(bit)
		z.a.Lsh(&z.a, 1)
		if bit != 0 {
			z.a.Inc(&z.a)
		}
		e--
	}
	z.b.SetInt64(1)
	if e > 0 {
		z.a.Lsh(&z.a, uint(e))
	} else if e < 0 {
		z.b.Lsh(&z.b, uint(-e))
	}
	z.a.neg = neg && len(z.a.abs) > 0
	return z.norm()
}

// Float64 returns the nearest float64 value for x, rounding halfway
// cases to even. Values too large for a float64 yield an infinity;
// values too small yield (signed) zero.
func (x *Rat) Float64() float64 {
	n := nat(nil).set(x.a.abs)
	if len(n) == 0 {
		return 0
	}
	d := nat(nil).set(x.denom().abs)

	// Scale so that x == +/- n/d * 2**exp with 1/4 < n/d < 1.
	exp := n.bitLen() - d.bitLen() + 1
	if exp >= 0 {
		d = d.shl(d, uint(exp))
	} else {
		n = n.shl(n, uint(-exp))
	}
	if nat(nil).shl(n, 1).cmp(d) < 0 {
		n = n.shl(n, 1)
		exp--
	}
	// now 1/2 <= n/d < 1

	// Mantissa width: full precision for normalized results, fewer
	// bits in the subnormal range.
	mbits := mantDig
	if exp < minExp {
		mbits -= minExp - exp
		if mbits < 0 {
			mbits = 0
		}
	}

	// Integer mantissa, rounded to nearest with ties to even.
	n = n.shl(n, uint(mbits))
	exp -= mbits
	q := roundNat(n, d)

	// q < 2**(mantDig+1) <= 2**(2*_W): assemble the float from the
	// high and low words of the mantissa.
	var hi, lo Word
	if len(q) > 0 {
		lo = q[0]
	}
	if len(q) > 1 {
		hi = q[1]
	}
	f := math.Ldexp(math.Ldexp(float64(hi), _W)+float64(lo), exp)
	if x.a.neg {
		f = -f
	}
	return f
}

// roundNat returns n/d rounded to the nearest integer with ties to
// even.
func roundNat(n, d nat) nat {
	q, r := nat(nil).div(nat(nil), n, d)
	r = r.shl(r, 1)
	switch r.cmp(d) {
	case 1:
		q = q.add(q, natOne)
	case 0:
		if len(q) > 0 && q[0]&1 != 0 {
			q = q.add(q, natOne)
		}
	}
	return q
}

// Round sets z to x rounded to digits decimal places, rounding
// halfway cases to even (banker's rounding), and returns z.
// digits must not be negative.
func (z *Rat) Round(x *Rat, digits int) *Rat {
	if digits < 0 {
		panic(ErrRange{"bignum: negative digit count"})
	}
	p := nat(nil).expWW(10, uint(digits))
	n := nat(nil).mul(x.a.abs, p)
	q := roundNat(n, x.denom().abs)
	neg := x.a.neg
	z.a.abs = z.a.abs.set(q)
	z.a.neg = len(z.a.abs) > 0 && neg
	z.b.abs = z.b.abs.set(p)
	z.b.neg = false
	return z.norm()
}
