// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements unsigned multi-precision integers as word
// slices, the engine underneath Natural, Int and Rat.

package bignum

import "math/bits"

// An unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type nat []Word

var natOne = nat{1}

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	z = z.make(2)
	z[0] = Word(x)
	z[1] = Word(x >> _W)
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (x nat) cmp(y nat) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub requires x >= y; it panics with ErrUnderflow otherwise.
func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panicUnderflow()
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panicUnderflow()
	}

	return z.norm()
}

func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r) // result is r
	}
	// m > 0

	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)

	return z.norm()
}

// basicMul multiplies x and y and leaves the result in z.
// The (non-normalized) result is placed in z[0 : len(x) + len(y)].
func basicMul(z, x, y nat) {
	z[0 : len(x)+len(y)].clear() // initialize z
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

func (z nat) mul(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	// m >= n > 1

	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}
	z = z.make(m + n)
	basicMul(z, x, y)

	return z.norm()
}

// divW returns q = x/y and r = x%y for y > 0.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panicDivisionByZero()
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// div returns q = u/v and r = u%v with the remainder stored in z2.
// It panics with ErrDivisionByZero for v == 0.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panicDivisionByZero()
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}

	q, r = z.divLarge(z2, u, v)
	return
}

// greaterVV reports whether x > y for word slices of equal length,
// comparing from the most significant word down. Unlike cmp it
// tolerates leading zero words.
func greaterVV(x, y []Word) bool {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			return x[i] > y[i]
		}
	}
	return false
}

// divLarge implements Knuth's Algorithm D for len(v) >= 2 and
// u >= v. The quotient is written to z, the remainder to z2.
//
// The divisor is first shifted left until its top word has the high
// bit set, which bounds the quotient-digit estimate error to 2. The
// shifted dividend gets one extra top word so the first estimate is
// always a proper single digit. For each quotient position the
// estimate qhat is corrected by comparing the full partial product
// qhat*v against the current remainder window.
func (z nat) divLarge(z2, u, v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	if alias(z, u) || alias(z, v) {
		z = nil
	}
	if alias(z2, u) || alias(z2, v) {
		z2 = nil
	}

	// D1: normalize so that the high bit of v[n-1] is set.
	d := nlz(v[n-1])
	vn := make(nat, n)
	shlVU(vn, v, d)
	r = z2.make(len(u) + 1)
	r[len(u)] = shlVU(r[:len(u)], u, d)

	q = z.make(m + 1)
	qhatv := make(nat, n+1)
	vn1 := vn[n-1]
	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit.
		qhat := Word(_M)
		if r[j+n] < vn1 {
			qhat, _ = divWW(r[j+n], r[j+n-1], vn1)
		}

		// partial product qhat*v, n+1 words
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)

		// D3 correction: runs at most twice by the normalization guarantee.
		for greaterVV(qhatv, r[j:j+n+1]) {
			qhat--
			b := subVV(qhatv[:n], qhatv[:n], vn)
			qhatv[n] -= b
		}

		// D4: subtract the partial product from the remainder window.
		subVV(r[j:j+n+1], r[j:j+n+1], qhatv)
		q[j] = qhat
	}
	q = q.norm()

	// D8: denormalize the remainder.
	r = r[:n]
	shrVU(r, r, d)
	r = r.norm()
	return
}

// shl sets z to x << s.
func (z nat) shl(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0

	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	z[0 : n-m].clear()

	return z.norm()
}

// shr sets z to x >> s.
func (z nat) shr(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0

	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)

	return z.norm()
}

func (z nat) and(x, y nat) nat {
	m := len(x)
	n := len(y)
	if m > n {
		m = n
	}
	// m <= n

	z = z.make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}

	return z.norm()
}

// andNot computes x &^ y. Words of y beyond len(x) cannot contribute;
// words of x beyond len(y) pass through unchanged (the complement of
// the missing y words is all ones).
func (z nat) andNot(x, y nat) nat {
	m := len(x)
	n := len(y)
	if n > m {
		n = m
	}
	// n <= m

	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])

	return z.norm()
}

func (z nat) or(x, y nat) nat {
	m := len(x)
	n := len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n

	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])

	return z.norm()
}

func (z nat) xor(x, y nat) nat {
	m := len(x)
	n := len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n

	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])

	return z.norm()
}

func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len32(uint32(x[i]))
	}
	return 0
}

// gcd sets z to the greatest common divisor of a and b by Euclidean
// iteration and returns z. gcd(a, 0) = a and gcd(0, 0) = 0.
func (z nat) gcd(a, b nat) nat {
	a = nat(nil).set(a)
	b = nat(nil).set(b)
	for len(b) != 0 {
		var r nat
		_, r = nat(nil).div(nil, a, b)
		a, b = b, r
	}
	return z.set(a)
}

// expWW sets z to x**n by binary exponentiation and returns z.
func (z nat) expWW(x Word, n uint) nat {
	z = z.setWord(1)
	p := nat(nil).setWord(x)
	for ; n > 0; n >>= 1 {
		if n&1 != 0 {
			z = z.mul(z, p)
		}
		p = p.mul(p, p)
	}
	return z
}

// bytes writes the big-endian byte representation of x into the
// high end of buf and returns the index of the first used byte.
func (x nat) bytes(buf []byte) (i int) {
	i = len(buf)
	for _, d := range x {
		for j := 0; j < _S; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}

	for i < len(buf) && buf[i] == 0 {
		i++
	}

	return
}

// setBytes interprets buf as big-endian bytes and sets z to that value.
func (z nat) setBytes(buf []byte) nat {
	z = z.make((len(buf) + _S - 1) / _S)

	k := 0
	s := uint(0)
	var d Word
	for i := len(buf); i > 0; i-- {
		d |= Word(buf[i-1]) << s
		if s += 8; s == _W {
			z[k] = d
			k++
			s = 0
			d = 0
		}
	}
	if k < len(z) {
		z[k] = d
	}

	return z.norm()
}
