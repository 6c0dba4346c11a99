// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intVal(s string) *Int {
	x, ok := new(Int).SetString(s)
	if !ok {
		panic("bad Int test value " + s)
	}
	return x
}

func TestIntSign(t *testing.T) {
	assert.Equal(t, 0, new(Int).Sign())
	assert.Equal(t, 1, NewInt(5).Sign())
	assert.Equal(t, -1, NewInt(-5).Sign())
	assert.Equal(t, 0, intVal("-0").Sign()) // "-0" normalizes to 0
}

func TestIntSetInt64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1<<62 + 1, -(1 << 62), -9223372036854775808, 9223372036854775807} {
		assert.Equal(t, v, NewInt(v).Int64(), "value %d", v)
	}
}

var quoRemTests = []struct {
	x, y, q, r string
}{
	{"0", "1", "0", "0"},
	{"0", "-1", "0", "0"},
	{"8", "3", "2", "2"},
	{"8", "-3", "-2", "2"},
	{"-8", "3", "-2", "-2"},
	{"-8", "-3", "2", "-2"},
	{"1", "2", "0", "1"},
	{"-1", "2", "0", "-1"},
	{"-7", "3", "-2", "-1"},
	{"7", "-3", "-2", "1"},
	{"-7", "-3", "2", "-1"},
	{"41", "79", "0", "41"},
	{"96886988036118388865", "4294967296", "22558259786", "576430209"},
}

func TestIntQuoRem(t *testing.T) {
	for _, test := range quoRemTests {
		x, y := intVal(test.x), intVal(test.y)
		q, r := new(Int).QuoRem(x, y, new(Int))
		assert.Equal(t, test.q, q.String(), "%s quo %s", test.x, test.y)
		assert.Equal(t, test.r, r.String(), "%s rem %s", test.x, test.y)

		// Quo and Rem must agree with QuoRem
		assert.Equal(t, test.q, new(Int).Quo(x, y).String())
		assert.Equal(t, test.r, new(Int).Rem(x, y).String())

		// x == q*y + r
		w := new(Int).Mul(q, y)
		w.Add(w, r)
		assert.Zero(t, w.Cmp(x), "q*y + r != x for %s / %s", test.x, test.y)
	}
}

func TestIntDivByZero(t *testing.T) {
	checkPanics(t, ErrDivisionByZero{}, func() {
		new(Int).Quo(NewInt(1), new(Int))
	})
	checkPanics(t, ErrDivisionByZero{}, func() {
		new(Int).Rem(NewInt(1), new(Int))
	})
}

func TestIntAddSubOracle(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rnd.Int63n(1<<40) - 1<<39
		y := rnd.Int63n(1<<40) - 1<<39
		assert.Equal(t, x+y, new(Int).Add(NewInt(x), NewInt(y)).Int64())
		assert.Equal(t, x-y, new(Int).Sub(NewInt(x), NewInt(y)).Int64())
		assert.Equal(t, x*0, new(Int).Mul(NewInt(x), new(Int)).Int64())
		if y != 0 {
			assert.Equal(t, x/y, new(Int).Quo(NewInt(x), NewInt(y)).Int64())
			assert.Equal(t, x%y, new(Int).Rem(NewInt(x), NewInt(y)).Int64())
		}
	}
}

func TestIntMulSigns(t *testing.T) {
	assert.Equal(t, "-12", new(Int).Mul(NewInt(-3), NewInt(4)).String())
	assert.Equal(t, "12", new(Int).Mul(NewInt(-3), NewInt(-4)).String())
	assert.Equal(t, 0, new(Int).Mul(NewInt(-3), NewInt(0)).Sign())
}

var bitwiseTests = []struct {
	x, y                     int64
	and, or, xor, andNot     int64
}{
	{0, 0, 0, 0, 0, 0},
	{0, 1, 0, 1, 1, 0},
	{1, 0, 0, 1, 1, 1},
	{-1, 0, 0, -1, -1, -1},
	{-1, -1, -1, -1, 0, 0},
	{7, 3, 3, 7, 4, 4},
	{-6, -10, -14, -2, 12, 8},
	{-6, 10, 10, -6, -16, -16},
	{6, -10, 6, -10, -16, 0},
	{0x1234567812345678, -0x765487654876, 0x1234002810101608, -0x200485410806, -0x1234202c95511e0e, 0x565002244070},
}

func TestIntBitwise(t *testing.T) {
	for _, test := range bitwiseTests {
		x, y := NewInt(test.x), NewInt(test.y)
		assert.Equal(t, test.and, new(Int).And(x, y).Int64(), "%d & %d", test.x, test.y)
		assert.Equal(t, test.or, new(Int).Or(x, y).Int64(), "%d | %d", test.x, test.y)
		assert.Equal(t, test.xor, new(Int).Xor(x, y).Int64(), "%d ^ %d", test.x, test.y)
		assert.Equal(t, test.andNot, new(Int).AndNot(x, y).Int64(), "%d &^ %d", test.x, test.y)
	}
}

func TestIntBitwiseOracle(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x := rnd.Int63n(1<<48) - 1<<47
		y := rnd.Int63n(1<<48) - 1<<47
		bx, by := NewInt(x), NewInt(y)
		assert.Equal(t, x&y, new(Int).And(bx, by).Int64(), "%d & %d", x, y)
		assert.Equal(t, x|y, new(Int).Or(bx, by).Int64(), "%d | %d", x, y)
		assert.Equal(t, x^y, new(Int).Xor(bx, by).Int64(), "%d ^ %d", x, y)
		assert.Equal(t, x&^y, new(Int).AndNot(bx, by).Int64(), "%d &^ %d", x, y)
		assert.Equal(t, ^x, new(Int).Not(bx).Int64(), "^%d", x)
	}
}

func TestIntBitwiseIdentities(t *testing.T) {
	// ^x == -(x+1); (x & y) | (x ^ y) == x | y; (x & y) + (x | y) == x + y
	for i := 0; i < 500; i++ {
		x := NewInt(rnd.Int63n(1<<50) - 1<<49)
		y := NewInt(rnd.Int63n(1<<50) - 1<<49)

		not := new(Int).Not(x)
		neg := new(Int).Inc(x)
		neg.Neg(neg)
		assert.Zero(t, not.Cmp(neg), "^x != -(x+1) for %v", x)

		and := new(Int).And(x, y)
		or := new(Int).Or(x, y)
		xor := new(Int).Xor(x, y)
		assert.Zero(t, new(Int).Or(and, xor).Cmp(or), "(x&y)|(x^y) != x|y for %v, %v", x, y)

		sum := new(Int).Add(and, or)
		want := new(Int).Add(x, y)
		assert.Zero(t, sum.Cmp(want), "(x&y)+(x|y) != x+y for %v, %v", x, y)
	}
}

func TestIntShifts(t *testing.T) {
	// shifts operate on the magnitude, the sign is kept
	assert.Equal(t, "-16", new(Int).Lsh(NewInt(-4), 2).String())
	assert.Equal(t, "-4", new(Int).Rsh(NewInt(-16), 2).String())
	// a right shift to zero magnitude clears the sign
	z := new(Int).Rsh(NewInt(-1), 1)
	assert.Equal(t, 0, z.Sign())
	assert.Equal(t, "0", z.String())
}

func TestIntIncDec(t *testing.T) {
	x := NewInt(-1)
	x.Inc(x)
	assert.Equal(t, 0, x.Sign())
	x.Inc(x)
	assert.Equal(t, "1", x.String())
	x.Dec(x)
	x.Dec(x)
	assert.Equal(t, "-1", x.String())
}

func TestIntCmp(t *testing.T) {
	vals := []string{"-340282366920938463463374607431768211456", "-2", "-1", "0", "1", "2", "18446744073709551616"}
	for i, a := range vals {
		for j, b := range vals {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, intVal(a).Cmp(intVal(b)), "cmp(%s, %s)", a, b)
		}
	}
}

func TestIntSetString(t *testing.T) {
	tests := []struct {
		in  string
		out string
		ok  bool
	}{
		{"0", "0", true},
		{"-0", "0", true},
		{"+5", "5", true},
		{"-5", "-5", true},
		{"  -12345678901234567890", "-12345678901234567890", true},
		{"", "", false},
		{"+", "", false},
		{"-", "", false},
		{"+-5", "", false},
		{"5x", "", false},
		{"- 5", "", false},
	}
	for _, test := range tests {
		x, ok := new(Int).SetString(test.in)
		require.Equal(t, test.ok, ok, "SetString(%q)", test.in)
		if ok {
			assert.Equal(t, test.out, x.String(), "SetString(%q)", test.in)
		}
	}
}

func TestIntStringRoundTrip(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := &Int{neg: rnd.Intn(2) == 0, abs: rndNat(8)}
		x.neg = x.neg && len(x.abs) > 0
		y, ok := new(Int).SetString(x.String())
		require.True(t, ok)
		assert.Zero(t, x.Cmp(y))
	}
}

func TestIntScan(t *testing.T) {
	var x, y Int
	n, err := fmt.Sscan(" -42 +17", &x, &y)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, "-42", x.String())
	assert.Equal(t, "17", y.String())
}

func TestIntAbsNeg(t *testing.T) {
	x := NewInt(-7)
	assert.Equal(t, "7", new(Int).Abs(x).String())
	assert.Equal(t, "7", new(Int).Neg(x).String())
	assert.Equal(t, "-7", new(Int).Neg(NewInt(7)).String())
	assert.Equal(t, 0, new(Int).Neg(new(Int)).Sign())
}

func TestIntNatural(t *testing.T) {
	n := natural("18446744073709551616")
	x := new(Int).SetNatural(n)
	assert.Equal(t, "18446744073709551616", x.String())
	x.Neg(x)
	m := new(Natural).SetInt(x)
	assert.Equal(t, "18446744073709551616", m.String())
}

func TestIntAliasing(t *testing.T) {
	x := NewInt(-12345)
	x.Mul(x, x)
	assert.Equal(t, "152399025", x.String())
	x.Add(x, x)
	assert.Equal(t, "304798050", x.String())
	x.Sub(x, x)
	assert.Equal(t, 0, x.Sign())
}
