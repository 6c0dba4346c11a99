// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"reflect"
	"testing"
)

// checkPanics runs f and reports an error unless it panics with a
// value of the same type as want.
func checkPanics(t *testing.T, want interface{}, f func()) {
	t.Helper()
	defer func() {
		got := recover()
		if got == nil {
			t.Errorf("expected panic with %T", want)
			return
		}
		if reflect.TypeOf(got) != reflect.TypeOf(want) {
			t.Errorf("panicked with %T (%v); want %T", got, got, want)
		}
	}()
	f()
}

func natural(s string) *Natural {
	x, ok := new(Natural).SetString(s)
	if !ok {
		panic("bad Natural test value " + s)
	}
	return x
}

func TestNaturalBasics(t *testing.T) {
	x := NewNatural(0)
	if x.String() != "0" || x.BitLen() != 0 || x.LowWord() != 0 || x.Uint64() != 0 {
		t.Errorf("zero misbehaves: %v %v %v %v", x.String(), x.BitLen(), x.LowWord(), x.Uint64())
	}

	x = NewNatural(0x123456789abcdef0)
	if x.Uint64() != 0x123456789abcdef0 {
		t.Errorf("got %#x; want 0x123456789abcdef0", x.Uint64())
	}
	if x.LowWord() != 0x9abcdef0 {
		t.Errorf("got low word %#x; want 0x9abcdef0", x.LowWord())
	}
	if x.BitLen() != 61 {
		t.Errorf("got bit length %d; want 61", x.BitLen())
	}
}

func TestNaturalBigProduct(t *testing.T) {
	a := natural("1000000000000000000000")
	z := new(Natural).Mul(a, a)
	if got, want := z.String(), "1000000000000000000000000000000000000000000"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestNaturalDivModIdentity(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := &Natural{abs: rndNat(12)}
		y := &Natural{abs: rndNat(6)}
		if len(y.abs) == 0 {
			continue
		}
		q, r := new(Natural).DivMod(x, y, new(Natural))
		if r.Cmp(y) >= 0 {
			t.Fatalf("#%d remainder %v not below divisor %v", i, r, y)
		}
		w := new(Natural).Mul(q, y)
		w.Add(w, r)
		if w.Cmp(x) != 0 {
			t.Fatalf("#%d q*y + r = %v; want %v", i, w, x)
		}
	}
}

func TestNaturalShiftMulEquivalence(t *testing.T) {
	two := NewNatural(2)
	for i := 0; i < 100; i++ {
		x := &Natural{abs: rndNat(8)}
		k := uint(rnd.Intn(200))

		p := new(Natural).SetUint64(1)
		for j := uint(0); j < k; j++ {
			p.Mul(p, two)
		}
		want := new(Natural).Mul(x, p)
		if got := new(Natural).Lsh(x, k); got.Cmp(want) != 0 {
			t.Fatalf("#%d x<<%d = %v; want %v", i, k, got, want)
		}

		want.Div(x, p)
		if got := new(Natural).Rsh(x, k); got.Cmp(want) != 0 {
			t.Fatalf("#%d x>>%d = %v; want %v", i, k, got, want)
		}
	}
}

func TestNaturalUnderflow(t *testing.T) {
	checkPanics(t, ErrUnderflow{}, func() {
		new(Natural).Sub(NewNatural(1), NewNatural(2))
	})
	checkPanics(t, ErrUnderflow{}, func() {
		new(Natural).Dec(new(Natural))
	})
}

func TestNaturalDivByZero(t *testing.T) {
	checkPanics(t, ErrDivisionByZero{}, func() {
		new(Natural).Div(NewNatural(1), new(Natural))
	})
	checkPanics(t, ErrDivisionByZero{}, func() {
		new(Natural).Mod(NewNatural(1), new(Natural))
	})
}

func TestNaturalIncDec(t *testing.T) {
	x := natural("4294967295")
	x.Inc(x)
	if got := x.String(); got != "4294967296" {
		t.Errorf("got %s; want 4294967296", got)
	}
	x.Dec(x)
	if got := x.String(); got != "4294967295" {
		t.Errorf("got %s; want 4294967295", got)
	}
}

func TestNaturalSetString(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"0", true},
		{"   123", true},
		{"123", true},
		{"", false},
		{" ", false},
		{"-1", false},
		{"+1", false},
		{"12a", false},
		{"12 ", false},
	}
	for i, test := range tests {
		x, ok := new(Natural).SetString(test.in)
		if ok != test.ok {
			t.Errorf("#%d SetString(%q) ok = %v; want %v", i, test.in, ok, test.ok)
			continue
		}
		if ok && (x == nil) {
			t.Errorf("#%d SetString(%q) returned nil on success", i, test.in)
		}
	}
}

func TestNaturalScan(t *testing.T) {
	var x, y Natural
	n, err := fmt.Sscan("  12345 67890", &x, &y)
	if err != nil || n != 2 {
		t.Fatalf("Sscan: n = %d, err = %v", n, err)
	}
	if x.String() != "12345" || y.String() != "67890" {
		t.Errorf("got %v, %v; want 12345, 67890", &x, &y)
	}
}

func TestNaturalAliasing(t *testing.T) {
	x := natural("123456789123456789")
	want := new(Natural).Mul(x, x)
	x.Mul(x, x)
	if x.Cmp(want) != 0 {
		t.Errorf("x.Mul(x, x): got %v; want %v", x, want)
	}

	y := natural("5")
	y.Add(y, y)
	if y.String() != "10" {
		t.Errorf("y.Add(y, y): got %v; want 10", y)
	}
}
