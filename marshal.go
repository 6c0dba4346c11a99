// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Naturals, Ints and Rats.

package bignum

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Gob codec versions. Permit backward-compatible changes to the encoding.
const (
	naturalGobVersion byte = 1
	intGobVersion     byte = 1
	ratGobVersion     byte = 1
)

// GobEncode implements the gob.GobEncoder interface.
func (x *Natural) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	buf := make([]byte, 1+len(x.abs)*_S)
	i := x.abs.bytes(buf) - 1
	buf[i] = naturalGobVersion
	return buf[i:], nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Natural) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Natural{}
		return nil
	}
	if buf[0] != naturalGobVersion {
		return errors.Errorf("Natural.GobDecode: encoding version %d not supported", buf[0])
	}
	z.abs = z.abs.setBytes(buf[1:])
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Natural) MarshalText() (text []byte, err error) {
	return x.abs.utoa(), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Natural) UnmarshalText(text []byte) error {
	if _, ok := z.SetString(string(text)); !ok {
		return errors.Errorf("bignum: cannot unmarshal %q into a *bignum.Natural", text)
	}
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	buf := make([]byte, 1+len(x.abs)*_S)
	i := x.abs.bytes(buf) - 1
	b := intGobVersion << 1 // make space for the sign bit
	if x.neg {
		b |= 1
	}
	buf[i] = b
	return buf[i:], nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	b := buf[0]
	if b>>1 != intGobVersion {
		return errors.Errorf("Int.GobDecode: encoding version %d not supported", b>>1)
	}
	z.abs = z.abs.setBytes(buf[1:])
	z.neg = len(z.abs) > 0 && b&1 != 0
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	return x.abs.itoa(x.neg), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	if _, ok := z.SetString(string(text)); !ok {
		return errors.Errorf("bignum: cannot unmarshal %q into a *bignum.Int", text)
	}
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x *Rat) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	buf := make([]byte, 1+4+(len(x.a.abs)+len(x.denom().abs))*_S) // extra bytes for version and numerator length
	i := x.denom().abs.bytes(buf)
	j := x.a.abs.bytes(buf[:i])
	n := i - j
	if int(uint32(n)) != n {
		// this should never happen
		return nil, errors.New("Rat.GobEncode: numerator too large")
	}
	binary.BigEndian.PutUint32(buf[j-4:j], uint32(n))
	j -= 1 + 4
	b := ratGobVersion << 1 // make space for the sign bit
	if x.a.neg {
		b |= 1
	}
	buf[j] = b
	return buf[j:], nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Rat) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Rat{}
		return nil
	}
	if len(buf) < 5 {
		return errors.New("Rat.GobDecode: buffer too small")
	}
	b := buf[0]
	if b>>1 != ratGobVersion {
		return errors.Errorf("Rat.GobDecode: encoding version %d not supported", b>>1)
	}
	const j = 1 + 4
	ln := binary.BigEndian.Uint32(buf[j-4 : j])
	if uint64(ln) > uint64(len(buf)-j) {
		return errors.New("Rat.GobDecode: invalid length")
	}
	i := j + int(ln)
	z.a.abs = z.a.abs.setBytes(buf[j:i])
	z.a.neg = len(z.a.abs) > 0 && b&1 != 0
	z.b.abs = z.b.abs.setBytes(buf[i:])
	z.b.neg = false
	if len(z.b.abs) == 0 {
		return errors.New("Rat.GobDecode: zero denominator")
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Rat) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Rat) UnmarshalText(text []byte) error {
	if _, ok := z.SetString(string(text)); !ok {
		return errors.Errorf("bignum: cannot unmarshal %q into a *bignum.Rat", text)
	}
	return nil
}
