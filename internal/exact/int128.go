// seehuhn.de/go/tessellate - exact polygon tessellation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package exact implements the widening integer arithmetic used by the
// tessellator.  Every operation either widens its result or is exact;
// nothing is silently truncated.
package exact

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Int128 is a signed 128-bit integer in two's complement representation.
// The zero value is 0.
type Int128 struct {
	hi int64
	lo uint64
}

// FromInt64 sign-extends v to 128 bits.
func FromInt64(v int64) Int128 {
	return Int128{hi: v >> 63, lo: uint64(v)}
}

// Mul32 returns the exact 64-bit product of a and b.
func Mul32(a, b int32) int64 {
	return int64(a) * int64(b)
}

// Mul64 returns the exact 128-bit product of a and b.
func Mul64(a, b int64) Int128 {
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = -ua
	}
	if b < 0 {
		ub = -ub
	}
	hi, lo := bits.Mul64(ua, ub)
	r := Int128{hi: int64(hi), lo: lo}
	if (a < 0) != (b < 0) {
		r = r.Neg()
	}
	return r
}

// Add returns x+y.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	return Int128{hi: x.hi + y.hi + int64(carry), lo: lo}
}

// Sub returns x-y.
func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	return Int128{hi: x.hi - y.hi - int64(borrow), lo: lo}
}

// Neg returns -x.
func (x Int128) Neg() Int128 {
	return Int128{}.Sub(x)
}

// not returns the bitwise complement of x, which equals -x-1.
func (x Int128) not() Int128 {
	return Int128{hi: ^x.hi, lo: ^x.lo}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int128) Cmp(y Int128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int128) Sign() int {
	switch {
	case x.hi < 0:
		return -1
	case x.hi == 0 && x.lo == 0:
		return 0
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Int128) IsZero() bool {
	return x.hi == 0 && x.lo == 0
}

// Int64 returns x as an int64.  The second return value is false if x
// does not fit into 64 bits.
func (x Int128) Int64() (int64, bool) {
	v := int64(x.lo)
	return v, x.hi == v>>63
}

// DivRem divides n by d, rounding the quotient towards negative infinity
// for d > 0.  A negative divisor is handled by negating both operands, so
// that the remainder always satisfies 0 <= rem < |d| and
//
//	n/d = quo + rem/|d|.
//
// DivRem panics if d is zero.
func DivRem(n Int128, d int64) (quo Int128, rem int64) {
	if d == 0 {
		panic("exact: division by zero")
	}
	ud := uint64(d)
	if d < 0 {
		n = n.Neg()
		ud = -ud
	}

	if n.hi >= 0 {
		q, r := divRemUnsigned(uint64(n.hi), n.lo, ud)
		return q, int64(r)
	}

	// n = -m-1 with m >= 0 gives floor(n/d) = -floor(m/d)-1 and
	// remainder d-1-(m mod d).
	m := n.not()
	q, r := divRemUnsigned(uint64(m.hi), m.lo, ud)
	return q.not(), int64(ud - 1 - r)
}

// divRemUnsigned divides the unsigned 128-bit value hi:lo by d.
func divRemUnsigned(hi, lo, d uint64) (Int128, uint64) {
	qHi, r := hi/d, hi%d
	qLo, r := bits.Div64(r, lo, d)
	return Int128{hi: int64(qHi), lo: qLo}, r
}

// Big returns x as a big.Int.
func (x Int128) Big() *big.Int {
	b := new(big.Int).SetInt64(x.hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(x.lo))
}

func (x Int128) String() string {
	if v, ok := x.Int64(); ok {
		return fmt.Sprint(v)
	}
	return x.Big().String()
}
