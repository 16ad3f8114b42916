// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package logic

import (
	"fmt"

	"github.com/go-air/predicatesat/z"
)

// AddNBit asserts result == a + b over n bits, with overflow set to the
// final carry. It chains n 1-bit full adders (ripple-carry addition),
// threading the carry-out of each stage into the carry-in of the next.
func (s *Session) AddNBit(a, b, result, overflow z.Name, n int) {
	checkWidth(n)
	id := s.next("AddNBit")
	carry := func(i int) z.Lit { return z.Pos(wire("AddNBit", id, "carry_out_"+idx(i))) }

	s.assert(carry(0).Not())
	for i := 0; i < n; i++ {
		s.add1(bit(a, i), bit(b, i), carry(i), bit(result, i), carry(i+1))
	}
	s.assertEquals(z.Pos(overflow), carry(n))
}

// idx zero-pads i the way bit and wire names are zero-padded, for use in
// role strings built up piecemeal (carry_out_<i>).
func idx(i int) string {
	return fmt.Sprintf("%010d", i)
}

// mulShift asserts result == (a * b) << shift over 2n bits, where b is a
// single bit: the partial-product building block of shift-and-add
// multiplication.
func (s *Session) mulShift(a z.Name, b z.Lit, result z.Name, shift, n int) {
	for i := 0; i < shift; i++ {
		s.assert(bit(result, i).Not())
	}
	for i := 0; i < n; i++ {
		s.and1(bit(a, i), b, bit(result, i+shift))
	}
	for i := shift + n; i < n*2; i++ {
		s.assert(bit(result, i).Not())
	}
}

// MulNBit asserts result == a * b over n bits, with overflow set whenever
// the true product needs more than n bits. It builds n partial products
// (shift-and-add) into a 2n-bit accumulator and reports overflow if any
// of the accumulator's high n bits end up set.
func (s *Session) MulNBit(a, b, result, overflow z.Name, n int) {
	checkWidth(n)
	id := s.next("MulNBit")

	for i := 0; i < n; i++ {
		partial := wire("MulNBit", id, "partial_"+idx(i))
		s.mulShift(a, bit(b, i), partial, i, n)
	}

	accum := func(stage, i int) z.Lit {
		return z.Pos(wire("MulNBit", id, "accum_"+idx(stage)+"_"+idx(i)))
	}
	for i := 0; i < n*2; i++ {
		s.assert(accum(0, i).Not())
	}
	for i := 0; i < n; i++ {
		partial := wire("MulNBit", id, "partial_"+idx(i))
		stageOut := wire("MulNBit", id, "accum_"+idx(i+1))
		stageOverflow := wire("MulNBit", id, "stage_overflow_"+idx(i))
		s.AddNBit(partial, accumName(id, i), stageOut, stageOverflow, n*2)
	}

	for i := 0; i < n; i++ {
		s.assertEquals(bit(result, i), accum(n, i))
	}
	hi := make([]z.Lit, n)
	for i := 0; i < n; i++ {
		hi[i] = accum(n, i+n)
	}
	s.orManyTo1(hi, z.Pos(overflow))
}

// accumName returns the bus name of the n-stage multiplication
// accumulator used inside MulNBit, shared between the AddNBit-based loop
// and the accum() literal accessor above: both must agree on the name of
// stage i's accumulator bus.
func accumName(id, stage int) z.Name {
	return wire("MulNBit", id, "accum_"+idx(stage))
}

// DoubleSizeAssign asserts that the 2n-bit bus result zero-extends the
// n-bit bus a: result's low n bits equal a, its high n bits are 0.
func (s *Session) DoubleSizeAssign(a, result z.Name, n int) {
	checkWidth(n)
	for i := 0; i < n; i++ {
		s.assertEquals(bit(a, i), bit(result, i))
	}
	for i := n; i < n*2; i++ {
		s.assert(bit(result, i).Not())
	}
}

// DivModNBit asserts a == b*div + mod and mod < b over n bits, with the
// multiplication and addition both forced not to overflow. This is
// division expressed as the inverse of multiply-and-add rather than as
// its own bit-serial algorithm.
func (s *Session) DivModNBit(a, b, div, mod z.Name, n int) {
	checkWidth(n)
	id := s.next("DivModNBit")
	product := wire("DivModNBit", id, "product")
	mulOverflow := wire("DivModNBit", id, "mul_overflow")
	addOverflow := wire("DivModNBit", id, "add_overflow")

	s.MulNBit(b, div, product, mulOverflow, n)
	s.AddNBit(product, mod, a, addOverflow, n)
	s.assert(z.Pos(mulOverflow).Not())
	s.assert(z.Pos(addOverflow).Not())
	s.LessThanNBit(mod, b, n)
}
