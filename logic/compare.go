// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package logic

import "github.com/go-air/predicatesat/z"

// EqualsNBit asserts a == b over n bits: two clauses per bit, no
// intermediate wire needed.
func (s *Session) EqualsNBit(a, b z.Name, n int) {
	checkWidth(n)
	for i := 0; i < n; i++ {
		s.assertEquals(bit(a, i), bit(b, i))
	}
}

// LessThanNBit asserts a < b over n bits, treating both as ordinary
// unsigned numbers with bit 0 the least significant.
//
// It is built the way a ripple-compare naturally reads from the most
// significant bit down: per bit i it derives eq_i = (a_i == b_i) and
// lt_i = (a_i < b_i), accumulates eqAccum_i = AND of eq_j for all j >= i
// (eqAccum_n is vacuously true), and calls bit i "decisive" when
// everything more significant than it is equal and it itself is
// less-than. a < b iff some bit is decisive — a single n-literal clause
// over the decisive flags. This is the same suffix-chain construction the
// predicate compiler this package's semantics were bit-blasted from uses,
// chosen over a plain MSB-first imperative loop because it bit-blasts
// directly with no branching: every bit position contributes one AND gate
// and one decisive flag regardless of the other bits' values.
func (s *Session) LessThanNBit(a, b z.Name, n int) {
	checkWidth(n)
	id := s.next("LessThanNBit")
	eq := func(i int) z.Lit { return z.Pos(wire("LessThanNBit", id, "eq_"+idx(i))) }
	lt := func(i int) z.Lit { return z.Pos(wire("LessThanNBit", id, "lt_"+idx(i))) }
	eqAccum := func(i int) z.Lit { return z.Pos(wire("LessThanNBit", id, "eq_accum_"+idx(i))) }
	decisive := func(i int) z.Lit { return z.Pos(wire("LessThanNBit", id, "decisive_"+idx(i))) }

	for i := 0; i < n; i++ {
		s.equals1(bit(a, i), bit(b, i), eq(i))
	}
	for i := 0; i < n; i++ {
		s.lessThan1(bit(a, i), bit(b, i), lt(i))
	}
	s.assert(eqAccum(n))
	for i := 0; i < n; i++ {
		s.and1(eqAccum(i+1), eq(i), eqAccum(i))
	}
	for i := 0; i < n; i++ {
		s.and1(eqAccum(i+1), lt(i), decisive(i))
	}
	c := make(z.Clause, n)
	for i := 0; i < n; i++ {
		c[i] = decisive(i)
	}
	s.assertClause(c)
}
