// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package logic

import "github.com/go-air/predicatesat/z"

// The gates below each assert exactly one clause per row of the gate's
// truth table: a clause is violated only when every one of its literals
// is false, so giving one clause per forbidden row rules out exactly the
// assignments that do not match the gate's semantics, and nothing else.

// and1 asserts r == a && b.
func (s *Session) and1(a, b, r z.Lit) {
	s.assert(a, b, r.Not())
	s.assert(a, b.Not(), r.Not())
	s.assert(a.Not(), b, r.Not())
	s.assert(a.Not(), b.Not(), r)
}

// or1 asserts r == a || b.
func (s *Session) or1(a, b, r z.Lit) {
	s.assert(a.Not(), b.Not(), r)
	s.assert(a.Not(), b, r)
	s.assert(a, b.Not(), r)
	s.assert(a, b, r.Not())
}

// lessThan1 asserts r == (a < b), i.e. r == !a && b.
func (s *Session) lessThan1(a, b, r z.Lit) {
	s.assert(a, b, r.Not())
	s.assert(a, b.Not(), r)
	s.assert(a.Not(), b, r.Not())
	s.assert(a.Not(), b.Not(), r.Not())
}

// equals1 asserts r == (a == b).
func (s *Session) equals1(a, b, r z.Lit) {
	s.assert(a, b, r)
	s.assert(a, b.Not(), r.Not())
	s.assert(a.Not(), b, r.Not())
	s.assert(a.Not(), b.Not(), r)
}

// mux1 asserts r == (cond ? a : b).
func (s *Session) mux1(a, b, cond, r z.Lit) {
	s.assert(cond.Not(), a.Not(), r)
	s.assert(cond.Not(), a, r.Not())
	s.assert(cond, b.Not(), r)
	s.assert(cond, b, r.Not())
}

// maj3 asserts carryOut == majority(a, b, carryIn): true when at least
// two of the three inputs are true. This is the carry-generation half of
// a full adder.
func (s *Session) maj3(a, b, carryIn, carryOut z.Lit) {
	s.assert(a.Not(), b.Not(), carryIn.Not(), carryOut)
	s.assert(a.Not(), b.Not(), carryIn, carryOut)
	s.assert(a.Not(), b, carryIn.Not(), carryOut)
	s.assert(a.Not(), b, carryIn, carryOut.Not())
	s.assert(a, b.Not(), carryIn.Not(), carryOut)
	s.assert(a, b.Not(), carryIn, carryOut.Not())
	s.assert(a, b, carryIn.Not(), carryOut.Not())
	s.assert(a, b, carryIn, carryOut.Not())
}

// xor3 asserts result == a ^ b ^ carryIn: the sum-generation half of a
// full adder.
func (s *Session) xor3(a, b, carryIn, result z.Lit) {
	s.assert(a.Not(), b.Not(), carryIn.Not(), result)
	s.assert(a.Not(), b.Not(), carryIn, result.Not())
	s.assert(a.Not(), b, carryIn.Not(), result.Not())
	s.assert(a.Not(), b, carryIn, result)
	s.assert(a, b.Not(), carryIn.Not(), result.Not())
	s.assert(a, b.Not(), carryIn, result)
	s.assert(a, b, carryIn.Not(), result)
	s.assert(a, b, carryIn, result.Not())
}

// add1 asserts a full adder: a + b + carryIn == (result, carryOut).
func (s *Session) add1(a, b, carryIn, result, carryOut z.Lit) {
	s.maj3(a, b, carryIn, carryOut)
	s.xor3(a, b, carryIn, result)
}

// assertEquals asserts that literal a and literal b take the same value,
// the two-clause pattern used everywhere a single internal wire is tied
// to a caller-visible name (e.g. an overflow flag to its carry chain's
// top bit).
func (s *Session) assertEquals(a, b z.Lit) {
	s.assert(a.Not(), b)
	s.assert(a, b.Not())
}
