// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package logic

import "github.com/go-air/predicatesat/z"

// MuxNBit asserts result == (cond ? a : b) over n bits, sharing the same
// single condition literal across every bit.
func (s *Session) MuxNBit(a, b z.Name, cond z.Lit, result z.Name, n int) {
	checkWidth(n)
	for i := 0; i < n; i++ {
		s.mux1(bit(a, i), bit(b, i), cond, bit(result, i))
	}
}

// orManyTo1 asserts result == OR of every literal in bits.
func (s *Session) orManyTo1(bits []z.Lit, result z.Lit) {
	c := make(z.Clause, 0, len(bits)+1)
	c = append(c, result.Not())
	c = append(c, bits...)
	s.assertClause(c)
	for _, b := range bits {
		s.assert(result, b.Not())
	}
}

// OrNBitTo1Bit asserts result == OR of the n bits of the bus a.
func (s *Session) OrNBitTo1Bit(a z.Name, result z.Name, n int) {
	checkWidth(n)
	bits := make([]z.Lit, n)
	for i := 0; i < n; i++ {
		bits[i] = bit(a, i)
	}
	s.orManyTo1(bits, z.Pos(result))
}

// OrCondition emits the disjunction of two independently-expanded
// sub-formulas: cond1 || cond2. It introduces one fresh selector variable
// s and rewrites every clause of cond1 to "s ∨ clause" and every clause
// of cond2 to "¬s ∨ clause" (plain Tseitin disjunction of pre-built CNF
// fragments). cond1 and cond2 are each built by the caller against a
// throwaway Session and passed in as formulas so that, as in the original
// Or_Condition/And_Condition combinators, the caller controls exactly
// which wires participate without this package needing to know what kind
// of constraint it is combining.
func (s *Session) OrCondition(cond1, cond2 z.Formula) {
	id := s.next("OrCondition")
	sel := z.Pos(wire("OrCondition", id, "sel"))
	for _, c := range cond1 {
		s.assertClause(append(append(z.Clause{}, sel), c...))
	}
	for _, c := range cond2 {
		s.assertClause(append(append(z.Clause{}, sel.Not()), c...))
	}
}

// AndCondition emits the conjunction of two independently-expanded
// sub-formulas: simply every clause of both, since conjunction of CNF
// fragments needs no new variables.
func (s *Session) AndCondition(cond1, cond2 z.Formula) {
	s.f = append(s.f, cond1...)
	s.f = append(s.f, cond2...)
}

// Capture runs build against a fresh Session sharing this Session's
// counters (so wire names it allocates never collide with ones this
// Session allocates later) and returns the clauses build asserted,
// without adding them to this Session directly. It is how callers build
// the cond1/cond2 arguments to OrCondition/AndCondition: a sub-expansion
// that might end up thrown away (the losing side of an Or_Condition is
// still fully asserted, conditioned on the selector, exactly as in the
// original combinators, so Capture never discards soundness — it only
// lets the caller hold a sub-formula instead of immediately asserting it
// unconditionally).
func (s *Session) Capture(build func(sub *Session)) z.Formula {
	sub := &Session{counters: s.counters}
	build(sub)
	return sub.f
}
