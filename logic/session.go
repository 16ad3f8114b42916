// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Package logic bit-blasts fixed-width arithmetic and number-theoretic
// predicates into CNF. It is the symbolic analogue of a circuit builder
// like github.com/irifrance/gini/logic.C: instead of hash-consing an AIG
// and flattening it to CNF with Tseitin variables at ToCnf time, a
// logic.Session asserts Tseitin clauses directly as each gate is built,
// over named (not yet numbered) boolean variables.
//
// Naming conventions, all produced by this package so every caller gets
// identical formatting:
//
//   - A user-supplied n-bit quantity with base name "foo" occupies bit
//     names foo_0000000000 .. foo_<n-1, zero-padded to width 10>.
//   - Internal wires introduced while expanding an operation are named
//     "<Generator>_<call id, zero-padded>_<role>", optionally further
//     indexed the same way, e.g. AddNBit_0000000001_carry_out_0000000003.
//   - Two shared wires are well known and asserted at most once per width:
//     One_NBit_<n> (the constant 1, width n) and Zero_1Bit_1 (the constant
//     false bit). AssertWellKnown is idempotent per width.
//
// A Session is an ordinary, non-concurrency-safe Go value: nothing here
// spawns a goroutine or takes a lock, mirroring gini's own logic.C.
package logic

import (
	"fmt"

	"github.com/go-air/predicatesat/z"
)

// Session is the expansion context every bit-blasting operation in this
// package is a method of. It owns the growing z.Formula and the per-kind
// counters that keep internal wire names unique and deterministic: the
// first Add_NBit a program builds is always AddNBit_0000000001, regardless
// of what else has been built, as long as programs call operations in the
// same order (spec's determinism guarantee).
type Session struct {
	f        z.Formula
	counters map[string]int
	ones     map[int]bool
	zero     bool
	pending  z.Clause
}

// New returns an empty Session.
func New() *Session {
	return &Session{counters: make(map[string]int)}
}

// Formula returns the clauses asserted so far. The caller must not mutate
// the returned slice.
func (s *Session) Formula() z.Formula {
	return s.f
}

// Add implements inter.Adder: it appends one literal to the clause
// currently under construction. Add(z.LitNull) closes that clause and
// asserts it, mirroring gini's own inter.Adder literal-at-a-time clause
// protocol. assert and assertClause are both built on top of Add, so
// every clause this package ever asserts goes through it.
func (s *Session) Add(m z.Lit) {
	if m.IsNull() {
		s.f = append(s.f, s.pending)
		s.pending = nil
		return
	}
	s.pending = append(s.pending, m)
}

// next bumps and returns the call id for a named generator kind, used to
// keep successive calls to the same operation (e.g. two separate Add_NBit
// calls) from colliding on wire names.
func (s *Session) next(kind string) int {
	s.counters[kind]++
	return s.counters[kind]
}

// assert appends one clause built from the given literals, via Add.
func (s *Session) assert(lits ...z.Lit) {
	for _, m := range lits {
		s.Add(m)
	}
	s.Add(z.LitNull)
}

// assertClause appends c as-is, via Add.
func (s *Session) assertClause(c z.Clause) {
	for _, m := range c {
		s.Add(m)
	}
	s.Add(z.LitNull)
}

// bitName returns the i'th bit name of the n-bit bus rooted at base.
func bitName(base z.Name, i int) z.Name {
	return z.Name(fmt.Sprintf("%s_%010d", base, i))
}

// bit returns the positive literal of the i'th bit of base.
func bit(base z.Name, i int) z.Lit {
	return z.Pos(bitName(base, i))
}

// wire builds an internal wire name "<kind>_<id, width 10>_<role>".
func wire(kind string, id int, role string) z.Name {
	return z.Name(fmt.Sprintf("%s_%010d_%s", kind, id, role))
}

// NewBus returns the n indexed bit names of a fresh n-bit quantity rooted
// at base. It does not assert anything; callers that want the bus pinned
// to a value use AssertEqualsNumber.
func (s *Session) NewBus(base z.Name, n int) []z.Name {
	names := make([]z.Name, n)
	for i := range names {
		names[i] = bitName(base, i)
	}
	return names
}

// checkWidth panics if n is not positive. Every public operation in this
// package validates its widths this way: spec's error-handling design
// calls this "fail loudly" on programmer error, appropriate for a
// single-shot batch compiler where a malformed call is never meant to be
// caught and retried.
func checkWidth(n int) {
	if n <= 0 {
		panic(fmt.Sprintf("logic: invalid bit width %d", n))
	}
}

// AssertEqualsNumber asserts that the n-bit bus rooted at base equals
// value, bit for bit, LSB first.
func (s *Session) AssertEqualsNumber(base z.Name, value uint64, n int) {
	checkWidth(n)
	for i := 0; i < n; i++ {
		if (value>>uint(i))&1 == 1 {
			s.assert(bit(base, i))
		} else {
			s.assert(bit(base, i).Not())
		}
	}
}

// AssertFalse asserts that the single named boolean wire is false: one
// unit clause on name itself (not on a bus bit name_0000000000), used throughout the
// arithmetic and certificate constructions to pin an overflow flag to
// "never happened".
func (s *Session) AssertFalse(name z.Name) {
	s.assert(z.Pos(name).Not())
}

// AssertNotEqualsNumber asserts, in a single clause, that the n-bit bus
// rooted at base differs from value in at least one bit.
func (s *Session) AssertNotEqualsNumber(base z.Name, value uint64, n int) {
	checkWidth(n)
	c := make(z.Clause, n)
	for i := 0; i < n; i++ {
		if (value>>uint(i))&1 == 1 {
			c[i] = bit(base, i).Not()
		} else {
			c[i] = bit(base, i)
		}
	}
	s.assertClause(c)
}

// oneName and zeroName return the well-known shared wire names for a
// given width / the single shared false bit.
func oneName(n int) z.Name { return z.Name(fmt.Sprintf("One_NBit_%d", n)) }

const zeroName = z.Name("Zero_1Bit_1")

// AssertWellKnown pins the shared constant bus One_NBit_<n> to 1 and the
// shared constant bit Zero_1Bit_1 to false. It is safe to call repeatedly
// (including with varying n): each well-known name is only ever asserted
// once.
func (s *Session) AssertWellKnown(n int) {
	checkWidth(n)
	if s.ones == nil {
		s.ones = make(map[int]bool)
	}
	if !s.ones[n] {
		s.ones[n] = true
		s.AssertEqualsNumber(oneName(n), 1, n)
	}
	if !s.zero {
		s.zero = true
		s.assert(z.Pos(zeroName).Not())
	}
}
