// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package logic

import (
	"testing"
)

// noEmptyClause fails the test if f asserts zero clauses or any clause
// with no literals (an unconditional contradiction), the two defects a
// construction bug in a generator function is most likely to produce.
func noEmptyClause(t *testing.T, s *Session) {
	t.Helper()
	if len(s.Formula()) == 0 {
		t.Fatal("expected at least one asserted clause")
	}
	for i, c := range s.Formula() {
		if len(c) == 0 {
			t.Fatalf("clause %d is empty (unconditionally false)", i)
		}
	}
}

func TestPowNBitNoEmptyClause(t *testing.T) {
	const n = 4
	s := New()
	s.PowNBit("a", "b", "result", "overflow", n)
	noEmptyClause(t, s)
}

func TestPowModNBitNoEmptyClause(t *testing.T) {
	const n = 4
	s := New()
	s.PowModNBit("base", "exp", "mod", "result", n)
	noEmptyClause(t, s)
}

func TestSumNBitNoEmptyClause(t *testing.T) {
	const n = 4
	s := New()
	s.SumNBit("input", "output", "overflow", 3, n)
	noEmptyClause(t, s)
}

func TestProductNBitNoEmptyClause(t *testing.T) {
	const n = 4
	s := New()
	s.ProductNBit("input", "output", "overflow", 3, n)
	noEmptyClause(t, s)
}

func TestPowNBitIsDeterministicAcrossCalls(t *testing.T) {
	// Two independent PowNBit calls in the same Session must not collide
	// on internal wire names: their call ids differ, so every generated
	// name differs, so the combined formula is just the concatenation of
	// what each call would produce alone, except for the well-known
	// constants, which AssertWellKnown asserts only on the first call.
	wk := New()
	wk.AssertWellKnown(3)
	wellKnownLen := len(wk.Formula())

	s := New()
	s.PowNBit("a1", "b1", "r1", "o1", 3)
	firstLen := len(s.Formula())
	s.PowNBit("a2", "b2", "r2", "o2", 3)
	if got, want := len(s.Formula())-firstLen, firstLen-wellKnownLen; got != want {
		t.Fatalf("second PowNBit call asserted %d clauses, want %d (the first's, less the well-known constants)",
			got, want)
	}
}
