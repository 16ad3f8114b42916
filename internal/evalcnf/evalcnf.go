// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Package evalcnf brute-force evaluates a z.Formula against a candidate
// assignment, and can exhaustively search small formulas for a witness.
// It exists purely for this repository's own tests: predicatesat compiles
// to CNF but never solves one, so there is no in-repo SAT solver to shell
// out to; checking that an expected witness actually satisfies the
// emitted clauses (and, for tiny widths, that no witness exists when none
// should) is enough to test soundness without one.
package evalcnf

import (
	"fmt"

	"github.com/go-air/predicatesat/z"
)

// Assignment maps variable names to boolean values. A name absent from
// the map is treated as false.
type Assignment map[z.Name]bool

// Satisfies reports whether assignment satisfies every clause of f.
func Satisfies(f z.Formula, assignment Assignment) bool {
	for _, c := range f {
		if !clauseSatisfied(c, assignment) {
			return false
		}
	}
	return true
}

func clauseSatisfied(c z.Clause, assignment Assignment) bool {
	for _, lit := range c {
		v := assignment[lit.Name()]
		if lit.IsPos() == v {
			return true
		}
	}
	return false
}

// Bits sets, in dst, the n-bit bus rooted at base to value, LSB first — the same layout logic.Session.AssertEqualsNumber
// uses, for building expected witnesses in tests.
func Bits(dst Assignment, base z.Name, value uint64, n int) {
	for i := 0; i < n; i++ {
		name := z.Name(fmt.Sprintf("%s_%010d", base, i))
		dst[name] = (value>>uint(i))&1 == 1
	}
}

// FreeNames returns the distinct variable names f mentions that are not
// already fixed in base, in first-appearance order — the variables an
// exhaustive search needs to range over.
func FreeNames(f z.Formula, base Assignment) []z.Name {
	seen := make(map[z.Name]bool)
	var names []z.Name
	for _, c := range f {
		for _, lit := range c {
			n := lit.Name()
			if seen[n] {
				continue
			}
			seen[n] = true
			if _, fixed := base[n]; !fixed {
				names = append(names, n)
			}
		}
	}
	return names
}

// FindWitness exhaustively searches every extension of base over free to
// find one that satisfies f, returning it and true, or nil and false if
// none exists. It is only suitable for a small number of free variables.
func FindWitness(f z.Formula, base Assignment, free []z.Name) (Assignment, bool) {
	assignment := make(Assignment, len(base)+len(free))
	for k, v := range base {
		assignment[k] = v
	}
	total := uint64(1) << uint(len(free))
	for bits := uint64(0); bits < total; bits++ {
		for i, name := range free {
			assignment[name] = (bits>>uint(i))&1 == 1
		}
		if Satisfies(f, assignment) {
			out := make(Assignment, len(assignment))
			for k, v := range assignment {
				out[k] = v
			}
			return out, true
		}
	}
	return nil, false
}
