// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Package gen is the front-end library surface: the handful of top-level
// problem constructors the cmd/* tools call, each assembling a
// *logic.Session from package logic's arithmetic and package cert's
// primality certificates the way github.com/irifrance/gini/gen's BinCycle
// and Php assemble whole CNF problems out of that repository's lower
// level primitives.
package gen

import (
	"github.com/go-air/predicatesat/cert"
	"github.com/go-air/predicatesat/inter"
	"github.com/go-air/predicatesat/logic"
	"github.com/go-air/predicatesat/z"
)

// BitWidth returns the number of bits needed to represent v (0 needs 0
// bits; BitWidth is then clamped up to at least min by the caller where
// that matters, mirroring add_cnf/is_prime's own "at least 2 bits" and
// "at least the bigger operand's width plus one" rules).
func BitWidth(v uint64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}

// AddWidth returns the bit width add_cnf uses for a given pair of
// addends: one more than the wider operand's width, but never less than
// the sum's own width, so the result can never overflow the chosen width
// for these two specific operands.
func AddWidth(a, b uint64) int {
	width := BitWidth(a)
	if bw := BitWidth(b); bw > width {
		width = bw
	}
	sumWidth := BitWidth(a + b)
	final := width + 1
	if sumWidth > final {
		final = sumWidth
	}
	return final
}

// AddCNF asserts input1 + input2 == result (with input1, input2 pinned
// to a, b and overflow forbidden) over n bits, returning the Session
// ready for dimacs.Write.
func AddCNF(a, b uint64, n int) *logic.Session {
	s := logic.New()
	var constraint inter.Constraint = logic.Addition{A: a, B: b, N: n}
	constraint.Expand(s)
	return s
}

// IsPrimeWidth returns the bit width is_prime uses for a target value
// (prime_and_composite_tautology takes its bit width directly): its own bit width, but never less than 2 (the
// smallest width that can represent the base case primes 2 and 3).
func IsPrimeWidth(target uint64) int {
	n := BitWidth(target)
	if n < 2 {
		n = 2
	}
	return n
}

// IsPrimeCNF asserts that target is prime (an n-bit number equal to the
// fixed value target, per cert.Prime's certificate construction), ready
// for dimacs.Write. The certificate is given numPrime = n candidate
// factors, matching the CLI tools' default.
func IsPrimeCNF(target uint64, n int) *logic.Session {
	s := logic.New()
	var constraint inter.Constraint = cert.Prime{Target: "target", N: n, NumPrime: n}
	constraint.Expand(s)
	s.AssertEqualsNumber("target", target, n)
	s.AssertWellKnown(n)
	s.AssertWellKnown(n * 2)
	return s
}

// factoring is the inter.Constraint backing PrimeFactoringCNF: factor1 *
// factor2 == target with neither factor equal to 1 or to target itself.
type factoring struct {
	target uint64
	n      int
}

func (f factoring) Expand(s *logic.Session) {
	overflow := z.Name("overflow")
	s.MulNBit("factor1", "factor2", "target", overflow, f.n)
	s.AssertNotEqualsNumber("factor1", f.target, f.n)
	s.AssertNotEqualsNumber("factor2", f.target, f.n)
	s.AssertEqualsNumber("target", f.target, f.n)

	var adder inter.Adder = s
	adder.Add(z.Pos(overflow).Not())
	adder.Add(z.LitNull)

	s.AssertWellKnown(f.n)
	s.AssertWellKnown(f.n * 2)
}

// PrimeFactoringCNF asserts factor1 * factor2 == target with neither
// factor equal to 1 or to target itself — target is satisfiable here iff
// it is composite, and any model exhibits a nontrivial factorization.
func PrimeFactoringCNF(target uint64, n int) *logic.Session {
	s := logic.New()
	var constraint inter.Constraint = factoring{target: target, n: n}
	constraint.Expand(s)
	return s
}

// TautologyCNF asserts that target (left free) is simultaneously prime
// and composite under cert.Prime/cert.Composite. Satisfiability here
// witnesses a defect in the bit-blasting (prime and composite are
// supposed to be mutually exclusive for every n-bit value), so this
// problem is meant to always be unsatisfiable: it exists as a tautology
// check on the arithmetic and certificate encodings themselves, the
// purpose its own CLI tool's name documents.
func TautologyCNF(n int) *logic.Session {
	s := logic.New()
	constraints := []inter.Constraint{
		cert.Prime{Target: "target", N: n, NumPrime: n},
		cert.Composite{Target: "target", N: n},
	}
	for _, constraint := range constraints {
		constraint.Expand(s)
	}
	s.AssertWellKnown(n)
	s.AssertWellKnown(n * 2)
	return s
}
