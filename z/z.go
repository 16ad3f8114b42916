// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Package z provides the symbolic literal, clause and formula types shared
// by every other package in predicatesat.
//
// Unlike a dimacs-numbered SAT solver, predicatesat's clauses are built
// before any variable has a number: a literal refers to a boolean variable
// by name, and names are only interned to dense integer ids by the dimacs
// finaliser (package dimacs). This package defines that name-based literal
// and the clause/formula containers built from it.
package z

import "fmt"

// Name is a symbolic variable name. See the package doc of logic for the
// naming conventions (user names, indexed bit names, internal wires,
// well-known shared wires).
type Name string

// Lit is a signed reference to the boolean variable Name: positive unless
// Neg() has been applied.
type Lit struct {
	name Name
	neg  bool
}

// LitNull is the zero value of Lit and never denotes a real variable. It is
// useful as a sentinel the way z.LitNull is used in gini.
var LitNull = Lit{}

// Pos returns the positive literal of n.
func Pos(n Name) Lit { return Lit{name: n} }

// Neg returns the negative literal of n.
func Neg(n Name) Lit { return Lit{name: n, neg: true} }

// Name returns the underlying variable name of m.
func (m Lit) Name() Name { return m.name }

// IsPos returns whether m is a positive literal.
func (m Lit) IsPos() bool { return !m.neg }

// Not returns the negation of m.
func (m Lit) Not() Lit { return Lit{name: m.name, neg: !m.neg} }

// IsNull reports whether m is the zero Lit.
func (m Lit) IsNull() bool { return m.name == "" }

// String renders m as a bracketed literal, "<name>" if positive or
// "-<name>" if negative. Nothing in this repository parses this string
// back out; it exists for debugging and for callers that want the
// pre-interning textual form.
func (m Lit) String() string {
	if m.neg {
		return fmt.Sprintf("-<%s>", m.name)
	}
	return fmt.Sprintf("<%s>", m.name)
}

// Clause is a finite disjunction of literals. An empty Clause is FALSE.
type Clause []Lit

// Formula is an ordered, possibly-duplicate sequence of clauses, whose
// semantics is their conjunction. Order has no semantic effect on
// satisfiability; it exists only so that byte-identical output is
// reproducible across repeated runs on the same input.
type Formula []Clause

// Append adds clauses to f and returns the result, mirroring the
// append-and-reassign idiom used throughout predicatesat for building up a
// Formula incrementally.
func (f Formula) Append(cs ...Clause) Formula {
	return append(f, cs...)
}
