// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Package inter holds the small interfaces shared across predicatesat, the
// way github.com/irifrance/gini's inter package holds Adder, Liter and the
// rest: tiny, dependency-free contracts other packages program against
// instead of concrete types.
package inter

import (
	"github.com/go-air/predicatesat/logic"
	"github.com/go-air/predicatesat/z"
)

// Adder encapsulates something to which clauses can be added by sequences
// of z.LitNull-terminated literals, mirroring gini's inter.Adder. logic.Session
// implements it directly (Add is the primitive assert and assertClause both
// build on); package gen drives it explicitly where it wants to add a
// clause without going through one of package logic's named operations.
type Adder interface {
	// Add adds a literal to the current clause. Add(z.LitNull) ends it.
	Add(m z.Lit)
}

// Constraint is something that can expand itself into clauses against a
// logic.Session. It is the "top-level constraint descriptor" package gen's
// constructors assemble: a target value pinned to a number, a primality
// certificate, a factoring relation. Internal expansion steps are plain
// *logic.Session methods; Constraint exists so gen's constructors can hold
// a list of such descriptors and drive them uniformly through Expand.
type Constraint interface {
	Expand(s *logic.Session)
}
