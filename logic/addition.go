// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package logic

import "github.com/go-air/predicatesat/z"

// Addition is an inter.Constraint asserting A + B == a fresh n-bit result
// with overflow forbidden, A and B themselves pinned to fixed values. It
// is the top-level constraint package gen's AddCNF assembles.
type Addition struct {
	A, B uint64
	N    int
}

// Expand asserts the addition described by Addition's fields into s.
func (add Addition) Expand(s *Session) {
	overflow := z.Name("overflow")
	s.AddNBit("input1", "input2", "result", overflow, add.N)
	s.AssertEqualsNumber("input1", add.A, add.N)
	s.AssertEqualsNumber("input2", add.B, add.N)
	s.AssertFalse(overflow)
	s.AssertWellKnown(add.N)
}
