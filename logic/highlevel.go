// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package logic

import "github.com/go-air/predicatesat/z"

// PowNBit asserts result == a**b over n bits via repeated squaring:
// temp_0 = a, temp_{i+1} = temp_i * temp_i, and the result accumulates
// temp_i into a running product whenever bit i of the exponent is set
// (selecting the multiplicative identity 1 from One_NBit_n otherwise).
//
// The squaring chain runs unconditionally regardless of which exponent
// bits are set, so temp_i can overflow even when neither it nor any
// later squaring is ever selected into the product — e.g. with a >= 2
// the chain typically overflows n bits within a step or two no matter
// what b is. overflow must not simply OR in every temp_i's overflow
// flag unconditionally: squaring an unused tail of the chain is
// harmless, and flagging it as a genuine overflow would make "a**0"
// look unrepresentable for almost any a. Instead the overflow of the
// squaring step that produces temp_{i+1} only counts if bit i+1 or some
// higher exponent bit is actually set — suffix_used_{i+1}, folded
// top-down with suffix_used_{n-1} = bit(b,n-1) and suffix_used_i =
// bit(b,i) OR suffix_used_{i+1} — since any such bit being set means
// temp_{i+1} (or a square derived from it) still feeds the accumulated
// product. temp_n is never selected, so the last squaring's overflow
// never counts. accum_i's own overflow is always genuine,
// since accum_i always feeds the final result. (The source this
// package's arithmetic was bit-blasted from attempted the same
// exponent-bit gating but read one bit past the end of the bus on its
// last iteration; this folds from the top bit down instead, so every
// index it touches stays in range.)
func (s *Session) PowNBit(a, b, result, overflow z.Name, n int) {
	checkWidth(n)
	s.AssertWellKnown(n)
	id := s.next("PowNBit")
	temp := func(i int) z.Name { return wire("PowNBit", id, "temp_"+idx(i)) }
	tempOverflow := func(i int) z.Name { return wire("PowNBit", id, "temp_overflow_"+idx(i)) }
	tempOverflowUsed := func(i int) z.Name { return wire("PowNBit", id, "temp_overflow_used_"+idx(i)) }
	suffixUsed := func(i int) z.Name { return wire("PowNBit", id, "suffix_used_"+idx(i)) }
	sel := func(i int) z.Name { return wire("PowNBit", id, "sel_"+idx(i)) }
	accum := func(i int) z.Name { return wire("PowNBit", id, "accum_"+idx(i)) }
	accumOverflow := func(i int) z.Name { return wire("PowNBit", id, "accum_overflow_"+idx(i)) }

	s.EqualsNBit(temp(0), a, n)
	for i := 0; i < n; i++ {
		s.MulNBit(temp(i), temp(i), temp(i+1), tempOverflow(i), n)
	}
	for i := 0; i < n; i++ {
		s.MuxNBit(temp(i), oneName(n), bit(b, i), sel(i), n)
	}
	s.AssertEqualsNumber(accum(0), 1, n)
	for i := 0; i < n; i++ {
		s.MulNBit(sel(i), accum(i), accum(i+1), accumOverflow(i), n)
	}
	s.EqualsNBit(result, accum(n), n)

	s.assertEquals(z.Pos(suffixUsed(n-1)), bit(b, n-1))
	for i := n - 2; i >= 0; i-- {
		s.or1(bit(b, i), z.Pos(suffixUsed(i+1)), z.Pos(suffixUsed(i)))
	}
	for i := 0; i < n-1; i++ {
		s.and1(z.Pos(tempOverflow(i)), z.Pos(suffixUsed(i+1)), z.Pos(tempOverflowUsed(i)))
	}
	s.assert(z.Pos(tempOverflowUsed(n - 1)).Not())

	flags := make([]z.Lit, 0, 2*n)
	for i := 0; i < n; i++ {
		flags = append(flags, z.Pos(tempOverflowUsed(i)), z.Pos(accumOverflow(i)))
	}
	s.orManyTo1(flags, z.Pos(overflow))
}

// PowModNBit asserts result == (base**exp) % mod over n bits, internally
// widening every operand to 2n bits so that the repeated-squaring
// intermediate products (which can reach mod^2) never overflow before
// they are reduced back down by DivModNBit. This is the same widen,
// square-and-reduce loop a modexp implementation always uses; it is
// spelled out explicitly here, one DoubleSizeAssign per operand and one
// DivModNBit per squaring/multiplying step, rather than delegated to a
// generic "widen" helper, because each of the three operands widens
// differently (base and exp just zero-extend, mod is also the modulus
// every reduction divides by).
func (s *Session) PowModNBit(base, exp, mod, result z.Name, n int) {
	checkWidth(n)
	id := s.next("PowModNBit")
	baseWide := wire("PowModNBit", id, "base_wide")
	expWide := wire("PowModNBit", id, "exp_wide")
	modWide := wire("PowModNBit", id, "mod_wide")
	s.DoubleSizeAssign(base, baseWide, n)
	s.DoubleSizeAssign(exp, expWide, n)
	s.DoubleSizeAssign(mod, modWide, n)

	partial := func(i int) z.Name { return wire("PowModNBit", id, "partial_"+idx(i)) }
	cur := func(i int) z.Name { return wire("PowModNBit", id, "cur_"+idx(i)) }
	factor := func(i int) z.Name { return wire("PowModNBit", id, "factor_"+idx(i)) }
	mulA := func(i int) z.Name { return wire("PowModNBit", id, "mul_a_"+idx(i)) }
	mulAOverflow := func(i int) z.Name { return wire("PowModNBit", id, "mul_a_overflow_"+idx(i)) }
	mulB := func(i int) z.Name { return wire("PowModNBit", id, "mul_b_"+idx(i)) }
	mulBOverflow := func(i int) z.Name { return wire("PowModNBit", id, "mul_b_overflow_"+idx(i)) }
	div1 := func(i int) z.Name { return wire("PowModNBit", id, "div1_"+idx(i)) }
	div2 := func(i int) z.Name { return wire("PowModNBit", id, "div2_"+idx(i)) }

	s.AssertEqualsNumber(partial(0), 1, n*2)
	s.EqualsNBit(cur(0), baseWide, n*2)

	for i := 0; i < n; i++ {
		s.MuxNBit(cur(i), oneName(n*2), bit(expWide, i), factor(i), n*2)
		s.MulNBit(partial(i), factor(i), mulA(i), mulAOverflow(i), n*2)
		s.assert(z.Pos(mulAOverflow(i)).Not())
		s.DivModNBit(mulA(i), modWide, div1(i), partial(i+1), n*2)

		s.MulNBit(cur(i), cur(i), mulB(i), mulBOverflow(i), n*2)
		s.assert(z.Pos(mulBOverflow(i)).Not())
		s.DivModNBit(mulB(i), modWide, div2(i), cur(i+1), n*2)
	}

	s.EqualsNBit(result, partial(n), n)
}

// SumNBit asserts output == input_0 + input_1 + ... + input_{dataCount-1},
// where the inputs are the dataCount n-bit buses rooted at input_0,
// input_1, etc. (i.e. base name "<input>_<i>"). overflow is set if any
// addition in the chain overflows.
func (s *Session) SumNBit(input, output, overflow z.Name, dataCount, n int) {
	checkWidth(n)
	id := s.next("SumNBit")
	accum := func(i int) z.Name { return wire("SumNBit", id, "accum_"+idx(i)) }
	stageOverflow := func(i int) z.Name { return wire("SumNBit", id, "overflow_"+idx(i)) }

	s.AssertEqualsNumber(accum(0), 0, n)
	for i := 0; i < dataCount; i++ {
		s.AddNBit(bitName(input, i), accum(i), accum(i+1), stageOverflow(i), n)
	}
	s.EqualsNBit(output, accum(dataCount), n)

	flags := make([]z.Lit, dataCount)
	for i := 0; i < dataCount; i++ {
		flags[i] = z.Pos(stageOverflow(i))
	}
	s.orManyTo1(flags, z.Pos(overflow))
}

// ProductNBit asserts output == input_0 * input_1 * ... *
// input_{dataCount-1}, the same indexed-bus convention as SumNBit.
// overflow is set if any multiplication in the chain overflows.
func (s *Session) ProductNBit(input, output, overflow z.Name, dataCount, n int) {
	checkWidth(n)
	id := s.next("ProductNBit")
	accum := func(i int) z.Name { return wire("ProductNBit", id, "accum_"+idx(i)) }
	stageOverflow := func(i int) z.Name { return wire("ProductNBit", id, "overflow_"+idx(i)) }

	s.AssertEqualsNumber(accum(0), 1, n)
	for i := 0; i < dataCount; i++ {
		s.MulNBit(bitName(input, i), accum(i), accum(i+1), stageOverflow(i), n)
	}
	s.EqualsNBit(output, accum(dataCount), n)

	flags := make([]z.Lit, dataCount)
	for i := 0; i < dataCount; i++ {
		flags[i] = z.Pos(stageOverflow(i))
	}
	s.orManyTo1(flags, z.Pos(overflow))
}
