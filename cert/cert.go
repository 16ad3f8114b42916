// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Package cert builds Pratt primality certificates on top of package
// logic's bit-blasted arithmetic: target is prime iff there exists a
// factorization of target-1 into primes (themselves certified the same
// way, flattened to a fixed-size candidate pool rather than recursed) and
// a generator whose order is exactly target-1, witnessed by Fermat tests.
package cert

import (
	"fmt"

	"github.com/go-air/predicatesat/inter"
	"github.com/go-air/predicatesat/logic"
	"github.com/go-air/predicatesat/z"
)

func wire(kind string, id int, role string) z.Name {
	return z.Name(fmt.Sprintf("%s_%010d_%s", kind, id, role))
}

func idx(i int) string { return fmt.Sprintf("%010d", i) }

// FermatTest asserts (generator**pow) % mod == 1, with generator pinned
// away from the two trivial witnesses 0 and 1.
func FermatTest(s *logic.Session, generator, pow, mod z.Name, n int) {
	s.AssertNotEqualsNumber(generator, 0, n)
	s.AssertNotEqualsNumber(generator, 1, n)
	result := wire("FermatTest", fermatID(), "result")
	s.PowModNBit(generator, pow, mod, result, n)
	s.AssertEqualsNumber(result, 1, n)
}

// FermatTest2 asserts (generator**(prime-1)) % prime == 1, the ordinary
// Fermat's-little-theorem witness used once prime-1's factorization is
// known.
func FermatTest2(s *logic.Session, generator, prime z.Name, n int) {
	id := fermatID()
	primeMinus1 := wire("FermatTest2", id, "prime_minus1")
	overflow := wire("FermatTest2", id, "prime_minus1_overflow")
	s.AssertWellKnown(n)
	s.AddNBit(primeMinus1, oneNBitName(n), prime, overflow, n)
	s.AssertFalse(overflow)
	FermatTest(s, generator, primeMinus1, prime, n)
}

// FermatTest3 asserts (generator**pow) % mod != 1: the negative witness
// used to rule out a candidate prime factor of prime-1 that generator
// does not actually distinguish.
func FermatTest3(s *logic.Session, generator, pow, mod z.Name, n int) {
	s.AssertNotEqualsNumber(generator, 0, n)
	s.AssertNotEqualsNumber(generator, 1, n)
	result := wire("FermatTest3", fermatID(), "result")
	s.PowModNBit(generator, pow, mod, result, n)
	s.AssertNotEqualsNumber(result, 1, n)
}

// numbering for FermatTest's own internal "result" wire; a package-level
// monotonic counter mirrors the static call_count the source this was
// bit-blasted from keeps per class, scoped to this package rather than
// per Session since FermatTest/2/3 do not otherwise need Session state.
var fermatCounter int

func fermatID() int {
	fermatCounter++
	return fermatCounter
}

func oneNBitName(n int) z.Name { return z.Name(fmt.Sprintf("One_NBit_%d", n)) }

// Prime is an inter.Constraint asserting that Target (an N-bit bus) is
// prime, by exhibiting a Pratt certificate: NumPrime candidate prime
// factors of Target-1 (themselves asserted prime by the same
// base-case-or-recursion disjunction, flattened into NumPrime*NumPrime
// candidate exponents rather than recursing — see the package doc), their
// product times each prime's multiplicity exactly equal to Target-1, and a
// generator per candidate prime witnessing that prime actually divides the
// group order.
//
// NumPrime bounds how many distinct prime factors Target-1 is allowed to
// need; callers that don't know a useful bound use N (every candidate
// prime certificate also needs N bits, so NumPrime==N is always enough
// room, mirroring the default the CLI tools use).
type Prime struct {
	Target      z.Name
	N, NumPrime int
}

var _ inter.Constraint = Prime{}

// Expand asserts the certificate described by Prime's fields into s.
func (p Prime) Expand(s *logic.Session) {
	target, n, numPrime := p.Target, p.N, p.NumPrime
	s.AssertWellKnown(n)
	id := isPrimeID()
	prime := func(i int) z.Name { return wire("IsPrime", id, "prime_"+idx(i)) }
	generator := func(i int) z.Name { return wire("IsPrime", id, "generator_"+idx(i)) }
	pow := func(i, j int) z.Name { return wire("IsPrime", id, "pow_"+idx(i)+"_"+idx(j)) }
	powTemp := func(i, j int) z.Name { return wire("IsPrime", id, "pow_temp_"+idx(i)+"_"+idx(j)) }
	powTempOverflow := func(i, j int) z.Name {
		return wire("IsPrime", id, "pow_temp_overflow_"+idx(i)+"_"+idx(j))
	}
	product := func(i int) z.Name { return wire("IsPrime", id, "product_"+idx(i)) }
	productOverflow := func(i int) z.Name { return wire("IsPrime", id, "product_overflow_"+idx(i)) }
	productPlus1 := func(i int) z.Name { return wire("IsPrime", id, "product_plus1_"+idx(i)) }
	productPlus1Overflow := func(i int) z.Name {
		return wire("IsPrime", id, "product_plus1_overflow_"+idx(i))
	}
	sumPow := func(i int) z.Name { return wire("IsPrime", id, "sum_pow_"+idx(i)) }
	sumPowOverflow := func(i int) z.Name { return wire("IsPrime", id, "sum_pow_overflow_"+idx(i)) }
	primeMinus1 := func(i int) z.Name { return wire("IsPrime", id, "prime_minus1_"+idx(i)) }
	primeMinus1Overflow := func(i int) z.Name {
		return wire("IsPrime", id, "prime_minus1_overflow_"+idx(i))
	}
	div := func(i, j int) z.Name { return wire("IsPrime", id, "div_"+idx(i)+"_"+idx(j)) }
	mod := func(i, j int) z.Name { return wire("IsPrime", id, "mod_"+idx(i)+"_"+idx(j)) }

	for i := 0; i < numPrime; i++ {
		s.AssertNotEqualsNumber(prime(i), 0, n)
	}
	for i := 0; i < numPrime; i++ {
		s.AssertNotEqualsNumber(prime(i), 1, n)
	}

	// pow_temp[i][j] = prime[j] ** pow[i][j], never overflowing.
	for i := 0; i < numPrime; i++ {
		for j := 0; j < numPrime; j++ {
			s.PowNBit(prime(j), pow(i, j), powTemp(i, j), powTempOverflow(i, j), n)
			s.AssertFalse(powTempOverflow(i, j))
		}
	}

	// product[i] = product over j of pow_temp[i][j]; product_plus1[i] =
	// product[i] + 1; sum_pow[i] = sum over j of pow[i][j]. None overflow.
	for i := 0; i < numPrime; i++ {
		s.ProductNBit(wire("IsPrime", id, "pow_temp_"+idx(i)), product(i), productOverflow(i), numPrime, n)
		s.AssertFalse(productOverflow(i))

		s.AddNBit(product(i), oneNBitName(n), productPlus1(i), productPlus1Overflow(i), n)
		s.AssertFalse(productPlus1Overflow(i))

		s.SumNBit(wire("IsPrime", id, "pow_"+idx(i)), sumPow(i), sumPowOverflow(i), numPrime, n)
		s.AssertFalse(sumPowOverflow(i))
	}

	// Each candidate prime[i] is certified prime: either it is the base
	// case 2 or 3, or 1 < sum_pow[i] and product_plus1[i] == prime[i]
	// (i.e. prime[i]-1 factors exactly into the primes^exponents chosen).
	for i := 0; i < numPrime; i++ {
		baseCase := s.Capture(func(sub *logic.Session) {
			sub.AssertEqualsNumber(prime(i), 2, n)
		})
		baseCase3 := s.Capture(func(sub *logic.Session) {
			sub.AssertEqualsNumber(prime(i), 3, n)
		})
		recursion := s.Capture(func(sub *logic.Session) {
			sub.LessThanNBit(oneNBitName(n), sumPow(i), n)
			sub.EqualsNBit(productPlus1(i), prime(i), n)
		})
		base := s.Capture(func(sub *logic.Session) { sub.OrCondition(baseCase, baseCase3) })
		s.OrCondition(base, recursion)
	}

	// prime_minus1[i] = prime[i] - 1, then div[i][j]/mod[i][j] witness
	// whether prime[j] divides prime_minus1[i].
	for i := 0; i < numPrime; i++ {
		s.AddNBit(primeMinus1(i), oneNBitName(n), prime(i), primeMinus1Overflow(i), n)
		s.AssertFalse(primeMinus1Overflow(i))
	}
	for i := 0; i < numPrime; i++ {
		for j := 0; j < numPrime; j++ {
			s.DivModNBit(primeMinus1(i), prime(j), div(i, j), mod(i, j), n)
		}
	}

	// For every candidate factor j of prime_minus1[i]: either that
	// exponent wasn't used (pow[i][j]==0), or prime[i] is a base case, or
	// the generator fails the Fermat witness at that divisor — ruling out
	// any prime[j] that divides the order more times than pow[i][j] says.
	for i := 0; i < numPrime; i++ {
		for j := 0; j < numPrime; j++ {
			fermat := s.Capture(func(sub *logic.Session) {
				FermatTest3(sub, generator(i), div(i, j), prime(i), n)
			})
			powZero := s.Capture(func(sub *logic.Session) {
				sub.AssertEqualsNumber(pow(i, j), 0, n)
			})
			baseCase := s.Capture(func(sub *logic.Session) {
				sub.AssertEqualsNumber(prime(i), 2, n)
			})
			baseCase3 := s.Capture(func(sub *logic.Session) {
				sub.AssertEqualsNumber(prime(i), 3, n)
			})
			left := s.Capture(func(sub *logic.Session) { sub.OrCondition(fermat, powZero) })
			right := s.Capture(func(sub *logic.Session) { sub.OrCondition(baseCase, baseCase3) })
			s.OrCondition(left, right)
		}
	}

	// Finally, generator[i] must actually witness order prime[i]-1,
	// unless prime[i] is a base case.
	for i := 0; i < numPrime; i++ {
		fermat2 := s.Capture(func(sub *logic.Session) {
			FermatTest2(sub, generator(i), prime(i), n)
		})
		baseCase := s.Capture(func(sub *logic.Session) {
			sub.AssertEqualsNumber(prime(i), 2, n)
		})
		baseCase3 := s.Capture(func(sub *logic.Session) {
			sub.AssertEqualsNumber(prime(i), 3, n)
		})
		baseCases := s.Capture(func(sub *logic.Session) { sub.OrCondition(baseCase, baseCase3) })
		s.OrCondition(fermat2, baseCases)
	}

	s.EqualsNBit(target, prime(0), n)
}

var isPrimeCounter int

func isPrimeID() int {
	isPrimeCounter++
	return isPrimeCounter
}

// Composite is an inter.Constraint asserting that Target (an N-bit bus)
// is composite, by exhibiting two non-trivial factors fact1, fact2 whose
// product equals Target without overflow.
type Composite struct {
	Target z.Name
	N      int
}

var _ inter.Constraint = Composite{}

// Expand asserts the composite witness described by Composite's fields
// into s.
func (c Composite) Expand(s *logic.Session) {
	target, n := c.Target, c.N
	id := isCompositeID()
	fact1 := wire("IsComposite", id, "fact1")
	fact2 := wire("IsComposite", id, "fact2")
	overflow := wire("IsComposite", id, "overflow")

	s.MulNBit(fact1, fact2, target, overflow, n)
	s.AssertNotEqualsNumber(fact1, 0, n)
	s.AssertNotEqualsNumber(fact2, 0, n)
	s.AssertNotEqualsNumber(fact1, 1, n)
	s.AssertNotEqualsNumber(fact2, 1, n)
	s.AssertFalse(overflow)
}

var isCompositeCounter int

func isCompositeID() int {
	isCompositeCounter++
	return isCompositeCounter
}
