// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package cert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-air/predicatesat/internal/evalcnf"
	"github.com/go-air/predicatesat/logic"
	"github.com/go-air/predicatesat/z"
)

// findWireSuffix returns the single free variable name in f ending in
// suffix, for locating an internal wire whose call-id prefix (allocated
// from a package-level counter shared across every test in this binary)
// isn't predictable from a single test in isolation.
func findWireSuffix(t *testing.T, f z.Formula, suffix string) z.Name {
	t.Helper()
	var found z.Name
	for _, name := range evalcnf.FreeNames(f, evalcnf.Assignment{}) {
		if strings.HasSuffix(string(name), suffix) {
			if found != "" && found != name {
				t.Fatalf("multiple wires end in %q: %s and %s", suffix, found, name)
			}
			found = name
		}
	}
	if found == "" {
		t.Fatalf("no wire ending in %q found", suffix)
	}
	return found
}

// findBusSuffix is findWireSuffix for an n-bit bus: it locates that bus's
// bit 0 wire (named "..._<role>_0000000000") and returns the bus's base
// name (everything before that trailing index).
func findBusSuffix(t *testing.T, f z.Formula, roleSuffix string) z.Name {
	t.Helper()
	full := findWireSuffix(t, f, roleSuffix+"_0000000000")
	return full[:len(full)-len("_0000000000")]
}

func TestIsCompositeNoEmptyClause(t *testing.T) {
	const n = 4
	s := logic.New()
	Composite{Target: "target", N: n}.Expand(s)
	if len(s.Formula()) == 0 {
		t.Fatal("IsComposite should assert clauses")
	}
	for i, c := range s.Formula() {
		if len(c) == 0 {
			t.Fatalf("clause %d is empty (unconditionally false)", i)
		}
	}
}

func TestIsCompositeRejectsTrivialFactors(t *testing.T) {
	const n = 4
	s := logic.New()
	Composite{Target: "target", N: n}.Expand(s)

	// 5 = 1 * 5: both factors must be forbidden from being 0 or 1, so a
	// trivial factorization of a prime must not satisfy the formula.
	fact1 := findBusSuffix(t, s.Formula(), "_fact1")
	fact2 := findBusSuffix(t, s.Formula(), "_fact2")
	overflow := findWireSuffix(t, s.Formula(), "_overflow")

	witness := evalcnf.Assignment{}
	evalcnf.Bits(witness, "target", 5, n)
	evalcnf.Bits(witness, fact1, 1, n)
	evalcnf.Bits(witness, fact2, 5, n)
	witness[overflow] = false

	if evalcnf.Satisfies(s.Formula(), witness) {
		t.Fatal("a trivial 1*5 factorization should not satisfy IsComposite")
	}
}

// addNBitCarries returns the w carry-out bits AddNBit's ripple-carry
// chain produces for a + b, mirroring the same derivation package
// logic's own arith_test.go uses.
func addNBitCarries(a, b uint64, w int) []bool {
	carries := make([]bool, w)
	carry := false
	for i := 0; i < w; i++ {
		ai := (a>>uint(i))&1 == 1
		bi := (b>>uint(i))&1 == 1
		count := 0
		for _, v := range []bool{ai, bi, carry} {
			if v {
				count++
			}
		}
		carry = count >= 2
		carries[i] = carry
	}
	return carries
}

func padIdx(i int) string { return fmt.Sprintf("%010d", i) }

func wireName(kind string, id int, role string) z.Name {
	return z.Name(fmt.Sprintf("%s_%010d_%s", kind, id, role))
}

// fillMulNBitWitness fills in every wire MulNBit's call with the given id
// introduces, for a fresh Session whose a, b inputs are fixed to a, b.
// Since every gate MulNBit builds is a deterministic function of its two
// multiplicand inputs, this is cheaper and more reliable for a small,
// single, un-nested MulNBit call than a brute-force search, the same
// technique package gen's own tests use for PrimeFactoringCNF. It
// returns the full 2n-bit accumulated product.
func fillMulNBitWitness(assignment evalcnf.Assignment, mulID int, a, b uint64, n int) uint64 {
	evalcnf.Bits(assignment, wireName("MulNBit", mulID, "accum_"+padIdx(0)), 0, n*2)
	accum := uint64(0)
	for i := 0; i < n; i++ {
		var partial uint64
		if (b>>uint(i))&1 == 1 {
			partial = a << uint(i)
		}
		evalcnf.Bits(assignment, wireName("MulNBit", mulID, "partial_"+padIdx(i)), partial, n*2)

		carries := addNBitCarries(partial, accum, n*2)
		for k, c := range carries {
			assignment[wireName("AddNBit", i+1, "carry_out_"+padIdx(k+1))] = c
		}
		assignment[wireName("MulNBit", mulID, "stage_overflow_"+padIdx(i))] = carries[n*2-1]

		accum = (accum + partial) % (uint64(1) << uint(n*2))
		evalcnf.Bits(assignment, wireName("MulNBit", mulID, "accum_"+padIdx(i+1)), accum, n*2)
	}
	return accum
}

func TestIsCompositeSatisfiedByItsOwnWitness(t *testing.T) {
	const n = 3
	const fact1, fact2 = 2, 2
	s := logic.New()
	Composite{Target: "target", N: n}.Expand(s)
	f := s.Formula()

	fact1Bus := findBusSuffix(t, f, "_fact1")
	fact2Bus := findBusSuffix(t, f, "_fact2")
	overflow := findWireSuffix(t, f, "_overflow")

	witness := evalcnf.Assignment{}
	evalcnf.Bits(witness, fact1Bus, fact1, n)
	evalcnf.Bits(witness, fact2Bus, fact2, n)
	// IsComposite's internal MulNBit call is the first (and only) one in
	// a fresh Session, so it always lands on call id 1.
	product := fillMulNBitWitness(witness, 1, fact1, fact2, n)
	evalcnf.Bits(witness, "target", product, n)
	witness[overflow] = product>>uint(n) != 0

	if !evalcnf.Satisfies(f, witness) {
		t.Fatal("IsComposite should be satisfied by the witness 2*2=4")
	}
}

// TestIsCompositeUnsatAtMinimumWidth shows IsComposite(target, 2) has no
// satisfying assignment at all, for any target: the only factor values 2
// bits can represent once 0 and 1 are forbidden are 2 and 3, and every
// product of two such factors needs at least 3 bits, so MulNBit's
// overflow flag comes out true for all four allowed factor pairs,
// unconditionally contradicting AssertFalse(overflow) regardless of
// target's value or of anything IsPrime's clauses (disjoint variables)
// might otherwise allow. This is what makes gen.TautologyCNF(2)
// unsatisfiable, independent of IsPrime's own certificate.
func TestIsCompositeUnsatAtMinimumWidth(t *testing.T) {
	const n = 2
	s := logic.New()
	Composite{Target: "target", N: n}.Expand(s)
	f := s.Formula()

	fact1Bus := findBusSuffix(t, f, "_fact1")
	fact2Bus := findBusSuffix(t, f, "_fact2")
	overflow := findWireSuffix(t, f, "_overflow")

	for fact1 := uint64(2); fact1 <= 3; fact1++ {
		for fact2 := uint64(2); fact2 <= 3; fact2++ {
			witness := evalcnf.Assignment{}
			evalcnf.Bits(witness, fact1Bus, fact1, n)
			evalcnf.Bits(witness, fact2Bus, fact2, n)
			product := fillMulNBitWitness(witness, 1, fact1, fact2, n)
			evalcnf.Bits(witness, "target", product, n)
			witness[overflow] = product>>uint(n) != 0

			if evalcnf.Satisfies(f, witness) {
				t.Fatalf("IsComposite at n=2 should be unsatisfiable, but factor1=%d, factor2=%d satisfied it", fact1, fact2)
			}
		}
	}
}

func TestFermatTestNoEmptyClause(t *testing.T) {
	const n = 4
	s := logic.New()
	FermatTest(s, "generator", "pow", "mod", n)
	if len(s.Formula()) == 0 {
		t.Fatal("FermatTest should assert clauses")
	}
	for i, c := range s.Formula() {
		if len(c) == 0 {
			t.Fatalf("clause %d is empty (unconditionally false)", i)
		}
	}
}

func TestFermatTestRejectsTrivialGenerator(t *testing.T) {
	const n = 4
	s := logic.New()
	FermatTest(s, "generator", "pow", "mod", n)

	witness := evalcnf.Assignment{}
	evalcnf.Bits(witness, "generator", 1, n)
	evalcnf.Bits(witness, "pow", 4, n)
	evalcnf.Bits(witness, "mod", 5, n)

	if evalcnf.Satisfies(s.Formula(), witness) {
		t.Fatal("generator == 1 is a forbidden trivial witness and should not satisfy FermatTest")
	}
}

func TestIsPrimeMentionsTargetBits(t *testing.T) {
	const n = 3
	s := logic.New()
	Prime{Target: "target", N: n, NumPrime: n}.Expand(s)

	names := evalcnf.FreeNames(s.Formula(), evalcnf.Assignment{})
	seen := map[z.Name]bool{}
	for _, name := range names {
		seen[name] = true
	}
	for i := 0; i < n; i++ {
		bit := z.Name("target_000000000" + string(rune('0'+i)))
		if !seen[bit] {
			t.Fatalf("IsPrime's formula should mention %s", bit)
		}
	}
	if len(s.Formula()) == 0 {
		t.Fatal("IsPrime should assert at least one clause")
	}
}
