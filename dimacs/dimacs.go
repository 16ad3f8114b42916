// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Package dimacs finalises a z.Formula built by package logic into a
// numbered DIMACS CNF file: it scans every name the formula actually
// mentions, assigns each a dense positive integer id by a fixed total
// order, rewrites every literal to that integer, and writes the result
// with gini's own "cv" variable-naming comment convention.
//
// Finalisation is deliberately deferred rather than interned eagerly as
// each gate is built: the id a name receives depends on the sorted
// position of every name in the whole formula, which isn't known until
// expansion is complete. Eager interning would have to renumber anyway.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/go-air/predicatesat/z"
)

// Write finalises f and writes it to w in DIMACS CNF form:
//
//	c
//	c
//	c
//	cv <name> <id>      (one per variable, in plain lexicographic order of
//	                      the bracketed name)
//	p cnf <nvars> <nclauses>
//	<id> <id> ... 0     (one line per clause, in f's order)
//
// Variable ids are assigned by sorting names with a comparator that puts
// every name starting with a lowercase letter before every name starting
// with an uppercase one (and lexicographically within each group) — this
// is the order the source this package's finalisation was bit-blasted
// from uses to number variables, kept here because swapping it for plain
// lexicographic order would silently renumber every existing CNF file's
// variables relative to that reference behavior. The "cv" comment lines,
// by contrast, are written in plain lexicographic order of the bracketed
// "<name>" form (not the id-assignment order above): the two orders
// really do differ, and this finaliser intentionally reproduces both
// rather than picking one for cosmetic consistency.
func Write(w io.Writer, f z.Formula) error {
	names := collectNames(f)
	ids := assignIDs(names)

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "c\nc\nc\n")

	bracketed := make([]string, len(names))
	for i, n := range names {
		bracketed[i] = "<" + string(n) + ">"
	}
	sort.Strings(bracketed)
	for _, b := range bracketed {
		name := z.Name(b[1 : len(b)-1])
		fmt.Fprintf(bw, "cv %s %d\n", b, ids[name])
	}

	fmt.Fprintf(bw, "p cnf %d %d\n", len(names), len(f))
	for _, c := range f {
		for _, lit := range c {
			id := ids[lit.Name()]
			if !lit.IsPos() {
				fmt.Fprint(bw, "-")
			}
			fmt.Fprintf(bw, "%d ", id)
		}
		fmt.Fprint(bw, "0\n")
	}
	return errors.Wrap(bw.Flush(), "dimacs: write")
}

// collectNames returns every distinct variable name mentioned in f, since
// every literal in a logic.Session-built formula already carries its
// structured z.Name — no regex scan over rendered text is needed the way
// the string-based source this was bit-blasted from required.
func collectNames(f z.Formula) []z.Name {
	seen := make(map[z.Name]bool)
	names := make([]z.Name, 0, len(f))
	for _, c := range f {
		for _, lit := range c {
			n := lit.Name()
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}

// assignIDs sorts names by less and returns a map from name to its
// 1-based position in that order.
func assignIDs(names []z.Name) map[z.Name]int {
	sorted := make([]z.Name, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	ids := make(map[z.Name]int, len(sorted))
	for i, n := range sorted {
		ids[n] = i + 1
	}
	return ids
}

// less orders names with every lowercase-initial name before every
// uppercase-initial one, falling back to ordinary byte-lexicographic
// order within each group.
func less(a, b z.Name) bool {
	as, bs := string(a), string(b)
	if as == "" || bs == "" {
		return as < bs
	}
	aUpper := as[0] >= 'A' && as[0] <= 'Z'
	bUpper := bs[0] >= 'A' && bs[0] <= 'Z'
	if aUpper == bUpper {
		return as < bs
	}
	return bUpper
}
