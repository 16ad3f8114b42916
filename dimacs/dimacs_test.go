// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

package dimacs

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/go-air/predicatesat/z"
)

func TestWriteHeaderAndCounts(t *testing.T) {
	f := z.Formula{
		z.Clause{z.Pos("apple"), z.Neg("Banana")},
		z.Clause{z.Pos("Banana")},
	}
	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i := 0; i < 3; i++ {
		if lines[i] != "c" {
			t.Fatalf("line %d = %q, want %q", i, lines[i], "c")
		}
	}

	var cvLines, pLine string
	var clauseLines []string
	for _, l := range lines[3:] {
		switch {
		case strings.HasPrefix(l, "cv "):
			cvLines += l + "\n"
		case strings.HasPrefix(l, "p cnf"):
			pLine = l
		default:
			clauseLines = append(clauseLines, l)
		}
	}
	if pLine != "p cnf 2 2" {
		t.Fatalf("p line = %q, want %q", pLine, "p cnf 2 2")
	}
	if len(clauseLines) != 2 {
		t.Fatalf("got %d clause lines, want 2", len(clauseLines))
	}
}

func TestWriteVariableOrdering(t *testing.T) {
	// apple (lowercase-initial) must get a lower id than Banana
	// (uppercase-initial), per the id-assignment ordering rule, even
	// though "Banana" < "apple" lexicographically (so the cv-line order
	// differs from the id-assignment order).
	f := z.Formula{z.Clause{z.Pos("apple"), z.Pos("Banana")}}
	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write: %v", err)
	}

	sc := bufio.NewScanner(&buf)
	var cvLines []string
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "cv ") {
			cvLines = append(cvLines, line)
		}
	}
	if len(cvLines) != 2 {
		t.Fatalf("got %d cv lines, want 2", len(cvLines))
	}
	// cv lines are sorted by the bracketed name, lexicographically:
	// "<Banana>" < "<apple>" because 'B' < 'a' in ASCII.
	if !strings.HasPrefix(cvLines[0], "cv <Banana> ") {
		t.Fatalf("cv lines = %v, want Banana first (plain lexicographic cv order)", cvLines)
	}
	// But its id, assigned by the lowercase-before-uppercase comparator,
	// must be 2 (apple gets id 1).
	if !strings.HasSuffix(cvLines[0], " 2") {
		t.Fatalf("cv line for Banana = %q, want id 2 (apple sorts first for id assignment)", cvLines[0])
	}
	if !strings.HasSuffix(cvLines[1], " 1") {
		t.Fatalf("cv line for apple = %q, want id 1", cvLines[1])
	}
}

func TestWriteClauseLiteralSigns(t *testing.T) {
	f := z.Formula{z.Clause{z.Pos("x"), z.Neg("y")}}
	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "1 -2 0") {
		t.Fatalf("output = %q, want a clause line \"1 -2 0\"", buf.String())
	}
}
