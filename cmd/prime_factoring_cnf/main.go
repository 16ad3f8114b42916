// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Command prime_factoring_cnf emits a CNF file satisfiable iff its
// argument has a nontrivial factorization: a satisfying assignment gives
// the two factors.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-logr/stdr"
	"github.com/pkg/errors"

	"github.com/go-air/predicatesat/dimacs"
	"github.com/go-air/predicatesat/gen"
)

func main() {
	log.SetPrefix("prime_factoring_cnf ")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: prime_factoring_cnf number")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	lg := stdr.New(log.New(os.Stderr, "", 0))

	target, err := strconv.ParseUint(flag.Arg(0), 10, 64)
	if err != nil {
		flag.Usage()
		os.Exit(1)
	}

	n := gen.BitWidth(target)
	s := gen.PrimeFactoringCNF(target, n)

	path := fmt.Sprintf("prime_factoring_%d.cnf", target)
	f, err := os.Create(path)
	if err != nil {
		lg.Error(err, "could not create output file", "path", path)
		os.Exit(1)
	}
	defer f.Close()

	if err := dimacs.Write(f, s.Formula()); err != nil {
		lg.Error(errors.Wrap(err, "writing dimacs"), "compile failed", "path", path)
		os.Exit(1)
	}

	lg.Info("compiled CNF", "n", len(s.Formula()), "vars_width", n, "path", path, "target", target)
}
