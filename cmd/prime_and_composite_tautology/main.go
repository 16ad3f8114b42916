// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Command prime_and_composite_tautology emits a CNF file, at a given bit
// width, asserting that a free target value is simultaneously prime and
// composite. It should always be unsatisfiable; a solver finding a model
// would expose a soundness bug in the underlying bit-blasting.
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
	log.SetPrefix("prime_and_composite_tautology ")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: prime_and_composite_tautology number")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	lg := stdr.New(log.New(os.Stderr, "", 0))

	bitWidth, err := strconv.Atoi(flag.Arg(0))
	if err != nil || bitWidth <= 0 {
		flag.Usage()
		os.Exit(1)
	}

	s := gen.TautologyCNF(bitWidth)

	path := fmt.Sprintf("prime_and_composite_tautology_%d.cnf", bitWidth)
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

	lg.Info("compiled CNF", "n", len(s.Formula()), "bit_width", bitWidth, "path", path)
}
