// Copyright 2026 The Predicatesat Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the LICENSE file.

// Command add_cnf emits a CNF file satisfiable exactly by assignments
// witnessing input1 + input2 == result for two fixed operands.
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
	log.SetPrefix("add_cnf ")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: add_cnf number1 number2")
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	lg := stdr.New(log.New(os.Stderr, "", 0))

	a, err1 := strconv.ParseUint(flag.Arg(0), 10, 64)
	b, err2 := strconv.ParseUint(flag.Arg(1), 10, 64)
	if err1 != nil || err2 != nil {
		flag.Usage()
		os.Exit(1)
	}

	n := gen.AddWidth(a, b)
	s := gen.AddCNF(a, b, n)

	path := fmt.Sprintf("add_%d_%d.cnf", a, b)
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

	lg.Info("compiled CNF", "n", len(s.Formula()), "vars_width", n, "path", path, "expected_sum", a+b)
}
