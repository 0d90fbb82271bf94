// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mfkiwl/gpu-solve/grid"
	"github.com/mfkiwl/gpu-solve/inp"
	"github.com/mfkiwl/gpu-solve/mg"
	"github.com/mfkiwl/gpu-solve/par"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "missing config file. usage: %s path/to/config.conf\n", os.Args[0])
		os.Exit(1)
	}
	fnamepath := os.Args[1]
	prm, err := inp.ReadParams(fnamepath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// message
	io.Pf("using config file %s\n", fnamepath)
	io.Pfyel("solving %s problem\n", prm.ModeString())

	// allocate hierarchy, backend and solver
	g := grid.NewHierarchy(prm)
	bk, err := par.New("cpu", 0)
	if err != nil {
		chk.Panic("%v", err)
	}
	solver, err := mg.New(g, bk)
	if err != nil {
		chk.Panic("%v", err)
	}

	// solve
	if _, err = solver.Run(true); err != nil {
		chk.Panic("solver failed: %v", err)
	}
}
