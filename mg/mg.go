// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mg contains the geometric multigrid kernels and solvers: residual
// computation, damped Jacobi relaxation, inter-level transfer operators, the
// V-cycle controller (with FAS bookkeeping for nonlinear problems) and the
// outer Newton iteration
package mg

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mfkiwl/gpu-solve/grid"
	"github.com/mfkiwl/gpu-solve/par"
)

// Solver drives the outer iteration loop over a grid hierarchy
type Solver interface {

	// Run performs exactly MaxIter outer iterations, printing progress lines
	// when verbose, and returns the final finest-level residual norm
	Run(verbose bool) (resid float64, err error)
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(g *grid.Hierarchy, bk par.Backend) Solver)

// New returns the solver handling the problem mode in g.Prm
func New(g *grid.Hierarchy, bk par.Backend) (Solver, error) {
	alloc, ok := solverallocators[g.Prm.SolverType()]
	if !ok {
		return nil, chk.Err("cannot find solver type %q", g.Prm.SolverType())
	}
	return alloc(g, bk), nil
}
