// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/mfkiwl/gpu-solve/grid"
	"github.com/mfkiwl/gpu-solve/inp"
	"github.com/mfkiwl/gpu-solve/par"
)

// newtonInnerCycles is the fixed number of linear V-cycles approximating
// each Newton linear solve
const newtonInnerCycles = 2

// Newton implements the outer Newton iteration ("newton") for the nonlinear
// problem. Each step evaluates the nonlinear residual on the finest level,
// makes it the right-hand side of a linearised error equation, solves that
// equation approximately with linear V-cycles starting from a zero guess,
// and adds the resulting correction to the iterate. The inner solver is the
// same Multigrid used for linear problems, observed only through its
// returned residual norm and the updated solution field.
type Newton struct {
	prm *inp.Params     // shared parameters
	grd *grid.Hierarchy // level stack
	bk  par.Backend     // execution backend
	mgs *Multigrid      // inner linear V-cycle solver

	// work fields on the finest level
	vN *grid.Field // current Newton iterate
	f0 *grid.Field // original right-hand side
}

// set factory
func init() {
	solverallocators["newton"] = func(g *grid.Hierarchy, bk par.Backend) Solver {
		return &Newton{
			prm: g.Prm,
			grd: g,
			bk:  bk,
			mgs: &Multigrid{prm: g.Prm, grd: g, bk: bk, nonlin: false},
		}
	}
}

// Run performs exactly MaxIter Newton steps and returns the final nonlinear
// residual norm of the finest level
func (o *Newton) Run(verbose bool) (resid float64, err error) {

	// work fields; the finest level is borrowed for the inner linear solves,
	// so the iterate and the true RHS live outside the hierarchy
	fin := o.grd.Lev(0)
	o.vN = grid.NewField(fin.V.Nx, fin.V.Ny, fin.V.Nz)
	o.f0 = grid.NewField(fin.F.Nx, fin.F.Ny, fin.F.Nz)
	o.vN.CopyFrom(fin.V)
	o.f0.CopyFrom(fin.F)

	resid = compResid(o.bk, o.prm, fin, true)
	if verbose {
		io.Pf("initial residual = %.15e\n", resid)
	}

	for it := 0; it < o.prm.MaxIter; it++ {
		t0 := time.Now()

		// solve the error equation: the nonlinear residual left in fin.R by
		// the last compResid becomes the RHS; start from a zero correction
		fin.F.CopyFrom(fin.R)
		fin.V.Fill(0)
		for ic := 0; ic < newtonInnerCycles; ic++ {
			o.mgs.Vcycle()
		}

		// apply correction and restore the nonlinear problem
		o.vN.Add(fin.V)
		fin.V.CopyFrom(o.vN)
		fin.F.CopyFrom(o.f0)

		resid = compResid(o.bk, o.prm, fin, true)
		if verbose {
			io.Pf("iter: %4d  residual = %.15e  time = %v\n", it, resid, time.Now().Sub(t0))
		}
	}
	return
}
