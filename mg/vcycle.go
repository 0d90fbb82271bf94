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

// Multigrid implements the V-cycle solver ("mg"): the plain correction
// scheme for linear problems and the full approximation scheme (FAS) for
// nonlinear problems
type Multigrid struct {
	prm    *inp.Params     // shared parameters
	grd    *grid.Hierarchy // level stack
	bk     par.Backend     // execution backend
	nonlin bool            // use FAS and the nonlinear operator
}

// set factory
func init() {
	solverallocators["mg"] = func(g *grid.Hierarchy, bk par.Backend) Solver {
		return &Multigrid{prm: g.Prm, grd: g, bk: bk, nonlin: g.Prm.Fas()}
	}
}

// Run performs exactly MaxIter V-cycles and returns the final finest-level
// residual norm. Tol is read from the input but deliberately not consulted:
// the fixed iteration count is part of the observable contract.
func (o *Multigrid) Run(verbose bool) (resid float64, err error) {
	resid = compResid(o.bk, o.prm, o.grd.Lev(0), o.nonlin)
	if verbose {
		io.Pf("initial residual = %.15e\n", resid)
	}
	for it := 0; it < o.prm.MaxIter; it++ {
		t0 := time.Now()
		resid = o.Vcycle()
		if verbose {
			io.Pf("iter: %4d  residual = %.15e  time = %v\n", it, resid, time.Now().Sub(t0))
		}
	}
	return
}

// Vcycle runs one V-cycle over the whole hierarchy and returns the
// finest-level residual norm afterwards. The traversal is an iterative
// level-index loop with explicit descend and ascend phases; no recursion.
func (o *Multigrid) Vcycle() float64 {
	nlev := o.grd.NumLevels()

	// descend: pre-smooth, restrict residual, build next-level RHS
	for i := 0; i < nlev-1; i++ {
		l := o.grd.Lev(i)
		next := o.grd.Lev(i + 1)
		jacobi(o.bk, o.prm, l, o.prm.Pre, o.nonlin)
		compResid(o.bk, o.prm, l, o.nonlin)
		restrict(o.bk, l.R, next.F)
		if o.nonlin {
			// FAS: the coarse equation solves for the full solution, so the
			// restricted fine solution seeds next.V and, through the operator
			// applied to its copy in next.RestV, augments the coarse RHS
			restrict(o.bk, l.V, next.RestV)
			restrict(o.bk, l.V, next.V)
			applyStencil(o.bk, o.prm, next, next.RestV)
			next.F.Add(next.R)
		} else {
			next.V.Fill(0)
		}
	}

	// coarse solve: extra relaxation sweeps only, not an exact solve
	jacobi(o.bk, o.prm, o.grd.Lev(nlev-1), o.prm.Pre+o.prm.Post, o.nonlin)

	// ascend: undo FAS encoding, interpolate and add correction, post-smooth
	for i := nlev - 1; i > 0; i-- {
		l := o.grd.Lev(i)
		prev := o.grd.Lev(i - 1)
		if o.nonlin {
			// isolate the coarse-grid correction
			l.V.Sub(l.RestV)
		}
		interpolate(o.bk, l.V, prev.E)
		prev.V.Add(prev.E)
		jacobi(o.bk, o.prm, prev, o.prm.Post, o.nonlin)
	}

	return compResid(o.bk, o.prm, o.grd.Lev(0), o.nonlin)
}
