// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"math"

	"github.com/mfkiwl/gpu-solve/grid"
	"github.com/mfkiwl/gpu-solve/inp"
	"github.com/mfkiwl/gpu-solve/par"
)

// jacobi relaxes one level with nsweeps damped Jacobi sweeps. Every sweep
// first recomputes the full residual, then updates all interior cells
// simultaneously from pre-sweep values only:
//  linear:    v += ω·(h²/c₀)·r
//  nonlinear: v += ω·r / (c₀/h² + γ·(1+v)·exp(v))
// where c₀ is the stencil centre weight. The residual pass must be complete
// before any update begins: workers write disjoint cells but read the
// pre-sweep values of their neighbours.
func jacobi(bk par.Backend, prm *inp.Params, l *grid.Level, nsweeps int, nonlin bool) {
	c0 := prm.Stn.W[0]
	h2 := l.H * l.H
	preFac := c0 / h2
	α := h2 / c0
	ω := prm.Omega
	γ := prm.Gamma
	for it := 0; it < nsweeps; it++ {
		compResid(bk, prm, l, nonlin)
		bk.Run(1, l.Dim[0]+1, func(xlo, xhi int) {
			for x := xlo; x < xhi; x++ {
				for y := 1; y < l.Dim[1]+1; y++ {
					for z := 1; z < l.Dim[2]+1; z++ {
						v := l.V.Get(x, y, z)
						r := l.R.Get(x, y, z)
						if nonlin {
							den := preFac + γ*(1.0+v)*math.Exp(v)
							l.V.Set(x, y, z, v+ω*r/den)
						} else {
							l.V.Set(x, y, z, v+ω*α*r)
						}
					}
				}
			}
		})
	}
}
