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

// compResid computes the residual r = f − A(v) at every interior cell of one
// level, stores it into l.R and returns the Euclidean norm sqrt(Σ r²) over
// the interior. A(v) is the stencil convolution divided by h²; with nonlin,
// the discretised nonlinear source γ·v·exp(v) is added. The outer spatial
// axis is partitioned across workers; each worker accumulates its partial
// sum-of-squares into a private padded slot (see par.Backend.RunReduce).
func compResid(bk par.Backend, prm *inp.Params, l *grid.Level, nonlin bool) float64 {
	stn := &prm.Stn
	nst := stn.Size()
	h2 := l.H * l.H
	γ := prm.Gamma
	sum := bk.RunReduce(1, l.Dim[0]+1, func(xlo, xhi int, acc *float64) {
		for x := xlo; x < xhi; x++ {
			for y := 1; y < l.Dim[1]+1; y++ {
				for z := 1; z < l.Dim[2]+1; z++ {
					stencilsum := 0.0
					for i := 0; i < nst; i++ {
						stencilsum += stn.W[i] * l.V.Get(x+stn.X[i], y+stn.Y[i], z+stn.Z[i])
					}
					stencilsum /= h2
					if nonlin {
						v := l.V.Get(x, y, z)
						stencilsum += γ * v * math.Exp(v)
					}
					r := l.F.Get(x, y, z) - stencilsum
					l.R.Set(x, y, z, r)
					*acc += r * r
				}
			}
		}
	})
	return math.Sqrt(sum)
}

// applyStencil computes the nonlinear operator A(v) + γ·v·exp(v) of an
// arbitrary field v at every interior cell of one level and stores it into
// l.R, without subtracting from any right-hand side. Used to encode the FAS
// coarse-grid equation from the restricted fine solution.
func applyStencil(bk par.Backend, prm *inp.Params, l *grid.Level, v *grid.Field) {
	stn := &prm.Stn
	nst := stn.Size()
	h2 := l.H * l.H
	γ := prm.Gamma
	bk.Run(1, l.Dim[0]+1, func(xlo, xhi int) {
		for x := xlo; x < xhi; x++ {
			for y := 1; y < l.Dim[1]+1; y++ {
				for z := 1; z < l.Dim[2]+1; z++ {
					stencilsum := 0.0
					for i := 0; i < nst; i++ {
						stencilsum += stn.W[i] * v.Get(x+stn.X[i], y+stn.Y[i], z+stn.Z[i])
					}
					stencilsum /= h2
					vc := v.Get(x, y, z)
					stencilsum += γ * vc * math.Exp(vc)
					l.R.Set(x, y, z, stencilsum)
				}
			}
		}
	})
}
