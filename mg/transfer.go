// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"math"

	"github.com/mfkiwl/gpu-solve/grid"
	"github.com/mfkiwl/gpu-solve/par"
)

// restrict transfers a fine field to the interior of the next coarser field
// by full weighting: the coarse value at (x,y,z) is the weighted sum over
// the 3×3×3 fine neighbourhood of the coincident fine point (2x,2y,2z) with
// weight 0.125·Π(2−|offset|)/2 per axis (centre 1/8, face 1/16, edge 1/32,
// corner 1/64). Boundary coarse points are left untouched.
func restrict(bk par.Backend, fine, coarse *grid.Field) {
	bk.Run(1, coarse.Nx-1, func(xlo, xhi int) {
		for x := xlo; x < xhi; x++ {
			for y := 1; y < coarse.Ny-1; y++ {
				for z := 1; z < coarse.Nz-1; z++ {
					xc, yc, zc := 2*x, 2*y, 2*z
					val := 0.0
					for ii := -1; ii < 2; ii++ {
						for jj := -1; jj < 2; jj++ {
							for kk := -1; kk < 2; kk++ {
								fac := 0.125 * ((2.0 - math.Abs(float64(ii))) / 2.0) *
									((2.0 - math.Abs(float64(jj))) / 2.0) *
									((2.0 - math.Abs(float64(kk))) / 2.0)
								val += fac * fine.Get(xc+ii, yc+jj, zc+kk)
							}
						}
					}
					coarse.Set(x, y, z, val)
				}
			}
		}
	})
}

// interpolate transfers a coarse field into a fine field by trilinear
// interpolation, in four strictly ordered passes. Each later pass reads
// fine-grid points populated by the previous one, so the implicit barrier at
// the end of every Run call is required; within a pass all points are
// independent. Fine points never written (the high boundary layer) keep
// their zero value, which stands for the homogeneous Dirichlet boundary.
func interpolate(bk par.Backend, coarse, fine *grid.Field) {

	// copy each coarse value to its coincident fine point
	bk.Run(0, fine.Nx-1, func(xlo, xhi int) {
		x0 := xlo + xlo%2
		for x := x0; x < xhi; x += 2 {
			for y := 0; y < fine.Ny-1; y += 2 {
				for z := 0; z < fine.Nz-1; z += 2 {
					fine.Set(x, y, z, coarse.Get(x/2, y/2, z/2))
				}
			}
		}
	})

	// interpolate in x-direction
	bk.Run(0, fine.Nx-2, func(xlo, xhi int) {
		x0 := xlo + xlo%2
		for x := x0; x < xhi; x += 2 {
			for y := 0; y < fine.Ny; y += 2 {
				for z := 0; z < fine.Nz; z += 2 {
					fine.Set(x+1, y, z, 0.5*fine.Get(x, y, z)+0.5*fine.Get(x+2, y, z))
				}
			}
		}
	})

	// interpolate in y-direction using the x-filled grid
	bk.Run(0, fine.Nx, func(xlo, xhi int) {
		for x := xlo; x < xhi; x++ {
			for y := 0; y+2 < fine.Ny; y += 2 {
				for z := 0; z < fine.Nz; z += 2 {
					fine.Set(x, y+1, z, 0.5*fine.Get(x, y, z)+0.5*fine.Get(x, y+2, z))
				}
			}
		}
	})

	// interpolate in z-direction using the x,y-filled grid
	bk.Run(0, fine.Nx, func(xlo, xhi int) {
		for x := xlo; x < xhi; x++ {
			for y := 0; y < fine.Ny; y++ {
				for z := 0; z+2 < fine.Nz; z += 2 {
					fine.Set(x, y, z+1, 0.5*fine.Get(x, y, z)+0.5*fine.Get(x, y, z+2))
				}
			}
		}
	})
}
