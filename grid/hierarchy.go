// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/mfkiwl/gpu-solve/inp"
)

// Level holds the field set of one resolution level. Boundary values are
// implicitly fixed (homogeneous Dirichlet) and never written by interior
// kernels.
type Level struct {

	// geometry
	Dim [3]int  // interior dimensions
	H   float64 // grid spacing

	// fields
	V     *Field // solution
	F     *Field // right-hand side
	R     *Field // residual; also operator-application scratch
	E     *Field // interpolated correction
	RestV *Field // restricted fine solution (nonlinear cycles only)
}

// NewLevel allocates all fields of a level with interior dimensions dim
func NewLevel(dim [3]int, h float64) (o *Level) {
	o = &Level{Dim: dim, H: h}
	nx, ny, nz := dim[0]+2, dim[1]+2, dim[2]+2
	o.V = NewField(nx, ny, nz)
	o.F = NewField(nx, ny, nz)
	o.R = NewField(nx, ny, nz)
	o.E = NewField(nx, ny, nz)
	o.RestV = NewField(nx, ny, nz)
	return
}

// Hierarchy is the ordered stack of levels from finest (0) to coarsest,
// built once by successive halving of the finest interior dimensions. The
// hierarchy lives for one full solve; only field contents mutate.
type Hierarchy struct {
	Prm    *inp.Params // shared immutable parameters
	Levels []*Level    // levels; 0 is finest
}

// NewHierarchy builds the level stack from the finest dimensions in prm.
// Halving stops when a further halving would lose the last interior point
// along any axis, so the coarsest level keeps at least one interior point.
func NewHierarchy(prm *inp.Params) (o *Hierarchy) {
	o = &Hierarchy{Prm: prm}
	dim := prm.GridDim
	h := prm.H
	for {
		o.Levels = append(o.Levels, NewLevel(dim, h))
		if dim[0]/2 < 1 || dim[1]/2 < 1 || dim[2]/2 < 1 {
			break
		}
		dim = [3]int{dim[0] / 2, dim[1] / 2, dim[2] / 2}
		h *= 2.0
	}
	return
}

// NumLevels returns the number of levels
func (o *Hierarchy) NumLevels() int { return len(o.Levels) }

// Lev returns level i (0 is finest)
func (o *Hierarchy) Lev(i int) *Level { return o.Levels[i] }
