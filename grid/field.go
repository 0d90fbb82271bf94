// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the storage primitives of the structured 3D grid
// hierarchy: flat scalar fields, resolution levels and the level stack
package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Field is a scalar quantity on a 3D grid, stored as a flat array with
// linear index z·nx·ny + y·nx + x. Dimensions are fixed at construction and
// include one layer of boundary padding per axis beyond the interior, so
// interior indices run 1..dim inclusive. Get and Set are unchecked:
// out-of-range access is a programming-invariant violation, not a
// recoverable error.
type Field struct {
	Nx, Ny, Nz int       // padded dimensions (interior + 2 per axis)
	Vals       []float64 // backing storage of size Nx·Ny·Nz
}

// NewField allocates a field with padded dimensions nx,ny,nz, zero-filled
func NewField(nx, ny, nz int) *Field {
	return &Field{nx, ny, nz, make([]float64, nx*ny*nz)}
}

// Get returns the value at (x,y,z)
func (o *Field) Get(x, y, z int) float64 {
	return o.Vals[z*o.Nx*o.Ny+y*o.Nx+x]
}

// Set sets the value at (x,y,z)
func (o *Field) Set(x, y, z int, val float64) {
	o.Vals[z*o.Nx*o.Ny+y*o.Nx+x] = val
}

// Fill sets all entries, padding included, to val
func (o *Field) Fill(val float64) {
	la.VecFill(o.Vals, val)
}

// Add performs o += b for a field with identical dimensions
func (o *Field) Add(b *Field) {
	o.sameShape(b)
	la.VecAdd(o.Vals, 1, b.Vals)
}

// Sub performs o -= b for a field with identical dimensions
func (o *Field) Sub(b *Field) {
	o.sameShape(b)
	la.VecAdd(o.Vals, -1, b.Vals)
}

// CopyFrom copies all values from a field with identical dimensions
func (o *Field) CopyFrom(b *Field) {
	o.sameShape(b)
	copy(o.Vals, b.Vals)
}

// sameShape checks elementwise-operation compatibility
func (o *Field) sameShape(b *Field) {
	if o.Nx != b.Nx || o.Ny != b.Ny || o.Nz != b.Nz {
		chk.Panic("fields have different dimensions: (%d,%d,%d) vs (%d,%d,%d)",
			o.Nx, o.Ny, o.Nz, b.Nx, b.Ny, b.Nz)
	}
}
