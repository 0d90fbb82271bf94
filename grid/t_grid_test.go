// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/mfkiwl/gpu-solve/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_field01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field01. index mapping and elementwise ops")

	f := NewField(4, 3, 2)
	chk.IntAssert(len(f.Vals), 4*3*2)

	// linear index = z·nx·ny + y·nx + x
	f.Set(1, 2, 1, 123.0)
	chk.Scalar(tst, "get(1,2,1)", 1e-17, f.Get(1, 2, 1), 123.0)
	chk.Scalar(tst, "vals[1·12+2·4+1]", 1e-17, f.Vals[1*12+2*4+1], 123.0)

	// every cell gets a distinct slot
	f.Fill(0)
	cnt := 0
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				f.Set(x, y, z, float64(cnt))
				cnt++
			}
		}
	}
	chk.Vector(tst, "fill order", 1e-17, f.Vals, utl.LinSpace(0, 23, 24))

	// fill / add / sub
	a := NewField(4, 3, 2)
	b := NewField(4, 3, 2)
	a.Fill(1.5)
	b.Fill(0.5)
	a.Add(b)
	chk.Scalar(tst, "a+b", 1e-17, a.Get(3, 2, 1), 2.0)
	a.Sub(b)
	a.Sub(b)
	chk.Scalar(tst, "a-2b", 1e-17, a.Get(0, 0, 0), 1.0)

	// copy
	b.CopyFrom(a)
	chk.Vector(tst, "copy", 1e-17, b.Vals, a.Vals)

	// shape mismatch is fatal
	defer func() {
		if recover() == nil {
			tst.Errorf("Add with mismatched dimensions must panic")
		}
	}()
	a.Add(NewField(3, 3, 2))
}

func Test_hier01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hier01. hierarchy construction by successive halving")

	prm, err := inp.ParseParams("5 1e-10 7 7 7 0 2 2 1.0 0.0 -6 0 0 0")
	if err != nil {
		tst.Errorf("ParseParams failed:\n%v", err)
		return
	}
	g := NewHierarchy(prm)

	// 7 → 3 → 1; h = 1/8, 1/4, 1/2
	chk.IntAssert(g.NumLevels(), 3)
	chk.Ints(tst, "dims lev 0", g.Lev(0).Dim[:], []int{7, 7, 7})
	chk.Ints(tst, "dims lev 1", g.Lev(1).Dim[:], []int{3, 3, 3})
	chk.Ints(tst, "dims lev 2", g.Lev(2).Dim[:], []int{1, 1, 1})
	chk.Scalar(tst, "h lev 0", 1e-17, g.Lev(0).H, 1.0/8.0)
	chk.Scalar(tst, "h lev 1", 1e-17, g.Lev(1).H, 1.0/4.0)
	chk.Scalar(tst, "h lev 2", 1e-17, g.Lev(2).H, 1.0/2.0)

	// one layer of boundary padding per axis; all fields allocated
	for i := 0; i < g.NumLevels(); i++ {
		l := g.Lev(i)
		chk.IntAssert(l.V.Nx, l.Dim[0]+2)
		chk.IntAssert(l.V.Ny, l.Dim[1]+2)
		chk.IntAssert(l.V.Nz, l.Dim[2]+2)
		for _, fld := range []*Field{l.V, l.F, l.R, l.E, l.RestV} {
			chk.IntAssert(len(fld.Vals), (l.Dim[0]+2)*(l.Dim[1]+2)*(l.Dim[2]+2))
		}
	}
}

func Test_hier02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hier02. non-power dimensions")

	prm, err := inp.ParseParams("5 1e-10 10 6 12 0 2 2 1.0 0.0 -6 0 0 0")
	if err != nil {
		tst.Errorf("ParseParams failed:\n%v", err)
		return
	}
	g := NewHierarchy(prm)

	// halving stops before any axis loses its last interior point
	chk.IntAssert(g.NumLevels(), 3)
	chk.Ints(tst, "dims lev 1", g.Lev(1).Dim[:], []int{5, 3, 6})
	chk.Ints(tst, "dims lev 2", g.Lev(2).Dim[:], []int{2, 1, 3})
	chk.Scalar(tst, "h lev 0", 1e-17, g.Lev(0).H, 1.0/7.0)
}
