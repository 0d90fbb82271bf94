// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_cpu01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cpu01. registry and Run coverage")

	if _, err := New("nosuch", 0); err == nil {
		tst.Errorf("expected error for unknown backend")
	}

	bk, err := New("cpu", 4)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.IntAssert(bk.Workers(), 4)

	// every index visited exactly once; chunks write disjoint regions
	for _, n := range []int{0, 1, 3, 4, 100} {
		visits := make([]int, n)
		bk.Run(0, n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				visits[i]++
			}
		})
		for i, v := range visits {
			if v != 1 {
				tst.Errorf("n=%d: index %d visited %d times", n, i, v)
			}
		}
	}

	// Run partitions into at most Workers() subranges, so Workers() and the
	// actual parallel width agree for plain regions too
	for _, nw := range []int{1, 2, 3, 8} {
		bkn, err := New("cpu", nw)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		var mu sync.Mutex
		calls := 0
		bkn.Run(0, 100, func(lo, hi int) {
			mu.Lock()
			calls++
			mu.Unlock()
		})
		if calls < 1 || calls > nw {
			tst.Errorf("nw=%d: kernel invoked %d times; must be between 1 and %d", nw, calls, nw)
		}
	}
}

func Test_cpu02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cpu02. padded-slot reduction vs serial sum")

	rand.Seed(1234)
	vals := make([]float64, 1001)
	for i := range vals {
		vals[i] = rand.Float64() - 0.5
	}

	// serial reference: independent summation via gonum
	ref := floats.Dot(vals, vals)

	// the reduction must agree for any worker count, including more workers
	// than chunks
	for _, nw := range []int{1, 2, 3, 7, 16, 2000} {
		bk, err := New("cpu", nw)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		sum := bk.RunReduce(0, len(vals), func(lo, hi int, acc *float64) {
			for i := lo; i < hi; i++ {
				*acc += vals[i] * vals[i]
			}
		})
		chk.Scalar(tst, io.Sf("sum of squares (nw=%d)", nw), 1e-12, sum, ref)
	}

	// reusing a backend must not leak previous accumulator contents
	bk, _ := New("cpu", 3)
	for rep := 0; rep < 3; rep++ {
		sum := bk.RunReduce(0, len(vals), func(lo, hi int, acc *float64) {
			for i := lo; i < hi; i++ {
				*acc += vals[i] * vals[i]
			}
		})
		chk.Scalar(tst, io.Sf("repeat %d", rep), 1e-12, sum, ref)
	}

	// empty range
	chk.Scalar(tst, "empty range", 1e-17, bk.RunReduce(5, 5, func(lo, hi int, acc *float64) {
		*acc += 1
	}), 0)
}
