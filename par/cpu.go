// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"runtime"
	"sync"

	"github.com/exascience/pargo/parallel"
)

// padF64 spaces the per-worker accumulator slots one cache line apart
// (64 bytes / 8 bytes per float64) so concurrent += on neighbouring slots
// never contend on the same line
const padF64 = 8

// Cpu runs regions on goroutines. Plain regions are delegated to pargo;
// reductions use a static worker-indexed chunking so each worker owns one
// padded accumulator slot. The slot table is sized from the actual worker
// count at construction.
type Cpu struct {
	nw    int       // number of workers
	slots []float64 // padded accumulator slots [nw*padF64]
}

// set factory
func init() {
	backendallocators["cpu"] = func(nworkers int) Backend {
		if nworkers < 1 {
			nworkers = runtime.NumCPU()
		}
		return &Cpu{nw: nworkers, slots: make([]float64, nworkers*padF64)}
	}
}

// Workers returns the number of parallel workers
func (o *Cpu) Workers() int { return o.nw }

// Run executes kernel over a partition of [lo,hi) into at most Workers()
// subranges
func (o *Cpu) Run(lo, hi int, kernel func(lo, hi int)) {
	if hi <= lo {
		return
	}
	n := o.nw
	if n > hi-lo {
		n = hi - lo
	}
	parallel.Range(lo, hi, n, kernel)
}

// RunReduce executes kernel over a static partition of [lo,hi) and returns
// the sum of the per-worker accumulators. The summation order of the final
// pass depends on the worker count, so results are bitwise-reproducible
// only for a fixed number of workers.
func (o *Cpu) RunReduce(lo, hi int, kernel func(lo, hi int, acc *float64)) float64 {
	if hi <= lo {
		return 0
	}
	for i := range o.slots {
		o.slots[i] = 0
	}
	n := hi - lo
	chunk := (n + o.nw - 1) / o.nw
	var wg sync.WaitGroup
	for w := 0; w < o.nw; w++ {
		s := lo + w*chunk
		if s >= hi {
			break
		}
		e := s + chunk
		if e > hi {
			e = hi
		}
		wg.Add(1)
		go func(s, e, w int) {
			defer wg.Done()
			kernel(s, e, &o.slots[w*padF64])
		}(s, e, w)
	}
	wg.Wait()
	sum := 0.0
	for w := 0; w < o.nw; w++ {
		sum += o.slots[w*padF64]
	}
	return sum
}
