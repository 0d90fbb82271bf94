// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements the execution backends running the solver's
// data-parallel regions: synchronous fork-join parallelism over a static
// partition of one spatial axis, with an implicit barrier at the end of
// every region
package par

import (
	"github.com/cpmech/gosl/chk"
)

// Backend runs data-parallel regions. Kernels receive a half-open index
// range [lo,hi) and must write only within it; both Run and RunReduce only
// return after all workers finished (implicit barrier).
type Backend interface {

	// Workers returns the number of parallel workers
	Workers() int

	// Run executes kernel over a partition of [lo,hi)
	Run(lo, hi int, kernel func(lo, hi int))

	// RunReduce executes kernel over a static partition of [lo,hi) and
	// returns the sum of the per-worker accumulators. Each kernel invocation
	// receives a private accumulator to add into; accumulators of distinct
	// workers never share a cache line.
	RunReduce(lo, hi int, kernel func(lo, hi int, acc *float64)) float64
}

// backendallocators holds all available backends
var backendallocators = make(map[string]func(nworkers int) Backend)

// New returns a backend by name; e.g. "cpu". nworkers ≤ 0 means use the
// number of CPUs.
func New(name string, nworkers int) (Backend, error) {
	alloc, ok := backendallocators[name]
	if !ok {
		return nil, chk.Err("cannot find backend named %q", name)
	}
	return alloc(nworkers), nil
}
