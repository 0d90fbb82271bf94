// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a plain-text (.conf) file
package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// problem modes
const (
	Linear    = iota // linear Poisson-type problem
	Nonlinear        // nonlinear Bratu-type problem solved with FAS multigrid
	Newton           // nonlinear problem solved with Newton + linear multigrid
)

// Stencil holds the discrete differential operator as an ordered list of
// offsets and weights. W[0] is the operator centre and is reused directly by
// the smoother. The same stencil is applied at every level; geometric
// coarsening only changes the grid spacing.
type Stencil struct {
	W []float64 // weights
	X []int     // x-offsets
	Y []int     // y-offsets
	Z []int     // z-offsets
}

// Size returns the number of stencil entries
func (o *Stencil) Size() int { return len(o.W) }

// Params holds global solver data read from the config file. Params is
// read-only for the lifetime of a solve and is shared by all components.
type Params struct {

	// input data
	MaxIter int     // number of outer iterations (V-cycles or Newton steps)
	Tol     float64 // tolerance; accepted but not consulted by the solve loop
	GridDim [3]int  // interior dimensions of the finest grid
	Mode    int     // problem mode: Linear, Nonlinear or Newton
	Pre     int     // number of pre-smoothing sweeps
	Post    int     // number of post-smoothing sweeps
	Omega   float64 // relaxation factor ω
	Gamma   float64 // nonlinearity coefficient γ
	Stn     Stencil // discrete operator

	// derived
	H float64 // finest grid spacing = 1/(GridDim.y+1)
}

// Fas tells whether the multigrid cycle must use the full approximation
// scheme; i.e. whether the stencil operator carries the γ·v·exp(v) term
func (o *Params) Fas() bool { return o.Mode == Nonlinear }

// SolverType returns the key of the solver handling this mode
func (o *Params) SolverType() string {
	if o.Mode == Newton {
		return "newton"
	}
	return "mg"
}

// ModeString returns a human description of the problem mode
func (o *Params) ModeString() string {
	switch o.Mode {
	case Linear:
		return "linear"
	case Nonlinear:
		return "nonlinear"
	case Newton:
		return "newton"
	}
	return "unknown"
}

// cursor walks the whitespace-separated token stream of a config file
type cursor struct {
	toks []string // all tokens
	pos  int      // next token to be consumed
}

// next returns the next token or a named truncation error
func (o *cursor) next(name string) (tok string, err error) {
	if o.pos >= len(o.toks) {
		return "", chk.Err("config is truncated: missing value for %q", name)
	}
	tok = o.toks[o.pos]
	o.pos++
	return
}

// nextInt reads the next token as an integer
func (o *cursor) nextInt(name string) (val int, err error) {
	tok, err := o.next(name)
	if err != nil {
		return
	}
	val, e := strconv.Atoi(tok)
	if e != nil {
		return 0, chk.Err("invalid value for %q: %q is not an integer", name, tok)
	}
	return
}

// nextFloat reads the next token as a float
func (o *cursor) nextFloat(name string) (val float64, err error) {
	tok, err := o.next(name)
	if err != nil {
		return
	}
	val, e := strconv.ParseFloat(tok, 64)
	if e != nil {
		return 0, chk.Err("invalid value for %q: %q is not a number", name, tok)
	}
	return
}

// ReadParams reads params from a config file
//  Input:
//   fnamepath -- config (.conf) filename including full path
func ReadParams(fnamepath string) (o *Params, err error) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read config file %q: %v", fnamepath, err)
	}
	return ParseParams(string(b))
}

// ParseParams parses params from the contents of a config file. The stream
// holds, in fixed order: maxiter, tol, gridDim.x gridDim.y gridDim.z, mode,
// preSmoothing postSmoothing, omega gamma, then n stencil weights followed by
// n x-offsets, n y-offsets and n z-offsets. n is implied by the number of
// remaining tokens.
func ParseParams(text string) (o *Params, err error) {

	// read fixed fields
	cur := cursor{toks: strings.Fields(text)}
	o = new(Params)
	if o.MaxIter, err = cur.nextInt("maxiter"); err != nil {
		return nil, err
	}
	if o.Tol, err = cur.nextFloat("tol"); err != nil {
		return nil, err
	}
	for i, name := range []string{"gridDim.x", "gridDim.y", "gridDim.z"} {
		if o.GridDim[i], err = cur.nextInt(name); err != nil {
			return nil, err
		}
	}
	if o.Mode, err = cur.nextInt("mode"); err != nil {
		return nil, err
	}
	if o.Pre, err = cur.nextInt("preSmoothing"); err != nil {
		return nil, err
	}
	if o.Post, err = cur.nextInt("postSmoothing"); err != nil {
		return nil, err
	}
	if o.Omega, err = cur.nextFloat("omega"); err != nil {
		return nil, err
	}
	if o.Gamma, err = cur.nextFloat("gamma"); err != nil {
		return nil, err
	}

	// read stencil; the remaining tokens form 4 blocks of the same length
	rem := len(cur.toks) - cur.pos
	if rem == 0 {
		return nil, chk.Err("config is truncated: missing stencil")
	}
	if rem%4 != 0 {
		return nil, chk.Err("stencil needs 4n values (n weights, then n x,y,z-offsets); got %d", rem)
	}
	n := rem / 4
	o.Stn.W = make([]float64, n)
	o.Stn.X = make([]int, n)
	o.Stn.Y = make([]int, n)
	o.Stn.Z = make([]int, n)
	for i := 0; i < n; i++ {
		if o.Stn.W[i], err = cur.nextFloat("stencil weight"); err != nil {
			return nil, err
		}
	}
	for _, blk := range []struct {
		name string
		offs []int
	}{{"stencil x-offset", o.Stn.X}, {"stencil y-offset", o.Stn.Y}, {"stencil z-offset", o.Stn.Z}} {
		for i := 0; i < n; i++ {
			if blk.offs[i], err = cur.nextInt(blk.name); err != nil {
				return nil, err
			}
		}
	}

	// check and set derived data
	if err = o.check(); err != nil {
		return nil, err
	}
	o.H = 1.0 / float64(o.GridDim[1]+1)
	return
}

// check validates input values
func (o *Params) check() error {
	if o.MaxIter < 1 {
		return chk.Err("maxiter must be positive; got %d", o.MaxIter)
	}
	for i, d := range o.GridDim {
		if d < 1 {
			return chk.Err("gridDim.%c must be positive; got %d", "xyz"[i], d)
		}
	}
	if o.Mode != Linear && o.Mode != Nonlinear && o.Mode != Newton {
		return chk.Err("invalid mode %d; must be 0 (linear), 1 (nonlinear) or 2 (newton)", o.Mode)
	}
	if o.Pre < 0 || o.Post < 0 {
		return chk.Err("smoothing sweep counts must be non-negative; got pre=%d post=%d", o.Pre, o.Post)
	}
	if o.Omega <= 0 {
		return chk.Err("omega must be positive; got %g", o.Omega)
	}
	if o.Stn.W[0] == 0 {
		return chk.Err("stencil centre weight (first weight) must be nonzero")
	}
	if o.Stn.X[0] != 0 || o.Stn.Y[0] != 0 || o.Stn.Z[0] != 0 {
		return chk.Err("first stencil entry must be the centre; got offsets (%d,%d,%d)",
			o.Stn.X[0], o.Stn.Y[0], o.Stn.Z[0])
	}
	return nil
}
