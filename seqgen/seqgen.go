// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqgen synthesizes sets of short, noisy time series for
// exercising line renderers.
package seqgen

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-seqplot/flatten"
)

// Linspace returns p evenly spaced index positions from lo to hi,
// inclusive.
func Linspace(lo, hi float64, p int) flatten.Index {
	if p <= 0 {
		return flatten.Index{}
	}
	if p == 1 {
		return flatten.Index{lo}
	}
	return flatten.Index(vec.Linspace(lo, hi, p))
}

// Walks returns n random walks of p samples each. Each walk starts
// at 0 and each step is drawn from step.
func Walks(r *rand.Rand, n, p int, step stats.NormalDist) flatten.Matrix {
	if n <= 0 || p <= 0 {
		return flatten.Matrix{}
	}
	m := make(flatten.Matrix, n)
	for i := range m {
		seq := make([]float64, p)
		y := 0.0
		for j := range seq {
			y += step.Rand(r)
			seq[j] = y
		}
		m[i] = seq
	}
	return m
}

// Sines returns n sine waves sampled at x, each with a random phase,
// an amplitude in [0.5, 1.5), and additive noise.
func Sines(r *rand.Rand, x flatten.Index, n int, noise stats.NormalDist) flatten.Matrix {
	if n <= 0 || len(x) == 0 {
		return flatten.Matrix{}
	}
	m := make(flatten.Matrix, n)
	for i := range m {
		phase := r.Float64() * 2 * math.Pi
		amp := 0.5 + r.Float64()
		seq := make([]float64, len(x))
		for j, xj := range x {
			seq[j] = amp*math.Sin(xj+phase) + noise.Rand(r)
		}
		m[i] = seq
	}
	return m
}

// Bounds returns the minimum and maximum sample in m. If m has no
// samples, it returns NaN, NaN.
func Bounds(m flatten.Matrix) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, seq := range m {
		if len(seq) == 0 {
			continue
		}
		l, h := stats.Sample{Xs: seq}.Bounds()
		if math.IsNaN(lo) || l < lo {
			lo = l
		}
		if math.IsNaN(hi) || h > hi {
			hi = h
		}
	}
	return
}

// A Generator synthesizes an index and n sequences over [0, xmax].
type Generator func(r *rand.Rand, n, p int, xmax, sigma float64) (flatten.Index, flatten.Matrix)

var generators = map[string]Generator{
	"walk": func(r *rand.Rand, n, p int, xmax, sigma float64) (flatten.Index, flatten.Matrix) {
		return Linspace(0, xmax, p), Walks(r, n, p, stats.NormalDist{Mu: 0, Sigma: sigma})
	},
	"sine": func(r *rand.Rand, n, p int, xmax, sigma float64) (flatten.Index, flatten.Matrix) {
		x := Linspace(0, xmax, p)
		return x, Sines(r, x, n, stats.NormalDist{Mu: 0, Sigma: sigma})
	},
}

// Kinds returns the names of the registered generators in sorted
// order.
func Kinds() []string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// ByName returns the generator called name.
func ByName(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q (have %v)", name, Kinds())
	}
	return g, nil
}
