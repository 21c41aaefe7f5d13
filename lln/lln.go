// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lln illustrates the law of large numbers: the running mean
// of independent draws converges to the population mean.
package lln

import (
	"math"

	"github.com/econometria-libro/codigo/dist"
)

// A Result follows the running mean of one sequence of draws.
type Result struct {
	Spec dist.Spec

	// Mu is the population mean.
	Mu float64

	// Means[i] is the mean of the first i+1 draws.
	Means []float64

	// Final is the mean of all draws.
	Final float64

	// AbsError is |Final - Mu|.
	AbsError float64

	// RelError is 100*AbsError/|Mu|, in percent. It is NaN when Mu
	// is zero.
	RelError float64
}

// Deviation returns |Means[i] - Mu| for every i.
func (r *Result) Deviation() []float64 {
	d := make([]float64, len(r.Means))
	for i, m := range r.Means {
		d[i] = math.Abs(m - r.Mu)
	}
	return d
}

// RunningMean returns the cumulative means of x.
func RunningMean(x []float64) []float64 {
	means := make([]float64, len(x))
	var sum float64
	for i, v := range x {
		sum += v
		means[i] = sum / float64(i+1)
	}
	return means
}

// Simulate draws n values from spec with the given seed and follows
// their running mean.
func Simulate(spec dist.Spec, n int, seed uint64) (*Result, error) {
	x, err := dist.Draw(spec, n, seed)
	if err != nil {
		return nil, err
	}
	mu, _ := spec.Moments()
	means := RunningMean(x)
	r := &Result{
		Spec:     spec,
		Mu:       mu,
		Means:    means,
		Final:    means[len(means)-1],
		RelError: math.NaN(),
	}
	r.AbsError = math.Abs(r.Final - mu)
	if mu != 0 {
		r.RelError = 100 * r.AbsError / math.Abs(mu)
	}
	return r, nil
}
