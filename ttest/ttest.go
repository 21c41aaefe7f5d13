// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ttest performs the one-sample Student t-test of a
// hypothesized population mean.
package ttest

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Result is the outcome of a two-sided one-sample t-test of
// H₀: μ = Mu0 against H₁: μ ≠ Mu0.
type Result struct {
	N int

	// Mean and StdDev are the sample mean and (n-1) standard
	// deviation. SE is StdDev/sqrt(N).
	Mean, StdDev, SE float64

	Mu0 float64

	// T is the test statistic and DoF its degrees of freedom.
	T, DoF float64

	// P is the two-sided p-value.
	P float64

	// Alpha is the significance level and Critical the critical
	// value t_{1-α/2, DoF}.
	Alpha, Critical float64

	// Reject is true if |T| > Critical, equivalently P < Alpha.
	Reject bool

	// Lo and Hi bound the 1-Alpha confidence interval for the mean.
	Lo, Hi float64
}

// OneSample tests whether x has mean mu0 at significance level alpha.
func OneSample(x []float64, mu0, alpha float64) (*Result, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("alpha must be in (0, 1), got %v", alpha)
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("need >= 2 samples for t-test, have %d", len(x))
	}
	sample := stats.Sample{Xs: x}
	t, err := stats.OneSampleTTest(sample, mu0, stats.LocationDiffers)
	if err != nil {
		return nil, fmt.Errorf("t-test: %w", err)
	}

	r := &Result{
		N:      len(x),
		Mean:   sample.Mean(),
		StdDev: sample.StdDev(),
		Mu0:    mu0,
		T:      t.T,
		DoF:    t.DoF,
		P:      t.P,
		Alpha:  alpha,
	}
	r.SE = r.StdDev / math.Sqrt(float64(r.N))
	r.Critical = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: r.DoF}.Quantile(1 - alpha/2)
	r.Reject = math.Abs(r.T) > r.Critical
	r.Lo = r.Mean - r.Critical*r.SE
	r.Hi = r.Mean + r.Critical*r.SE
	return r, nil
}

// Contains reports whether mu lies in the confidence interval.
func (r *Result) Contains(mu float64) bool {
	return r.Lo <= mu && mu <= r.Hi
}

// PDF is the density of the t distribution with r.DoF degrees of
// freedom.
func (r *Result) PDF(t float64) float64 {
	return stats.TDist{V: r.DoF}.PDF(t)
}

// Hypotheses describes the tested hypotheses.
func (r *Result) Hypotheses() (h0, h1 string) {
	return fmt.Sprintf("μ = %v", r.Mu0), fmt.Sprintf("μ ≠ %v", r.Mu0)
}
