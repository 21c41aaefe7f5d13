// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mle estimates the parameters of a normal population by
// maximum likelihood.
package mle

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Fit holds the maximum likelihood estimates of a normal
// population's mean and standard deviation.
type Fit struct {
	N int

	// Mu is the MLE of the mean, the sample mean.
	Mu float64

	// Sigma is the MLE of the standard deviation, which divides
	// by n and is biased downward.
	Sigma float64

	// StdDev is the unbiased (n-1) sample standard deviation.
	StdDev float64

	// SEMu and SESigma are the asymptotic standard errors of Mu and
	// Sigma.
	SEMu, SESigma float64
}

// FitNormal fits a normal distribution to x.
func FitNormal(x []float64) (*Fit, error) {
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("need >= 2 samples to fit a normal distribution, have %d", n)
	}
	mean, sd := stat.MeanStdDev(x, nil)
	fn := float64(n)
	return &Fit{
		N:       n,
		Mu:      mean,
		Sigma:   sd * math.Sqrt((fn-1)/fn),
		StdDev:  sd,
		SEMu:    sd / math.Sqrt(fn),
		SESigma: sd / math.Sqrt(2*fn),
	}, nil
}

// CI returns the asymptotic confidence interval for the mean at the
// given confidence level, for example 0.95.
func (f *Fit) CI(confidence float64) (lo, hi float64) {
	z := stats.StdNormal.InvCDF(1 - (1-confidence)/2)
	return f.Mu - z*f.SEMu, f.Mu + z*f.SEMu
}

// Contains reports whether mu lies in the confidence interval for
// the mean at the given level.
func (f *Fit) Contains(mu, confidence float64) bool {
	lo, hi := f.CI(confidence)
	return lo <= mu && mu <= hi
}

// LogLikelihood returns the log-likelihood of x under N(mu, sigma²).
func LogLikelihood(x []float64, mu, sigma float64) float64 {
	d := distuv.Normal{Mu: mu, Sigma: sigma}
	var ll float64
	for _, v := range x {
		ll += d.LogProb(v)
	}
	return ll
}

// A Surface is the log-likelihood evaluated on a grid of (μ, σ)
// values. It implements gonum/plot's plotter.GridXYZ, with μ along
// the columns and σ along the rows.
type Surface struct {
	Mu    []float64
	Sigma []float64

	// LL[r, c] is the log-likelihood at (Mu[c], Sigma[r]).
	LL *mat.Dense
}

// NewSurface evaluates the log-likelihood of x on a steps×steps grid
// spanning [muLo, muHi] × [sigmaLo, sigmaHi].
func NewSurface(x []float64, muLo, muHi, sigmaLo, sigmaHi float64, steps int) (*Surface, error) {
	switch {
	case len(x) == 0:
		return nil, errors.New("no data for likelihood surface")
	case steps < 2:
		return nil, fmt.Errorf("need >= 2 grid steps, have %d", steps)
	case !(muLo < muHi):
		return nil, fmt.Errorf("empty μ range [%v, %v]", muLo, muHi)
	case !(sigmaLo > 0 && sigmaLo < sigmaHi):
		return nil, fmt.Errorf("σ range [%v, %v] must be positive and non-empty", sigmaLo, sigmaHi)
	}
	s := &Surface{
		Mu:    floats.Span(make([]float64, steps), muLo, muHi),
		Sigma: floats.Span(make([]float64, steps), sigmaLo, sigmaHi),
		LL:    mat.NewDense(steps, steps, nil),
	}
	for r, sigma := range s.Sigma {
		for c, mu := range s.Mu {
			s.LL.Set(r, c, LogLikelihood(x, mu, sigma))
		}
	}
	return s, nil
}

// SurfaceAround evaluates the surface on a window around fit: μ̂ ± 1
// and σ̂ ± 0.5, clipped so σ stays positive.
func SurfaceAround(x []float64, fit *Fit, steps int) (*Surface, error) {
	lo := fit.Sigma - 0.5
	if lo <= 0 {
		lo = fit.Sigma / 10
	}
	return NewSurface(x, fit.Mu-1, fit.Mu+1, lo, fit.Sigma+0.5, steps)
}

// Dims returns the number of columns and rows of the grid.
func (s *Surface) Dims() (c, r int) { return len(s.Mu), len(s.Sigma) }

// Z returns the log-likelihood at column c and row r.
func (s *Surface) Z(c, r int) float64 { return s.LL.At(r, c) }

// X returns μ for column c.
func (s *Surface) X(c int) float64 { return s.Mu[c] }

// Y returns σ for row r.
func (s *Surface) Y(r int) float64 { return s.Sigma[r] }

// Max returns the grid point with the largest log-likelihood.
func (s *Surface) Max() (mu, sigma, ll float64) {
	ll = math.Inf(-1)
	rows, cols := s.LL.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v := s.LL.At(r, c); v > ll {
				mu, sigma, ll = s.Mu[c], s.Sigma[r], v
			}
		}
	}
	return mu, sigma, ll
}
