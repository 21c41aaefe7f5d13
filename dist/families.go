// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the continuous uniform distribution on [Low, High).
type Uniform struct {
	Low, High float64
}

func (Uniform) Name() string { return "uniform" }

func (u Uniform) String() string { return fmt.Sprintf("uniform(%v, %v)", u.Low, u.High) }

func (u Uniform) Validate() error {
	if !finite(u.Low) || !finite(u.High) {
		return configErrorf("uniform", "bounds must be finite, got [%v, %v)", u.Low, u.High)
	}
	if !(u.Low < u.High) {
		return configErrorf("uniform", "low %v must be less than high %v", u.Low, u.High)
	}
	return nil
}

func (u Uniform) Moments() (mu, sigma float64) {
	w := u.High - u.Low
	return (u.Low + u.High) / 2, math.Sqrt(w * w / 12)
}

func (u Uniform) Sampler(src rand.Source) Sampler {
	return distuv.Uniform{Min: u.Low, Max: u.High, Src: src}.Rand
}

// Exponential is the exponential distribution with the given rate λ.
type Exponential struct {
	Rate float64
}

func (Exponential) Name() string { return "exponential" }

func (e Exponential) String() string { return fmt.Sprintf("exponential(%v)", e.Rate) }

func (e Exponential) Validate() error {
	if !(e.Rate > 0) || math.IsInf(e.Rate, 0) {
		return configErrorf("exponential", "rate must be positive and finite, got %v", e.Rate)
	}
	return nil
}

func (e Exponential) Moments() (mu, sigma float64) {
	return 1 / e.Rate, 1 / e.Rate
}

func (e Exponential) Sampler(src rand.Source) Sampler {
	return distuv.Exponential{Rate: e.Rate, Src: src}.Rand
}

// Binomial counts successes in Trials independent Bernoulli trials
// with success probability Probability.
type Binomial struct {
	Trials      int
	Probability float64
}

func (Binomial) Name() string { return "binomial" }

func (b Binomial) String() string { return fmt.Sprintf("binomial(%d, %v)", b.Trials, b.Probability) }

func (b Binomial) Validate() error {
	if b.Trials < 1 {
		return configErrorf("binomial", "trials must be at least 1, got %d", b.Trials)
	}
	// The degenerate endpoints have zero variance.
	if !(b.Probability > 0 && b.Probability < 1) {
		return configErrorf("binomial", "probability must be in (0, 1), got %v", b.Probability)
	}
	return nil
}

func (b Binomial) Moments() (mu, sigma float64) {
	k := float64(b.Trials)
	return k * b.Probability, math.Sqrt(k * b.Probability * (1 - b.Probability))
}

func (b Binomial) Sampler(src rand.Source) Sampler {
	return distuv.Binomial{N: float64(b.Trials), P: b.Probability, Src: src}.Rand
}

// ChiSquared is the χ² distribution with DF degrees of freedom.
type ChiSquared struct {
	DF float64
}

func (ChiSquared) Name() string { return "chisquared" }

func (c ChiSquared) String() string { return fmt.Sprintf("chisquared(%v)", c.DF) }

func (c ChiSquared) Validate() error {
	if !(c.DF > 0) || math.IsInf(c.DF, 0) {
		return configErrorf("chisquared", "degrees of freedom must be positive and finite, got %v", c.DF)
	}
	return nil
}

func (c ChiSquared) Moments() (mu, sigma float64) {
	return c.DF, math.Sqrt(2 * c.DF)
}

func (c ChiSquared) Sampler(src rand.Source) Sampler {
	return distuv.ChiSquared{K: c.DF, Src: src}.Rand
}

// Normal is the normal distribution N(Mu, Sigma²).
type Normal struct {
	Mu, Sigma float64
}

// StdNormal is N(0, 1).
var StdNormal = Normal{Mu: 0, Sigma: 1}

func (Normal) Name() string { return "normal" }

func (n Normal) String() string { return fmt.Sprintf("normal(%v, %v)", n.Mu, n.Sigma) }

func (n Normal) Validate() error {
	if !finite(n.Mu) {
		return configErrorf("normal", "mean must be finite, got %v", n.Mu)
	}
	if !(n.Sigma > 0) || math.IsInf(n.Sigma, 0) {
		return configErrorf("normal", "standard deviation must be positive and finite, got %v", n.Sigma)
	}
	return nil
}

func (n Normal) Moments() (mu, sigma float64) {
	return n.Mu, n.Sigma
}

func (n Normal) Sampler(src rand.Source) Sampler {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: src}.Rand
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
