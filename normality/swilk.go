// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normality tests whether a sample plausibly comes from a
// normal distribution.
//
// Like the other analyses in this module, a test never fails
// outright on awkward input. Conditions that make the result
// unreliable or undefined are reported as warnings in the Result and
// should be shown to the user alongside it.
package normality

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxN is the largest sample size for which the Shapiro-Wilk p-value
// approximation is calibrated. Larger samples are still tested, with
// a warning.
const MaxN = 5000

// A Result is the outcome of a normality test.
type Result struct {
	// W is the test statistic, in (0, 1]. Values close to 1
	// indicate normality. W is NaN if the test could not be
	// computed.
	W float64

	// P is the p-value of the null hypothesis that the sample is
	// drawn from a normal distribution. P is NaN if the test
	// could not be computed.
	P float64

	// N is the sample size.
	N int

	// Warnings lists conditions that make W or P unreliable.
	Warnings []error
}

// Valid reports whether the test produced a statistic and p-value.
func (r Result) Valid() bool {
	return !math.IsNaN(r.W) && !math.IsNaN(r.P)
}

// Reject reports whether normality is rejected at level alpha. A
// test that could not be computed never rejects.
func (r Result) Reject(alpha float64) bool {
	return r.Valid() && r.P < alpha
}

// String summarizes the result as "W=0.9981 p=0.3120 n=1000".
func (r Result) String() string {
	if !r.Valid() {
		return fmt.Sprintf("W=? p=? n=%d", r.N)
	}
	return fmt.Sprintf("W=%.4f p=%.4f n=%d", r.W, r.P, r.N)
}

// Coefficients of Royston's polynomial approximations (AS R94).
var (
	swG  = []float64{-2.273, 0.459}
	swC1 = []float64{0, 0.221157, -0.147981, -2.07119, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.544, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
)

// ShapiroWilk performs the Shapiro-Wilk test for normality using
// Royston's 1995 approximation of the coefficients and of the null
// distribution of W. x is not modified.
func ShapiroWilk(x []float64) Result {
	n := len(x)
	res := Result{W: math.NaN(), P: math.NaN(), N: n}
	if n < 3 {
		res.Warnings = append(res.Warnings, fmt.Errorf("need >= 3 samples for Shapiro-Wilk test, have %d", n))
		return res
	}
	if n > MaxN {
		res.Warnings = append(res.Warnings, fmt.Errorf("Shapiro-Wilk p-value may be inaccurate for n > %d", MaxN))
	}

	xs := append([]float64(nil), x...)
	sort.Float64s(xs)
	if xs[n-1]-xs[0] < 1e-19*math.Max(1, math.Abs(xs[0])) {
		res.Warnings = append(res.Warnings, fmt.Errorf("all samples are equal"))
		return res
	}

	a := coefficients(n)

	var mean float64
	for _, v := range xs {
		mean += v
	}
	mean /= float64(n)
	var ss, num float64
	for _, v := range xs {
		ss += (v - mean) * (v - mean)
	}
	for i, ai := range a {
		num += ai * (xs[n-1-i] - xs[i])
	}
	w := num * num / ss
	if w > 1 {
		w = 1
	}
	res.W = w
	res.P = pValue(w, n)
	return res
}

// coefficients returns the first n/2 Shapiro-Wilk coefficients. The
// full coefficient vector is antisymmetric, so the remaining ones are
// implied.
func coefficients(n int) []float64 {
	nn2 := n / 2
	a := make([]float64, nn2)
	if n == 3 {
		a[0] = math.Sqrt2 / 2
		return a
	}

	an := float64(n)
	an25 := an + 0.25
	m := make([]float64, nn2)
	var summ2 float64
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / an25)
		summ2 += m[i] * m[i]
	}
	summ2 *= 2
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(an)
	a1 := poly(swC1, rsn) - m[0]/ssumm2

	var i1 int
	var fac float64
	if n > 5 {
		i1 = 2
		a2 := -m[1]/ssumm2 + poly(swC2, rsn)
		fac = math.Sqrt((summ2 - 2*m[0]*m[0] - 2*m[1]*m[1]) / (1 - 2*a1*a1 - 2*a2*a2))
		a[1] = a2
	} else {
		i1 = 1
		fac = math.Sqrt((summ2 - 2*m[0]*m[0]) / (1 - 2*a1*a1))
	}
	a[0] = a1
	for i := i1; i < nn2; i++ {
		a[i] = -m[i] / fac
	}
	return a
}

func pValue(w float64, n int) float64 {
	if n == 3 {
		// Exact distribution.
		const pi6, stqr = 6 / math.Pi, math.Pi / 3
		p := pi6 * (math.Asin(math.Sqrt(w)) - stqr)
		return math.Max(p, 0)
	}

	w1 := 1 - w
	if w1 <= 0 {
		return 1
	}
	an := float64(n)
	y := math.Log(w1)
	var m, s float64
	if n <= 11 {
		gamma := poly(swG, an)
		if y >= gamma {
			return 1e-99
		}
		y = -math.Log(gamma - y)
		m = poly(swC3, an)
		s = math.Exp(poly(swC4, an))
	} else {
		xx := math.Log(an)
		m = poly(swC5, xx)
		s = math.Exp(poly(swC6, xx))
	}
	return distuv.Normal{Mu: m, Sigma: s}.Survival(y)
}

// poly evaluates c[0] + c[1]x + c[2]x² + ....
func poly(c []float64, x float64) float64 {
	r := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}
