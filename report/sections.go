// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"math"

	"github.com/econometria-libro/codigo/clt"
	"github.com/econometria-libro/codigo/describe"
	"github.com/econometria-libro/codigo/lln"
	"github.com/econometria-libro/codigo/mle"
	"github.com/econometria-libro/codigo/ttest"
)

// CLT summarizes one central limit theorem simulation.
func CLT(r *clt.Result) Section {
	s := Section{Title: fmt.Sprintf("CLT: %s", r.Spec)}
	s.Add("sample size n", "%d", r.Config.SampleSize)
	s.Add("replications m", "%d", r.Config.Replications)
	s.Add("seed", "%d", r.Config.Seed)
	s.Add("population mean μ", "%s", num(r.Mu))
	s.Add("population std dev σ", "%s", num(r.Sigma))
	s.Add("standard error σ/√n", "%s", num(r.Sigma/math.Sqrt(float64(r.Config.SampleSize))))
	s.Add("mean of z", "%s", num(r.Report.Mean)).Expected = num(0)
	s.Add("std dev of z", "%s", num(r.Report.StdDev)).Expected = num(1)
	s.Add("Shapiro-Wilk W", "%s", num(r.Report.W))
	s.Add("Shapiro-Wilk p", "%s", num(r.Report.P))
	s.Add(fmt.Sprintf("decision (α=%v)", r.Report.Alpha), "%s", r.Report.Decision())
	s.Warnings = r.Report.Warnings
	return s
}

// Study summarizes repeated normality tests of one configuration.
func Study(title string, st clt.StudyResult, alpha float64) Section {
	s := Section{Title: title}
	s.Add("runs", "%d", st.Runs)
	s.Add("rejections", "%d", st.Rejections)
	s.Add("rejection rate", "%s", num(st.Rate)).Expected = num(alpha)
	return s
}

// Describe compares a sample summary with the standard normal
// population.
func Describe(sum describe.Summary) Section {
	th := describe.Theoretical()
	s := Section{Title: "Descriptive statistics"}
	s.Add("n", "%d", sum.N)
	s.Add("mean", "%s", num(sum.Mean)).Expected = num(th.Mean)
	s.Add("std dev", "%s", num(sum.StdDev)).Expected = num(th.StdDev)
	s.Add("skewness", "%s", num(sum.Skewness)).Expected = num(th.Skewness)
	s.Add("kurtosis", "%s", num(sum.Kurtosis)).Expected = num(th.Kurtosis)
	s.Add("min", "%s", num(sum.Min))
	s.Add("Q1", "%s", num(sum.Q1))
	s.Add("median", "%s", num(sum.Median))
	s.Add("Q3", "%s", num(sum.Q3))
	s.Add("max", "%s", num(sum.Max))
	return s
}

// NormalTable lists reference values of the standard normal
// distribution.
func NormalTable(t describe.NormalTable) Section {
	s := Section{Title: "Standard normal reference values"}
	s.Add("P(Z ≤ 1.96)", "%s", num(t.BelowZ))
	s.Add("P(-1.96 ≤ Z ≤ 1.96)", "%s", num(t.Within))
	s.Add("2.5% quantile", "%s", num(t.Q025))
	s.Add("97.5% quantile", "%s", num(t.Q975))
	return s
}

// LLN summarizes a law of large numbers run.
func LLN(r *lln.Result) Section {
	s := Section{Title: fmt.Sprintf("Law of large numbers: %s", r.Spec)}
	s.Add("draws", "%d", len(r.Means))
	s.Add("final mean", "%s", num(r.Final)).Expected = num(r.Mu)
	s.Add("absolute error", "%s", num(r.AbsError))
	if !math.IsNaN(r.RelError) {
		s.Add("relative error", "%.4f%%", r.RelError)
	}
	return s
}

// MLE compares a normal fit with the parameters the data were drawn
// from.
func MLE(f *mle.Fit, trueMu, trueSigma float64) Section {
	const confidence = 0.95
	lo, hi := f.CI(confidence)
	s := Section{Title: "Maximum likelihood, normal model"}
	s.Add("n", "%d", f.N)
	s.Add("μ̂", "%s", num(f.Mu)).Expected = num(trueMu)
	s.Add("σ̂ (MLE, divides by n)", "%s", num(f.Sigma)).Expected = num(trueSigma)
	s.Add("s (divides by n-1)", "%s", num(f.StdDev)).Expected = num(trueSigma)
	s.Add("SE(μ̂)", "%s", num(f.SEMu))
	s.Add("SE(σ̂)", "%s", num(f.SESigma))
	s.Add(fmt.Sprintf("%g%% CI for μ", 100*confidence), "[%s, %s]", num(lo), num(hi))
	s.Add("CI contains true μ", "%t", f.Contains(trueMu, confidence))
	return s
}

// TTest summarizes a one-sample t-test.
func TTest(r *ttest.Result) Section {
	h0, h1 := r.Hypotheses()
	s := Section{Title: "One-sample t-test"}
	s.Add("H₀", "%s", h0)
	s.Add("H₁", "%s", h1)
	s.Add("n", "%d", r.N)
	s.Add("mean", "%s", num(r.Mean))
	s.Add("std dev", "%s", num(r.StdDev))
	s.Add("standard error", "%s", num(r.SE))
	s.Add("t", "%s", num(r.T))
	s.Add("degrees of freedom", "%g", r.DoF)
	s.Add("p-value", "%s", num(r.P))
	s.Add(fmt.Sprintf("critical value (α=%v)", r.Alpha), "±%s", num(r.Critical))
	decision := "do not reject H₀"
	if r.Reject {
		decision = "reject H₀"
	}
	s.Add("decision", "%s", decision)
	s.Add(fmt.Sprintf("%g%% CI for μ", 100*(1-r.Alpha)), "[%s, %s]", num(r.Lo), num(r.Hi))
	return s
}
