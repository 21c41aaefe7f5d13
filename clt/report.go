// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clt

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/econometria-libro/codigo/normality"
)

// A NormalityReport summarizes how close a StandardizedSample is to
// the standard normal distribution.
type NormalityReport struct {
	// W and P are the Shapiro-Wilk statistic and p-value. They
	// are NaN if the test could not be computed, in which case
	// Warnings says why.
	W, P float64

	// Alpha is the significance level of the decision.
	Alpha float64

	// Reject is true if P < Alpha, that is, if the hypothesis
	// that the z values are normal is rejected.
	Reject bool

	// Mean and StdDev are the sample mean and standard deviation
	// of the z values. Under the central limit theorem they
	// approach 0 and 1. StdDev is NaN for a single replication.
	Mean, StdDev float64

	// N is the number of z values.
	N int

	// Warnings is a list of warnings about this report that
	// should be shown to the user.
	Warnings []error
}

// NewReport tests z for normality at level alpha.
func NewReport(z []float64, alpha float64) NormalityReport {
	sw := normality.ShapiroWilk(z)
	r := NormalityReport{
		W:        sw.W,
		P:        sw.P,
		Alpha:    alpha,
		Reject:   sw.Reject(alpha),
		Mean:     math.NaN(),
		StdDev:   math.NaN(),
		N:        len(z),
		Warnings: sw.Warnings,
	}
	sample := stats.Sample{Xs: z}
	if len(z) > 0 {
		r.Mean = sample.Mean()
	}
	if len(z) > 1 {
		r.StdDev = sample.StdDev()
	}
	return r
}

// String summarizes the report. The general form is
// "W=0.WWWW p=0.PPPP n=N".
func (r NormalityReport) String() string {
	return normality.Result{W: r.W, P: r.P, N: r.N}.String()
}

// Decision describes the outcome of the normality test in words.
func (r NormalityReport) Decision() string {
	switch {
	case math.IsNaN(r.P):
		return "not tested"
	case r.Reject:
		return fmt.Sprintf("reject normality (p < %v)", r.Alpha)
	}
	return fmt.Sprintf("consistent with normality (p >= %v)", r.Alpha)
}
