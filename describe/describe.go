// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package describe computes descriptive statistics of a sample and
// compares them with the standard normal distribution.
package describe

import (
	"errors"
	"sort"

	"github.com/aclements/go-moremath/stats"
	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// A Summary describes a sample.
type Summary struct {
	N int

	Mean, StdDev float64

	// Skewness is the sample skewness, 0 for a normal population.
	Skewness float64

	// Kurtosis is the (non-excess) sample kurtosis, 3 for a normal
	// population.
	Kurtosis float64

	Min, Q1, Median, Q3, Max float64
}

// Summarize describes x. The standard deviation uses the n-1
// denominator. x is not modified.
func Summarize(x []float64) (Summary, error) {
	if len(x) == 0 {
		return Summary{}, errors.New("cannot summarize an empty sample")
	}
	s := Summary{N: len(x)}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	s.Skewness = stat.Skew(x, nil)
	s.Kurtosis = stat.ExKurtosis(x, nil) + 3

	var err error
	if s.Min, err = mstats.Min(x); err != nil {
		return Summary{}, err
	}
	if s.Max, err = mstats.Max(x); err != nil {
		return Summary{}, err
	}
	if s.Median, err = mstats.Median(x); err != nil {
		return Summary{}, err
	}
	if len(x) == 1 {
		s.Q1, s.Q3 = s.Median, s.Median
		return s, nil
	}
	qs, err := mstats.Quartile(x)
	if err != nil {
		return Summary{}, err
	}
	s.Q1, s.Q3 = qs.Q1, qs.Q3
	return s, nil
}

// Theoretical returns the values Summary's moments take for a
// standard normal population.
func Theoretical() Summary {
	return Summary{Mean: 0, StdDev: 1, Skewness: 0, Kurtosis: 3}
}

// A NormalTable holds reference probabilities and quantiles of the
// standard normal distribution.
type NormalTable struct {
	// BelowZ is P(Z <= 1.96).
	BelowZ float64
	// Within is P(-1.96 <= Z <= 1.96).
	Within float64
	// Q025 and Q975 are the 2.5% and 97.5% quantiles.
	Q025, Q975 float64
}

// StdNormalTable computes the reference values printed next to a
// normality check.
func StdNormalTable() NormalTable {
	z := stats.StdNormal
	return NormalTable{
		BelowZ: z.CDF(1.96),
		Within: z.CDF(1.96) - z.CDF(-1.96),
		Q025:   z.InvCDF(0.025),
		Q975:   z.InvCDF(0.975),
	}
}

// A Point is one point of a Q-Q plot.
type Point struct {
	// Theoretical is the standard normal quantile.
	Theoretical float64
	// Sample is the corresponding order statistic.
	Sample float64
}

// QQ returns the normal Q-Q points of x, pairing the i'th order
// statistic with the standard normal quantile at Blom's plotting
// position (i - 3/8) / (n + 1/4).
func QQ(x []float64) []Point {
	xs := append([]float64(nil), x...)
	sort.Float64s(xs)
	n := float64(len(xs))
	pts := make([]Point, len(xs))
	for i, v := range xs {
		p := (float64(i+1) - 0.375) / (n + 0.25)
		pts[i] = Point{Theoretical: stats.StdNormal.InvCDF(p), Sample: v}
	}
	return pts
}
