// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clt simulates the central limit theorem.
//
// Simulate draws many independent samples from a population
// distribution, reduces each sample to its mean, and standardizes the
// means with the population's theoretical mean and standard deviation:
//
//	z_i = sqrt(n) * (mean_i - μ) / σ
//
// As the sample size n grows the z values approach a standard normal
// distribution whatever the population. The result carries a
// Shapiro-Wilk normality report on the z values.
//
// Problems that do not prevent a result (for example, too few
// replications for the normality test) are reported as warnings
// attached to the result. Errors are reserved for configurations that
// cannot be simulated at all, and those are always detected before any
// sampling happens.
package clt

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/sync/errgroup"

	"github.com/econometria-libro/codigo/dist"
)

// DefaultAlpha is the significance level used when Config.Alpha is
// zero.
const DefaultAlpha = 0.05

// A Config configures a simulation.
type Config struct {
	// SampleSize is the number of draws n averaged by each
	// replication. It must be at least 1.
	SampleSize int

	// Replications is the number of sample means m. It must be
	// at least 1.
	Replications int

	// Seed seeds the random source for the whole run.
	Seed uint64

	// Alpha is the level below which the normality test rejects.
	// Zero means DefaultAlpha.
	Alpha float64

	// Workers is the number of goroutines used to run
	// replications. If Workers <= 1 all replications draw from one
	// source, in order. Otherwise each replication draws from its
	// own source derived from Seed, so the result depends on Seed
	// but not on the number of workers.
	Workers int
}

func (c Config) validate() (Config, error) {
	if c.SampleSize < 1 {
		return c, &dist.ConfigError{Field: "sample size", Reason: fmt.Sprintf("must be at least 1, got %d", c.SampleSize)}
	}
	if c.Replications < 1 {
		return c, &dist.ConfigError{Field: "replications", Reason: fmt.Sprintf("must be at least 1, got %d", c.Replications)}
	}
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	if !(c.Alpha > 0 && c.Alpha < 1) {
		return c, &dist.ConfigError{Field: "alpha", Reason: fmt.Sprintf("must be in (0, 1), got %v", c.Alpha)}
	}
	return c, nil
}

// A StandardizedSample holds one standardized mean per replication,
// in replication order.
type StandardizedSample []float64

// A Result is the outcome of Simulate.
type Result struct {
	Spec   dist.Spec
	Config Config

	// Mu and Sigma are the theoretical moments of one draw from
	// Spec.
	Mu, Sigma float64

	Z      StandardizedSample
	Report NormalityReport
}

// Simulate runs the central limit theorem simulation for spec.
//
// It returns a *dist.ConfigError if spec or cfg are invalid. The only
// other error is ctx's, if ctx is done before the simulation finishes.
func Simulate(ctx context.Context, spec dist.Spec, cfg Config) (*Result, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	mu, sigma, err := dist.Resolve(spec)
	if err != nil {
		return nil, err
	}

	var means []float64
	if cfg.Workers <= 1 {
		means, err = sampleMeans(ctx, spec, cfg)
	} else {
		means, err = sampleMeansParallel(ctx, spec, cfg)
	}
	if err != nil {
		return nil, err
	}

	z := Standardize(means, cfg.SampleSize, mu, sigma)
	return &Result{
		Spec:   spec,
		Config: cfg,
		Mu:     mu,
		Sigma:  sigma,
		Z:      z,
		Report: NewReport(z, cfg.Alpha),
	}, nil
}

// sampleMeans draws all replications from a single source seeded once.
func sampleMeans(ctx context.Context, spec dist.Spec, cfg Config) ([]float64, error) {
	draw := spec.Sampler(dist.NewSource(cfg.Seed))
	means := make([]float64, cfg.Replications)
	buf := make([]float64, cfg.SampleSize)
	for i := range means {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		draw.Fill(buf)
		means[i] = stats.Mean(buf)
	}
	return means, nil
}

// sampleMeansParallel gives every replication its own sub-stream. The
// sub-stream seeds are drawn in replication order before any
// replication runs.
func sampleMeansParallel(ctx context.Context, spec dist.Spec, cfg Config) ([]float64, error) {
	master := rand.New(dist.NewSource(cfg.Seed))
	srcs := make([]rand.Source, cfg.Replications)
	for i := range srcs {
		srcs[i] = dist.SubSource(master)
	}

	means := make([]float64, cfg.Replications)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range means {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buf := make([]float64, cfg.SampleSize)
			spec.Sampler(srcs[i]).Fill(buf)
			means[i] = stats.Mean(buf)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return means, nil
}

// Standardize returns sqrt(n) * (means[i] - mu) / sigma for each mean.
func Standardize(means []float64, n int, mu, sigma float64) StandardizedSample {
	scale := math.Sqrt(float64(n)) / sigma
	z := make(StandardizedSample, len(means))
	for i, m := range means {
		z[i] = scale * (m - mu)
	}
	return z
}
