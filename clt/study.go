// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clt

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/econometria-libro/codigo/dist"
)

// A StudyResult counts how often the normality test rejected over
// repeated simulations.
type StudyResult struct {
	// Runs is the number of simulations whose normality test
	// could be computed.
	Runs int

	// Rejections is the number of those that rejected normality.
	Rejections int

	// Rate is Rejections/Runs. With a large enough sample size it
	// should be close to the significance level.
	Rate float64
}

func (s StudyResult) String() string {
	return fmt.Sprintf("%d/%d rejected (%.1f%%)", s.Rejections, s.Runs, 100*s.Rate)
}

// Study repeats Simulate runs times with seeds cfg.Seed, cfg.Seed+1,
// ... and reports the rejection rate of the normality test. Runs are
// spread over cfg.Workers goroutines; each run itself is sequential.
func Study(ctx context.Context, spec dist.Spec, cfg Config, runs int) (StudyResult, error) {
	if runs < 1 {
		return StudyResult{}, &dist.ConfigError{Field: "runs", Reason: fmt.Sprintf("must be at least 1, got %d", runs)}
	}
	cfg, err := cfg.validate()
	if err != nil {
		return StudyResult{}, err
	}
	if _, _, err := dist.Resolve(spec); err != nil {
		return StudyResult{}, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	reports := make([]NormalityReport, runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range reports {
		g.Go(func() error {
			c := cfg
			c.Seed = cfg.Seed + uint64(i)
			c.Workers = 1
			res, err := Simulate(gctx, spec, c)
			if err != nil {
				return err
			}
			reports[i] = res.Report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return StudyResult{}, err
	}

	var s StudyResult
	for _, r := range reports {
		if math.IsNaN(r.P) {
			continue
		}
		s.Runs++
		if r.Reject {
			s.Rejections++
		}
	}
	if s.Runs > 0 {
		s.Rate = float64(s.Rejections) / float64(s.Runs)
	}
	return s, nil
}
