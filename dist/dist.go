// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist describes the population distributions sampled by the
// chapter 2 simulations.
//
// Each distribution family is a distinct type implementing Spec. A
// Spec knows how to validate its own parameters, how to compute the
// theoretical mean and standard deviation of a single draw, and how to
// produce draws from an explicitly supplied random source. There is no
// package-level random state: every simulation owns its source.
package dist

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// A Spec identifies a distribution family and its parameters.
type Spec interface {
	// Name returns the family name, for example "uniform".
	Name() string

	// String returns the family and its parameters, for example
	// "uniform(0, 10)".
	String() string

	// Validate reports whether the parameters are in the family's
	// domain. It returns a *ConfigError if they are not.
	Validate() error

	// Moments returns the theoretical mean and standard deviation
	// of a single draw. The result is only meaningful if Validate
	// returns nil.
	Moments() (mu, sigma float64)

	// Sampler returns a function that draws from this
	// distribution using src.
	Sampler(src rand.Source) Sampler
}

// A Sampler returns one draw per call.
type Sampler func() float64

// Fill draws len(dst) values into dst.
func (s Sampler) Fill(dst []float64) {
	for i := range dst {
		dst[i] = s()
	}
}

// A ConfigError reports a parameter or setting that makes a
// simulation impossible to run. It is always returned before any
// sampling happens.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// IsConfigError reports whether any error in err's chain is a
// *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func configErrorf(field, format string, args ...interface{}) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Resolve validates s and returns its theoretical moments. It fails if
// the standard deviation is not strictly positive and finite, since
// standardizing by it would be undefined.
func Resolve(s Spec) (mu, sigma float64, err error) {
	if s == nil {
		return 0, 0, configErrorf("distribution", "no distribution given")
	}
	if err := s.Validate(); err != nil {
		return 0, 0, err
	}
	mu, sigma = s.Moments()
	if !(sigma > 0) || math.IsInf(sigma, 0) || math.IsNaN(mu) || math.IsInf(mu, 0) {
		return 0, 0, configErrorf(s.Name(), "theoretical moments μ=%v σ=%v cannot standardize", mu, sigma)
	}
	return mu, sigma, nil
}

// pcgIncrement is the second PCG seed word used by NewSource.
const pcgIncrement = 0xda3e39cb94b95bdb

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, pcgIncrement)
}

// SubSource derives an independent source from r. Successive calls
// with the same r return sources in a reproducible order.
func SubSource(r *rand.Rand) rand.Source {
	return rand.NewPCG(r.Uint64(), r.Uint64())
}

// Draw validates spec and returns n draws from it using a source
// seeded with seed.
func Draw(spec Spec, n int, seed uint64) ([]float64, error) {
	if _, _, err := Resolve(spec); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, configErrorf("sample size", "must be at least 1, got %d", n)
	}
	x := make([]float64, n)
	spec.Sampler(NewSource(seed)).Fill(x)
	return x, nil
}
