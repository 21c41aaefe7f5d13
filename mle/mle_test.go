// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econometria-libro/codigo/dist"
)

func TestFitNormal(t *testing.T) {
	f, err := FitNormal([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, f.N)
	assert.InDelta(t, 2.5, f.Mu, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), f.Sigma, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3), f.StdDev, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3)/2, f.SEMu, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3)/math.Sqrt(8), f.SESigma, 1e-12)

	lo, hi := f.CI(0.95)
	assert.InDelta(t, 2.5-1.959964*f.SEMu, lo, 1e-5)
	assert.InDelta(t, 2.5+1.959964*f.SEMu, hi, 1e-5)
	assert.True(t, f.Contains(2.5, 0.95))
	assert.False(t, f.Contains(10, 0.95))

	_, err = FitNormal([]float64{1})
	assert.Error(t, err)
}

func TestLogLikelihood(t *testing.T) {
	// log φ(0) = -log(2π)/2.
	assert.InDelta(t, -0.5*math.Log(2*math.Pi), LogLikelihood([]float64{0}, 0, 1), 1e-12)
	assert.InDelta(t, -math.Log(2*math.Pi)-1, LogLikelihood([]float64{1, -1}, 0, 1), 1e-12)
}

func TestSurface(t *testing.T) {
	// The chapter's example: 100 draws from N(10, 2²), seed 123.
	x, err := dist.Draw(dist.Normal{Mu: 10, Sigma: 2}, 100, 123)
	require.NoError(t, err)
	f, err := FitNormal(x)
	require.NoError(t, err)
	assert.InDelta(t, 10, f.Mu, 4*2/10.0)

	s, err := SurfaceAround(x, f, 51)
	require.NoError(t, err)
	c, r := s.Dims()
	assert.Equal(t, 51, c)
	assert.Equal(t, 51, r)
	assert.InDelta(t, f.Mu-1, s.X(0), 1e-12)
	assert.InDelta(t, f.Mu+1, s.X(50), 1e-12)
	assert.InDelta(t, f.Sigma+0.5, s.Y(50), 1e-12)
	assert.Equal(t, LogLikelihood(x, s.X(3), s.Y(7)), s.Z(3, 7))

	// The grid maximum is at the center, which is the MLE.
	mu, sigma, ll := s.Max()
	assert.InDelta(t, f.Mu, mu, 1e-9)
	assert.InDelta(t, f.Sigma, sigma, 1e-9)
	assert.InDelta(t, LogLikelihood(x, f.Mu, f.Sigma), ll, 1e-9)
}

func TestSurfaceErrors(t *testing.T) {
	x := []float64{1, 2, 3}
	check := func(muLo, muHi, sLo, sHi float64, steps int) {
		t.Helper()
		if _, err := NewSurface(x, muLo, muHi, sLo, sHi, steps); err == nil {
			t.Errorf("NewSurface(%v, %v, %v, %v, %d): want error", muLo, muHi, sLo, sHi, steps)
		}
	}
	check(0, 1, 1, 2, 1)
	check(1, 0, 1, 2, 10)
	check(0, 1, 0, 2, 10)
	check(0, 1, 2, 1, 10)
	_, err := NewSurface(nil, 0, 1, 1, 2, 10)
	assert.Error(t, err)
}
