// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ttest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econometria-libro/codigo/dist"
)

func TestOneSample(t *testing.T) {
	// mean 3, s = sqrt(2.5), SE = sqrt(0.5), t = (3-1)/sqrt(0.5).
	r, err := OneSample([]float64{1, 2, 3, 4, 5}, 1, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 5, r.N)
	assert.InDelta(t, 3, r.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(0.5), r.SE, 1e-12)
	assert.InDelta(t, 2/math.Sqrt(0.5), r.T, 1e-9)
	assert.Equal(t, 4.0, r.DoF)
	// t_{0.975, 4} = 2.776445.
	assert.InDelta(t, 2.776445, r.Critical, 1e-5)
	assert.True(t, r.Reject)
	assert.Less(t, r.P, 0.05)
	assert.InDelta(t, 3-2.776445*math.Sqrt(0.5), r.Lo, 1e-5)
	assert.InDelta(t, 3+2.776445*math.Sqrt(0.5), r.Hi, 1e-5)
	assert.False(t, r.Contains(1))
	assert.True(t, r.Contains(3))

	h0, h1 := r.Hypotheses()
	assert.Equal(t, "μ = 1", h0)
	assert.Equal(t, "μ ≠ 1", h1)
}

func TestAgreement(t *testing.T) {
	// The chapter's example: 25 draws from N(105, 15²) tested
	// against μ₀ = 100. Whatever the draw, the p-value and the
	// critical value must agree on the decision, and the interval
	// must exclude μ₀ exactly when H₀ is rejected.
	for seed := uint64(0); seed < 50; seed++ {
		x, err := dist.Draw(dist.Normal{Mu: 105, Sigma: 15}, 25, seed)
		require.NoError(t, err)
		r, err := OneSample(x, 100, 0.05)
		require.NoError(t, err)
		assert.Equal(t, r.Reject, r.P < r.Alpha, "seed %d", seed)
		assert.Equal(t, r.Reject, !r.Contains(100), "seed %d", seed)
	}
}

func TestPDF(t *testing.T) {
	r := &Result{DoF: 1}
	// Cauchy density at 0.
	assert.InDelta(t, 1/math.Pi, r.PDF(0), 1e-12)
}

func TestErrors(t *testing.T) {
	_, err := OneSample([]float64{1}, 0, 0.05)
	assert.Error(t, err)
	_, err = OneSample([]float64{2, 2, 2}, 0, 0.05)
	assert.Error(t, err)
	_, err = OneSample([]float64{1, 2, 3}, 0, 0)
	assert.Error(t, err)
}
