// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lln

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econometria-libro/codigo/dist"
)

func TestRunningMean(t *testing.T) {
	assert.Equal(t, []float64{2, 3, 4}, RunningMean([]float64{2, 4, 6}))
	assert.Empty(t, RunningMean(nil))
}

func TestConvergence(t *testing.T) {
	// The chapter's example: N(5, 2²), 10000 draws, seed 123.
	r, err := Simulate(dist.Normal{Mu: 5, Sigma: 2}, 10000, 123)
	require.NoError(t, err)
	require.Len(t, r.Means, 10000)
	assert.Equal(t, 5.0, r.Mu)
	assert.Equal(t, r.Means[len(r.Means)-1], r.Final)
	// Four standard errors.
	assert.Less(t, r.AbsError, 4*2/math.Sqrt(10000))
	assert.InDelta(t, 100*r.AbsError/5, r.RelError, 1e-12)

	d := r.Deviation()
	assert.Len(t, d, len(r.Means))
	assert.InDelta(t, r.AbsError, d[len(d)-1], 1e-12)
}

func TestZeroMean(t *testing.T) {
	r, err := Simulate(dist.StdNormal, 10, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.RelError))
}

func TestErrors(t *testing.T) {
	_, err := Simulate(dist.Normal{Mu: 5, Sigma: -2}, 10, 1)
	assert.True(t, dist.IsConfigError(err))
	_, err = Simulate(dist.StdNormal, 0, 1)
	assert.True(t, dist.IsConfigError(err))
}
