// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestMoments(t *testing.T) {
	check := func(s Spec, wantMu, wantSigma float64) {
		t.Helper()
		mu, sigma, err := Resolve(s)
		if err != nil {
			t.Errorf("%v: unexpected error %v", s, err)
			return
		}
		if math.Abs(mu-wantMu) > 1e-12 || math.Abs(sigma-wantSigma) > 1e-12 {
			t.Errorf("%v: got μ=%v σ=%v, want μ=%v σ=%v", s, mu, sigma, wantMu, wantSigma)
		}
	}
	check(Uniform{0, 10}, 5, math.Sqrt(100.0/12))
	check(Uniform{0, 1}, 0.5, math.Sqrt(1.0/12))
	check(Exponential{1}, 1, 1)
	check(Exponential{4}, 0.25, 0.25)
	check(Binomial{10, 0.5}, 5, math.Sqrt(2.5))
	check(ChiSquared{3}, 3, math.Sqrt(6))
	check(Normal{5, 2}, 5, 2)
}

func TestValidate(t *testing.T) {
	bad := []Spec{
		Uniform{10, 0},
		Uniform{1, 1},
		Uniform{math.Inf(-1), 0},
		Exponential{0},
		Exponential{-1},
		Binomial{10, 1.5},
		Binomial{10, 0},
		Binomial{10, 1},
		Binomial{0, 0.5},
		ChiSquared{0},
		ChiSquared{math.NaN()},
		Normal{0, 0},
		Normal{math.NaN(), 1},
	}
	for _, s := range bad {
		_, _, err := Resolve(s)
		if !IsConfigError(err) {
			t.Errorf("%v: want configuration error, got %v", s, err)
		}
	}
	_, _, err := Resolve(nil)
	assert.True(t, IsConfigError(err))
}

func TestParse(t *testing.T) {
	check := func(in string, want Spec) {
		t.Helper()
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			return
		}
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
	check("uniform(0,10)", Uniform{0, 10})
	check(" Uniform( 0 , 10 ) ", Uniform{0, 10})
	check("exp(1)", Exponential{1})
	check("binom:10,0.5", Binomial{10, 0.5})
	check("chisq(3)", ChiSquared{3})
	check("chi2:3", ChiSquared{3})
	check("normal(5,2)", Normal{5, 2})

	for _, in := range []string{
		"cauchy(0,1)",
		"uniform(0)",
		"uniform(0,10",
		"binomial(10,1.5)",
		"binomial(2.5,0.5)",
		"exp(x)",
		"",
	} {
		_, err := Parse(in)
		if !IsConfigError(err) {
			t.Errorf("Parse(%q): want configuration error, got %v", in, err)
		}
	}
}

func TestSamplerReproducible(t *testing.T) {
	for _, s := range []Spec{Uniform{0, 10}, Exponential{1}, Binomial{10, 0.5}, ChiSquared{3}, StdNormal} {
		a := make([]float64, 100)
		b := make([]float64, 100)
		s.Sampler(NewSource(123)).Fill(a)
		s.Sampler(NewSource(123)).Fill(b)
		assert.Equal(t, a, b, "%v", s)

		c := make([]float64, 100)
		s.Sampler(NewSource(124)).Fill(c)
		assert.NotEqual(t, a, c, "%v", s)
	}
}

func TestSamplerMoments(t *testing.T) {
	// Empirical moments of a large sample should be close to the
	// theoretical ones.
	for _, s := range []Spec{Uniform{0, 10}, Exponential{1}, Binomial{10, 0.5}, ChiSquared{3}, Normal{5, 2}} {
		mu, sigma, err := Resolve(s)
		require.NoError(t, err)
		x := make([]float64, 200000)
		s.Sampler(NewSource(1)).Fill(x)
		m, sd := stat.MeanStdDev(x, nil)
		assert.InDelta(t, mu, m, 0.02*sigma*5, "%v mean", s)
		assert.InDelta(t, sigma, sd, 0.02*sigma*5, "%v stddev", s)
	}
}
