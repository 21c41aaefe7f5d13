// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"strconv"
	"strings"
)

type family struct {
	params int
	build  func(p []float64) (Spec, error)
}

var families = map[string]family{
	"uniform": {2, func(p []float64) (Spec, error) {
		return Uniform{Low: p[0], High: p[1]}, nil
	}},
	"exponential": {1, func(p []float64) (Spec, error) {
		return Exponential{Rate: p[0]}, nil
	}},
	"binomial": {2, func(p []float64) (Spec, error) {
		if p[0] != math.Trunc(p[0]) {
			return nil, configErrorf("binomial", "trials must be an integer, got %v", p[0])
		}
		return Binomial{Trials: int(p[0]), Probability: p[1]}, nil
	}},
	"chisquared": {1, func(p []float64) (Spec, error) {
		return ChiSquared{DF: p[0]}, nil
	}},
	"normal": {2, func(p []float64) (Spec, error) {
		return Normal{Mu: p[0], Sigma: p[1]}, nil
	}},
}

var aliases = map[string]string{
	"unif":  "uniform",
	"exp":   "exponential",
	"binom": "binomial",
	"chisq": "chisquared",
	"chi2":  "chisquared",
	"norm":  "normal",
}

// Parse parses a distribution written as "family(p1, p2)" or
// "family:p1,p2", for example "uniform(0,10)" or "chisq:3".
// The returned Spec has been validated.
func Parse(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	var name, args string
	if i := strings.IndexAny(s, "(:"); i >= 0 {
		name, args = s[:i], s[i+1:]
		if s[i] == '(' {
			if !strings.HasSuffix(args, ")") {
				return nil, configErrorf("distribution", "missing ')' in %q", s)
			}
			args = args[:len(args)-1]
		}
	} else {
		name = s
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if canon, ok := aliases[name]; ok {
		name = canon
	}
	fam, ok := families[name]
	if !ok {
		return nil, configErrorf("distribution", "unsupported family %q", name)
	}

	var params []float64
	if strings.TrimSpace(args) != "" {
		for _, f := range strings.Split(args, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, configErrorf(name, "bad parameter %q", strings.TrimSpace(f))
			}
			params = append(params, v)
		}
	}
	if len(params) != fam.params {
		return nil, configErrorf(name, "want %d parameters, got %d", fam.params, len(params))
	}
	spec, err := fam.build(params)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Spec {
	spec, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return spec
}
