// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econometria-libro/codigo/dist"
	"github.com/econometria-libro/codigo/internal/diff"
)

func cap02Output(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Logf("cap02 %s", strings.Join(args, " "))
	var out, errOut bytes.Buffer
	err = cap02(context.Background(), &out, &errOut, args)
	return out.String(), errOut.String(), err
}

func exists(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	if assert.NoError(t, err) {
		assert.NotZero(t, fi.Size(), path)
	}
}

func TestCLT(t *testing.T) {
	figures := t.TempDir()
	stdout, stderr, err := cap02Output(t, "-figures", figures, "-ext", "svg", "-m", "200", "clt")
	require.NoError(t, err)
	for _, want := range []string{"CLT: UNIFORM(0, 10)", "CLT: EXPONENTIAL(1)", "CLT: BINOMIAL(10, 0.5)", "CLT: CHISQUARED(3)", "Shapiro-Wilk p"} {
		assert.Contains(t, stdout, want)
	}
	exists(t, filepath.Join(figures, "tcl_normalidad.svg"))
	assert.Contains(t, stderr, "figure written")
}

func TestDist(t *testing.T) {
	stdout, _, err := cap02Output(t, "-figures", "", "-m", "100", "-dist", "exponential(2)", "-dist", "chisq:5", "clt", "lln")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CLT: EXPONENTIAL(2)")
	assert.Contains(t, stdout, "CLT: CHISQUARED(5)")
	assert.NotContains(t, stdout, "UNIFORM")
	// lln follows the first distribution.
	assert.Contains(t, stdout, "LAW OF LARGE NUMBERS: EXPONENTIAL(2)")
}

func TestStudy(t *testing.T) {
	stdout, _, err := cap02Output(t, "-figures", "", "-m", "50", "-runs", "5", "-dist", "normal(0,1)", "clt")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NORMALITY REJECTIONS: NORMAL(0, 1)")
	assert.Contains(t, stdout, "rejection rate")
}

func TestReproducible(t *testing.T) {
	args := []string{"-figures", "", "-seed", "5", "-m", "100", "-workers", "3", "all"}
	a, _, err := cap02Output(t, args...)
	require.NoError(t, err)
	b, _, err := cap02Output(t, args...)
	require.NoError(t, err)
	if d := diff.Diff("first", a, "second", b); d != "" {
		t.Errorf("same seed, different output:\n%s", d)
	}

	args[3] = "6"
	c, _, err := cap02Output(t, args...)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestExport(t *testing.T) {
	figures, results := t.TempDir(), t.TempDir()
	stdout, stderr, err := cap02Output(t, "-figures", figures, "-ext", "png", "-results", results, "-m", "100", "-csv", "-xlsx", "all")
	require.NoError(t, err)
	for _, want := range []string{"DESCRIPTIVE STATISTICS", "LAW OF LARGE NUMBERS", "CLT:", "MAXIMUM LIKELIHOOD", "ONE-SAMPLE T-TEST"} {
		assert.Contains(t, stdout, want)
	}
	for _, name := range []string{"distribucion_normal", "convergencia_velocidad", "tcl_normalidad", "superficie_verosimilitud", "prueba_t_ic"} {
		exists(t, filepath.Join(figures, name+".png"))
	}
	for _, name := range []string{"distribucion_normal", "ley_grandes_numeros", "teorema_central_limite", "maxima_verosimilitud", "prueba_hipotesis"} {
		exists(t, filepath.Join(results, name+".csv"))
	}
	exists(t, filepath.Join(results, WorkbookName))
	assert.Contains(t, stderr, "workbook written")

	data, err := os.ReadFile(filepath.Join(results, "teorema_central_limite.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 101)
	assert.Equal(t, `"uniform(0, 10)",exponential(1),"binomial(10, 0.5)",chisquared(3)`, lines[0])
}

func TestHTML(t *testing.T) {
	stdout, _, err := cap02Output(t, "-figures", "", "-format", "html", "ttest")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<title>"+Title+"</title>")
	assert.Contains(t, stdout, "<h2>One-sample t-test</h2>")
}

func TestUsageErrors(t *testing.T) {
	check := func(args ...string) {
		t.Helper()
		_, _, err := cap02Output(t, args...)
		var uerr *usageError
		assert.True(t, errors.As(err, &uerr), "%v: want usage error, got %v", args, err)
	}
	check()
	check("bogus")
	check("-format", "xml", "normal")
	check("-nosuchflag", "normal")
	check("-dist", "cauchy(0,1)", "clt")
	check("-n", "many", "clt")

	_, _, err := cap02Output(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestConfigErrors(t *testing.T) {
	check := func(args ...string) {
		t.Helper()
		_, _, err := cap02Output(t, append([]string{"-figures", ""}, args...)...)
		assert.True(t, dist.IsConfigError(err), "%v: want configuration error, got %v", args, err)
		var uerr *usageError
		assert.False(t, errors.As(err, &uerr))
	}
	check("-m", "0", "clt")
	check("-alpha", "1.5", "clt")
	check("-alpha", "1.5", "normal")
	check("-alpha", "0", "clt")
	check("-alpha", "-0.1", "ttest")
	check("-alpha", "0", "all")
	check("-n", "-3", "normal")
	check("-dist", "uniform(0,1)", "-n", "-1", "lln")
}

func TestExperimentNames(t *testing.T) {
	names, err := experimentNames([]string{"ttest", "all", "clt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ttest", "normal", "lln", "clt", "mle"}, names)
}

func TestAlphaCheckedFirst(t *testing.T) {
	// An invalid level fails before any experiment writes output.
	figures := t.TempDir()
	stdout, _, err := cap02Output(t, "-figures", figures, "-ext", "svg", "-m", "100", "-alpha", "0", "all")
	assert.True(t, dist.IsConfigError(err), "want configuration error, got %v", err)
	assert.Empty(t, stdout)
	entries, err := os.ReadDir(figures)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
