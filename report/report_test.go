// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/econometria-libro/codigo/clt"
	"github.com/econometria-libro/codigo/describe"
	"github.com/econometria-libro/codigo/dist"
	"github.com/econometria-libro/codigo/internal/texttab"
	"github.com/econometria-libro/codigo/lln"
	"github.com/econometria-libro/codigo/mle"
	"github.com/econometria-libro/codigo/ttest"
)

func sample() Section {
	s := Section{Title: "Sample"}
	s.Add("mean", "%.2f", 0.5).Expected = "0.00"
	s.Add("n", "%d", 10)
	s.Warnings = []error{errors.New("all samples are equal")}
	return s
}

func TestText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Text(&b, sample(), Section{Title: "Second"}))
	want := `         SAMPLE
────────────────────────
      observed  expected
mean      0.50      0.00
n           10
────────────────────────
warning: all samples are equal

SECOND
──────
──────
`
	assert.Equal(t, want, b.String())
}

func TestNum(t *testing.T) {
	check := func(x float64, want string) {
		t.Helper()
		if got := num(x); got != want {
			t.Errorf("num(%v): want %q, got %q", x, want, got)
		}
	}
	check(0, "0.0000")
	check(1.23456, "1.2346")
	check(-0.5, "-0.5000")
	check(1e-7, "1.0000e-07")
	check(2e6, "2.0000e+06")
	check(math.NaN(), "NaN")
}

func TestHTML(t *testing.T) {
	s := sample()
	s.Add("<script>", "%s", "a&b")
	var b strings.Builder
	require.NoError(t, HTML(&b, "Chapter 2", s))
	got := b.String()
	assert.Contains(t, got, "<title>Chapter 2</title>")
	assert.Contains(t, got, "<h2>Sample</h2>")
	assert.Contains(t, got, "<td class='num'>0.50<td class='num'>0.00")
	assert.Contains(t, got, "warning: all samples are equal")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "a&amp;b")
	assert.NotContains(t, got, "<script>")
}

func TestCSV(t *testing.T) {
	var b strings.Builder
	err := CSV(&b,
		Column{Name: "z", Values: []float64{1.5, -2, math.NaN()}},
		Column{Name: "mean", Values: []float64{0.25}},
	)
	require.NoError(t, err)
	assert.Equal(t, "z,mean\n1.5,0.25\n-2,\n,\n", b.String())
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{"summary": true}
	check := func(name, want string) {
		t.Helper()
		if got := sheetName(name, used); got != want {
			t.Errorf("sheetName(%q): want %q, got %q", name, want, got)
		}
	}
	check("uniform(0,10)", "uniform(0,10)")
	check("a/b:c", "a_b_c")
	check("Summary", "Summary~2")
	check("", "sheet")
	check(strings.Repeat("x", 40), strings.Repeat("x", 31))
	check(strings.Repeat("x", 40), strings.Repeat("x", 29)+"~2")
}

func TestXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cap02.xlsx")
	err := XLSX(path, []Section{sample()},
		Sheet{Name: "exponential(1)", Columns: []Column{{Name: "z", Values: []float64{1, 2, math.NaN(), 4}}}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SummarySheet, "exponential(1)"}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(summary), 4)
	assert.Equal(t, []string{"Sample"}, summary[0])
	assert.Equal(t, []string{"mean", "0.50", "0.00"}, summary[1])
	assert.Equal(t, "warning: all samples are equal", summary[3][0])

	data, err := f.GetRows("exponential(1)")
	require.NoError(t, err)
	require.Len(t, data, 5)
	assert.Equal(t, []string{"z"}, data[0])
	assert.Equal(t, []string{"1"}, data[1])
	assert.Equal(t, []string{"2"}, data[2])
	assert.Empty(t, data[3])
	assert.Equal(t, []string{"4"}, data[4])
}

func TestSections(t *testing.T) {
	ctx := context.Background()
	cr, err := clt.Simulate(ctx, dist.Exponential{Rate: 1}, clt.Config{SampleSize: 30, Replications: 200, Seed: 1})
	require.NoError(t, err)
	x, err := dist.Draw(dist.Normal{Mu: 5, Sigma: 2}, 100, 42)
	require.NoError(t, err)
	sum, err := describe.Summarize(x)
	require.NoError(t, err)
	lr, err := lln.Simulate(dist.Uniform{Low: 0, High: 10}, 1000, 1)
	require.NoError(t, err)
	fit, err := mle.FitNormal(x)
	require.NoError(t, err)
	tr, err := ttest.OneSample(x, 5, 0.05)
	require.NoError(t, err)

	check := func(s Section, title string, labels ...string) {
		t.Helper()
		assert.Contains(t, s.Title, title)
		have := map[string]bool{}
		for _, r := range s.Rows {
			have[r.Label] = true
		}
		for _, l := range labels {
			assert.True(t, have[l], "%s: missing row %q", s.Title, l)
		}
	}
	check(CLT(cr), "exponential", "sample size n", "Shapiro-Wilk p", "decision (α=0.05)")
	check(Study("study", clt.StudyResult{Runs: 10, Rejections: 1, Rate: 0.1}, 0.05), "study", "rejection rate")
	check(Describe(sum), "Descriptive", "mean", "kurtosis", "median")
	check(NormalTable(describe.StdNormalTable()), "normal", "P(Z ≤ 1.96)", "97.5% quantile")
	check(LLN(lr), "uniform", "final mean", "relative error")
	check(MLE(fit, 5, 2), "likelihood", "μ̂", "95% CI for μ", "CI contains true μ")
	check(TTest(tr), "t-test", "t", "p-value", "decision", "95% CI for μ")

	// μ = 0 has no relative error.
	lr0, err := lln.Simulate(dist.StdNormal, 100, 1)
	require.NoError(t, err)
	for _, r := range LLN(lr0).Rows {
		assert.NotEqual(t, "relative error", r.Label)
	}
}

func TestTextAlignsCombiningMarks(t *testing.T) {
	fit := &mle.Fit{N: 100, Mu: 10.1, Sigma: 1.9, StdDev: 1.91, SEMu: 0.19, SESigma: 0.135}
	var b strings.Builder
	require.NoError(t, Text(&b, MLE(fit, 10, 2)))

	// Rows with an expected value end in the same column.
	widths := map[int]string{}
	for _, line := range strings.Split(b.String(), "\n") {
		for _, label := range []string{"μ̂", "σ̂ (MLE", "s (divides"} {
			if strings.HasPrefix(line, label) {
				widths[texttab.Width(line)] = line
			}
		}
	}
	assert.Len(t, widths, 1, "misaligned rows: %q", widths)
}
