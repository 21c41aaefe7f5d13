// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/econometria-libro/codigo/chart"
	"github.com/econometria-libro/codigo/clt"
	"github.com/econometria-libro/codigo/describe"
	"github.com/econometria-libro/codigo/dist"
	"github.com/econometria-libro/codigo/lln"
	"github.com/econometria-libro/codigo/mle"
	"github.com/econometria-libro/codigo/normality"
	"github.com/econometria-libro/codigo/report"
	"github.com/econometria-libro/codigo/ttest"
)

// Title heads HTML output.
const Title = "Capítulo 2: Estadística Básica y Probabilidad"

// WorkbookName is the file -xlsx writes in the results directory.
const WorkbookName = "capitulo02.xlsx"

// order is the order "all" runs experiments in.
var order = []string{"normal", "lln", "clt", "mle", "ttest"}

var experiments = map[string]func(*run) error{
	"normal": runNormal,
	"lln":    runLLN,
	"clt":    runCLT,
	"mle":    runMLE,
	"ttest":  runTTest,
}

// A run collects the output of the experiments of one invocation.
type run struct {
	ctx context.Context
	opt *options
	log *slog.Logger

	sections []report.Section
	sheets   []report.Sheet
}

func (r *run) add(s ...report.Section) {
	r.sections = append(r.sections, s...)
}

// sampleSize returns the -n flag if set and def otherwise.
func (r *run) sampleSize(def int) int {
	if r.opt.n != 0 {
		return r.opt.n
	}
	return def
}

// figure draws the named figure unless figures are disabled.
func (r *run) figure(name string, draw func(path string) error) error {
	if r.opt.figures == "" {
		return nil
	}
	path := filepath.Join(r.opt.figures, name+"."+r.opt.ext)
	if err := draw(path); err != nil {
		return fmt.Errorf("figure %s: %w", name, err)
	}
	r.log.Info("figure written", "path", path)
	return nil
}

// export records columns for the workbook and, with -csv, writes them
// to a CSV file.
func (r *run) export(name string, cols ...report.Column) error {
	r.sheets = append(r.sheets, report.Sheet{Name: name, Columns: cols})
	if !r.opt.csv {
		return nil
	}
	if err := os.MkdirAll(r.opt.results, 0777); err != nil {
		return err
	}
	path := filepath.Join(r.opt.results, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.CSV(f, cols...); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	r.log.Info("data written", "path", path, "rows", len(cols[0].Values))
	return nil
}

// finish prints the collected sections and writes the workbook.
func (r *run) finish(w io.Writer) error {
	var err error
	switch r.opt.format {
	case "html":
		err = report.HTML(w, Title, r.sections...)
	default:
		err = report.Text(w, r.sections...)
	}
	if err != nil {
		return err
	}
	if r.opt.xlsx {
		path := filepath.Join(r.opt.results, WorkbookName)
		if err := report.XLSX(path, r.sections, r.sheets...); err != nil {
			return err
		}
		r.log.Info("workbook written", "path", path, "sheets", len(r.sheets)+1)
	}
	return nil
}

func runNormal(r *run) error {
	x, err := dist.Draw(dist.StdNormal, r.sampleSize(1000), r.opt.seed)
	if err != nil {
		return err
	}
	sum, err := describe.Summarize(x)
	if err != nil {
		return err
	}
	sw := normality.ShapiroWilk(x)
	test := report.Section{Title: "Shapiro-Wilk normality test", Warnings: sw.Warnings}
	test.Add("W", "%.4f", sw.W)
	test.Add("p-value", "%.4f", sw.P)
	test.Add(fmt.Sprintf("reject normality (α=%v)", r.opt.alpha), "%t", sw.Reject(r.opt.alpha))
	r.add(report.Describe(sum), report.NormalTable(describe.StdNormalTable()), test)

	if err := r.figure("distribucion_normal", func(path string) error {
		return chart.NormalCheck(path, x)
	}); err != nil {
		return err
	}
	return r.export("distribucion_normal", report.Column{Name: "x", Values: x})
}

func runLLN(r *run) error {
	spec := dist.Spec(dist.Normal{Mu: 5, Sigma: 2})
	if r.opt.dists.set {
		spec = r.opt.dists.specs[0]
	}
	res, err := lln.Simulate(spec, r.sampleSize(10000), r.opt.seed)
	if err != nil {
		return err
	}
	r.add(report.LLN(res))

	if err := r.figure("convergencia_velocidad", func(path string) error {
		return chart.Convergence(path, res)
	}); err != nil {
		return err
	}
	return r.export("ley_grandes_numeros",
		report.Column{Name: "running_mean", Values: res.Means},
		report.Column{Name: "deviation", Values: res.Deviation()},
	)
}

func runCLT(r *run) error {
	var results []*clt.Result
	var cols []report.Column
	for i, spec := range r.opt.dists.specs {
		cfg := clt.Config{
			SampleSize:   r.sampleSize(30),
			Replications: r.opt.m,
			Seed:         r.opt.seed + uint64(i),
			Alpha:        r.opt.alpha,
			Workers:      r.opt.workers,
		}
		res, err := clt.Simulate(r.ctx, spec, cfg)
		if err != nil {
			return fmt.Errorf("%v: %w", spec, err)
		}
		r.log.Debug("simulated", "dist", spec.String(), "W", res.Report.W, "p", res.Report.P)
		r.add(report.CLT(res))
		if r.opt.runs > 0 {
			st, err := clt.Study(r.ctx, spec, cfg, r.opt.runs)
			if err != nil {
				return fmt.Errorf("%v: %w", spec, err)
			}
			r.add(report.Study(fmt.Sprintf("Normality rejections: %v", spec), st, res.Config.Alpha))
		}
		results = append(results, res)
		cols = append(cols, report.Column{Name: spec.String(), Values: res.Z})
	}

	if err := r.figure("tcl_normalidad", func(path string) error {
		return chart.CLTGrid(path, results)
	}); err != nil {
		return err
	}
	return r.export("teorema_central_limite", cols...)
}

func runMLE(r *run) error {
	const mu, sigma = 10.0, 2.0
	x, err := dist.Draw(dist.Normal{Mu: mu, Sigma: sigma}, r.sampleSize(100), r.opt.seed)
	if err != nil {
		return err
	}
	fit, err := mle.FitNormal(x)
	if err != nil {
		return err
	}
	r.add(report.MLE(fit, mu, sigma))

	if err := r.figure("superficie_verosimilitud", func(path string) error {
		s, err := mle.SurfaceAround(x, fit, 60)
		if err != nil {
			return err
		}
		return chart.Likelihood(path, s, fit, mu, sigma)
	}); err != nil {
		return err
	}
	return r.export("maxima_verosimilitud", report.Column{Name: "x", Values: x})
}

func runTTest(r *run) error {
	x, err := dist.Draw(dist.Normal{Mu: 105, Sigma: 15}, r.sampleSize(25), r.opt.seed)
	if err != nil {
		return err
	}
	res, err := ttest.OneSample(x, r.opt.mu0, r.opt.alpha)
	if err != nil {
		return err
	}
	r.add(report.TTest(res))

	if err := r.figure("prueba_t_ic", func(path string) error {
		return chart.RejectionRegion(path, res)
	}); err != nil {
		return err
	}
	return r.export("prueba_hipotesis", report.Column{Name: "x", Values: x})
}
