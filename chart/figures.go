// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/econometria-libro/codigo/clt"
	"github.com/econometria-libro/codigo/describe"
	"github.com/econometria-libro/codigo/lln"
	"github.com/econometria-libro/codigo/mle"
	"github.com/econometria-libro/codigo/ttest"
)

// Bins is the number of histogram bins.
const Bins = 30

var dashed = []vg.Length{vg.Points(5), vg.Points(3)}

// CLTGrid draws one panel per result, two panels per row. Each panel
// is a density histogram of the standardized sample means with the
// N(0,1) density drawn over it.
func CLTGrid(path string, results []*clt.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to plot")
	}
	const cols = 2
	var rows [][]*plot.Plot
	for i, r := range results {
		if i%cols == 0 {
			rows = append(rows, make([]*plot.Plot, 0, cols))
		}
		title := fmt.Sprintf("%s, n=%d", r.Spec, r.Config.SampleSize)
		p := newPlot(title, "z", "density")
		if err := addDensityHist(p, r.Z, Bins); err != nil {
			return err
		}
		lo, hi := span(r.Z, -4, 4)
		addCurve(p, "N(0,1)", stats.StdNormal.PDF, lo, hi, red(0xFF))
		p.X.Min, p.X.Max = lo, hi
		rows[len(rows)-1] = append(rows[len(rows)-1], p)
	}
	if last := rows[len(rows)-1]; len(last) < cols {
		rows[len(rows)-1] = append(last, blank())
	}
	return save(path, rows)
}

// NormalCheck draws two panels for x: a density histogram with the
// fitted normal density, and a normal Q-Q plot.
func NormalCheck(path string, x []float64) error {
	if len(x) < 2 {
		return fmt.Errorf("need >= 2 samples to plot, have %d", len(x))
	}
	s := stats.Sample{Xs: x}
	fitted := stats.NormalDist{Mu: s.Mean(), Sigma: s.StdDev()}

	hist := newPlot("Histogram vs. normal density", "x", "density")
	if err := addDensityHist(hist, x, Bins); err != nil {
		return err
	}
	lo, hi := span(x, fitted.Mu-4*fitted.Sigma, fitted.Mu+4*fitted.Sigma)
	addCurve(hist, fmt.Sprintf("N(%.2f, %.2f²)", fitted.Mu, fitted.Sigma), fitted.PDF, lo, hi, red(0xFF))

	qq := newPlot("Normal Q-Q plot", "theoretical quantile", "sample quantile")
	pts := describe.QQ(x)
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.Theoretical, Y: pt.Sample}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	sc.GlyphStyle.Color = blue(0xA0)
	qq.Add(sc)
	tlo, thi := pts[0].Theoretical, pts[len(pts)-1].Theoretical
	ref := addCurve(qq, "reference", func(t float64) float64 {
		return fitted.Mu + fitted.Sigma*t
	}, tlo, thi, red(0xFF))
	ref.Dashes = dashed

	return save(path, [][]*plot.Plot{{hist, qq}})
}

// Convergence draws the running mean of r against the number of draws
// and, on a log scale, its distance from the population mean.
func Convergence(path string, r *lln.Result) error {
	n := len(r.Means)
	if n == 0 {
		return fmt.Errorf("no draws to plot")
	}

	mean := newPlot("Running mean", "draws", "mean")
	line := make(plotter.XYs, n)
	for i, m := range r.Means {
		line[i] = plotter.XY{X: float64(i + 1), Y: m}
	}
	l, err := plotter.NewLine(line)
	if err != nil {
		return err
	}
	l.Color = blue(0xFF)
	mean.Add(l)
	mean.Legend.Add("sample mean", l)
	mu, err := plotter.NewLine(plotter.XYs{{X: 1, Y: r.Mu}, {X: float64(n), Y: r.Mu}})
	if err != nil {
		return err
	}
	mu.Color = red(0xFF)
	mu.Width = vg.Points(2)
	mu.Dashes = dashed
	mean.Add(mu)
	mean.Legend.Add(fmt.Sprintf("μ = %.4g", r.Mu), mu)

	dev := newPlot("Distance from μ", "draws", "|mean - μ|")
	dev.Y.Scale = plot.LogScale{}
	dev.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	var pts plotter.XYs
	for i, d := range r.Deviation() {
		// Log scale cannot show exact hits.
		if d > 0 {
			pts = append(pts, plotter.XY{X: float64(i + 1), Y: d})
		}
	}
	if len(pts) > 0 {
		dl, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		dl.Color = green(0xFF)
		dev.Add(dl)
	}

	return save(path, [][]*plot.Plot{{mean, dev}})
}

// Likelihood draws contour lines of the log-likelihood surface s and
// marks the fitted and the true parameters.
func Likelihood(path string, s *mle.Surface, fit *mle.Fit, trueMu, trueSigma float64) error {
	lo, hi := mat.Min(s.LL), mat.Max(s.LL)
	if !(hi > lo) {
		return fmt.Errorf("log-likelihood surface is flat")
	}
	levels := floats.Span(make([]float64, 22), lo, hi)
	levels = levels[1 : len(levels)-1]

	p := newPlot("Log-likelihood", "μ", "σ")
	p.Add(plotter.NewContour(s, levels, palette.Heat(len(levels), 1)))

	mark := func(name string, x, y float64, shape draw.GlyphDrawer, clr color.Color) error {
		sc, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = shape
		sc.GlyphStyle.Radius = vg.Points(5)
		sc.GlyphStyle.Color = clr
		p.Add(sc)
		p.Legend.Add(name, sc)
		return nil
	}
	if err := mark(fmt.Sprintf("MLE (%.3f, %.3f)", fit.Mu, fit.Sigma), fit.Mu, fit.Sigma, draw.CircleGlyph{}, red(0xFF)); err != nil {
		return err
	}
	if err := mark(fmt.Sprintf("true (%.3f, %.3f)", trueMu, trueSigma), trueMu, trueSigma, draw.TriangleGlyph{}, blue(0xFF)); err != nil {
		return err
	}
	return save(path, [][]*plot.Plot{{p}})
}

// RejectionRegion draws the t density of r with both rejection tails
// shaded and the observed statistic marked.
func RejectionRegion(path string, r *ttest.Result) error {
	lim := math.Max(4, math.Abs(r.T)+0.5)
	crit := r.Critical

	p := newPlot(fmt.Sprintf("t-test, %g degrees of freedom", r.DoF), "t", "density")
	addCurve(p, fmt.Sprintf("t(%g)", r.DoF), r.PDF, -lim, lim, blue(0xFF))

	tail := func(from, to float64) (*plotter.Polygon, error) {
		const steps = 50
		xs := floats.Span(make([]float64, steps), from, to)
		pts := make(plotter.XYs, 0, steps+2)
		pts = append(pts, plotter.XY{X: from, Y: 0})
		for _, x := range xs {
			pts = append(pts, plotter.XY{X: x, Y: r.PDF(x)})
		}
		pts = append(pts, plotter.XY{X: to, Y: 0})
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		poly.Color = red(0x60)
		poly.LineStyle.Width = 0
		return poly, nil
	}
	if crit < lim {
		left, err := tail(-lim, -crit)
		if err != nil {
			return err
		}
		right, err := tail(crit, lim)
		if err != nil {
			return err
		}
		p.Add(left, right)
		p.Legend.Add(fmt.Sprintf("rejection region, α=%g", r.Alpha), left)
	}

	obs, err := plotter.NewLine(plotter.XYs{{X: r.T, Y: 0}, {X: r.T, Y: r.PDF(0)}})
	if err != nil {
		return err
	}
	obs.Color = green(0xFF)
	obs.Width = vg.Points(2)
	obs.Dashes = dashed
	p.Add(obs)
	p.Legend.Add(fmt.Sprintf("t = %.3f", r.T), obs)
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min = 0

	return save(path, [][]*plot.Plot{{p}})
}
