// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders the chapter 2 results with gonum/plot.
//
// Every function writes one figure to a file whose format is taken
// from the file extension: png, jpg, pdf or svg. Missing parent
// directories are created.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DPI is the resolution of raster figures.
const DPI = 300

// Panel is the size of one panel of a figure.
var Panel = struct{ Width, Height vg.Length }{6 * vg.Inch, 5 * vg.Inch}

func red(alpha uint8) color.Color {
	return color.NRGBA{0xFF, 0, 0, alpha}
}
func green(alpha uint8) color.Color {
	return color.NRGBA{0, 0x64, 0, alpha}
}
func blue(alpha uint8) color.Color {
	return color.NRGBA{0, 0, 0xFF, alpha}
}
func lightBlue(alpha uint8) color.Color {
	return color.NRGBA{0xAD, 0xD8, 0xE6, alpha}
}

// newCanvas returns a canvas that writes the given format.
func newCanvas(format string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "svg":
		return vgsvg.New(w, h), nil
	}
	return nil, fmt.Errorf("unsupported figure format %q", format)
}

// save lays plots out in a grid, one panel per plot, and writes the
// figure to path. Rows may not be ragged.
func save(path string, plots [][]*plot.Plot) error {
	rows, cols := len(plots), len(plots[0])
	w := vg.Length(cols) * Panel.Width
	h := vg.Length(rows) * Panel.Height

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	can, err := newCanvas(format, w, h)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	}

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, draw.New(can))
	for j := range plots {
		for i, p := range plots[j] {
			p.Draw(canvases[j][i])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// blank returns an empty panel for unused grid cells.
func blank() *plot.Plot {
	p := plot.New()
	p.HideAxes()
	return p
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{0xDD}
	grid.Horizontal.Color = color.Gray{0xDD}
	p.Add(grid)
	p.Legend.Top = true
	return p
}

// addDensityHist adds a density-normalized histogram of x to p.
func addDensityHist(p *plot.Plot, x []float64, bins int) error {
	if len(x) < 2 {
		return nil
	}
	h, err := plotter.NewHist(plotter.Values(x), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)
	h.FillColor = lightBlue(0xB0)
	h.LineStyle.Color = color.Black
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)
	p.Legend.Add("histogram", h)
	return nil
}

// addCurve adds the graph of f over [lo, hi] to p.
func addCurve(p *plot.Plot, name string, f func(float64) float64, lo, hi float64, clr color.Color) *plotter.Function {
	fn := plotter.NewFunction(f)
	fn.XMin, fn.XMax = lo, hi
	fn.Samples = 200
	fn.Color = clr
	fn.Width = vg.Points(2)
	p.Add(fn)
	if name != "" {
		p.Legend.Add(name, fn)
	}
	return fn
}

// span returns [lo, hi] widened to cover x.
func span(x []float64, lo, hi float64) (float64, float64) {
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	return lo, hi
}
