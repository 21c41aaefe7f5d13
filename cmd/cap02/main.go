// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cap02 runs the simulations of chapter 2, Basic Statistics and
// Probability.
//
// Usage:
//
//	cap02 [flags] experiment...
//
// Each experiment prints a summary table to standard output and, unless
// -figures is empty, writes a figure:
//
//	normal  draws from N(0,1) and compares sample statistics with theory
//	lln     follows the running mean of one long sequence of draws
//	clt     standardizes sample means and tests them for normality
//	mle     fits a normal model by maximum likelihood
//	ttest   runs a two-sided one-sample t-test
//	all     all of the above, in this order
//
// The clt experiment simulates every distribution given with -dist,
// which may be repeated. A distribution is written as family(params),
// for example "uniform(0,10)", "exponential(1)", "binomial(10,0.5)",
// "chisquared(3)" or "normal(0,1)". The lln experiment uses the first
// -dist if any is given.
//
// Defaults for -seed, -workers, -figures and -results are read from
// the environment variables CAP02_SEED, CAP02_WORKERS, CAP02_FIGURES
// and CAP02_RESULTS, which may also be set in a .env file in the
// current directory. CAP02_LOG_LEVEL sets the log level.
//
// Cap02 exits with status 1 if the configuration is invalid and with
// status 2 on a usage error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/econometria-libro/codigo/dist"
	"github.com/econometria-libro/codigo/internal/config"
)

var exit = os.Exit // replaced during testing

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cap02(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		exit(0)
		return
	}
	fmt.Fprintf(os.Stderr, "cap02: %v\n", err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		exit(2)
		return
	}
	exit(1)
}

// A usageError reports bad command-line syntax.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{fmt.Errorf(format, args...)}
}

// defaultDists are simulated by clt unless -dist is given.
var defaultDists = []dist.Spec{
	dist.Uniform{Low: 0, High: 10},
	dist.Exponential{Rate: 1},
	dist.Binomial{Trials: 10, Probability: 0.5},
	dist.ChiSquared{DF: 3},
}

// distFlag is a repeatable -dist flag. The first use replaces the
// defaults.
type distFlag struct {
	specs []dist.Spec
	set   bool
}

func (f *distFlag) String() string {
	names := make([]string, len(f.specs))
	for i, s := range f.specs {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}

func (f *distFlag) Set(s string) error {
	spec, err := dist.Parse(s)
	if err != nil {
		return err
	}
	if !f.set {
		f.specs, f.set = nil, true
	}
	f.specs = append(f.specs, spec)
	return nil
}

type options struct {
	seed    uint64
	n, m    int
	runs    int
	workers int
	alpha   float64
	mu0     float64
	dists   distFlag

	figures, ext string
	results      string
	format       string
	xlsx, csv    bool
}

func cap02(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	opt := options{dists: distFlag{specs: slices.Clone(defaultDists)}}
	flags := flag.NewFlagSet("cap02", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: cap02 [flags] {normal|lln|clt|mle|ttest|all}...\n\n")
		flags.PrintDefaults()
	}
	flags.Uint64Var(&opt.seed, "seed", cfg.Seed, "random `seed`")
	flags.IntVar(&opt.n, "n", 0, "sample `size`; 0 uses each experiment's default")
	flags.IntVar(&opt.m, "m", 1000, "CLT `replications`")
	flags.IntVar(&opt.runs, "runs", 0, "repeat each CLT simulation `count` times and report the rejection rate")
	flags.IntVar(&opt.workers, "workers", cfg.Workers, "simulate replications on `count` goroutines")
	flags.Float64Var(&opt.alpha, "alpha", 0.05, "significance `level`")
	flags.Float64Var(&opt.mu0, "mu0", 100, "t-test null hypothesis `mean`")
	flags.Var(&opt.dists, "dist", "CLT `distribution` (repeatable)")
	flags.StringVar(&opt.figures, "figures", cfg.FiguresDir, "write figures to `dir`; empty disables figures")
	flags.StringVar(&opt.ext, "ext", "pdf", "figure `format`: pdf, png, svg or jpg")
	flags.StringVar(&opt.results, "results", cfg.ResultsDir, "write exported data to `dir`")
	flags.StringVar(&opt.format, "format", "text", "output `format`: text or html")
	flags.BoolVar(&opt.xlsx, "xlsx", false, "export results to an Excel workbook")
	flags.BoolVar(&opt.csv, "csv", false, "export simulated data as CSV")
	verbose := flags.Bool("v", false, "log debug messages")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &usageError{err}
	}

	if opt.format != "text" && opt.format != "html" {
		flags.Usage()
		return usagef("unknown format %q", opt.format)
	}
	names, err := experimentNames(flags.Args())
	if err != nil {
		flags.Usage()
		return err
	}
	if !(opt.alpha > 0 && opt.alpha < 1) {
		return &dist.ConfigError{Field: "alpha", Reason: fmt.Sprintf("must be in (0, 1), got %v", opt.alpha)}
	}

	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    stderr != io.Writer(os.Stderr),
	}))

	r := &run{ctx: ctx, opt: &opt, log: logger}
	for _, name := range names {
		logger.Debug("running experiment", "name", name, "seed", opt.seed)
		if err := experiments[name](r); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return r.finish(stdout)
}

// experimentNames validates and expands the experiment arguments.
func experimentNames(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, usagef("no experiment given")
	}
	var names []string
	for _, a := range args {
		switch {
		case a == "all":
			names = append(names, order...)
		case experiments[a] != nil:
			names = append(names, a)
		default:
			return nil, usagef("unknown experiment %q", a)
		}
	}
	// Run each experiment once, keeping first occurrences.
	seen := map[string]bool{}
	return slices.DeleteFunc(names, func(n string) bool {
		dup := seen[n]
		seen[n] = true
		return dup
	}), nil
}
