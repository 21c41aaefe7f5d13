// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Scaffold creates the directory layout of the book's code repository.
//
// Usage:
//
//	scaffold [-root dir] [-html]
//
// It creates one directory per chapter, each with scripts, notebooks,
// datos, figuras and resultados subdirectories and a README.md, plus
// the shared directories datos_comunes, utilidades, ejercicios and
// recursos. Running it again regenerates the READMEs and leaves every
// other file alone.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"

	"github.com/econometria-libro/codigo/scaffold"
)

var exit = os.Exit // replaced during testing

func main() {
	if err := scaffoldMain(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			exit(0)
			return
		}
		fmt.Fprintf(os.Stderr, "scaffold: %v\n", err)
		exit(1)
	}
}

func scaffoldMain(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("scaffold", flag.ContinueOnError)
	flags.SetOutput(stderr)
	root := flags.String("root", ".", "create the layout under `dir`")
	html := flags.Bool("html", false, "also render each README as HTML")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return fmt.Errorf("unexpected arguments %q", flags.Args())
	}

	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		TimeFormat: "15:04:05",
		NoColor:    stderr != io.Writer(os.Stderr),
	}))
	dirs, err := scaffold.Create(*root, scaffold.Options{
		HTML: *html,
		Created: func(dir string) {
			logger.Debug("created", "dir", dir)
		},
	})
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		rel, err := filepath.Rel(*root, dir)
		if err != nil {
			rel = dir
		}
		fmt.Fprintf(stdout, "%s/\n", filepath.ToSlash(rel))
	}
	logger.Info("layout created", "root", *root, "chapters", len(scaffold.Chapters), "dirs", len(dirs))
	return nil
}
