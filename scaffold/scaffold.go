// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaffold creates the directory layout of the book's code
// repository: one directory per chapter plus a few shared ones.
//
// Create may be run repeatedly. Existing files other than the
// generated READMEs are left alone.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Subdirs are created in every chapter directory.
var Subdirs = []string{"scripts", "notebooks", "datos", "figuras", "resultados"}

// Shared are created next to the chapter directories.
var Shared = []string{"datos_comunes", "utilidades", "ejercicios", "recursos"}

// Options control Create.
type Options struct {
	// HTML also renders each README.md to README.html.
	HTML bool

	// Created, if non-nil, is called with each chapter or shared
	// directory after it is populated.
	Created func(dir string)
}

var readmeTemplate = template.Must(template.New("README.md").Parse(`# Capítulo {{.Num}}: {{.Title}}

## Descripción

{{.Description}}

## Contenido

- ` + "`scripts/`" + ` programas del capítulo
- ` + "`notebooks/`" + ` cuadernos interactivos
- ` + "`datos/`" + ` datos específicos del capítulo
- ` + "`figuras/`" + ` gráficos generados
- ` + "`resultados/`" + ` tablas y exportaciones

## Inicio rápido

` + "```" + `bash
cd {{.Dir}}/scripts/
` + "```" + `

## Enlaces

- [Capítulo anterior](../{{.Prev.Dir}}/)
- [Capítulo siguiente](../{{.Next.Dir}}/)
- [Datos comunes](../datos_comunes/)

## Reportar problemas

Abre un issue con la etiqueta ` + "`capitulo-{{.Num}}`" + `.
`))

type readmeData struct {
	Chapter
	Prev, Next Chapter
}

// neighbors returns the chapters before and after Chapters[i]. The
// first and last chapters are their own neighbors.
func neighbors(i int) (prev, next Chapter) {
	return Chapters[max(i-1, 0)], Chapters[min(i+1, len(Chapters)-1)]
}

// README returns the generated README.md of Chapters[i].
func README(i int) ([]byte, error) {
	prev, next := neighbors(i)
	var buf bytes.Buffer
	if err := readmeTemplate.Execute(&buf, readmeData{Chapters[i], prev, next}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderHTML renders markdown md as a complete HTML page.
func renderHTML(title string, md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(md, p, r)
}

// Create lays out the repository under root and returns the
// directories it populated, chapters first.
func Create(root string, opts Options) ([]string, error) {
	var dirs []string
	done := func(dir string) {
		dirs = append(dirs, dir)
		if opts.Created != nil {
			opts.Created(dir)
		}
	}

	for i, c := range Chapters {
		dir := filepath.Join(root, c.Dir())
		for _, sub := range Subdirs {
			if err := os.MkdirAll(filepath.Join(dir, sub), 0777); err != nil {
				return dirs, err
			}
			if err := touch(filepath.Join(dir, sub, ".gitkeep")); err != nil {
				return dirs, err
			}
		}
		md, err := README(i)
		if err != nil {
			return dirs, fmt.Errorf("%s: %w", c.Dir(), err)
		}
		if err := os.WriteFile(filepath.Join(dir, "README.md"), md, 0666); err != nil {
			return dirs, err
		}
		if opts.HTML {
			page := renderHTML(fmt.Sprintf("Capítulo %d: %s", c.Num, c.Title), md)
			if err := os.WriteFile(filepath.Join(dir, "README.html"), page, 0666); err != nil {
				return dirs, err
			}
		}
		done(dir)
	}

	for _, name := range Shared {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0777); err != nil {
			return dirs, err
		}
		done(dir)
	}
	return dirs, nil
}

// touch creates an empty file at path unless one exists.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if errors.Is(err, fs.ErrExist) {
		return nil
	} else if err != nil {
		return err
	}
	return f.Close()
}
