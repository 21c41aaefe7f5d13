// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables for terminal
// reports.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	Left Align = iota
	Center
	Right
)

// Width returns the number of terminal cells s occupies. Combining
// marks take no cell and East Asian wide runes take two.
func Width(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf):
		case isWide(r):
			n += 2
		default:
			n++
		}
	}
	return n
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

func (a Align) pad(s string, w int) string {
	fill := w - Width(s)
	if fill <= 0 {
		return s
	}
	switch a {
	case Center:
		l := fill / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", fill-l)
	case Right:
		return strings.Repeat(" ", fill) + s
	}
	return s + strings.Repeat(" ", fill)
}

type lineKind int

const (
	kindCells lineKind = iota
	kindTitle
	kindRule
)

type line struct {
	kind  lineKind
	cells []string
}

// A Table accumulates titles, rows and rules and lays them out when
// formatted. Columns are separated by Sep.
//
// Most methods return the Table so calls can be chained.
type Table struct {
	// Sep separates adjacent columns. The zero value means two
	// spaces.
	Sep string

	// RuleChar is repeated to draw rules. The zero value means '─'.
	RuleChar rune

	align []Align
	lines []line
	cols  int
}

// New returns a table whose columns have the given alignments.
// Columns without an alignment are left aligned.
func New(align ...Align) *Table {
	return &Table{align: align}
}

// Title adds a line that spans the whole table, centered.
func (t *Table) Title(s string) *Table {
	t.lines = append(t.lines, line{kind: kindTitle, cells: []string{s}})
	return t
}

// Row adds a row of cells.
func (t *Table) Row(cells ...string) *Table {
	t.lines = append(t.lines, line{kind: kindCells, cells: cells})
	t.cols = max(t.cols, len(cells))
	return t
}

// Rule adds a horizontal rule across the whole table.
func (t *Table) Rule() *Table {
	t.lines = append(t.lines, line{kind: kindRule})
	return t
}

func (t *Table) alignment(col int) Align {
	if col < len(t.align) {
		return t.align[col]
	}
	return Left
}

// Format lays out the table and writes it to w. Trailing spaces are
// trimmed from every line.
func (t *Table) Format(w io.Writer) error {
	sep := t.Sep
	if sep == "" {
		sep = "  "
	}
	ruleChar := t.RuleChar
	if ruleChar == 0 {
		ruleChar = '─'
	}

	ws := make([]int, t.cols)
	for _, l := range t.lines {
		if l.kind != kindCells {
			continue
		}
		for i, c := range l.cells {
			ws[i] = max(ws[i], Width(c))
		}
	}
	total := 0
	for i, cw := range ws {
		if i > 0 {
			total += Width(sep)
		}
		total += cw
	}
	for _, l := range t.lines {
		if l.kind == kindTitle {
			total = max(total, Width(l.cells[0]))
		}
	}

	var b strings.Builder
	for _, l := range t.lines {
		b.Reset()
		switch l.kind {
		case kindTitle:
			b.WriteString(Center.pad(l.cells[0], total))
		case kindRule:
			b.WriteString(strings.Repeat(string(ruleChar), total))
		case kindCells:
			for i, c := range l.cells {
				if i > 0 {
					b.WriteString(sep)
				}
				b.WriteString(t.alignment(i).pad(c, ws[i]))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
