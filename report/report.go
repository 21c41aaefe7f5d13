// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats simulation results for the terminal, for
// HTML pages and for spreadsheets.
//
// Results are first turned into Sections of labeled values. The same
// Sections can then be written as text, HTML or the summary sheet of
// a workbook.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/econometria-libro/codigo/internal/texttab"
)

// A Row is one labeled value of a Section.
type Row struct {
	Label string
	Value string

	// Expected is the value theory predicts, if any.
	Expected string
}

// A Section is a titled group of rows.
type Section struct {
	Title string
	Rows  []Row

	// Warnings are printed after the rows.
	Warnings []error
}

// Add appends a row whose value is formatted with fmt.Sprintf.
func (s *Section) Add(label, format string, args ...any) *Row {
	s.Rows = append(s.Rows, Row{Label: label, Value: fmt.Sprintf(format, args...)})
	return &s.Rows[len(s.Rows)-1]
}

// hasExpected reports whether any row of s carries an expected value.
func (s *Section) hasExpected() bool {
	for _, r := range s.Rows {
		if r.Expected != "" {
			return true
		}
	}
	return false
}

// num formats a statistic for display.
func num(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case x != 0 && (math.Abs(x) < 1e-4 || math.Abs(x) >= 1e6):
		return fmt.Sprintf("%.4e", x)
	}
	return fmt.Sprintf("%.4f", x)
}

// Text writes sections as fixed-width tables, separated by blank
// lines.
func Text(w io.Writer, sections ...Section) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		tab := texttab.New(texttab.Left, texttab.Right, texttab.Right)
		tab.Title(strings.ToUpper(s.Title)).Rule()
		if s.hasExpected() {
			tab.Row("", "observed", "expected")
		}
		for _, r := range s.Rows {
			tab.Row(r.Label, r.Value, r.Expected)
		}
		tab.Rule()
		if err := tab.Format(w); err != nil {
			return err
		}
		for _, warn := range s.Warnings {
			if _, err := fmt.Fprintf(w, "warning: %v\n", warn); err != nil {
				return err
			}
		}
	}
	return nil
}
