// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// A Column is a named series of values, such as the standardized
// means of one simulation.
type Column struct {
	Name   string
	Values []float64
}

// A Sheet is a named group of columns exported as one worksheet.
type Sheet struct {
	Name    string
	Columns []Column
}

func rows(cols []Column) int {
	n := 0
	for _, c := range cols {
		n = max(n, len(c.Values))
	}
	return n
}

func strof(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// CSV writes columns side by side with a header row of their names.
// Shorter columns are padded with empty cells, as are NaN values.
func CSV(w io.Writer, columns ...Column) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	entries := make([]string, len(columns))
	for r := range rows(columns) {
		for i, c := range columns {
			entries[i] = ""
			if r < len(c.Values) {
				entries[i] = strof(c.Values[r])
			}
		}
		if err := cw.Write(entries); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SummarySheet is the name of the worksheet XLSX writes sections to.
const SummarySheet = "summary"

// sheetName makes name a valid, unique worksheet name.
func sheetName(name string, used map[string]bool) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "sheet"
	}
	base := []rune(name)
	if len(base) > 31 {
		base = base[:31]
	}
	name = string(base)
	for i := 2; used[strings.ToLower(name)]; i++ {
		suffix := fmt.Sprintf("~%d", i)
		name = string(base[:min(len(base), 31-len(suffix))]) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

// XLSX writes a workbook to path. The first worksheet lists the
// sections; every sheet follows as its own worksheet with one column
// per series.
func XLSX(path string, sections []Section, sheets ...Sheet) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	used := map[string]bool{strings.ToLower(SummarySheet): true}
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return err
	}

	row := 1
	for _, s := range sections {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(SummarySheet, cell, s.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, cell, cell, bold); err != nil {
			return err
		}
		row++
		for _, r := range s.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(SummarySheet, cell, &[]any{r.Label, r.Value, r.Expected}); err != nil {
				return err
			}
			row++
		}
		for _, warn := range s.Warnings {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetCellValue(SummarySheet, cell, "warning: "+warn.Error()); err != nil {
				return err
			}
			row++
		}
		row++
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 32); err != nil {
		return err
	}

	for _, sh := range sheets {
		name := sheetName(sh.Name, used)
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		for c, col := range sh.Columns {
			cell, _ := excelize.CoordinatesToCellName(c+1, 1)
			if err := f.SetCellValue(name, cell, col.Name); err != nil {
				return err
			}
			if err := f.SetCellStyle(name, cell, cell, bold); err != nil {
				return err
			}
			for r, v := range col.Values {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				if err := f.SetCellValue(name, cell, v); err != nil {
					return err
				}
			}
		}
	}

	f.SetActiveSheet(0)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
