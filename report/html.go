// Copyright 2026 The econometria-libro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/google/safehtml/template"
)

const htmlText = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
table.report { border-collapse: collapse; margin-bottom: 1.5em; }
table.report th, table.report td { padding: 0.2em 0.8em; }
table.report td.num { text-align: right; font-family: monospace; }
p.warning { color: #a40; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- range .Sections}}
{{- $expected := .Expected}}
<h2>{{.Title}}</h2>
<table class='report'>
{{if .Expected}}<tr><th><th>observed<th>expected
{{end -}}
{{range .Rows -}}
<tr><td>{{.Label}}<td class='num'>{{.Value}}{{if $expected}}<td class='num'>{{.Expected}}{{end}}
{{end -}}
</table>
{{- range .Warnings}}
<p class='warning'>warning: {{.}}</p>
{{- end}}
{{- end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlText))

type htmlSection struct {
	Title    string
	Rows     []Row
	Expected bool
	Warnings []string
}

// HTML writes sections as a standalone HTML page.
func HTML(w io.Writer, title string, sections ...Section) error {
	data := struct {
		Title    string
		Sections []htmlSection
	}{Title: title}
	for _, s := range sections {
		hs := htmlSection{Title: s.Title, Rows: s.Rows, Expected: s.hasExpected()}
		for _, warn := range s.Warnings {
			hs.Warnings = append(hs.Warnings, warn.Error())
		}
		data.Sections = append(data.Sections, hs)
	}
	return htmlTemplate.Execute(w, data)
}
