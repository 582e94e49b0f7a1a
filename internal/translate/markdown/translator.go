// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders a reference page documenting a schema's enums and types.
package markdown

import (
	"embed"
	"io"
	"strings"
	"text/template"

	"github.com/dacolabs/fbsdump/internal/translate"
)

//go:embed markdown.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"attributes": attributes,
	"kind":       kind,
}

var tmpl = template.Must(template.New("markdown.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.tmpl"))

// Translator writes schema documentation as markdown.
type Translator struct{}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate writes the markdown reference of data to w.
func (t *Translator) Translate(w io.Writer, data *translate.SchemaData) error {
	return tmpl.Execute(w, data)
}

func attributes(attrs []string) string {
	if len(attrs) == 0 {
		return "-"
	}
	return strings.Join(attrs, ", ")
}

func kind(def translate.TypeDef) string {
	switch {
	case def.IsStruct:
		return "struct"
	case def.Root:
		return "table, root"
	default:
		return "table"
	}
}
