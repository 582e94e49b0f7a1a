// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package csharp renders empty C# partial type stubs, one per schema object.
// The stubs are attachment points for hand-written logic layered on top of
// the FlatSharp-generated data types.
package csharp

import (
	"embed"
	"io"
	"text/template"

	"github.com/dacolabs/fbsdump/internal/translate"
)

//go:embed csharp.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "csharp.tmpl"))

// Translator renders partial struct and class declarations without bodies.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "csharp"
}

// FileExtension returns the file extension for C# source files.
func (t *Translator) FileExtension() string {
	return ".cs"
}

// Translate writes the stub declarations to w.
func (t *Translator) Translate(w io.Writer, data *translate.SchemaData) error {
	return tmpl.ExecuteTemplate(w, "csharp.tmpl", data)
}
