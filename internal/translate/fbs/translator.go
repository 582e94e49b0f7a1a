// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package fbs renders FlatBuffers IDL (.fbs) schema documents.
package fbs

import (
	"embed"
	"io"
	"strings"
	"text/template"

	"github.com/dacolabs/fbsdump/internal/translate"
)

//go:embed fbs.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("fbs.tmpl").Funcs(template.FuncMap{
	"attributes": attributes,
}).ParseFS(tmplFS, "fbs.tmpl"))

// Translator renders a schema as a FlatBuffers IDL document with the
// FlatSharp custom attribute declarations.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "fbs"
}

// FileExtension returns the file extension for FlatBuffers schema files.
func (t *Translator) FileExtension() string {
	return ".fbs"
}

// Translate writes the IDL document to w.
func (t *Translator) Translate(w io.Writer, data *translate.SchemaData) error {
	return tmpl.ExecuteTemplate(w, "fbs.tmpl", data)
}

// attributes renders a field's flag suffix, e.g. " (required, deprecated)".
func attributes(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return " (" + strings.Join(attrs, ", ") + ")"
}
