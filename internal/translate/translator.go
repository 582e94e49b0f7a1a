// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate turns a decoded reflection schema into text artifacts.
package translate

import (
	"io"
	"slices"

	"github.com/cockroachdb/errors"
)

// Translator defines the interface all output formats must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "fbs", "csharp").
	Name() string

	// Translate writes the prepared schema to w. Write errors are returned
	// unchanged.
	Translate(w io.Writer, data *SchemaData) error

	// FileExtension returns the extension of the produced artifact (e.g., ".fbs").
	FileExtension() string
}

// Register maps translator names to implementations.
type Register map[string]Translator

// Add registers t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, errors.Newf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
