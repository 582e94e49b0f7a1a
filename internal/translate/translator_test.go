// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "io"

type stubTranslator string

func (s stubTranslator) Name() string { return string(s) }

func (s stubTranslator) Translate(w io.Writer, _ *SchemaData) error {
	_, err := io.WriteString(w, string(s))
	return err
}

func (s stubTranslator) FileExtension() string { return "." + string(s) }
