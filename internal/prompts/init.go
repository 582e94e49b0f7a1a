// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(namespace, output, objectOrder, format *string, strip *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Namespace").
				Description("Written into every generated file").
				Placeholder("pkNX.Structures.FlatBuffers").
				Validate(namespaceValidator).
				Value(namespace),
			huh.NewConfirm().
				Title("Strip namespaces from type names?").
				Value(strip),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder(".").
				Validate(requiredValidator("output directory")).
				Value(output),
			huh.NewSelect[string]().
				Title("Object order").
				Options(
					huh.NewOption("Reverse storage order (flatc compatible)", "reverse"),
					huh.NewOption("Storage order", "declaration"),
				).
				Value(objectOrder),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Config format").
				Options(
					huh.NewOption("YAML (recommended)", "yaml"),
					huh.NewOption("TOML", "toml"),
				).
				Value(format),
		),
	).WithTheme(Theme()).Run()
}
