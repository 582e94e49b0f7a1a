// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunDumpForm prompts for the values the dump command is missing: the schema
// file when files is empty and the namespace when it is blank.
func RunDumpForm(files *[]string, namespace *string) error {
	var groups []*huh.Group

	if len(*files) == 0 {
		var file string
		groups = append(groups, huh.NewGroup(
			huh.NewFilePicker().
				Title("Binary schema").
				Description("Pick the .bfbs file to dump").
				AllowedTypes([]string{".bfbs"}).
				CurrentDirectory(".").
				Value(&file),
		))
		defer func() {
			if file != "" {
				*files = []string{file}
			}
		}()
	}

	if *namespace == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Namespace").
				Placeholder("pkNX.Structures.FlatBuffers").
				Validate(namespaceValidator).
				Value(namespace),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
