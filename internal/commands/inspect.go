// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/prompts"
	"github.com/dacolabs/fbsdump/internal/reflection"
	"github.com/dacolabs/fbsdump/internal/schema"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show a summary of a binary schema",
		Long:  `Decode a binary reflection schema and print its identifier, extension, counts and root type without writing anything.`,
		Example: `  # Show what a schema contains
  fbsdump inspect model.bfbs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := inspectFile(args[0])
			if err != nil {
				return err
			}
			prompts.PrintResult(inspectFields(g), "")
			return nil
		},
	}
	return cmd
}

func inspectFile(path string) (*schema.Graph, error) {
	buf, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	g, err := reflection.Decode(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return g, nil
}

func inspectFields(g *schema.Graph) []prompts.ResultField {
	root := g.RootTable
	if root == "" {
		root = "None Specified"
	}
	var structs int
	for _, o := range g.Objects {
		if o.IsStruct {
			structs++
		}
	}
	return []prompts.ResultField{
		{Label: "File identifier", Value: g.FileIdent},
		{Label: "File extension", Value: g.FileExt},
		{Label: "Tables", Value: strconv.Itoa(len(g.Objects) - structs)},
		{Label: "Structs", Value: strconv.Itoa(structs)},
		{Label: "Enums", Value: strconv.Itoa(len(g.Enums))},
		{Label: "Root type", Value: root},
	}
}
