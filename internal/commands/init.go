// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/config"
	"github.com/dacolabs/fbsdump/internal/prompts"
	"github.com/dacolabs/fbsdump/internal/session"
	"github.com/dacolabs/fbsdump/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	namespace      string
	stripNamespace bool
	output         string
	objectOrder    string
	format         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new fbsdump project",
		Long: `Initialize a new fbsdump project with a fbsdump.yaml (or fbsdump.toml)
configuration file holding the defaults of the dump command.`,
		Example: `  # Interactive mode
  fbsdump init

  # Non-interactive
  fbsdump init --namespace pkNX.Structures.FlatBuffers --non-interactive
  fbsdump init -n Game.Data --format toml --output out --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "failed to get current directory")
			}
			return runInit(cwd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "Namespace written into the generated files")
	cmd.Flags().BoolVar(&opts.stripNamespace, "strip-namespace", false, "Drop namespace prefixes from type names")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Output directory")
	cmd.Flags().StringVar(&opts.objectOrder, "object-order", string(translate.OrderReverse), "Order of tables and structs (reverse or declaration)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(config.YAML), "Config format (yaml or toml)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --namespace)")

	return cmd
}

func runInit(dir string, opts *initOptions) error {
	for _, name := range session.ConfigFileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return errors.Newf("%s already exists; project already initialized", name)
		}
	}

	if opts.nonInteractive {
		if opts.namespace == "" {
			return errors.New("non-interactive mode requires --namespace")
		}
	} else {
		if err := prompts.RunInitForm(
			&opts.namespace,
			&opts.output,
			&opts.objectOrder,
			&opts.format,
			&opts.stripNamespace,
		); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:        config.CurrentConfigVersion,
		Namespace:      opts.namespace,
		StripNamespace: opts.stripNamespace,
		ObjectOrder:    opts.objectOrder,
	}
	if opts.output != config.DefaultOutput {
		cfg.Output = opts.output
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	path := filepath.Join(dir, "fbsdump."+opts.format)
	if _, err := config.FormatOf(path); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return errors.Wrapf(err, "failed to write %s", filepath.Base(path))
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: path},
		{Label: "Namespace", Value: cfg.Namespace},
		{Label: "Output", Value: cfg.OutputDir()},
	}, "Initialization completed")
	return nil
}
