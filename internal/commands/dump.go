// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/config"
	"github.com/dacolabs/fbsdump/internal/dump"
	"github.com/dacolabs/fbsdump/internal/logger"
	"github.com/dacolabs/fbsdump/internal/prompts"
	"github.com/dacolabs/fbsdump/internal/session"
	"github.com/dacolabs/fbsdump/internal/translate"
	"github.com/spf13/cobra"
)

type dumpOptions struct {
	namespace      string
	stripNamespace bool
	qualifiedRefs  bool
	objectOrder    string
	output         string
	jobs           int
	watch          bool
	idl            string
	stubs          string
	nonInteractive bool
}

func newDumpCmd(translators translate.Register) *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump [files...]",
		Short: "Dump binary schemas to FlatBuffers IDL and C# stubs",
		Long: fmt.Sprintf(`Decode binary reflection schemas and write one IDL file and one stub file
per input. Artifacts are named after the root table, or after the input file
when the schema declares none.

Flags override the values of fbsdump.yaml or fbsdump.toml when present.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  fbsdump dump

  # Dump a schema with short type names
  fbsdump dump model.bfbs --namespace pkNX.Structures.FlatBuffers --strip-namespace

  # Dump many schemas, four at a time, into ./out
  fbsdump dump schemas/*.bfbs -n Game.Data -o out -j 4

  # Keep dumping while the schema is rebuilt
  fbsdump dump model.bfbs -n Game.Data --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "Namespace written into the generated files")
	cmd.Flags().BoolVar(&opts.stripNamespace, "strip-namespace", false, "Drop namespace prefixes from type names")
	cmd.Flags().BoolVar(&opts.qualifiedRefs, "qualified-refs", false, "Keep full names in type references and root_type")
	cmd.Flags().StringVar(&opts.objectOrder, "object-order", "", "Order of tables and structs (reverse or declaration)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Files dumped concurrently (0 means no limit)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Dump again whenever an input file changes")
	cmd.Flags().StringVar(&opts.idl, "idl", DefaultIDL, fmt.Sprintf("IDL format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVar(&opts.stubs, "stubs", DefaultStubs, fmt.Sprintf("Stub format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Fail instead of prompting for missing values")

	return withSession(cmd)
}

func runDump(cmd *cobra.Command, translators translate.Register, opts *dumpOptions, files []string) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	cfg := *sess.Config
	applyDumpFlags(cmd, opts, &cfg)

	if len(files) == 0 || cfg.Namespace == "" {
		if opts.nonInteractive {
			return errors.New("non-interactive mode requires input files and a namespace")
		}
		if err := prompts.RunDumpForm(&files, &cfg.Namespace); err != nil {
			return err
		}
		if len(files) == 0 {
			return errors.New("no schema files selected")
		}
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}

	idl, err := translators.Get(opts.idl)
	if err != nil {
		return err
	}
	stubs, err := translators.Get(opts.stubs)
	if err != nil {
		return err
	}

	d := &dump.Dumper{
		IDL:      idl,
		Stubs:    stubs,
		Settings: cfg.Settings(),
		Log:      logger.From(cmd.Context()),
	}
	outDir := cfg.OutputDir()

	results, err := d.DumpAll(cmd.Context(), files, outDir, cfg.Jobs)
	for _, res := range results {
		if res != nil {
			printDumpResult(res)
		}
	}

	if !opts.watch {
		if err != nil {
			return errors.Wrapf(err, "failed to dump %d of %d file(s)", countFailed(results), len(files))
		}
		return nil
	}
	if err != nil {
		fmt.Println(err)
	}

	fmt.Printf("\nWatching %d file(s), press Ctrl+C to stop\n", len(files))
	return d.Watch(cmd.Context(), files, outDir, func(res *dump.Result, err error) {
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		printDumpResult(res)
	})
}

// applyDumpFlags overrides config values with the flags set on the command line.
func applyDumpFlags(cmd *cobra.Command, opts *dumpOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("namespace") {
		cfg.Namespace = opts.namespace
	}
	if flags.Changed("strip-namespace") {
		cfg.StripNamespace = opts.stripNamespace
	}
	if flags.Changed("qualified-refs") {
		cfg.QualifiedRefs = opts.qualifiedRefs
	}
	if flags.Changed("object-order") {
		cfg.ObjectOrder = opts.objectOrder
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
}

func printDumpResult(res *dump.Result) {
	root := res.Root
	if root == "" {
		root = "None Specified"
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Schema", Value: res.Source},
		{Label: "Objects", Value: strconv.Itoa(res.Objects)},
		{Label: "Enums", Value: strconv.Itoa(res.Enums)},
		{Label: "Root type", Value: root},
		{Label: "IDL", Value: res.IDLPath},
		{Label: "Stubs", Value: res.StubPath},
	}, "")
}

func countFailed(results []*dump.Result) int {
	n := 0
	for _, r := range results {
		if r == nil {
			n++
		}
	}
	return n
}
