// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/fbsdump/internal/session"
	"github.com/dacolabs/fbsdump/internal/translate"
	"github.com/spf13/cobra"
)

// Default translators for the two artifacts of a dump.
const (
	DefaultIDL   = "fbs"
	DefaultStubs = "csharp"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fbsdump",
		Short: "Recover FlatBuffers IDL and C# stubs from binary schemas",
		Long: `fbsdump reads binary FlatBuffers reflection schemas (.bfbs) and writes
the equivalent schema source (.fbs) together with C# partial type stubs (.cs).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registerInitCmd(rootCmd)
	rootCmd.AddCommand(newDumpCmd(translators))
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

// withSession loads the project config before the command runs.
func withSession(cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = session.PreRunLoad
	return cmd
}
