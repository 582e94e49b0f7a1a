// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"os"

	"github.com/dacolabs/fbsdump/internal/commands"
	"github.com/dacolabs/fbsdump/internal/logger"
	"github.com/dacolabs/fbsdump/internal/translate"
	"github.com/dacolabs/fbsdump/internal/translate/csharp"
	"github.com/dacolabs/fbsdump/internal/translate/fbs"
	"github.com/dacolabs/fbsdump/internal/translate/markdown"
)

// RegisterTranslators returns every output format the CLI knows about.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&fbs.Translator{})
	translators.Add(&csharp.Translator{})
	translators.Add(&markdown.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	log, err := logger.New(os.Stderr, getenv(logger.EnvLevel))
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	rootCmd := commands.NewRootCmd(RegisterTranslators())
	return rootCmd.ExecuteContext(logger.With(ctx, log))
}
