// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/config"
)

var (
	// ErrNotInitialized indicates no project config was found in the directory.
	ErrNotInitialized = errors.New("not in an fbsdump project (fbsdump.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileNames lists the accepted config file names, in lookup order.
var ConfigFileNames = []string{"fbsdump.yaml", "fbsdump.yml", "fbsdump.toml"}

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the loaded configuration, or defaults when ConfigPath is empty.
	Config *config.Config

	// ConfigPath is the file Config was read from.
	ConfigPath string
}

// Load loads the project context from the current working directory.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current directory")
	}
	return LoadDir(ctx, cwd)
}

// LoadDir loads the project context from dir and returns a new
// context.Context with the session Context stored in it.
func LoadDir(ctx context.Context, dir string) (context.Context, error) {
	configPath := findConfigFile(dir)
	if configPath == "" {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, ErrInvalidConfig.Error()), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, ErrInvalidConfig.Error()), ErrInvalidConfig)
	}

	return With(ctx, &Context{Config: cfg, ConfigPath: configPath}), nil
}

// Default returns a Context with default settings and no backing file.
func Default() *Context {
	return &Context{
		Config: &config.Config{Version: config.CurrentConfigVersion},
	}
}

// findConfigFile returns the first config file present in dir, or "".
func findConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// With stores c in ctx.
func With(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if c, ok := ctx.Value(contextKey{}).(*Context); ok {
		return c
	}
	return nil
}
