// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles fbsdump project configuration.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/translate"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "."

// Config represents the fbsdump.yaml (or fbsdump.toml) project configuration file.
type Config struct {
	Version        int    `yaml:"version" toml:"version"`
	Namespace      string `yaml:"namespace" toml:"namespace"`
	StripNamespace bool   `yaml:"strip_namespace,omitempty" toml:"strip_namespace,omitempty"`
	QualifiedRefs  bool   `yaml:"qualified_refs,omitempty" toml:"qualified_refs,omitempty"`
	ObjectOrder    string `yaml:"object_order,omitempty" toml:"object_order,omitempty"`
	Output         string `yaml:"output,omitempty" toml:"output,omitempty"`
	Jobs           int    `yaml:"jobs,omitempty" toml:"jobs,omitempty"`
}

// Format is a config file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf returns the encoding implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", errors.Newf("unsupported config format %q", filepath.Ext(path))
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Newf("%s is empty", path)
	}

	var cfg Config
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path, encoded according to its extension.
func (c *Config) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if format == TOML {
		return toml.NewEncoder(f).Encode(c)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Jobs < 0 {
		return errors.New("jobs must not be negative")
	}
	return c.Settings().Validate()
}

// Settings returns the rendering settings described by the config.
func (c *Config) Settings() translate.Settings {
	return translate.Settings{
		Namespace:      c.Namespace,
		StripNamespace: c.StripNamespace,
		QualifiedRefs:  c.QualifiedRefs,
		ObjectOrder:    translate.ObjectOrder(c.ObjectOrder),
	}
}

// OutputDir returns the configured output directory or DefaultOutput.
func (c *Config) OutputDir() string {
	if c.Output == "" {
		return DefaultOutput
	}
	return c.Output
}
