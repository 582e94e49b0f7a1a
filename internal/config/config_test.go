// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/fbsdump/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	for _, name := range []string{"fbsdump.yaml", "fbsdump.toml"} {
		t.Run(name, func(t *testing.T) {
			cfgPath := filepath.Join(t.TempDir(), name)

			cfg := Config{
				Version:        1,
				Namespace:      "game.Schemas",
				StripNamespace: true,
				Output:         "out",
				Jobs:           2,
			}

			require.NoError(t, cfg.Save(cfgPath))

			loaded, err := Load(cfgPath)
			require.NoError(t, err)
			assert.Equal(t, cfg, *loaded)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1, Namespace: "ns"},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99, Namespace: "ns"},
			wantErr: "unsupported config version",
		},
		{
			name:    "missing namespace",
			cfg:     Config{Version: 1},
			wantErr: "namespace is required",
		},
		{
			name:    "bad object order",
			cfg:     Config{Version: 1, Namespace: "ns", ObjectOrder: "alphabetical"},
			wantErr: "unknown object order",
		},
		{
			name:    "negative jobs",
			cfg:     Config{Version: 1, Namespace: "ns", Jobs: -1},
			wantErr: "jobs must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "fbsdump.yaml")

	cfg := Config{Version: 1, Namespace: "game.Schemas"}
	require.NoError(t, cfg.Save(cfgPath))

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "namespace: game.Schemas")
	assert.NotContains(t, output, "strip_namespace")
}

func TestConfig_Load(t *testing.T) {
	cfg, err := Load("testdata/valid.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "schemas", cfg.OutputDir())
	assert.Equal(t, translate.Settings{
		Namespace:      "pkNX.Structures.FlatBuffers",
		StripNamespace: true,
		ObjectOrder:    translate.OrderDeclaration,
	}, cfg.Settings())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Load_TOML(t *testing.T) {
	cfg, err := Load("testdata/valid.toml")
	require.NoError(t, err)

	assert.Equal(t, "pkNX.Structures.FlatBuffers", cfg.Namespace)
	assert.True(t, cfg.QualifiedRefs)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, DefaultOutput, cfg.OutputDir())
}

func TestConfig_Load_NotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Invalid(t *testing.T) {
	_, err := Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_UnsupportedFormat(t *testing.T) {
	_, err := Load("testdata/valid.json")
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestConfig_Save_InvalidPath(t *testing.T) {
	cfg := Config{Version: 1}

	err := cfg.Save("/nonexistent/directory/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Load_Empty(t *testing.T) {
	emptyFile := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(emptyFile, []byte(""), 0o600))

	_, err := Load(emptyFile)
	assert.Error(t, err)
}
