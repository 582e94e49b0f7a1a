// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	tests := []struct {
		name          string
		dir           string // relative to the package, empty means use t.TempDir()
		wantErr       error
		wantNamespace string // only checked if wantErr is nil
	}{
		{
			name:    "not initialized",
			dir:     "",
			wantErr: ErrNotInitialized,
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:          "valid yaml",
			dir:           "testdata/valid",
			wantNamespace: "game.Schemas",
		},
		{
			name:          "valid toml",
			dir:           "testdata/toml",
			wantNamespace: "game.Toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.dir
			if dir == "" {
				dir = t.TempDir()
			}

			ctx, err := LoadDir(context.Background(), dir)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "want %v, got %v", tt.wantErr, err)
				return
			}

			require.NoError(t, err)
			c := From(ctx)
			require.NotNil(t, c)
			assert.Equal(t, tt.wantNamespace, c.Config.Namespace)
			assert.Equal(t, dir, filepath.Dir(c.ConfigPath))
		})
	}
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestPreRunLoad(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(origDir) }()

	t.Run("without config uses defaults", func(t *testing.T) {
		require.NoError(t, os.Chdir(t.TempDir()))

		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		require.NoError(t, PreRunLoad(cmd, nil))

		c, err := RequireFromCommand(cmd)
		require.NoError(t, err)
		assert.Empty(t, c.ConfigPath)
		assert.Equal(t, 1, c.Config.Version)
	})

	t.Run("with config", func(t *testing.T) {
		require.NoError(t, os.Chdir(filepath.Join(origDir, "testdata", "valid")))

		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		require.NoError(t, PreRunLoad(cmd, nil))

		c, err := RequireFromCommand(cmd)
		require.NoError(t, err)
		assert.True(t, c.Config.StripNamespace)
	})

	t.Run("invalid config fails", func(t *testing.T) {
		require.NoError(t, os.Chdir(filepath.Join(origDir, "testdata", "invalid-config")))

		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())
		assert.True(t, errors.Is(PreRunLoad(cmd, nil), ErrInvalidConfig))
	})
}

func TestRequireFromCommand_NotLoaded(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	assert.ErrorContains(t, err, "project context not loaded")
}
