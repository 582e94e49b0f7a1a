// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespaceValidator(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{in: "pkNX.Structures.FlatBuffers"},
		{in: "_internal"},
		{in: "v2.Game_Data"},
		{in: "", wantErr: "namespace is required"},
		{in: "a..b", wantErr: "empty segments"},
		{in: "game.", wantErr: "empty segments"},
		{in: "2game", wantErr: "must start with letter"},
		{in: "game.my-data", wantErr: "only letters, numbers, underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := namespaceValidator(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRequiredValidator(t *testing.T) {
	v := requiredValidator("output")
	assert.ErrorContains(t, v(""), "output is required")
	assert.NoError(t, v("out"))
}

func TestRunDumpForm_NothingMissing(t *testing.T) {
	files := []string{"a.bfbs"}
	ns := "game"
	assert.NoError(t, RunDumpForm(&files, &ns))
	assert.Equal(t, []string{"a.bfbs"}, files)
}
