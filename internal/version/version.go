// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version reports what fbsdump was built from.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// FlatBuffersModule is the runtime module whose table layout the decoder relies on.
const FlatBuffersModule = "github.com/google/flatbuffers"

// Set with -ldflags "-X github.com/dacolabs/fbsdump/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)

// Build is the resolved build description.
type Build struct {
	Version     string
	Commit      string
	FlatBuffers string
	Go          string
}

// Current returns the build description, filling values that were not set
// at link time from the embedded module information.
func Current() Build {
	info, _ := debug.ReadBuildInfo()
	return resolve(info)
}

func resolve(info *debug.BuildInfo) Build {
	b := Build{
		Version:     Version,
		Commit:      Commit,
		FlatBuffers: "unknown",
		Go:          runtime.Version(),
	}
	if info == nil {
		return b
	}

	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	if b.Commit == "none" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				b.Commit = s.Value[:7]
			}
		}
	}
	for _, dep := range info.Deps {
		if dep.Path != FlatBuffersModule {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		b.FlatBuffers = dep.Version
	}
	return b
}

// Info returns the one-line description printed by "fbsdump version".
func Info() string {
	b := Current()
	return fmt.Sprintf("fbsdump version %s (commit: %s, flatbuffers: %s, go: %s)",
		b.Version, b.Commit, b.FlatBuffers, b.Go)
}

// Short returns just the version string.
func Short() string {
	return Current().Version
}
