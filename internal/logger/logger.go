// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package logger provides the structured logger shared by fbsdump commands.
package logger

import (
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel is the environment variable that selects the log level.
const EnvLevel = "FBSDUMP_LOG_LEVEL"

// DefaultLevel keeps routine progress quiet; results go through prompts.PrintResult.
const DefaultLevel = zapcore.WarnLevel

// Standard field names for consistent structured logging.
const (
	FieldFile       = "file"
	FieldOutput     = "output"
	FieldObjects    = "objects"
	FieldEnums      = "enums"
	FieldRoot       = "root"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)

type contextKey struct{}

// New builds a console logger writing to w at the given level name
// ("debug", "info", "warn", "error"). An empty level selects DefaultLevel.
func New(w io.Writer, level string) (*zap.SugaredLogger, error) {
	lvl := DefaultLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, errors.Wrapf(err, "invalid %s", EnvLevel)
		}
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core).Sugar(), nil
}

// With returns a copy of ctx carrying log.
func With(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// From returns the logger stored in ctx, or a no-op logger.
func From(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if log, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok {
			return log
		}
	}
	return zap.NewNop().Sugar()
}
