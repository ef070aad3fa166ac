// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/porpoiseful/internal/ctxlog"
	"github.com/specialistvlad/porpoiseful/internal/flagschema"
	"github.com/specialistvlad/porpoiseful/internal/grouper"
	"github.com/specialistvlad/porpoiseful/internal/validator"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	schema *flagschema.Schema
}

// NewApp is the constructor for the main application. It builds an isolated
// logger for the instance; schema is shared and never modified.
func NewApp(outW io.Writer, config *Config, schema *flagschema.Schema) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.", "flags_known", schema.Len())

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		schema: schema,
	}
}

// Run groups and validates the configured arguments and resolves them into
// requests. Grouping and validation errors are wrapped, so callers can match
// them with errors.Is and errors.As.
func (a *App) Run(ctx context.Context) ([]Request, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "arg_count", len(a.config.Args))

	groups, err := grouper.Parse(a.config.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to group arguments: %w", err)
	}
	logger.Debug("Arguments grouped.", "group_count", len(groups))

	if err := validator.Validate(groups, a.schema); err != nil {
		logger.Debug("Argument validation failed.", "error", err)
		return nil, fmt.Errorf("argument validation failed: %w", err)
	}
	logger.Debug("Argument validation passed.")

	requests := Resolve(groups, a.schema)
	for _, r := range requests {
		logger.Debug("Status request accepted.", "flag", r.Flag, "args", r.Args, "sources", r.Sources())
	}

	if a.config.Explain {
		writePlan(a.outW, requests)
	}

	logger.Debug("App.Run method finished.", "request_count", len(requests))
	return requests, nil
}
