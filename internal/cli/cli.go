// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/specialistvlad/porpoiseful/internal/app"
	"github.com/specialistvlad/porpoiseful/internal/flagschema"
	"github.com/specialistvlad/porpoiseful/internal/grouper"
)

// Parse processes command-line arguments. Front-end options use a single dash
// and must come before the first status flag; everything from the first
// "--" token on is handed to the application untouched. It returns a
// populated Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, output io.Writer, schema *flagschema.Schema) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("porpoiseful", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		printUsage(output, flagSet, schema)
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	explainFlag := flagSet.Bool("explain", false, "Print the validated status requests as a table.")

	split := slices.IndexFunc(args, grouper.IsFlag)
	if split < 0 {
		split = len(args)
	}

	if err := flagSet.Parse(args[:split]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Front-end options parsed.", "status_tokens", len(args)-split)

	// Stray positional tokens stay in front so the grouper rejects them.
	statusArgs := slices.Concat(flagSet.Args(), args[split:])
	if len(statusArgs) == 0 {
		slog.Debug("No status flags provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		Args:      statusArgs,
		LogFormat: *logFormatFlag,
		LogLevel:  *logLevelFlag,
		Explain:   *explainFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func printUsage(output io.Writer, flagSet *flag.FlagSet, schema *flagschema.Schema) {
	fmt.Fprint(output, `
porpoiseful - report system status values.

Usage:
  porpoiseful [options] --flag [argument...] [--flag [argument...]]...

Options:
`)
	flagSet.PrintDefaults()
	fmt.Fprint(output, "\nStatus flags:\n")
	writeFlagTable(output, schema)
}
