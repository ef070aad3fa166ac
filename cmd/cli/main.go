package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/porpoiseful/internal/app"
	"github.com/specialistvlad/porpoiseful/internal/cli"
	"github.com/specialistvlad/porpoiseful/internal/flagschema"
)

// main is the entrypoint for the porpoiseful application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	schema := flagschema.Default()

	appConfig, shouldExit, err := cli.Parse(args, outW, schema)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	porpoisefulApp := app.NewApp(outW, appConfig, schema)
	_, err = porpoisefulApp.Run(context.Background())
	return err
}
