package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridastar/internal/app"
	"github.com/katalvlaran/gridastar/internal/cli"
)

// main is the entrypoint for the gridastar command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, logW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	summary, err := app.NewApp(outW, logW, config).Run(context.Background())
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d of %d searches failed", summary.Failed, summary.Passed+summary.Failed)}
	}
	return nil
}
