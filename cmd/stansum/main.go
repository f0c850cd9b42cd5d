package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/stansum"
	"github.com/farcloser/stansum/version"
)

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:      version.Name(),
		Usage:     "Summarize a PHPStan JSON report by error category",
		Version:   version.Version() + " " + version.Commit(),
		ArgsUsage: "[report.json]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, console, json, markdown",
				Value:   formatText,
			},
			&cli.StringFlag{
				Name:    "match",
				Aliases: []string{"m"},
				Usage:   "Substring selecting the collected not-found entries to list",
				Value:   stansum.DefaultMatch,
			},
		},
		Action: summarize,
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
