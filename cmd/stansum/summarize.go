//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/stansum"
)

const formatText = "text"

var errTooManyArgs = errors.New("expected at most one argument: path to the PHPStan JSON report")

// summarize prints the summary of the report named on the command line, or of the default report.
func summarize(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 1 {
		return fmt.Errorf("%w: got %d", errTooManyArgs, cmd.NArg())
	}

	path := stansum.DefaultReportPath
	if cmd.NArg() == 1 {
		path = cmd.Args().First()
	}

	formatName := cmd.String("format")
	match := cmd.String("match")

	if formatName == formatText {
		return stansum.Run(os.Stdout, path, match)
	}

	return outputSummary(path, formatName, match)
}
