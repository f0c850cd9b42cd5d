//nolint:wrapcheck
package main

import (
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/stansum"
	"github.com/farcloser/stansum/internal/output"
)

// outputSummary renders the summary through a primordium formatter.
// An unknown formatter is a usage error. A report that fails to load is reported as in text mode.
func outputSummary(path, formatName, match string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	summary, err := stansum.LoadSummary(path)
	if err != nil {
		return stansum.WriteFailure(os.Stdout, err)
	}

	data := &format.Data{
		Object: path,
		Meta:   output.SummaryToMap(summary, match),
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
