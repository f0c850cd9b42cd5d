// Package stansum summarizes PHPStan JSON reports by error category.
package stansum

import (
	"fmt"
	"io"
)

/*
Usage:

report, err := stansum.Load("phpstan_results_V2.json")
if err != nil {
    return err
}

summary, err := stansum.Summarize(report)
if err != nil {
    return err
}

for _, cc := range summary.Categories() {
    fmt.Printf("%d: %s\n", cc.Count, cc.Category)
}

// Or, load + summarize + print in one go
stansum.Run(os.Stdout, "phpstan_results_V2.json", stansum.DefaultMatch)

*/

// DefaultReportPath is the report read when no path is given.
const DefaultReportPath = "phpstan_results_V2.json"

// LoadSummary loads and summarizes the report at path.
func LoadSummary(path string) (*Summary, error) {
	report, err := Load(path)
	if err != nil {
		return nil, err
	}

	return Summarize(report)
}

// Run loads, summarizes and renders the report at path to w.
// A report that cannot be loaded or summarized is reported as a single line on w, and is not an error:
// only a failure to write to w is returned.
func Run(w io.Writer, path, match string) error {
	summary, err := LoadSummary(path)
	if err != nil {
		return WriteFailure(w, err)
	}

	return summary.Render(w, match)
}

// WriteFailure writes the one-line report for a load or summarize failure.
func WriteFailure(w io.Writer, cause error) error {
	_, err := fmt.Fprintf(w, "Error parsing JSON: %v\n", cause)

	return err //nolint:wrapcheck
}
