package stansum

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/farcloser/primordium/fault"
)

const (
	// ProjectMarker is stripped, with everything before it, from file paths in the detail listing.
	ProjectMarker = "farm_operation_management/"
	// DefaultMatch selects which collected entries are listed under the second header.
	DefaultMatch = "Relation"

	categoriesHeader = "--- Error Categories (V2) ---"
	detailHeader     = "--- Relationship Not Found Errors ---"
)

// CategoryCount is one line of the category breakdown.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary accumulates category counts and "not found" entries over a report.
type Summary struct {
	// TotalErrors comes from the report totals, not from the recorded diagnostics.
	TotalErrors int
	// NotFound holds "<short path>:<line> - <message>" entries in the order they were recorded.
	NotFound []string

	counts map[string]int
	seen   []string
}

// NewSummary returns an empty summary carrying the report's own error total.
func NewSummary(totalErrors int) *Summary {
	return &Summary{
		TotalErrors: totalErrors,
		counts:      map[string]int{},
	}
}

// Summarize classifies every diagnostic of the report.
func Summarize(report *Report) (*Summary, error) {
	summary := NewSummary(report.Totals.FileErrors)

	for _, file := range report.Files {
		for _, diag := range file.Report.Messages {
			if err := summary.Record(file.Path, diag, Classify(diag.Message)); err != nil {
				return nil, err
			}
		}
	}

	return summary, nil
}

// Record counts the diagnostic under category and collects it when the category is a "not found" one.
func (s *Summary) Record(filename string, diag Diagnostic, category string) error {
	if _, ok := s.counts[category]; !ok {
		s.seen = append(s.seen, category)
	}

	s.counts[category]++

	if !IsNotFound(category) {
		return nil
	}

	if !diag.HasLine {
		return fmt.Errorf("%w: %q: %w", fault.ErrInvalidJSON, filename, errMissingLine)
	}

	s.NotFound = append(s.NotFound, fmt.Sprintf("%s:%s - %s", ShortName(filename), diag.LineText(), diag.Message))

	return nil
}

// Categories returns the counts, most frequent first.
// Equal counts keep the order in which categories were first recorded.
func (s *Summary) Categories() []CategoryCount {
	out := make([]CategoryCount, 0, len(s.seen))
	for _, category := range s.seen {
		out = append(out, CategoryCount{Category: category, Count: s.counts[category]})
	}

	slices.SortStableFunc(out, func(a, b CategoryCount) int {
		return b.Count - a.Count
	})

	return out
}

// Matching returns the collected entries containing substr (case-sensitive).
func (s *Summary) Matching(substr string) []string {
	var out []string

	for _, entry := range s.NotFound {
		if strings.Contains(entry, substr) {
			out = append(out, entry)
		}
	}

	return out
}

// Render writes the text summary: the total, the category breakdown, then the entries containing match.
func (s *Summary) Render(w io.Writer, match string) error {
	var buf strings.Builder

	fmt.Fprintln(&buf, categoriesHeader)
	fmt.Fprintf(&buf, "Total Errors: %d\n", s.TotalErrors)

	for _, cc := range s.Categories() {
		fmt.Fprintf(&buf, "%d: %s\n", cc.Count, cc.Category)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, detailHeader)

	for _, entry := range s.Matching(match) {
		fmt.Fprintln(&buf, entry)
	}

	_, err := io.WriteString(w, buf.String())

	return err //nolint:wrapcheck
}

// ShortName drops everything up to and including the last ProjectMarker in path.
func ShortName(path string) string {
	if idx := strings.LastIndex(path, ProjectMarker); idx >= 0 {
		return path[idx+len(ProjectMarker):]
	}

	return path
}
