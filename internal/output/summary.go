// Package output provides shared summary serialization for stansum formatted output.
package output

import (
	"fmt"

	"github.com/farcloser/stansum"
)

// SummaryToMap converts a summary into the map structure handed to primordium formatters.
// Categories are rendered as "<count>: <category>" lines, most frequent first.
func SummaryToMap(summary *stansum.Summary, match string) map[string]any {
	categories := make([]any, 0)
	for _, cc := range summary.Categories() {
		categories = append(categories, fmt.Sprintf("%d: %s", cc.Count, cc.Category))
	}

	entries := make([]any, 0)
	for _, entry := range summary.Matching(match) {
		entries = append(entries, entry)
	}

	return map[string]any{
		"total_errors":           summary.TotalErrors,
		"categories":             categories,
		"relationship_not_found": entries,
	}
}
