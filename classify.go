package stansum

import "strings"

// Categories assigned by Classify.
const (
	CategoryUndefinedProperty    = "Undefined Property"
	CategoryUndefinedMethod      = "Undefined Method"
	CategoryRelationshipNotFound = "Relationship Not Found"
	CategoryClassNotFound        = "Class Not Found"
	CategoryParameterIssue       = "Parameter Issue"
	CategoryReturnType           = "Return Type"
	CategoryArrayAccess          = "Array Access"
	CategoryTypeMismatch         = "Type Mismatch"
	CategoryComparisonLogic      = "Comparison Logic"
	CategoryRedundantCheck       = "Redundant Check"
)

const (
	// fallbackLength is the number of characters of an unmatched message kept as its category.
	fallbackLength = 60
	ellipsis       = "..."
)

// rule matches when every keyword appears in the lowercased message.
type rule struct {
	keywords []string
	category string
}

func (r rule) matches(lower string) bool {
	for _, keyword := range r.keywords {
		if !strings.Contains(lower, keyword) {
			return false
		}
	}

	return true
}

// Order matters: the first matching rule wins.
// The "access to an undefined property", "call to an undefined method" and "should return" rules never fire,
// an earlier rule always matches first.
//
//nolint:gochecknoglobals // configuration data, effectively const
var rules = []rule{
	{keywords: []string{"undefined property"}, category: CategoryUndefinedProperty},
	{keywords: []string{"undefined method"}, category: CategoryUndefinedMethod},
	{keywords: []string{"access to an undefined property"}, category: CategoryUndefinedProperty},
	{keywords: []string{"call to an undefined method"}, category: CategoryUndefinedMethod},
	{keywords: []string{"relation", "not found"}, category: CategoryRelationshipNotFound},
	{keywords: []string{"class", "not found"}, category: CategoryClassNotFound},
	{keywords: []string{"parameter"}, category: CategoryParameterIssue},
	{keywords: []string{"return"}, category: CategoryReturnType},
	{keywords: []string{"should return"}, category: CategoryReturnType},
	{keywords: []string{"access to an offset"}, category: CategoryArrayAccess},
	{keywords: []string{"expects"}, category: CategoryTypeMismatch},
	{keywords: []string{"comparison"}, category: CategoryComparisonLogic},
	{keywords: []string{"variable", "always exists"}, category: CategoryRedundantCheck},
}

// Classify maps a diagnostic message to a category.
// Messages matching no rule become their own category: the first 60 characters followed by "...".
func Classify(message string) string {
	lower := strings.ToLower(message)

	for _, r := range rules {
		if r.matches(lower) {
			return r.category
		}
	}

	return fallbackCategory(message)
}

// IsNotFound reports whether diagnostics of this category are collected for the detail listing.
func IsNotFound(category string) bool {
	switch category {
	case CategoryUndefinedProperty, CategoryUndefinedMethod, CategoryRelationshipNotFound, CategoryClassNotFound:
		return true
	default:
		return false
	}
}

func fallbackCategory(message string) string {
	count := 0

	for idx := range message {
		if count == fallbackLength {
			return message[:idx] + ellipsis
		}

		count++
	}

	return message + ellipsis
}
