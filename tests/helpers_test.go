package tests_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// twoErrorReport carries one undefined property and one missing relation.
const twoErrorReport = `{
	"totals": {"errors": 0, "file_errors": 2},
	"files": {
		"/var/www/farm_operation_management/app/Models/Order.php": {
			"errors": 2,
			"messages": [
				{"message": "Access to an undefined property Foo::$bar.", "line": 14, "ignorable": true},
				{"message": "Relation 'items' is not found.", "line": 21, "ignorable": true}
			]
		}
	},
	"errors": []
}`

// expectLines verifies every given line appears verbatim as an output line.
func expectLines(want ...string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		got := strings.Split(stdout, "\n")

		for _, line := range want {
			if !slices.Contains(got, line) {
				testing.Log(fmt.Sprintf("line %q missing from output:\n%s", line, stdout))
				testing.Fail()
			}
		}
	}
}

// expectMentions verifies the output mentions each fragment, anywhere.
func expectMentions(fragments ...string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		for _, fragment := range fragments {
			if !strings.Contains(stdout, fragment) {
				testing.Log(fmt.Sprintf("%q not mentioned in output:\n%s", fragment, stdout))
				testing.Fail()
			}
		}
	}
}

// expectOmits verifies none of the fragments appear in the output.
func expectOmits(fragments ...string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		for _, fragment := range fragments {
			if strings.Contains(stdout, fragment) {
				testing.Log(fmt.Sprintf("%q unexpectedly present in output:\n%s", fragment, stdout))
				testing.Fail()
			}
		}
	}
}

// expectParseFailure verifies the whole output is one "Error parsing JSON" line.
func expectParseFailure() test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
		if len(lines) != 1 || !strings.HasPrefix(lines[0], "Error parsing JSON: ") {
			testing.Log(fmt.Sprintf("expected a single parse failure line, got:\n%s", stdout))
			testing.Fail()
		}
	}
}
