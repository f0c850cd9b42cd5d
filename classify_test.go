package stansum_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farcloser/stansum"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		message  string
		expected string
	}{
		{"Access to an undefined property App\\Models\\Farm::$name.", stansum.CategoryUndefinedProperty},
		{"ACCESS TO AN UNDEFINED PROPERTY Foo::$bar.", stansum.CategoryUndefinedProperty},
		{"Call to an undefined method Illuminate\\Database\\Eloquent\\Builder::active().", stansum.CategoryUndefinedMethod},
		{"Relation 'items' is not found in App\\Models\\Order model.", stansum.CategoryRelationshipNotFound},
		{"Class App\\Models\\Relation not found.", stansum.CategoryRelationshipNotFound},
		{"Class App\\Models\\Crop not found.", stansum.CategoryClassNotFound},
		{"Parameter #1 $id of method Foo::find() expects int, string given.", stansum.CategoryParameterIssue},
		{"Method Foo::bar() should return int but returns string.", stansum.CategoryReturnType},
		{"Cannot access offset 'a' on mixed. Access to an offset on array.", stansum.CategoryArrayAccess},
		{"Function foo expects array, null given.", stansum.CategoryTypeMismatch},
		{"Strict comparison using === between int and string will always evaluate to false.", stansum.CategoryComparisonLogic},
		{"Variable $farm in isset() always exists and is not nullable.", stansum.CategoryRedundantCheck},
		{"Undefined method beats parameter", stansum.CategoryUndefinedMethod},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, stansum.Classify(tc.message), tc.message)
	}
}

func TestClassifyFallback(t *testing.T) {
	t.Parallel()

	short := "Dead catch - Exception is never thrown."
	assert.Equal(t, short+"...", stansum.Classify(short))

	assert.Equal(t, "...", stansum.Classify(""))

	prefix := strings.Repeat("x", 60)
	first := stansum.Classify(prefix + " first tail")
	second := stansum.Classify(prefix + " second tail")

	assert.Equal(t, prefix+"...", first)
	assert.Equal(t, first, second)
}

func TestClassifyFallbackCountsCharacters(t *testing.T) {
	t.Parallel()

	prefix := strings.Repeat("é", 60)

	assert.Equal(t, prefix+"...", stansum.Classify(prefix+"ü"))
}

func TestClassifyVariableWithoutAlwaysExists(t *testing.T) {
	t.Parallel()

	message := "Variable $x might not be defined."

	assert.Equal(t, message+"...", stansum.Classify(message))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, stansum.IsNotFound(stansum.CategoryUndefinedProperty))
	assert.True(t, stansum.IsNotFound(stansum.CategoryUndefinedMethod))
	assert.True(t, stansum.IsNotFound(stansum.CategoryRelationshipNotFound))
	assert.True(t, stansum.IsNotFound(stansum.CategoryClassNotFound))
	assert.False(t, stansum.IsNotFound(stansum.CategoryReturnType))
	assert.False(t, stansum.IsNotFound("Relation 'x' whatever..."))
}
