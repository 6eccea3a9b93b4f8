package paginate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/roster/core/paginate"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		description string
		raw         string
		expected    []string
	}{
		{
			description: "should imply $eq for a bare value",
			raw:         "5",
			expected:    []string{"", "$eq", "5"},
		},
		{
			description: "should imply $eq for an empty value",
			raw:         "",
			expected:    []string{"", "$eq", ""},
		},
		{
			description: "should treat a bare $null as the inner operator",
			raw:         "$null",
			expected:    []string{"", "$null", ""},
		},
		{
			description: "should split one operator and value",
			raw:         "$eq:5",
			expected:    []string{"", "$eq", "5"},
		},
		{
			description: "should split a comparison operator and value",
			raw:         "$gte:18",
			expected:    []string{"", "$gte", "18"},
		},
		{
			description: "should keep commas inside the value",
			raw:         "$in:admin,operator",
			expected:    []string{"", "$in", "admin,operator"},
		},
		{
			description: "should split outer and inner operators with a value",
			raw:         "$not:$eq:5",
			expected:    []string{"$not", "$eq", "5"},
		},
		{
			description: "should treat a trailing $null as the inner operator of a wrapped null check",
			raw:         "$not:$null",
			expected:    []string{"$not", "$null", ""},
		},
		{
			description: "should pass unrecognized operator symbols through",
			raw:         "$bogus:5",
			expected:    []string{"", "$bogus", "5"},
		},
		{
			description: "should carry a two token statement as inner operator and value",
			raw:         "$not:5",
			expected:    []string{"", "$not", "5"},
		},
		{
			description: "should return nil for more than two operator markers",
			raw:         "$not:$not:$eq:5",
			expected:    nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, paginate.Tokenize(tc.raw))
		})
	}
}
