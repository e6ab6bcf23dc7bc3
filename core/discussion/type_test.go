package discussion_test

import (
	"testing"

	"github.com/raystack/meridian/core/discussion"
	"github.com/stretchr/testify/assert"
)

func TestGetTypeEnum(t *testing.T) {
	testCases := []struct {
		input    string
		expected discussion.Type
	}{
		{"openended", discussion.TypeOpenEnded},
		{"issues", discussion.TypeIssues},
		{"qanda", discussion.TypeQAndA},
		{"random", discussion.TypeOpenEnded},
		{"", discussion.TypeOpenEnded},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, discussion.GetTypeEnum(tc.input))
		})
	}
}

func TestIsTypeStringValid(t *testing.T) {
	for _, valid := range []string{"openended", "issues", "qanda"} {
		assert.True(t, discussion.IsTypeStringValid(valid))
	}
	assert.False(t, discussion.IsTypeStringValid("discussion"))
	assert.False(t, discussion.IsTypeStringValid(""))
}
