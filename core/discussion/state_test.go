package discussion_test

import (
	"testing"

	"github.com/raystack/meridian/core/discussion"
	"github.com/stretchr/testify/assert"
)

func TestGetStateEnum(t *testing.T) {
	testCases := []struct {
		input    string
		expected discussion.State
	}{
		{"open", discussion.StateOpen},
		{"closed", discussion.StateClosed},
		{"random", discussion.StateOpen},
		{"", discussion.StateOpen},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, discussion.GetStateEnum(tc.input))
		})
	}
}

func TestIsStateStringValid(t *testing.T) {
	assert.True(t, discussion.IsStateStringValid("open"))
	assert.True(t, discussion.IsStateStringValid("closed"))
	assert.False(t, discussion.IsStateStringValid("resolved"))
	assert.False(t, discussion.IsStateStringValid(""))
}

func TestStateCanTransitionTo(t *testing.T) {
	testCases := []struct {
		description string
		from        discussion.State
		to          discussion.State
		wantErr     bool
	}{
		{
			description: "open can stay open",
			from:        discussion.StateOpen,
			to:          discussion.StateOpen,
		},
		{
			description: "open can be closed",
			from:        discussion.StateOpen,
			to:          discussion.StateClosed,
		},
		{
			description: "closed can be reopened",
			from:        discussion.StateClosed,
			to:          discussion.StateOpen,
		},
		{
			description: "closed can stay closed",
			from:        discussion.StateClosed,
			to:          discussion.StateClosed,
		},
		{
			description: "unknown state has no transitions",
			from:        discussion.State("resolved"),
			to:          discussion.StateOpen,
			wantErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := tc.from.CanTransitionTo(tc.to)
			if tc.wantErr {
				assert.ErrorAs(t, err, &discussion.InvalidStateTransitionError{})
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
