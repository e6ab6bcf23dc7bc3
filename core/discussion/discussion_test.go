package discussion_test

import (
	"testing"

	"github.com/raystack/meridian/core/discussion"
	"github.com/stretchr/testify/assert"
)

func TestDiscussionValidate(t *testing.T) {
	elevenEntries := make([]string, discussion.MaxArrayFieldNum+1)
	for i := range elevenEntries {
		elevenEntries[i] = "entry"
	}

	testCases := []struct {
		description string
		discussion  discussion.Discussion
		errString   string
	}{
		{
			description: "empty title",
			discussion:  discussion.Discussion{Body: "body", Type: discussion.TypeOpenEnded},
			errString:   "title cannot be empty",
		},
		{
			description: "empty body",
			discussion:  discussion.Discussion{Title: "title", Type: discussion.TypeOpenEnded},
			errString:   "body cannot be empty",
		},
		{
			description: "invalid type",
			discussion:  discussion.Discussion{Title: "title", Body: "body", Type: "not-a-type"},
			errString:   "discussion type is invalid",
		},
		{
			description: "invalid state",
			discussion: discussion.Discussion{
				Title: "title", Body: "body",
				Type: discussion.TypeQAndA, State: "not-a-state",
			},
			errString: "discussion state is invalid",
		},
		{
			description: "too many assets",
			discussion: discussion.Discussion{
				Title: "title", Body: "body",
				Type: discussion.TypeIssues, State: discussion.StateOpen,
				Assets: elevenEntries,
			},
			errString: "assets cannot be more than 10",
		},
		{
			description: "valid discussion",
			discussion: discussion.Discussion{
				Title: "title", Body: "body",
				Type: discussion.TypeOpenEnded, State: discussion.StateOpen,
				Labels: []string{"work"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := tc.discussion.Validate()
			if tc.errString == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.errString)
			}
		})
	}
}

func TestCommentValidate(t *testing.T) {
	t.Run("missing discussion id", func(t *testing.T) {
		err := discussion.Comment{Body: "a comment"}.Validate()
		assert.ErrorContains(t, err, "discussion_id cannot be empty")
	})

	t.Run("missing body", func(t *testing.T) {
		err := discussion.Comment{DiscussionID: "123"}.Validate()
		assert.ErrorContains(t, err, "body cannot be empty")
	})

	t.Run("valid comment", func(t *testing.T) {
		err := discussion.Comment{DiscussionID: "123", Body: "a comment"}.Validate()
		assert.NoError(t, err)
	})
}
