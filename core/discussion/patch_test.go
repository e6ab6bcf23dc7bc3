package discussion_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/raystack/meridian/core/discussion"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string          { return &s }
func strSlicePtr(s ...string) *[]string { return &s }

func TestPatchValidate(t *testing.T) {
	tooMany := strings.Split(strings.Repeat("x,", discussion.MaxArrayFieldNum+1), ",")

	testCases := []struct {
		description string
		patch       discussion.Patch
		wantErr     bool
	}{
		{
			description: "empty patch is valid",
			patch:       discussion.Patch{},
		},
		{
			description: "valid state",
			patch:       discussion.Patch{State: strPtr("closed")},
		},
		{
			description: "invalid state",
			patch:       discussion.Patch{State: strPtr("resolved")},
			wantErr:     true,
		},
		{
			description: "empty title present",
			patch:       discussion.Patch{Title: strPtr("")},
			wantErr:     true,
		},
		{
			description: "too many labels",
			patch:       discussion.Patch{Labels: &tooMany},
			wantErr:     true,
		},
		{
			description: "too many assignees",
			patch:       discussion.Patch{Assignees: &tooMany},
			wantErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := tc.patch.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPatchApply(t *testing.T) {
	t.Run("replaces only present fields", func(t *testing.T) {
		dsc := discussion.Discussion{
			ID:     "123",
			Title:  "kafka stream not updating",
			Body:   "the stream is stale since yesterday",
			Type:   discussion.TypeIssues,
			State:  discussion.StateOpen,
			Labels: []string{"work", "urgent", "help wanted"},
		}

		p := discussion.Patch{
			Labels: strSlicePtr("new value"),
		}
		p.Apply(&dsc)

		assert.Equal(t, []string{"new value"}, dsc.Labels)
		assert.Equal(t, "kafka stream not updating", dsc.Title)
		assert.Equal(t, discussion.StateOpen, dsc.State)
	})

	t.Run("array fields replace not merge", func(t *testing.T) {
		dsc := discussion.Discussion{
			Assignees: []string{"user-1", "user-2"},
		}
		p := discussion.Patch{Assignees: strSlicePtr("user-3")}
		p.Apply(&dsc)

		assert.Equal(t, []string{"user-3"}, dsc.Assignees)
	})

	t.Run("state changes via enum conversion", func(t *testing.T) {
		dsc := discussion.Discussion{State: discussion.StateClosed}
		p := discussion.Patch{State: strPtr("open")}
		p.Apply(&dsc)

		assert.Equal(t, discussion.StateOpen, dsc.State)
	})

	t.Run("type stays fixed even when the payload carries one", func(t *testing.T) {
		dsc := discussion.Discussion{Type: discussion.TypeOpenEnded}

		var p discussion.Patch
		err := json.Unmarshal([]byte(`{"type": "issues", "body": "updated body"}`), &p)
		assert.NoError(t, err)
		assert.NoError(t, p.Validate())

		p.Apply(&dsc)

		assert.Equal(t, discussion.TypeOpenEnded, dsc.Type)
		assert.Equal(t, "updated body", dsc.Body)
	})
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, discussion.Patch{}.Empty())
	assert.False(t, discussion.Patch{Body: strPtr("updated")}.Empty())
	assert.False(t, discussion.Patch{Assets: strSlicePtr()}.Empty())
}
