package postgres

import (
	"testing"
	"time"

	"github.com/raystack/meridian/core/discussion"
	"github.com/stretchr/testify/assert"
)

func TestDiscussionModel(t *testing.T) {
	t.Run("should return discussion domain entity", func(t *testing.T) {
		timestamp := time.Now().UTC()
		dm := DiscussionModel{
			ID:        "11111",
			Title:     "kafka stream not updating",
			Body:      "the stream is stale since yesterday",
			Type:      "issues",
			State:     "open",
			Labels:    []string{"work", "urgent"},
			Assets:    []string{"urn::a1"},
			Assignees: []string{"user-1"},
			CreatedAt: timestamp,
			UpdatedAt: timestamp,
		}

		dsc := dm.toDiscussion()

		assert.Equal(t, dm.ID, dsc.ID)
		assert.Equal(t, discussion.TypeIssues, dsc.Type)
		assert.Equal(t, discussion.StateOpen, dsc.State)
		assert.Equal(t, []string(dm.Labels), dsc.Labels)
		assert.Equal(t, []string(dm.Assets), dsc.Assets)
		assert.Equal(t, []string(dm.Assignees), dsc.Assignees)
	})

	t.Run("should properly create discussion model from discussion", func(t *testing.T) {
		dsc := &discussion.Discussion{
			ID:    "11111",
			Title: "what is the purpose of this dashboard",
			Type:  discussion.TypeQAndA,
			State: discussion.StateClosed,
		}

		dm := newDiscussionModel(dsc)

		assert.Equal(t, dsc.ID, dm.ID)
		assert.Equal(t, "qanda", dm.Type)
		assert.Equal(t, "closed", dm.State)
	})
}
