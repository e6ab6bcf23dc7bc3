package discussion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/raystack/meridian/core/discussion"
	"github.com/raystack/meridian/core/discussion/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestServiceCreateDiscussion(t *testing.T) {
	ctx := context.Background()

	t.Run("forces state open on create", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(dsc *discussion.Discussion) bool {
			return dsc.State == discussion.StateOpen
		})).Return("1111", nil)

		svc := discussion.NewService(repo)
		id, err := svc.CreateDiscussion(ctx, &discussion.Discussion{
			Title: "lineage gap",
			Body:  "jobs feeding the daily table are missing",
			Type:  discussion.TypeIssues,
			State: discussion.StateClosed,
		})

		assert.NoError(t, err)
		assert.Equal(t, "1111", id)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid discussion before repository", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		svc := discussion.NewService(repo)

		_, err := svc.CreateDiscussion(ctx, &discussion.Discussion{Type: discussion.TypeQAndA})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestServicePatchDiscussion(t *testing.T) {
	ctx := context.Background()
	discussionID := "2222"

	stateOf := func(s string) *string { return &s }

	t.Run("rejects empty patch", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		svc := discussion.NewService(repo)

		err := svc.PatchDiscussion(ctx, discussionID, &discussion.Patch{})

		assert.ErrorAs(t, err, &discussion.InvalidError{})
	})

	t.Run("allows closing an open discussion", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		repo.On("Get", ctx, discussionID).
			Return(discussion.Discussion{ID: discussionID, State: discussion.StateOpen}, nil)
		patch := &discussion.Patch{State: stateOf("closed")}
		repo.On("Patch", ctx, discussionID, patch).Return(nil)

		svc := discussion.NewService(repo)
		err := svc.PatchDiscussion(ctx, discussionID, patch)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("allows reopening a closed discussion", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		repo.On("Get", ctx, discussionID).
			Return(discussion.Discussion{ID: discussionID, State: discussion.StateClosed}, nil)
		patch := &discussion.Patch{State: stateOf("open")}
		repo.On("Patch", ctx, discussionID, patch).Return(nil)

		svc := discussion.NewService(repo)
		err := svc.PatchDiscussion(ctx, discussionID, patch)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown target state", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		svc := discussion.NewService(repo)

		err := svc.PatchDiscussion(ctx, discussionID, &discussion.Patch{State: stateOf("resolved")})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Patch")
	})

	t.Run("propagates not found from get", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		repo.On("Get", ctx, discussionID).
			Return(discussion.Discussion{}, discussion.NotFoundError{DiscussionID: discussionID})

		svc := discussion.NewService(repo)
		err := svc.PatchDiscussion(ctx, discussionID, &discussion.Patch{State: stateOf("closed")})

		assert.ErrorAs(t, err, &discussion.NotFoundError{})
		repo.AssertNotCalled(t, "Patch")
	})
}

func TestServiceCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("comments are accepted on closed discussions", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		repo.On("Get", ctx, "3333").
			Return(discussion.Discussion{ID: "3333", State: discussion.StateClosed}, nil)
		cmt := &discussion.Comment{DiscussionID: "3333", Body: "late addition"}
		repo.On("CreateComment", ctx, cmt).Return("99", nil)

		svc := discussion.NewService(repo)
		id, err := svc.CreateComment(ctx, cmt)

		assert.NoError(t, err)
		assert.Equal(t, "99", id)
		repo.AssertExpectations(t)
	})

	t.Run("missing discussion surfaces not found", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		repo.On("Get", ctx, "4444").
			Return(discussion.Discussion{}, discussion.NotFoundError{DiscussionID: "4444"})

		svc := discussion.NewService(repo)
		_, err := svc.CreateComment(ctx, &discussion.Comment{DiscussionID: "4444", Body: "hello"})

		assert.ErrorAs(t, err, &discussion.NotFoundError{})
		repo.AssertNotCalled(t, "CreateComment")
	})
}

func TestServiceGetDiscussions(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates filter to repository", func(t *testing.T) {
		flt := discussion.Filter{Type: "all", State: "open", Size: 10}
		expected := []discussion.Discussion{{ID: "1"}, {ID: "2"}}

		repo := new(mocks.DiscussionRepository)
		repo.On("GetAll", ctx, flt).Return(expected, nil)

		svc := discussion.NewService(repo)
		out, err := svc.GetDiscussions(ctx, flt)

		assert.NoError(t, err)
		assert.Equal(t, expected, out)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := new(mocks.DiscussionRepository)
		repo.On("GetAll", ctx, mock.Anything).Return(nil, errors.New("some error"))

		svc := discussion.NewService(repo)
		_, err := svc.GetDiscussions(ctx, discussion.Filter{})

		assert.Error(t, err)
	})
}
