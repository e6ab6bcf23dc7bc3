package postgres_test

import (
	"context"
	"testing"

	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/discussion"
	"github.com/raystack/meridian/core/user"
	"github.com/raystack/meridian/internal/store/postgres"
	"github.com/stretchr/testify/suite"
)

type DiscussionRepositoryTestSuite struct {
	suite.Suite
	ctx        context.Context
	client     *postgres.Client
	repository *postgres.DiscussionRepository
	userRepo   *postgres.UserRepository
	ownerID    string
}

func (r *DiscussionRepositoryTestSuite) SetupSuite() {
	var err error

	logger := log.NewLogrus()
	r.client, err = newTestClient(r.T(), logger)
	if err != nil {
		r.T().Fatal(err)
	}

	r.ctx = context.Background()
	r.userRepo, err = postgres.NewUserRepository(r.client)
	if err != nil {
		r.T().Fatal(err)
	}
	r.repository, err = postgres.NewDiscussionRepository(r.client, defaultGetMaxSize)
	if err != nil {
		r.T().Fatal(err)
	}

	r.ownerID, err = createUser(r.userRepo, "discussion-owner@raystack.io")
	if err != nil {
		r.T().Fatal(err)
	}
}

func (r *DiscussionRepositoryTestSuite) createDiscussion(title string, typ discussion.Type) (string, error) {
	return r.repository.Create(r.ctx, &discussion.Discussion{
		Title: title,
		Body:  "lorem ipsum",
		Type:  typ,
		Owner: user.User{ID: r.ownerID},
	})
}

func (r *DiscussionRepositoryTestSuite) TestCreate() {
	r.Run("should return the id of the created discussion", func() {
		id, err := r.createDiscussion("create me", discussion.TypeOpenEnded)
		r.NoError(err)
		r.NotEmpty(id)

		dsc, err := r.repository.Get(r.ctx, id)
		r.NoError(err)
		r.Equal("create me", dsc.Title)
		r.Equal(discussion.TypeOpenEnded, dsc.Type)
		r.Equal(discussion.StateOpen, dsc.State)
		r.Equal(r.ownerID, dsc.Owner.ID)
	})
}

func (r *DiscussionRepositoryTestSuite) TestGet() {
	r.Run("should return not found error if the discussion does not exist", func() {
		_, err := r.repository.Get(r.ctx, "90000")
		r.ErrorIs(err, discussion.NotFoundError{DiscussionID: "90000"})
	})
}

func (r *DiscussionRepositoryTestSuite) TestGetAll() {
	r.Run("should filter discussions by type", func() {
		_, err := r.createDiscussion("an open question", discussion.TypeQAndA)
		r.NoError(err)

		dscs, err := r.repository.GetAll(r.ctx, discussion.Filter{Type: discussion.TypeQAndA.String()})
		r.NoError(err)
		r.NotEmpty(dscs)
		for _, dsc := range dscs {
			r.Equal(discussion.TypeQAndA, dsc.Type)
		}
	})

	r.Run("should cap the result set to the requested size", func() {
		for i := 0; i < 3; i++ {
			_, err := r.createDiscussion("sized", discussion.TypeOpenEnded)
			r.NoError(err)
		}

		dscs, err := r.repository.GetAll(r.ctx, discussion.Filter{Size: 2})
		r.NoError(err)
		r.Len(dscs, 2)
	})
}

func (r *DiscussionRepositoryTestSuite) TestPatch() {
	r.Run("should return error when id is empty", func() {
		err := r.repository.Patch(r.ctx, "", &discussion.Patch{})
		r.ErrorIs(err, discussion.ErrInvalidID)
	})

	r.Run("should return not found error if the discussion does not exist", func() {
		title := "ghost"
		err := r.repository.Patch(r.ctx, "90000", &discussion.Patch{Title: &title})
		r.ErrorIs(err, discussion.NotFoundError{DiscussionID: "90000"})
	})

	r.Run("should update only the fields the patch carries", func() {
		id, err := r.createDiscussion("before", discussion.TypeIssues)
		r.NoError(err)

		title := "after"
		state := discussion.StateClosed.String()
		err = r.repository.Patch(r.ctx, id, &discussion.Patch{Title: &title, State: &state})
		r.NoError(err)

		dsc, err := r.repository.Get(r.ctx, id)
		r.NoError(err)
		r.Equal("after", dsc.Title)
		r.Equal(discussion.StateClosed, dsc.State)
		r.Equal("lorem ipsum", dsc.Body)
		r.Equal(discussion.TypeIssues, dsc.Type)
	})
}

func (r *DiscussionRepositoryTestSuite) TestComments() {
	id, err := r.createDiscussion("with comments", discussion.TypeOpenEnded)
	r.Require().NoError(err)

	newComment := func(body string) *discussion.Comment {
		return &discussion.Comment{
			DiscussionID: id,
			Body:         body,
			Owner:        user.User{ID: r.ownerID},
			UpdatedBy:    user.User{ID: r.ownerID},
		}
	}

	r.Run("should return not found error when the discussion does not exist", func() {
		cmt := newComment("orphan")
		cmt.DiscussionID = "90000"
		_, err := r.repository.CreateComment(r.ctx, cmt)
		r.ErrorIs(err, discussion.NotFoundError{DiscussionID: "90000"})
	})

	r.Run("should create and fetch comments of a discussion", func() {
		cid, err := r.repository.CreateComment(r.ctx, newComment("first"))
		r.NoError(err)
		r.NotEmpty(cid)

		cmt, err := r.repository.GetComment(r.ctx, cid, id)
		r.NoError(err)
		r.Equal("first", cmt.Body)
		r.Equal(r.ownerID, cmt.Owner.ID)

		cmts, err := r.repository.GetAllComments(r.ctx, id, discussion.Filter{})
		r.NoError(err)
		r.NotEmpty(cmts)
	})

	r.Run("should update a comment body", func() {
		cid, err := r.repository.CreateComment(r.ctx, newComment("typo"))
		r.NoError(err)

		updated := newComment("fixed")
		updated.ID = cid
		r.NoError(r.repository.UpdateComment(r.ctx, updated))

		cmt, err := r.repository.GetComment(r.ctx, cid, id)
		r.NoError(err)
		r.Equal("fixed", cmt.Body)
	})

	r.Run("should delete a comment", func() {
		cid, err := r.repository.CreateComment(r.ctx, newComment("ephemeral"))
		r.NoError(err)

		r.NoError(r.repository.DeleteComment(r.ctx, cid, id))

		_, err = r.repository.GetComment(r.ctx, cid, id)
		r.ErrorIs(err, discussion.NotFoundError{CommentID: cid, DiscussionID: id})

		err = r.repository.DeleteComment(r.ctx, cid, id)
		r.ErrorIs(err, discussion.NotFoundError{CommentID: cid, DiscussionID: id})
	})
}

func TestDiscussionRepository(t *testing.T) {
	suite.Run(t, &DiscussionRepositoryTestSuite{})
}
