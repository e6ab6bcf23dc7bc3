package discussion

import (
	"context"
)

type Service struct {
	repository Repository
}

func NewService(discussionRepository Repository) *Service {
	return &Service{
		repository: discussionRepository,
	}
}

func (s *Service) GetDiscussions(ctx context.Context, flt Filter) ([]Discussion, error) {
	return s.repository.GetAll(ctx, flt)
}

// CreateDiscussion stores a new discussion. A discussion always starts
// in the open state regardless of what the caller sends.
func (s *Service) CreateDiscussion(ctx context.Context, dsc *Discussion) (string, error) {
	dsc.State = StateOpen
	if err := dsc.Validate(); err != nil {
		return "", err
	}
	return s.repository.Create(ctx, dsc)
}

func (s *Service) GetDiscussion(ctx context.Context, did string) (Discussion, error) {
	return s.repository.Get(ctx, did)
}

// PatchDiscussion applies a partial update to a discussion. State
// changes are checked against the allowed transition table before
// anything is written.
func (s *Service) PatchDiscussion(ctx context.Context, did string, patch *Patch) error {
	if patch == nil || patch.Empty() {
		return InvalidError{DiscussionID: did}
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	current, err := s.repository.Get(ctx, did)
	if err != nil {
		return err
	}

	if patch.State != nil {
		if err := current.State.CanTransitionTo(GetStateEnum(*patch.State)); err != nil {
			return err
		}
	}

	return s.repository.Patch(ctx, did, patch)
}

func (s *Service) GetComments(ctx context.Context, discussionID string, flt Filter) ([]Comment, error) {
	return s.repository.GetAllComments(ctx, discussionID, flt)
}

// CreateComment adds a comment to a discussion. Closed discussions
// still accept comments.
func (s *Service) CreateComment(ctx context.Context, cmt *Comment) (string, error) {
	if err := cmt.Validate(); err != nil {
		return "", err
	}
	if _, err := s.repository.Get(ctx, cmt.DiscussionID); err != nil {
		return "", err
	}
	return s.repository.CreateComment(ctx, cmt)
}

func (s *Service) GetComment(ctx context.Context, commentID, discussionID string) (Comment, error) {
	return s.repository.GetComment(ctx, commentID, discussionID)
}

func (s *Service) UpdateComment(ctx context.Context, cmt *Comment) error {
	if err := cmt.Validate(); err != nil {
		return err
	}
	return s.repository.UpdateComment(ctx, cmt)
}

func (s *Service) DeleteComment(ctx context.Context, commentID, discussionID string) error {
	return s.repository.DeleteComment(ctx, commentID, discussionID)
}
