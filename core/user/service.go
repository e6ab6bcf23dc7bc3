package user

import (
	"context"

	"github.com/goto/salt/log"
)

// Service manages business process on top of the user repository.
type Service struct {
	repository Repository
	logger     log.Logger
}

// NewService initializes user service
func NewService(logger log.Logger, repository Repository) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// ValidateUser resolves an email observed on a request to a user ID,
// creating the user on first sight.
func (s *Service) ValidateUser(ctx context.Context, email, provider string) (string, error) {
	if email == "" {
		return "", ErrNoUserInformation
	}

	usr, err := s.repository.GetByEmail(ctx, email)
	if err == nil {
		return usr.ID, nil
	}

	uid, err := s.repository.UpsertByEmail(ctx, &User{
		Email:    email,
		Provider: provider,
	})
	if err != nil {
		s.logger.Error("error upserting user by email", "email", email, "err", err.Error())
		return "", err
	}
	return uid, nil
}
