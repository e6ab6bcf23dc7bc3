package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/user"
	"github.com/raystack/meridian/core/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestValidateUser(t *testing.T) {
	var (
		email    = "test@example.com"
		provider = "shield"
		userID   = "a-user-id"
	)

	type testCase struct {
		Description string
		Email       string
		Setup       func(mockRepo *mocks.UserRepository)
		ExpectID    string
		ExpectErr   error
	}

	testCases := []testCase{
		{
			Description: "should return error no user information when email is empty",
			Email:       "",
			ExpectErr:   user.ErrNoUserInformation,
		},
		{
			Description: "should return the existing ID when email is found",
			Email:       email,
			Setup: func(mockRepo *mocks.UserRepository) {
				mockRepo.On("GetByEmail", mock.Anything, email).
					Return(user.User{ID: userID, Email: email}, nil)
			},
			ExpectID: userID,
		},
		{
			Description: "should lazily create the user when email is not found",
			Email:       email,
			Setup: func(mockRepo *mocks.UserRepository) {
				mockRepo.On("GetByEmail", mock.Anything, email).
					Return(user.User{}, user.NotFoundError{Email: email})
				mockRepo.On("UpsertByEmail", mock.Anything, &user.User{Email: email, Provider: provider}).
					Return(userID, nil)
			},
			ExpectID: userID,
		},
		{
			Description: "should return error when upsert fails",
			Email:       email,
			Setup: func(mockRepo *mocks.UserRepository) {
				mockRepo.On("GetByEmail", mock.Anything, email).
					Return(user.User{}, user.NotFoundError{Email: email})
				mockRepo.On("UpsertByEmail", mock.Anything, mock.AnythingOfType("*user.User")).
					Return("", errors.New("some error"))
			},
			ExpectErr: errors.New("some error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			mockRepo := new(mocks.UserRepository)
			if tc.Setup != nil {
				tc.Setup(mockRepo)
			}

			svc := user.NewService(log.NewNoop(), mockRepo)
			id, err := svc.ValidateUser(context.Background(), tc.Email, provider)
			if tc.ExpectErr != nil {
				assert.EqualError(t, err, tc.ExpectErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.ExpectID, id)
			mockRepo.AssertExpectations(t)
		})
	}
}
