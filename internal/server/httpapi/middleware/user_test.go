package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/raystack/meridian/core/user"
	"github.com/raystack/meridian/core/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	dummyRoute             = "/v1beta1/dummy"
	identityEmailHeaderKey = "Meridian-User-Email"
	identityProvider       = "shield"
	userID                 = "user-id"
	userEmail              = "meridian@raystack.io"
)

func TestValidateUser(t *testing.T) {
	type testCase struct {
		Description  string
		Setup        func(userRepo *mocks.UserRepository, req *http.Request)
		ExpectStatus int
		ExpectBody   string
	}

	var testCases = []testCase{
		{
			Description:  "should let the request through anonymously when the identity header is not present",
			ExpectStatus: http.StatusOK,
			ExpectBody:   "uid:",
		},
		{
			Description: "should return HTTP 500 when resolving the user fails",
			Setup: func(userRepo *mocks.UserRepository, req *http.Request) {
				req.Header.Set(identityEmailHeaderKey, userEmail)

				customError := errors.New("some error")
				userRepo.On("GetByEmail", mock.Anything, userEmail).Return(user.User{}, customError)
				userRepo.On("UpsertByEmail", mock.Anything, mock.AnythingOfType("*user.User")).Return("", customError)
			},
			ExpectStatus: http.StatusInternalServerError,
		},
		{
			Description: "should return HTTP 200 with propagated user when validation succeeds",
			Setup: func(userRepo *mocks.UserRepository, req *http.Request) {
				req.Header.Set(identityEmailHeaderKey, userEmail)

				userRepo.On("GetByEmail", mock.Anything, userEmail).Return(user.User{
					ID:    userID,
					Email: userEmail,
				}, nil)
			},
			ExpectStatus: http.StatusOK,
			ExpectBody:   "uid:" + userID,
		},
		{
			Description: "should lazily create the user on first sight",
			Setup: func(userRepo *mocks.UserRepository, req *http.Request) {
				req.Header.Set(identityEmailHeaderKey, userEmail)

				userRepo.On("GetByEmail", mock.Anything, userEmail).Return(user.User{}, user.NotFoundError{Email: userEmail})
				userRepo.On("UpsertByEmail", mock.Anything, &user.User{
					Email:    userEmail,
					Provider: identityProvider,
				}).Return(userID, nil)
			},
			ExpectStatus: http.StatusOK,
			ExpectBody:   "uid:" + userID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			logger := log.NewNoop()
			userRepo := new(mocks.UserRepository)
			userSvc := user.NewService(logger, userRepo)

			r := mux.NewRouter()
			r.Use(ValidateUser(identityEmailHeaderKey, identityProvider, userSvc))
			r.Methods(http.MethodGet).Path(dummyRoute).HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
				usr := user.FromContext(r.Context())
				if _, err := rw.Write([]byte("uid:" + usr.ID)); err != nil {
					t.Fatal(err)
				}
			})

			req, _ := http.NewRequest(http.MethodGet, dummyRoute, nil)
			rr := httptest.NewRecorder()

			if tc.Setup != nil {
				tc.Setup(userRepo, req)
			}

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.ExpectStatus, rr.Code)
			if tc.ExpectBody != "" {
				assert.Equal(t, tc.ExpectBody, rr.Body.String())
			}
			userRepo.AssertExpectations(t)
		})
	}
}
