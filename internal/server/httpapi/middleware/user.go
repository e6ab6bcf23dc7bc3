package middleware

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raystack/meridian/core/user"
	"github.com/raystack/meridian/internal/server/httpapi/handlers"
)

// ValidateUser resolves the identity headers on a request into a user
// record, lazily creating the user on first sight. The resolved user is
// propagated through the request context; use user.FromContext to read it.
// Requests without the identity header proceed anonymously, with no user
// in the context. Handlers that require an identity check for one
// themselves, so reads stay open while writes demand the header.
func ValidateUser(headerKeyEmail, defaultProvider string, userSvc *user.Service) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			userEmail := r.Header.Get(headerKeyEmail)
			if userEmail == "" {
				h.ServeHTTP(rw, r)
				return
			}

			userID, err := userSvc.ValidateUser(r.Context(), userEmail, defaultProvider)
			if err != nil {
				if errors.Is(err, user.ErrNoUserInformation) || errors.As(err, new(user.InvalidError)) {
					handlers.WriteJSONError(rw, http.StatusBadRequest, err.Error())
					return
				}
				handlers.WriteJSONError(rw, http.StatusInternalServerError, err.Error())
				return
			}

			ctx := user.NewContext(r.Context(), user.User{
				ID:    userID,
				Email: userEmail,
			})
			h.ServeHTTP(rw, r.WithContext(ctx))
		})
	}
}
