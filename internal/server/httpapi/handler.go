package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raystack/meridian/internal/server/httpapi/handlers"
)

// Handler is the collection of route handlers the server mounts.
type Handler struct {
	Asset      *handlers.AssetHandler
	Search     *handlers.SearchHandler
	User       *handlers.UserHandler
	Discussion *handlers.DiscussionHandler
}

func RegisterRoutes(router *mux.Router, handlerCollection *Handler) {
	setupV1Beta1Router(router, handlerCollection)

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)
}
