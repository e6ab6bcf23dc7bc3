package handlers

import (
	"fmt"
	"net/http"
)

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusNotFound, fmt.Sprintf("no matching route was found for %s %s", r.Method, r.URL.Path))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusMethodNotAllowed, fmt.Sprintf("%s is not allowed for %s", r.Method, r.URL.Path))
}

// NewHeartbeatHandler returns the liveness check endpoint.
func NewHeartbeatHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
