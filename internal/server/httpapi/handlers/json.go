package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/salt/log"
)

var errMissingUserInfo = errors.New("missing user information")

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintln(w, "error encoding response to json")
	}
}

func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &ErrorResponse{
		Reason: msg,
	})
}

func internalServerError(w http.ResponseWriter, logger log.Logger, msg string) {
	ref := time.Now().Unix()

	logger.Error("handler error", "ref", ref, "cause", msg)
	WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf(
		"%s - ref (%d)",
		http.StatusText(http.StatusInternalServerError),
		ref,
	))
}

func bodyParserErrorMsg(err error) string {
	return fmt.Sprintf("error parsing request body: %v", err)
}
