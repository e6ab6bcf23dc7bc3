package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelic opens a transaction per request when the agent is configured.
func NewRelic(app *newrelic.Application) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if app == nil {
				h.ServeHTTP(w, r)
				return
			}

			txn := app.StartTransaction(r.Method + " " + routeTemplate(r))
			defer txn.End()
			w = txn.SetWebResponse(w)
			txn.SetWebRequestHTTP(r)
			r = newrelic.RequestWithTransactionContext(r, txn)
			h.ServeHTTP(w, r)
		})
	}
}
