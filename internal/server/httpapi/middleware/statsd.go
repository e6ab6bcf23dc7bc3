package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/raystack/meridian/pkg/statsd"
)

// StatsD reports per-route response time and status code counts.
func StatsD(reporter *statsd.Reporter) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if reporter == nil {
				h.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rw := responseWriter(w)
			h.ServeHTTP(rw, r)

			route := routeTemplate(r)
			reporter.Timing("responseTime", time.Since(start)).
				Tag("method", r.Method).
				Tag("url", route).
				Publish()
			reporter.Incr("responseStatusCode").
				Tag("method", r.Method).
				Tag("url", route).
				Tag("statusCode", strconv.Itoa(rw.statusCode)).
				Publish()
		})
	}
}

// routeTemplate prefers the mux route pattern over the raw path so that
// metrics are not exploded by IDs.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

func responseWriter(w http.ResponseWriter) *interceptedResponseWriter {
	return &interceptedResponseWriter{w, http.StatusOK}
}

type interceptedResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *interceptedResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
