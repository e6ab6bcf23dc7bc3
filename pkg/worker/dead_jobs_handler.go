package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//go:generate mockery --name=DeadJobManager -r --case underscore --structname DeadJobManager --filename dead_job_manager_mock.go --output=./mocks

// DeadJobManager exposes the jobs that exhausted their retries.
type DeadJobManager interface {
	DeadJobs(ctx context.Context, size, offset int) ([]Job, error)
	Resurrect(ctx context.Context, jobIDs []string) error
	ClearDeadJobs(ctx context.Context, jobIDs []string) error
}

const (
	listDeadJobsPath  = "/dead-jobs"
	resurrectJobsPath = "/resurrect-jobs"
	clearJobsPath     = "/clear-jobs"
)

// DeadJobManagementHandler returns an http handler with JSON endpoints
// for dead job management:
//   - GET /dead-jobs: paginated list of dead jobs.
//   - POST /resurrect-jobs: move the given dead jobs back to the queue.
//   - POST /clear-jobs: drop the given dead jobs permanently.
func DeadJobManagementHandler(mgr DeadJobManager) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(
		listDeadJobsPath,
		otelhttp.NewMiddleware("list_dead_jobs")(
			otelhttp.WithRouteTag(listDeadJobsPath, deadJobsHandler(mgr)),
		),
	)
	mux.Handle(
		resurrectJobsPath,
		otelhttp.NewMiddleware("resurrect_jobs")(
			otelhttp.WithRouteTag(resurrectJobsPath, jobIDsHandler(mgr.Resurrect)),
		),
	)
	mux.Handle(
		clearJobsPath,
		otelhttp.NewMiddleware("clear_jobs")(
			otelhttp.WithRouteTag(clearJobsPath, jobIDsHandler(mgr.ClearDeadJobs)),
		),
	)
	return mux
}

func deadJobsHandler(mgr DeadJobManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qry := r.URL.Query()
		size, err := strconv.Atoi(qry.Get("size"))
		if err != nil || size <= 0 {
			size = 20
		}

		offset, _ := strconv.Atoi(qry.Get("offset"))
		if offset <= 0 {
			offset = 0
		}

		jobs, err := mgr.DeadJobs(r.Context(), size, offset)
		if err != nil {
			writeJSONResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeJSONResponse(w, http.StatusOK, jobs)
	}
}

func jobIDsHandler(fn func(context.Context, []string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSONResponse(w, http.StatusBadRequest, err)
			return
		}

		jobIDs := r.Form["job_ids"]
		if len(jobIDs) == 0 {
			writeJSONResponse(w, http.StatusBadRequest, map[string]interface{}{
				"error": "no job IDs specified",
			})
			return
		}

		if err := fn(r.Context(), jobIDs); err != nil {
			writeJSONResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeJSONResponse(w, http.StatusOK, map[string]interface{}{"success": true})
	}
}

func writeJSONResponse(w http.ResponseWriter, status int, v interface{}) {
	if err, ok := v.(error); ok {
		v = map[string]interface{}{"error": err.Error()}
	}

	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "encode response failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
