package worker

import "context"

//go:generate mockery --name=JobProcessor -r --case underscore --structname JobProcessor --filename job_processor_mock.go --output=./mocks

// JobProcessor is a durable job store. Jobs stay put until ready and
// survive process restarts.
type JobProcessor interface {
	// Enqueue all jobs. Enqueue must ensure all-or-nothing behavior.
	// Jobs with zero-value or historical value for RunAt must be
	// executable immediately.
	Enqueue(ctx context.Context, jobs ...Job) error

	// Process dequeues one ready job of the given types and invokes
	// `fn` while holding a lock on the job. Depending on the result
	// it clears the job, marks it dead, or schedules the retry.
	Process(ctx context.Context, types []string, fn JobExecutorFunc) error
}

// JobExecutorFunc handles a ready job and returns the job updated with
// the result of the attempt.
type JobExecutorFunc func(context.Context, Job) Job

// JobTypeStats summarizes queue depth for one job type.
type JobTypeStats struct {
	Type   string `json:"type"`
	Active int    `json:"active_job_count"`
	Dead   int    `json:"dead_job_count"`
}
