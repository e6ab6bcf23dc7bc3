package worker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/goto/salt/log"
)

var (
	ErrTypeExists  = errors.New("handler for given job type exists")
	ErrUnknownType = errors.New("job type is invalid")
	ErrJobExists   = errors.New("job with id exists")
	ErrNoJob       = errors.New("no job found")
)

// Worker dequeues ready jobs from a JobProcessor and runs the handler
// registered for each job type.
type Worker struct {
	workers           int
	pollInterval      time.Duration
	activePollPercent float64

	processor JobProcessor
	logger    log.Logger

	mu       sync.RWMutex
	handlers map[string]JobHandler
}

type Option func(w *Worker) error

// New returns a Worker with defaults applied: a noop logger, a single
// worker thread and a 1s poll interval.
func New(processor JobProcessor, opts ...Option) (*Worker, error) {
	w := &Worker{
		processor: processor,
		handlers:  make(map[string]JobHandler),
	}
	for _, opt := range withDefaults(opts) {
		if err := opt(w); err != nil {
			return nil, fmt.Errorf("new worker: %w", err)
		}
	}

	return w, nil
}

// Register binds a handler to a job type. Returns ErrTypeExists when
// the type already has a handler.
func (w *Worker) Register(typ string, h JobHandler) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.handlers[typ]; exists {
		return fmt.Errorf("register handler: %w: type '%s'", ErrTypeExists, typ)
	}
	if err := h.Sanitize(); err != nil {
		return fmt.Errorf("register handler: %w: type '%s'", err, typ)
	}

	w.handlers[typ] = h
	return nil
}

// Enqueue enqueues all jobs for processing.
func (w *Worker) Enqueue(ctx context.Context, jobs ...JobSpec) error {
	execs := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		je, err := NewJob(j)
		if err != nil {
			return fmt.Errorf("worker enqueue: %w", err)
		}

		execs = append(execs, je)
	}

	return w.processor.Enqueue(ctx, execs...)
}

// Run starts the worker threads that poll and process ready jobs. It
// blocks until the context is canceled, then shuts the threads down
// gracefully.
func (w *Worker) Run(baseCtx context.Context) error {
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	activePollWorkers := (int)(math.Ceil((float64)(w.workers) * w.activePollPercent / 100))

	var wg sync.WaitGroup
	wg.Add(w.workers)
	for i := 0; i < w.workers; i++ {
		go func(id int) {
			defer wg.Done()

			w.runWorker(ctx, id < activePollWorkers)
			w.logger.Info("worker exited", "worker_id", id)
		}(i)
	}
	wg.Wait()

	w.logger.Info("all worker threads exited")
	return cleanupCtxErr(ctx.Err())
}

// runWorker polls the processor in a loop. Active-poll workers keep a
// constant interval; the rest back off exponentially while the queue
// stays empty so an idle deployment does not hammer the database.
func (w *Worker) runWorker(ctx context.Context, activePoll bool) {
	timer := time.NewTimer(w.pollInterval)
	defer timer.Stop()

	var backoff BackoffStrategy = ConstBackoff{Delay: w.pollInterval}
	if !activePoll {
		backoff = &ExponentialBackoff{
			Multiplier:   1.6,
			InitialDelay: w.pollInterval,
			MaxDelay:     5 * time.Second,
			Jitter:       0.5,
		}
	}

	pollAttempt := 1
	for {
		select {
		case <-ctx.Done():
			return

		case <-timer.C:
			types := w.getTypes()
			if len(types) == 0 {
				w.logger.Warn("no job-handler registered, skipping processing")
				continue
			}

			w.logger.Debug("looking for a job", "types", types, "active_poll", activePoll)
			switch err := w.processor.Process(ctx, types, w.processJob); {
			case err != nil && errors.Is(err, ErrNoJob):
				pollAttempt++

			case err != nil:
				w.logger.Error("process job failed", "err", err)
				pollAttempt = 1

			default:
				pollAttempt = 1
			}
			timer.Reset(backoff.Backoff(pollAttempt))
		}
	}
}

func (w *Worker) processJob(ctx context.Context, job Job) Job {
	const invalidTypeBackoff = 5 * time.Minute

	start := time.Now()
	w.logger.Info("got a job for processing",
		"job_id", job.ID,
		"job_type", job.Type,
	)

	h, ok := w.jobHandler(job.Type)
	if !ok {
		// should not happen, Process filters on registered types
		job.LastError = ErrUnknownType.Error()
		job.RunAt = time.Now().Add(invalidTypeBackoff)
		return job
	}

	job.Attempt(ctx, time.Now(), h)

	w.logger.Info("job attempted",
		"job_id", job.ID,
		"attempts_done", job.AttemptsDone,
		"job_status", job.Status,
		"last_error", job.LastError,
		"time_ms", time.Since(start).Milliseconds(),
	)

	return job
}

func (w *Worker) jobHandler(typ string) (JobHandler, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	h, ok := w.handlers[typ]
	return h, ok
}

func (w *Worker) getTypes() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var types []string
	for typ := range w.handlers {
		types = append(types, typ)
	}
	return types
}

func cleanupCtxErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
