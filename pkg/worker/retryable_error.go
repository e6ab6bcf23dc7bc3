package worker

import "fmt"

// RetryableError tells the worker that the job may be attempted again.
// Retries are still bounded by the handler's MaxAttempts.
type RetryableError struct {
	Cause error
}

func (re *RetryableError) Error() string {
	return fmt.Sprintf("retryable-error: %v", re.Cause)
}

func (re *RetryableError) Unwrap() error { return re.Cause }
