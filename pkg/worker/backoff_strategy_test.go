package worker_test

import (
	"testing"
	"time"

	"github.com/raystack/meridian/pkg/worker"
	"github.com/stretchr/testify/assert"
)

func TestConstBackoff(t *testing.T) {
	b := worker.ConstBackoff{Delay: 2 * time.Second}
	assert.Equal(t, 2*time.Second, b.Backoff(1))
	assert.Equal(t, 2*time.Second, b.Backoff(100))
}

func TestLinearBackoff(t *testing.T) {
	b := worker.LinearBackoff{
		InitialDelay: 1 * time.Second,
		MaxDelay:     5 * time.Second,
	}
	assert.Equal(t, 1*time.Second, b.Backoff(1))
	assert.Equal(t, 3*time.Second, b.Backoff(3))
	assert.Equal(t, 5*time.Second, b.Backoff(10))
}

func TestLinearModBackoff(t *testing.T) {
	b := worker.LinearModBackoff{
		InitialDelay: 1 * time.Second,
		MaxDelay:     5 * time.Second,
	}
	assert.Equal(t, 1*time.Second, b.Backoff(1))
	assert.Equal(t, 4*time.Second, b.Backoff(4))
	assert.Equal(t, 1*time.Second, b.Backoff(6))
}

func TestExponentialBackoff(t *testing.T) {
	b := &worker.ExponentialBackoff{
		Multiplier:   2,
		InitialDelay: 1 * time.Second,
		MaxDelay:     10 * time.Second,
	}
	assert.Equal(t, 1*time.Second, b.Backoff(1))
	assert.Equal(t, 2*time.Second, b.Backoff(2))
	assert.Equal(t, 8*time.Second, b.Backoff(4))
	assert.Equal(t, 10*time.Second, b.Backoff(20))
}

func TestBackoffFunc(t *testing.T) {
	b := worker.BackoffFunc(func(attempt int) time.Duration {
		return time.Duration(attempt) * time.Millisecond
	})
	assert.Equal(t, 3*time.Millisecond, b.Backoff(3))
}
