package worker

import (
	"math"
	"math/rand"
	"time"
)

//nolint:gosec
var randFloat = rand.New(rand.NewSource(time.Now().UnixNano())).Float64

// BackoffStrategy maps a retry attempt number to a wait duration.
type BackoffStrategy interface {
	Backoff(attempt int) time.Duration
}

// BackoffFunc adapts an ordinary function into a BackoffStrategy
type BackoffFunc func(attempt int) time.Duration

func (s BackoffFunc) Backoff(attempt int) time.Duration { return s(attempt) }

type ConstBackoff struct {
	// Delay is the time duration to wait before each retry attempt
	Delay time.Duration
}

func (c ConstBackoff) Backoff(int) time.Duration { return c.Delay }

// LinearModBackoff backs off linearly, wrapping around at MaxDelay so
// the wait oscillates between [0, MaxDelay] in a sawtooth pattern.
type LinearModBackoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func (l LinearModBackoff) Backoff(attempt int) time.Duration {
	return (l.InitialDelay * time.Duration(attempt)) % l.MaxDelay
}

// LinearBackoff backs off linearly starting at InitialDelay, capping at MaxDelay.
type LinearBackoff struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func (l LinearBackoff) Backoff(attempt int) time.Duration {
	if d := l.InitialDelay * time.Duration(attempt); d < l.MaxDelay {
		return d
	}
	return l.MaxDelay
}

// ExponentialBackoff grows the wait by Multiplier each attempt, capped
// at MaxDelay, with optional random jitter.
type ExponentialBackoff struct {
	Multiplier   float64
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// Jitter is the fraction of the computed duration randomly added
	// on top of it.
	Jitter float64
}

func (b *ExponentialBackoff) Backoff(attempt int) time.Duration {
	duration := b.InitialDelay * time.Duration(math.Pow(b.Multiplier, float64(attempt-1)))

	if b.MaxDelay > 0 && duration > b.MaxDelay {
		duration = b.MaxDelay
	}

	if b.Jitter > 0 {
		duration += time.Duration(randFloat() * b.Jitter * float64(duration))
	}

	return duration
}

var DefaultExponentialBackoff = &ExponentialBackoff{
	Multiplier:   1.6,
	InitialDelay: 1 * time.Second,
	MaxDelay:     900 * time.Second,
	Jitter:       0.2,
}
