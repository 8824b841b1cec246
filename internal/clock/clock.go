package clock

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
	// After fires once, d after the call.
	After(d time.Duration) <-chan time.Time
	// Sleep blocks for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

const Time = "03:04:05 PM"

type SystemClock struct{}

func NewSystemClock() Clock {
	return &SystemClock{}
}

func (r *SystemClock) Now() time.Time {
	return time.Now()
}

func (r *SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (r *SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
