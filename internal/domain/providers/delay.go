package providers

import (
	"context"
	"time"
)

// Delayer introduces the simulated latency of mock operations. Injected so
// tests can run with zero real wait time while preserving call ordering.
type Delayer interface {
	Delay(ctx context.Context, d time.Duration)
}

// SleepDelayer waits out the full duration. There is no cancellation: an
// issued delay runs to completion regardless of the context.
type SleepDelayer struct{}

func (SleepDelayer) Delay(_ context.Context, d time.Duration) {
	time.Sleep(d)
}

// NopDelayer skips delays entirely; used in tests.
type NopDelayer struct{}

func (NopDelayer) Delay(context.Context, time.Duration) {}
