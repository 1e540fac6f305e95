package util

import (
	"context"
	"time"
)

// SimulateLatency blocks for the given duration or until the context is
// cancelled, standing in for the upstream lookups a real deployment would make
func SimulateLatency(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
