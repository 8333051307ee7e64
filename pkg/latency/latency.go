// Package latency simulates network round-trip time for a backend that is
// otherwise entirely in-memory.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d, returning early with ctx.Err() if the context is
// cancelled first. A non-positive d returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
