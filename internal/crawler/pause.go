package crawler

import (
	"context"
	"time"
)

// TimerPauser implements Pauser with a cancellable timer sleep.
type TimerPauser struct{}

// Pause sleeps for d or until the context is done.
func (TimerPauser) Pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
