package schedule

import (
	"context"
	"time"

	"github.com/storesmith/listing-tools/internal/logging"
)

// WaitUntil blocks until target, logging a countdown at intervals that
// tighten as the start time approaches (>1h every 60s, >10min every 30s,
// >1min every 10s, then every second). Returns immediately when target is
// already past, and ctx.Err() when the context ends first.
func WaitUntil(ctx context.Context, target time.Time) error {
	remaining := time.Until(target)
	if remaining <= 0 {
		return nil
	}

	logging.Info("Waiting until %s (%s remaining)", target.Format("2006-01-02 15:04:05"), remaining.Round(time.Second))

	for {
		remaining = time.Until(target)
		if remaining <= 0 {
			return nil
		}

		interval := countdownInterval(remaining)
		if interval > remaining {
			interval = remaining
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			remaining = time.Until(target)
			if remaining <= 0 {
				return nil
			}
			logging.Info("%s until start", remaining.Round(time.Second))
		}
	}
}

func countdownInterval(remaining time.Duration) time.Duration {
	switch {
	case remaining > time.Hour:
		return 60 * time.Second
	case remaining > 10*time.Minute:
		return 30 * time.Second
	case remaining > time.Minute:
		return 10 * time.Second
	default:
		return time.Second
	}
}
