package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/padlink/internal/linkstate"
)

const (
	defaultRetryBase = time.Second
	maxBackoff       = 30 * time.Second
)

// streamer is the part of relay.Client the pump needs.
type streamer interface {
	Stream(ctx context.Context) error
}

// StartRelay launches a background goroutine that keeps a relay stream open,
// reconnecting with backoff. It returns immediately. notify runs after every
// disconnect so the UI can redraw the link status.
func StartRelay(ctx context.Context, client streamer, link *linkstate.Store, notify func(), logger *zap.Logger, base time.Duration) {
	go runRelay(ctx, client, link, notify, logger, base)
}

func runRelay(ctx context.Context, client streamer, link *linkstate.Store, notify func(), logger *zap.Logger, base time.Duration) {
	if base <= 0 {
		base = defaultRetryBase
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for {
		err := client.Stream(ctx)
		if ctx.Err() != nil {
			link.Disconnected(nil, 0)
			return
		}

		delay := calculateBackoff(link.Snapshot().ConsecutiveFailures, base)
		link.Disconnected(err, delay)
		logger.Warn("relay stream ended",
			zap.Error(err),
			zap.Duration("retry_in", delay),
			zap.Int("failures", link.Snapshot().ConsecutiveFailures))
		if notify != nil {
			notify()
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// calculateBackoff doubles base per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return min(base, maxBackoff)
	}
	if failures >= 16 {
		return maxBackoff
	}
	return min(base<<failures, maxBackoff)
}
