package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Warmer pre-fetches upstream data into its own cache.
type Warmer interface {
	Warm(ctx context.Context) error
}

// Refresher keeps the resource catalog warm so user requests are served from
// a fresh cache instead of waiting on the video platform.
type Refresher struct {
	warmer   Warmer
	interval time.Duration
	logger   *slog.Logger
}

func NewRefresher(warmer Warmer, interval time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		warmer:   warmer,
		interval: interval,
		logger:   logger,
	}
}

func (r *Refresher) Start(ctx context.Context) error {
	r.logger.Info("catalog refresher started", "interval", r.interval)

	r.runWarmup(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("catalog refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			r.runWarmup(ctx)
		}
	}
}

func (r *Refresher) runWarmup(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := r.warmer.Warm(warmCtx); err != nil {
		r.logger.Error("catalog warmup failed", "error", err)
	}
}
