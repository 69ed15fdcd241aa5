package worker

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// OrderRefresher reloads the order collection from the backend
type OrderRefresher interface {
	Refresh(ctx context.Context, filters url.Values) error
}

// RefreshWorker periodically refreshes the order collection so the
// dashboard stays close to backend state between explicit reloads
type RefreshWorker struct {
	svc      OrderRefresher
	interval time.Duration
	logger   *zap.Logger
}

// NewRefreshWorker creates new RefreshWorker instance
func NewRefreshWorker(svc OrderRefresher, interval time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{
		svc:      svc,
		interval: interval,
		logger:   logger,
	}
}

// Run refreshes the collection on a ticker until the context is cancelled.
// A failed refresh keeps the previous collection and is retried next tick.
func (w *RefreshWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("refresh worker is done")
			return
		case <-ticker.C:
			if err := w.svc.Refresh(ctx, nil); err != nil {
				w.logger.Error("background refresh failed", zap.Error(err))
			}
		}
	}
}
