package watcher

import (
	"context"
	"time"
)

// runPolling triggers detect() on a fixed interval. It returns on
// shutdown or when a config reload asks for a restart.
func (w *Watcher) runPolling(ctx context.Context) {
	w.mu.RLock()
	interval := w.interval
	w.mu.RUnlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.reloadCh:
			return
		case <-ticker.C:
			w.detect()
		}
	}
}
