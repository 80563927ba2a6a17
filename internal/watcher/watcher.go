// Package watcher monitors one category's live perfdata file and emits
// routing jobs when the monitoring core writes to it.
package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nagtools/perfdata-router/internal/config"
	"github.com/nagtools/perfdata-router/internal/fsprobe"
	"github.com/nagtools/perfdata-router/internal/logging"
	"github.com/nagtools/perfdata-router/internal/mailbox"
	"github.com/nagtools/perfdata-router/internal/perfdata"
	"github.com/nagtools/perfdata-router/internal/worker"
)

// Watcher observes a live perfdata file and enqueues a routing job when
// it has been updated and has settled.
type Watcher struct {
	mu sync.RWMutex

	dir       string
	category  perfdata.Category
	interval  time.Duration
	mode      string
	debounce  time.Duration
	stability time.Duration

	log logging.Logger

	lastModTime time.Time

	mb *mailbox.Mailbox[worker.Job]

	// signaled by UpdateConfig so the running strategy restarts with
	// fresh parameters
	reloadCh chan struct{}
}

// New creates a watcher for one category.
func New(paths config.PathsConfig, watch config.WatchConfig, c perfdata.Category, log logging.Logger, mb *mailbox.Mailbox[worker.Job]) *Watcher {
	return &Watcher{
		dir:       paths.LiveBaseDir,
		category:  c,
		interval:  time.Duration(watch.PollInterval),
		mode:      watch.Mode,
		debounce:  time.Duration(watch.DebounceWindow),
		stability: time.Duration(watch.StabilityWindow),
		log:       log,
		mb:        mb,
		reloadCh:  make(chan struct{}, 1),
	}
}

// Start runs the configured watch strategy until ctx is canceled. The
// strategy captures its directory and windows when it starts, so after
// a hot-reload the current run is torn down and a fresh one started
// with the updated parameters.
func (w *Watcher) Start(ctx context.Context) error {
	for {
		if err := w.runOnce(ctx); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		// UpdateConfig requested a restart.
	}
}

// runOnce picks the watching strategy and runs it until shutdown or a
// config reload.
func (w *Watcher) runOnce(ctx context.Context) error {
	w.mu.RLock()
	mode := w.mode
	dir := w.dir
	w.mu.RUnlock()

	switch mode {
	case "fsnotify":
		return w.runFsNotify(ctx)

	case "poll":
		w.runPolling(ctx)
		return nil

	case "auto":
		res := fsprobe.Probe(dir)
		if res.FsnotifySupported {
			return w.runFsNotify(ctx)
		}
		w.log.Warn("fsnotify disabled for %s: %s", dir, res.Reason)
		w.runPolling(ctx)
		return nil

	default:
		return fmt.Errorf("unknown watch mode %q", mode)
	}
}

// UpdateConfig updates watcher fields atomically for hot-reload and
// restarts the running strategy so they take effect.
func (w *Watcher) UpdateConfig(paths config.PathsConfig, watch config.WatchConfig) {
	w.mu.Lock()

	if paths.LiveBaseDir != w.dir {
		w.lastModTime = time.Time{}
	}

	w.dir = paths.LiveBaseDir
	w.interval = time.Duration(watch.PollInterval)
	w.mode = watch.Mode
	w.debounce = time.Duration(watch.DebounceWindow)
	w.stability = time.Duration(watch.StabilityWindow)

	w.mu.Unlock()

	select {
	case w.reloadCh <- struct{}{}:
	default:
	}
}
