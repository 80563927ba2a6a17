package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nagtools/perfdata-router/internal/perfdata"
)

// runFsNotify triggers detect() when fsnotify reports writes to the
// live file, debounced so a burst of appends becomes one detection.
// It returns on shutdown or when a config reload asks for a restart.
func (w *Watcher) runFsNotify(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	w.mu.RLock()
	dir := w.dir
	debounce := w.debounce
	liveName := filepath.Base(perfdata.LiveFile(dir, w.category))
	w.mu.RUnlock()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	// Channel to request debounce resets; closed on exit so the
	// debounce goroutine terminates with this run. A pending timer is
	// left to fire: detect() re-reads the current state, so a late
	// detection is harmless.
	resetCh := make(chan struct{}, 1)
	defer close(resetCh)

	// Debounce goroutine
	go func() {
		var t *time.Timer
		for range resetCh {
			if t != nil {
				t.Stop()
			}
			t = time.AfterFunc(debounce, func() {
				defer func() {
					if r := recover(); r != nil {
						w.log.Error("detect panic: %v", r)
					}
				}()
				w.detect()
			})
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.reloadCh:
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				w.log.Error("fsnotify events channel closed for %s", dir)
				return nil
			}

			if filepath.Base(ev.Name) != liveName {
				continue
			}

			w.log.Debug("fsnotify %s on %s", ev.Op, ev.Name)

			// Non-blocking send to reset debounce
			select {
			case resetCh <- struct{}{}:
			default:
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("fsnotify error: %v", err)
		}
	}
}
