package watcher

import (
	"os"

	"github.com/nagtools/perfdata-router/internal/perfdata"
	"github.com/nagtools/perfdata-router/internal/worker"
)

// detect enqueues a routing job if the live file changed since the last
// observation and has settled. The event timestamp is the file's mtime,
// which is when the monitoring core last flushed perfdata into it.
func (w *Watcher) detect() {
	w.mu.RLock()
	dir := w.dir
	category := w.category
	last := w.lastModTime
	w.mu.RUnlock()

	path := perfdata.LiveFile(dir, category)

	info, err := os.Stat(path)
	if err != nil {
		// Absent live file means no perfdata this cycle.
		return
	}

	mod := info.ModTime()
	if !mod.After(last) {
		return
	}

	if !w.isLiveFileStable() {
		// The core is still writing; the next event or poll tick will
		// pick the file up once it settles.
		return
	}

	w.mu.Lock()
	w.lastModTime = mod
	w.mu.Unlock()

	w.mb.Put(worker.Job{Category: category, Timestamp: mod.Unix()})
}
