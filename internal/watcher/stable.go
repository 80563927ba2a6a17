package watcher

import (
	"os"
	"time"

	"github.com/nagtools/perfdata-router/internal/perfdata"
)

// isLiveFileStable reports whether the live file's size held steady
// across the stability window.
func (w *Watcher) isLiveFileStable() bool {
	w.mu.RLock()
	path := perfdata.LiveFile(w.dir, w.category)
	stability := w.stability
	w.mu.RUnlock()

	info1, err := os.Stat(path)
	if err != nil {
		return false
	}

	size1 := info1.Size()

	time.Sleep(stability)

	info2, err := os.Stat(path)
	if err != nil {
		return false
	}

	return size1 == info2.Size()
}
