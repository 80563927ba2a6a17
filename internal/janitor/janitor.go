// Package janitor removes snapshot files left behind by interrupted
// runs. A completed run never leaves a snapshot, so anything matching
// the snapshot name pattern and older than the configured age is debris.
package janitor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nagtools/perfdata-router/internal/config"
	"github.com/nagtools/perfdata-router/internal/fs"
	"github.com/nagtools/perfdata-router/internal/logging"
	"github.com/nagtools/perfdata-router/internal/perfdata"
)

type Janitor struct {
	mu       sync.RWMutex
	dir      string
	maxAge   time.Duration
	schedule string

	log logging.Logger
	fs  fs.FS
}

func New(paths config.PathsConfig, cfg config.JanitorConfig, log logging.Logger, filesystem fs.FS) *Janitor {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Janitor{
		dir:      paths.LiveBaseDir,
		maxAge:   time.Duration(cfg.MaxAge),
		schedule: cfg.Schedule,
		log:      log,
		fs:       filesystem,
	}
}

// Start schedules sweeps with the configured cron spec and stops the
// scheduler when ctx is canceled.
func (j *Janitor) Start(ctx context.Context) error {
	c := cron.New()

	if _, err := c.AddFunc(j.schedule, func() { j.Sweep(ctx) }); err != nil {
		return fmt.Errorf("janitor schedule %q: %w", j.schedule, err)
	}

	c.Start()

	go func() {
		<-ctx.Done()
		c.Stop()
	}()

	return nil
}

// Sweep deletes orphaned snapshot files older than maxAge.
func (j *Janitor) Sweep(ctx context.Context) {
	j.mu.RLock()
	dir := j.dir
	maxAge := j.maxAge
	j.mu.RUnlock()

	entries, err := os.ReadDir(dir)
	if err != nil {
		j.log.Error("janitor: reading %s: %v", dir, err)
		return
	}

	cutoff := time.Now().Add(-maxAge)

	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}

		if _, ok := perfdata.ParseSnapshotName(ent.Name()); !ok {
			continue
		}

		full := filepath.Join(dir, ent.Name())

		info, err := ent.Info()
		if err != nil {
			continue
		}

		if !info.ModTime().Before(cutoff) {
			// Could still belong to a run in flight.
			continue
		}

		if err := j.fs.Remove(ctx, full); err != nil {
			j.log.Error("janitor: removing %s: %v", full, err)
			continue
		}
		j.log.Info("janitor: removed orphaned snapshot %s", full)
	}
}

// UpdateConfig hot-reloads the sweep parameters. A schedule change
// takes effect on daemon restart.
func (j *Janitor) UpdateConfig(paths config.PathsConfig, cfg config.JanitorConfig) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.dir = paths.LiveBaseDir
	j.maxAge = time.Duration(cfg.MaxAge)
}
