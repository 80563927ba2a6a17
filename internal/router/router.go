// Package router implements the perfdata routing sequence: snapshot the
// live file, duplicate into spool A when present, hand off to spool B
// when present, and never leave the snapshot behind.
package router

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/nagtools/perfdata-router/internal/config"
	"github.com/nagtools/perfdata-router/internal/fs"
	"github.com/nagtools/perfdata-router/internal/logging"
	"github.com/nagtools/perfdata-router/internal/perfdata"
)

// Router relocates one category's perfdata for one monitoring event.
type Router struct {
	mu    sync.RWMutex
	paths config.PathsConfig

	fs    fs.FS
	log   logging.Logger
	nonce func() string
}

// New creates a router over the configured directories.
func New(paths config.PathsConfig, log logging.Logger, filesystem fs.FS) *Router {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Router{
		paths: paths,
		fs:    filesystem,
		log:   log,
		nonce: perfdata.Nonce,
	}
}

// Route runs the four-step sequence for one event. A missing live file
// means no perfdata was produced this cycle and is a normal no-op.
//
// The spool steps are independent consumers: each is attempted
// regardless of the other's outcome, and cleanup runs whenever a
// snapshot is still on disk. All step failures are logged individually
// and returned joined.
func (r *Router) Route(ctx context.Context, c perfdata.Category, timestamp int64) error {
	r.mu.RLock()
	paths := r.paths
	r.mu.RUnlock()

	live := perfdata.LiveFile(paths.LiveBaseDir, c)
	snap := perfdata.SnapshotFile(paths.LiveBaseDir, c, r.nonce())

	if _, err := r.fs.Stat(live); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.log.Debug("no %s perfdata this cycle, nothing to route", c)
			return nil
		}
		r.log.Error("stat %s: %v", live, err)
		return fmt.Errorf("checking live perfdata: %w", err)
	}

	if err := r.fs.Rename(ctx, live, snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// The live file vanished between stat and rename; same
			// no-op as it never having existed.
			r.log.Debug("no %s perfdata this cycle, nothing to route", c)
			return nil
		}
		// Nothing to fan out without a snapshot.
		r.log.Error("snapshotting %s: %v", live, err)
		return fmt.Errorf("snapshotting live perfdata: %w", err)
	}

	var errs []error

	// Spool A is a duplication target: the copy leaves the snapshot in
	// place so spool B is never starved.
	if r.fs.DirExists(paths.SpoolADir) {
		dst := perfdata.SpoolFile(paths.SpoolADir, c, timestamp)
		if err := r.fs.CopyFile(ctx, snap, dst); err != nil {
			r.log.Error("copying %s to %s: %v", snap, dst, err)
			errs = append(errs, fmt.Errorf("copying to spool A: %w", err))
		}
	}

	// Spool B is the authoritative consumer: the rename hands it the
	// snapshot outright.
	if r.fs.DirExists(paths.SpoolBDir) {
		dst := perfdata.SpoolFile(paths.SpoolBDir, c, timestamp)
		if err := r.fs.Rename(ctx, snap, dst); err != nil {
			r.log.Error("moving %s to %s: %v", snap, dst, err)
			errs = append(errs, fmt.Errorf("moving to spool B: %w", err))
		}
	}

	// Whatever was not consumed must not outlive the run.
	if _, err := r.fs.Stat(snap); err == nil {
		if err := r.fs.Remove(ctx, snap); err != nil {
			r.log.Error("removing %s: %v", snap, err)
			errs = append(errs, fmt.Errorf("removing snapshot: %w", err))
		}
	}

	return errors.Join(errs...)
}

// UpdateConfig hot-reloads the directory layout.
func (r *Router) UpdateConfig(paths config.PathsConfig) {
	r.mu.Lock()
	r.paths = paths
	r.mu.Unlock()
}
