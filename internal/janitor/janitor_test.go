package janitor_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagtools/perfdata-router/internal/config"
	"github.com/nagtools/perfdata-router/internal/janitor"
	"github.com/nagtools/perfdata-router/internal/logging"
)

func writeAged(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, old, old))
}

func TestSweepRemovesOnlyStaleSnapshots(t *testing.T) {
	dir := t.TempDir()

	staleHost := filepath.Join(dir, "host-perfdata-1700000000-42-1")
	staleService := filepath.Join(dir, "service-perfdata-1700000000-42-2")
	freshSnapshot := filepath.Join(dir, "host-perfdata-1700000100-42-3")
	liveFile := filepath.Join(dir, "host-perfdata")
	unrelated := filepath.Join(dir, "nagios.log")

	writeAged(t, staleHost, 2*time.Hour)
	writeAged(t, staleService, 2*time.Hour)
	writeAged(t, freshSnapshot, time.Minute)
	writeAged(t, liveFile, 3*time.Hour)
	writeAged(t, unrelated, 3*time.Hour)

	j := janitor.New(
		config.PathsConfig{LiveBaseDir: dir},
		config.JanitorConfig{Schedule: "@hourly", MaxAge: config.Duration(time.Hour)},
		logging.NewWithWriter(io.Discard, logging.LevelError),
		nil,
	)

	j.Sweep(context.Background())

	assert.NoFileExists(t, staleHost)
	assert.NoFileExists(t, staleService)

	// Fresh snapshots may belong to a run in flight; the live file and
	// unrelated files are never the janitor's business.
	assert.FileExists(t, freshSnapshot)
	assert.FileExists(t, liveFile)
	assert.FileExists(t, unrelated)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	j := janitor.New(
		config.PathsConfig{LiveBaseDir: t.TempDir()},
		config.JanitorConfig{Schedule: "not a cron spec", MaxAge: config.Duration(time.Hour)},
		logging.NewWithWriter(io.Discard, logging.LevelError),
		nil,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, j.Start(ctx))
}
