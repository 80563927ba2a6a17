package worker_test

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
	"github.com/nagtools/perfdata-router/internal/logging"
	"github.com/nagtools/perfdata-router/internal/mailbox"
	"github.com/nagtools/perfdata-router/internal/perfdata"
	"github.com/nagtools/perfdata-router/internal/router"
	"github.com/nagtools/perfdata-router/internal/worker"
)

func newTestWorker(t *testing.T) (*worker.Worker, *mailbox.Mailbox[worker.Job], string, string) {
	t.Helper()

	base := t.TempDir()
	spoolB := filepath.Join(base, "spool", "perfdata")
	require.NoError(t, os.MkdirAll(spoolB, 0o755))

	paths := config.PathsConfig{
		LiveBaseDir: base,
		SpoolADir:   filepath.Join(base, "nagfluxspool", "perfdata"),
		SpoolBDir:   spoolB,
	}

	log := logging.NewWithWriter(io.Discard, logging.LevelError)
	mb := mailbox.New[worker.Job]()
	w := worker.New(router.New(paths, log, nil), log, mb)

	return w, mb, base, spoolB
}

func TestWorkerRoutesMailboxedJob(t *testing.T) {
	w, mb, base, spoolB := newTestWorker(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	live := filepath.Join(base, "host-perfdata")
	require.NoError(t, os.WriteFile(live, []byte("rta=1ms\n"), 0o644))

	mb.Put(worker.Job{Category: perfdata.Host, Timestamp: 77})

	want := filepath.Join(spoolB, "host_perfdata.77")
	require.Eventually(t, func() bool {
		_, err := os.Stat(want)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	assert.NoFileExists(t, live)
}

func TestWorkerStopsOnCancel(t *testing.T) {
	w, _, _, _ := newTestWorker(t)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}
