// Package worker drains routing jobs produced by the watchers.
package worker

import (
	"context"

	"github.com/google/uuid"

	"github.com/nagtools/perfdata-router/internal/logging"
	"github.com/nagtools/perfdata-router/internal/mailbox"
	"github.com/nagtools/perfdata-router/internal/perfdata"
	"github.com/nagtools/perfdata-router/internal/router"
)

// Job is one routing request: a category and the event timestamp the
// final spool files are named after.
type Job struct {
	Category  perfdata.Category
	Timestamp int64
}

// Worker pulls jobs from a mailbox and runs the router on them. The
// daemon runs one worker per category, which preserves the invariant
// that same-category runs never overlap.
type Worker struct {
	router *router.Router
	log    logging.Logger
	mb     *mailbox.Mailbox[Job]
}

func New(r *router.Router, log logging.Logger, mb *mailbox.Mailbox[Job]) *Worker {
	return &Worker{
		router: r,
		log:    log,
		mb:     mb,
	}
}

// Start runs the worker loop using mailbox semantics until ctx is
// canceled.
func (w *Worker) Start(ctx context.Context) {
	for {
		job, ok := w.mb.TakeCtx(ctx)
		if !ok {
			return
		}

		run := uuid.NewString()
		w.log.Info("run %s: routing %s perfdata for event %d", run, job.Category, job.Timestamp)

		if err := w.router.Route(ctx, job.Category, job.Timestamp); err != nil {
			w.log.Error("run %s: %v", run, err)
		}
	}
}
