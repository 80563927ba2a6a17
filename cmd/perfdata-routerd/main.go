// perfdata-routerd is the daemon form of the router, for hosts whose
// monitoring core cannot exec a perfdata hook. It watches the live
// perfdata files and routes them as they settle, and periodically
// sweeps snapshot debris left by interrupted runs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nagtools/perfdata-router/internal/config"
	"github.com/nagtools/perfdata-router/internal/janitor"
	"github.com/nagtools/perfdata-router/internal/logging"
	"github.com/nagtools/perfdata-router/internal/mailbox"
	"github.com/nagtools/perfdata-router/internal/perfdata"
	"github.com/nagtools/perfdata-router/internal/router"
	"github.com/nagtools/perfdata-router/internal/watcher"
	"github.com/nagtools/perfdata-router/internal/worker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadDefault()
	if err != nil {
		logging.New("error").Error("failed to load config: %v", err)
		os.Exit(2)
	}

	log := logging.New(cfg.Logging.Level)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down")
		cancel()
	}()

	r := router.New(cfg.Paths, log, nil)

	// One watcher + mailbox + worker per category keeps same-category
	// runs strictly serial.
	watchers := make([]*watcher.Watcher, 0, len(perfdata.Categories))
	for _, category := range perfdata.Categories {
		mb := mailbox.New[worker.Job]()

		w := worker.New(r, log, mb)
		go w.Start(ctx)

		watch := watcher.New(cfg.Paths, cfg.Watch, category, log, mb)
		watchers = append(watchers, watch)

		go func() {
			if err := watch.Start(ctx); err != nil {
				log.Error("watcher failed: %v", err)
				cancel()
			}
		}()
	}

	jan := janitor.New(cfg.Paths, cfg.Janitor, log, nil)
	if err := jan.Start(ctx); err != nil {
		log.Error("failed to start janitor: %v", err)
		os.Exit(1)
	}

	// Hot reload on SIGHUP
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGHUP)

		for range sigCh {
			newCfg, err := config.LoadDefault()
			if err != nil {
				log.Error("config reload failed: %v", err)
				continue
			}

			r.UpdateConfig(newCfg.Paths)
			for _, watch := range watchers {
				watch.UpdateConfig(newCfg.Paths, newCfg.Watch)
			}
			jan.UpdateConfig(newCfg.Paths, newCfg.Janitor)

			log.Info("config reloaded")
		}
	}()

	<-ctx.Done()
	log.Info("exit complete")
}
