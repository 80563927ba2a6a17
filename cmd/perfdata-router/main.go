// perfdata-router is the one-shot hook the monitoring core runs for
// each "process performance data" event. It snapshots the live perfdata
// file for one category and fans it out to whichever spool directories
// exist on this host.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nagtools/perfdata-router/internal/cli"
	"github.com/nagtools/perfdata-router/internal/config"
	"github.com/nagtools/perfdata-router/internal/logging"
	"github.com/nagtools/perfdata-router/internal/router"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// No filesystem work happens until the arguments are fully valid.
	category, timestamp, err := cli.Parse(args)
	if err != nil {
		logging.New("error").Error("%v", err)
		fmt.Fprintln(os.Stderr, cli.Usage)
		return 2
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		logging.New("error").Error("%v", err)
		return 2
	}

	log := logging.New(cfg.Logging.Level)

	r := router.New(cfg.Paths, log, nil)
	if err := r.Route(context.Background(), category, timestamp); err != nil {
		// Step failures were already logged individually.
		return 1
	}

	return 0
}
