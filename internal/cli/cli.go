// Package cli parses the one-shot binary's argument list. The surface
// is deliberately two options and nothing else; the monitoring core's
// perfdata hook is the only intended caller.
package cli

import (
	"fmt"
	"strconv"

	"github.com/nagtools/perfdata-router/internal/perfdata"
)

const Usage = "usage: perfdata-router -c <host|service> -t <timestamp>"

// UsageError covers every argument-validation failure: empty argv,
// unknown option, option without its value, invalid value. None of
// them is reported before validation completes, and no filesystem
// work happens until all of them have been ruled out.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

// Parse validates argv (without the program name) and returns the
// category and event timestamp.
func Parse(args []string) (perfdata.Category, int64, error) {
	if len(args) == 0 {
		return "", 0, usageErrorf("no arguments given")
	}

	var catArg, tsArg string
	var haveCat, haveTs bool

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-c", "-t":
			if i+1 >= len(args) {
				return "", 0, usageErrorf("missing argument for option %s", arg)
			}
			i++
			if arg == "-c" {
				catArg, haveCat = args[i], true
			} else {
				tsArg, haveTs = args[i], true
			}
		default:
			return "", 0, usageErrorf("invalid option %s", arg)
		}
	}

	if !haveCat {
		return "", 0, usageErrorf("option -c is required")
	}
	if !haveTs {
		return "", 0, usageErrorf("option -t is required")
	}

	category, err := perfdata.ParseCategory(catArg)
	if err != nil {
		return "", 0, usageErrorf("%v", err)
	}

	timestamp, err := strconv.ParseInt(tsArg, 10, 64)
	if err != nil || timestamp < 0 {
		return "", 0, usageErrorf("invalid timestamp %q (expected a non-negative integer)", tsArg)
	}

	return category, timestamp, nil
}
