// Package perfdata names the files a routing run touches: the live file
// the monitoring core appends to, the per-run snapshot, and the final
// spool file downstream consumers poll for.
package perfdata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// Category selects which perfdata file pair an invocation works on.
type Category string

const (
	Host    Category = "host"
	Service Category = "service"
)

// Categories lists every valid category in a stable order.
var Categories = []Category{Host, Service}

// ParseCategory accepts exactly "host" or "service".
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Host, Service:
		return Category(s), nil
	}
	return "", fmt.Errorf("invalid category %q (expected host or service)", s)
}

// LiveFile returns the path the monitoring core appends perfdata lines to.
func LiveFile(baseDir string, c Category) string {
	return filepath.Join(baseDir, string(c)+"-perfdata")
}

// SnapshotFile returns the path the live file is renamed to for one run.
func SnapshotFile(baseDir string, c Category, nonce string) string {
	return filepath.Join(baseDir, string(c)+"-perfdata-"+nonce)
}

// SpoolFile returns the final name written into a spool directory.
// The format is frozen: nagflux and npcd both match on it.
func SpoolFile(spoolDir string, c Category, timestamp int64) string {
	return filepath.Join(spoolDir, fmt.Sprintf("%s_perfdata.%d", c, timestamp))
}

// ParseSnapshotName reports whether name is a snapshot file for some
// category. Used by the janitor to find debris from interrupted runs.
func ParseSnapshotName(name string) (Category, bool) {
	for _, c := range Categories {
		prefix := string(c) + "-perfdata-"
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return c, true
		}
	}
	return "", false
}

var seq atomic.Uint64

// Nonce returns a snapshot suffix unique across runs on one host. The
// leading unix-seconds component keeps the name operator-readable; pid
// and a per-process counter close the same-second collision window.
func Nonce() string {
	return fmt.Sprintf("%d-%d-%d", time.Now().Unix(), os.Getpid(), seq.Add(1))
}
