package fs

import (
	"context"
	"os"
)

// wraps os.Rename with retry logic. Renames are the atomic operations
// in the routing sequence: snapshotting the live file and handing the
// snapshot to the authoritative spool.

func renameWithRetry(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}
