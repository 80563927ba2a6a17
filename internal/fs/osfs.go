package fs

import (
	"context"
	"os"
)

// OSFS is the concrete implementation of FS backed by the local OS
// filesystem. Platform-specific details (such as inode extraction) are
// handled in build-tagged files.
type OSFS struct{}

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:  path,
		Size:  st.Size(),
		MTime: st.ModTime(),
		Inode: inodeOf(st),
	}, nil
}

// DirExists is the routing condition: a spool directory's presence is
// the only signal that its consumer is active on this host.
func (o *OSFS) DirExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

func (o *OSFS) CopyFile(ctx context.Context, src, dst string) error {
	return copyWithRetry(ctx, o, src, dst)
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return renameWithRetry(ctx, oldPath, newPath)
}

func (o *OSFS) Remove(ctx context.Context, path string) error {
	return removeWithRetry(ctx, path)
}
