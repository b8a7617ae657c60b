// Package workdir manages the lifecycle of the scratch directory that holds
// bucket files for one run, following store.go's translateIndex pattern:
// os.MkdirTemp followed by a deferred os.RemoveAll, here applied to the
// bucket directory rather than to index shards.
package workdir

import (
	"fmt"
	"os"

	"github.com/routingcycle/routingcycle/bucket"
)

// Dir is a temporary directory and whether it should be removed on Close.
type Dir struct {
	Path string
	keep bool
}

// New creates a fresh temporary directory under parent (OS default if
// parent is empty). If keep is true, Close leaves the directory on disk
// instead of removing it, for debugging failed runs (--keep-work-dir).
func New(parent string, keep bool) (*Dir, error) {
	path, err := os.MkdirTemp(parent, "routingcycle-")
	if err != nil {
		return nil, fmt.Errorf("workdir: create: %w", err)
	}
	return &Dir{Path: path, keep: keep}, nil
}

// BucketPath returns the path bucket file index would live at within d.
func (d *Dir) BucketPath(index int) string {
	return bucket.FileName(d.Path, index)
}

// Close removes the directory tree, unless the guard was constructed with
// keep=true.
func (d *Dir) Close() error {
	if d.keep {
		return nil
	}
	if err := os.RemoveAll(d.Path); err != nil {
		return fmt.Errorf("workdir: remove %s: %w", d.Path, err)
	}
	return nil
}
