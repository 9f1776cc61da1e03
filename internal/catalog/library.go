package catalog

import (
	"context"
	"log/slog"
	"sync"
)

// Library owns the current Directory snapshot. Rebuilds construct a whole new
// snapshot and install it with a single pointer swap; readers always see a
// consistent directory. Concurrent rebuilds are harmless because scanning is
// idempotent and the last writer wins.
type Library struct {
	root   string
	logger *slog.Logger

	mu  sync.RWMutex
	dir *Directory
}

// NewLibrary creates a Library over a storage root. No scan happens until
// Rebuild is called.
func NewLibrary(root string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{root: root, logger: logger, dir: NewDirectory(nil)}
}

// Rebuild scans the storage root, installs the fresh snapshot, and returns it.
func (l *Library) Rebuild(ctx context.Context) (*Directory, error) {
	dir, err := Scan(ctx, l.root, l.logger)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.dir = dir
	l.mu.Unlock()
	l.logger.Info("library rebuilt", "materials", dir.Len())
	return dir, nil
}

// Snapshot returns the most recently built directory.
func (l *Library) Snapshot() *Directory {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dir
}
