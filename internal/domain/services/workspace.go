package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkspaceCleaner removes a label's temporary working subdirectory under
// the cache root.
type WorkspaceCleaner struct {
	cacheRoot string
}

// NewWorkspaceCleaner creates a workspace cleaner rooted at the cache
// directory.
func NewWorkspaceCleaner(cacheRoot string) *WorkspaceCleaner {
	return &WorkspaceCleaner{cacheRoot: cacheRoot}
}

// CleanTmp deletes "<cacheRoot>/<label>/tmp" if present. An absent workspace
// is a success, so the operation is idempotent. Callers decide whether a
// failure matters to their larger workflow.
func (w *WorkspaceCleaner) CleanTmp(label string) error {
	path := filepath.Join(w.cacheRoot, label, "tmp")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove tmp workspace %s: %w", path, err)
	}
	return nil
}
