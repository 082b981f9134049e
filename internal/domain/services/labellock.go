package services

import "sync"

// LabelLocks provides per-title mutual exclusion so two workflows touching
// the same title (for example an upload and a removal) cannot interleave.
// Locks are keyed by the title folder name ("<label>_<trackingID>").
type LabelLocks struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLabelLocks creates an empty lock registry.
func NewLabelLocks() *LabelLocks {
	return &LabelLocks{held: make(map[string]struct{})}
}

// TryAcquire takes the lock for a title folder. It reports false when
// another workflow already holds it; it never blocks.
func (l *LabelLocks) TryAcquire(labelFolderName string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[labelFolderName]; ok {
		return false
	}
	l.held[labelFolderName] = struct{}{}
	return true
}

// Release frees the lock for a title folder. Releasing an unheld lock is a
// no-op.
func (l *LabelLocks) Release(labelFolderName string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, labelFolderName)
}
