package locker

import "sync"

// Locker guards journal runs against double execution inside one cron
// process. A run is claimed atomically; the claim is dropped on release.
type Locker struct {
	mu      sync.Mutex
	running map[int64]bool
}

func New() *Locker {
	return &Locker{
		running: make(map[int64]bool),
	}
}

// TryAcquire claims a run ID. Returns false if another worker already holds it.
func (l *Locker) TryAcquire(logID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running[logID] {
		return false
	}
	l.running[logID] = true
	return true
}

// Release drops the claim on a run ID.
func (l *Locker) Release(logID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.running, logID)
}
