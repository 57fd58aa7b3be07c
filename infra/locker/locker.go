package locker

import "sync"

// Locker tracks keys that are currently being worked on.
type Locker struct {
	mu           sync.Mutex
	inProcessMap map[string]struct{}
}

func New() *Locker {
	return &Locker{
		inProcessMap: make(map[string]struct{}),
	}
}

// TryLock marks key as in progress. It returns false when key is already held.
func (l *Locker) TryLock(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, held := l.inProcessMap[key]; held {
		return false
	}
	l.inProcessMap[key] = struct{}{}
	return true
}

func (l *Locker) Unlock(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcessMap, key)
}
