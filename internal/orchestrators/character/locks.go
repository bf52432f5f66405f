package character

import "sync"

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// draftLocks hands out one mutex per draft ID and forgets it once unused
type draftLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

func newDraftLocks() *draftLocks {
	return &draftLocks{entries: make(map[string]*lockEntry)}
}

// lock blocks until id is free and returns the matching unlock
func (l *draftLocks) lock(id string) func() {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		e = &lockEntry{}
		l.entries[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, id)
		}
		l.mu.Unlock()
	}
}

func (l *draftLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
