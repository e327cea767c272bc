// Package keylock provides mutual exclusion per string key.
//
// Operations on different keys proceed concurrently; operations on the same key
// are serialized. Entries are reference counted and removed once no goroutine
// holds or waits for them, so the map only contains keys in use.
package keylock

import (
	"slices"
	"sync"
)

// Locker hands out per-key locks. The zero value is ready to use.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New returns an empty Locker.
func New() *Locker {
	return &Locker{}
}

// Lock acquires every key and returns a function releasing them. Keys are
// acquired in sorted order and duplicates are ignored, so two callers locking
// overlapping sets cannot deadlock.
func (l *Locker) Lock(keys ...string) (unlock func()) {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	held := make([]*entry, 0, len(keys))
	for _, k := range keys {
		e := l.acquire(k)
		e.mu.Lock()
		held = append(held, e)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(held) - 1; i >= 0; i-- {
				held[i].mu.Unlock()
				l.release(keys[i])
			}
		})
	}
}

// Len reports how many keys are currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func (l *Locker) acquire(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locks == nil {
		l.locks = make(map[string]*entry)
	}
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	return e
}

func (l *Locker) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.locks[key]
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}
