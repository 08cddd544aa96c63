// Package idlock provides a keyed mutex that serializes operations on a
// single entity id while letting operations on different ids proceed in
// parallel. Lock entries are reference-counted, so memory stays bounded
// by the number of ids currently under contention.
package idlock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex hands out one exclusive lock per key.
// The zero value is not usable; create instances with New.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*entry),
	}
}

// Lock acquires the exclusive lock for key, blocking while another
// goroutine holds it. The returned function releases the lock and must
// be called exactly once, typically via defer.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
