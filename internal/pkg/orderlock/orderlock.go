// Package orderlock serializes mutations per order id. Command handlers
// acquire the lock for the order they are about to load-mutate-save, so at
// most one mutation per order runs at a time within this process. The
// database transaction remains the unit of work; this lock only removes the
// last-write-wins race between two concurrent mutations of the same order.
package orderlock

import "sync"

// Locker hands out one mutex per key. Mutexes are created on first use and
// kept for the lifetime of the Locker; the key space (order ids) is small
// enough that no eviction is needed.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocker creates an empty Locker.
func NewLocker() *Locker {
	return &Locker{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns the corresponding unlock
// function, intended to be deferred at the call site:
//
//	defer locks.Lock(cmd.OrderID().String())()
func (l *Locker) Lock(key string) func() {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
