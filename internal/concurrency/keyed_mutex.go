package concurrency

import "sync"

// KeyedMutex hands out one mutex per key. Used to serialize craft commits
// per player without blocking unrelated players.
type KeyedMutex struct {
	locks sync.Map
}

// NewKeyedMutex creates a new KeyedMutex
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Get returns the mutex for the given key, creating it on first use.
// Mutexes are never evicted; the key space is bounded by active players.
func (km *KeyedMutex) Get(key string) *sync.Mutex {
	lock, _ := km.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the mutex for key.
func (km *KeyedMutex) WithLock(key string, fn func() error) error {
	mu := km.Get(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
