package repos

import (
	"fmt"
	"sync"
	"time"
)

// keyedMutex serializes writes per (staffID, date) key so two schedulers
// editing the same day cannot interleave a read-modify-write.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
	return m.Unlock
}

func staffDateKey(staffID uint, date time.Time) string {
	return fmt.Sprintf("%d:%s", staffID, date.Format("2006-01-02"))
}
