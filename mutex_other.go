//go:build !linux

package sysprim

import (
	"sync"
	"sync/atomic"
	"syscall"
)

// Mutex is a mutual-exclusion lock. On this platform it is backed by the Go
// runtime's mutex; the surface and contracts match the Linux futex
// implementation. A Mutex must not be copied after first use.
//
// Calling Unlock without holding the lock, and destroying a mutex a thread
// is blocked on, are undefined behavior.
type Mutex struct {
	mu        sync.Mutex
	locked    uint32
	depth     uint32 // re-entry count, owner-written only
	owner     uint64 // threadID of holder, recursive mode only
	recursive bool
}

// NewMutex returns a new unlocked mutex.
func NewMutex(recursive bool) *Mutex {
	return &Mutex{recursive: recursive}
}

// Lock blocks the calling thread until the mutex is unlocked, then acquires
// it. In recursive mode a thread already holding the lock re-enters instead
// of deadlocking.
func (m *Mutex) Lock() error {
	var id uint64
	if m.recursive {
		id = threadID()
		if atomic.LoadUint64(&m.owner) == id {
			m.depth++
			return nil
		}
	}
	m.mu.Lock()
	atomic.StoreUint32(&m.locked, 1)
	if m.recursive {
		atomic.StoreUint64(&m.owner, id)
		m.depth = 1
	}
	return nil
}

// TryLock acquires the mutex if it is unlocked and reports whether it did.
// Contention is not an error. In recursive mode the owner re-enters.
func (m *Mutex) TryLock() bool {
	if m.recursive {
		id := threadID()
		if atomic.LoadUint64(&m.owner) == id {
			m.depth++
			return true
		}
		if m.mu.TryLock() {
			atomic.StoreUint32(&m.locked, 1)
			atomic.StoreUint64(&m.owner, id)
			m.depth = 1
			return true
		}
		return false
	}
	if m.mu.TryLock() {
		atomic.StoreUint32(&m.locked, 1)
		return true
	}
	return false
}

// Unlock releases the mutex, or decrements the re-entry count in recursive
// mode. The caller must hold the lock.
func (m *Mutex) Unlock() error {
	if m.recursive {
		if m.depth > 1 {
			m.depth--
			return nil
		}
		m.depth = 0
		atomic.StoreUint64(&m.owner, 0)
	}
	atomic.StoreUint32(&m.locked, 0)
	m.mu.Unlock()
	return nil
}

// Destroy releases the mutex handle. Destroying a locked mutex fails with
// EBUSY, matching the native contract.
func (m *Mutex) Destroy() error {
	if atomic.LoadUint32(&m.locked) != 0 {
		return &OSError{Op: "mutex destroy", Errno: syscall.EBUSY}
	}
	return nil
}
