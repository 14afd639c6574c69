//go:build linux

package sysprim

import (
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Mutex state machine: {Unlocked, Locked, LockedContended}. Contended means
// at least one thread is (or is about to be) parked in the kernel.
const (
	mutexUnlocked  = 0
	mutexLocked    = 1
	mutexContended = 2
)

// Mutex is a mutual-exclusion lock over a futex word. The recursive mode is
// fixed at creation: a recursive mutex may be re-entered by its owner, which
// must then unlock once per lock. A Mutex must not be copied after first
// use.
//
// Calling Unlock without holding the lock, and destroying a mutex a thread
// is blocked on, are undefined behavior.
type Mutex struct {
	state     uint32
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
// of deadlocking. Fails only on a native error distinct from normal
// contention; such a failure is not recoverable.
func (m *Mutex) Lock() error {
	var id uint64
	if m.recursive {
		id = threadID()
		if atomic.LoadUint64(&m.owner) == id {
			m.depth++
			return nil
		}
	}
	if !atomic.CompareAndSwapUint32(&m.state, mutexUnlocked, mutexLocked) {
		// Contended path: advertise a waiter, then park until the word
		// reads unlocked at our swap.
		c := atomic.SwapUint32(&m.state, mutexContended)
		for c != mutexUnlocked {
			if err := futexWait(&m.state, mutexContended); err != nil {
				return err
			}
			c = atomic.SwapUint32(&m.state, mutexContended)
		}
	}
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
		if atomic.CompareAndSwapUint32(&m.state, mutexUnlocked, mutexLocked) {
			atomic.StoreUint64(&m.owner, id)
			m.depth = 1
			return true
		}
		return false
	}
	return atomic.CompareAndSwapUint32(&m.state, mutexUnlocked, mutexLocked)
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
	if atomic.SwapUint32(&m.state, mutexUnlocked) == mutexContended {
		return futexWake(&m.state, 1)
	}
	return nil
}

// Destroy releases the mutex handle. Destroying a locked mutex fails with
// EBUSY, matching the native contract.
func (m *Mutex) Destroy() error {
	if atomic.LoadUint32(&m.state) != mutexUnlocked {
		return &OSError{Op: "mutex destroy", Errno: unix.EBUSY}
	}
	return nil
}
