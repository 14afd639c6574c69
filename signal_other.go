//go:build !linux

package sysprim

import (
	"sync"
	"time"
)

// Signal is a condition variable, always used paired with exactly one
// locked Mutex. On this platform it is backed by per-waiter channels; the
// surface and contracts match the Linux futex implementation. The signal
// must not outlive the mutex it is paired with.
type Signal struct {
	mu      sync.Mutex
	waiters []chan struct{}
}

// NewSignal returns a new signal with no pending notification.
func NewSignal() *Signal {
	return &Signal{}
}

func (s *Signal) enqueue() chan struct{} {
	ch := make(chan struct{})
	s.mu.Lock()
	s.waiters = append(s.waiters, ch)
	s.mu.Unlock()
	return ch
}

// remove drops ch from the waiter list if a notification has not already
// consumed it.
func (s *Signal) remove(ch chan struct{}) {
	s.mu.Lock()
	for i, w := range s.waiters {
		if w == ch {
			s.waiters = append(s.waiters[:i], s.waiters[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}

// Wait atomically releases lockedMutex, blocks until notified, then
// re-acquires lockedMutex before returning. Indefinite: no timeout. Spurious
// wakeups are possible; callers must wait in a loop re-checking their
// predicate.
func (s *Signal) Wait(lockedMutex *Mutex) error {
	ch := s.enqueue()
	if err := lockedMutex.Unlock(); err != nil {
		return err
	}
	<-ch
	return lockedMutex.Lock()
}

// TimedWait is Wait bounded by the absolute deadline epoch+delay, computed
// with nanosecond overflow carried into seconds. It returns nil both on
// notification and on deadline expiry; the caller re-checks its own
// predicate to distinguish the two.
func (s *Signal) TimedWait(lockedMutex *Mutex, delay, epoch Time) error {
	sec, nsec := Deadline(epoch, delay)
	remaining := time.Until(time.Unix(sec, nsec))
	if remaining < 0 {
		remaining = 0
	}
	ch := s.enqueue()
	if err := lockedMutex.Unlock(); err != nil {
		return err
	}
	timer := time.NewTimer(remaining)
	select {
	case <-ch:
		timer.Stop()
	case <-timer.C:
		s.remove(ch)
	}
	return lockedMutex.Lock()
}

// Notify wakes at least one thread blocked in Wait or TimedWait on this
// signal. If no thread is waiting the notification is lost, not queued. The
// paired mutex must be held.
func (s *Signal) Notify() error {
	s.mu.Lock()
	if len(s.waiters) > 0 {
		ch := s.waiters[0]
		s.waiters = s.waiters[1:]
		close(ch)
	}
	s.mu.Unlock()
	return nil
}

// Destroy releases the signal handle. Undefined behavior if any thread is
// still blocked in a wait on it.
func (s *Signal) Destroy() error {
	return nil
}
