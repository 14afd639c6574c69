//go:build linux

package sysprim

import (
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Signal is a condition variable over a futex sequence word, always used
// paired with exactly one locked Mutex. The signal must not outlive the
// mutex it is paired with.
type Signal struct {
	seq uint32
}

// NewSignal returns a new signal with no pending notification.
func NewSignal() *Signal {
	return &Signal{}
}

// Wait atomically releases lockedMutex, blocks until notified, then
// re-acquires lockedMutex before returning. Indefinite: no timeout. Spurious
// wakeups are possible; callers must wait in a loop re-checking their
// predicate.
func (s *Signal) Wait(lockedMutex *Mutex) error {
	seq := atomic.LoadUint32(&s.seq)
	if err := lockedMutex.Unlock(); err != nil {
		return err
	}
	// A Notify between the sequence snapshot and the kernel wait bumps seq,
	// so the wait returns immediately with EAGAIN instead of sleeping.
	werr := futexWait(&s.seq, seq)
	if err := lockedMutex.Lock(); err != nil {
		return err
	}
	return werr
}

// TimedWait is Wait bounded by the absolute deadline epoch+delay, computed
// with nanosecond overflow carried into seconds before being handed to the
// native timed wait. It returns nil both on notification and on deadline
// expiry; the caller re-checks its own predicate to distinguish the two.
// Fails only on a native error other than timeout.
func (s *Signal) TimedWait(lockedMutex *Mutex, delay, epoch Time) error {
	// The seconds and nanoseconds stay separate all the way to the kernel;
	// recombining them into total nanoseconds could overflow int64 for
	// deadlines the timespec form still represents.
	sec, nsec := Deadline(epoch, delay)
	deadline := unix.Timespec{Sec: sec, Nsec: nsec}
	seq := atomic.LoadUint32(&s.seq)
	if err := lockedMutex.Unlock(); err != nil {
		return err
	}
	werr := futexWaitAbs(&s.seq, seq, &deadline)
	if err := lockedMutex.Lock(); err != nil {
		return err
	}
	return werr
}

// Notify wakes at least one thread blocked in Wait or TimedWait on this
// signal. If no thread is waiting the notification is lost, not queued. The
// paired mutex must be held.
func (s *Signal) Notify() error {
	atomic.AddUint32(&s.seq, 1)
	return futexWake(&s.seq, 1)
}

// Destroy releases the signal handle. Undefined behavior if any thread is
// still blocked in a wait on it.
func (s *Signal) Destroy() error {
	return nil
}
