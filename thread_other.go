//go:build !linux

package sysprim

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// threadID returns the calling goroutine's ID. Host thread IDs are not
// portably accessible here, and the goroutine ID is the identity that stays
// stable for a pinned CreateThread entry goroutine.
func threadID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// Stack header: "goroutine 123 ["
	fields := strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))
	if len(fields) == 0 {
		return 0
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Affinity returns the set of CPUs eligible to run the calling thread. Not
// supported on this platform.
func Affinity() (CPUSet, error) {
	return CPUSet{}, ErrUnsupported
}

// SetAffinity restricts the set of CPUs eligible to run the calling thread.
// Not supported on this platform.
func SetAffinity(set CPUSet) error {
	return ErrUnsupported
}

// Affinity returns the set of CPUs eligible to run the thread. Not
// supported on this platform.
func (t *Thread) Affinity() (CPUSet, error) {
	return CPUSet{}, ErrUnsupported
}

// SetAffinity restricts the set of CPUs eligible to run the thread. Not
// supported on this platform.
func (t *Thread) SetAffinity(set CPUSet) error {
	return ErrUnsupported
}

// SetRealTime switches the thread between a real-time and a normal
// scheduling class. Not supported on this platform.
func (t *Thread) SetRealTime(enabled bool, param RealTimeParam) error {
	return ErrUnsupported
}

// Yield voluntarily relinquishes the remainder of the current scheduling
// quantum. Never fails.
func Yield() {
	runtime.Gosched()
}

// Sleep blocks the calling thread for at least delay. A zero (or negative)
// delay is a valid no-op sleep.
func Sleep(delay Time) {
	if delay < 0 {
		delay = 0
	}
	time.Sleep(delay.Duration())
}
