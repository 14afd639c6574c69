//go:build linux || darwin

package sysprim

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Monotonic returns the current reading of a monotonic, non-adjustable
// high-resolution clock. It fails with an error wrapping
// ErrClockUnavailable if the underlying clock read fails; it never silently
// returns a stale or zero value.
func Monotonic() (Time, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrClockUnavailable, err)
	}
	sec, nsec := ts.Unix()
	return TimeOf(sec, nsec), nil
}

// WallClock returns the current system wall-clock time. By contract this
// call does not fail: should the native clock read error, the value falls
// back to time.Now, which cannot fail in Go, rather than returning a
// degenerate instant.
func WallClock() DateTime {
	sec, nsec := realtime()
	return DateTime{Sec: sec, Millis: uint32(nsec / 1_000_000)}
}

// RealtimeNow returns the current wall-clock time as a Time instant, the
// epoch sample expected by Signal.TimedWait. Best effort, like WallClock.
func RealtimeNow() Time {
	sec, nsec := realtime()
	return TimeOf(sec, nsec)
}

func realtime() (sec, nsec int64) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		now := time.Now()
		return now.Unix(), int64(now.Nanosecond())
	}
	return ts.Unix()
}
