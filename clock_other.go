//go:build !linux && !darwin

package sysprim

import "time"

// monoBase anchors Monotonic readings; time.Since uses the Go runtime's
// monotonic clock, so readings are immune to wall-clock adjustment.
var monoBase = time.Now()

// Monotonic returns the current reading of a monotonic, non-adjustable
// high-resolution clock. The Go runtime clock cannot fail, so the error is
// always nil on this platform.
func Monotonic() (Time, error) {
	return TimeFromDuration(time.Since(monoBase)), nil
}

// WallClock returns the current system wall-clock time.
func WallClock() DateTime {
	now := time.Now()
	return DateTime{Sec: now.Unix(), Millis: uint32(now.Nanosecond() / 1_000_000)}
}

// RealtimeNow returns the current wall-clock time as a Time instant, the
// epoch sample expected by Signal.TimedWait.
func RealtimeNow() Time {
	now := time.Now()
	return TimeOf(now.Unix(), int64(now.Nanosecond()))
}
