package sysprim

import "time"

const nanosPerSecond = 1_000_000_000

// Time is a signed 64-bit nanosecond duration or instant, decomposable into
// whole seconds and remaining nanoseconds. For non-negative values the
// nanosecond component reported by Nsec is always in [0, 1e9).
type Time int64

// TimeOf builds a Time from whole seconds plus nanoseconds. The nanosecond
// argument need not be normalized; overflow carries into seconds.
func TimeOf(sec, nsec int64) Time {
	return Time(sec*nanosPerSecond + nsec)
}

// TimeFromDuration converts a time.Duration.
func TimeFromDuration(d time.Duration) Time {
	return Time(d.Nanoseconds())
}

// Nanos returns the total nanosecond count.
func (t Time) Nanos() int64 { return int64(t) }

// Sec returns the whole-seconds component.
func (t Time) Sec() int64 { return int64(t) / nanosPerSecond }

// Nsec returns the remaining-nanoseconds component, in [0, 1e9) for
// non-negative values.
func (t Time) Nsec() int64 { return int64(t) % nanosPerSecond }

// Add returns t+o. Nanosecond overflow carries into the seconds component of
// the decomposed result.
func (t Time) Add(o Time) Time { return t + o }

// Duration converts to a time.Duration.
func (t Time) Duration() time.Duration { return time.Duration(t) }

// Deadline computes the absolute deadline epoch+delay as a normalized
// (seconds, nanoseconds) pair, with nanosecond overflow carried into the
// seconds component. The result is suitable for handing directly to a
// native absolute timed wait.
func Deadline(epoch, delay Time) (sec, nsec int64) {
	nsec = epoch.Nsec() + delay.Nsec()
	sec = epoch.Sec() + delay.Sec() + nsec/nanosPerSecond
	nsec %= nanosPerSecond
	return
}

// DateTime is a wall-clock instant: seconds since the Unix epoch plus
// sub-second milliseconds. Produced by WallClock.
type DateTime struct {
	Sec    int64
	Millis uint32
}
