//go:build linux

package sysprim

import (
	"golang.org/x/sys/unix"
)

// threadID returns the caller's host thread ID. Stable only while the
// calling goroutine is pinned to its OS thread (which CreateThread entry
// goroutines always are).
func threadID() uint64 {
	return uint64(unix.Gettid())
}

func getAffinity(tid int) (CPUSet, error) {
	var native unix.CPUSet
	if err := unix.SchedGetaffinity(tid, &native); err != nil {
		return CPUSet{}, osError("sched_getaffinity", err)
	}
	var set CPUSet
	for cpu := 0; cpu < CPUSetSize; cpu++ {
		if native.IsSet(cpu) {
			set.Set(cpu)
		}
	}
	return set, nil
}

func setAffinity(tid int, set CPUSet) error {
	var native unix.CPUSet
	for cpu := 0; cpu < CPUSetSize; cpu++ {
		if set.IsSet(cpu) {
			native.Set(cpu)
		}
	}
	if err := unix.SchedSetaffinity(tid, &native); err != nil {
		return osError("sched_setaffinity", err)
	}
	return nil
}

// Affinity returns the set of CPUs eligible to run the calling thread.
func Affinity() (CPUSet, error) {
	return getAffinity(0)
}

// SetAffinity restricts the set of CPUs eligible to run the calling thread.
// Setting an empty or entirely-invalid set is a native-level error.
func SetAffinity(set CPUSet) error {
	return setAffinity(0, set)
}

// Affinity returns the set of CPUs eligible to run the thread.
func (t *Thread) Affinity() (CPUSet, error) {
	return getAffinity(int(t.ID()))
}

// SetAffinity restricts the set of CPUs eligible to run the thread. Setting
// an empty or entirely-invalid set is a native-level error.
func (t *Thread) SetAffinity(set CPUSet) error {
	return setAffinity(int(t.ID()), set)
}

// SetRealTime switches the thread between the SCHED_RR real-time class and
// the normal scheduling class. A param.Priority of -1 maps to the minimum
// real-time priority when enabling, and is ignored when disabling.
// Typically requires CAP_SYS_NICE.
func (t *Thread) SetRealTime(enabled bool, param RealTimeParam) error {
	attr := &unix.SchedAttr{Size: unix.SizeofSchedAttr}
	if enabled {
		attr.Policy = unix.SCHED_RR
		priority := param.Priority
		if priority < 0 {
			priority = 1
		}
		attr.Priority = uint32(priority)
	} else {
		attr.Policy = unix.SCHED_NORMAL
	}
	if err := unix.SchedSetAttr(int(t.ID()), attr, 0); err != nil {
		return osError("sched_setattr", err)
	}
	getLogger().Debug().
		Uint64("thread", t.ID()).
		Bool("realtime", enabled).
		Int("priority", param.Priority).
		Log("scheduling class changed")
	return nil
}

// Yield voluntarily relinquishes the remainder of the current scheduling
// quantum. Never fails: the Linux implementation of sched_yield cannot.
func Yield() {
	unix.Syscall(unix.SYS_SCHED_YIELD, 0, 0, 0) //nolint:errcheck
}

// Sleep blocks the calling thread for at least delay. A zero (or negative)
// delay is a valid no-op sleep. Interrupted sleeps resume with the
// remaining time.
func Sleep(delay Time) {
	if delay < 0 {
		delay = 0
	}
	req := unix.NsecToTimespec(delay.Nanos())
	for {
		var remaining unix.Timespec
		err := unix.Nanosleep(&req, &remaining)
		if err != unix.EINTR {
			return
		}
		req = remaining
	}
}
