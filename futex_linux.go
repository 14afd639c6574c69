//go:build linux

package sysprim

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Futex operation constants from <linux/futex.h>; x/sys/unix exports the
// syscall number but not the ops.
const (
	futexOpWait       = 0
	futexOpWake       = 1
	futexOpWaitBitset = 9

	futexPrivateFlag   = 128
	futexClockRealtime = 256

	futexBitsetMatchAny = 0xffffffff
)

// Raw futex wrappers. All waits use the private flag: handles in this
// package are process-local.

// futexWait blocks until *addr differs from val or the thread is woken.
// EAGAIN (value already changed), EINTR, and a plain wake all return nil;
// the caller re-checks its own state. Anything else is fatal.
func futexWait(addr *uint32, val uint32) error {
	_, _, errno := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexOpWait|futexPrivateFlag,
		uintptr(val),
		0, 0, 0)
	switch errno {
	case 0, unix.EAGAIN, unix.EINTR:
		return nil
	}
	return &OSError{Op: "futex wait", Errno: errno}
}

// futexWaitAbs is futexWait bounded by an absolute CLOCK_REALTIME deadline,
// mirroring pthread_cond_timedwait's clock semantics. A timeout returns nil
// like any other wake; the caller distinguishes by re-checking its
// predicate.
func futexWaitAbs(addr *uint32, val uint32, deadline *unix.Timespec) error {
	_, _, errno := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexOpWaitBitset|futexPrivateFlag|futexClockRealtime,
		uintptr(val),
		uintptr(unsafe.Pointer(deadline)),
		0,
		futexBitsetMatchAny)
	switch errno {
	case 0, unix.EAGAIN, unix.EINTR, unix.ETIMEDOUT:
		return nil
	}
	return &OSError{Op: "futex timed wait", Errno: errno}
}

// futexWake wakes at most n threads blocked on addr.
func futexWake(addr *uint32, n int) error {
	_, _, errno := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		futexOpWake|futexPrivateFlag,
		uintptr(n),
		0, 0, 0)
	if errno != 0 {
		return &OSError{Op: "futex wake", Errno: errno}
	}
	return nil
}
