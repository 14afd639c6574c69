package sysprim

import (
	"errors"
	"syscall"
)

// Standard errors.
var (
	// ErrClockUnavailable is returned by Monotonic when the underlying clock
	// read fails. A stale or zero value is never returned silently.
	ErrClockUnavailable = errors.New("sysprim: monotonic clock unavailable")

	// ErrCycleCounterUnavailable is returned by Cycles on architectures
	// without a supported counter-read instruction.
	ErrCycleCounterUnavailable = errors.New("sysprim: cycle counter not supported on this architecture")

	// ErrOutOfMemory is returned by AlignedAlloc when the system cannot
	// satisfy the allocation, distinct from other native failures so callers
	// can apply a different recovery policy.
	ErrOutOfMemory = errors.New("sysprim: out of memory")

	// ErrInvalidAlignment is returned by AlignedAlloc for alignments that
	// are zero, not a power of two, or smaller than the pointer width.
	ErrInvalidAlignment = errors.New("sysprim: invalid alignment")

	// ErrUnknownRegion is returned by AlignedFree for a pointer that was not
	// obtained from AlignedAlloc (or was already freed).
	ErrUnknownRegion = errors.New("sysprim: pointer not owned by allocator")

	// ErrTLSKeysExhausted is returned by CreateTLSKey when no free slot
	// identifiers remain.
	ErrTLSKeysExhausted = errors.New("sysprim: no free tls keys")

	// ErrTLSKeyDestroyed is returned when operating on a destroyed TLS key.
	ErrTLSKeyDestroyed = errors.New("sysprim: tls key destroyed")

	// ErrUnsupported is returned by affinity and real-time scheduling
	// operations on platforms without native support for them.
	ErrUnsupported = errors.New("sysprim: not supported on this platform")
)

// OSError is an unexpected native failure: a native call returned an error
// code outside its expected set (contention and timeout are never OSErrors).
// It indicates a broken invariant, such as use-after-destroy, rather than a
// transient condition; nothing in this package retries one.
type OSError struct {
	// Op is the native operation that failed, e.g. "futex wait".
	Op string
	// Errno is the native error code.
	Errno syscall.Errno
}

func (e *OSError) Error() string {
	return "sysprim: " + e.Op + ": " + ErrnoString(int(e.Errno))
}

// Unwrap exposes the native error code for errors.Is matching against
// syscall.Errno values.
func (e *OSError) Unwrap() error {
	if e.Errno != 0 {
		return e.Errno
	}
	return nil
}

// osError wraps a native call failure, extracting the errno when present.
func osError(op string, err error) *OSError {
	var errno syscall.Errno
	errors.As(err, &errno)
	return &OSError{Op: op, Errno: errno}
}
