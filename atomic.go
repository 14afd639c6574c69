package sysprim

import (
	"sync/atomic"
	"unsafe"
)

// AtomicCell is the set of integral types usable as atomic memory locations:
// any properly aligned 32- or 64-bit integer cell. Atomicity is a property
// of the operations below, not of the cell's declared type.
type AtomicCell interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~uintptr
}

// CompareAndSwap atomically replaces *addr with new only if it currently
// equals old, and reports whether the replacement occurred. The operation is
// sequentially consistent. It has no error path: a misaligned or invalid
// pointer is a programming error guarded against at the call site.
func CompareAndSwap[T AtomicCell](addr *T, old, new T) bool {
	switch unsafe.Sizeof(*addr) {
	case 4:
		return atomic.CompareAndSwapUint32((*uint32)(unsafe.Pointer(addr)), uint32(old), uint32(new))
	case 8:
		return atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(addr)), uint64(old), uint64(new))
	}
	panic("sysprim: unsupported atomic cell width")
}

// AddFetch atomically adds delta to *addr and returns the resulting value
// (not the prior one).
func AddFetch[T AtomicCell](addr *T, delta uint) T {
	switch unsafe.Sizeof(*addr) {
	case 4:
		return T(atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), uint32(delta)))
	case 8:
		return T(atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), uint64(delta)))
	}
	panic("sysprim: unsupported atomic cell width")
}

// SubFetch atomically subtracts delta from *addr and returns the resulting
// value. Subtraction past the representable range wraps per two's-complement
// arithmetic.
func SubFetch[T AtomicCell](addr *T, delta uint) T {
	switch unsafe.Sizeof(*addr) {
	case 4:
		return T(atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), -uint32(delta)))
	case 8:
		return T(atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), -uint64(delta)))
	}
	panic("sysprim: unsupported atomic cell width")
}
