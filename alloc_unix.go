//go:build linux || darwin

package sysprim

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// AlignedAlloc returns memory whose address is a multiple of alignment and
// whose usable size is at least size bytes. The alignment must be a power of
// two no smaller than the pointer width. Fails with an error wrapping
// ErrOutOfMemory when the system cannot satisfy the allocation, and with an
// *OSError for any other native failure. Release with AlignedFree.
//
// The memory is backed by an anonymous mapping and is not managed by the
// garbage collector.
func AlignedAlloc(alignment, size uintptr) (unsafe.Pointer, error) {
	if err := checkAlignment(alignment); err != nil {
		return nil, err
	}
	if size == 0 {
		size = 1
	}
	length := size
	if page := uintptr(unix.Getpagesize()); alignment > page {
		// mmap only guarantees page alignment; over-map and align within.
		length += alignment
	}
	backing, err := unix.Mmap(-1, 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) {
			return nil, fmt.Errorf("sysprim: aligned alloc of %d bytes: %w", size, ErrOutOfMemory)
		}
		return nil, osError("mmap", err)
	}
	addr := alignUp(uintptr(unsafe.Pointer(&backing[0])), alignment)
	regionAdd(addr, backing)
	getLogger().Trace().
		Uint64("addr", uint64(addr)).
		Uint64("size", uint64(size)).
		Uint64("alignment", uint64(alignment)).
		Log("aligned alloc")
	return unsafe.Pointer(addr), nil
}

// AlignedFree releases memory obtained from AlignedAlloc. A pointer not
// obtained from AlignedAlloc, or already freed, is reported as
// ErrUnknownRegion.
func AlignedFree(p unsafe.Pointer) error {
	backing, ok := regionTake(uintptr(p))
	if !ok {
		return ErrUnknownRegion
	}
	if err := unix.Munmap(backing); err != nil {
		return osError("munmap", err)
	}
	return nil
}
