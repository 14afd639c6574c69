//go:build !linux && !darwin

package sysprim

import "unsafe"

// AlignedAlloc returns memory whose address is a multiple of alignment and
// whose usable size is at least size bytes. The alignment must be a power of
// two no smaller than the pointer width. Release with AlignedFree.
//
// On this platform the memory comes from a padded heap buffer pinned in the
// allocator's registry until freed. Heap exhaustion is fatal in the Go
// runtime, so ErrOutOfMemory is not reachable here.
func AlignedAlloc(alignment, size uintptr) (unsafe.Pointer, error) {
	if err := checkAlignment(alignment); err != nil {
		return nil, err
	}
	if size == 0 {
		size = 1
	}
	backing := make([]byte, size+alignment)
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
	if _, ok := regionTake(uintptr(p)); !ok {
		return ErrUnknownRegion
	}
	return nil
}
