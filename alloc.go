package sysprim

import (
	"sync"
	"unsafe"
)

// regions tracks live AlignedAlloc results, mapping the aligned address to
// its backing memory so AlignedFree can release it (and detect pointers the
// allocator does not own).
var regions struct {
	mu sync.Mutex
	m  map[uintptr][]byte
}

func regionAdd(addr uintptr, backing []byte) {
	regions.mu.Lock()
	if regions.m == nil {
		regions.m = make(map[uintptr][]byte)
	}
	regions.m[addr] = backing
	regions.mu.Unlock()
}

func regionTake(addr uintptr) ([]byte, bool) {
	regions.mu.Lock()
	backing, ok := regions.m[addr]
	if ok {
		delete(regions.m, addr)
	}
	regions.mu.Unlock()
	return backing, ok
}

func checkAlignment(alignment uintptr) error {
	if alignment < unsafe.Sizeof(uintptr(0)) || alignment&(alignment-1) != 0 {
		return ErrInvalidAlignment
	}
	return nil
}

func alignUp(addr, alignment uintptr) uintptr {
	return (addr + alignment - 1) &^ (alignment - 1)
}
