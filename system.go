package sysprim

import (
	"runtime"
	"sync/atomic"
)

// CPUCount returns the number of CPUs usable by the process.
func CPUCount() int {
	return runtime.NumCPU()
}

var fenceWord uint32

// MemoryBarrier issues a full, sequentially consistent memory fence.
func MemoryBarrier() {
	atomic.AddUint32(&fenceWord, 0)
}
