package sysprim

import "math/bits"

// CPUSetSize is the fixed capacity of a CPUSet, in CPUs.
const CPUSetSize = 1024

// CPUSet is a fixed-capacity bit set indicating eligible CPUs for a thread.
// Bits are indexed by OS-reported CPU number. The zero value is the empty
// set.
type CPUSet struct {
	mask [CPUSetSize / 64]uint64
}

// Zero clears the set.
func (s *CPUSet) Zero() {
	s.mask = [CPUSetSize / 64]uint64{}
}

// Set adds cpu to the set. Out-of-range indices are ignored.
func (s *CPUSet) Set(cpu int) {
	if cpu >= 0 && cpu < CPUSetSize {
		s.mask[cpu/64] |= 1 << (uint(cpu) % 64)
	}
}

// Clear removes cpu from the set. Out-of-range indices are ignored.
func (s *CPUSet) Clear(cpu int) {
	if cpu >= 0 && cpu < CPUSetSize {
		s.mask[cpu/64] &^= 1 << (uint(cpu) % 64)
	}
}

// IsSet reports whether cpu is in the set.
func (s *CPUSet) IsSet(cpu int) bool {
	if cpu < 0 || cpu >= CPUSetSize {
		return false
	}
	return s.mask[cpu/64]&(1<<(uint(cpu)%64)) != 0
}

// Count returns the number of CPUs in the set.
func (s *CPUSet) Count() int {
	var n int
	for _, w := range s.mask {
		n += bits.OnesCount64(w)
	}
	return n
}
