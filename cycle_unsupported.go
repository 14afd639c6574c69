//go:build !amd64 && !arm64

package sysprim

// Cycles returns the value of a free-running hardware cycle counter. This
// architecture has no supported counter-read instruction, so the call fails
// explicitly with ErrCycleCounterUnavailable rather than returning zero.
func Cycles() (uint64, error) {
	return 0, ErrCycleCounterUnavailable
}
