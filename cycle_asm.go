//go:build amd64 || arm64

package sysprim

// Cycles returns the value of a free-running hardware cycle counter. The
// tick rate is architecture- and frequency-dependent; callers must not
// assume a fixed tick-to-time conversion. Suitable for coarse relative
// timing and profiling, not wall time.
func Cycles() (uint64, error) {
	return cycleCount(), nil
}

// Implemented in cycle_amd64.s / cycle_arm64.s.
func cycleCount() uint64
