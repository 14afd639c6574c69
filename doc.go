// Package sysprim exposes a uniform set of low-level concurrency, timing,
// and memory primitives to higher-level runtimes, hiding per-platform
// differences behind one small API.
//
// # Architecture
//
// The package is a thin, fail-fast layer over native facilities. It provides
// a mutex/condition-variable pair with absolute-timeout semantics ([Mutex],
// [Signal]), a compare-and-swap and fetch-and-add family over raw integral
// cells ([CompareAndSwap], [AddFetch], [SubFetch]), thread lifecycle with
// CPU affinity and real-time scheduling control ([CreateThread], [Thread]),
// thread-local storage slots ([CreateTLSKey]), dual clock sources
// ([Monotonic], [WallClock], [Cycles]), and aligned allocation
// ([AlignedAlloc]).
//
// # Platform Support
//
// Blocking primitives are implemented with platform-native mechanisms:
//   - Linux: futex (mutex and condition variable, including absolute-deadline
//     timed waits against CLOCK_REALTIME), sched_{get,set}affinity,
//     sched_setattr, nanosleep
//   - Other platforms: a portable fallback over the Go runtime; affinity and
//     real-time scheduling report [ErrUnsupported]
//
// The cycle counter read is architecture-conditional (RDTSC on amd64,
// CNTVCT_EL0 on arm64); unsupported architectures fail explicitly with
// [ErrCycleCounterUnavailable] rather than returning zero.
//
// # Thread Safety
//
// Every blocking operation suspends only the calling thread. [Mutex.TryLock]
// and all atomic operations never block. No fairness guarantee is made for
// lock acquisition order. A [Signal.Notify] establishes happens-before only
// through the paired mutex, not through the signal itself.
//
// Handles (mutex, signal, thread, TLS key) are created and destroyed
// explicitly by the caller. The package performs no lifetime tracking:
// destruction ordering, such as destroying a signal only after no thread can
// be waiting on it, is the caller's responsibility.
//
// # Error Model
//
// Expected, non-exceptional outcomes are plain return values: TryLock
// returning false under contention and a timed wait elapsing without
// notification are not errors. Unexpected native failures surface
// immediately as a [*OSError] carrying the failing operation and the
// translated native error code; the package never retries internally.
// Allocation failure is reported distinctly as [ErrOutOfMemory].
package sysprim
