package sysprim

import (
	"errors"
	"runtime"
	"sync/atomic"
)

// Thread is an opaque identity handle for a thread of control, usable for
// equality comparison and as the "current thread" self-reference. Handles
// are read-only identity tokens; they are not orderable or hashable beyond
// equality.
type Thread struct {
	id    uint64
	done  chan struct{} // nil for handles obtained via Current
	stack int
}

// RealTimeParam carries the real-time scheduling parameters for
// Thread.SetRealTime. A Priority of -1 means "not set / use class default".
type RealTimeParam struct {
	Priority int
}

// CreateThread starts a new thread of control running entry(arg). The entry
// goroutine is pinned to its OS thread for its lifetime, so affinity,
// real-time scheduling, and TLS apply to it reliably.
//
// Exhaustion of native thread resources is fatal in the Go runtime and
// cannot be reported here; the error path covers invalid input and options.
func CreateThread(entry func(arg any), arg any, opts ...ThreadOption) (*Thread, error) {
	if entry == nil {
		return nil, errors.New("sysprim: nil thread entry")
	}
	cfg, err := resolveThreadOptions(opts)
	if err != nil {
		return nil, err
	}
	t := &Thread{done: make(chan struct{}), stack: cfg.stackSize}
	started := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		atomic.StoreUint64(&t.id, threadID())
		close(started)
		defer func() {
			getLogger().Trace().Uint64("thread", t.ID()).Log("thread exited")
			close(t.done)
		}()
		entry(arg)
	}()
	<-started
	getLogger().Debug().Uint64("thread", t.ID()).Int("stack_size", cfg.stackSize).Log("thread started")
	return t, nil
}

// Current returns a handle for the calling thread. Unless the caller runs
// on a thread started by CreateThread (or is otherwise pinned with
// runtime.LockOSThread), the identity is inherently racy: the runtime may
// migrate the goroutine to another thread at any time.
func Current() *Thread {
	return &Thread{id: threadID()}
}

// ID returns the thread's native identity value.
func (t *Thread) ID() uint64 {
	return atomic.LoadUint64(&t.id)
}

// Equal reports whether two handles refer to the same underlying thread of
// control, regardless of how they were obtained.
func (t *Thread) Equal(o *Thread) bool {
	return t != nil && o != nil && t.ID() == o.ID()
}

// Join blocks until the thread's entry function returns. It is a no-op for
// handles obtained via Current.
func (t *Thread) Join() {
	if t.done != nil {
		<-t.done
	}
}
