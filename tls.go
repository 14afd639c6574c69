package sysprim

import "sync"

// TLSKey is an opaque per-process slot identifier. Each thread has its own
// independent value storage under a key, empty until set by that thread.
type TLSKey uint32

// tlsKeyMax bounds the number of simultaneously live keys, the floor
// PTHREAD_KEYS_MAX guarantees.
const tlsKeyMax = 1024

// tlsSlot holds one key's per-thread values, keyed by threadID.
type tlsSlot struct {
	mu     sync.RWMutex
	values map[uint64]any
}

var tlsKeys struct {
	mu    sync.Mutex
	slots map[TLSKey]*tlsSlot
	next  TLSKey
	free  []TLSKey // destroyed keys available for reuse
}

// CreateTLSKey allocates a process-wide thread-local storage slot. Fails
// with ErrTLSKeysExhausted when no slot identifiers remain.
//
// No destructor runs at thread exit; a thread that stores a value it wants
// reclaimed must clear it before exiting.
func CreateTLSKey() (TLSKey, error) {
	tlsKeys.mu.Lock()
	defer tlsKeys.mu.Unlock()
	if tlsKeys.slots == nil {
		tlsKeys.slots = make(map[TLSKey]*tlsSlot)
	}
	var key TLSKey
	if n := len(tlsKeys.free); n > 0 {
		key = tlsKeys.free[n-1]
		tlsKeys.free = tlsKeys.free[:n-1]
	} else {
		if tlsKeys.next >= tlsKeyMax {
			return 0, ErrTLSKeysExhausted
		}
		key = tlsKeys.next
		tlsKeys.next++
	}
	tlsKeys.slots[key] = &tlsSlot{}
	getLogger().Trace().Uint64("key", uint64(key)).Log("tls key created")
	return key, nil
}

// DestroyTLSKey releases a slot identifier, dropping every thread's stored
// value for it. Destroying a key twice fails with ErrTLSKeyDestroyed.
func DestroyTLSKey(key TLSKey) error {
	tlsKeys.mu.Lock()
	defer tlsKeys.mu.Unlock()
	if _, ok := tlsKeys.slots[key]; !ok {
		return ErrTLSKeyDestroyed
	}
	delete(tlsKeys.slots, key)
	tlsKeys.free = append(tlsKeys.free, key)
	getLogger().Trace().Uint64("key", uint64(key)).Log("tls key destroyed")
	return nil
}

func tlsLookup(key TLSKey) *tlsSlot {
	tlsKeys.mu.Lock()
	slot := tlsKeys.slots[key]
	tlsKeys.mu.Unlock()
	return slot
}

// TLSGet returns the calling thread's stored value for key, or nil if this
// thread never set one (or the key is destroyed).
func TLSGet(key TLSKey) any {
	slot := tlsLookup(key)
	if slot == nil {
		return nil
	}
	id := threadID()
	slot.mu.RLock()
	v := slot.values[id]
	slot.mu.RUnlock()
	return v
}

// TLSSet stores value for the calling thread under key. Fails only on a
// destroyed key.
func TLSSet(key TLSKey, value any) error {
	slot := tlsLookup(key)
	if slot == nil {
		return ErrTLSKeyDestroyed
	}
	id := threadID()
	slot.mu.Lock()
	if slot.values == nil {
		slot.values = make(map[uint64]any)
	}
	slot.values[id] = value
	slot.mu.Unlock()
	return nil
}
