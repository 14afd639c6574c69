//go:build linux

package sysprim

import (
	"errors"
	"runtime"
	"syscall"
	"testing"
)

// TestThread_AffinityRoundTrip restricts a live thread to one CPU from its
// current mask and reads the restriction back, then restores the original.
func TestThread_AffinityRoundTrip(t *testing.T) {
	hold := make(chan struct{})
	th, err := CreateThread(func(any) { <-hold }, nil)
	if err != nil {
		t.Fatal("CreateThread:", err)
	}
	defer func() {
		close(hold)
		th.Join()
	}()

	original, err := th.Affinity()
	if err != nil {
		t.Fatal("Affinity:", err)
	}
	if original.Count() == 0 {
		t.Fatal("thread eligible for zero CPUs")
	}

	var first int = -1
	for cpu := 0; cpu < CPUSetSize; cpu++ {
		if original.IsSet(cpu) {
			first = cpu
			break
		}
	}

	var narrow CPUSet
	narrow.Set(first)
	if err := th.SetAffinity(narrow); err != nil {
		if errors.Is(err, syscall.EPERM) {
			t.Skip("affinity changes not permitted in this environment")
		}
		t.Fatal("SetAffinity:", err)
	}
	got, err := th.Affinity()
	if err != nil {
		t.Fatal("Affinity after set:", err)
	}
	if got.Count() != 1 || !got.IsSet(first) {
		t.Errorf("affinity = %d CPUs (cpu%d set: %v), want only cpu%d", got.Count(), first, got.IsSet(first), first)
	}

	if err := th.SetAffinity(original); err != nil {
		t.Fatal("restore affinity:", err)
	}
}

// TestAffinity_CallingThread exercises the package-level pair, which
// addresses whichever thread the caller is running on. The test goroutine is
// pinned so the thread sampled and the thread restricted are the same one.
func TestAffinity_CallingThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	original, err := Affinity()
	if err != nil {
		t.Fatal("Affinity:", err)
	}
	if original.Count() == 0 {
		t.Fatal("calling thread eligible for zero CPUs")
	}

	var first int = -1
	for cpu := 0; cpu < CPUSetSize; cpu++ {
		if original.IsSet(cpu) {
			first = cpu
			break
		}
	}

	var narrow CPUSet
	narrow.Set(first)
	if err := SetAffinity(narrow); err != nil {
		if errors.Is(err, syscall.EPERM) {
			t.Skip("affinity changes not permitted in this environment")
		}
		t.Fatal("SetAffinity:", err)
	}
	got, err := Affinity()
	if err != nil {
		t.Fatal("Affinity after set:", err)
	}
	if got.Count() != 1 || !got.IsSet(first) {
		t.Errorf("affinity = %d CPUs (cpu%d set: %v), want only cpu%d", got.Count(), first, got.IsSet(first), first)
	}

	if err := SetAffinity(original); err != nil {
		t.Fatal("restore affinity:", err)
	}
}

func TestThread_SetAffinityEmpty(t *testing.T) {
	hold := make(chan struct{})
	th, err := CreateThread(func(any) { <-hold }, nil)
	if err != nil {
		t.Fatal("CreateThread:", err)
	}
	defer func() {
		close(hold)
		th.Join()
	}()

	var empty CPUSet
	err = th.SetAffinity(empty)
	if err == nil {
		t.Fatal("SetAffinity accepted an empty set")
	}
	var osErr *OSError
	if !errors.As(err, &osErr) {
		t.Fatalf("error type %T, want *OSError", err)
	}
}

// TestThread_SetRealTime needs CAP_SYS_NICE; skip where the environment
// denies it.
func TestThread_SetRealTime(t *testing.T) {
	hold := make(chan struct{})
	th, err := CreateThread(func(any) { <-hold }, nil)
	if err != nil {
		t.Fatal("CreateThread:", err)
	}
	defer func() {
		close(hold)
		th.Join()
	}()

	if err := th.SetRealTime(true, RealTimeParam{Priority: -1}); err != nil {
		if errors.Is(err, syscall.EPERM) {
			t.Skip("real-time scheduling not permitted in this environment")
		}
		t.Fatal("SetRealTime(true):", err)
	}
	if err := th.SetRealTime(false, RealTimeParam{Priority: -1}); err != nil {
		t.Fatal("SetRealTime(false):", err)
	}
}
