package sysprim

import (
	"testing"
	"time"
)

func TestMonotonic_NonDecreasing(t *testing.T) {
	prev, err := Monotonic()
	if err != nil {
		t.Fatal("Monotonic:", err)
	}
	for i := 0; i < 1000; i++ {
		now, err := Monotonic()
		if err != nil {
			t.Fatal("Monotonic:", err)
		}
		if now < prev {
			t.Fatalf("monotonic clock went backwards: %d -> %d", prev, now)
		}
		prev = now
	}
}

func TestMonotonic_Advances(t *testing.T) {
	before, err := Monotonic()
	if err != nil {
		t.Fatal("Monotonic:", err)
	}
	time.Sleep(10 * time.Millisecond)
	after, err := Monotonic()
	if err != nil {
		t.Fatal("Monotonic:", err)
	}
	if after <= before {
		t.Fatalf("monotonic clock did not advance across a sleep: %d -> %d", before, after)
	}
}

func TestWallClock_Sane(t *testing.T) {
	dt := WallClock()
	// 2020-01-01; anything earlier means a degenerate read.
	if dt.Sec < 1577836800 {
		t.Errorf("wall clock seconds %d earlier than 2020", dt.Sec)
	}
	if dt.Millis >= 1000 {
		t.Errorf("milliseconds component %d out of range", dt.Millis)
	}
}

func TestRealtimeNow_TracksWallClock(t *testing.T) {
	now := RealtimeNow()
	sys := time.Now().Unix()
	if diff := now.Sec() - sys; diff < -5 || diff > 5 {
		t.Errorf("RealtimeNow %d s vs system %d s; drift too large", now.Sec(), sys)
	}
	if nsec := now.Nsec(); nsec < 0 || nsec >= 1_000_000_000 {
		t.Errorf("nanosecond component %d out of range", nsec)
	}
}
