package sysprim

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
)

func TestCompareAndSwap_Basic(t *testing.T) {
	var cell32 int32 = 5
	if !CompareAndSwap(&cell32, 5, 7) {
		t.Fatal("CAS with matching expected value failed")
	}
	if cell32 != 7 {
		t.Fatalf("cell = %d, want 7", cell32)
	}

	var cell64 uint64 = 10
	if CompareAndSwap(&cell64, 11, 12) {
		t.Fatal("CAS with mismatched expected value succeeded")
	}
	if cell64 != 10 {
		t.Fatalf("mismatched CAS mutated cell: %d", cell64)
	}
}

// TestCompareAndSwap_ConcurrentExactlyN races N threads looping until each
// completes one successful CAS increment; the cell must end at exactly N.
func TestCompareAndSwap_ConcurrentExactlyN(t *testing.T) {
	const n = 32
	var cell uint64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for {
				old := atomic.LoadUint64(&cell)
				if CompareAndSwap(&cell, old, old+1) {
					return
				}
			}
		}()
	}
	wg.Wait()
	if cell != n {
		t.Fatalf("cell = %d, want %d (exactly one success per thread)", cell, n)
	}
}

func TestAddFetch_ReturnsNewValue(t *testing.T) {
	var cell uint64 = 5
	if got := AddFetch(&cell, 3); got != 8 {
		t.Fatalf("AddFetch = %d, want 8 (the resulting value)", got)
	}
	if got := SubFetch(&cell, 2); got != 6 {
		t.Fatalf("SubFetch = %d, want 6 (the resulting value)", got)
	}
}

// TestAddFetch_ConcurrentMultiset verifies strict monotonicity under
// concurrent increments: M threads adding 1, K times each, to a zeroed cell
// must observe the returned-value multiset {1, ..., M*K} exactly.
func TestAddFetch_ConcurrentMultiset(t *testing.T) {
	const (
		m = 8
		k = 1000
	)
	var cell uint64
	results := make([][]uint64, m)
	var wg sync.WaitGroup
	wg.Add(m)
	for i := 0; i < m; i++ {
		i := i
		go func() {
			defer wg.Done()
			vals := make([]uint64, 0, k)
			for j := 0; j < k; j++ {
				vals = append(vals, AddFetch(&cell, 1))
			}
			results[i] = vals
		}()
	}
	wg.Wait()

	var all []uint64
	for _, vals := range results {
		all = append(all, vals...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	if len(all) != m*k {
		t.Fatalf("collected %d values, want %d", len(all), m*k)
	}
	for i, v := range all {
		if v != uint64(i+1) {
			t.Fatalf("value[%d] = %d, want %d (duplicate or gap)", i, v, i+1)
		}
	}
}

func TestSubFetch_Wraparound(t *testing.T) {
	var cell32 uint32
	if got := SubFetch(&cell32, 1); got != math.MaxUint32 {
		t.Fatalf("SubFetch past zero = %d, want %d", got, uint32(math.MaxUint32))
	}
	var cell64 int64 = math.MinInt64
	if got := SubFetch(&cell64, 1); got != math.MaxInt64 {
		t.Fatalf("SubFetch past MinInt64 = %d, want %d", got, int64(math.MaxInt64))
	}
}

func TestAtomic_TypedCells(t *testing.T) {
	type counter uint32
	var cell counter = 1
	if !CompareAndSwap(&cell, 1, 2) {
		t.Fatal("CAS on defined type failed")
	}
	if got := AddFetch(&cell, 1); got != 3 {
		t.Fatalf("AddFetch on defined type = %d, want 3", got)
	}

	var ptrCell uintptr
	if got := AddFetch(&ptrCell, 4); got != 4 {
		t.Fatalf("AddFetch on uintptr = %d, want 4", got)
	}
}
