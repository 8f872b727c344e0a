package cache

import (
	"errors"
	"math"
	"sync"
	"testing"
)

// sameShard sends every key to shard 0 so eviction order is observable.
func sameShard(int) uint64 { return 0 }

func identity(k int) uint64 { return uint64(k) }

// constant returns a create func yielding v and counting its calls.
func constant(v int, calls *int) func() (int, error) {
	return func() (int, error) {
		*calls++
		return v, nil
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[int, int](0, identity)
	calls := 0

	for range 3 {
		v, err := c.GetOrCreate(7, constant(42, &calls))
		if err != nil || v != 42 {
			t.Fatalf("GetOrCreate = %d, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Len != 1 || s.Hits != 2 || s.Misses != 1 {
		t.Errorf("stats = %+v, want 1 entry, 2 hits, 1 miss", s)
	}
	if s.Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", s.Capacity, DefaultCapacity)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3, sameShard)
	calls := 0
	for _, k := range []int{1, 2, 3, 1, 4} { // touching 1 leaves 2 oldest
		_, _ = c.GetOrCreate(k, constant(k, &calls))
	}
	if calls != 4 {
		t.Fatalf("create called %d times, want 4", calls)
	}

	calls = 0
	for _, k := range []int{1, 3, 4} {
		_, _ = c.GetOrCreate(k, constant(k, &calls))
	}
	if calls != 0 {
		t.Errorf("%d surviving keys were recreated", calls)
	}
	_, _ = c.GetOrCreate(2, constant(2, &calls))
	if calls != 1 {
		t.Error("2 survived eviction")
	}
	if got := c.Stats().Evictions; got != 2 {
		t.Errorf("Evictions = %d, want 2", got)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestGetOrCreate_ErrorNotCached(t *testing.T) {
	c := New[int, int](4, identity)
	boom := errors.New("boom")

	if _, err := c.GetOrCreate(1, func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed create was cached")
	}
	if v, err := c.GetOrCreate(1, func() (int, error) { return 5, nil }); err != nil || v != 5 {
		t.Errorf("retry = %d, %v", v, err)
	}
}

func TestGetOrCreate_NaNKeyNotStored(t *testing.T) {
	type key struct{ f float64 }
	c := New[key, int](2, func(key) uint64 { return 0 })
	calls := 0

	for range 100 {
		v, err := c.GetOrCreate(key{math.NaN()}, constant(9, &calls))
		if err != nil || v != 9 {
			t.Fatalf("GetOrCreate = %d, %v", v, err)
		}
	}
	if calls != 100 {
		t.Errorf("create called %d times, want 100", calls)
	}
	s := c.Stats()
	if s.Len != 0 || s.Evictions != 0 || s.Misses != 100 {
		t.Errorf("stats = %+v, want nothing stored", s)
	}

	_, _ = c.GetOrCreate(key{1}, constant(1, &calls))
	if c.Len() != 1 {
		t.Errorf("Len() = %d after an ordinary key, want 1", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := New[int, int](4, identity)
	calls := 0
	_, _ = c.GetOrCreate(1, constant(1, &calls))
	_, _ = c.GetOrCreate(2, constant(2, &calls))

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	if c.Stats().Misses != 2 {
		t.Error("Clear reset the statistics")
	}
	_, _ = c.GetOrCreate(1, constant(1, &calls))
	if calls != 3 || c.Len() != 1 {
		t.Errorf("after Clear: calls %d, len %d", calls, c.Len())
	}
}

func TestHitRate(t *testing.T) {
	if r := (Stats{}).HitRate(); r != 0 {
		t.Errorf("empty HitRate = %v", r)
	}
	if r := (Stats{Hits: 3, Misses: 1}).HitRate(); r != 0.75 {
		t.Errorf("HitRate = %v, want 0.75", r)
	}
}

func TestConcurrent(t *testing.T) {
	c := New[int, int](8, identity)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 200 {
				k := (g*31 + i) % 50
				v, err := c.GetOrCreate(k, func() (int, error) { return k * 2, nil })
				if err != nil || v != k*2 {
					t.Errorf("GetOrCreate(%d) = %d, %v", k, v, err)
				}
			}
		}(g)
	}
	wg.Wait()
	if n := c.Len(); n > 8*ShardCount {
		t.Errorf("Len() = %d exceeds total capacity", n)
	}
}
