package neighborhood_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/lvgrid/neighborhood"
)

// TestCacheGet_Reuse: repeated lookups return the identical table instance.
func TestCacheGet_Reuse(t *testing.T) {
	c := neighborhood.NewCache()

	first, err := c.Get(2, neighborhood.Direct)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	second, err := c.Get(2, neighborhood.Direct)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if first != second {
		t.Error("Get rebuilt a cached table")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
}

// TestCacheGet_DistinctKeys: (n, kind) pairs are cached independently.
func TestCacheGet_DistinctKeys(t *testing.T) {
	c := neighborhood.NewCache()

	direct, err := c.Get(2, neighborhood.Direct)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	indirect, err := c.Get(2, neighborhood.Indirect)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	other, err := c.Get(3, neighborhood.Direct)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}

	if direct == indirect || direct == other {
		t.Error("distinct keys shared a table")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d; want 3", c.Len())
	}
}

// TestCacheGet_ErrorNotCached: construction failures leave the cache empty.
func TestCacheGet_ErrorNotCached(t *testing.T) {
	c := neighborhood.NewCache()

	if _, err := c.Get(0, neighborhood.Direct); !errors.Is(err, neighborhood.ErrDimensionCount) {
		t.Fatalf("Get(0) error = %v; want ErrDimensionCount", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed Get; want 0", c.Len())
	}
}

// TestCacheGet_Concurrent hammers one cache from many goroutines; the race
// detector guards the locking, the assertions guard convergence on a single
// instance per key.
func TestCacheGet_Concurrent(t *testing.T) {
	c := neighborhood.NewCache()
	const workers = 16

	tables := make([]*neighborhood.Table, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			tbl, err := c.Get(3, neighborhood.Indirect)
			if err != nil {
				t.Errorf("Get error: %v", err)
				return
			}
			// follow-up hit must return the retained instance
			again, err := c.Get(3, neighborhood.Indirect)
			if err != nil {
				t.Errorf("Get error: %v", err)
				return
			}
			if tbl != again {
				t.Error("second Get returned a different table")
			}
			tables[w] = tbl
		}(w)
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
	retained, err := c.Get(3, neighborhood.Indirect)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	for w, tbl := range tables {
		if tbl != nil && tbl != retained {
			t.Errorf("worker %d observed a table other than the retained one", w)
		}
	}
}
