package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestForRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	hits := make([]int32, n)
	var calls int64

	ForRange(n, func(start, end int) {
		atomic.AddInt64(&calls, 1)
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, h)
		}
	}
	if calls != 4 {
		t.Errorf("Expected 4 chunks, got %d", calls)
	}
}

func TestForRange_Sequential(t *testing.T) {
	var calls int
	var gotStart, gotEnd int

	ForRange(100, func(start, end int) {
		calls++
		gotStart, gotEnd = start, end
	}, Sequential())

	if calls != 1 || gotStart != 0 || gotEnd != 100 {
		t.Errorf("Expected single call f(0, 100), got %d calls, last f(%d, %d)", calls, gotStart, gotEnd)
	}
}

func TestForRange_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 8

	var calls int64
	n := 2*cfg.MinChunkSize - 1

	ForRange(n, func(_, _ int) {
		atomic.AddInt64(&calls, 1)
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestForRange_Empty(t *testing.T) {
	ForRange(0, func(_, _ int) {
		t.Error("f must not be called for n == 0")
	}, DefaultConfig())
}

func TestForRange_ChunksAreDisjoint(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 10}

	var mu sync.Mutex
	var ranges [][2]int
	ForRange(95, func(start, end int) {
		mu.Lock()
		ranges = append(ranges, [2]int{start, end})
		mu.Unlock()
	}, cfg)

	total := 0
	for _, r := range ranges {
		if r[0] >= r[1] {
			t.Errorf("empty or inverted chunk %v", r)
		}
		total += r[1] - r[0]
	}
	if total != 95 {
		t.Errorf("chunks cover %d indices, want 95", total)
	}
}

func BenchmarkForRange(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 20
	data := make([]float64, n)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					data[j] += 1
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForRange(n, func(start, end int) {
				for j := start; j < end; j++ {
					data[j] += 1
				}
			}, Sequential())
		}
	})
}
