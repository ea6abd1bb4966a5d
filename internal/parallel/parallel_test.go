package parallel

import (
	"sync/atomic"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NumWorkers < 1 {
		t.Errorf("NumWorkers = %d, want >= 1", cfg.NumWorkers)
	}
	if cfg.Enabled != (cfg.NumWorkers > 1) {
		t.Errorf("Enabled = %v with %d workers", cfg.Enabled, cfg.NumWorkers)
	}
}

func TestForRows(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinWork: 8}

	rows := 1000
	visits := make([]int32, rows)

	ForRows(rows, 16, func(i int) {
		atomic.AddInt32(&visits[i], 1)
	}, cfg)

	for i, v := range visits {
		if v != 1 {
			t.Errorf("row %d visited %d times, want 1", i, v)
		}
	}
}

func TestForRows_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	ForRows(5, 1000, func(i int) {
		order = append(order, i)
	}, cfg)

	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
	if len(order) != 5 {
		t.Errorf("Expected 5 rows, got %d", len(order))
	}
}

func TestForRows_SmallWork(t *testing.T) {
	// Small totals stay on the calling goroutine, in order.
	cfg := DefaultConfig()

	var order []int
	ForRows(3, 1, func(i int) {
		order = append(order, i)
	}, cfg)

	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Errorf("Expected sequential order [0 1 2], got %v", order)
	}
}

func TestForRows_ZeroRows(t *testing.T) {
	called := false
	ForRows(0, 10, func(_ int) { called = true }, DefaultConfig())

	if called {
		t.Error("f called for zero rows")
	}
}

func BenchmarkForRows(b *testing.B) {
	cfg := DefaultConfig()
	rows, work := 512, 512

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRows(rows, work, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			ForRows(rows, work, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
