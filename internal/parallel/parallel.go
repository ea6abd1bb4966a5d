// Package parallel splits row-independent tensor work across goroutines.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinWork    int  // Minimum multiply-adds per goroutine to avoid overhead.
}

// DefaultConfig sizes the worker pool from the physical core count.
// Hyper-threads add little to dense float loops, so logical CPUs are only
// used when cpuid cannot report physical cores.
func DefaultConfig() Config {
	n := cpuid.CPU.PhysicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinWork:    1 << 14,
	}
}

// ForRows executes f(i) for every row i in [0, rows).
// work is the cost of one row; rows are chunked so each goroutine gets at
// least cfg.MinWork of it. Falls back to a plain loop when the total is small.
// Each row is handled by exactly one goroutine, so f may write its own row
// without synchronization.
func ForRows(rows, work int, f func(i int), cfg Config) {
	if work < 1 {
		work = 1
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || rows < 2 || rows*work < 2*cfg.MinWork {
		for i := 0; i < rows; i++ {
			f(i)
		}
		return
	}

	minRows := max((cfg.MinWork+work-1)/work, 1)
	chunkSize := max((rows+cfg.NumWorkers-1)/cfg.NumWorkers, minRows)

	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunkSize {
		end := min(start+chunkSize, rows)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
