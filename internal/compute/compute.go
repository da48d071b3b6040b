// Package compute selects where whole-array grid kernels execute. A backend
// only decides how an index range is scheduled; it never changes results.
package compute

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Backend runs data-parallel kernels over [0, n) index ranges.
type Backend interface {
	Name() string
	// Run invokes fn over disjoint sub-ranges covering [0, n) and returns
	// once every sub-range has completed. fn must be safe to call
	// concurrently on disjoint ranges.
	Run(n int, fn func(lo, hi int))
}

// Serial executes kernels on the calling goroutine.
type Serial struct{}

// Name identifies the backend.
func (Serial) Name() string { return "serial" }

// Run executes fn over the whole range at once.
func (Serial) Run(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	fn(0, n)
}

// Parallel fans kernels out over a fixed number of worker goroutines.
type Parallel struct {
	Workers int
}

// Name identifies the backend including its effective worker count.
func (p Parallel) Name() string { return fmt.Sprintf("parallel:%d", p.workers()) }

func (p Parallel) workers() int {
	if p.Workers <= 0 {
		return runtime.NumCPU()
	}
	return p.Workers
}

// Run splits [0, n) into one contiguous chunk per worker.
func (p Parallel) Run(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := p.workers()
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// Select parses a backend spec: "serial", "parallel" or "parallel:N". An empty
// spec selects the serial backend.
func Select(spec string) (Backend, error) {
	switch {
	case spec == "" || spec == "serial":
		return Serial{}, nil
	case spec == "parallel":
		return Parallel{}, nil
	case strings.HasPrefix(spec, "parallel:"):
		n, err := strconv.Atoi(strings.TrimPrefix(spec, "parallel:"))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("compute: invalid worker count in backend spec %q", spec)
		}
		return Parallel{Workers: n}, nil
	}
	return nil, fmt.Errorf("compute: unknown backend %q", spec)
}
