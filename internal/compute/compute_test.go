package compute

import (
	"slices"
	"sync/atomic"
	"testing"
)

func TestBackendsCoverRangeOnce(t *testing.T) {
	for _, backend := range []Backend{Serial{}, Parallel{Workers: 3}, Parallel{Workers: 16}} {
		const n = 1000
		hits := make([]int32, n)
		backend.Run(n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("%s: index %d visited %d times", backend.Name(), i, h)
			}
		}
	}
}

func TestBackendsProduceIdenticalResults(t *testing.T) {
	const n = 513
	kernel := func(out []int) func(lo, hi int) {
		return func(lo, hi int) {
			for i := lo; i < hi; i++ {
				out[i] = i*i + 1
			}
		}
	}

	serial := make([]int, n)
	Serial{}.Run(n, kernel(serial))

	parallel := make([]int, n)
	Parallel{Workers: 4}.Run(n, kernel(parallel))

	if !slices.Equal(serial, parallel) {
		t.Fatal("parallel backend produced different results than serial")
	}
}

func TestRunEmptyRange(t *testing.T) {
	called := false
	Serial{}.Run(0, func(lo, hi int) { called = true })
	Parallel{Workers: 2}.Run(-5, func(lo, hi int) { called = true })
	if called {
		t.Fatal("kernels must not run for empty ranges")
	}
}

func TestSelect(t *testing.T) {
	if b, err := Select(""); err != nil || b.Name() != "serial" {
		t.Fatalf("Select(\"\") = %v, %v", b, err)
	}
	if b, err := Select("serial"); err != nil || b.Name() != "serial" {
		t.Fatalf("Select(serial) = %v, %v", b, err)
	}
	if b, err := Select("parallel:3"); err != nil || b.Name() != "parallel:3" {
		t.Fatalf("Select(parallel:3) = %v, %v", b, err)
	}
	if _, err := Select("parallel"); err != nil {
		t.Fatalf("Select(parallel) unexpected error: %v", err)
	}

	for _, bad := range []string{"gpu", "parallel:x", "parallel:0", "parallel:-2"} {
		if _, err := Select(bad); err == nil {
			t.Fatalf("Select(%q) expected an error", bad)
		}
	}
}
