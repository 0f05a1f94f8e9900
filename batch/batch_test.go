// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package batch

import (
	"runtime"
	"testing"

	"github.com/blockwarshall/qfw/apsp"
	"github.com/blockwarshall/qfw/simd"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelSolveIndependentJobs(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	inf := apsp.Inf[int32]()
	jobA := []int32{0, 5, inf, inf, 0, 3, 2, inf, 0}
	jobB := []int32{0, 1, inf, inf, 0, 2, inf, inf, 0}

	outA := make([]int32, 9)
	outB := make([]int32, 9)

	solver := apsp.NewEngine[int32](simd.ScalarTag[int32]{}, 0)
	jobs := []Job[int32]{
		{N: 3, Input: jobA, Output: outA},
		{N: 3, Input: jobB, Output: outB},
	}
	ParallelSolve(pool, solver, jobs)

	wantA := []int32{0, 5, 8, 5, 0, 3, 2, 7, 0}
	for i := range wantA {
		if outA[i] != wantA[i] {
			t.Fatalf("job A: got %v want %v", outA, wantA)
		}
	}
	// Job B's 0->2 goes through 1 (1+2 = 3), not job A's 8.
	if outB[0*3+2] != 3 {
		t.Fatalf("job B unaffected by job A: got %v want 0->2 == 3", outB)
	}
}
