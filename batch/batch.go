package batch

import "github.com/blockwarshall/qfw/simd"

// Solver is satisfied by *apsp.Engine[T] and apsp.NaiveEngine[T]: anything
// that can run one independent APSP call.
type Solver[T simd.Lanes] interface {
	Solve(n int, input, output []T, symmetric bool)
}

// Job is one independent APSP instance: Input and Output may alias, exactly
// as apsp.Solve allows for a single call.
type Job[T simd.Lanes] struct {
	N         int
	Input     []T
	Output    []T
	Symmetric bool
}

// ParallelSolve runs solver.Solve for every job concurrently across pool's
// workers. Each job owns its own Input/Output slices and therefore its own
// scratch allocation inside Solve — there is no shared mutable state between
// jobs, so this never introduces concurrency inside a single Solve call,
// only across independent ones.
func ParallelSolve[T simd.Lanes](pool *Pool, solver Solver[T], jobs []Job[T]) {
	pool.forEachAtomic(len(jobs), func(i int) {
		j := jobs[i]
		solver.Solve(j.N, j.Input, j.Output, j.Symmetric)
	})
}
