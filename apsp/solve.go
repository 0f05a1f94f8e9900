package apsp

import (
	"fmt"

	"github.com/blockwarshall/qfw/simd"
)

// Solve computes all-pairs shortest paths for the n x n row-major weight
// matrix input, writing the result into output (which may alias input).
// Entries must satisfy 0 <= input[i*n+j] <= Inf[T](); unreachable pairs are
// Inf[T](). symmetric asserts input[i,j] == input[j,i]; the engine is
// permitted but not required to exploit it.
//
// Grounded on qfw.h's run(): allocate the 64-byte aligned scratch and the
// block table, reorder in, recurse, reorder out. n == 0 returns
// immediately with no writes, matching the boundary case in spec.
//
// Programmer errors (n out of range, buffers too small) panic; there is no
// fallible-return channel in this hot path, the same convention the
// teacher's SIMD kernels use for precondition violations.
func (e *Engine[T]) Solve(n int, input, output []T, symmetric bool) {
	if n < 0 || n >= 65536 {
		panic(fmt.Sprintf("apsp: n=%d out of range [0, 65536)", n))
	}
	if n == 0 {
		return
	}
	if len(input) < n*n {
		panic("apsp: input shorter than n*n")
	}
	if len(output) < n*n {
		panic("apsp: output shorter than n*n")
	}

	G := (n + B - 1) / B
	P := 1
	for P*B < n {
		P *= 2
	}

	S := newAlignedSlice[T]((G * B) * (G * B))
	bp := newBlockTable(G)
	negInf := -Inf[T]()

	reorder(S, n, P, 0, input, bp, 0, 0, false, negInf)
	e.fwr(P, G, 0, 0, 0, bp, S, symmetric)
	reorder(S, n, P, 0, output, bp, 0, 0, true, negInf)
}

// NaiveEngine is the unoptimized O(n^3) reference used to validate every
// optimized Engine against. Grounded on qfw.h's floyd_warshall_naive: the
// loop order is k, i, j — deliberately not the more cache-friendly i, k, j
// — so that its output matches bit-for-bit across reimplementations that
// preserve the same order, per spec's note that the naive reference's loop
// order is part of its observable contract.
type NaiveEngine[T simd.Lanes] struct{}

// Describe renders "naive<int{bits}_t>".
func (NaiveEngine[T]) Describe() string {
	return fmt.Sprintf("naive<int%d_t>", bitsOf[T]())
}

// Solve runs the triple loop directly against input/output with no
// block decomposition, scratch buffer, or negation trick. symmetric is
// accepted for interface parity with Engine but has no effect: the naive
// form gains nothing from it.
func (NaiveEngine[T]) Solve(n int, input, output []T, symmetric bool) {
	_ = symmetric
	if n < 0 || n >= 65536 {
		panic(fmt.Sprintf("apsp: n=%d out of range [0, 65536)", n))
	}
	if n == 0 {
		return
	}
	buf := make([]T, n*n)
	copy(buf, input[:n*n])
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if alt := buf[i*n+k] + buf[k*n+j]; alt < buf[i*n+j] {
					buf[i*n+j] = alt
				}
			}
		}
	}
	copy(output[:n*n], buf)
}
