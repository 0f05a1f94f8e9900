package apsp

import (
	"fmt"

	"github.com/blockwarshall/qfw/simd"
)

// maxPlusMul computes a[i,j] := max(a[i,j], max_k(b[i,k] + c[k,j])) over
// a, b, c interpreted as B*B row-major blocks. a, b, c must be pairwise
// non-aliasing; callers (fwi.go) are responsible for that precondition.
//
// Grounded on original_source/quick_floyd_warshall/qfw.h's
// MaxPlusMul0..3, generalized from the teacher's float add-multiply
// register-blocking family in hwy/contrib/matmul/block_kernel.go into a
// signed-integer max-plus accumulate. The four functions differ only in
// how many (i,k) coefficient pairs are held as broadcast registers per
// inner loop; results are identical for any choice.
func (e *Engine[T]) maxPlusMul(a, b, c []T) {
	switch e.unroll {
	case 0:
		e.maxPlusMul0(a, b, c)
	case 1:
		e.maxPlusMul1(a, b, c)
	case 2:
		e.maxPlusMul2(a, b, c)
	case 3:
		e.maxPlusMul3(a, b, c)
	default:
		panic(fmt.Sprintf("apsp: unroll_type %d out of range", e.unroll))
	}
}

func (e *Engine[T]) checkBlocks(a, b, c []T) {
	if len(a) < B*B || len(b) < B*B || len(c) < B*B {
		panic("apsp: block shorter than B*B")
	}
}

// maxPlusMul0: i-tile 2, k-tile 2, 4 broadcasts, 2 rows of j-work per iter.
func (e *Engine[T]) maxPlusMul0(a, b, c []T) {
	e.checkBlocks(a, b, c)
	n := B
	lanes := e.lanes
	for k := 0; k < n; k += 2 {
		for i := 0; i < n; i += 2 {
			coef00 := simd.Broadcast(b[(i+0)*n+(k+0)], lanes)
			coef01 := simd.Broadcast(b[(i+0)*n+(k+1)], lanes)
			coef10 := simd.Broadcast(b[(i+1)*n+(k+0)], lanes)
			coef11 := simd.Broadcast(b[(i+1)*n+(k+1)], lanes)

			aa := a[i*n:]
			bb := c[k*n:]
			for j := 0; j < n; j += lanes {
				t0 := simd.Load(bb[j:], lanes)
				t1 := simd.Load(bb[n+j:], lanes)
				simd.ChMaxStore(simd.Max(simd.Add(t0, coef00), simd.Add(t1, coef01)), aa[j:])
				simd.ChMaxStore(simd.Max(simd.Add(t0, coef10), simd.Add(t1, coef11)), aa[n+j:])
			}
		}
	}
}

// maxPlusMul1: i-tile 2, k-tile 4, 8 broadcasts, 2 rows of j-work per iter.
func (e *Engine[T]) maxPlusMul1(a, b, c []T) {
	e.checkBlocks(a, b, c)
	n := B
	lanes := e.lanes
	for k := 0; k < n; k += 4 {
		for i := 0; i < n; i += 2 {
			coef00 := simd.Broadcast(b[(i+0)*n+(k+0)], lanes)
			coef01 := simd.Broadcast(b[(i+0)*n+(k+1)], lanes)
			coef02 := simd.Broadcast(b[(i+0)*n+(k+2)], lanes)
			coef03 := simd.Broadcast(b[(i+0)*n+(k+3)], lanes)
			coef10 := simd.Broadcast(b[(i+1)*n+(k+0)], lanes)
			coef11 := simd.Broadcast(b[(i+1)*n+(k+1)], lanes)
			coef12 := simd.Broadcast(b[(i+1)*n+(k+2)], lanes)
			coef13 := simd.Broadcast(b[(i+1)*n+(k+3)], lanes)

			aa := a[i*n:]
			bb := c[k*n:]
			for j := 0; j < n; j += lanes {
				t0 := simd.Load(bb[j:], lanes)
				t1 := simd.Load(bb[n+j:], lanes)
				t2 := simd.Load(bb[2*n+j:], lanes)
				t3 := simd.Load(bb[3*n+j:], lanes)
				row0 := simd.Max(simd.Max(simd.Add(t0, coef00), simd.Add(t1, coef01)), simd.Max(simd.Add(t2, coef02), simd.Add(t3, coef03)))
				row1 := simd.Max(simd.Max(simd.Add(t0, coef10), simd.Add(t1, coef11)), simd.Max(simd.Add(t2, coef12), simd.Add(t3, coef13)))
				simd.ChMaxStore(row0, aa[j:])
				simd.ChMaxStore(row1, aa[n+j:])
			}
		}
	}
}

// maxPlusMul2: i-tile 4, k-tile 2, 8 broadcasts, 4 rows of j-work per iter.
func (e *Engine[T]) maxPlusMul2(a, b, c []T) {
	e.checkBlocks(a, b, c)
	n := B
	lanes := e.lanes
	for k := 0; k < n; k += 2 {
		for i := 0; i < n; i += 4 {
			coef00 := simd.Broadcast(b[(i+0)*n+(k+0)], lanes)
			coef01 := simd.Broadcast(b[(i+0)*n+(k+1)], lanes)
			coef10 := simd.Broadcast(b[(i+1)*n+(k+0)], lanes)
			coef11 := simd.Broadcast(b[(i+1)*n+(k+1)], lanes)
			coef20 := simd.Broadcast(b[(i+2)*n+(k+0)], lanes)
			coef21 := simd.Broadcast(b[(i+2)*n+(k+1)], lanes)
			coef30 := simd.Broadcast(b[(i+3)*n+(k+0)], lanes)
			coef31 := simd.Broadcast(b[(i+3)*n+(k+1)], lanes)

			aa := a[i*n:]
			bb := c[k*n:]
			for j := 0; j < n; j += lanes {
				t0 := simd.Load(bb[j:], lanes)
				t1 := simd.Load(bb[n+j:], lanes)
				simd.ChMaxStore(simd.Max(simd.Add(t0, coef00), simd.Add(t1, coef01)), aa[j:])
				simd.ChMaxStore(simd.Max(simd.Add(t0, coef10), simd.Add(t1, coef11)), aa[n+j:])
				simd.ChMaxStore(simd.Max(simd.Add(t0, coef20), simd.Add(t1, coef21)), aa[2*n+j:])
				simd.ChMaxStore(simd.Max(simd.Add(t0, coef30), simd.Add(t1, coef31)), aa[3*n+j:])
			}
		}
	}
}

// maxPlusMul3: i-tile 4, k-tile 4, 16 broadcasts, 4 rows of j-work per iter.
func (e *Engine[T]) maxPlusMul3(a, b, c []T) {
	e.checkBlocks(a, b, c)
	n := B
	lanes := e.lanes
	for k := 0; k < n; k += 4 {
		for i := 0; i < n; i += 4 {
			coef := [4][4]simd.Vec[T]{}
			for di := 0; di < 4; di++ {
				for dk := 0; dk < 4; dk++ {
					coef[di][dk] = simd.Broadcast(b[(i+di)*n+(k+dk)], lanes)
				}
			}

			aa := a[i*n:]
			bb := c[k*n:]
			for j := 0; j < n; j += lanes {
				t0 := simd.Load(bb[j:], lanes)
				t1 := simd.Load(bb[n+j:], lanes)
				t2 := simd.Load(bb[2*n+j:], lanes)
				t3 := simd.Load(bb[3*n+j:], lanes)
				for di := 0; di < 4; di++ {
					row := simd.Max(
						simd.Max(simd.Add(t0, coef[di][0]), simd.Add(t1, coef[di][1])),
						simd.Max(simd.Add(t2, coef[di][2]), simd.Add(t3, coef[di][3])),
					)
					simd.ChMaxStore(row, aa[di*n+j:])
				}
			}
		}
	}
}
