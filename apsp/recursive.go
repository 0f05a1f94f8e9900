package apsp

// fwr is the recursive driver: a 2x2x2 decomposition over a power-of-two
// block grid, grounded directly on qfw.h's FWR. P is the current
// recursion scale in blocks, G is the actual grid extent, and (i0,i1,i2)
// are block coordinates for (target-row, pivot, target-column).
//
// The eight-subcall order below is not arbitrary: each subcall's output
// must have settled before any later subcall reads it, which is what makes
// this the "established recursive Floyd-Warshall" schedule rather than an
// arbitrary octant split.
func (e *Engine[T]) fwr(P, G, i0, i1, i2 int, bp *blockTable, S []T, symmetric bool) {
	if i0 >= G || i1 >= G || i2 >= G {
		return
	}
	if P == 1 {
		e.fwi(S, bp.get(i0, i2), bp.get(i0, i1), bp.get(i1, i2))
		return
	}

	half := P / 2
	if !symmetric {
		e.fwr(half, G, i0, i1, i2, bp, S, false)
		e.fwr(half, G, i0, i1, i2+half, bp, S, false)
		e.fwr(half, G, i0+half, i1, i2, bp, S, false)
		e.fwr(half, G, i0+half, i1, i2+half, bp, S, false)
		e.fwr(half, G, i0+half, i1+half, i2+half, bp, S, false)
		e.fwr(half, G, i0+half, i1+half, i2, bp, S, false)
		e.fwr(half, G, i0, i1+half, i2+half, bp, S, false)
		e.fwr(half, G, i0, i1+half, i2, bp, S, false)
		return
	}

	// symmetric: block_index0 == block_index1 == block_index2 on entry.
	e.fwr(half, G, i0, i1, i2, bp, S, true)
	e.fwr(half, G, i0, i1, i2+half, bp, S, false)
	transposeCopy(S, bp, G, half, i0, i0+half)
	e.fwr(half, G, i0+half, i1, i2+half, bp, S, false)
	e.fwr(half, G, i0+half, i1+half, i2+half, bp, S, true)
	e.fwr(half, G, i0+half, i1+half, i2, bp, S, false)
	transposeCopy(S, bp, G, half, i0+half, i0)
	e.fwr(half, G, i0, i1+half, i2, bp, S, false)
}

// transposeCopy fills the transpose of the block range
// [rowOffset, rowOffset+n) x [colOffset, colOffset+n) from its source,
// skipping any destination block outside the G x G grid. It stands in for
// the two FWR subcalls a symmetric graph never needs to run explicitly:
// the data those subcalls would have produced is exactly the transpose of
// data two earlier subcalls already computed.
func transposeCopy[T any](S []T, bp *blockTable, G, n, rowOffset, colOffset int) {
	rowEnd := min(rowOffset+n, G)
	colEnd := min(colOffset+n, G)
	for i := rowOffset; i < rowEnd; i++ {
		for j := colOffset; j < colEnd; j++ {
			srcOff := bp.get(i, j)
			dstOff := bp.get(j, i)
			src := S[srcOff : srcOff+B*B]
			dst := S[dstOff : dstOff+B*B]
			for y := 0; y < B; y++ {
				for x := 0; x < B; x++ {
					dst[x*B+y] = src[y*B+x]
				}
			}
		}
	}
}
