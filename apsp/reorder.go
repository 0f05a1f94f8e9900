package apsp

import "github.com/blockwarshall/qfw/simd"

// reorder permutes the caller's n x n row-major matrix into (or out of) the
// block-table's Z-order scratch layout, negating every element on the way
// so the kernel can work purely in max-form. Grounded on qfw.h's reorder:
// the recursive 2x2 descent visits blocks in exactly the order FWR will
// later touch them, so sibling recursion subtrees stay contiguous in S at
// every scale.
//
// Forward (reverse == false): writes -src[i,j] for in-range elements and
// -inf for padding (rows/cols >= srcN inside an otherwise in-range block).
// Reverse (reverse == true): writes -S[...] back into src for in-range
// elements only; padding positions are left untouched since they lie
// outside the caller's matrix.
//
// dstHead is the next free element offset into S; reorder returns the
// offset just past everything it wrote, so repeated calls can thread a
// single bump allocator through the whole recursive descent.
func reorder[T simd.Lanes](S []T, srcN, P, dstHead int, src []T, bp *blockTable, blockRow, blockCol int, reverse bool, negInf T) int {
	G := bp.g
	if blockRow >= G || blockCol >= G {
		return dstHead
	}
	if P == 1 {
		srcBase := blockRow*B*srcN + blockCol*B
		for i := 0; i < B; i++ {
			dstRow := dstHead + i*B
			if blockRow*B+i < srcN {
				length := min(B, srcN-blockCol*B)
				srcRow := srcBase + i*srcN
				if !reverse {
					for j := 0; j < length; j++ {
						S[dstRow+j] = -src[srcRow+j]
					}
					for j := length; j < B; j++ {
						S[dstRow+j] = negInf
					}
				} else {
					for j := 0; j < length; j++ {
						src[srcRow+j] = -S[dstRow+j]
					}
				}
			} else if !reverse {
				for j := 0; j < B; j++ {
					S[dstRow+j] = negInf
				}
			}
		}
		bp.set(blockRow, blockCol, dstHead)
		return dstHead + B*B
	}

	half := P / 2
	dstHead = reorder(S, srcN, half, dstHead, src, bp, blockRow, blockCol, reverse, negInf)
	dstHead = reorder(S, srcN, half, dstHead, src, bp, blockRow, blockCol+half, reverse, negInf)
	dstHead = reorder(S, srcN, half, dstHead, src, bp, blockRow+half, blockCol, reverse, negInf)
	dstHead = reorder(S, srcN, half, dstHead, src, bp, blockRow+half, blockCol+half, reverse, negInf)
	return dstHead
}
