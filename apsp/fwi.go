package apsp

import "github.com/blockwarshall/qfw/simd"

// fwi applies one Floyd-Warshall sweep to a single block triple, using the
// scratch buffer S and the element offsets of the three blocks
// inside it. It dispatches to the register-blocked kernel when the three
// blocks are pairwise distinct, and otherwise falls back to a
// dependency-safe sweep that serializes on k — required whenever the
// pivot block updates itself or one of the operands aliases the
// accumulator, exactly as qfw.h's FWI does.
//
// Block identity is decided by comparing offsets into S rather than by
// slice-header equality: two block slices over the same backing array
// compare unequal with == (slices aren't comparable in Go at all), so the
// offsets recorded in the block table are the only reliable notion of
// "same region" available.
func (e *Engine[T]) fwi(S []T, aOff, bOff, cOff int) {
	a := S[aOff : aOff+B*B]
	b := S[bOff : bOff+B*B]
	c := S[cOff : cOff+B*B]

	if aOff != bOff && aOff != cOff && bOff != cOff {
		e.maxPlusMul(a, b, c)
		return
	}
	e.fwiSafe(a, b, c)
}

// fwiSafe is the aliasing-tolerant form: for each k then each i, broadcast
// b[i,k] once and relax the whole row a[i,:] against c[k,:]. Because k is
// the outermost loop, a write to a[k,:] on iteration k is never read again
// as a "b" or "c" value for a k' < k, which is what makes this safe when
// a, b, and c refer to overlapping memory.
func (e *Engine[T]) fwiSafe(a, b, c []T) {
	n := B
	lanes := e.lanes
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			coef := simd.Broadcast(b[i*n+k], lanes)
			aa := a[i*n:]
			bb := c[k*n:]
			for j := 0; j < n; j += lanes {
				simd.ChMaxStore(simd.Add(simd.Load(bb[j:], lanes), coef), aa[j:])
			}
		}
	}
}
