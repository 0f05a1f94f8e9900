package apsp

import (
	"math/rand"
	"testing"

	"github.com/blockwarshall/qfw/simd"
)

func TestFwiDistinctMatchesSafePath(t *testing.T) {
	r := rand.New(rand.NewSource(int64(5)*1000003 + int64(6)))
	e := NewEngine[int32](simd.ScalarTag[int32]{}, 1)

	S := make([]int32, 3*B*B)
	copy(S[0:B*B], randomBlock[int32](r))
	copy(S[B*B:2*B*B], randomBlock[int32](r))
	copy(S[2*B*B:3*B*B], randomBlock[int32](r))

	distinct := make([]int32, len(S))
	copy(distinct, S)
	e.fwi(distinct, 0, B*B, 2*B*B)

	safe := make([]int32, len(S))
	copy(safe, S)
	a := safe[0:B*B]
	b := safe[B*B : 2*B*B]
	c := safe[2*B*B : 3*B*B]
	e.fwiSafe(a, b, c)

	for i := 0; i < B*B; i++ {
		if distinct[i] != safe[i] {
			t.Fatalf("lane %d: dispatch-path %v != safe-path %v", i, distinct[i], safe[i])
		}
	}
}

func TestFwiSelfUpdateDoesNotPanic(t *testing.T) {
	e := NewEngine[int32](simd.ScalarTag[int32]{}, 2)
	r := rand.New(rand.NewSource(int64(9)*1000003 + int64(10)))
	S := make([]int32, B*B)
	copy(S, randomBlock[int32](r))
	// a == b == c: the pivot block updating itself.
	e.fwi(S, 0, 0, 0)
}
