// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package apsp computes All-Pairs Shortest Paths on dense, directed,
// non-negatively weighted graphs via a cache-blocked, SIMD-accelerated
// recursive Floyd-Warshall over a tropical (max-plus, after negation)
// semiring.
//
// Basic usage:
//
//	e := apsp.NewEngine[int32](simd.ScalableTag[int32]{}, 3)
//	e.Solve(n, weights, weights, false)
package apsp

import (
	"fmt"
	"math"

	"github.com/blockwarshall/qfw/simd"
)

// B is the fixed block side length in elements. Every register-blocking
// strategy assumes divisibility of B by 2 and by 4, which 64 satisfies.
const B = 64

// maxOf returns the maximum representable value of T.
func maxOf[T simd.Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case int16:
		var v int16 = math.MaxInt16
		return T(v)
	case int32:
		var v int32 = math.MaxInt32
		return T(v)
	case int64:
		var v int64 = math.MaxInt64
		return T(v)
	default:
		panic(fmt.Sprintf("apsp: unsupported element type %T", zero))
	}
}

// Inf returns the unreachability sentinel for T: max(T)/2, chosen so that
// two sentinels may be added together without overflowing T.
func Inf[T simd.Lanes]() T {
	return maxOf[T]() / 2
}

func bitsOf[T simd.Lanes]() int {
	var zero T
	switch any(zero).(type) {
	case int16:
		return 16
	case int32:
		return 32
	case int64:
		return 64
	default:
		panic(fmt.Sprintf("apsp: unsupported element type %T", zero))
	}
}

// Engine is one (instruction_set, T, unroll_type) strategy, built once and
// reused across calls to Solve. It is safe for concurrent use by multiple
// goroutines as long as each call operates on disjoint input/output buffers
// and scratch: Engine itself is immutable after construction.
type Engine[T simd.Lanes] struct {
	tag    simd.Tag
	unroll int
	lanes  int
}

// NewEngine builds an Engine for tag's instruction set and the given
// register-blocking unroll type (0-3, see kernel.go). It panics if B is not
// a multiple of tag's lane count for T, or if unroll is out of range —
// both are programmer errors caught once at construction instead of on
// every call.
func NewEngine[T simd.Lanes](tag simd.Tag, unroll int) *Engine[T] {
	lanes := simd.LanesOf[T](tag)
	if B%lanes != 0 {
		panic(fmt.Sprintf("apsp: block size %d is not a multiple of lane count %d", B, lanes))
	}
	if unroll < 0 || unroll > 3 {
		panic(fmt.Sprintf("apsp: unroll_type %d out of range [0,3]", unroll))
	}
	return &Engine[T]{tag: tag, unroll: unroll, lanes: lanes}
}

// Describe renders the engine's strategy as "opt<{ISA}, int{bits}_t, {unroll}>".
func (e *Engine[T]) Describe() string {
	return fmt.Sprintf("opt<%s, int%d_t, %d>", e.tag.Name(), bitsOf[T](), e.unroll)
}
