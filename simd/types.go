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

// Package simd provides a portable vector-lane abstraction with runtime CPU
// dispatch, narrowed to the signed integer element types a tropical-semiring
// shortest-path kernel needs.
//
// Basic usage:
//
//	v := simd.Load(data, lanes)
//	sum := simd.Add(v, simd.Broadcast[int32](7, lanes))
//	simd.ChMaxStore(sum, dst)
package simd

// Lanes is a constraint for the element types a Vec may hold. Only signed
// integers are supported: the engine's arithmetic is two's-complement
// max-plus over int16/int32/int64, never float.
type Lanes interface {
	~int16 | ~int32 | ~int64
}

// Vec is a portable vector handle. In the base (scalar) path it simply wraps
// a slice; architecture-specific dispatch paths may hold the same lanes in a
// hardware vector register instead.
//
// Vec values should not be constructed directly; use Load, Broadcast, or
// Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes held by v.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data exposes the underlying lanes. Intended for tests, not hot paths.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes v's lanes into dst, truncating to min(len(v), len(dst)).
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}
