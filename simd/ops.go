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

package simd

// This file provides the portable (scalar) implementations of every lane
// operation. Unlike the teacher's hwy.ops_base.go, Lanes here is restricted
// to native signed integer types, so arithmetic can use Go's built-in
// operators directly instead of a per-type any() switch — there is no
// Float16/BFloat16 member of this constraint that needs special-casing.
// Real hardware-vector paths (archsimd-backed) would replace these behind
// the same signatures; the scalar path stays the correctness reference,
// exactly as spec requires.

// Load reads up to lanes elements from src into a new Vec. lanes must be
// the caller's Tag's lane count (Engine passes its own e.lanes), not the
// package-global MaxLanes[T](): those two can disagree whenever a caller
// asks for a width the ambient CPU detection didn't pick, and sizing off
// the wrong one would silently read fewer lanes than the caller's stride
// assumes.
func Load[T Lanes](src []T, lanes int) Vec[T] {
	n := min(len(src), lanes)
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes v's lanes into dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Broadcast returns a vector of lanes copies of x. See Load for why lanes
// must come from the caller's Tag rather than from MaxLanes[T]().
func Broadcast[T Lanes](x T, lanes int) Vec[T] {
	data := make([]T, lanes)
	for i := range data {
		data[i] = x
	}
	return Vec[T]{data: data}
}

// Zero returns a vector of lanes zero-valued lanes. See Load for why lanes
// must come from the caller's Tag rather than from MaxLanes[T]().
func Zero[T Lanes](lanes int) Vec[T] {
	return Vec[T]{data: make([]T, lanes)}
}

// Add performs lanewise wrapping addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: out}
}

// Sub performs lanewise wrapping subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: out}
}

// Neg negates every lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = -x
	}
	return Vec[T]{data: out}
}

// Min returns the lanewise signed minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// Max returns the lanewise signed maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// ChMaxStore is the kernel's hot primitive: dst[i] := max(dst[i], v[i]).
// On AVX2/int64, cmpgt with a memory operand as the second comparand
// is cheaper than the mirror-image chmin would be (chmin needs an extra
// load to get the comparison the right way round), which is why the
// engine phrases everything in terms of max after negating on the way in.
func ChMaxStore[T Lanes](v Vec[T], dst []T) {
	n := min(len(v.data), len(dst))
	for i := 0; i < n; i++ {
		if v.data[i] > dst[i] {
			dst[i] = v.data[i]
		}
	}
}
