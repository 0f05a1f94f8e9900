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

import "unsafe"

// Tag names a vector width. It is the Go rendering of the spec's
// instruction_set enumeration (scalar, w128, w256, w512).
type Tag interface {
	// Width returns the tag's width in bytes (0 for scalar, 16/32/64 for
	// w128/w256/w512).
	Width() int

	// Name returns a human-readable name ("scalar", "w128", "w256", "w512").
	Name() string

	// maxLanes returns how many lanes of T fit in Width bytes.
	maxLanes() int
}

// ScalableTag adapts to whatever width CurrentWidth() reports at runtime.
// An Engine built with ScalableTag always runs on the best available ISA.
type ScalableTag[T Lanes] struct{}

// Width returns the ambient detected SIMD width in bytes.
func (ScalableTag[T]) Width() int { return currentWidth }

// Name returns the ambient dispatch level's name.
func (ScalableTag[T]) Name() string {
	if currentWidth == 0 {
		return "scalar"
	}
	return currentLevel.String()
}

// maxLanes returns how many T lanes fit in the ambient detected width.
func (ScalableTag[T]) maxLanes() int { return MaxLanes[T]() }

// FixedTag128 forces 128-bit (w128) lanes regardless of what the CPU could
// do better, for reproducible behavior across machines.
type FixedTag128[T Lanes] struct{}

// Width always returns 16.
func (FixedTag128[T]) Width() int { return 16 }

// Name always returns "w128".
func (FixedTag128[T]) Name() string { return "w128" }

// maxLanes returns how many T lanes fit in 16 bytes.
func (t FixedTag128[T]) maxLanes() int {
	var zero T
	return 16 / int(unsafe.Sizeof(zero))
}

// FixedTag256 forces 256-bit (w256) lanes.
type FixedTag256[T Lanes] struct{}

// Width always returns 32.
func (FixedTag256[T]) Width() int { return 32 }

// Name always returns "w256".
func (FixedTag256[T]) Name() string { return "w256" }

// maxLanes returns how many T lanes fit in 32 bytes.
func (t FixedTag256[T]) maxLanes() int {
	var zero T
	return 32 / int(unsafe.Sizeof(zero))
}

// FixedTag512 forces 512-bit (w512) lanes.
type FixedTag512[T Lanes] struct{}

// Width always returns 64.
func (FixedTag512[T]) Width() int { return 64 }

// Name always returns "w512".
func (FixedTag512[T]) Name() string { return "w512" }

// maxLanes returns how many T lanes fit in 64 bytes.
func (t FixedTag512[T]) maxLanes() int {
	var zero T
	return 64 / int(unsafe.Sizeof(zero))
}

// ScalarTag is the always-available, authoritative-for-correctness width-1
// tag: spec's "scalar" instruction_set.
type ScalarTag[T Lanes] struct{}

// Width always returns 0: scalar has no vector register width.
func (ScalarTag[T]) Width() int { return 0 }

// Name always returns "scalar".
func (ScalarTag[T]) Name() string { return "scalar" }

// maxLanes always returns 1.
func (ScalarTag[T]) maxLanes() int { return 1 }

// LanesOf returns how many T lanes tag addresses.
func LanesOf[T Lanes](tag Tag) int {
	n := tag.maxLanes()
	if n < 1 {
		return 1
	}
	return n
}
