package simd

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel names the SIMD instruction set selected for the ScalableTag
// at runtime.
type DispatchLevel int

const (
	// DispatchScalar means no SIMD: pure Go arithmetic on individual lanes.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 is the amd64 baseline 128-bit width.
	DispatchSSE2

	// DispatchAVX2 is 256-bit amd64 SIMD.
	DispatchAVX2

	// DispatchAVX512 is 512-bit amd64 SIMD.
	DispatchAVX512

	// DispatchNEON is 128-bit arm64 SIMD.
	DispatchNEON
)

// String renders the dispatch level the way Describe() embeds it.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "w128"
	case DispatchAVX2:
		return "w256"
	case DispatchAVX512:
		return "w512"
	case DispatchNEON:
		return "w128"
	default:
		return "unknown"
	}
}

// currentLevel/currentWidth are set once by the arch-specific init() in
// dispatch_*.go.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the SIMD instruction set ScalableTag resolves to.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the current SIMD register width in bytes.
func CurrentWidth() int { return currentWidth }

// NoSimdEnv reports whether QFW_NO_SIMD forces the scalar path, mirroring
// the teacher's HWY_NO_SIMD escape hatch for debugging and benchmarking the
// reference path on real hardware.
func NoSimdEnv() bool {
	val := os.Getenv("QFW_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many T values fit in the current SIMD width.
func MaxLanes[T Lanes]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || currentWidth == 0 {
		return 1
	}
	return currentWidth / size
}
