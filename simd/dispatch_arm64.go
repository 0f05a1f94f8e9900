//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 0
		return
	}

	// NEON (ASIMD) is mandatory on ARMv8-A; cpu.ARM64.HasASIMD is always
	// true in practice, checked anyway for consistency with other arches.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
	} else {
		currentLevel = DispatchScalar
		currentWidth = 0
	}
}
