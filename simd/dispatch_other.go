//go:build !amd64 && !arm64

package simd

func init() {
	// Unrecognized architectures fall back to the portable scalar path,
	// which is authoritative for correctness regardless of ISA.
	currentLevel = DispatchScalar
	currentWidth = 0
}
