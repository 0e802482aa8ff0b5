//go:build arm64

package bn

import "golang.org/x/sys/cpu"

func init() {
	// Check for BN_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) as part of the ARMv8-A
	// base architecture. We still check the cpu package so a future SVE
	// path can slot in here.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		setScalarMode()
	}
}
