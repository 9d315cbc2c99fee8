//go:build arm64

package fp

import "golang.org/x/sys/cpu"

func init() {
	if NoFMAEnv() {
		currentLevel = DispatchDekker
		return
	}

	// FMADD is part of the ARMv8-A base FP instruction set. ASIMD is checked
	// for consistency with the other feature probes.
	if cpu.ARM64.HasFP || cpu.ARM64.HasASIMD {
		currentLevel = DispatchFMA
	} else {
		currentLevel = DispatchDekker
	}
}
