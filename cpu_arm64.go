//go:build arm64 && !noasm

package jpegdsp

import "golang.org/x/sys/cpu"

func detectCPU() Capability {
	// Advanced SIMD is mandatory on ARMv8, but some emulators hide it.
	if cpu.ARM64.HasASIMD {
		return CapNEON
	}

	return 0
}
