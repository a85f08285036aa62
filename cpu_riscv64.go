//go:build riscv64 && !noasm

package jpegdsp

import "golang.org/x/sys/cpu"

func detectCPU() Capability {
	if cpu.RISCV64.HasV {
		return CapRVV
	}

	return 0
}
