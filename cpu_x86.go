//go:build (386 || amd64) && !noasm

package jpegdsp

import "golang.org/x/sys/cpu"

func detectCPU() Capability {
	var c Capability

	if cpu.X86.HasSSE2 {
		c |= CapSSE2
	}

	if cpu.X86.HasAVX2 {
		c |= CapAVX2
	}

	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		c |= CapAVX512
	}

	return c
}
