//go:build (ppc64 || ppc64le) && !noasm

package jpegdsp

import "golang.org/x/sys/cpu"

func detectCPU() Capability {
	if cpu.PPC64.IsPOWER8 {
		return CapAltiVec
	}

	return 0
}
