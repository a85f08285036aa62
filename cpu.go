package jpegdsp

import (
	"os"
	"strings"
	"sync"
)

// Capability is a bitmask of the vector instruction sets usable on the running CPU.
type Capability uint32

const (
	// CapSSE2 reports 128-bit SSE2 (baseline on amd64).
	CapSSE2 Capability = 1 << iota
	// CapAVX2 reports 256-bit AVX2.
	CapAVX2
	// CapAVX512 reports 512-bit AVX-512 with byte/word instructions (F + BW).
	CapAVX512
	// CapNEON reports 128-bit ARM Advanced SIMD.
	CapNEON
	// CapAltiVec reports 128-bit POWER8 VMX/VSX.
	CapAltiVec
	// CapRVV reports the RISC-V V extension. Its register width (VLEN) is not read.
	CapRVV
)

var capNames = []struct {
	c    Capability
	name string
}{
	{CapSSE2, "sse2"},
	{CapAVX2, "avx2"},
	{CapAVX512, "avx512"},
	{CapNEON, "neon"},
	{CapAltiVec, "altivec"},
	{CapRVV, "rvv"},
}

// Has reports whether every bit of f is set in c.
func (c Capability) Has(f Capability) bool {
	return c&f == f && f != 0
}

// String returns the capability names joined with '|', or "none".
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}

	var parts []string
	for _, n := range capNames {
		if c&n.c != 0 {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, "|")
}

var (
	// detected holds the bitmask computed by the first DetectSIMDSupport call.
	detected Capability

	// detectOnce guards detected; every racing caller computes the same value.
	detectOnce sync.Once

	// detectMu serializes access to detectOnce so ResetDetection can replace it.
	detectMu sync.Mutex

	// forced overrides hardware detection in tests.
	forced   *Capability
	forcedMu sync.RWMutex
)

// DetectSIMDSupport inspects the running CPU once and returns the capability bitmask.
//
// The JSIMD_FORCENONE, JSIMD_FORCESSE2, JSIMD_FORCEAVX2 and JSIMD_FORCENEON
// environment variables, when set to "1", restrict the result the same way
// libjpeg-turbo does. Building with the noasm tag always yields zero.
func DetectSIMDSupport() Capability {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	detectMu.Lock()
	detectOnce.Do(func() {
		detected = applyEnv(detectCPU(), os.Getenv)
	})
	c := detected
	detectMu.Unlock()

	return c
}

// SetForcedCapabilities overrides hardware detection. It is intended for tests.
func SetForcedCapabilities(c Capability) {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	fc := c
	forced = &fc
}

// ResetDetection clears any forced capabilities and the cached detection result.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()

	detectMu.Lock()
	detectOnce = sync.Once{}
	detected = 0
	detectMu.Unlock()
}

// applyEnv narrows c according to the JSIMD_FORCE* environment variables.
func applyEnv(c Capability, getenv func(string) string) Capability {
	if getenv("JSIMD_FORCESSE2") == "1" {
		c &= CapSSE2
	}

	if getenv("JSIMD_FORCEAVX2") == "1" {
		c &= CapAVX2
	}

	if getenv("JSIMD_FORCENEON") == "1" {
		c &= CapNEON
	}

	if getenv("JSIMD_FORCENONE") == "1" {
		c = 0
	}

	return c
}
