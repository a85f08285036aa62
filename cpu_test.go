package jpegdsp

import "testing"

// TestCapabilityString verifies the names of capability bitmasks.
func TestCapabilityString(t *testing.T) {
	tests := []struct {
		c    Capability
		want string
	}{
		{0, "none"},
		{CapSSE2, "sse2"},
		{CapSSE2 | CapAVX2, "sse2|avx2"},
		{CapSSE2 | CapAVX2 | CapAVX512, "sse2|avx2|avx512"},
		{CapNEON, "neon"},
		{CapAltiVec, "altivec"},
		{CapRVV, "rvv"},
		{CapNEON | CapRVV, "neon|rvv"},
	}

	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("Capability(%d).String() = %q, want %q", uint32(tc.c), got, tc.want)
		}
	}
}

// TestCapabilityHas verifies bit tests, including the empty mask.
func TestCapabilityHas(t *testing.T) {
	c := CapSSE2 | CapAVX2

	if !c.Has(CapSSE2) || !c.Has(CapAVX2) || !c.Has(CapSSE2|CapAVX2) {
		t.Error("Has missed a set bit")
	}

	if c.Has(CapAVX512) || c.Has(CapSSE2|CapAVX512) {
		t.Error("Has reported a missing bit")
	}

	if c.Has(0) {
		t.Error("Has(0) should be false")
	}
}

// TestApplyEnv verifies the JSIMD_FORCE* environment overrides.
func TestApplyEnv(t *testing.T) {
	all := CapSSE2 | CapAVX2 | CapAVX512

	tests := []struct {
		name string
		env  map[string]string
		in   Capability
		want Capability
	}{
		{"none set", nil, all, all},
		{"force none", map[string]string{"JSIMD_FORCENONE": "1"}, all, 0},
		{"force sse2", map[string]string{"JSIMD_FORCESSE2": "1"}, all, CapSSE2},
		{"force avx2", map[string]string{"JSIMD_FORCEAVX2": "1"}, all, CapAVX2},
		{"force avx2 unsupported", map[string]string{"JSIMD_FORCEAVX2": "1"}, CapSSE2, 0},
		{"force neon", map[string]string{"JSIMD_FORCENEON": "1"}, CapNEON, CapNEON},
		{"force neon on x86", map[string]string{"JSIMD_FORCENEON": "1"}, all, 0},
		{"other value", map[string]string{"JSIMD_FORCENONE": "0"}, all, all},
		{"none wins", map[string]string{"JSIMD_FORCESSE2": "1", "JSIMD_FORCENONE": "1"}, all, 0},
		{"force none rvv", map[string]string{"JSIMD_FORCENONE": "1"}, CapRVV, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			getenv := func(k string) string { return tc.env[k] }
			if got := applyEnv(tc.in, getenv); got != tc.want {
				t.Errorf("applyEnv(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// TestForcedCapabilities verifies that forcing overrides detection until reset.
func TestForcedCapabilities(t *testing.T) {
	defer ResetDetection()

	SetForcedCapabilities(CapNEON)
	if got := DetectSIMDSupport(); got != CapNEON {
		t.Errorf("forced detection = %v, want neon", got)
	}

	SetForcedCapabilities(0)
	if got := DetectSIMDSupport(); got != 0 {
		t.Errorf("forced detection = %v, want none", got)
	}

	ResetDetection()
	first := DetectSIMDSupport()
	if second := DetectSIMDSupport(); first != second {
		t.Errorf("detection is not stable: %v then %v", first, second)
	}
}

// TestBackendFor verifies that the widest available backend is chosen.
func TestBackendFor(t *testing.T) {
	tests := []struct {
		c    Capability
		want Backend
	}{
		{0, Scalar},
		{CapSSE2, SSE2},
		{CapSSE2 | CapAVX2, AVX2},
		{CapSSE2 | CapAVX2 | CapAVX512, AVX512},
		{CapNEON, NEON},
		{CapAltiVec, AltiVec},
		{CapRVV, RVV(128, 2)},
	}

	for _, tc := range tests {
		if got := BackendFor(tc.c); got != tc.want {
			t.Errorf("BackendFor(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}
