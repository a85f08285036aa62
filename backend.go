package jpegdsp

import "fmt"

// maxLanes bounds the widest lane group a backend may be granted: a 512-bit register of bytes,
// or an RVV register group of 16-bit elements at VLEN=128, LMUL=8.
const maxLanes = 64

// Backend describes the lane geometry of one vector instruction set.
//
// Kernels are written once against the lane-group primitives in lanes.go and ask the backend,
// on every iteration, how many elements they may process. Fixed-width ISAs (SSE2, AVX2, NEON)
// grant either a whole register or nothing, leaving the remainder to the scalar code.
// Variable-length ISAs (RVV) grant any count up to the register group size, the way vsetvl does.
type Backend struct {
	// Name identifies the backend, e.g. "avx2" or "rvv128/m2".
	Name string
	// Bits is the register (or register group) width. Zero selects the scalar kernels.
	Bits int
	// Variable enables partial grants.
	Variable bool
}

// Predefined backends.
var (
	Scalar  = Backend{Name: "scalar"}
	SSE2    = Backend{Name: "sse2", Bits: 128}
	AVX2    = Backend{Name: "avx2", Bits: 256}
	AVX512  = Backend{Name: "avx512", Bits: 512}
	NEON    = Backend{Name: "neon", Bits: 128}
	AltiVec = Backend{Name: "altivec", Bits: 128}
)

// RVV returns a variable-length backend for a RISC-V vector unit with the given VLEN and LMUL.
func RVV(vlen, lmul int) Backend {
	return Backend{
		Name:     fmt.Sprintf("rvv%d/m%d", vlen, lmul),
		Bits:     vlen * lmul,
		Variable: true,
	}
}

// BackendFor returns the widest backend supported by c.
func BackendFor(c Capability) Backend {
	switch {
	case c.Has(CapAVX512):
		return AVX512
	case c.Has(CapAVX2):
		return AVX2
	case c.Has(CapSSE2):
		return SSE2
	case c.Has(CapNEON):
		return NEON
	case c.Has(CapAltiVec):
		return AltiVec
	case c.Has(CapRVV):
		// VLEN=128 is the minimum the V extension allows.
		return RVV(128, 2)
	}

	return Scalar
}

// String implements fmt.Stringer.
func (b Backend) String() string {
	return b.Name
}

// IsScalar reports whether b has no vector lanes.
func (b Backend) IsScalar() bool {
	return b.Bits < 16
}

// vlmax is the number of elemBits-wide lanes in one register (group).
func (b Backend) vlmax(elemBits int) int {
	n := b.Bits / elemBits
	if n > maxLanes {
		n = maxLanes
	}

	return n
}

// grant is the vsetvl request/grant step: it returns how many of the n remaining elements
// the next iteration may process. Zero means "finish with the scalar kernel".
func (b Backend) grant(n, elemBits int) int {
	vl := b.vlmax(elemBits)

	switch {
	case vl == 0 || n <= 0:
		return 0
	case n >= vl:
		return vl
	case b.Variable:
		return n
	}

	return 0
}

// blockGrant returns the number of DCT columns (or rows) processed per iteration.
// An 8-element block row always fits a partial register, so fixed backends wider than
// 128 bits are still granted 8 lanes instead of falling back to scalar code.
func (b Backend) blockGrant(n int) int {
	return min(max(b.vlmax(16), 1), n)
}
