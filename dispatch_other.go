//go:build !amd64 || noasm

package jpegdsp

// bindNative leaves every kernel scalar: there is no native code for this architecture.
func bindNative(k *Kernels) {}
