//go:build amd64 && goexperiment.simd

package cpuid

import "simd/archsimd"

// init runs after cpuid_amd64.go's init (Go orders same-package init
// functions by filename) and re-probes using the experimental archsimd
// feature queries, which is the path the teacher's own
// hwy/dispatch_amd64_simd.go takes when built with GOEXPERIMENT=simd. The
// two probes should always agree; this exists so a GOEXPERIMENT=simd build
// exercises the same detection surface the accelerated kernels need at
// runtime, rather than trusting golang.org/x/sys/cpu alone.
func init() {
	if noSimdEnv() {
		current = SSE2
		return
	}
	if archsimd.X86.AVX512() && current < AVX512BW {
		current = AVX512BW
	}
	if archsimd.X86.AVX2() && current < AVX2 {
		current = AVX2
	}
}
