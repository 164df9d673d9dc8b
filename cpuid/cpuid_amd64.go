//go:build amd64

package cpuid

import "golang.org/x/sys/cpu"

// Supported reports whether this build's architecture has a real intgemm
// kernel to dispatch to.
const Supported = true

func init() {
	if noSimdEnv() {
		current = SSE2
		return
	}
	current = detect()
}

// detect reads golang.org/x/sys/cpu's CPUID-derived feature flags and maps
// them onto the ordered Tag enumeration. AVX512VNNI requires AVX512BW as a
// prerequisite for the microkernel's fallback path, so it is only reported
// once both are present.
func detect() Tag {
	switch {
	case cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VNNI:
		return AVX512VNNI
	case cpu.X86.HasAVX512BW:
		return AVX512BW
	case cpu.X86.HasAVX2:
		return AVX2
	case cpu.X86.HasSSSE3:
		return SSSE3
	default:
		return SSE2
	}
}
