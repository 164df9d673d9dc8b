//go:build !amd64

package cpuid

// Non-x86 targets have no accelerated kernel to dispatch to; current stays
// at its zero value (SSE2), so the dispatcher keeps the portable scalar
// kernels wired and Supported reports false.
func init() {
	current = SSE2
}

// Supported reports whether this build's architecture has any intgemm
// kernel at all. amd64 always does; every other GOARCH does not.
const Supported = false
