//go:build amd64 && goexperiment.simd

package intgemm

import "github.com/ajroetker/intgemm/cpuid"

// init runs after dispatch.go's (see that file's comment on init ordering)
// and raises the scalar floor to the best kernel the detected CPU tag
// supports. AVX-512VNNI has no dedicated kernel of its own here — VPDPBUSD
// only changes how the multiply-accumulate is encoded, not the tile shape
// or data layout dotTile8AVX512 already uses, so AVX512BW's kernel serves
// both tags.
func init() {
	switch {
	case cpuid.Current() >= cpuid.AVX512BW:
		quantize8Impl = quantize8AVX512
		quantize16Impl = quantize16AVX512
		dotTile8Impl = dotTile8AVX512
		dotTile16Impl = dotTile16AVX512
		dotTile8UnsignedImpl = dotTile8UnsignedAVX512
		vectorMeanStdImpl = vectorMeanStdAVX512
		activeTileTag = cpuid.AVX512BW
	case cpuid.Current() >= cpuid.AVX2:
		quantize8Impl = quantize8AVX2
		quantize16Impl = quantize16AVX2
		dotTile8Impl = dotTile8AVX2
		dotTile16Impl = dotTile16AVX2
		dotTile8UnsignedImpl = dotTile8UnsignedAVX2
		vectorMeanStdImpl = vectorMeanStdAVX2
		activeTileTag = cpuid.AVX2
	}
}
