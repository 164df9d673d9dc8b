// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intgemm

import "github.com/ajroetker/intgemm/cpuid"

// The package's exported entry points (Quantize8, Multiply8, ...) call
// these function variables rather than branching on cpuid.Current() at
// every call site, mirroring the teacher's own dispatch.go
// (hwy/contrib/matmul/dispatch.go): init() below sets the scalar floor
// unconditionally, and dispatch_simd_amd64.go (compiled only under
// goexperiment.simd) overrides them when a faster kernel exists. Go runs a
// package's init funcs in the order go/build lists its files, which sorts
// lexically by filename; "dispatch.go" sorts before
// "dispatch_simd_amd64.go" ('.' < '_' in ASCII), so the override always
// runs after the floor is set, never before.
var (
	quantize8Impl  func(input []float32, output []int8, quantMult float32)
	quantize16Impl func(input []float32, output []int16, quantMult float32)

	dotTile8Impl  func(aRow, bTile []int8, width int, shape TileShape) []int32
	dotTile16Impl func(aRow, bTile []int16, width int, shape TileShape) []int32

	// dotTile8UnsignedImpl is dotTile8Impl's unsigned-A counterpart, the
	// only kernel Multiply8Unsigned may call — it is the sole accumulation
	// path PrepareBiasFor8's correction is valid against (see bias.go).
	dotTile8UnsignedImpl func(aRow []uint8, bTile []int8, width int, shape TileShape) []int32

	vectorMeanStdImpl func(input []float32, absolute bool) (float32, float32)

	// activeTileTag is the cpuid.Tag the currently-wired kernels were
	// actually built for, as opposed to cpuid.Current()'s raw hardware
	// probe: without goexperiment.simd compiled in, a machine can still
	// probe as AVX512-capable while every Impl above stays scalar, and
	// TileShape8/16 must track the kernels, not the hardware, or
	// PrepareB8's permutation would disagree with what dotTile8Impl
	// expects to read.
	activeTileTag cpuid.Tag
)

func init() {
	quantize8Impl = ScalarQuantize8
	quantize16Impl = ScalarQuantize16
	dotTile8Impl = dotTile8Scalar
	dotTile16Impl = dotTile16Scalar
	dotTile8UnsignedImpl = dotTile8UnsignedScalar
	vectorMeanStdImpl = ScalarVectorMeanStd
	activeTileTag = cpuid.SSE2
}

// AvailableCPU reports the SIMD tag detected on this process's CPU, for
// logging and diagnostics (cmd/intgemm-bench prints it at startup). This
// may be higher than the tag the wired kernels actually target — see
// ActiveTag.
func AvailableCPU() cpuid.Tag {
	return cpuid.Current()
}

// ActiveTag reports the SIMD tag the currently-wired kernels were built
// for. PrepareB8/PrepareB16's tile permutation and Multiply8/Multiply16's
// microkernel must agree on this tag, so TileShape8/TileShape16 key off it
// rather than off AvailableCPU's raw hardware probe.
func ActiveTag() cpuid.Tag {
	return activeTileTag
}

// RequireCPU returns an *UnsupportedCpuError if the current process's CPU
// tag is below required, nil otherwise. Callers who depend on a specific
// tier of accelerated kernel (e.g. a benchmark comparing AVX512 against
// AVX2) call this before proceeding rather than silently falling back.
func RequireCPU(required cpuid.Tag) error {
	current := cpuid.Current()
	if current < required {
		return &UnsupportedCpuError{Required: required.String(), Detected: current.String()}
	}
	return nil
}
