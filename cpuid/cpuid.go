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

// Package cpuid probes the process's CPU once at startup and exposes an
// immutable, ordered capability tag. It is the L0 layer of intgemm: nothing
// in this package allocates, locks beyond the one-time probe, or depends on
// the rest of the module.
package cpuid

import "os"

// Tag is an ordered SIMD capability level. Higher values imply every
// capability of lower values.
type Tag uint8

const (
	SSE2 Tag = iota
	SSSE3
	AVX2
	AVX512BW
	AVX512VNNI
)

func (t Tag) String() string {
	switch t {
	case SSE2:
		return "sse2"
	case SSSE3:
		return "ssse3"
	case AVX2:
		return "avx2"
	case AVX512BW:
		return "avx512bw"
	case AVX512VNNI:
		return "avx512vnni"
	default:
		return "unknown"
	}
}

var current Tag

// Current returns the process-wide capability tag determined once at
// startup. It is safe to call concurrently from any number of goroutines.
func Current() Tag { return current }

// Available reports whether the current CPU satisfies at least the given
// capability tag.
func Available(tag Tag) bool { return current >= tag }

// noSimdEnv reports whether INTGEMM_NO_SIMD is set to force the portable
// floor (SSE2), overriding CPU detection. This
// mirrors the teacher's NoSimdEnv escape hatch and exists so tests and CI
// can exercise the scalar path deterministically regardless of host CPU.
func noSimdEnv() bool {
	v := os.Getenv("INTGEMM_NO_SIMD")
	return v != "" && v != "0"
}
