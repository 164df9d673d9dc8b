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

import "math"

// int8Min is the lower bound intgemm quantizes int8 output to. Genuine
// int8 can reach -128, but that value is never produced, so negating any
// quantized int8 value stays within int8 range.
const int8Min = -127
const int8Max = 127
const int16Min = -32768
const int16Max = 32767

// ScalarQuantize8 is the portable reference quantizer:
//
//	output[i] = saturate(round_half_to_even(input[i] * quantMult), -127, 127)
//
// It is always correct and always available; it backs the SSE2/SSSE3 tier
// directly and is what every other tier's tests compare against, per the
// IsOff property in spec.md §8.
func ScalarQuantize8(input []float32, output []int8, quantMult float32) {
	n := len(input)
	if len(output) < n {
		n = len(output)
	}
	for i := 0; i < n; i++ {
		output[i] = int8(saturate(math.RoundToEven(float64(input[i])*float64(quantMult)), int8Min, int8Max))
	}
}

// ScalarQuantize16 is the portable reference quantizer narrowing to int16.
func ScalarQuantize16(input []float32, output []int16, quantMult float32) {
	n := len(input)
	if len(output) < n {
		n = len(output)
	}
	for i := 0; i < n; i++ {
		output[i] = int16(saturate(math.RoundToEven(float64(input[i])*float64(quantMult)), int16Min, int16Max))
	}
}

func saturate(v float64, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Quantize8 converts size = min(len(input), len(output)) float32 activations
// to saturating int8, using the best kernel available for the current CPU
// (see dispatch.go). quantMult must be positive; intgemm does not validate
// this in release builds — an invalid quantMult is a contract violation, not
// a recoverable error.
func Quantize8(input []float32, output []int8, quantMult float32) {
	quantize8Impl(input, output, quantMult)
}

// Quantize16 is Quantize8's int16 counterpart.
func Quantize16(input []float32, output []int16, quantMult float32) {
	quantize16Impl(input, output, quantMult)
}
