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

// PrepareBiasFor8 folds B's unsigned-A zero-point correction into bias in
// place, for the same B_f that PrepareB8 packs. It is only valid
// combined with PrepareA8Unsigned and Multiply8Unsigned: that path quantizes
// A as unsigned (shifted up by 128) so the microkernel can use an
// unsigned*signed multiply, and this function's correction exists solely to
// subtract that shift's contribution back out. Wired to the plain, signed
// PrepareA8/Multiply8 path instead — which never adds the 128 shift this
// formula assumes — it subtracts a correction for an offset that was never
// introduced, corrupting every output column whose B column sum is non-zero.
//
// bias'[j] = bias[j] - 128 * alpha * (sum over k of B[k][j]) / quantMultB
//
// quantMultB is B's quantization multiplier (the same one passed to
// PrepareB8 on this B_f); alpha scales the correction. With
// Multiply8Unsigned run at unquantMult = 1/(quantMultA*quantMultB), the
// correction cancels the 128 shift (up to B's quantization rounding) when
// alpha = quantMultB/quantMultA, i.e. alpha = 1 when A and B share one
// multiplier. PrepareBiasFor8 reads B_f in its original row-major float
// layout, which PrepareB8 leaves unmodified, so the two may run in either
// order.
func PrepareBiasFor8(Bf []float32, bias []float32, alpha, quantMultB float32, width, cols int) {
	if len(Bf) < width*cols {
		panic("intgemm: PrepareBiasFor8: Bf shorter than width*cols")
	}
	if len(bias) < cols {
		panic("intgemm: PrepareBiasFor8: bias shorter than cols")
	}

	for j := 0; j < cols; j++ {
		var sum float32
		for k := 0; k < width; k++ {
			sum += Bf[k*cols+j]
		}
		bias[j] -= 128 * alpha * sum / quantMultB
	}
}
