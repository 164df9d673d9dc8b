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

// VectorMeanStd returns input's mean and population standard deviation, in
// one pass per element, at the best kernel available for the current CPU.
// When absolute is true, |x| is used in place of x for every element before
// accumulating — the mode intgemm's callers use to pick a quantization
// multiplier from a weight matrix's magnitude distribution rather than its
// signed distribution.
func VectorMeanStd(input []float32, absolute bool) (mean, stddev float32) {
	return vectorMeanStdImpl(input, absolute)
}

// ScalarVectorMeanStd is VectorMeanStd's portable reference implementation,
// and the one every accelerated path must agree with bit-for-bit-adjacent
// (float accumulation order differs, small ULP drift is expected).
func ScalarVectorMeanStd(input []float32, absolute bool) (float32, float32) {
	n := len(input)
	if n == 0 {
		return 0, 0
	}
	var sum, sumSq float64
	for _, v := range input {
		x := float64(v)
		if absolute && x < 0 {
			x = -x
		}
		sum += x
		sumSq += x * x
	}
	meanF := sum / float64(n)
	variance := sumSq/float64(n) - meanF*meanF
	if variance < 0 {
		variance = 0
	}
	return float32(meanF), float32(math.Sqrt(variance))
}
