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

// WriteKernel converts one int32 accumulator value from Multiply's inner
// product into the final float32 output element, applying unquantization
// (dividing out quantMultA*quantMultB), bias, and any activation the caller
// composes in. driver.go calls exactly one WriteKernel per output element;
// composing kernels (ReLU(BiasAddUnquantize), say) is cheaper than writing
// one output pass per activation, the same trade-off the teacher's
// hwy/contrib/matmul/dispatch.go ActivationType switch makes, reworked here
// as ordinary function-value composition instead of an enum + switch,
// since Go closures make that strictly less code for the same effect.
type WriteKernel func(acc int32, unquantMult float32, bias float32) float32

// JustUnquantize undoes quantization with no bias and no activation.
func JustUnquantize(acc int32, unquantMult float32, bias float32) float32 {
	return float32(acc) * unquantMult
}

// BiasAddUnquantize unquantizes then adds bias. On the signed Multiply8
// path, bias is whatever the caller supplied, untouched. On the unsigned
// Multiply8Unsigned path, bias must instead be the output of
// PrepareBiasFor8 run against the same B_f — PrepareBiasFor8 and
// Multiply8Unsigned are a matched pair, and mixing either of them with the
// other path's counterpart (PrepareBiasFor8 with Multiply8, or a raw bias
// with Multiply8Unsigned) produces silently wrong output.
func BiasAddUnquantize(acc int32, unquantMult float32, bias float32) float32 {
	return float32(acc)*unquantMult + bias
}

// Rescale wraps base, multiplying its result by scale. Useful when a
// downstream consumer expects a different output range than unquantized
// units.
func Rescale(base WriteKernel, scale float32) WriteKernel {
	return func(acc int32, unquantMult float32, bias float32) float32 {
		return base(acc, unquantMult, bias) * scale
	}
}

// ReLU wraps base, clamping negative results to zero.
func ReLU(base WriteKernel) WriteKernel {
	return func(acc int32, unquantMult float32, bias float32) float32 {
		v := base(acc, unquantMult, bias)
		if v < 0 {
			return 0
		}
		return v
	}
}

// Sigmoid wraps base with the logistic function.
func Sigmoid(base WriteKernel) WriteKernel {
	return func(acc int32, unquantMult float32, bias float32) float32 {
		v := float64(base(acc, unquantMult, bias))
		return float32(1 / (1 + math.Exp(-v)))
	}
}

// Tanh wraps base with the hyperbolic tangent.
func Tanh(base WriteKernel) WriteKernel {
	return func(acc int32, unquantMult float32, bias float32) float32 {
		return float32(math.Tanh(float64(base(acc, unquantMult, bias))))
	}
}

// Exp wraps base with the natural exponential.
func Exp(base WriteKernel) WriteKernel {
	return func(acc int32, unquantMult float32, bias float32) float32 {
		return float32(math.Exp(float64(base(acc, unquantMult, bias))))
	}
}
