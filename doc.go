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

// Package intgemm is a CPU-dispatched low-precision integer matrix
// multiplication library for neural-network inference on x86.
//
// It quantizes float32 activations and weights to 8-bit (or 16-bit)
// integers, multiplies them with a vectorized integer GEMM, and produces a
// float32 result through a composable write kernel (identity, bias-add,
// rescale, or an elementwise activation).
//
// # Usage
//
//	Aq := make([]int8, rows*width)
//	intgemm.Quantize8(Af, Aq, quantMultA)
//
//	Bpacked := make([]int8, width*cols)
//	intgemm.PrepareB8(Bf, Bpacked, quantMultB, width, cols)
//
//	unquantMult := float32(1) / (quantMultA * quantMultB)
//	out := make([]float32, rows*cols)
//	intgemm.Multiply8(Aq, Bpacked, rows, width, cols, unquantMult, bias, intgemm.BiasAddUnquantize, out)
//
// The named error types ([UnsupportedCpuError] from [RequireCPU],
// [ShapeError] from the shape-checked entry points, and
// align.AllocationError from align.New) are the only conditions the library
// reports synchronously; every other precondition (alignment, quant_mult
// range) is a contract violation that is not checked rather than returning
// an error, because per-element checking in the inner loops would defeat the
// point of the library.
package intgemm
