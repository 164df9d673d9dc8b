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

// Package vecops provides the portable, scalar-backed tier of intgemm's
// generic vector abstraction. It plays the role the teacher's hwy package
// plays for its accelerated tiers (Vec[T], Load/Store/Set/Zero/Add/Sub/Mul/
// MulAdd), but only the fallback/reference (SSE2/SSSE3) kernels are built on
// it — the AVX2/AVX512 kernels call simd/archsimd directly and do not use
// this package.
package vecops

// Lanes is the set of element types intgemm's vectors carry: the narrow
// integer types used by the quantized GEMM path, plus int32 accumulators
// and float32 for the write-kernel stage.
type Lanes interface {
	~int8 | ~int16 | ~int32 | ~float32
}

// Width is the logical vector width, in bytes, the scalar tier pretends to
// operate on. It matches align.Width so portable code processes data in the
// same chunk size the aligned allocator pads to.
const Width = 64

// NumLanes returns how many elements of T fit in one Width-byte vector.
func NumLanes[T Lanes]() int {
	var zero T
	return Width / sizeOf(zero)
}

func sizeOf(v any) int {
	switch v.(type) {
	case int8:
		return 1
	case int16:
		return 2
	case int32, float32:
		return 4
	default:
		return 1
	}
}

// Vec is a fixed-width software vector: a value type wrapping a slice of up
// to NumLanes[T]() elements. It exists so portable kernels can be written in
// the same load/compute/store shape as the accelerated ones, even though
// nothing here actually executes as a single instruction.
type Vec[T Lanes] struct {
	data []T
}

// Zero returns a vector with every lane set to the zero value.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, NumLanes[T]())}
}

// Set returns a vector with every lane set to v (broadcast).
func Set[T Lanes](v T) Vec[T] {
	d := make([]T, NumLanes[T]())
	for i := range d {
		d[i] = v
	}
	return Vec[T]{data: d}
}

// Load reads up to NumLanes[T]() elements from src into a new vector. If src
// is shorter than a full vector, the remaining lanes are zero.
func Load[T Lanes](src []T) Vec[T] {
	v := Zero[T]()
	n := copy(v.data, src)
	_ = n
	return v
}

// Store writes v's lanes into dst, truncating if dst is shorter than a full
// vector.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data)
}

// Len reports how many lanes v carries (always NumLanes[T]()).
func (v Vec[T]) Len() int { return len(v.data) }

// At returns lane i.
func (v Vec[T]) At(i int) T { return v.data[i] }

// Add returns the element-wise sum a+b.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	out := Zero[T]()
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out
}

// Sub returns the element-wise difference a-b.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	out := Zero[T]()
	for i := range out.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out
}

// Mul returns the element-wise product a*b.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	out := Zero[T]()
	for i := range out.data {
		out.data[i] = a.data[i] * b.data[i]
	}
	return out
}

// MulAdd returns a*b+c, element-wise.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	return Add(Mul(a, b), c)
}
