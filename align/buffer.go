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

// Package align provides the L1 aligned-buffer abstraction: heap buffers
// whose base address is aligned to the widest SIMD vector (64 bytes, for
// AVX-512) and whose length is padded to a whole number of vector widths so
// tail loads/stores never touch unallocated memory.
package align

import (
	"fmt"
	"unsafe"
)

// Width is the alignment, in bytes, every AlignedBuffer guarantees. It
// matches the widest vector register intgemm's kernels load (ZMM, 64
// bytes), so a buffer sized for AVX-512 is also correctly aligned for every
// narrower ISA this library targets.
const Width = 64

// AllocationError is returned by New when the requested length is negative
// or elemsPerVec is not positive. New does not check the padded size for
// overflow, and real OS-level exhaustion surfaces as a Go runtime OOM panic,
// same as any other make().
type AllocationError struct {
	Requested int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("align: cannot satisfy aligned allocation of %d elements", e.Requested)
}

// Buffer is a contiguous run of T whose backing array starts at a 64-byte
// boundary and whose logical length is padded to a multiple of elemsPerVec.
// Len reports the user-visible (unpadded) length; Cap reports the padded
// length that is safe for a kernel to vector-load/store across.
type Buffer[T any] struct {
	raw     []T // unaligned allocation, len == cap == padded length + slack
	data    []T // aligned slice into raw, len == padded length
	userLen int
}

// New allocates a Buffer holding at least n elements of T, aligned to Width
// bytes, with its capacity rounded up to a whole multiple of elemsPerVec (the
// widest vector's element count for T, e.g. 64 for int8, 16 for int32). Every
// element in [0, Cap) is zero-initialized, so tail lanes read by a masked-off
// vector load are always well-defined zero, never garbage.
func New[T any](n, elemsPerVec int) (*Buffer[T], error) {
	if n < 0 || elemsPerVec <= 0 {
		return nil, &AllocationError{Requested: n}
	}
	padded := roundUp(n, elemsPerVec)

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	slack := Width/size + 1

	raw := make([]T, padded+slack)
	off := alignOffset(raw, Width)
	data := raw[off : off+padded]

	return &Buffer[T]{raw: raw, data: data, userLen: n}, nil
}

// Len returns the user-visible, unpadded length.
func (b *Buffer[T]) Len() int { return b.userLen }

// Cap returns the padded length — always a whole multiple of the vector
// width requested at New — that a kernel may safely load/store across.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Slice returns the padded, aligned backing slice. Kernels operate on this;
// callers that only care about the logical contents should use Data.
func (b *Buffer[T]) Slice() []T { return b.data }

// Data returns the logical, unpadded contents.
func (b *Buffer[T]) Data() []T { return b.data[:b.userLen] }

func roundUp(n, multiple int) int {
	if n <= 0 {
		return multiple
	}
	rem := n % multiple
	if rem == 0 {
		return n
	}
	return n + (multiple - rem)
}

// alignOffset returns the index into s at which the backing array's address
// is a multiple of align bytes. s must have enough slack past the element
// count callers intend to use for such an index to exist within bounds.
func alignOffset[T any](s []T, align int) int {
	if len(s) == 0 {
		return 0
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	base := uintptr(unsafe.Pointer(&s[0]))
	mis := int(base % uintptr(align))
	if mis == 0 {
		return 0
	}
	pad := align - mis
	return (pad + size - 1) / size
}
