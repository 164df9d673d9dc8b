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

import "github.com/ajroetker/intgemm/internal/vecops"

// dotTile8Scalar computes, for one row of A_q (width int8 values, ordinary
// row-major layout) and one column tile of B_packed (as laid out by
// permuteTiles in prepareb.go), the Col int32 partial products accumulated
// over all of width. This is the reference widening multiply-accumulate
// every accelerated kernel must agree with: on real hardware the row loop
// below is what VPMADDUBSW (pairwise int8*int8 -> int16) followed by
// VPMADDWD (pairwise int16 -> int32) or, on AVX-512 VNNI, a single
// VPDPBUSD, computes in one or two instructions per tile row. It is built
// on vecops.Vec[int32] rather than a raw loop over acc, the same
// load/broadcast/multiply-add shape the accelerated kernels use, so the
// scalar tier reads as a degenerate case of the same algorithm instead of a
// different one.
func dotTile8Scalar(aRow []int8, bTile []int8, width int, shape TileShape) []int32 {
	acc := vecops.Zero[int32]()
	numRowTiles := width / shape.Row
	bWide := make([]int32, shape.Col)
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			aBroadcast := vecops.Set(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < shape.Col; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := vecops.Load(bWide)
			acc = vecops.MulAdd(aBroadcast, bVec, acc)
		}
	}
	out := make([]int32, shape.Col)
	vecops.Store(acc, out)
	return out
}

// dotTile8UnsignedScalar is dotTile8Scalar's unsigned-A counterpart: aRow
// holds A quantized by PrepareA8Unsigned (every element shifted up by 128,
// per spec.md §4.6), read here as uint8 so the widening multiply zero-
// extends instead of sign-extends — the same distinction VPMADDUBSW makes
// between its unsigned and signed byte operand. This is the only kernel
// PrepareBiasFor8's correction is valid against; pairing that correction
// with dotTile8Scalar's signed A leaves the 128*alpha*ΣB term subtracted
// from a product that never had it added in.
func dotTile8UnsignedScalar(aRow []uint8, bTile []int8, width int, shape TileShape) []int32 {
	acc := vecops.Zero[int32]()
	numRowTiles := width / shape.Row
	bWide := make([]int32, shape.Col)
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			aBroadcast := vecops.Set(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < shape.Col; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := vecops.Load(bWide)
			acc = vecops.MulAdd(aBroadcast, bVec, acc)
		}
	}
	out := make([]int32, shape.Col)
	vecops.Store(acc, out)
	return out
}

// dotTile16Scalar is dotTile8Scalar's int16 counterpart; on real hardware
// this is a single VPMADDWD per tile row (int16*int16 -> int32, no
// intermediate pairwise narrowing needed since both operands are already
// 16-bit).
func dotTile16Scalar(aRow []int16, bTile []int16, width int, shape TileShape) []int32 {
	acc := vecops.Zero[int32]()
	numRowTiles := width / shape.Row
	bWide := make([]int32, shape.Col)
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			aBroadcast := vecops.Set(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < shape.Col; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := vecops.Load(bWide)
			acc = vecops.MulAdd(aBroadcast, bVec, acc)
		}
	}
	out := make([]int32, shape.Col)
	vecops.Store(acc, out)
	return out
}
