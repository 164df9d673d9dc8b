//go:build amd64 && goexperiment.simd

package intgemm

import "simd/archsimd"

// dotTile8AVX512 is dotTile8AVX2's AVX-512BW counterpart: TileShape8's
// column tile under AVX512BW is 16, matching archsimd.Int32x16 exactly.
func dotTile8AVX512(aRow []int8, bTile []int8, width int, shape TileShape) []int32 {
	if shape.Col != 16 {
		return dotTile8Scalar(aRow, bTile, width, shape)
	}
	numRowTiles := width / shape.Row
	accVec := archsimd.BroadcastInt32x16(0)
	var bWide [16]int32
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			a := archsimd.BroadcastInt32x16(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < 16; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := archsimd.LoadInt32x16Slice(bWide[:])
			accVec = accVec.Add(a.Mul(bVec))
		}
	}
	acc := make([]int32, 16)
	accVec.StoreSlice(acc)
	return acc
}

// dotTile8UnsignedAVX512 is dotTile8AVX512's unsigned-A counterpart. AVX-512
// VNNI's VPDPBUSD takes this same unsigned-A/signed-B operand pairing
// natively (the "u" and "s" in its name); AVX512BW without VNNI still gets
// correct results here via the same two-step widen-and-add dotTile8AVX512
// already uses.
func dotTile8UnsignedAVX512(aRow []uint8, bTile []int8, width int, shape TileShape) []int32 {
	if shape.Col != 16 {
		return dotTile8UnsignedScalar(aRow, bTile, width, shape)
	}
	numRowTiles := width / shape.Row
	accVec := archsimd.BroadcastInt32x16(0)
	var bWide [16]int32
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			a := archsimd.BroadcastInt32x16(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < 16; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := archsimd.LoadInt32x16Slice(bWide[:])
			accVec = accVec.Add(a.Mul(bVec))
		}
	}
	acc := make([]int32, 16)
	accVec.StoreSlice(acc)
	return acc
}

// dotTile16AVX512 is dotTile8AVX512's int16 counterpart.
func dotTile16AVX512(aRow []int16, bTile []int16, width int, shape TileShape) []int32 {
	if shape.Col != 16 {
		return dotTile16Scalar(aRow, bTile, width, shape)
	}
	numRowTiles := width / shape.Row
	accVec := archsimd.BroadcastInt32x16(0)
	var bWide [16]int32
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			a := archsimd.BroadcastInt32x16(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < 16; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := archsimd.LoadInt32x16Slice(bWide[:])
			accVec = accVec.Add(a.Mul(bVec))
		}
	}
	acc := make([]int32, 16)
	accVec.StoreSlice(acc)
	return acc
}
