//go:build amd64 && goexperiment.simd

package intgemm

import "simd/archsimd"

// dotTile8AVX2 accelerates dotTile8Scalar for AVX2, where TileShape8's
// column tile (8) matches archsimd.Int32x8's lane count exactly: the whole
// column-tile accumulator fits one vector register, so the inner cc loop in
// dotTile8Scalar collapses to a single vector multiply-add per k. Widening
// int8 -> int32 is done with a narrow scalar loop (no confirmed archsimd
// int8->int32 widening convert), which is the part real hardware folds into
// VPMADDUBSW/VPMADDWD; the multiply-accumulate itself is vectorized.
func dotTile8AVX2(aRow []int8, bTile []int8, width int, shape TileShape) []int32 {
	if shape.Col != 8 {
		return dotTile8Scalar(aRow, bTile, width, shape)
	}
	numRowTiles := width / shape.Row
	accVec := archsimd.BroadcastInt32x8(0)
	var bWide [8]int32
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			a := archsimd.BroadcastInt32x8(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < 8; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := archsimd.LoadInt32x8Slice(bWide[:])
			accVec = accVec.Add(a.Mul(bVec))
		}
	}
	acc := make([]int32, 8)
	accVec.StoreSlice(acc)
	return acc
}

// dotTile8UnsignedAVX2 is dotTile8AVX2's unsigned-A counterpart, read
// alongside dotTile8UnsignedScalar's comment on why the A operand must be
// zero- rather than sign-extended here.
func dotTile8UnsignedAVX2(aRow []uint8, bTile []int8, width int, shape TileShape) []int32 {
	if shape.Col != 8 {
		return dotTile8UnsignedScalar(aRow, bTile, width, shape)
	}
	numRowTiles := width / shape.Row
	accVec := archsimd.BroadcastInt32x8(0)
	var bWide [8]int32
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			a := archsimd.BroadcastInt32x8(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < 8; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := archsimd.LoadInt32x8Slice(bWide[:])
			accVec = accVec.Add(a.Mul(bVec))
		}
	}
	acc := make([]int32, 8)
	accVec.StoreSlice(acc)
	return acc
}

// dotTile16AVX2 is dotTile8AVX2's int16 counterpart.
func dotTile16AVX2(aRow []int16, bTile []int16, width int, shape TileShape) []int32 {
	if shape.Col != 8 {
		return dotTile16Scalar(aRow, bTile, width, shape)
	}
	numRowTiles := width / shape.Row
	accVec := archsimd.BroadcastInt32x8(0)
	var bWide [8]int32
	for rt := 0; rt < numRowTiles; rt++ {
		aBase := rt * shape.Row
		bBase := rt * shape.Row * shape.Col
		for kk := 0; kk < shape.Row; kk++ {
			a := archsimd.BroadcastInt32x8(int32(aRow[aBase+kk]))
			rowOff := bBase + kk*shape.Col
			for cc := 0; cc < 8; cc++ {
				bWide[cc] = int32(bTile[rowOff+cc])
			}
			bVec := archsimd.LoadInt32x8Slice(bWide[:])
			accVec = accVec.Add(a.Mul(bVec))
		}
	}
	acc := make([]int32, 8)
	accVec.StoreSlice(acc)
	return acc
}
