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

// Multiply8 computes A_q (rows×width, row-major int8) times the B_packed
// produced by PrepareB8 (width×cols, ISA tile-permuted), writing rows×cols
// float32 results to out through wk. bias may be nil; wk defaults to
// JustUnquantize when nil. Single-threaded: callers parallelize across row
// ranges themselves (spec.md §5 leaves concurrency to the caller).
func Multiply8(Aq []int8, Bpacked []int8, rows, width, cols int, unquantMult float32, bias []float32, wk WriteKernel, out []float32) error {
	shape := TileShape8()
	if width%shape.Row != 0 || cols%shape.Col != 0 {
		return &ShapeError{Op: "Multiply8", Reason: shapeReason(width, cols, shape)}
	}
	if wk == nil {
		wk = JustUnquantize
	}

	numRowTiles := width / shape.Row
	tileFootprint := numRowTiles * shape.Row * shape.Col
	numColTiles := cols / shape.Col

	for i := 0; i < rows; i++ {
		aRow := Aq[i*width : (i+1)*width]
		outRow := out[i*cols : (i+1)*cols]
		for ct := 0; ct < numColTiles; ct++ {
			bTile := Bpacked[ct*tileFootprint : (ct+1)*tileFootprint]
			acc := dotTile8Impl(aRow, bTile, width, shape)
			colBase := ct * shape.Col
			for cc := 0; cc < shape.Col; cc++ {
				var b float32
				if bias != nil {
					b = bias[colBase+cc]
				}
				outRow[colBase+cc] = wk(acc[cc], unquantMult, b)
			}
		}
	}
	return nil
}

// Multiply8Unsigned is Multiply8's unsigned-A counterpart: Aq must come
// from PrepareA8Unsigned, never PrepareA8. It is the only entry point
// PrepareBiasFor8's bias correction is valid against — pass bias as
// PrepareBiasFor8 left it (see bias.go) and use BiasAddUnquantize as wk, the
// same way Multiply8 with a plain PrepareA8 pairs with a bias the caller
// never ran through PrepareBiasFor8.
func Multiply8Unsigned(Aq []uint8, Bpacked []int8, rows, width, cols int, unquantMult float32, bias []float32, wk WriteKernel, out []float32) error {
	shape := TileShape8()
	if width%shape.Row != 0 || cols%shape.Col != 0 {
		return &ShapeError{Op: "Multiply8Unsigned", Reason: shapeReason(width, cols, shape)}
	}
	if wk == nil {
		wk = JustUnquantize
	}

	numRowTiles := width / shape.Row
	tileFootprint := numRowTiles * shape.Row * shape.Col
	numColTiles := cols / shape.Col

	for i := 0; i < rows; i++ {
		aRow := Aq[i*width : (i+1)*width]
		outRow := out[i*cols : (i+1)*cols]
		for ct := 0; ct < numColTiles; ct++ {
			bTile := Bpacked[ct*tileFootprint : (ct+1)*tileFootprint]
			acc := dotTile8UnsignedImpl(aRow, bTile, width, shape)
			colBase := ct * shape.Col
			for cc := 0; cc < shape.Col; cc++ {
				var b float32
				if bias != nil {
					b = bias[colBase+cc]
				}
				outRow[colBase+cc] = wk(acc[cc], unquantMult, b)
			}
		}
	}
	return nil
}

// Multiply16 is Multiply8's int16 counterpart.
func Multiply16(Aq []int16, Bpacked []int16, rows, width, cols int, unquantMult float32, bias []float32, wk WriteKernel, out []float32) error {
	shape := TileShape16()
	if width%shape.Row != 0 || cols%shape.Col != 0 {
		return &ShapeError{Op: "Multiply16", Reason: shapeReason(width, cols, shape)}
	}
	if wk == nil {
		wk = JustUnquantize
	}

	numRowTiles := width / shape.Row
	tileFootprint := numRowTiles * shape.Row * shape.Col
	numColTiles := cols / shape.Col

	for i := 0; i < rows; i++ {
		aRow := Aq[i*width : (i+1)*width]
		outRow := out[i*cols : (i+1)*cols]
		for ct := 0; ct < numColTiles; ct++ {
			bTile := Bpacked[ct*tileFootprint : (ct+1)*tileFootprint]
			acc := dotTile16Impl(aRow, bTile, width, shape)
			colBase := ct * shape.Col
			for cc := 0; cc < shape.Col; cc++ {
				var b float32
				if bias != nil {
					b = bias[colBase+cc]
				}
				outRow[colBase+cc] = wk(acc[cc], unquantMult, b)
			}
		}
	}
	return nil
}
