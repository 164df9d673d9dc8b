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

// B_packed layout (chosen concretely here; spec.md §3/§4.4 only requires
// that *some* ISA-determined permutation exist satisfying the microkernel's
// access pattern):
//
// B_packed is organized column-tile-major: for each of cols/Col column
// tiles (in increasing column order), the numRowTiles = rows/Row row tiles
// for that column group are stored contiguously in increasing k order, and
// within a row tile the Row*Col entries are stored k-major / column-minor
// (one Col-wide run per k). This is exactly BasePackLHS's "K-first layout
// within micro-panels" (hwy/contrib/matmul/packing.go), transposed onto B
// instead of A: the driver (driver.go) walks a fixed column tile across
// increasing k, so consecutive Col-wide runs in B_packed are exactly the
// vector loads the microkernel issues for that column tile, in order.

// PrepareB8 quantizes B_f (width×cols, row-major) and permutes it into the
// int8 register-tile layout the current CPU's microkernel expects.
//
// Precondition: width % TileShape8().Row == 0 && cols % TileShape8().Col ==
// 0; violation returns a *ShapeError; every other precondition (quantMult
// range, slice length) is a contract violation and is not checked (a short
// slice panics through Go's own bounds check).
func PrepareB8(Bf []float32, packed []int8, quantMult float32, width, cols int) error {
	shape := TileShape8()
	if width%shape.Row != 0 || cols%shape.Col != 0 {
		return &ShapeError{Op: "PrepareB8", Reason: shapeReason(width, cols, shape)}
	}
	bq := make([]int8, width*cols)
	Quantize8(Bf[:width*cols], bq, quantMult)
	permuteTiles(bq, packed, width, cols, shape)
	return nil
}

// PrepareB16 is PrepareB8's int16 counterpart.
func PrepareB16(Bf []float32, packed []int16, quantMult float32, width, cols int) error {
	shape := TileShape16()
	if width%shape.Row != 0 || cols%shape.Col != 0 {
		return &ShapeError{Op: "PrepareB16", Reason: shapeReason(width, cols, shape)}
	}
	bq := make([]int16, width*cols)
	Quantize16(Bf[:width*cols], bq, quantMult)
	permuteTiles(bq, packed, width, cols, shape)
	return nil
}

func shapeReason(width, cols int, shape TileShape) string {
	switch {
	case width%shape.Row != 0:
		return "width must be a multiple of the row tile"
	default:
		return "cols must be a multiple of the column tile"
	}
}

// permuteTiles writes the column-tile-major, k-major packed layout described
// above. T is int8 or int16 depending on the integer width in play.
func permuteTiles[T int8 | int16](bq, packed []T, width, cols int, shape TileShape) {
	numRowTiles := width / shape.Row
	numColTiles := cols / shape.Col
	pos := 0
	for ct := 0; ct < numColTiles; ct++ {
		colBase := ct * shape.Col
		for rt := 0; rt < numRowTiles; rt++ {
			rowBase := rt * shape.Row
			for kk := 0; kk < shape.Row; kk++ {
				src := (rowBase+kk)*cols + colBase
				copy(packed[pos:pos+shape.Col], bq[src:src+shape.Col])
				pos += shape.Col
			}
		}
	}
}
