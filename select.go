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

// SelectColumnsB8 copies a subset of column tiles out of a B_packed buffer
// produced by PrepareB8, in the order listed by colsList. Each entry in
// colsList names the original column index a tile started at and must be a
// multiple of TileShape8().Col; the whole Col-wide, numRowTiles-deep tile
// block at that position is appended to output. Passing the tile starts in
// their original ascending order reproduces the input unchanged —
// SelectColumnsB is PrepareB's identity when nothing is actually dropped or
// reordered.
//
// out must be sized for len(colsList) * (width/Row) * Row * Col ==
// len(colsList) * width * Col entries, i.e. the same per-tile footprint
// PrepareB8 produced, repeated once per selected column tile.
func SelectColumnsB8(packed []int8, out []int8, width, cols int, colsList []int) error {
	shape := TileShape8()
	return selectColumnTiles(packed, out, width, cols, colsList, shape.Row, shape.Col)
}

// SelectColumnsB16 is SelectColumnsB8's int16 counterpart.
func SelectColumnsB16(packed []int16, out []int16, width, cols int, colsList []int) error {
	shape := TileShape16()
	return selectColumnTiles(packed, out, width, cols, colsList, shape.Row, shape.Col)
}

func selectColumnTiles[T int8 | int16](packed, out []T, width, cols int, colsList []int, row, col int) error {
	if width%row != 0 || cols%col != 0 {
		return &ShapeError{Op: "SelectColumnsB", Reason: "width/cols must respect the active tile shape"}
	}
	numRowTiles := width / row
	tileFootprint := numRowTiles * row * col

	pos := 0
	for _, c := range colsList {
		if c < 0 || c >= cols || c%col != 0 {
			return &ShapeError{Op: "SelectColumnsB", Reason: "each column index must be a tile-aligned offset within [0, cols)"}
		}
		ct := c / col
		src := ct * tileFootprint
		copy(out[pos:pos+tileFootprint], packed[src:src+tileFootprint])
		pos += tileFootprint
	}
	return nil
}
