package intgemm

import "testing"

func TestPrepareB8PermutesWithinTile(t *testing.T) {
	shape := TileShape8()
	width := shape.Row
	cols := shape.Col

	Bf := make([]float32, width*cols)
	for i := range Bf {
		Bf[i] = float32(i)
	}

	packed := make([]int8, width*cols)
	if err := PrepareB8(Bf, packed, 1.0, width, cols); err != nil {
		t.Fatalf("PrepareB8: %v", err)
	}

	// Single tile (numRowTiles==1, numColTiles==1): permuteTiles's k-major
	// copy degenerates to a straight row-major copy of the quantized input.
	for k := 0; k < width; k++ {
		for c := 0; c < cols; c++ {
			want := int8(min(k*cols+c, int8Max))
			got := packed[k*cols+c]
			if got != want {
				t.Errorf("packed[%d][%d] = %d, want %d", k, c, got, want)
			}
		}
	}
}

func TestPrepareB8RejectsMisalignedShape(t *testing.T) {
	shape := TileShape8()
	Bf := make([]float32, (shape.Row+1)*shape.Col)
	packed := make([]int8, len(Bf))
	err := PrepareB8(Bf, packed, 1.0, shape.Row+1, shape.Col)
	if _, ok := err.(*ShapeError); !ok {
		t.Fatalf("PrepareB8 with misaligned width = %v, want *ShapeError", err)
	}
}

func TestPrepareB8MultiTileGroupsByColumn(t *testing.T) {
	shape := TileShape8()
	width := shape.Row * 2
	cols := shape.Col * 2

	Bf := make([]float32, width*cols)
	for i := range Bf {
		Bf[i] = float32(i % 64)
	}

	packed := make([]int8, width*cols)
	if err := PrepareB8(Bf, packed, 1.0, width, cols); err != nil {
		t.Fatalf("PrepareB8: %v", err)
	}

	// First tileFootprint entries of packed must be exactly column tile 0
	// (columns [0, shape.Col)) across every row, in increasing k order —
	// none of column tile 1's data.
	tileFootprint := (width / shape.Row) * shape.Row * shape.Col
	if len(packed) != 2*tileFootprint {
		t.Fatalf("packed length = %d, want %d", len(packed), 2*tileFootprint)
	}

	pos := 0
	for rt := 0; rt < width/shape.Row; rt++ {
		for kk := 0; kk < shape.Row; kk++ {
			k := rt*shape.Row + kk
			for c := 0; c < shape.Col; c++ {
				want := int8((k*cols + c) % 64)
				if packed[pos] != want {
					t.Errorf("packed[%d] = %d, want %d (column-tile-0 region)", pos, packed[pos], want)
				}
				pos++
			}
		}
	}
}
