package intgemm

import "testing"

func TestDotTile8ScalarSingleRowTile(t *testing.T) {
	shape := TileShape{Row: 4, Col: 2}
	// width == shape.Row: one row tile, laid out k-major/column-minor as
	// permuteTiles would have written it.
	a := []int8{1, 2, 3, 4}
	b := []int8{
		1, 1, // k=0
		1, 1, // k=1
		1, 1, // k=2
		1, 1, // k=3
	}
	got := dotTile8Scalar(a, b, 4, shape)
	want := []int32{10, 10} // 1+2+3+4 in each column
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDotTile8ScalarMultipleRowTiles(t *testing.T) {
	shape := TileShape{Row: 2, Col: 2}
	// width = 4, two row tiles of 2.
	a := []int8{1, 1, 2, 2}
	b := []int8{
		1, 0, // rt0 k=0
		0, 1, // rt0 k=1
		1, 0, // rt1 k=0
		0, 1, // rt1 k=1
	}
	got := dotTile8Scalar(a, b, 4, shape)
	// col0 = a[0]*1 + a[1]*0 + a[2]*1 + a[3]*0 = 1+0+2+0 = 3
	// col1 = a[0]*0 + a[1]*1 + a[2]*0 + a[3]*1 = 0+1+0+2 = 3
	want := []int32{3, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDotTile16ScalarAgreesWithDotTile8Scalar(t *testing.T) {
	shape := TileShape{Row: 2, Col: 2}
	a8 := []int8{1, 1, 2, 2}
	b8 := []int8{1, 0, 0, 1, 1, 0, 0, 1}
	a16 := make([]int16, len(a8))
	b16 := make([]int16, len(b8))
	for i, v := range a8 {
		a16[i] = int16(v)
	}
	for i, v := range b8 {
		b16[i] = int16(v)
	}

	got8 := dotTile8Scalar(a8, b8, 4, shape)
	got16 := dotTile16Scalar(a16, b16, 4, shape)
	for i := range got8 {
		if got8[i] != got16[i] {
			t.Errorf("dotTile8Scalar[%d] = %d, dotTile16Scalar[%d] = %d, want equal", i, got8[i], i, got16[i])
		}
	}
}
