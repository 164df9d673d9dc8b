package intgemm

import "testing"

func TestMultiply8AllOnes(t *testing.T) {
	shape := TileShape8()
	width := shape.Row
	cols := shape.Col

	Af := make([]float32, width)
	for i := range Af {
		Af[i] = 1
	}
	Bf := make([]float32, width*cols)
	for i := range Bf {
		Bf[i] = 1
	}

	const quantMult = 1.0
	Aq := make([]int8, width)
	Quantize8(Af, Aq, quantMult)

	Bpacked := make([]int8, width*cols)
	if err := PrepareB8(Bf, Bpacked, quantMult, width, cols); err != nil {
		t.Fatalf("PrepareB8: %v", err)
	}

	out := make([]float32, cols)
	unquantMult := float32(1.0)
	if err := Multiply8(Aq, Bpacked, 1, width, cols, unquantMult, nil, JustUnquantize, out); err != nil {
		t.Fatalf("Multiply8: %v", err)
	}

	for j, v := range out {
		if v != float32(width) {
			t.Errorf("out[%d] = %v, want %v", j, v, float32(width))
		}
	}
}

func TestMultiply8MultiTileAgreesWithBruteForce(t *testing.T) {
	shape := TileShape8()
	width := shape.Row * 3
	cols := shape.Col * 2
	rows := 2

	Af := make([]float32, rows*width)
	for i := range Af {
		Af[i] = float32((i%7)-3) / 3
	}
	Bf := make([]float32, width*cols)
	for i := range Bf {
		Bf[i] = float32((i%5)-2) / 2
	}

	const quantMult = 100.0
	Aq := make([]int8, rows*width)
	Quantize8(Af, Aq, quantMult)
	Bq := make([]int8, width*cols)
	Quantize8(Bf, Bq, quantMult)

	Bpacked := make([]int8, width*cols)
	if err := PrepareB8(Bf, Bpacked, quantMult, width, cols); err != nil {
		t.Fatalf("PrepareB8: %v", err)
	}

	out := make([]float32, rows*cols)
	if err := Multiply8(Aq, Bpacked, rows, width, cols, 1, nil, JustUnquantize, out); err != nil {
		t.Fatalf("Multiply8: %v", err)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var want int32
			for k := 0; k < width; k++ {
				want += int32(Aq[i*width+k]) * int32(Bq[k*cols+j])
			}
			got := out[i*cols+j]
			if got != float32(want) {
				t.Errorf("out[%d][%d] = %v, want %v (brute-force A*B disagrees with PrepareB8+Multiply8)", i, j, got, want)
			}
		}
	}
}

// TestMultiply8BiasAddUnquantize exercises BiasAddUnquantize's arithmetic
// on the signed Multiply8 path with a bias the caller supplied directly, no
// PrepareBiasFor8 involved — that pairing is covered separately by
// TestMultiply8UnsignedWithPrepareBiasFor8 in bias_test.go.
func TestMultiply8BiasAddUnquantize(t *testing.T) {
	shape := TileShape8()
	width := shape.Row
	cols := shape.Col

	Aq := make([]int8, width)
	for i := range Aq {
		Aq[i] = 1
	}
	Bf := make([]float32, width*cols)
	for i := range Bf {
		Bf[i] = 1
	}
	Bpacked := make([]int8, width*cols)
	if err := PrepareB8(Bf, Bpacked, 1.0, width, cols); err != nil {
		t.Fatalf("PrepareB8: %v", err)
	}

	bias := make([]float32, cols)
	for j := range bias {
		bias[j] = float32(j)
	}

	out := make([]float32, cols)
	if err := Multiply8(Aq, Bpacked, 1, width, cols, 1.0, bias, BiasAddUnquantize, out); err != nil {
		t.Fatalf("Multiply8: %v", err)
	}

	for j, v := range out {
		want := float32(width) + float32(j)
		if v != want {
			t.Errorf("out[%d] = %v, want %v", j, v, want)
		}
	}
}

func TestMultiply8RejectsMisalignedShape(t *testing.T) {
	shape := TileShape8()
	Aq := make([]int8, shape.Row+1)
	Bpacked := make([]int8, (shape.Row+1)*shape.Col)
	out := make([]float32, shape.Col)
	err := Multiply8(Aq, Bpacked, 1, shape.Row+1, shape.Col, 1, nil, nil, out)
	if _, ok := err.(*ShapeError); !ok {
		t.Fatalf("Multiply8 with misaligned width = %v, want *ShapeError", err)
	}
}
