package intgemm

import "testing"

func TestPrepareBiasFor8WorkedExample(t *testing.T) {
	const width = 256
	const cols = 8
	const alpha = 2.0
	const quantMultB = 127.0

	Bf := make([]float32, width*cols)
	for i := range Bf {
		Bf[i] = 1
	}
	bias := make([]float32, cols)

	PrepareBiasFor8(Bf, bias, alpha, quantMultB, width, cols)

	const want = -516.03 // -128*alpha*width/quantMultB
	for j, v := range bias {
		if diff := float64(v) - want; diff > 0.05 || diff < -0.05 {
			t.Errorf("bias[%d] = %v, want ~%v", j, v, want)
		}
	}
}

// TestMultiply8UnsignedWithPrepareBiasFor8 chains PrepareBiasFor8 into
// PrepareA8Unsigned + Multiply8Unsigned + BiasAddUnquantize — the only
// combination PrepareBiasFor8's correction is valid for — and checks the
// result against the same shape run through the plain signed
// PrepareA8/Multiply8 path with the caller's original, uncorrected bias.
// Both paths must agree: the unsigned path's 128*ΣB zero-point offset and
// PrepareBiasFor8's subtraction of it are supposed to cancel exactly.
func TestMultiply8UnsignedWithPrepareBiasFor8(t *testing.T) {
	shape := TileShape8()
	width := shape.Row
	cols := shape.Col

	const quantMult = 1.0
	const alpha = 1.0 // quantMultB/quantMultA, and also the unquantMult below

	Af := make([]float32, width)
	for i := range Af {
		Af[i] = float32(i%3) - 1
	}
	Bf := make([]float32, width*cols)
	for i := range Bf {
		Bf[i] = float32(i%5) - 2
	}
	origBias := make([]float32, cols)
	for j := range origBias {
		origBias[j] = float32(j)
	}

	Bpacked := make([]int8, width*cols)
	if err := PrepareB8(Bf, Bpacked, quantMult, width, cols); err != nil {
		t.Fatalf("PrepareB8: %v", err)
	}

	// Signed path: bias used exactly as the caller supplied it.
	Aq := make([]int8, width)
	PrepareA8(Af, Aq, quantMult, 1, width)
	wantOut := make([]float32, cols)
	if err := Multiply8(Aq, Bpacked, 1, width, cols, alpha, origBias, BiasAddUnquantize, wantOut); err != nil {
		t.Fatalf("Multiply8: %v", err)
	}

	// Unsigned path: bias corrected by PrepareBiasFor8 ahead of the call.
	correctedBias := append([]float32(nil), origBias...)
	PrepareBiasFor8(Bf, correctedBias, alpha, quantMult, width, cols)

	AqUnsigned := make([]uint8, width)
	PrepareA8Unsigned(Af, AqUnsigned, quantMult, 1, width)
	gotOut := make([]float32, cols)
	if err := Multiply8Unsigned(AqUnsigned, Bpacked, 1, width, cols, alpha, correctedBias, BiasAddUnquantize, gotOut); err != nil {
		t.Fatalf("Multiply8Unsigned: %v", err)
	}

	for j := range wantOut {
		if diff := gotOut[j] - wantOut[j]; diff > 0.01 || diff < -0.01 {
			t.Errorf("Multiply8Unsigned+PrepareBiasFor8 out[%d] = %v, want %v (should agree with signed Multiply8 path)", j, gotOut[j], wantOut[j])
		}
	}
}

func TestPrepareBiasFor8ZeroBWhenAllZero(t *testing.T) {
	const width = 16
	const cols = 4
	Bf := make([]float32, width*cols)
	bias := []float32{1, 2, 3, 4}
	want := []float32{1, 2, 3, 4}

	PrepareBiasFor8(Bf, bias, 1, 127, width, cols)

	for j := range bias {
		if bias[j] != want[j] {
			t.Errorf("bias[%d] = %v, want %v (B all zero should leave bias untouched)", j, bias[j], want[j])
		}
	}
}
