//go:build amd64 && goexperiment.simd

package intgemm

import "simd/archsimd"

// quantize8AVX2 implements ScalarQuantize8's contract using 8-wide AVX2
// float32 vectors. It mirrors the teacher's BaseQuantizeFloat32 shape
// (hwy/contrib/quantize/quantize_base.go): multiply by the broadcast scale,
// round, clamp, then narrow with a scalar loop, rather than narrowing in a
// single vector instruction — narrowing float32x8 -> int8x8 has no direct
// AVX2 op, so the narrow step is scalar the same way the teacher's own
// uint8 quantizer narrows scalar-wise after a vectorized round+clamp.
func quantize8AVX2(input []float32, output []int8, quantMult float32) {
	n := len(input)
	if len(output) < n {
		n = len(output)
	}

	const lanes = 8
	scale := archsimd.BroadcastFloat32x8(quantMult)
	lo := archsimd.BroadcastFloat32x8(int8Min)
	hi := archsimd.BroadcastFloat32x8(int8Max)

	var buf [lanes]float32
	i := 0
	for ; i+lanes <= n; i += lanes {
		v := archsimd.LoadFloat32x8Slice(input[i:])
		scaled := v.Mul(scale)
		rounded := scaled.RoundToEvenScaled(0)
		clamped := hi.Merge(lo.Merge(rounded, rounded.Less(lo)), rounded.Greater(hi))
		clamped.StoreSlice(buf[:])
		for j := range lanes {
			output[i+j] = int8(buf[j])
		}
	}

	// Scalar tail: same rounding/saturation rule as the vector path.
	ScalarQuantize8(input[i:n], output[i:n], quantMult)
}

// quantize16AVX2 is quantize8AVX2's int16 counterpart.
func quantize16AVX2(input []float32, output []int16, quantMult float32) {
	n := len(input)
	if len(output) < n {
		n = len(output)
	}

	const lanes = 8
	scale := archsimd.BroadcastFloat32x8(quantMult)
	lo := archsimd.BroadcastFloat32x8(int16Min)
	hi := archsimd.BroadcastFloat32x8(int16Max)

	var buf [lanes]float32
	i := 0
	for ; i+lanes <= n; i += lanes {
		v := archsimd.LoadFloat32x8Slice(input[i:])
		scaled := v.Mul(scale)
		rounded := scaled.RoundToEvenScaled(0)
		clamped := hi.Merge(lo.Merge(rounded, rounded.Less(lo)), rounded.Greater(hi))
		clamped.StoreSlice(buf[:])
		for j := range lanes {
			output[i+j] = int16(buf[j])
		}
	}

	ScalarQuantize16(input[i:n], output[i:n], quantMult)
}
