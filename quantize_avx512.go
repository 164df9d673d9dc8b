//go:build amd64 && goexperiment.simd

package intgemm

import "simd/archsimd"

// quantize8AVX512 is quantize8AVX2's 16-wide AVX-512BW counterpart: same
// round/clamp/narrow shape, processing archsimd.Float32x16 lanes.
func quantize8AVX512(input []float32, output []int8, quantMult float32) {
	n := len(input)
	if len(output) < n {
		n = len(output)
	}

	const lanes = 16
	scale := archsimd.BroadcastFloat32x16(quantMult)
	lo := archsimd.BroadcastFloat32x16(int8Min)
	hi := archsimd.BroadcastFloat32x16(int8Max)

	var buf [lanes]float32
	i := 0
	for ; i+lanes <= n; i += lanes {
		v := archsimd.LoadFloat32x16Slice(input[i:])
		scaled := v.Mul(scale)
		rounded := scaled.RoundToEvenScaled(0)
		clamped := hi.Merge(lo.Merge(rounded, rounded.Less(lo)), rounded.Greater(hi))
		clamped.StoreSlice(buf[:])
		for j := range lanes {
			output[i+j] = int8(buf[j])
		}
	}

	ScalarQuantize8(input[i:n], output[i:n], quantMult)
}

// quantize16AVX512 is the int16 counterpart.
func quantize16AVX512(input []float32, output []int16, quantMult float32) {
	n := len(input)
	if len(output) < n {
		n = len(output)
	}

	const lanes = 16
	scale := archsimd.BroadcastFloat32x16(quantMult)
	lo := archsimd.BroadcastFloat32x16(int16Min)
	hi := archsimd.BroadcastFloat32x16(int16Max)

	var buf [lanes]float32
	i := 0
	for ; i+lanes <= n; i += lanes {
		v := archsimd.LoadFloat32x16Slice(input[i:])
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
