//go:build amd64 && goexperiment.simd

package intgemm

import "math"
import "simd/archsimd"

// vectorMeanStdAVX512 is vectorMeanStdAVX2's 16-wide AVX-512BW counterpart.
func vectorMeanStdAVX512(input []float32, absolute bool) (float32, float32) {
	n := len(input)
	if n == 0 {
		return 0, 0
	}

	const lanes = 16
	sumVec := archsimd.BroadcastFloat32x16(0)
	sumSqVec := archsimd.BroadcastFloat32x16(0)

	i := 0
	for ; i+lanes <= n; i += lanes {
		v := archsimd.LoadFloat32x16Slice(input[i:])
		if absolute {
			neg := v.Mul(archsimd.BroadcastFloat32x16(-1))
			v = neg.Merge(v, v.Less(archsimd.BroadcastFloat32x16(0)))
		}
		sumVec = sumVec.Add(v)
		sumSqVec = sumSqVec.Add(v.Mul(v))
	}

	var sum, sumSq float64
	for lane := 0; lane < lanes; lane++ {
		sum += float64(sumVec.ExtractLane(lane))
		sumSq += float64(sumSqVec.ExtractLane(lane))
	}

	for ; i < n; i++ {
		x := float64(input[i])
		if absolute && x < 0 {
			x = -x
		}
		sum += x
		sumSq += x * x
	}

	meanF := sum / float64(n)
	variance := sumSq/float64(n) - meanF*meanF
	if variance < 0 {
		variance = 0
	}
	return float32(meanF), float32(math.Sqrt(variance))
}
