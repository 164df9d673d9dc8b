//go:build amd64 && goexperiment.simd

package intgemm

import "math"
import "simd/archsimd"

// vectorMeanStdAVX2 accumulates sum and sum-of-squares into 8-wide vector
// registers, one add per 8 elements instead of per element, then reduces
// the two accumulator vectors horizontally with ExtractLane — the same
// load-accumulate-then-horizontal-reduce shape the teacher's dot-product
// kernels use (hwy/contrib/matmul's inner-product reduction).
func vectorMeanStdAVX2(input []float32, absolute bool) (float32, float32) {
	n := len(input)
	if n == 0 {
		return 0, 0
	}

	const lanes = 8
	sumVec := archsimd.BroadcastFloat32x8(0)
	sumSqVec := archsimd.BroadcastFloat32x8(0)

	i := 0
	for ; i+lanes <= n; i += lanes {
		v := archsimd.LoadFloat32x8Slice(input[i:])
		if absolute {
			neg := v.Mul(archsimd.BroadcastFloat32x8(-1))
			v = neg.Merge(v, v.Less(archsimd.BroadcastFloat32x8(0)))
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
