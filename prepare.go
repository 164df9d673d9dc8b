package intgemm

// PrepareA8 quantizes A_f (rows×cols, row-major) into A_q in place,
// elementwise, at the best kernel available for the current CPU. A's layout
// is unchanged by quantization (spec.md §3: "Prepared A ... simply
// elementwise quantized"), unlike B, which is additionally permuted by
// PrepareB. This is the signed path: pair it with Multiply8 and, if biased,
// BiasAddUnquantize called with bias as the caller supplied it — never with
// PrepareBiasFor8's output, which corrects for a zero-point shift this path
// never introduces.
func PrepareA8(Af []float32, Aq []int8, quantMult float32, rows, cols int) {
	Quantize8(Af[:rows*cols], Aq[:rows*cols], quantMult)
}

// PrepareA16 is PrepareA8's int16 counterpart.
func PrepareA16(Af []float32, Aq []int16, quantMult float32, rows, cols int) {
	Quantize16(Af[:rows*cols], Aq[:rows*cols], quantMult)
}

// PrepareA8Unsigned quantizes A_f exactly as PrepareA8 does, then shifts
// every value up by 128 so it can be read as unsigned (spec.md §4.6: "A is
// reinterpreted as unsigned by adding 128 to every element"). This is the
// only A preparation dotTile8UnsignedImpl (and therefore Multiply8Unsigned)
// accepts, and the only one PrepareBiasFor8's correction is valid against —
// the 128 shift this function adds to every element of A is exactly the
// 128*Σ_k B[k,j] term PrepareBiasFor8 subtracts back out of bias.
func PrepareA8Unsigned(Af []float32, Aq []uint8, quantMult float32, rows, cols int) {
	n := rows * cols
	signed := make([]int8, n)
	Quantize8(Af[:n], signed, quantMult)
	for i := 0; i < n; i++ {
		Aq[i] = uint8(int16(signed[i]) + 128)
	}
}
