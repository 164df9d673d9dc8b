package intgemm

import "github.com/ajroetker/intgemm/cpuid"

// TileShape describes the register-tile dimensions spec.md §3 requires
// B_packed to respect for a given ISA and integer width: width must be a
// multiple of Row (the "row tile", i.e. the K-dimension chunk the
// microkernel consumes per accumulation step) and B_cols must be a multiple
// of Col (the "column tile" a single vector load covers).
type TileShape struct {
	Row int
	Col int
}

// tileShape8 returns the int8-path tile shape for tag, per spec.md §3:
// "16 for SSSE3 int8, 32 for AVX2 int8, 64 for AVX512 int8"; column tile is
// 8 for SSSE3/AVX2 and 16 for AVX512 (spec.md allows either 8 or 16 there —
// intgemm picks 16 to use the full ZMM register's worth of columns).
func tileShape8(tag cpuid.Tag) TileShape {
	switch {
	case tag >= cpuid.AVX512BW:
		return TileShape{Row: 64, Col: 16}
	case tag >= cpuid.AVX2:
		return TileShape{Row: 32, Col: 8}
	default:
		return TileShape{Row: 16, Col: 8}
	}
}

// tileShape16 halves the row tile for int16, per spec.md §3.
func tileShape16(tag cpuid.Tag) TileShape {
	s := tileShape8(tag)
	s.Row /= 2
	return s
}

// TileShape8 returns the int8 tile shape the currently-wired kernel uses.
// This tracks ActiveTag, not the raw hardware probe (AvailableCPU): without
// goexperiment.simd compiled in, the wired kernel is always scalar
// regardless of what the CPU can do, and B_packed's layout must match the
// kernel that will read it.
func TileShape8() TileShape { return tileShape8(ActiveTag()) }

// TileShape16 returns the int16 tile shape the currently-wired kernel uses.
func TileShape16() TileShape { return tileShape16(ActiveTag()) }
