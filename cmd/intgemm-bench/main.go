// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command intgemm-bench quantizes a fixed-shape random matrix pair, packs
// B, and repeats Multiply8 a configurable number of times, reporting
// average latency alongside the CPU tag detected on this machine.
package main

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ajroetker/intgemm"
	"github.com/ajroetker/intgemm/align"
)

const (
	benchRows  = 1
	benchWidth = 256
	benchCols  = 256
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "intgemm-bench [repeat]",
		Short: "Benchmark intgemm's int8 GEMM path at the CPU's best dispatched kernel",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	repeat := 1000
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		repeat = n
	}

	tag := intgemm.AvailableCPU()
	log.Info().Str("cpu", tag.String()).Int("repeat", repeat).Msg("starting benchmark")

	rng := rand.New(rand.NewSource(1))
	Af := randomMatrix(rng, benchRows*benchWidth)
	Bf := randomMatrix(rng, benchWidth*benchCols)

	const quantMult = 127.0
	shape := intgemm.TileShape8()

	// Aq, Bpacked and out are the buffers the dispatched kernels actually
	// vector-load/store across, so they're allocated through align.Buffer
	// rather than plain make(): a 64-byte aligned base lets every ISA tier
	// (including AVX-512's full ZMM loads) read and write them without a
	// misaligned-access penalty, and the size is padded out to a whole
	// number of tile columns so a kernel's last vector load/store in a row
	// never reads past what was allocated.
	AqBuf, err := align.New[int8](benchRows*benchWidth, shape.Col)
	if err != nil {
		return err
	}
	BpackedBuf, err := align.New[int8](benchWidth*benchCols, shape.Col)
	if err != nil {
		return err
	}
	outBuf, err := align.New[float32](benchRows*benchCols, shape.Col)
	if err != nil {
		return err
	}

	intgemm.Quantize8(Af, AqBuf.Data(), quantMult)
	if err := intgemm.PrepareB8(Bf, BpackedBuf.Data(), quantMult, benchWidth, benchCols); err != nil {
		return err
	}

	bias := make([]float32, benchCols)
	unquantMult := 1.0 / (quantMult * quantMult)
	out := outBuf.Data()

	start := time.Now()
	for i := 0; i < repeat; i++ {
		if err := intgemm.Multiply8(AqBuf.Data(), BpackedBuf.Data(), benchRows, benchWidth, benchCols, unquantMult, bias, intgemm.JustUnquantize, out); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	log.Info().
		Str("cpu", tag.String()).
		Dur("total", elapsed).
		Dur("per_call", elapsed/time.Duration(repeat)).
		Msg("benchmark complete")
	return nil
}

func randomMatrix(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}
	return out
}
