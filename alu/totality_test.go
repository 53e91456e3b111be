package alu_test

import (
	"math/rand"
	"testing"

	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu"
)

// TestTotality sweeps every opcode over every width it declares, feeding
// adversarial and random bit patterns. No combination may panic, every
// boolean output must be a clean sentinel, and no output lane may carry
// stray bits above its width.
func TestTotality(t *testing.T) {
	patterns := []uint64{
		0, 1, ^uint64(0),
		0x8000000000000000, // float64 -0 / int64 min
		0x7FF0000000000000, // float64 +Inf
		0x7FF8000000000001, // float64 NaN
		0x80000000,         // float32 -0 at the right width
		0x7F800000,         // float32 +Inf
		0x7FC00000,         // float32 NaN
		0x3F800000,         // float32 1.0
		0x7C00,             // float16 +Inf
	}
	rng := rand.New(rand.NewSource(0x5EED))

	for _, op := range alu.Ops() {
		info := op.Info()
		widths := info.Widths.Sizes()
		if info.Widths == 0 {
			widths = []int{0}
		}

		for _, bits := range widths {
			laneCounts := []int{1, 4}
			if info.OutLen != 0 {
				laneCounts = []int{info.OutLen}
			}
			outWidth := info.Out.Size
			if outWidth == 0 {
				outWidth = bits
			}

			for _, lanes := range laneCounts {
				for trial := 0; trial < len(patterns)+24; trial++ {
					src := make([][]nir.Value, info.NumSrcs)
					for s := 0; s < info.NumSrcs; s++ {
						n := info.SrcLen[s]
						if n == 0 {
							n = lanes
						}
						w := info.Src[s].Size
						if w == 0 {
							w = bits
						}
						vals := make([]nir.Value, n)
						for i := range vals {
							raw := rng.Uint64()
							if trial < len(patterns) {
								raw = patterns[trial]
							}
							vals[i] = nir.Uint(w, raw)
						}
						src[s] = vals
					}

					dst := make([]nir.Value, lanes)
					alu.Evaluate(op, dst, lanes, bits, src...)

					for i, v := range dst {
						if v.Bits()&^nir.Mask(outWidth) != 0 {
							t.Fatalf("%s width=%d trial=%d: lane %d carries stray bits: %#x",
								info.Name, bits, trial, i, v.Bits())
						}
						if info.Out.Class == alu.ClassBool && v.Bits() != 0 && v.Bits() != nir.Mask(outWidth) {
							t.Fatalf("%s width=%d trial=%d: lane %d is not a sentinel: %#x",
								info.Name, bits, trial, i, v.Bits())
						}
					}
				}
			}
		}
	}
}
