package alu

import (
	"math"

	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu/internal/half"
)

// Pack codecs squeeze small float/integer vectors into one wider integer
// lane; limb 0 always lands in the low bits. The normalized codecs use
// round-to-nearest-even and cast on the signed integer, never on an
// unsigned one.

func init() {
	register(OpPackSnorm2x16, packNorm(packSnorm, 16, 2))
	register(OpPackSnorm4x8, packNorm(packSnorm, 8, 4))
	register(OpPackUnorm2x16, packNorm(packUnorm, 16, 2))
	register(OpPackUnorm4x8, packNorm(packUnorm, 8, 4))

	register(OpPackHalf2x16, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		lo := uint64(half.FromFloat32(src[0][0].Float32()).Bits())
		hi := uint64(half.FromFloat32(src[0][1].Float32()).Bits())
		dst[0] = nir.Uint(32, hi<<16|lo)
	})
	register(OpPackHalf2x16Split, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		lo := uint64(half.FromFloat32(src[0][0].Float32()).Bits())
		hi := uint64(half.FromFloat32(src[1][0].Float32()).Bits())
		dst[0] = nir.Uint(32, hi<<16|lo)
	})

	register(OpPack32_2x16, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Uint(32, src[0][1].Uint(16)<<16|src[0][0].Uint(16))
	})
	register(OpPack32_2x16Split, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Uint(32, src[1][0].Uint(16)<<16|src[0][0].Uint(16))
	})
	register(OpPack64_2x32, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Uint(64, src[0][1].Uint(32)<<32|src[0][0].Uint(32))
	})
	register(OpPack64_2x32Split, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Uint(64, src[1][0].Uint(32)<<32|src[0][0].Uint(32))
	})
	register(OpPack64_4x16, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		var v uint64
		for i := 3; i >= 0; i-- {
			v = v<<16 | src[0][i].Uint(16)
		}
		dst[0] = nir.Uint(64, v)
	})

	register(OpUnpackSnorm2x16, unpackNorm(unpackSnorm, 16, 2))
	register(OpUnpackSnorm4x8, unpackNorm(unpackSnorm, 8, 4))
	register(OpUnpackUnorm2x16, unpackNorm(unpackUnorm, 16, 2))
	register(OpUnpackUnorm4x8, unpackNorm(unpackUnorm, 8, 4))

	register(OpUnpackHalf2x16, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		w := src[0][0].Uint(32)
		dst[0] = nir.Float32(half.FromBits(uint16(w)).Float32())
		dst[1] = nir.Float32(half.FromBits(uint16(w >> 16)).Float32())
	})
	register(OpUnpackHalf2x16SplitX, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Float32(half.FromBits(uint16(src[0][0].Uint(32))).Float32())
	})
	register(OpUnpackHalf2x16SplitY, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Float32(half.FromBits(uint16(src[0][0].Uint(32)>>16)).Float32())
	})

	register(OpUnpack32_2x16, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		w := src[0][0].Uint(32)
		dst[0] = nir.Uint(16, w)
		dst[1] = nir.Uint(16, w>>16)
	})
	register(OpUnpack32_2x16SplitX, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Uint(16, src[0][0].Uint(32))
	})
	register(OpUnpack32_2x16SplitY, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Uint(16, src[0][0].Uint(32)>>16)
	})
	register(OpUnpack64_2x32, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		w := src[0][0].Uint(64)
		dst[0] = nir.Uint(32, w)
		dst[1] = nir.Uint(32, w>>32)
	})
	register(OpUnpack64_2x32SplitX, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Uint(32, src[0][0].Uint(64))
	})
	register(OpUnpack64_2x32SplitY, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		dst[0] = nir.Uint(32, src[0][0].Uint(64)>>32)
	})
	register(OpUnpack64_4x16, func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		w := src[0][0].Uint(64)
		for i := 0; i < 4; i++ {
			dst[i] = nir.Uint(16, w>>(16*i))
		}
	})
}

// packSnorm maps [-1,1] onto the signed range scaled by 2^(b-1)-1, rounding
// to nearest even. NaN packs to 0.
func packSnorm(f float32, b int) uint64 {
	if f != f {
		return 0
	}
	scale := float64(int64(1)<<(b-1) - 1)
	v := math.RoundToEven(math.Max(-1, math.Min(1, float64(f))) * scale)
	return uint64(int64(v)) & nir.Mask(b)
}

func packUnorm(f float32, b int) uint64 {
	if f != f {
		return 0
	}
	scale := float64(int64(1)<<b - 1)
	return uint64(math.RoundToEven(math.Max(0, math.Min(1, float64(f))) * scale))
}

func unpackSnorm(v uint64, b int) float32 {
	scale := float32(int64(1)<<(b-1) - 1)
	f := float32(nir.FromBits(v&nir.Mask(b)).Int(b)) / scale
	return float32(math.Max(-1, math.Min(1, float64(f))))
}

func unpackUnorm(v uint64, b int) float32 {
	scale := float32(int64(1)<<b - 1)
	return float32(v&nir.Mask(b)) / scale
}

// packNorm assembles n float32 lanes into one integer lane of n limbs of
// limbBits each, lane 0 in the low bits.
func packNorm(pack func(float32, int) uint64, limbBits, n int) evalFn {
	return func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		var v uint64
		for i := n - 1; i >= 0; i-- {
			v = v<<limbBits | pack(src[0][i].Float32(), limbBits)
		}
		dst[0] = nir.Uint(limbBits*n, v)
	}
}

func unpackNorm(unpack func(uint64, int) float32, limbBits, n int) evalFn {
	return func(dst []nir.Value, _, _ int, src [][]nir.Value) {
		w := src[0][0].Uint(limbBits * n)
		for i := 0; i < n; i++ {
			dst[i] = nir.Float32(unpack(w>>(limbBits*i), limbBits))
		}
	}
}
