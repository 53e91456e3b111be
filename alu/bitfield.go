package alu

import (
	"math/bits"

	nir "github.com/xandfury/external-mesa3d"
)

// The GLSL-flavored bitfield ops (bitfield_insert, u/ibitfield_extract)
// treat an out-of-range offset/count as a defined zero result instead of
// reading garbage; the bfe/bfm/bfi trio keeps the AMD behavior of masking
// the control operands to 5 bits.

func init() {
	register(OpBitfieldInsert, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			base := uint32(src[0][i].Uint(32))
			insert := uint32(src[1][i].Uint(32))
			offset := int(src[2][i].Int(32))
			count := int(src[3][i].Int(32))

			var r uint32
			switch {
			case count == 0:
				r = base
			case offset < 0 || count < 0 || offset+count > 32:
				r = 0
			default:
				mask := uint32(uint64(1)<<count-1) << offset
				r = base&^mask | insert<<offset&mask
			}
			dst[i] = nir.Uint(32, uint64(r))
		}
	})

	register(OpUBitfieldExtract, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			value := uint32(src[0][i].Uint(32))
			offset := int(src[1][i].Int(32))
			count := int(src[2][i].Int(32))

			var r uint32
			if count > 0 && offset >= 0 && offset+count <= 32 {
				r = value >> offset & uint32(uint64(1)<<count-1)
			}
			dst[i] = nir.Uint(32, uint64(r))
		}
	})

	register(OpIBitfieldExtract, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			value := int32(src[0][i].Int(32))
			offset := int(src[1][i].Int(32))
			count := int(src[2][i].Int(32))

			var r int32
			if count > 0 && offset >= 0 && offset+count <= 32 {
				// Shift the field to the top and sign-extend it back down.
				r = value << (32 - count - offset) >> (32 - count)
			}
			dst[i] = nir.Int(32, int64(r))
		}
	})

	register(OpUBfe, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			value := uint32(src[0][i].Uint(32))
			offset := src[1][i].Uint(32) & 31
			count := src[2][i].Uint(32) & 31

			var r uint32
			switch {
			case count == 0:
				r = 0
			case offset+count < 32:
				r = value << (32 - offset - count) >> (32 - count)
			default:
				r = value >> offset
			}
			dst[i] = nir.Uint(32, uint64(r))
		}
	})

	register(OpIBfe, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			value := int32(src[0][i].Int(32))
			offset := src[1][i].Uint(32) & 31
			count := src[2][i].Uint(32) & 31

			var r int32
			switch {
			case count == 0:
				r = 0
			case offset+count < 32:
				r = value << (32 - offset - count) >> (32 - count)
			default:
				r = value >> offset
			}
			dst[i] = nir.Int(32, int64(r))
		}
	})

	register(OpBfm, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			count := src[0][i].Uint(32) & 31
			offset := src[1][i].Uint(32) & 31
			dst[i] = nir.Uint(32, uint64(uint32(uint64(1)<<count-1)<<offset))
		}
	})

	register(OpBfi, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			mask := uint32(src[0][i].Uint(32))
			insert := uint32(src[1][i].Uint(32))
			base := uint32(src[2][i].Uint(32))

			r := base
			if mask != 0 {
				shift := uint(bits.TrailingZeros32(mask))
				r = base&^mask | insert<<shift&mask
			}
			dst[i] = nir.Uint(32, uint64(r))
		}
	})

	register(OpBitfieldReverse, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(32, uint64(bits.Reverse32(uint32(src[0][i].Uint(32)))))
		}
	})

	register(OpBitCount, func(dst []nir.Value, lanes, width int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(32, uint64(bits.OnesCount64(src[0][i].Uint(width))))
		}
	})

	register(OpFindLSB, func(dst []nir.Value, lanes, width int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			v := src[0][i].Uint(width)
			if v == 0 {
				dst[i] = nir.Int(32, -1)
				continue
			}
			dst[i] = nir.Int(32, int64(bits.TrailingZeros64(v)))
		}
	})

	// ifind_msb locates the highest bit differing from the sign bit, so a
	// negative value searches its complement; 0 and -1 have no such bit.
	register(OpIFindMSB, func(dst []nir.Value, lanes, width int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			v := src[0][i].Uint(width)
			if src[0][i].Int(width) < 0 {
				v = ^v & nir.Mask(width)
			}
			dst[i] = nir.Int(32, msbIndex(v))
		}
	})

	register(OpUFindMSB, func(dst []nir.Value, lanes, width int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Int(32, msbIndex(src[0][i].Uint(width)))
		}
	})

	register(OpExtractU8, extractOp(8, false))
	register(OpExtractI8, extractOp(8, true))
	register(OpExtractU16, extractOp(16, false))
	register(OpExtractI16, extractOp(16, true))
	register(OpInsertU8, insertOp(8))
	register(OpInsertU16, insertOp(16))
}

func msbIndex(v uint64) int64 {
	if v == 0 {
		return -1
	}
	return int64(63 - bits.LeadingZeros64(v))
}

// extractOp pulls chunk number src1 (of chunkBits each) out of src0,
// zero- or sign-extending it to the full width. The chunk index wraps.
func extractOp(chunkBits int, signed bool) evalFn {
	return func(dst []nir.Value, lanes, width int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			idx := src[1][i].Uint(32) & uint64(width/chunkBits-1)
			chunk := src[0][i].Uint(width) >> (idx * uint64(chunkBits))
			if signed {
				dst[i] = nir.Int(width, nir.FromBits(chunk).Int(chunkBits))
			} else {
				dst[i] = nir.Uint(width, chunk&nir.Mask(chunkBits))
			}
		}
	}
}

// insertOp places the low chunk of src0 at chunk position src1, zeroes
// elsewhere. The chunk index wraps.
func insertOp(chunkBits int) evalFn {
	return func(dst []nir.Value, lanes, width int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			idx := src[1][i].Uint(32) & uint64(width/chunkBits-1)
			chunk := src[0][i].Uint(width) & nir.Mask(chunkBits)
			dst[i] = nir.Uint(width, chunk<<(idx*uint64(chunkBits)))
		}
	}
}
