package alu

import (
	"math"

	nir "github.com/xandfury/external-mesa3d"
)

func init() {
	register(OpIAdd, intBinary(func(a, b int64, _ int) int64 { return a + b }))
	register(OpISub, intBinary(func(a, b int64, _ int) int64 { return a - b }))
	register(OpIMul, intBinary(func(a, b int64, _ int) int64 { return a * b }))
	register(OpINeg, intUnary(func(a int64, _ int) int64 { return -a }))
	register(OpIAbs, intUnary(func(a int64, _ int) int64 {
		if a < 0 {
			return -a // the most negative value wraps to itself
		}
		return a
	}))
	register(OpISign, intUnary(func(a int64, _ int) int64 {
		switch {
		case a > 0:
			return 1
		case a < 0:
			return -1
		}
		return 0
	}))

	// Division and remainder by zero are defined to yield 0; this is part
	// of the opcode contract, not an error.
	register(OpIDiv, intBinary(func(a, b int64, _ int) int64 {
		if b == 0 {
			return 0
		}
		return a / b
	}))
	register(OpUDiv, uintBinary(func(a, b uint64, _ int) uint64 {
		if b == 0 {
			return 0
		}
		return a / b
	}))
	register(OpIRem, intBinary(func(a, b int64, _ int) int64 {
		if b == 0 {
			return 0
		}
		return a % b
	}))
	register(OpUMod, uintBinary(func(a, b uint64, _ int) uint64 {
		if b == 0 {
			return 0
		}
		return a % b
	}))
	register(OpIMod, intBinary(func(a, b int64, _ int) int64 {
		if b == 0 {
			return 0
		}
		// Floor modulus: the result takes the divisor's sign.
		r := a % b
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r
	}))

	register(OpIMin, intBinary(func(a, b int64, _ int) int64 { return min(a, b) }))
	register(OpIMax, intBinary(func(a, b int64, _ int) int64 { return max(a, b) }))
	register(OpUMin, uintBinary(func(a, b uint64, _ int) uint64 { return min(a, b) }))
	register(OpUMax, uintBinary(func(a, b uint64, _ int) uint64 { return max(a, b) }))
	register(OpIMin3, intTernary(func(a, b, c int64, _ int) int64 { return min(a, b, c) }))
	register(OpIMax3, intTernary(func(a, b, c int64, _ int) int64 { return max(a, b, c) }))
	register(OpIMed3, intTernary(func(a, b, c int64, _ int) int64 {
		return max(min(max(a, b), c), min(a, b))
	}))
	register(OpUMin3, uintTernary(func(a, b, c uint64, _ int) uint64 { return min(a, b, c) }))
	register(OpUMax3, uintTernary(func(a, b, c uint64, _ int) uint64 { return max(a, b, c) }))
	register(OpUMed3, uintTernary(func(a, b, c uint64, _ int) uint64 {
		return max(min(max(a, b), c), min(a, b))
	}))

	register(OpIAddSat, intBinary(iaddSat))
	register(OpISubSat, intBinary(isubSat))
	register(OpUAddSat, uintBinary(uaddSat))
	register(OpUSubSat, uintBinary(func(a, b uint64, _ int) uint64 {
		if b > a {
			return 0
		}
		return a - b
	}))

	register(OpUAddCarry, uintBinary(func(a, b uint64, bits int) uint64 {
		if (a+b)&nir.Mask(bits) < a {
			return 1
		}
		return 0
	}))
	register(OpUSubBorrow, uintBinary(func(a, b uint64, _ int) uint64 {
		if a < b {
			return 1
		}
		return 0
	}))

	// Halving adds: average without intermediate overflow.
	register(OpIHadd, intBinary(func(a, b int64, _ int) int64 { return a>>1 + b>>1 + a&b&1 }))
	register(OpUHadd, uintBinary(func(a, b uint64, _ int) uint64 { return a>>1 + b>>1 + a&b&1 }))
	register(OpIRhadd, intBinary(func(a, b int64, _ int) int64 { return a>>1 + b>>1 + (a|b)&1 }))
	register(OpURhadd, uintBinary(func(a, b uint64, _ int) uint64 { return a>>1 + b>>1 + (a|b)&1 }))

	register(OpIMulHigh, intBinary(func(a, b int64, bits int) int64 {
		if bits < 64 {
			return (a * b) >> uint(bits)
		}
		return imulHigh64(a, b)
	}))
	register(OpUMulHigh, uintBinary(func(a, b uint64, bits int) uint64 {
		if bits < 64 {
			return (a * b) >> uint(bits)
		}
		return umulHigh64(a, b)
	}))

	register(OpUMul24, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			a := src[0][i].Uint(32) & 0xFFFFFF
			b := src[1][i].Uint(32) & 0xFFFFFF
			dst[i] = nir.Uint(32, a*b)
		}
	})
	register(OpIMul2x32_64, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Int(64, src[0][i].Int(32)*src[1][i].Int(32))
		}
	})
	register(OpUMul2x32_64, func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(64, src[0][i].Uint(32)*src[1][i].Uint(32))
		}
	})

	register(OpIShl, shiftOp(func(a uint64, c uint, _ int) uint64 { return a << c }))
	register(OpIShr, shiftOp(func(a uint64, c uint, bits int) uint64 {
		return uint64(nir.FromBits(a).Int(bits) >> c)
	}))
	register(OpUShr, shiftOp(func(a uint64, c uint, _ int) uint64 { return a >> c }))
	register(OpURol, shiftOp(func(a uint64, c uint, bits int) uint64 {
		if c == 0 {
			return a
		}
		return a<<c | a>>(uint(bits)-c)
	}))
	register(OpURor, shiftOp(func(a uint64, c uint, bits int) uint64 {
		if c == 0 {
			return a
		}
		return a>>c | a<<(uint(bits)-c)
	}))

	register(OpINot, intUnary(func(a int64, _ int) int64 { return ^a }))
	register(OpIAnd, uintBinary(func(a, b uint64, _ int) uint64 { return a & b }))
	register(OpIOr, uintBinary(func(a, b uint64, _ int) uint64 { return a | b }))
	register(OpIXor, uintBinary(func(a, b uint64, _ int) uint64 { return a ^ b }))
}

// intRange returns the representable signed range at a width.
func intRange(bits int) (lo, hi int64) {
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}
	hi = 1<<(bits-1) - 1
	return -hi - 1, hi
}

func iaddSat(a, b int64, bits int) int64 {
	lo, hi := intRange(bits)
	if bits < 64 {
		return min(max(a+b, lo), hi)
	}
	if b > 0 && a > hi-b {
		return hi
	}
	if b < 0 && a < lo-b {
		return lo
	}
	return a + b
}

func isubSat(a, b int64, bits int) int64 {
	lo, hi := intRange(bits)
	if bits < 64 {
		return min(max(a-b, lo), hi)
	}
	if b < 0 && a > hi+b {
		return hi
	}
	if b > 0 && a < lo+b {
		return lo
	}
	return a - b
}

func uaddSat(a, b uint64, bits int) uint64 {
	s := a + b
	if bits < 64 {
		return min(s, nir.Mask(bits))
	}
	if s < a {
		return ^uint64(0)
	}
	return s
}

// umulHigh64 returns the high 64 bits of the full 128-bit product by
// schoolbook multiplication on 32-bit limbs; a plain 64x64->64 multiply
// discards exactly the bits needed.
func umulHigh64(a, b uint64) uint64 {
	a0, a1 := a&0xFFFFFFFF, a>>32
	b0, b1 := b&0xFFFFFFFF, b>>32

	carry := (a0 * b0) >> 32
	mid := a1*b0 + carry
	mid2 := a0*b1 + mid&0xFFFFFFFF
	return a1*b1 + mid>>32 + mid2>>32
}

// imulHigh64 is the signed variant: the unsigned cross-product corrected
// for the implicit sign extension of each negative limb group.
func imulHigh64(a, b int64) int64 {
	h := umulHigh64(uint64(a), uint64(b))
	if a < 0 {
		h -= uint64(b)
	}
	if b < 0 {
		h -= uint64(a)
	}
	return int64(h)
}
