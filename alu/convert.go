package alu

import (
	"math"

	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu/internal/half"
)

// For conversions bits selects the SOURCE width; the destination width is
// part of the opcode.

func init() {
	register(OpF2F16, f2f16(half.RoundNearestEven))
	register(OpF2F16RTNE, f2f16(half.RoundNearestEven))
	register(OpF2F16RTZ, f2f16(half.RoundTowardZero))
	register(OpF2F32, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Float32(float32(loadFloat64(src[0][i], bits)))
		}
	})
	register(OpF2F64, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Float64(loadFloat64(src[0][i], bits))
		}
	})

	register(OpI2F16, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.HalfBits(half.FromFloat64(float64(src[0][i].Int(bits))).Bits())
		}
	})
	register(OpI2F32, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Float32(float32(src[0][i].Int(bits)))
		}
	})
	register(OpI2F64, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Float64(float64(src[0][i].Int(bits)))
		}
	})
	register(OpU2F16, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.HalfBits(half.FromFloat64(float64(src[0][i].Uint(bits))).Bits())
		}
	})
	register(OpU2F32, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Float32(float32(src[0][i].Uint(bits)))
		}
	})
	register(OpU2F64, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Float64(float64(src[0][i].Uint(bits)))
		}
	})

	register(OpF2I8, f2i(8))
	register(OpF2I16, f2i(16))
	register(OpF2I32, f2i(32))
	register(OpF2I64, f2i(64))
	register(OpF2U8, f2u(8))
	register(OpF2U16, f2u(16))
	register(OpF2U32, f2u(32))
	register(OpF2U64, f2u(64))

	register(OpI2I1, i2i(1))
	register(OpI2I8, i2i(8))
	register(OpI2I16, i2i(16))
	register(OpI2I32, i2i(32))
	register(OpI2I64, i2i(64))
	register(OpU2U1, u2u(1))
	register(OpU2U8, u2u(8))
	register(OpU2U16, u2u(16))
	register(OpU2U32, u2u(32))
	register(OpU2U64, u2u(64))

	register(OpB2F16, b2f(16))
	register(OpB2F32, b2f(32))
	register(OpB2F64, b2f(64))
	register(OpB2I1, b2i(1))
	register(OpB2I8, b2i(8))
	register(OpB2I16, b2i(16))
	register(OpB2I32, b2i(32))
	register(OpB2I64, b2i(64))
	register(OpB2B1, b2b(1))
	register(OpB2B32, b2b(32))

	register(OpI2B1, i2b(1))
	register(OpI2B32, i2b(32))
	register(OpF2B1, f2b(1))
	register(OpF2B32, f2b(32))

	register(OpFQuantize2F16, evalFQuantize2F16)
}

func f2f16(mode half.RoundingMode) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			var h half.Float16
			if bits == 32 {
				h = half.FromFloat32Round(src[0][i].Float32(), mode)
			} else {
				h = half.FromFloat64Round(src[0][i].Float64(), mode)
			}
			dst[i] = nir.HalfBits(h.Bits())
		}
	}
}

// Exact float64 values of 2^63 and 2^64, the first values past the signed
// and unsigned 64-bit ranges.
const (
	two63 float64 = 1 << 63
	two64 float64 = 1 << 64
)

// f2iSat truncates toward zero with deterministic edge behavior: NaN maps
// to 0 and out-of-range values clamp to the destination range.
func f2iSat(v float64, destBits int) int64 {
	if v != v {
		return 0
	}
	v = math.Trunc(v)
	if destBits < 64 {
		lo, hi := intRange(destBits)
		if v < float64(lo) {
			return lo
		}
		if v > float64(hi) {
			return hi
		}
		return int64(v)
	}
	if v >= two63 {
		return math.MaxInt64
	}
	if v < -two63 {
		return math.MinInt64
	}
	return int64(v)
}

func f2uSat(v float64, destBits int) uint64 {
	if v != v {
		return 0
	}
	v = math.Trunc(v)
	if v <= 0 {
		return 0
	}
	if destBits < 64 {
		if m := nir.Mask(destBits); v > float64(m) {
			return m
		}
		return uint64(v)
	}
	if v >= two64 {
		return math.MaxUint64
	}
	return uint64(v)
}

func f2i(destBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Int(destBits, f2iSat(loadFloat64(src[0][i], bits), destBits))
		}
	}
}

func f2u(destBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(destBits, f2uSat(loadFloat64(src[0][i], bits), destBits))
		}
	}
}

func i2i(destBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Int(destBits, src[0][i].Int(bits))
		}
	}
}

func u2u(destBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(destBits, src[0][i].Uint(bits))
		}
	}
}

func b2f(destBits int) evalFn {
	return func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			f := 0.0
			if src[0][i].IsTrue() {
				f = 1.0
			}
			dst[i] = storeFloat(destBits, f)
		}
	}
}

func b2i(destBits int) evalFn {
	return func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			var v uint64
			if src[0][i].IsTrue() {
				v = 1
			}
			dst[i] = nir.Uint(destBits, v)
		}
	}
}

func b2b(destBits int) evalFn {
	return func(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Bool(destBits, src[0][i].IsTrue())
		}
	}
}

func i2b(destBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Bool(destBits, src[0][i].Uint(bits) != 0)
		}
	}
}

// f2b treats both zeros as false and everything else, NaN included, as true.
func f2b(destBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			v := loadFloat64(src[0][i], bits)
			dst[i] = nir.Bool(destBits, v != 0 || v != v)
		}
	}
}

// evalFQuantize2F16 reduces a float32 to the nearest value representable in
// binary16. Values in the binary16 subnormal range flush to a zero of the
// same sign instead of round-tripping.
func evalFQuantize2F16(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
	for i := 0; i < lanes; i++ {
		f := src[0][i].Float32()
		if math.Abs(float64(f)) < 0x1p-14 {
			dst[i] = nir.Float32(float32(math.Copysign(0, float64(f))))
			continue
		}
		dst[i] = nir.Float32(half.FromFloat32(f).Float32())
	}
}
