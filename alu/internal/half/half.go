// Package half implements IEEE 754 half-precision (binary16) floats with
// explicit rounding-mode control on the narrowing conversions.
//
// Format: Sign (1 bit) | Exponent (5 bits, bias 15) | Mantissa (10 bits)
package half

import "math"

// Float16 is the raw binary16 encoding.
type Float16 uint16

// Special values.
const (
	Zero      Float16 = 0x0000
	NegZero   Float16 = 0x8000
	One       Float16 = 0x3C00
	Inf       Float16 = 0x7C00
	NegInf    Float16 = 0xFC00
	NaN       Float16 = 0x7E00 // canonical quiet NaN
	MaxValue  Float16 = 0x7BFF // 65504
	MinNormal Float16 = 0x0400 // 2^-14

	expBias      = 15
	expMask      = 0x1F
	mantissaBits = 10
	mantissaMask = 0x3FF
	signMask     = 0x8000
)

// RoundingMode selects the IEEE rounding behavior of a narrowing
// conversion.
type RoundingMode int

const (
	// RoundNearestEven is the IEEE default: ties round to the even
	// mantissa.
	RoundNearestEven RoundingMode = iota
	// RoundTowardZero truncates. Overflow produces the largest finite
	// value rather than infinity.
	RoundTowardZero
)

// FromBits wraps a raw encoding.
func FromBits(b uint16) Float16 { return Float16(b) }

// Bits returns the raw encoding.
func (h Float16) Bits() uint16 { return uint16(h) }

// IsNaN reports whether h encodes a NaN.
func (h Float16) IsNaN() bool {
	return uint16(h)&0x7C00 == 0x7C00 && uint16(h)&mantissaMask != 0
}

// IsInf reports whether h encodes positive or negative infinity.
func (h Float16) IsInf() bool {
	return uint16(h)&0x7FFF == uint16(Inf)
}

// Float32 widens to float32. The conversion is exact: every binary16 value
// is representable in binary32.
func (h Float16) Float32() float32 {
	bits := uint32(h)
	sign := bits >> 15
	exp := (bits >> mantissaBits) & expMask
	mant := bits & mantissaMask

	switch {
	case exp == 0:
		if mant == 0 {
			return math.Float32frombits(sign << 31)
		}
		// Subnormal: normalize into the float32 encoding.
		exp = 1
		for mant&(1<<mantissaBits) == 0 {
			mant <<= 1
			exp--
		}
		mant &= mantissaMask
		exp += 127 - expBias
	case exp == expMask:
		if mant == 0 {
			return math.Float32frombits(sign<<31 | 0x7F800000)
		}
		return math.Float32frombits(sign<<31 | 0x7FC00000 | mant<<13)
	default:
		exp += 127 - expBias
	}
	return math.Float32frombits(sign<<31 | exp<<23 | mant<<13)
}

// Float64 widens to float64.
func (h Float16) Float64() float64 { return float64(h.Float32()) }

// FromFloat32 narrows a float32 with round-to-nearest-even.
func FromFloat32(f float32) Float16 {
	return FromFloat32Round(f, RoundNearestEven)
}

// FromFloat32Round narrows a float32 under the given rounding mode.
func FromFloat32Round(f float32, mode RoundingMode) Float16 {
	bits := math.Float32bits(f)
	e := (bits >> 23) & 0xFF
	return narrow(uint16(bits>>16)&signMask, int(e)-127, uint64(bits&0x7FFFFF), 23, e == 0xFF, e == 0, mode)
}

// FromFloat64 narrows a float64 with round-to-nearest-even. The rounding
// happens directly on the float64 mantissa; narrowing through float32 first
// would double-round.
func FromFloat64(f float64) Float16 {
	return FromFloat64Round(f, RoundNearestEven)
}

// FromFloat64Round narrows a float64 under the given rounding mode.
func FromFloat64Round(f float64, mode RoundingMode) Float16 {
	bits := math.Float64bits(f)
	e := (bits >> 52) & 0x7FF
	return narrow(uint16(bits>>48)&signMask, int(e)-1023, bits&0xFFFFFFFFFFFFF, 52, e == 0x7FF, e == 0, mode)
}

// narrow converts a normalized (sign, unbiased exponent, explicit mantissa
// of mantBits bits) triple to binary16. special marks an Inf/NaN input
// exponent, zero a zero or subnormal input (both far below the binary16
// subnormal range).
func narrow(sign uint16, exp int, mant uint64, mantBits uint, special, zero bool, mode RoundingMode) Float16 {
	if special {
		if mant != 0 {
			return Float16(sign) | NaN
		}
		return Float16(sign) | Inf
	}
	if zero {
		return Float16(sign)
	}

	switch {
	case exp < -25:
		// Below half of the smallest subnormal: rounds to zero in every
		// mode.
		return Float16(sign)
	case exp == -25:
		// Exactly 2^-25 ties to zero; anything above it rounds up to the
		// smallest subnormal under nearest-even.
		if mode == RoundNearestEven && mant != 0 {
			return Float16(sign) | 1
		}
		return Float16(sign)
	case exp > 15:
		// At least 2^16, past the largest finite value before rounding.
		if mode == RoundTowardZero {
			return Float16(sign) | MaxValue
		}
		return Float16(sign) | Inf
	}

	// full carries the implicit leading one; shift moves the surviving
	// mantissa into the low 10 bits, everything below feeds rounding.
	full := uint64(1)<<mantBits | mant
	shift := mantBits - mantissaBits
	e16 := exp + expBias
	implicit := uint64(1) << mantissaBits
	if e16 <= 0 {
		// Subnormal result: e16 in [-9, 0] here, so the extra shift is at
		// most 10 and no intermediate overflows 64 bits.
		shift += uint(1 - e16)
		implicit = 0
		e16 = 0
	}

	keep := full >> shift
	roundBit := (full >> (shift - 1)) & 1
	sticky := full&(uint64(1)<<(shift-1)-1) != 0
	if mode == RoundNearestEven && roundBit == 1 && (sticky || keep&1 == 1) {
		keep++
	}

	// Composing exponent and mantissa additively lets a mantissa carry bump
	// the exponent field by itself.
	out := uint64(e16)<<mantissaBits + (keep - implicit)
	if (out>>mantissaBits)&expMask >= 31 {
		if mode == RoundTowardZero {
			return Float16(sign) | MaxValue
		}
		return Float16(sign) | Inf
	}
	return Float16(sign) | Float16(out)
}
