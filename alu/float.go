package alu

import (
	"math"

	nir "github.com/xandfury/external-mesa3d"
)

func init() {
	register(OpFAdd, floatBinary(addF[float32], addF[float64]))
	register(OpFSub, floatBinary(subF[float32], subF[float64]))
	register(OpFMul, floatBinary(mulF[float32], mulF[float64]))
	register(OpFDiv, floatBinary(divF[float32], divF[float64]))
	register(OpFRem, f64Binary(math.Mod))
	register(OpFMod, f64Binary(floorMod))
	register(OpFAbs, f64Unary(math.Abs))
	register(OpFNeg, floatUnary(negF[float32], negF[float64]))
	register(OpFSign, floatUnary(signF[float32], signF[float64]))
	register(OpFMin, floatBinary(minF[float32], minF[float64]))
	register(OpFMax, floatBinary(maxF[float32], maxF[float64]))
	register(OpFMin3, floatTernary(min3F[float32], min3F[float64]))
	register(OpFMax3, floatTernary(max3F[float32], max3F[float64]))
	register(OpFMed3, floatTernary(med3F[float32], med3F[float64]))
	register(OpFFma, floatTernary(fma32, math.FMA))
	register(OpFLrp, floatTernary(lrpF[float32], lrpF[float64]))
	register(OpFSat, floatUnary(satF[float32], satF[float64]))
	register(OpFFloor, f64Unary(math.Floor))
	register(OpFCeil, f64Unary(math.Ceil))
	register(OpFFract, f64Unary(fract))
	register(OpFTrunc, f64Unary(math.Trunc))
	register(OpFRoundEven, f64Unary(math.RoundToEven))
	register(OpFSqrt, f64Unary(math.Sqrt))
	register(OpFRcp, f64Unary(func(x float64) float64 { return 1 / x }))
	register(OpFRsq, floatUnary(
		func(x float32) float32 { return 1 / float32(math.Sqrt(float64(x))) },
		func(x float64) float64 { return 1 / math.Sqrt(x) },
	))
	register(OpFExp2, f64Unary(math.Exp2))
	register(OpFLog2, f64Unary(math.Log2))
	register(OpFPow, f64Binary(math.Pow))
	register(OpFSin, f64Unary(math.Sin))
	register(OpFCos, f64Unary(math.Cos))
	register(OpLdexp, evalLdexp)
	register(OpFrexpSig, evalFrexpSig)
	register(OpFrexpExp, evalFrexpExp)
}

// floorMod is the floor-division modulus: the result takes the divisor's
// sign, unlike the C-style remainder frem.
func floorMod(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// fma32 rounds a float64 fused multiply-add down to float32. The float64
// product of float32 inputs is exact, so at most the final add differs from
// a native fmaf in the last bit.
func fma32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

// evalLdexp scales by a power of two; a denormal result flushes to a
// signed zero at the result width.
func evalLdexp(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
	for i := 0; i < lanes; i++ {
		exp := int(src[1][i].Int(32))
		r := math.Ldexp(loadFloat64(src[0][i], bits), exp)
		dst[i] = flushDenorm(storeFloat(bits, r), bits)
	}
}

// flushDenorm replaces a subnormal float lane with a zero of the same sign.
func flushDenorm(v nir.Value, bits int) nir.Value {
	switch bits {
	case 16:
		b := v.HalfBits()
		if b&0x7C00 == 0 && b&0x03FF != 0 {
			return nir.HalfBits(b & 0x8000)
		}
	case 32:
		b := uint32(v.Bits())
		if b&0x7F800000 == 0 && b&0x007FFFFF != 0 {
			return nir.FromBits(uint64(b & 0x80000000))
		}
	default:
		b := v.Bits()
		if b&0x7FF0000000000000 == 0 && b&0x000FFFFFFFFFFFFF != 0 {
			return nir.FromBits(b & 0x8000000000000000)
		}
	}
	return v
}

func evalFrexpSig(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
	for i := 0; i < lanes; i++ {
		frac, _ := math.Frexp(loadFloat64(src[0][i], bits))
		dst[i] = storeFloat(bits, frac)
	}
}

func evalFrexpExp(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
	for i := 0; i < lanes; i++ {
		_, exp := math.Frexp(loadFloat64(src[0][i], bits))
		dst[i] = nir.Int(32, int64(exp))
	}
}
