package alu

import (
	"golang.org/x/exp/constraints"

	nir "github.com/xandfury/external-mesa3d"
	"github.com/xandfury/external-mesa3d/alu/internal/half"
)

// Each opcode category gets one builder parameterized over the scalar
// kernel; the kernels themselves are generic over the numeric kind where
// the math allows it, and split per width where precision demands it
// (float32 arithmetic must happen in float32).

// halfIn reads a lane holding a binary16 value as float32; 16-bit float
// math evaluates in float32 and rounds back on store.
func halfIn(v nir.Value) float32 {
	return half.FromBits(v.HalfBits()).Float32()
}

// halfOut stores a float32 result as binary16, round-to-nearest-even.
func halfOut(f float32) nir.Value {
	return nir.HalfBits(half.FromFloat32(f).Bits())
}

// loadFloat64 widens any float lane to float64. Only for contexts where the
// result is not stored back at the same width (comparisons, conversions).
func loadFloat64(v nir.Value, bits int) float64 {
	switch bits {
	case 16:
		return float64(halfIn(v))
	case 32:
		return float64(v.Float32())
	default:
		return v.Float64()
	}
}

// storeFloat narrows a float64 to a float lane of the given width,
// round-to-nearest-even.
func storeFloat(bits int, f float64) nir.Value {
	switch bits {
	case 16:
		return nir.HalfBits(half.FromFloat64(f).Bits())
	case 32:
		return nir.Float32(float32(f))
	default:
		return nir.Float64(f)
	}
}

// floatUnary builds an elementwise float op from per-precision kernels.
func floatUnary(g32 func(float32) float32, g64 func(float64) float64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			switch bits {
			case 16:
				dst[i] = halfOut(g32(halfIn(src[0][i])))
			case 32:
				dst[i] = nir.Float32(g32(src[0][i].Float32()))
			default:
				dst[i] = nir.Float64(g64(src[0][i].Float64()))
			}
		}
	}
}

func floatBinary(g32 func(a, b float32) float32, g64 func(a, b float64) float64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			switch bits {
			case 16:
				dst[i] = halfOut(g32(halfIn(src[0][i]), halfIn(src[1][i])))
			case 32:
				dst[i] = nir.Float32(g32(src[0][i].Float32(), src[1][i].Float32()))
			default:
				dst[i] = nir.Float64(g64(src[0][i].Float64(), src[1][i].Float64()))
			}
		}
	}
}

func floatTernary(g32 func(a, b, c float32) float32, g64 func(a, b, c float64) float64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			switch bits {
			case 16:
				dst[i] = halfOut(g32(halfIn(src[0][i]), halfIn(src[1][i]), halfIn(src[2][i])))
			case 32:
				dst[i] = nir.Float32(g32(src[0][i].Float32(), src[1][i].Float32(), src[2][i].Float32()))
			default:
				dst[i] = nir.Float64(g64(src[0][i].Float64(), src[1][i].Float64(), src[2][i].Float64()))
			}
		}
	}
}

// f64Unary builds a float op whose kernel is only available on float64
// (libm-style functions). Narrower widths compute through float64 and round
// on store, matching how the original calls the host libm.
func f64Unary(f func(float64) float64) evalFn {
	return floatUnary(func(x float32) float32 { return float32(f(float64(x))) }, f)
}

func f64Binary(f func(a, b float64) float64) evalFn {
	return floatBinary(
		func(a, b float32) float32 { return float32(f(float64(a), float64(b))) },
		f,
	)
}

// floatCmp builds a float comparison with a sentinel-encoded boolean
// result of the given width.
func floatCmp(f func(a, b float64) bool, outBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			a := loadFloat64(src[0][i], bits)
			b := loadFloat64(src[1][i], bits)
			dst[i] = nir.Bool(outBits, f(a, b))
		}
	}
}

// floatCmpLegacy builds the 0.0/1.0-valued comparison variants (slt and
// friends); the float result is stored at the operand width.
func floatCmpLegacy(f func(a, b float64) bool) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			r := 0.0
			if f(loadFloat64(src[0][i], bits), loadFloat64(src[1][i], bits)) {
				r = 1.0
			}
			dst[i] = storeFloat(bits, r)
		}
	}
}

// intUnary / intBinary / intTernary evaluate on sign-extended int64 and
// truncate the result back to the operand width.
func intUnary(f func(a int64, bits int) int64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Int(bits, f(src[0][i].Int(bits), bits))
		}
	}
}

func intBinary(f func(a, b int64, bits int) int64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Int(bits, f(src[0][i].Int(bits), src[1][i].Int(bits), bits))
		}
	}
}

func intTernary(f func(a, b, c int64, bits int) int64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Int(bits, f(src[0][i].Int(bits), src[1][i].Int(bits), src[2][i].Int(bits), bits))
		}
	}
}

// uintUnary / uintBinary / uintTernary are the zero-extended counterparts.
func uintUnary(f func(a uint64, bits int) uint64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(bits, f(src[0][i].Uint(bits), bits))
		}
	}
}

func uintBinary(f func(a, b uint64, bits int) uint64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(bits, f(src[0][i].Uint(bits), src[1][i].Uint(bits), bits))
		}
	}
}

func uintTernary(f func(a, b, c uint64, bits int) uint64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(bits, f(src[0][i].Uint(bits), src[1][i].Uint(bits), src[2][i].Uint(bits), bits))
		}
	}
}

// shiftOp builds a shift/rotate: the value operand follows the evaluation
// width, the count operand is always uint32 and is masked by width-1.
func shiftOp(f func(a uint64, count uint, bits int) uint64) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			count := uint(src[1][i].Uint(32)) & uint(bits-1)
			dst[i] = nir.Uint(bits, f(src[0][i].Uint(bits), count, bits))
		}
	}
}

// intCmp / uintCmp build integer comparisons with sentinel boolean output.
func intCmp(f func(a, b int64) bool, outBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Bool(outBits, f(src[0][i].Int(bits), src[1][i].Int(bits)))
		}
	}
}

func uintCmp(f func(a, b uint64) bool, outBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Bool(outBits, f(src[0][i].Uint(bits), src[1][i].Uint(bits)))
		}
	}
}

// Generic scalar kernels shared by the float builders. isNaN is spelled
// x != x so it works at either precision.

func addF[T constraints.Float](a, b T) T { return a + b }
func subF[T constraints.Float](a, b T) T { return a - b }
func mulF[T constraints.Float](a, b T) T { return a * b }
func divF[T constraints.Float](a, b T) T { return a / b }
func negF[T constraints.Float](x T) T    { return -x }

// minF follows C fminf/fmin: a NaN operand yields the other operand.
func minF[T constraints.Float](a, b T) T {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if b < a {
		return b
	}
	return a
}

func maxF[T constraints.Float](a, b T) T {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if b > a {
		return b
	}
	return a
}

func min3F[T constraints.Float](a, b, c T) T { return minF(minF(a, b), c) }
func max3F[T constraints.Float](a, b, c T) T { return maxF(maxF(a, b), c) }

// med3F picks the middle value, composed from minF/maxF so NaNs fall out
// the way the hardware med3 does.
func med3F[T constraints.Float](a, b, c T) T {
	return maxF(minF(maxF(a, b), c), minF(a, b))
}

func signF[T constraints.Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		// Zeros and NaN.
		return 0
	}
}

// satF clamps to [0,1] with NaN mapping to 0.
func satF[T constraints.Float](x T) T {
	if !(x > 0) { // NaN and non-positive
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func lrpF[T constraints.Float](a, b, c T) T { return a*(1-c) + b*c }
