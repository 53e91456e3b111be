package alu

import nir "github.com/xandfury/external-mesa3d"

// Float comparisons follow IEEE ordering: anything involving NaN is false,
// except not-equal which is true. The sentinel encoding makes the result
// directly usable as a bitwise mask.

func init() {
	register(OpFLt, floatCmp(func(a, b float64) bool { return a < b }, 1))
	register(OpFGe, floatCmp(func(a, b float64) bool { return a >= b }, 1))
	register(OpFEq, floatCmp(func(a, b float64) bool { return a == b }, 1))
	register(OpFNeu, floatCmp(func(a, b float64) bool { return a != b }, 1))
	register(OpFLt32, floatCmp(func(a, b float64) bool { return a < b }, 32))
	register(OpFGe32, floatCmp(func(a, b float64) bool { return a >= b }, 32))
	register(OpFEq32, floatCmp(func(a, b float64) bool { return a == b }, 32))
	register(OpFNeu32, floatCmp(func(a, b float64) bool { return a != b }, 32))

	// Legacy 0.0/1.0-valued comparisons.
	register(OpSLt, floatCmpLegacy(func(a, b float64) bool { return a < b }))
	register(OpSGe, floatCmpLegacy(func(a, b float64) bool { return a >= b }))
	register(OpSEq, floatCmpLegacy(func(a, b float64) bool { return a == b }))
	register(OpSNe, floatCmpLegacy(func(a, b float64) bool { return a != b }))

	register(OpILt, intCmp(func(a, b int64) bool { return a < b }, 1))
	register(OpIGe, intCmp(func(a, b int64) bool { return a >= b }, 1))
	register(OpIEq, intCmp(func(a, b int64) bool { return a == b }, 1))
	register(OpINe, intCmp(func(a, b int64) bool { return a != b }, 1))
	register(OpULt, uintCmp(func(a, b uint64) bool { return a < b }, 1))
	register(OpUGe, uintCmp(func(a, b uint64) bool { return a >= b }, 1))
	register(OpILt32, intCmp(func(a, b int64) bool { return a < b }, 32))
	register(OpIGe32, intCmp(func(a, b int64) bool { return a >= b }, 32))
	register(OpIEq32, intCmp(func(a, b int64) bool { return a == b }, 32))
	register(OpINe32, intCmp(func(a, b int64) bool { return a != b }, 32))
	register(OpULt32, uintCmp(func(a, b uint64) bool { return a < b }, 32))
	register(OpUGe32, uintCmp(func(a, b uint64) bool { return a >= b }, 32))

	register(OpBCSel, evalBCSel)
	register(OpB32CSel, evalBCSel)
	register(OpFCSel, evalFCSel)
}

// evalBCSel selects per lane on the boolean sentinel. The data operands
// move as raw bits at the evaluation width, so any type can ride through.
func evalBCSel(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
	for i := 0; i < lanes; i++ {
		if src[0][i].IsTrue() {
			dst[i] = nir.Uint(bits, src[1][i].Uint(bits))
		} else {
			dst[i] = nir.Uint(bits, src[2][i].Uint(bits))
		}
	}
}

// evalFCSel is the float32 select: a nonzero selector picks the second
// operand, and both zeros count as zero.
func evalFCSel(dst []nir.Value, lanes, _ int, src [][]nir.Value) {
	for i := 0; i < lanes; i++ {
		if src[0][i].Float32() != 0 {
			dst[i] = nir.Float32(src[1][i].Float32())
		} else {
			dst[i] = nir.Float32(src[2][i].Float32())
		}
	}
}
