package alu

import nir "github.com/xandfury/external-mesa3d"

// Reductions consume fixed-length vector operands and produce a scalar,
// broadcast to every requested output lane.

func init() {
	register(OpFDot2, dotOp(2))
	register(OpFDot3, dotOp(3))
	register(OpFDot4, dotOp(4))
	register(OpFDph, evalFDph)

	for _, v := range []struct {
		eq, ne, eq32, ne32 Op
		n                  int
	}{
		{OpBAllIEqual2, OpBAnyINequal2, OpB32AllIEqual2, OpB32AnyINequal2, 2},
		{OpBAllIEqual3, OpBAnyINequal3, OpB32AllIEqual3, OpB32AnyINequal3, 3},
		{OpBAllIEqual4, OpBAnyINequal4, OpB32AllIEqual4, OpB32AnyINequal4, 4},
	} {
		register(v.eq, iequalOp(v.n, true, 1))
		register(v.ne, iequalOp(v.n, false, 1))
		register(v.eq32, iequalOp(v.n, true, 32))
		register(v.ne32, iequalOp(v.n, false, 32))
	}
	for _, v := range []struct {
		eq, ne, eq32, ne32 Op
		n                  int
	}{
		{OpBAllFEqual2, OpBAnyFNequal2, OpB32AllFEqual2, OpB32AnyFNequal2, 2},
		{OpBAllFEqual3, OpBAnyFNequal3, OpB32AllFEqual3, OpB32AnyFNequal3, 3},
		{OpBAllFEqual4, OpBAnyFNequal4, OpB32AllFEqual4, OpB32AnyFNequal4, 4},
	} {
		register(v.eq, fequalOp(v.n, true, 1))
		register(v.ne, fequalOp(v.n, false, 1))
		register(v.eq32, fequalOp(v.n, true, 32))
		register(v.ne32, fequalOp(v.n, false, 32))
	}
}

// dot accumulates left to right in the working precision of the operand
// width: float32 for 16- and 32-bit lanes, float64 for 64-bit.
func dot(a, b []nir.Value, n, bits int) nir.Value {
	if bits == 64 {
		var sum float64
		for i := 0; i < n; i++ {
			sum += a[i].Float64() * b[i].Float64()
		}
		return nir.Float64(sum)
	}
	load := func(v nir.Value) float32 {
		if bits == 16 {
			return halfIn(v)
		}
		return v.Float32()
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += load(a[i]) * load(b[i])
	}
	if bits == 16 {
		return halfOut(sum)
	}
	return nir.Float32(sum)
}

func dotOp(n int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		r := dot(src[0], src[1], n, bits)
		for i := 0; i < lanes; i++ {
			dst[i] = r
		}
	}
}

// evalFDph is the homogeneous dot product: dot(src0.xyz, src1.xyz) plus
// src1.w, as if src0.w were 1.
func evalFDph(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
	var r nir.Value
	if bits == 64 {
		sum := src[1][3].Float64()
		for i := 0; i < 3; i++ {
			sum += src[0][i].Float64() * src[1][i].Float64()
		}
		r = nir.Float64(sum)
	} else {
		load := func(v nir.Value) float32 {
			if bits == 16 {
				return halfIn(v)
			}
			return v.Float32()
		}
		sum := load(src[1][3])
		for i := 0; i < 3; i++ {
			sum += load(src[0][i]) * load(src[1][i])
		}
		if bits == 16 {
			r = halfOut(sum)
		} else {
			r = nir.Float32(sum)
		}
	}
	for i := 0; i < lanes; i++ {
		dst[i] = r
	}
}

// iequalOp compares vectors bit-for-bit at the evaluation width. all=true
// builds the all-equal reduction, all=false the any-not-equal one.
func iequalOp(n int, all bool, outBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		eq := true
		for i := 0; i < n; i++ {
			if src[0][i].Uint(bits) != src[1][i].Uint(bits) {
				eq = false
				break
			}
		}
		r := nir.Bool(outBits, eq == all)
		for i := 0; i < lanes; i++ {
			dst[i] = r
		}
	}
}

// fequalOp is the float counterpart with IEEE equality, so a NaN lane makes
// all-equal false and any-not-equal true.
func fequalOp(n int, all bool, outBits int) evalFn {
	return func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		eq := true
		for i := 0; i < n; i++ {
			if loadFloat64(src[0][i], bits) != loadFloat64(src[1][i], bits) {
				eq = false
				break
			}
		}
		r := nir.Bool(outBits, eq == all)
		for i := 0; i < lanes; i++ {
			dst[i] = r
		}
	}
}
