package alu

import nir "github.com/xandfury/external-mesa3d"

func init() {
	register(OpMov, func(dst []nir.Value, lanes, bits int, src [][]nir.Value) {
		for i := 0; i < lanes; i++ {
			dst[i] = nir.Uint(bits, src[0][i].Uint(bits))
		}
	})
	register(OpVec2, vecOp(2))
	register(OpVec3, vecOp(3))
	register(OpVec4, vecOp(4))
}

// vecOp gathers n independent scalar operands into the n lanes of one
// vector, truncating each to the evaluation width on the way in.
func vecOp(n int) evalFn {
	return func(dst []nir.Value, _, bits int, src [][]nir.Value) {
		for i := 0; i < n; i++ {
			dst[i] = nir.Uint(bits, src[i][0].Uint(bits))
		}
	}
}
