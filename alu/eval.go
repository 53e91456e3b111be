package alu

import (
	"fmt"

	nir "github.com/xandfury/external-mesa3d"
)

// evalFn computes one opcode: it reads src lanes and writes dst lanes.
// bits is the resolved bit size for the op's unsized types (0 for fully
// sized ops).
type evalFn func(dst []nir.Value, lanes, bits int, src [][]nir.Value)

// handlers maps opcodes to their semantics routines. Each category file
// registers its ops from init; SelfCheck verifies the table is complete.
var handlers [numOps]evalFn

func register(op Op, fn evalFn) {
	if handlers[op] != nil {
		panic(fmt.Sprintf("alu: duplicate handler for %s", op))
	}
	handlers[op] = fn
}

// Evaluate computes op over constant operands, writing the results to dst.
//
// lanes is the instruction's vector width, in [1,4]; for ops with a fixed
// output shape (packs, vector construction) it must equal that shape.
// bits selects the width of the op's unsized operand/result types and must
// be one the catalog declares; fully sized ops take bits == 0. Each src
// slice needs lanes entries, or the fixed operand length the catalog
// declares for that source.
//
// Violating any of these is a caller bug against a closed catalog, not a
// recoverable condition: Evaluate panics rather than computing garbage.
// There are no side effects beyond writing dst, and identical inputs always
// produce identical outputs.
func Evaluate(op Op, dst []nir.Value, lanes, bits int, src ...[]nir.Value) {
	if !op.Valid() {
		contract("unknown opcode %d", int(op))
	}
	info := &catalog[op]
	debugf("evaluate %s lanes=%d bits=%d", info.Name, lanes, bits)

	if len(src) != info.NumSrcs {
		contract("%s: got %d operands, want %d", info.Name, len(src), info.NumSrcs)
	}
	if info.Widths != 0 {
		if !info.Widths.Has(bits) {
			contract("%s: unsupported bit size %d", info.Name, bits)
		}
	} else if bits != 0 {
		contract("%s: fully sized op called with bit size %d", info.Name, bits)
	}
	if lanes < 1 || lanes > 4 {
		contract("%s: lane count %d outside [1,4]", info.Name, lanes)
	}
	if info.OutLen != 0 && lanes != info.OutLen {
		contract("%s: lane count %d, op produces %d", info.Name, lanes, info.OutLen)
	}
	if len(dst) < lanes {
		contract("%s: result buffer holds %d lanes, need %d", info.Name, len(dst), lanes)
	}
	for i := 0; i < info.NumSrcs; i++ {
		need := info.SrcLen[i]
		if need == 0 {
			need = lanes
		}
		if len(src[i]) < need {
			contract("%s: operand %d holds %d lanes, need %d", info.Name, i, len(src[i]), need)
		}
	}

	handlers[op](dst, lanes, bits, src)
}

// contract reports a programming-contract violation. The catalog is closed
// and exhaustive, so these can only come from a caller bug; aborting beats
// silently folding a wrong constant into a shader.
func contract(format string, args ...any) {
	msg := "alu: " + fmt.Sprintf(format, args...)
	debugf("%s", msg)
	panic(msg)
}
