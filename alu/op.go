package alu

import "sync"

// Op identifies one operation in the closed ALU opcode catalog.
type Op uint16

const (
	// Move and vector construction.
	OpMov Op = iota
	OpVec2
	OpVec3
	OpVec4

	// Type conversions. The destination width is part of the opcode; the
	// bit size passed to Evaluate is the source width.
	OpF2F16
	OpF2F16RTNE
	OpF2F16RTZ
	OpF2F32
	OpF2F64
	OpI2F16
	OpI2F32
	OpI2F64
	OpU2F16
	OpU2F32
	OpU2F64
	OpF2I8
	OpF2I16
	OpF2I32
	OpF2I64
	OpF2U8
	OpF2U16
	OpF2U32
	OpF2U64
	OpI2I1
	OpI2I8
	OpI2I16
	OpI2I32
	OpI2I64
	OpU2U1
	OpU2U8
	OpU2U16
	OpU2U32
	OpU2U64
	OpB2F16
	OpB2F32
	OpB2F64
	OpB2I1
	OpB2I8
	OpB2I16
	OpB2I32
	OpB2I64
	OpB2B1
	OpB2B32
	OpI2B1
	OpI2B32
	OpF2B1
	OpF2B32
	OpFQuantize2F16

	// Float arithmetic.
	OpFAdd
	OpFSub
	OpFMul
	OpFDiv
	OpFRem
	OpFMod
	OpFAbs
	OpFNeg
	OpFSign
	OpFMin
	OpFMax
	OpFMin3
	OpFMax3
	OpFMed3
	OpFFma
	OpFLrp
	OpFSat
	OpFFloor
	OpFCeil
	OpFFract
	OpFTrunc
	OpFRoundEven
	OpFSqrt
	OpFRcp
	OpFRsq
	OpFExp2
	OpFLog2
	OpFPow
	OpFSin
	OpFCos
	OpLdexp
	OpFrexpSig
	OpFrexpExp

	// Comparisons and selects.
	OpFLt
	OpFGe
	OpFEq
	OpFNeu
	OpFLt32
	OpFGe32
	OpFEq32
	OpFNeu32
	OpSLt
	OpSGe
	OpSEq
	OpSNe
	OpILt
	OpIGe
	OpIEq
	OpINe
	OpULt
	OpUGe
	OpILt32
	OpIGe32
	OpIEq32
	OpINe32
	OpULt32
	OpUGe32
	OpBCSel
	OpB32CSel
	OpFCSel

	// Integer arithmetic.
	OpIAdd
	OpISub
	OpIMul
	OpINeg
	OpIAbs
	OpISign
	OpIDiv
	OpUDiv
	OpIRem
	OpUMod
	OpIMod
	OpIMin
	OpIMax
	OpUMin
	OpUMax
	OpIMin3
	OpIMax3
	OpIMed3
	OpUMin3
	OpUMax3
	OpUMed3
	OpIAddSat
	OpISubSat
	OpUAddSat
	OpUSubSat
	OpUAddCarry
	OpUSubBorrow
	OpIHadd
	OpUHadd
	OpIRhadd
	OpURhadd
	OpIMulHigh
	OpUMulHigh
	OpUMul24
	OpIMul2x32_64
	OpUMul2x32_64
	OpIShl
	OpIShr
	OpUShr
	OpURol
	OpURor
	OpINot
	OpIAnd
	OpIOr
	OpIXor

	// Bitfield manipulation.
	OpBitfieldInsert
	OpUBitfieldExtract
	OpIBitfieldExtract
	OpUBfe
	OpIBfe
	OpBfm
	OpBfi
	OpBitfieldReverse
	OpBitCount
	OpFindLSB
	OpIFindMSB
	OpUFindMSB
	OpExtractU8
	OpExtractI8
	OpExtractU16
	OpExtractI16
	OpInsertU8
	OpInsertU16

	// Whole-vector reductions.
	OpFDot2
	OpFDot3
	OpFDot4
	OpFDph
	OpBAllIEqual2
	OpBAllIEqual3
	OpBAllIEqual4
	OpBAllFEqual2
	OpBAllFEqual3
	OpBAllFEqual4
	OpBAnyINequal2
	OpBAnyINequal3
	OpBAnyINequal4
	OpBAnyFNequal2
	OpBAnyFNequal3
	OpBAnyFNequal4
	OpB32AllIEqual2
	OpB32AllIEqual3
	OpB32AllIEqual4
	OpB32AllFEqual2
	OpB32AllFEqual3
	OpB32AllFEqual4
	OpB32AnyINequal2
	OpB32AnyINequal3
	OpB32AnyINequal4
	OpB32AnyFNequal2
	OpB32AnyFNequal3
	OpB32AnyFNequal4

	// Pack/unpack codecs.
	OpPackSnorm2x16
	OpPackSnorm4x8
	OpPackUnorm2x16
	OpPackUnorm4x8
	OpPackHalf2x16
	OpPackHalf2x16Split
	OpPack32_2x16
	OpPack32_2x16Split
	OpPack64_2x32
	OpPack64_2x32Split
	OpPack64_4x16
	OpUnpackSnorm2x16
	OpUnpackSnorm4x8
	OpUnpackUnorm2x16
	OpUnpackUnorm4x8
	OpUnpackHalf2x16
	OpUnpackHalf2x16SplitX
	OpUnpackHalf2x16SplitY
	OpUnpack32_2x16
	OpUnpack32_2x16SplitX
	OpUnpack32_2x16SplitY
	OpUnpack64_2x32
	OpUnpack64_2x32SplitX
	OpUnpack64_2x32SplitY
	OpUnpack64_4x16

	numOps
)

// NumOps is the size of the catalog.
const NumOps = int(numOps)

// Valid reports whether op names a catalog member.
func (op Op) Valid() bool { return op < numOps }

// String returns the opcode's diagnostic name.
func (op Op) String() string {
	if !op.Valid() {
		return "invalid"
	}
	return catalog[op].Name
}

// Info returns the opcode's catalog metadata.
func (op Op) Info() Info {
	return catalog[op]
}

var (
	byNameOnce sync.Once
	byName     map[string]Op
)

// Lookup resolves a diagnostic name to its opcode.
func Lookup(name string) (Op, bool) {
	byNameOnce.Do(func() {
		byName = make(map[string]Op, numOps)
		for op := Op(0); op < numOps; op++ {
			byName[catalog[op].Name] = op
		}
	})
	op, ok := byName[name]
	return op, ok
}

// Ops returns every opcode in catalog order.
func Ops() []Op {
	out := make([]Op, numOps)
	for i := range out {
		out[i] = Op(i)
	}
	return out
}
