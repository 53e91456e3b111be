package alu

// Info describes one opcode: diagnostic name, operand arity and types,
// operand/result vector shape, and the supported bit sizes. The table is
// pure metadata; the dispatcher consults it to validate calls and tools use
// it to present the catalog. Behavior lives in the handler table (eval.go).
type Info struct {
	Name    string
	NumSrcs int
	Src     [4]Type
	SrcLen  [4]int // 0 = per-lane; N = fixed whole-vector operand of N lanes
	Out     Type
	OutLen  int       // 0 = lane count; N = fixed lane count
	Widths  WidthMask // bit sizes for unsized types; 0 = fully sized op
}

// Type shorthands for the table.
var (
	tF   = Type{ClassFloat, 0}
	tF16 = Type{ClassFloat, 16}
	tF32 = Type{ClassFloat, 32}
	tF64 = Type{ClassFloat, 64}
	tI   = Type{ClassInt, 0}
	tI1  = Type{ClassInt, 1}
	tI8  = Type{ClassInt, 8}
	tI16 = Type{ClassInt, 16}
	tI32 = Type{ClassInt, 32}
	tI64 = Type{ClassInt, 64}
	tU   = Type{ClassUint, 0}
	tU1  = Type{ClassUint, 1}
	tU8  = Type{ClassUint, 8}
	tU16 = Type{ClassUint, 16}
	tU32 = Type{ClassUint, 32}
	tU64 = Type{ClassUint, 64}
	tB   = Type{ClassBool, 0}
	tB1  = Type{ClassBool, 1}
	tB32 = Type{ClassBool, 32}
)

// elem builds an elementwise op: n operands and the result all share one
// type.
func elem(name string, t Type, n int, w WidthMask) Info {
	in := Info{Name: name, NumSrcs: n, Out: t, Widths: w}
	for i := 0; i < n; i++ {
		in.Src[i] = t
	}
	return in
}

// conv builds a single-operand conversion; the destination width is baked
// into out, the mask constrains the source width.
func conv(name string, src Type, w WidthMask, out Type) Info {
	return Info{Name: name, NumSrcs: 1, Src: [4]Type{src}, Out: out, Widths: w}
}

// cmp builds a two-operand comparison with a sized boolean (or legacy
// float) result.
func cmp(name string, src Type, w WidthMask, out Type) Info {
	return Info{Name: name, NumSrcs: 2, Src: [4]Type{src, src}, Out: out, Widths: w}
}

// reduce builds a whole-vector reduction: two fixed-length vector operands,
// scalar result broadcast to every requested output lane.
func reduce(name string, src Type, w WidthMask, n int, out Type) Info {
	return Info{Name: name, NumSrcs: 2, Src: [4]Type{src, src}, SrcLen: [4]int{n, n}, Out: out, Widths: w}
}

var catalog = [numOps]Info{
	OpMov:  {Name: "mov", NumSrcs: 1, Src: [4]Type{tU}, Out: tU, Widths: WAll},
	OpVec2: {Name: "vec2", NumSrcs: 2, Src: [4]Type{tU, tU}, SrcLen: [4]int{1, 1}, Out: tU, OutLen: 2, Widths: WAll},
	OpVec3: {Name: "vec3", NumSrcs: 3, Src: [4]Type{tU, tU, tU}, SrcLen: [4]int{1, 1, 1}, Out: tU, OutLen: 3, Widths: WAll},
	OpVec4: {Name: "vec4", NumSrcs: 4, Src: [4]Type{tU, tU, tU, tU}, SrcLen: [4]int{1, 1, 1, 1}, Out: tU, OutLen: 4, Widths: WAll},

	OpF2F16:     conv("f2f16", tF, W32|W64, tF16),
	OpF2F16RTNE: conv("f2f16_rtne", tF, W32|W64, tF16),
	OpF2F16RTZ:  conv("f2f16_rtz", tF, W32|W64, tF16),
	OpF2F32:     conv("f2f32", tF, W16|W64, tF32),
	OpF2F64:     conv("f2f64", tF, W16|W32, tF64),
	OpI2F16:     conv("i2f16", tI, WInt, tF16),
	OpI2F32:     conv("i2f32", tI, WInt, tF32),
	OpI2F64:     conv("i2f64", tI, WInt, tF64),
	OpU2F16:     conv("u2f16", tU, WInt, tF16),
	OpU2F32:     conv("u2f32", tU, WInt, tF32),
	OpU2F64:     conv("u2f64", tU, WInt, tF64),
	OpF2I8:      conv("f2i8", tF, WFloat, tI8),
	OpF2I16:     conv("f2i16", tF, WFloat, tI16),
	OpF2I32:     conv("f2i32", tF, WFloat, tI32),
	OpF2I64:     conv("f2i64", tF, WFloat, tI64),
	OpF2U8:      conv("f2u8", tF, WFloat, tU8),
	OpF2U16:     conv("f2u16", tF, WFloat, tU16),
	OpF2U32:     conv("f2u32", tF, WFloat, tU32),
	OpF2U64:     conv("f2u64", tF, WFloat, tU64),
	OpI2I1:      conv("i2i1", tI, WInt, tI1),
	OpI2I8:      conv("i2i8", tI, W1|W16|W32|W64, tI8),
	OpI2I16:     conv("i2i16", tI, W1|W8|W32|W64, tI16),
	OpI2I32:     conv("i2i32", tI, W1|W8|W16|W64, tI32),
	OpI2I64:     conv("i2i64", tI, W1|W8|W16|W32, tI64),
	OpU2U1:      conv("u2u1", tU, WInt, tU1),
	OpU2U8:      conv("u2u8", tU, W1|W16|W32|W64, tU8),
	OpU2U16:     conv("u2u16", tU, W1|W8|W32|W64, tU16),
	OpU2U32:     conv("u2u32", tU, W1|W8|W16|W64, tU32),
	OpU2U64:     conv("u2u64", tU, W1|W8|W16|W32, tU64),
	OpB2F16:     conv("b2f16", tB, WBool, tF16),
	OpB2F32:     conv("b2f32", tB, WBool, tF32),
	OpB2F64:     conv("b2f64", tB, WBool, tF64),
	OpB2I1:      conv("b2i1", tB, WBool, tI1),
	OpB2I8:      conv("b2i8", tB, WBool, tI8),
	OpB2I16:     conv("b2i16", tB, WBool, tI16),
	OpB2I32:     conv("b2i32", tB, WBool, tI32),
	OpB2I64:     conv("b2i64", tB, WBool, tI64),
	OpB2B1:      conv("b2b1", tB, W32, tB1),
	OpB2B32:     conv("b2b32", tB, W1, tB32),
	OpI2B1:      conv("i2b1", tI, WAll, tB1),
	OpI2B32:     conv("i2b32", tI, WAll, tB32),
	OpF2B1:      conv("f2b1", tF, WFloat, tB1),
	OpF2B32:     conv("f2b32", tF, WFloat, tB32),

	OpFQuantize2F16: {Name: "fquantize2f16", NumSrcs: 1, Src: [4]Type{tF32}, Out: tF32},

	OpFAdd:       elem("fadd", tF, 2, WFloat),
	OpFSub:       elem("fsub", tF, 2, WFloat),
	OpFMul:       elem("fmul", tF, 2, WFloat),
	OpFDiv:       elem("fdiv", tF, 2, WFloat),
	OpFRem:       elem("frem", tF, 2, WFloat),
	OpFMod:       elem("fmod", tF, 2, WFloat),
	OpFAbs:       elem("fabs", tF, 1, WFloat),
	OpFNeg:       elem("fneg", tF, 1, WFloat),
	OpFSign:      elem("fsign", tF, 1, WFloat),
	OpFMin:       elem("fmin", tF, 2, WFloat),
	OpFMax:       elem("fmax", tF, 2, WFloat),
	OpFMin3:      elem("fmin3", tF, 3, WFloat),
	OpFMax3:      elem("fmax3", tF, 3, WFloat),
	OpFMed3:      elem("fmed3", tF, 3, WFloat),
	OpFFma:       elem("ffma", tF, 3, WFloat),
	OpFLrp:       elem("flrp", tF, 3, WFloat),
	OpFSat:       elem("fsat", tF, 1, WFloat),
	OpFFloor:     elem("ffloor", tF, 1, WFloat),
	OpFCeil:      elem("fceil", tF, 1, WFloat),
	OpFFract:     elem("ffract", tF, 1, WFloat),
	OpFTrunc:     elem("ftrunc", tF, 1, WFloat),
	OpFRoundEven: elem("fround_even", tF, 1, WFloat),
	OpFSqrt:      elem("fsqrt", tF, 1, WFloat),
	OpFRcp:       elem("frcp", tF, 1, WFloat),
	OpFRsq:       elem("frsq", tF, 1, WFloat),
	OpFExp2:      elem("fexp2", tF, 1, WFloat),
	OpFLog2:      elem("flog2", tF, 1, WFloat),
	OpFPow:       elem("fpow", tF, 2, WFloat),
	OpFSin:       elem("fsin", tF, 1, WFloat),
	OpFCos:       elem("fcos", tF, 1, WFloat),
	OpLdexp:      {Name: "ldexp", NumSrcs: 2, Src: [4]Type{tF, tI32}, Out: tF, Widths: WFloat},
	OpFrexpSig:   {Name: "frexp_sig", NumSrcs: 1, Src: [4]Type{tF}, Out: tF, Widths: WFloat},
	OpFrexpExp:   {Name: "frexp_exp", NumSrcs: 1, Src: [4]Type{tF}, Out: tI32, Widths: WFloat},

	OpFLt:    cmp("flt", tF, WFloat, tB1),
	OpFGe:    cmp("fge", tF, WFloat, tB1),
	OpFEq:    cmp("feq", tF, WFloat, tB1),
	OpFNeu:   cmp("fneu", tF, WFloat, tB1),
	OpFLt32:  cmp("flt32", tF, WFloat, tB32),
	OpFGe32:  cmp("fge32", tF, WFloat, tB32),
	OpFEq32:  cmp("feq32", tF, WFloat, tB32),
	OpFNeu32: cmp("fneu32", tF, WFloat, tB32),
	OpSLt:    cmp("slt", tF, WFloat, tF),
	OpSGe:    cmp("sge", tF, WFloat, tF),
	OpSEq:    cmp("seq", tF, WFloat, tF),
	OpSNe:    cmp("sne", tF, WFloat, tF),
	OpILt:    cmp("ilt", tI, WInt, tB1),
	OpIGe:    cmp("ige", tI, WInt, tB1),
	OpIEq:    cmp("ieq", tI, WAll, tB1),
	OpINe:    cmp("ine", tI, WAll, tB1),
	OpULt:    cmp("ult", tU, WInt, tB1),
	OpUGe:    cmp("uge", tU, WInt, tB1),
	OpILt32:  cmp("ilt32", tI, WInt, tB32),
	OpIGe32:  cmp("ige32", tI, WInt, tB32),
	OpIEq32:  cmp("ieq32", tI, WAll, tB32),
	OpINe32:  cmp("ine32", tI, WAll, tB32),
	OpULt32:  cmp("ult32", tU, WInt, tB32),
	OpUGe32:  cmp("uge32", tU, WInt, tB32),

	OpBCSel:   {Name: "bcsel", NumSrcs: 3, Src: [4]Type{tB1, tU, tU}, Out: tU, Widths: WAll},
	OpB32CSel: {Name: "b32csel", NumSrcs: 3, Src: [4]Type{tB32, tU, tU}, Out: tU, Widths: WAll},
	OpFCSel:   {Name: "fcsel", NumSrcs: 3, Src: [4]Type{tF32, tF32, tF32}, Out: tF32},

	OpIAdd:       elem("iadd", tI, 2, WInt),
	OpISub:       elem("isub", tI, 2, WInt),
	OpIMul:       elem("imul", tI, 2, WInt),
	OpINeg:       elem("ineg", tI, 1, WInt),
	OpIAbs:       elem("iabs", tI, 1, WInt),
	OpISign:      elem("isign", tI, 1, WInt),
	OpIDiv:       elem("idiv", tI, 2, WInt),
	OpUDiv:       elem("udiv", tU, 2, WInt),
	OpIRem:       elem("irem", tI, 2, WInt),
	OpUMod:       elem("umod", tU, 2, WInt),
	OpIMod:       elem("imod", tI, 2, WInt),
	OpIMin:       elem("imin", tI, 2, WInt),
	OpIMax:       elem("imax", tI, 2, WInt),
	OpUMin:       elem("umin", tU, 2, WInt),
	OpUMax:       elem("umax", tU, 2, WInt),
	OpIMin3:      elem("imin3", tI, 3, WInt),
	OpIMax3:      elem("imax3", tI, 3, WInt),
	OpIMed3:      elem("imed3", tI, 3, WInt),
	OpUMin3:      elem("umin3", tU, 3, WInt),
	OpUMax3:      elem("umax3", tU, 3, WInt),
	OpUMed3:      elem("umed3", tU, 3, WInt),
	OpIAddSat:    elem("iadd_sat", tI, 2, WInt),
	OpISubSat:    elem("isub_sat", tI, 2, WInt),
	OpUAddSat:    elem("uadd_sat", tU, 2, WInt),
	OpUSubSat:    elem("usub_sat", tU, 2, WInt),
	OpUAddCarry:  elem("uadd_carry", tU, 2, WInt),
	OpUSubBorrow: elem("usub_borrow", tU, 2, WInt),
	OpIHadd:      elem("ihadd", tI, 2, WInt),
	OpUHadd:      elem("uhadd", tU, 2, WInt),
	OpIRhadd:     elem("irhadd", tI, 2, WInt),
	OpURhadd:     elem("urhadd", tU, 2, WInt),
	OpIMulHigh:   elem("imul_high", tI, 2, WInt),
	OpUMulHigh:   elem("umul_high", tU, 2, WInt),

	OpUMul24:      {Name: "umul24", NumSrcs: 2, Src: [4]Type{tU32, tU32}, Out: tU32},
	OpIMul2x32_64: {Name: "imul_2x32_64", NumSrcs: 2, Src: [4]Type{tI32, tI32}, Out: tI64},
	OpUMul2x32_64: {Name: "umul_2x32_64", NumSrcs: 2, Src: [4]Type{tU32, tU32}, Out: tU64},

	OpIShl: {Name: "ishl", NumSrcs: 2, Src: [4]Type{tI, tU32}, Out: tI, Widths: WInt},
	OpIShr: {Name: "ishr", NumSrcs: 2, Src: [4]Type{tI, tU32}, Out: tI, Widths: WInt},
	OpUShr: {Name: "ushr", NumSrcs: 2, Src: [4]Type{tU, tU32}, Out: tU, Widths: WInt},
	OpURol: {Name: "urol", NumSrcs: 2, Src: [4]Type{tU, tU32}, Out: tU, Widths: WInt},
	OpURor: {Name: "uror", NumSrcs: 2, Src: [4]Type{tU, tU32}, Out: tU, Widths: WInt},

	OpINot: elem("inot", tI, 1, WAll),
	OpIAnd: elem("iand", tU, 2, WAll),
	OpIOr:  elem("ior", tU, 2, WAll),
	OpIXor: elem("ixor", tU, 2, WAll),

	OpBitfieldInsert:   {Name: "bitfield_insert", NumSrcs: 4, Src: [4]Type{tU32, tU32, tI32, tI32}, Out: tU32},
	OpUBitfieldExtract: {Name: "ubitfield_extract", NumSrcs: 3, Src: [4]Type{tU32, tI32, tI32}, Out: tU32},
	OpIBitfieldExtract: {Name: "ibitfield_extract", NumSrcs: 3, Src: [4]Type{tI32, tI32, tI32}, Out: tI32},
	OpUBfe:             {Name: "ubfe", NumSrcs: 3, Src: [4]Type{tU32, tU32, tU32}, Out: tU32},
	OpIBfe:             {Name: "ibfe", NumSrcs: 3, Src: [4]Type{tI32, tU32, tU32}, Out: tI32},
	OpBfm:              {Name: "bfm", NumSrcs: 2, Src: [4]Type{tI32, tI32}, Out: tU32},
	OpBfi:              {Name: "bfi", NumSrcs: 3, Src: [4]Type{tU32, tU32, tU32}, Out: tU32},
	OpBitfieldReverse:  {Name: "bitfield_reverse", NumSrcs: 1, Src: [4]Type{tU32}, Out: tU32},
	OpBitCount:         {Name: "bit_count", NumSrcs: 1, Src: [4]Type{tU}, Out: tU32, Widths: WInt},
	OpFindLSB:          {Name: "find_lsb", NumSrcs: 1, Src: [4]Type{tI}, Out: tI32, Widths: WInt},
	OpIFindMSB:         {Name: "ifind_msb", NumSrcs: 1, Src: [4]Type{tI}, Out: tI32, Widths: WInt},
	OpUFindMSB:         {Name: "ufind_msb", NumSrcs: 1, Src: [4]Type{tU}, Out: tI32, Widths: WInt},
	OpExtractU8:        {Name: "extract_u8", NumSrcs: 2, Src: [4]Type{tU, tU32}, Out: tU, Widths: W16 | W32 | W64},
	OpExtractI8:        {Name: "extract_i8", NumSrcs: 2, Src: [4]Type{tI, tU32}, Out: tI, Widths: W16 | W32 | W64},
	OpExtractU16:       {Name: "extract_u16", NumSrcs: 2, Src: [4]Type{tU, tU32}, Out: tU, Widths: W32 | W64},
	OpExtractI16:       {Name: "extract_i16", NumSrcs: 2, Src: [4]Type{tI, tU32}, Out: tI, Widths: W32 | W64},
	OpInsertU8:         {Name: "insert_u8", NumSrcs: 2, Src: [4]Type{tU, tU32}, Out: tU, Widths: W16 | W32 | W64},
	OpInsertU16:        {Name: "insert_u16", NumSrcs: 2, Src: [4]Type{tU, tU32}, Out: tU, Widths: W32 | W64},

	OpFDot2: reduce("fdot2", tF, WFloat, 2, tF),
	OpFDot3: reduce("fdot3", tF, WFloat, 3, tF),
	OpFDot4: reduce("fdot4", tF, WFloat, 4, tF),
	OpFDph:  {Name: "fdph", NumSrcs: 2, Src: [4]Type{tF, tF}, SrcLen: [4]int{3, 4}, Out: tF, Widths: WFloat},

	OpBAllIEqual2:    reduce("ball_iequal2", tI, WAll, 2, tB1),
	OpBAllIEqual3:    reduce("ball_iequal3", tI, WAll, 3, tB1),
	OpBAllIEqual4:    reduce("ball_iequal4", tI, WAll, 4, tB1),
	OpBAllFEqual2:    reduce("ball_fequal2", tF, WFloat, 2, tB1),
	OpBAllFEqual3:    reduce("ball_fequal3", tF, WFloat, 3, tB1),
	OpBAllFEqual4:    reduce("ball_fequal4", tF, WFloat, 4, tB1),
	OpBAnyINequal2:   reduce("bany_inequal2", tI, WAll, 2, tB1),
	OpBAnyINequal3:   reduce("bany_inequal3", tI, WAll, 3, tB1),
	OpBAnyINequal4:   reduce("bany_inequal4", tI, WAll, 4, tB1),
	OpBAnyFNequal2:   reduce("bany_fnequal2", tF, WFloat, 2, tB1),
	OpBAnyFNequal3:   reduce("bany_fnequal3", tF, WFloat, 3, tB1),
	OpBAnyFNequal4:   reduce("bany_fnequal4", tF, WFloat, 4, tB1),
	OpB32AllIEqual2:  reduce("b32all_iequal2", tI, WAll, 2, tB32),
	OpB32AllIEqual3:  reduce("b32all_iequal3", tI, WAll, 3, tB32),
	OpB32AllIEqual4:  reduce("b32all_iequal4", tI, WAll, 4, tB32),
	OpB32AllFEqual2:  reduce("b32all_fequal2", tF, WFloat, 2, tB32),
	OpB32AllFEqual3:  reduce("b32all_fequal3", tF, WFloat, 3, tB32),
	OpB32AllFEqual4:  reduce("b32all_fequal4", tF, WFloat, 4, tB32),
	OpB32AnyINequal2: reduce("b32any_inequal2", tI, WAll, 2, tB32),
	OpB32AnyINequal3: reduce("b32any_inequal3", tI, WAll, 3, tB32),
	OpB32AnyINequal4: reduce("b32any_inequal4", tI, WAll, 4, tB32),
	OpB32AnyFNequal2: reduce("b32any_fnequal2", tF, WFloat, 2, tB32),
	OpB32AnyFNequal3: reduce("b32any_fnequal3", tF, WFloat, 3, tB32),
	OpB32AnyFNequal4: reduce("b32any_fnequal4", tF, WFloat, 4, tB32),

	OpPackSnorm2x16:     {Name: "pack_snorm_2x16", NumSrcs: 1, Src: [4]Type{tF32}, SrcLen: [4]int{2}, Out: tU32, OutLen: 1},
	OpPackSnorm4x8:      {Name: "pack_snorm_4x8", NumSrcs: 1, Src: [4]Type{tF32}, SrcLen: [4]int{4}, Out: tU32, OutLen: 1},
	OpPackUnorm2x16:     {Name: "pack_unorm_2x16", NumSrcs: 1, Src: [4]Type{tF32}, SrcLen: [4]int{2}, Out: tU32, OutLen: 1},
	OpPackUnorm4x8:      {Name: "pack_unorm_4x8", NumSrcs: 1, Src: [4]Type{tF32}, SrcLen: [4]int{4}, Out: tU32, OutLen: 1},
	OpPackHalf2x16:      {Name: "pack_half_2x16", NumSrcs: 1, Src: [4]Type{tF32}, SrcLen: [4]int{2}, Out: tU32, OutLen: 1},
	OpPackHalf2x16Split: {Name: "pack_half_2x16_split", NumSrcs: 2, Src: [4]Type{tF32, tF32}, SrcLen: [4]int{1, 1}, Out: tU32, OutLen: 1},
	OpPack32_2x16:       {Name: "pack_32_2x16", NumSrcs: 1, Src: [4]Type{tU16}, SrcLen: [4]int{2}, Out: tU32, OutLen: 1},
	OpPack32_2x16Split:  {Name: "pack_32_2x16_split", NumSrcs: 2, Src: [4]Type{tU16, tU16}, SrcLen: [4]int{1, 1}, Out: tU32, OutLen: 1},
	OpPack64_2x32:       {Name: "pack_64_2x32", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{2}, Out: tU64, OutLen: 1},
	OpPack64_2x32Split:  {Name: "pack_64_2x32_split", NumSrcs: 2, Src: [4]Type{tU32, tU32}, SrcLen: [4]int{1, 1}, Out: tU64, OutLen: 1},
	OpPack64_4x16:       {Name: "pack_64_4x16", NumSrcs: 1, Src: [4]Type{tU16}, SrcLen: [4]int{4}, Out: tU64, OutLen: 1},

	OpUnpackSnorm2x16:      {Name: "unpack_snorm_2x16", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tF32, OutLen: 2},
	OpUnpackSnorm4x8:       {Name: "unpack_snorm_4x8", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tF32, OutLen: 4},
	OpUnpackUnorm2x16:      {Name: "unpack_unorm_2x16", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tF32, OutLen: 2},
	OpUnpackUnorm4x8:       {Name: "unpack_unorm_4x8", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tF32, OutLen: 4},
	OpUnpackHalf2x16:       {Name: "unpack_half_2x16", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tF32, OutLen: 2},
	OpUnpackHalf2x16SplitX: {Name: "unpack_half_2x16_split_x", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tF32, OutLen: 1},
	OpUnpackHalf2x16SplitY: {Name: "unpack_half_2x16_split_y", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tF32, OutLen: 1},
	OpUnpack32_2x16:        {Name: "unpack_32_2x16", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tU16, OutLen: 2},
	OpUnpack32_2x16SplitX:  {Name: "unpack_32_2x16_split_x", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tU16, OutLen: 1},
	OpUnpack32_2x16SplitY:  {Name: "unpack_32_2x16_split_y", NumSrcs: 1, Src: [4]Type{tU32}, SrcLen: [4]int{1}, Out: tU16, OutLen: 1},
	OpUnpack64_2x32:        {Name: "unpack_64_2x32", NumSrcs: 1, Src: [4]Type{tU64}, SrcLen: [4]int{1}, Out: tU32, OutLen: 2},
	OpUnpack64_2x32SplitX:  {Name: "unpack_64_2x32_split_x", NumSrcs: 1, Src: [4]Type{tU64}, SrcLen: [4]int{1}, Out: tU32, OutLen: 1},
	OpUnpack64_2x32SplitY:  {Name: "unpack_64_2x32_split_y", NumSrcs: 1, Src: [4]Type{tU64}, SrcLen: [4]int{1}, Out: tU32, OutLen: 1},
	OpUnpack64_4x16:        {Name: "unpack_64_4x16", NumSrcs: 1, Src: [4]Type{tU64}, SrcLen: [4]int{1}, Out: tU16, OutLen: 4},
}
