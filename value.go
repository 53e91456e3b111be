package nir

import "math"

// Value is one lane of a constant: a 64-bit storage cell with no type tag.
// The opcode being evaluated decides how the bits are read; every
// reinterpretation is explicit through the accessors below, never inferred
// from stored state.
//
// Canonical form: bits above the value's declared size are zero. The
// constructors mask on write and Int sign-extends on read, so a Value can be
// compared bit-for-bit regardless of which width produced it.
type Value struct {
	bits uint64
}

// FromBits wraps a raw bit pattern.
func FromBits(bits uint64) Value { return Value{bits} }

// Bits returns the raw storage.
func (v Value) Bits() uint64 { return v.bits }

// Mask returns the low-bit mask for a width in bits. Widths of 64 or more
// return all ones.
func Mask(size int) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size) - 1
}

// Uint builds an unsigned integer value of the given width.
func Uint(size int, x uint64) Value { return Value{x & Mask(size)} }

// Int builds a signed integer value of the given width, truncating to the
// width's two's-complement range.
func Int(size int, x int64) Value { return Value{uint64(x) & Mask(size)} }

// Float32 builds a 32-bit float value.
func Float32(f float32) Value { return Value{uint64(math.Float32bits(f))} }

// Float64 builds a 64-bit float value.
func Float64(f float64) Value { return Value{math.Float64bits(f)} }

// HalfBits builds a 16-bit float value from its raw binary16 encoding.
func HalfBits(b uint16) Value { return Value{uint64(b)} }

// Bool builds a boolean of the given width using the sentinel convention:
// true is all bits set at that width, false is all bits clear. At width 1
// only bit 0 is stored.
func Bool(size int, b bool) Value {
	if !b {
		return Value{0}
	}
	return Value{Mask(size)}
}

// Uint reads the value as an unsigned integer of the given width.
func (v Value) Uint(size int) uint64 { return v.bits & Mask(size) }

// Int reads the value as a signed integer of the given width,
// sign-extending to 64 bits.
func (v Value) Int(size int) int64 {
	shift := 64 - uint(size)
	return int64(v.bits<<shift) >> shift
}

// Float32 reads the value as a 32-bit float.
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.bits)) }

// Float64 reads the value as a 64-bit float.
func (v Value) Float64() float64 { return math.Float64frombits(v.bits) }

// HalfBits reads the raw binary16 encoding of a 16-bit float value.
func (v Value) HalfBits() uint16 { return uint16(v.bits) }

// IsTrue decodes the boolean sentinel: any set bit means true. This is the
// single point where sentinel values turn back into Go booleans.
func (v Value) IsTrue() bool { return v.bits != 0 }
