package alu

// Class is the interpretation class of an operand or result. The evaluator
// never tags values at rest; the opcode's declared class decides how the
// raw bits of a nir.Value are read.
type Class uint8

const (
	ClassFloat Class = iota
	ClassInt
	ClassUint
	ClassBool
)

func (c Class) String() string {
	switch c {
	case ClassFloat:
		return "float"
	case ClassInt:
		return "int"
	case ClassUint:
		return "uint"
	case ClassBool:
		return "bool"
	}
	return "invalid"
}

// Type pairs a class with a bit size. Size 0 marks an unsized type that
// takes the bit size passed to Evaluate; the catalog's width mask says
// which sizes are legal there.
type Type struct {
	Class Class
	Size  int
}

// Sized reports whether the type carries a fixed bit size.
func (t Type) Sized() bool { return t.Size != 0 }

// WidthMask is the set of bit sizes an opcode's unsized types accept.
type WidthMask uint8

const (
	W1 WidthMask = 1 << iota
	W8
	W16
	W32
	W64
)

// Common masks.
const (
	WInt   = W8 | W16 | W32 | W64 // integer arithmetic widths
	WAll   = W1 | WInt            // bitwise/move widths
	WFloat = W16 | W32 | W64      // float widths
	WBool  = W1 | W32             // boolean storage widths
)

// Has reports whether the mask contains the given bit size.
func (m WidthMask) Has(bits int) bool {
	switch bits {
	case 1:
		return m&W1 != 0
	case 8:
		return m&W8 != 0
	case 16:
		return m&W16 != 0
	case 32:
		return m&W32 != 0
	case 64:
		return m&W64 != 0
	}
	return false
}

// Sizes expands the mask into the list of bit sizes it contains, in
// ascending order.
func (m WidthMask) Sizes() []int {
	var out []int
	for _, s := range []int{1, 8, 16, 32, 64} {
		if m.Has(s) {
			out = append(out, s)
		}
	}
	return out
}
