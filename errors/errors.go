package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // text to values/opcodes
	PhaseCatalog  Phase = "catalog"  // opcode catalog queries
	PhaseValidate Phase = "validate" // request validation before evaluation
	PhaseFormat   Phase = "format"   // values back to text
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownOp        Kind = "unknown_opcode"
	KindUnsupportedWidth Kind = "unsupported_width"
	KindArityMismatch    Kind = "arity_mismatch"
	KindLaneCount        Kind = "lane_count"
	KindInvalidNumber    Kind = "invalid_number"
	KindInvalidInput     Kind = "invalid_input"
	KindOutOfBounds      Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the tooling
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the opcode name the error relates to
func (b *Builder) Op(name string) *Builder {
	b.err.Op = name
	return b
}

// Path sets the operand path (source index, lane)
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownOp creates an error for a name with no catalog entry
func UnknownOp(name string) *Error {
	return &Error{
		Phase:  PhaseCatalog,
		Kind:   KindUnknownOp,
		Detail: fmt.Sprintf("no opcode named %q", name),
		Value:  name,
	}
}

// UnsupportedWidth creates an error for a bit size the opcode does not declare
func UnsupportedWidth(op string, bits int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindUnsupportedWidth,
		Op:     op,
		Detail: fmt.Sprintf("bit size %d not supported", bits),
		Value:  bits,
	}
}

// ArityMismatch creates an error for the wrong operand count
func ArityMismatch(op string, got, want int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindArityMismatch,
		Op:     op,
		Detail: fmt.Sprintf("got %d operands, want %d", got, want),
		Value:  got,
	}
}

// LaneCount creates an error for a lane count outside what the opcode allows
func LaneCount(op string, got int, detail string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindLaneCount,
		Op:     op,
		Detail: detail,
		Value:  got,
	}
}

// InvalidNumber creates an error for text that does not parse as a lane value
func InvalidNumber(path []string, text string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidNumber,
		Path:   path,
		Detail: fmt.Sprintf("cannot parse %q", text),
		Value:  text,
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}
