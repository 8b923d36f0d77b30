package stackscript

import (
	"fmt"
	"strings"
)

// ErrorKind classifies errors raised while evaluating a program.
type ErrorKind int8

// Kinds of evaluation errors. Every error aborts the top-level evaluation.
const (
	NoError        ErrorKind = iota
	StackUnderflow           // not enough visible operands above the protection boundary
	TypeError                // no operator signature matches the operands
	NameError                // a name could not be resolved through the scope chain
	IndexError               // 1-based index out of range
	ArityError               // a block did not produce exactly one value where required
	DivisionError            // division or modulus by zero
	SyntaxError              // source text could not be turned into symbols
	RecursionError           // evaluation nested too deeply
)

func (k ErrorKind) String() string {
	switch k {
	case StackUnderflow:
		return "StackUnderflow"
	case TypeError:
		return "TypeError"
	case NameError:
		return "NameError"
	case IndexError:
		return "IndexError"
	case ArityError:
		return "ArityError"
	case DivisionError:
		return "DivisionError"
	case SyntaxError:
		return "SyntaxError"
	case RecursionError:
		return "RecursionError"
	}
	return "NoError"
}

// Error is the error type for all failures of evaluation. Fields other than
// Kind and Msg are set where they are known.
type Error struct {
	Kind     ErrorKind
	Msg      string
	Op       string   // operator, if any
	Name     string   // unresolved name, if any
	Operands []string // kinds of the offending operands
	Index    int64    // offending index for IndexError
	Span     Span     // position of the symbol being executed
}

// Errorf creates a new error of kind k.
func Errorf(k ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind: k,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	if e.Op != "" {
		b.WriteString("operator '")
		b.WriteString(e.Op)
		b.WriteString("': ")
	}
	b.WriteString(e.Msg)
	if len(e.Operands) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Operands, ", "))
		b.WriteString("]")
	}
	if !e.Span.IsNull() {
		b.WriteString(" at ")
		b.WriteString(e.Span.String())
	}
	return b.String()
}

// Is makes errors.Is match on the error kind, i.e. any two errors of equal kind
// are considered the same.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithOp sets the operator of an error. Returns the error (for chaining).
func (e *Error) WithOp(op string) *Error {
	if e.Op == "" {
		e.Op = op
	}
	return e
}

// At sets the position of an error if it is not yet set.
func (e *Error) At(span Span) *Error {
	if e.Span.IsNull() {
		e.Span = span
	}
	return e
}

// Sentinel errors, to be used with errors.Is.
var (
	ErrStackUnderflow = &Error{Kind: StackUnderflow}
	ErrType           = &Error{Kind: TypeError}
	ErrName           = &Error{Kind: NameError}
	ErrIndex          = &Error{Kind: IndexError}
	ErrArity          = &Error{Kind: ArityError}
	ErrDivision       = &Error{Kind: DivisionError}
	ErrSyntax         = &Error{Kind: SyntaxError}
	ErrRecursion      = &Error{Kind: RecursionError}
)
