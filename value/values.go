package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the variant tag of a value. Operators are dispatched on kinds.
type Kind uint8

// The closed set of value kinds.
const (
	NoKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	ListKind
	TupleKind
	BlockKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case ListKind:
		return "list"
	case TupleKind:
		return "tuple"
	case BlockKind:
		return "block"
	}
	return "<none>"
}

// Value is the interface all runtime values implement. String returns the
// inspection format of a value, i.e. source text which evaluates to an equal value.
type Value interface {
	Kind() Kind
	String() string
}

// Bool is a boolean value.
type Bool bool

// True and False are the two boolean values.
const (
	True  = Bool(true)
	False = Bool(false)
)

func (b Bool) Kind() Kind { return BoolKind }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int is a signed 64-bit integer value. Arithmetic wraps on overflow.
type Int int64

func (n Int) Kind() Kind { return IntKind }

func (n Int) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Float is a floating point value.
type Float float64

func (f Float) Kind() Kind { return FloatKind }

// String always renders a decimal point or an exponent, so that a float
// re-parses as a float. Infinities render as out-of-range literals, which
// parse back to infinities. NaN renders as "NaN" and does not re-parse.
func (f Float) String() string {
	x := float64(f)
	switch {
	case math.IsInf(x, 1):
		return "1e999"
	case math.IsInf(x, -1):
		return "-1e999"
	case math.IsNaN(x):
		return "NaN"
	}
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// String is an immutable string value. Use string(s) to get the raw text;
// s.String() returns the quoted form.
type String string

func (s String) Kind() Kind { return StringKind }

func (s String) String() string {
	return strconv.Quote(string(s))
}

// --- Lists -----------------------------------------------------------------

// List is an ordered sequence of values, shared by identity. Always use *List.
// Aliases of a list see the same elements.
type List struct {
	Elems []Value
}

// NewList creates a new list, taking ownership of elems.
func NewList(elems []Value) *List {
	return &List{Elems: elems}
}

func (l *List) Kind() Kind { return ListKind }

func (l *List) String() string {
	return "[" + joinValues(l.Elems) + "]"
}

// Len returns the number of elements of l.
func (l *List) Len() int {
	return len(l.Elems)
}

// --- Tuples ----------------------------------------------------------------

// Tuple is an immutable sequence of values, compared structurally.
type Tuple struct {
	elems []Value
}

// NewTuple creates a tuple from a copy of elems.
func NewTuple(elems ...Value) Tuple {
	t := Tuple{elems: make([]Value, len(elems))}
	copy(t.elems, elems)
	return t
}

func (t Tuple) Kind() Kind { return TupleKind }

func (t Tuple) String() string {
	return "(" + joinValues(t.elems) + ")"
}

// Len returns the number of elements of t.
func (t Tuple) Len() int {
	return len(t.elems)
}

// Elements returns a copy of the elements of t.
func (t Tuple) Elements() []Value {
	e := make([]Value, len(t.elems))
	copy(e, t.elems)
	return e
}

// --- Blocks ----------------------------------------------------------------

// Block is an immutable, unevaluated sequence of symbols.
type Block struct {
	body []Symbol
}

// NewBlock creates a block. The block takes ownership of body, which must not
// be modified afterwards.
func NewBlock(body []Symbol) Block {
	return Block{body: body}
}

func (b Block) Kind() Kind { return BlockKind }

func (b Block) String() string {
	if len(b.body) == 0 {
		return "{}"
	}
	return "{ " + joinSymbols(b.body) + " }"
}

// Symbols returns the body of a block. Clients must not modify it.
func (b Block) Symbols() []Symbol {
	return b.body
}

// Len returns the number of top-level symbols of b.
func (b Block) Len() int {
	return len(b.body)
}

// ---------------------------------------------------------------------------

func joinValues(vals []Value) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = v.String()
	}
	return strings.Join(s, " ")
}

// KindNames returns the kind names of a list of values, for error messages.
func KindNames(vals ...Value) []string {
	names := make([]string, len(vals))
	for i, v := range vals {
		if v == nil {
			names[i] = "<nil>"
			continue
		}
		names[i] = v.Kind().String()
	}
	return names
}

var _ Value = True
var _ Value = Int(0)
var _ Value = Float(0)
var _ Value = String("")
var _ Value = (*List)(nil)
var _ Value = Tuple{}
var _ Value = Block{}
