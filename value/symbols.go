package value

import (
	"strings"

	"github.com/npillmayer/stackscript"
)

// SymbolType classifies the symbols of a program.
type SymbolType uint8

// Types of symbols. Block groups are resolved into block literals by the
// parser; list and tuple groups remain groups, as their bodies are evaluated.
const (
	NoSymbol SymbolType = iota
	LiteralSymbol
	NameSymbol
	OperatorSymbol
	GroupSymbol
)

// GroupKind tells which kind of value a group symbol produces.
type GroupKind uint8

// Kinds of groups.
const (
	NoGroup    GroupKind = iota
	ListGroup            // [ … ]
	TupleGroup           // ( … )
)

// Symbol is a classified, already parsed element of a program.
type Symbol struct {
	Type  SymbolType
	Value Value     // value of a literal
	Name  string    // name or operator
	Group GroupKind // kind of a group
	Body  []Symbol  // body of a group
	Span  stackscript.Span
}

// Literal creates a literal symbol.
func Literal(v Value) Symbol {
	return Symbol{Type: LiteralSymbol, Value: v}
}

// Ident creates a name symbol.
func Ident(name string) Symbol {
	return Symbol{Type: NameSymbol, Name: name}
}

// Operator creates an operator symbol.
func Operator(op string) Symbol {
	return Symbol{Type: OperatorSymbol, Name: op}
}

// Group creates a list or tuple group.
func Group(kind GroupKind, body ...Symbol) Symbol {
	return Symbol{Type: GroupSymbol, Group: kind, Body: body}
}

// BlockLiteral creates a literal symbol for a block with the given body.
func BlockLiteral(body ...Symbol) Symbol {
	return Literal(NewBlock(body))
}

// WithSpan sets the input position of a symbol.
func (sym Symbol) WithSpan(span stackscript.Span) Symbol {
	sym.Span = span
	return sym
}

// String returns source text for a symbol.
func (sym Symbol) String() string {
	switch sym.Type {
	case LiteralSymbol:
		return sym.Value.String()
	case NameSymbol, OperatorSymbol:
		return sym.Name
	case GroupSymbol:
		if sym.Group == TupleGroup {
			return "(" + joinSymbols(sym.Body) + ")"
		}
		return "[" + joinSymbols(sym.Body) + "]"
	}
	return "<?>"
}

// Equals compares two symbols structurally. Input positions are ignored.
func (sym Symbol) Equals(other Symbol) bool {
	if sym.Type != other.Type {
		return false
	}
	switch sym.Type {
	case LiteralSymbol:
		return sym.Value.Kind() == other.Value.Kind() && Equals(sym.Value, other.Value)
	case NameSymbol, OperatorSymbol:
		return sym.Name == other.Name
	case GroupSymbol:
		return sym.Group == other.Group && symbolsEqual(sym.Body, other.Body)
	}
	return true
}

func symbolsEqual(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func joinSymbols(syms []Symbol) string {
	s := make([]string, len(syms))
	for i, sym := range syms {
		s[i] = sym.String()
	}
	return strings.Join(s, " ")
}
