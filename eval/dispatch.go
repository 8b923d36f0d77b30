package eval

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/runtime"
	"github.com/npillmayer/stackscript/value"
)

// Operand is a constraint for an operand of an operator overload.
type Operand uint8

// Operand constraints. Exact kinds come first, followed by classes of kinds.
const (
	Any      Operand = iota // any value
	Bool
	Int
	Float
	String
	List
	Tuple
	Block
	Number                  // Int or Float
	Sequence                // List or Tuple
	Iterable                // List, Tuple or String
	Source                  // Block or String
)

var operandNames = [...]string{"any", "bool", "int", "float", "string", "list", "tuple",
	"block", "number", "sequence", "iterable", "source"}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return "?"
}

// Accepts is a predicate: does v satisfy constraint o?
func (o Operand) Accepts(v value.Value) bool {
	if v == nil {
		return false
	}
	k := v.Kind()
	switch o {
	case Any:
		return true
	case Bool:
		return k == value.BoolKind
	case Int:
		return k == value.IntKind
	case Float:
		return k == value.FloatKind
	case String:
		return k == value.StringKind
	case List:
		return k == value.ListKind
	case Tuple:
		return k == value.TupleKind
	case Block:
		return k == value.BlockKind
	case Number:
		return k == value.IntKind || k == value.FloatKind
	case Sequence:
		return k == value.ListKind || k == value.TupleKind
	case Iterable:
		return k == value.ListKind || k == value.TupleKind || k == value.StringKind
	case Source:
		return k == value.BlockKind || k == value.StringKind
	}
	return false
}

func (o Operand) specificity() int {
	switch {
	case o == Any:
		return 1
	case o >= Number:
		return 2
	}
	return 3
}

// OpFunc is the type of operator implementations. Operands are given in stack
// order, i.e. the former top of stack is the last argument. Results have to be
// pushed by the operator function.
type OpFunc func(x *Exec, args []value.Value) error

// Overload is an implementation of an operator for a signature of operands.
type Overload struct {
	Op        string
	Signature []Operand // bottom-most operand first
	Fn        OpFunc
	seqno     int // registration order
}

// Arity returns the number of operands of an overload.
func (ov *Overload) Arity() int {
	return len(ov.Signature)
}

func (ov *Overload) specificity() int {
	s := 0
	for _, o := range ov.Signature {
		s += o.specificity()
	}
	return s
}

// matches checks the visible top of the stack against the signature, without
// popping.
func (ov *Overload) matches(st *runtime.Stack) bool {
	n := len(ov.Signature)
	if st.Height() < n {
		return false
	}
	for i, o := range ov.Signature {
		v, err := st.Peek(n - 1 - i)
		if err != nil || !o.Accepts(v) {
			return false
		}
	}
	return true
}

func (ov *Overload) String() string {
	var b strings.Builder
	for _, o := range ov.Signature {
		b.WriteString(o.String())
		b.WriteByte(' ')
	}
	b.WriteString(ov.Op)
	return b.String()
}

// --- Operator table --------------------------------------------------------

// OperatorTable maps operator symbols to their overloads. It is the single
// source of truth for the meaning of operators.
//
// An OperatorTable is not safe for concurrent registration, but may be shared
// between evaluators once set up.
type OperatorTable struct {
	ops   *treemap.Map // string -> []*Overload, in order of precedence
	count int
}

// NewOperatorTable creates an empty operator table.
func NewOperatorTable() *OperatorTable {
	return &OperatorTable{ops: treemap.NewWithStringComparator()}
}

// Register adds an overload for operator op. Overloads are kept in order of
// precedence: longer signatures first, then more specific signatures, then
// in order of registration.
func (t *OperatorTable) Register(op string, fn OpFunc, signature ...Operand) {
	ov := &Overload{Op: op, Signature: signature, Fn: fn, seqno: t.count}
	t.count++
	var ovs []*Overload
	if o, found := t.ops.Get(op); found {
		ovs = o.([]*Overload)
	}
	ovs = append(ovs, ov)
	sort.SliceStable(ovs, func(i, j int) bool {
		if ovs[i].Arity() != ovs[j].Arity() {
			return ovs[i].Arity() > ovs[j].Arity()
		}
		if si, sj := ovs[i].specificity(), ovs[j].specificity(); si != sj {
			return si > sj
		}
		return ovs[i].seqno < ovs[j].seqno
	})
	t.ops.Put(op, ovs)
}

// Overloads returns the overloads of an operator, in order of precedence.
func (t *OperatorTable) Overloads(op string) []*Overload {
	if o, found := t.ops.Get(op); found {
		return o.([]*Overload)
	}
	return nil
}

// Operators returns all operator symbols of the table, sorted.
func (t *OperatorTable) Operators() []string {
	keys := t.ops.Keys()
	ops := make([]string, len(keys))
	for i, k := range keys {
		ops[i] = k.(string)
	}
	return ops
}

// Resolve selects the overload of op matching the visible top of stack st.
// Nothing is popped from the stack.
//
// If no overload matches, Resolve returns a StackUnderflow if there are fewer
// visible values than the longest signature of op requires, and a TypeError
// otherwise.
func (t *OperatorTable) Resolve(op string, st *runtime.Stack) (*Overload, error) {
	ovs := t.Overloads(op)
	if len(ovs) == 0 {
		return nil, stackscript.Errorf(stackscript.TypeError, "unknown operator").WithOp(op)
	}
	for _, ov := range ovs {
		if ov.matches(st) {
			tracer().Debugf("dispatch %s", ov)
			return ov, nil
		}
	}
	arity := ovs[0].Arity()
	if st.Height() < arity {
		return nil, stackscript.Errorf(stackscript.StackUnderflow,
			"need %d operands, have %d", arity, st.Height()).WithOp(op)
	}
	operands := make([]value.Value, arity)
	for i := range operands {
		operands[i], _ = st.Peek(arity - 1 - i)
	}
	err := stackscript.Errorf(stackscript.TypeError, "unsupported operand kinds").WithOp(op)
	err.Operands = value.KindNames(operands...)
	return nil, err
}
