package eval

import (
	"strings"

	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/value"
)

func registerSequences(t *OperatorTable) {
	t.Register("+", opConcatStrings, String, String)
	t.Register("+", seqOp(concat), Sequence, Sequence)
	t.Register("+", opConcatBlocks, Block, Block)
	t.Register("-", seqOp(difference), Sequence, Sequence)
	t.Register("*", opRepeat, Int, Sequence)
	t.Register("*", opRepeat, Sequence, Int)
	t.Register("*", opRepeat, Int, String)
	t.Register("*", opRepeat, String, Int)
	t.Register("|", seqOp(union), Sequence, Sequence)
	t.Register("&", seqOp(intersection), Sequence, Sequence)
	t.Register("^", seqOp(symmetricDifference), Sequence, Sequence)
}

// seqOp lifts a function on elements to an operator on two sequences.
// The result is a new list if any of the operands is a list, and a tuple
// otherwise.
func seqOp(f func(a, b []value.Value) []value.Value) OpFunc {
	return func(x *Exec, args []value.Value) error {
		a, b := elements(args[0]), elements(args[1])
		x.Push(makeSequence(f(a, b), args...))
		return nil
	}
}

func elements(v value.Value) []value.Value {
	seq, _ := value.Seq(v)
	return seq.Values()
}

func makeSequence(elems []value.Value, like ...value.Value) value.Value {
	for _, v := range like {
		if v.Kind() == value.ListKind {
			if elems == nil {
				elems = []value.Value{}
			}
			return value.NewList(elems)
		}
	}
	return value.NewTuple(elems...)
}

func contains(vals []value.Value, v value.Value) bool {
	for _, w := range vals {
		if value.Equals(v, w) {
			return true
		}
	}
	return false
}

func concat(a, b []value.Value) []value.Value {
	r := make([]value.Value, 0, len(a)+len(b))
	return append(append(r, a...), b...)
}

// difference keeps the elements of a not contained in b.
func difference(a, b []value.Value) []value.Value {
	r := make([]value.Value, 0, len(a))
	for _, v := range a {
		if !contains(b, v) {
			r = append(r, v)
		}
	}
	return r
}

// Set operations keep elements in order of their first appearance.

func union(a, b []value.Value) []value.Value {
	r := make([]value.Value, 0, len(a)+len(b))
	for _, v := range concat(a, b) {
		if !contains(r, v) {
			r = append(r, v)
		}
	}
	return r
}

func intersection(a, b []value.Value) []value.Value {
	r := make([]value.Value, 0, len(a))
	for _, v := range a {
		if contains(b, v) && !contains(r, v) {
			r = append(r, v)
		}
	}
	return r
}

func symmetricDifference(a, b []value.Value) []value.Value {
	return union(difference(a, b), difference(b, a))
}

func opConcatStrings(x *Exec, args []value.Value) error {
	x.Push(args[0].(value.String) + args[1].(value.String))
	return nil
}

func opConcatBlocks(x *Exec, args []value.Value) error {
	a, b := args[0].(value.Block).Symbols(), args[1].(value.Block).Symbols()
	body := make([]value.Symbol, 0, len(a)+len(b))
	body = append(append(body, a...), b...)
	x.Push(value.NewBlock(body))
	return nil
}

// opRepeat repeats a sequence or a string. The count may be given as either
// operand.
func opRepeat(x *Exec, args []value.Value) error {
	n, v := args[0], args[1]
	if _, ok := n.(value.Int); !ok {
		n, v = v, n
	}
	count := n.(value.Int)
	if err := checkCount(count, "repeat count"); err != nil {
		return err
	}
	if s, ok := v.(value.String); ok {
		if s == "" {
			x.Push(s)
			return nil
		}
		if err := checkRepeatSize(len(s), count); err != nil {
			return err
		}
		x.Push(value.String(strings.Repeat(string(s), int(count))))
		return nil
	}
	elems := elements(v)
	if len(elems) == 0 {
		x.Push(makeSequence(nil, v))
		return nil
	}
	if err := checkRepeatSize(len(elems), count); err != nil {
		return err
	}
	r := make([]value.Value, 0, len(elems)*int(count))
	for i := value.Int(0); i < count; i++ {
		r = append(r, elems...)
	}
	x.Push(makeSequence(r, v))
	return nil
}

// maxRepeatSize limits the number of elements (or bytes, for strings) a
// repetition may produce.
const maxRepeatSize = 1 << 26

func checkRepeatSize(n int, count value.Int) error {
	if n > 0 && int64(count) > int64(maxRepeatSize/n) {
		return stackscript.Errorf(stackscript.TypeError,
			"repeat count %d too large for operand of length %d", count, n)
	}
	return nil
}
