package eval

import (
	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/value"
)

func registerGeneral(t *OperatorTable) {
	t.Register(".", opDup, Any)
	t.Register(",", opDrop, Any)
	t.Register(";", opClear)
	t.Register("`", opInspect, Any)
	t.Register("=", opEqual, Any, Any)
	t.Register("~=", opNotEqual, Any, Any)
	t.Register("not", opNot, Any)
	t.Register("#", opSize, Iterable)
	t.Register("$", opIndex, Iterable, Int)
	t.Register("~", opInvert, Int)
	t.Register("~", opUnpack, Iterable)
}

func opDup(x *Exec, args []value.Value) error {
	x.Push(args[0], args[0])
	return nil
}

func opDrop(*Exec, []value.Value) error {
	return nil
}

// opClear clears the stack down to the protection boundary.
func opClear(x *Exec, _ []value.Value) error {
	x.Stack().Clear()
	return nil
}

func opInspect(x *Exec, args []value.Value) error {
	x.Push(value.String(args[0].String()))
	return nil
}

func opEqual(x *Exec, args []value.Value) error {
	x.Push(value.Bool(value.Equals(args[0], args[1])))
	return nil
}

func opNotEqual(x *Exec, args []value.Value) error {
	x.Push(value.Bool(!value.Equals(args[0], args[1])))
	return nil
}

func opNot(x *Exec, args []value.Value) error {
	x.Push(value.Bool(!value.Truthy(args[0])))
	return nil
}

func opSize(x *Exec, args []value.Value) error {
	n, _ := value.Length(args[0])
	x.Push(value.Int(n))
	return nil
}

// opIndex indexes lists, tuples and strings, counting from 1.
func opIndex(x *Exec, args []value.Value) error {
	i := int64(args[1].(value.Int))
	v, ok := value.Index(args[0], i)
	if !ok {
		n, _ := value.Length(args[0])
		err := stackscript.Errorf(stackscript.IndexError, "index %d out of range 1…%d", i, n)
		err.Index = i
		return err
	}
	x.Push(v)
	return nil
}

func opInvert(x *Exec, args []value.Value) error {
	x.Push(^args[0].(value.Int))
	return nil
}

// opUnpack pushes the elements of a sequence.
func opUnpack(x *Exec, args []value.Value) error {
	seq, _ := value.Seq(args[0])
	x.Push(seq.Values()...)
	return nil
}
