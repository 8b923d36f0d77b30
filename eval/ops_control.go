package eval

import (
	"github.com/npillmayer/stackscript/runtime"
	"github.com/npillmayer/stackscript/value"
)

func registerControl(t *OperatorTable) {
	t.Register("!", opInvoke, Any, Block)
	t.Register("%", opFold, Iterable, Block)
	t.Register("%", opEval, Block)
	t.Register("%", opEvalString, String)
	t.Register("/", opMap, Iterable, Block)
	t.Register("*", opRepeatEval, Int, Block)
	t.Register("*", opRepeatEval, Block, Int)
	t.Register("if", opIf, Any, Any, Any)
	t.Register("and", opAnd, Any, Any)
	t.Register("or", opOr, Any, Any)
	t.Register("while", opWhile, Block, Block)
	t.Register("do", opDo, Block)
}

// opInvoke calls a block with an argument. A tuple argument is unpacked into
// positional arguments; any other value is passed as a single argument.
func opInvoke(x *Exec, args []value.Value) error {
	blk := args[1].(value.Block)
	if tup, ok := args[0].(value.Tuple); ok {
		return x.Invoke("invoke", blk, tup.Elements()...)
	}
	return x.Invoke("invoke", blk, args[0])
}

// opFold pushes every element of a list, tuple or string and evaluates the
// block in place after each one.
func opFold(x *Exec, args []value.Value) error {
	blk := args[1].(value.Block)
	for _, e := range elements(args[0]) {
		x.Push(e)
		if err := x.EvalInPlace(blk); err != nil {
			return err
		}
	}
	return nil
}

func opEval(x *Exec, args []value.Value) error {
	return x.EvalInPlace(args[0].(value.Block))
}

func opEvalString(x *Exec, args []value.Value) error {
	return x.EvalSource(string(args[0].(value.String)))
}

// opMap invokes the block for every element and collects the results into
// a new list. Every invocation has to produce exactly one value.
func opMap(x *Exec, args []value.Value) error {
	blk := args[1].(value.Block)
	elems := elements(args[0])
	results := make([]value.Value, 0, len(elems))
	for _, e := range elems {
		r, err := x.single("map", blk, runtime.NewScope("map", x.Scope()), e)
		if err != nil {
			return err
		}
		results = append(results, r)
	}
	x.Push(value.NewList(results))
	return nil
}

func opRepeatEval(x *Exec, args []value.Value) error {
	n, blk := args[0], args[1]
	if _, ok := n.(value.Int); !ok {
		n, blk = blk, n
	}
	count := n.(value.Int)
	if err := checkCount(count, "repeat count"); err != nil {
		return err
	}
	for i := value.Int(0); i < count; i++ {
		if err := x.EvalInPlace(blk.(value.Block)); err != nil {
			return err
		}
	}
	return nil
}

// opIf selects a branch by the truthiness of the condition. A block branch is
// evaluated in place, other values are pushed. The other branch is discarded.
func opIf(x *Exec, args []value.Value) error {
	cond, err := x.condition("if condition", args[0])
	if err != nil {
		return err
	}
	branch := args[2]
	if value.Truthy(cond) {
		branch = args[1]
	}
	if blk, ok := branch.(value.Block); ok {
		return x.EvalInPlace(blk)
	}
	x.Push(branch)
	return nil
}

func opAnd(x *Exec, args []value.Value) error {
	a, err := x.condition("left operand of 'and'", args[0])
	if err != nil {
		return err
	}
	if !value.Truthy(a) {
		x.Push(a)
		return nil
	}
	b, err := x.condition("right operand of 'and'", args[1])
	if err != nil {
		return err
	}
	x.Push(b)
	return nil
}

func opOr(x *Exec, args []value.Value) error {
	a, err := x.condition("left operand of 'or'", args[0])
	if err != nil {
		return err
	}
	if value.Truthy(a) {
		x.Push(a)
		return nil
	}
	b, err := x.condition("right operand of 'or'", args[1])
	if err != nil {
		return err
	}
	x.Push(b)
	return nil
}

// opWhile evaluates the body in place as long as the condition holds. The
// condition is invoked in a child scope and must produce exactly one value.
func opWhile(x *Exec, args []value.Value) error {
	cond, body := args[0].(value.Block), args[1].(value.Block)
	for {
		c, err := x.single("while condition", cond, runtime.NewScope("while", x.Scope()))
		if err != nil {
			return err
		}
		if !value.Truthy(c) {
			return nil
		}
		if err := x.EvalInPlace(body); err != nil {
			return err
		}
	}
}

// opDo evaluates a block in place, then pops a value and repeats as long as
// that value is truthy.
func opDo(x *Exec, args []value.Value) error {
	blk := args[0].(value.Block)
	for {
		if err := x.EvalInPlace(blk); err != nil {
			return err
		}
		v, err := x.Pop()
		if err != nil {
			return err
		}
		if !value.Truthy(v) {
			return nil
		}
	}
}
