package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/runtime"
	"github.com/npillmayer/stackscript/syntax"
	"github.com/npillmayer/stackscript/value"
)

// Parser is the type of functions turning source text into symbols.
type Parser func(string) ([]value.Symbol, error)

// Evaluator evaluates programs. An Evaluator holds no state between calls of
// Evaluate; state lives in the root scope provided by the client.
type Evaluator struct {
	ops      *OperatorTable
	parser   Parser
	maxDepth int
}

// DefaultMaxDepth is the default limit for the nesting of evaluations, i.e.
// block invocations, in-place evaluations and list or tuple literals.
const DefaultMaxDepth = 10000

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithOperators replaces the default operator table.
func WithOperators(ops *OperatorTable) Option {
	return func(ev *Evaluator) {
		ev.ops = ops
	}
}

// WithParser replaces the parser used for evaluating strings.
func WithParser(p Parser) Option {
	return func(ev *Evaluator) {
		ev.parser = p
	}
}

// WithMaxDepth sets the limit for the nesting of evaluations. Exceeding it
// is a RecursionError.
func WithMaxDepth(n int) Option {
	return func(ev *Evaluator) {
		ev.maxDepth = n
	}
}

// New creates an evaluator. Without options, it uses the operators of
// DefaultOperators and syntax.Parse.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{}
	for _, opt := range opts {
		opt(ev)
	}
	if ev.ops == nil {
		ev.ops = DefaultOperators()
	}
	if ev.parser == nil {
		ev.parser = syntax.Parse
	}
	if ev.maxDepth <= 0 {
		ev.maxDepth = DefaultMaxDepth
	}
	return ev
}

// Operators returns the operator table of an evaluator.
func (ev *Evaluator) Operators() *OperatorTable {
	return ev.ops
}

// Evaluate runs a program on a fresh stack, holding the initial values.
// Names are resolved and bound starting at scope root, which may be nil.
//
// Evaluate returns the values remaining on the stack, bottom first. If an
// error occurs, evaluation stops and no values are returned.
func (ev *Evaluator) Evaluate(prog []value.Symbol, root *runtime.Scope, initial ...value.Value) ([]value.Value, error) {
	rt := runtime.NewRuntimeEnvironment(root)
	rt.Stack.Push(initial...)
	x := &Exec{ev: ev, rt: rt}
	if err := x.run(prog); err != nil {
		tracer().Infof("evaluation failed: %v", err)
		return nil, err
	}
	return rt.Stack.Values(), nil
}

// EvaluateString parses src and evaluates the resulting program.
func (ev *Evaluator) EvaluateString(src string, root *runtime.Scope, initial ...value.Value) ([]value.Value, error) {
	prog, err := ev.parser(src)
	if err != nil {
		return nil, err
	}
	return ev.Evaluate(prog, root, initial...)
}

// Evaluate runs a program with a default evaluator.
func Evaluate(prog []value.Symbol, root *runtime.Scope) ([]value.Value, error) {
	return New().Evaluate(prog, root)
}

// --- Execution context -----------------------------------------------------

// Exec is the execution context of a running evaluation. It is handed to
// operator functions.
type Exec struct {
	ev    *Evaluator
	rt    *runtime.Runtime
	depth int // nesting of control loops
}

// Runtime returns the runtime environment of an evaluation.
func (x *Exec) Runtime() *runtime.Runtime {
	return x.rt
}

// Stack returns the evaluation stack.
func (x *Exec) Stack() *runtime.Stack {
	return x.rt.Stack
}

// Scope returns the active scope.
func (x *Exec) Scope() *runtime.Scope {
	return x.rt.Scope()
}

// Push pushes values onto the stack.
func (x *Exec) Push(vals ...value.Value) {
	x.rt.Stack.Push(vals...)
}

// Pop pops a value from the visible part of the stack.
func (x *Exec) Pop() (value.Value, error) {
	return x.rt.Stack.Pop()
}

// EvalInPlace runs the symbols of a block in the active scope, without
// protecting the stack.
func (x *Exec) EvalInPlace(blk value.Block) error {
	return x.run(blk.Symbols())
}

// EvalSource parses src and runs it in place. Positions of errors inside src
// are relative to src; they are moved into the error message, and the error
// is positioned at the symbol evaluating src.
func (x *Exec) EvalSource(src string) error {
	prog, err := x.ev.parser(src)
	if err == nil {
		err = x.run(prog)
	}
	return relocate(err)
}

func relocate(err error) error {
	var e *stackscript.Error
	if err == nil || !errors.As(err, &e) || e.Span.IsNull() {
		return err
	}
	e.Msg = fmt.Sprintf("%s (at %s of evaluated string)", e.Msg, e.Span)
	e.Span = stackscript.Span{}
	return err
}

// Invoke calls a block in a new child scope of the active scope. The caller's
// part of the stack is protected during the call; args are the initial stack
// of the callee. Whatever the block leaves on the stack remains there as the
// results of the call.
func (x *Exec) Invoke(name string, blk value.Block, args ...value.Value) error {
	fr := x.rt.Enter(name, runtime.NewScope(name, x.Scope()))
	defer x.rt.Leave(fr)
	x.rt.Stack.Push(args...)
	return x.run(blk.Symbols())
}

// single runs a block in scope with the stack protected, and requires it to
// produce exactly one value.
func (x *Exec) single(what string, blk value.Block, scope *runtime.Scope, args ...value.Value) (value.Value, error) {
	fr := x.rt.Enter(what, scope)
	defer x.rt.Leave(fr)
	x.rt.Stack.Push(args...)
	if err := x.run(blk.Symbols()); err != nil {
		return nil, err
	}
	if h := x.rt.Stack.Height(); h != 1 {
		return nil, stackscript.Errorf(stackscript.ArityError,
			"%s produced %d values, expected 1", what, h)
	}
	return x.rt.Stack.Pop()
}

// condition evaluates a condition operand. Blocks are run in the active
// scope, with the stack protected, and must produce exactly one value.
func (x *Exec) condition(what string, v value.Value) (value.Value, error) {
	if blk, ok := v.(value.Block); ok {
		return x.single(what, blk, x.Scope())
	}
	return v, nil
}

// --- Control loop ----------------------------------------------------------

// run is the control loop. It executes symbols from left to right.
func (x *Exec) run(syms []value.Symbol) error {
	if x.depth >= x.ev.maxDepth {
		return stackscript.Errorf(stackscript.RecursionError,
			"evaluation nested deeper than %d levels", x.ev.maxDepth)
	}
	x.depth++
	defer func() { x.depth-- }()
	for i := 0; i < len(syms); i++ {
		sym := syms[i]
		var err error
		switch sym.Type {
		case value.LiteralSymbol:
			x.Push(sym.Value)
		case value.NameSymbol:
			var v value.Value
			if v, err = x.Scope().Lookup(sym.Name); err == nil {
				x.Push(v)
			}
		case value.GroupSymbol:
			err = x.group(sym)
		case value.OperatorSymbol:
			if sym.Name == ":" {
				if i+1 == len(syms) {
					err = stackscript.Errorf(stackscript.SyntaxError, "missing target of assignment")
					break
				}
				i++
				err = x.assign(syms[i])
				break
			}
			err = x.operate(sym.Name)
		default:
			err = stackscript.Errorf(stackscript.SyntaxError, "unexpected symbol %v", sym)
		}
		if err != nil {
			return annotate(err, sym)
		}
	}
	return nil
}

// annotate sets the position and the operator of an error, if it has been
// raised at this level.
func annotate(err error, sym value.Symbol) error {
	var e *stackscript.Error
	if !errors.As(err, &e) || !e.Span.IsNull() {
		return err
	}
	if sym.Type == value.OperatorSymbol {
		e.WithOp(sym.Name)
	}
	e.At(sym.Span)
	return err
}

func (x *Exec) operate(op string) error {
	ov, err := x.ev.ops.Resolve(op, x.rt.Stack)
	if err != nil {
		return err
	}
	args, err := x.rt.Stack.Take(ov.Arity())
	if err != nil {
		return err
	}
	return ov.Fn(x, args)
}

// group evaluates the body of a list or tuple group in a child scope, with
// the stack protected, and pushes a new list or tuple of the results.
func (x *Exec) group(sym value.Symbol) error {
	name := "list"
	if sym.Group == value.TupleGroup {
		name = "tuple"
	}
	elems, err := x.collect(name, sym.Body)
	if err != nil {
		return err
	}
	if sym.Group == value.TupleGroup {
		x.Push(value.NewTuple(elems...))
	} else {
		x.Push(value.NewList(elems))
	}
	return nil
}

func (x *Exec) collect(name string, body []value.Symbol) ([]value.Value, error) {
	fr := x.rt.Enter(name, runtime.NewScope(name, x.Scope()))
	defer x.rt.Leave(fr)
	if err := x.run(body); err != nil {
		return nil, err
	}
	return x.rt.Stack.Take(x.rt.Stack.Height())
}

// assign binds TOS to target in the active scope. Target is either a name or
// a block of names; for the latter, TOS has to be a list or tuple with one
// element per name. The assigned value remains on the stack.
func (x *Exec) assign(target value.Symbol) error {
	v, err := x.rt.Stack.Peek(0)
	if err != nil {
		return err
	}
	switch target.Type {
	case value.NameSymbol:
		tracer().Debugf("%s := %v", target.Name, v)
		x.Scope().Bind(target.Name, v)
		return nil
	case value.LiteralSymbol:
		if blk, ok := target.Value.(value.Block); ok {
			return x.assignMany(blk, v)
		}
	}
	return stackscript.Errorf(stackscript.SyntaxError, "cannot assign to %v", target)
}

func (x *Exec) assignMany(names value.Block, v value.Value) error {
	targets := names.Symbols()
	for _, t := range targets {
		if t.Type != value.NameSymbol {
			return stackscript.Errorf(stackscript.SyntaxError, "cannot assign to %v", t)
		}
	}
	if !Sequence.Accepts(v) {
		err := stackscript.Errorf(stackscript.TypeError, "multiple assignment needs a sequence")
		err.Operands = value.KindNames(v)
		return err
	}
	seq, _ := value.Seq(v)
	elems := seq.Values()
	if len(elems) != len(targets) {
		return stackscript.Errorf(stackscript.ArityError,
			"cannot assign %d values to %d names", len(elems), len(targets))
	}
	for i, t := range targets {
		x.Scope().Bind(t.Name, elems[i])
	}
	return nil
}
