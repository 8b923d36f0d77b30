/*
Package eval implements the evaluator for stackscript programs.

A program is a sequence of symbols (see package value), usually produced by
package syntax. The evaluator walks the sequence from left to right: literals
are pushed onto the stack, names are resolved through the scope chain and
their values pushed, and operators are dispatched by the kinds of the values
on top of the stack.

Operators

Each operator symbol may have several overloads, each with a signature of
operand constraints. The overloads of an operator are tried in order of
precedence: longer signatures first, then more specific ones (exact kinds
before classes of kinds like Number, classes before Any), then in order of
registration. The first overload accepting the visible top of the stack wins;
its operands are popped and handed to the operator function.

	0 [2 3 1 5] {+} %      // fold:  List Block %  ⇒ 11
	{2 3 +} %              // eval:  Block %       ⇒ 5
	7 3 %                  // mod:   Int Int %     ⇒ 1

Blocks and Scopes

Blocks are not closures. Invoking a block with '!' creates a child of the
scope active at the call site and protects the caller's part of the stack;
evaluating a block with '%' (or as the chosen branch of 'if') runs its symbols
in place, as if they had been written inline.

Errors

All errors are of type *stackscript.Error and abort the evaluation. They carry
the position of the symbol being executed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stackscript.eval'.
func tracer() tracing.Trace {
	return tracing.Select("stackscript.eval")
}
