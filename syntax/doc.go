/*
Package syntax turns stackscript source text into a sequence of classified
symbols, ready to be consumed by the evaluator.

Scanning is done by a lexmachine-generated DFA (see package scanner/lexmach).
The parser on top of it is small: the grammar of stackscript consists of flat
sequences of atoms, structured only by brackets.

	Program   ::=  Sequence
	Sequence  ::=  { Atom }
	Atom      ::=  int | float | string | 'true' | 'false' | ident | operator
	Atom      ::=  '[' Sequence ']'      // list group
	Atom      ::=  '(' Sequence ')'      // tuple group
	Atom      ::=  '{' Sequence '}'      // block literal

Comments start with '//' and extend to the end of the line.
Block groups are resolved into literal Block values by the parser, whereas list
and tuple groups remain groups, as their bodies have to be evaluated to produce
the elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stackscript.syntax'
func tracer() tracing.Trace {
	return tracing.Select("stackscript.syntax")
}
