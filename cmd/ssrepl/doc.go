/*
Command ssrepl provides an interactive command line tool for stackscript.

Users enter stackscript expressions, which are evaluated against a global
scope living as long as the session. The resulting stack is printed after
every input. Input spanning several lines is collected until all brackets
are closed.

	ssrepl [-trace level] [-init file] [-config file] [script …]

Given script files, ssrepl evaluates them in order and prints the final stack.
If standard input is not a terminal, it is read as a script as well.

Lines starting with '/' are metacommands; '/help' lists them.

A YAML configuration file may set the prompt, the trace level, whether the
stack is cleared after each input, and a list of prelude files:

	prompt: "ss> "
	trace: Error
	autoclear: false
	prelude:
	  - lib/std.ss

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stackscript.repl'
func tracer() tracing.Trace {
	return tracing.Select("stackscript.repl")
}
