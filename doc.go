/*
Package stackscript is the runtime of a small stack-based scripting language.

Programs are sequences of symbols: literals, names, operators and groups. They
operate on a single evaluation stack, bind names in scopes and dispatch operators
by the runtime types of their operands. Package structure is as follows:

■ value: Package value implements the closed set of runtime values and the symbols
blocks are made of.

■ runtime: Package runtime provides scopes, the evaluation stack with its protection
boundaries and invocation frames.

■ eval: Package eval implements the operator table and the evaluator.

■ syntax: Package syntax turns source text into symbols, using the scanners of
package scanner.

■ cmd/ssrepl: An interactive command line tool and script runner.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stackscript
