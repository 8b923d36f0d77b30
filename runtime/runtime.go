/*
Package runtime implements an interpreter runtime, consisting of
scopes, the evaluation stack and invocation frames.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Scopes and Symbol Tables

This module implements data structures for scope chains and symbol tables
attached to them. Names are resolved outwards through the chain, but always
bound in the innermost scope.

Stack and Protection Boundaries

All invocations of one evaluation share a single stack. Instead of copying
the stack for a block call, the runtime records a protection boundary at the
current stack height. The callee sees only the values above its boundary.
Boundaries are owned by invocation frames.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stackscript.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("stackscript.runtime")
}

// Runtime is a type implementing a runtime environment for one top-level
// evaluation.
type Runtime struct {
	Globals *Scope     // root scope, owned by the driver
	Stack   *Stack     // the evaluation stack
	Frames  *CallStack // active invocations
}

// NewRuntimeEnvironment constructs
// a new runtime environment, initialized with a base frame for the top-level
// program. If globals is nil, a fresh root scope is created.
//
func NewRuntimeEnvironment(globals *Scope) *Runtime {
	if globals == nil {
		globals = NewGlobals()
	}
	rt := &Runtime{Globals: globals}
	rt.Stack = NewStack()
	rt.Frames = new(CallStack)
	rt.Frames.PushNewFrame("program", globals, 0)
	return rt
}

// Enter starts a new invocation in scope. It protects the current stack
// contents, i.e. the callee will see an empty stack. Every call of Enter must
// be paired with a call of Leave, including on error paths.
func (rt *Runtime) Enter(nm string, scope *Scope) *Frame {
	fr := rt.Frames.PushNewFrame(nm, scope, rt.Stack.Size())
	rt.Stack.protect(fr.Boundary)
	return fr
}

// Leave ends the invocation of frame fr. Values the callee left on the stack
// remain there as its results, now visible to the caller.
func (rt *Runtime) Leave(fr *Frame) {
	if rt.Frames.Current() != fr {
		panic("runtime: frames left out of order")
	}
	rt.Frames.PopFrame()
	boundary := 0
	if rt.Frames.frameTOS != nil {
		boundary = rt.Frames.Current().Boundary
	}
	rt.Stack.protect(boundary)
}

// Scope returns the scope of the current invocation.
func (rt *Runtime) Scope() *Scope {
	return rt.Frames.Current().Scope
}
