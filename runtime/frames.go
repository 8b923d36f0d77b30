package runtime

import (
	"fmt"
)

// This module implements a stack of invocation frames.
// Frames are used by the evaluator to record the scope and the stack
// protection boundary of active invocations.

// Frame represents one active invocation: a block call, the evaluation of a
// list or tuple literal, or the top-level program.
type Frame struct {
	Name     string
	Scope    *Scope
	Boundary int // physical stack height when the invocation started
	Parent   *Frame
}

// NewFrame creates a new invocation frame.
func NewFrame(nm string, scope *Scope, boundary int) *Frame {
	fr := &Frame{
		Name:     nm,
		Scope:    scope,
		Boundary: boundary,
	}
	return fr
}

func (fr *Frame) String() string {
	return fmt.Sprintf("<frame %s @%d -> %v>", fr.Name, fr.Boundary, fr.Scope)
}

// ---------------------------------------------------------------------------

// CallStack is a stack of invocation frames.
type CallStack struct {
	frameTOS *Frame
	depth    int
}

// Current gets the current frame of a stack (TOS).
func (cst *CallStack) Current() *Frame {
	if cst.frameTOS == nil {
		panic("attempt to access frame from empty call stack")
	}
	return cst.frameTOS
}

// Depth returns the number of active frames.
func (cst *CallStack) Depth() int {
	return cst.depth
}

// PushNewFrame pushes a new frame as TOS.
// A frame is constructed, having the recent TOS as its parent.
// The boundary of a frame may never be lower than the boundary of its parent.
//
func (cst *CallStack) PushNewFrame(nm string, scope *Scope, boundary int) *Frame {
	parent := cst.frameTOS
	if parent != nil && boundary < parent.Boundary {
		panic(fmt.Sprintf("frame %s: boundary %d below enclosing boundary %d", nm, boundary, parent.Boundary))
	}
	newfr := NewFrame(nm, scope, boundary)
	newfr.Parent = parent
	cst.frameTOS = newfr // new frame now TOS
	cst.depth++
	tracer().P("frame", newfr.Name).Debugf("pushing new frame @%d", boundary)
	return newfr
}

// PopFrame pops the top-most frame. Returns the popped frame.
func (cst *CallStack) PopFrame() *Frame {
	if cst.frameTOS == nil {
		panic("attempt to pop frame from empty call stack")
	}
	fr := cst.frameTOS
	tracer().Debugf("popping frame [%s]", fr.Name)
	cst.frameTOS = cst.frameTOS.Parent
	cst.depth--
	return fr
}
