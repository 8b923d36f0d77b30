package runtime

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/value"
)

func TestStackPushPop(t *testing.T) {
	st := NewStack()
	st.Push(value.Int(1), value.Int(2))
	if st.Height() != 2 {
		t.Fatalf("expected height 2, is %d", st.Height())
	}
	v, err := st.Pop()
	if err != nil || v != value.Int(2) {
		t.Errorf("expected TOS=2, got %v (%v)", v, err)
	}
	if top, _ := st.Peek(0); top != value.Int(1) {
		t.Errorf("expected TOS=1 after pop, got %v", top)
	}
}

func TestStackUnderflow(t *testing.T) {
	st := NewStack()
	if _, err := st.Pop(); !errors.Is(err, stackscript.ErrStackUnderflow) {
		t.Errorf("expected StackUnderflow, got %v", err)
	}
	if _, err := st.Take(1); !errors.Is(err, stackscript.ErrStackUnderflow) {
		t.Errorf("expected StackUnderflow for Take, got %v", err)
	}
}

func TestStackTakeOrder(t *testing.T) {
	st := NewStack()
	st.Push(value.Int(1), value.Int(2), value.Int(3))
	vals, err := st.Take(2)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != value.Int(2) || vals[1] != value.Int(3) {
		t.Errorf("expected [2 3], got %v", vals)
	}
}

func TestProtectionBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment(nil)
	rt.Stack.Push(value.String("A"), value.String("B"))
	fr := rt.Enter("callee", NewScope("callee", rt.Globals))
	if rt.Stack.Height() != 0 {
		t.Errorf("callee should see an empty stack, sees %d values", rt.Stack.Height())
	}
	if _, err := rt.Stack.Pop(); !errors.Is(err, stackscript.ErrStackUnderflow) {
		t.Errorf("expected StackUnderflow inside protected frame, got %v", err)
	}
	if _, err := rt.Stack.Peek(0); err == nil {
		t.Errorf("callee must not peek below its boundary")
	}
	rt.Stack.Push(value.String("C"))
	rt.Stack.Clear()
	rt.Stack.Push(value.String("R"))
	rt.Leave(fr)
	vals := rt.Stack.Values()
	if len(vals) != 3 || vals[0] != value.String("A") || vals[1] != value.String("B") ||
		vals[2] != value.String("R") {
		t.Errorf("expected [A B R] after return, got %v", vals)
	}
	if rt.Stack.Boundary() != 0 {
		t.Errorf("boundary should revert to 0, is %d", rt.Stack.Boundary())
	}
}

func TestNestedBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment(nil)
	rt.Stack.Push(value.Int(1))
	outer := rt.Enter("outer", rt.Globals)
	rt.Stack.Push(value.Int(2), value.Int(3))
	inner := rt.Enter("inner", rt.Globals)
	if inner.Boundary < outer.Boundary {
		t.Errorf("boundaries must not decrease along the call chain")
	}
	if rt.Frames.Depth() != 3 {
		t.Errorf("expected 3 active frames, have %d", rt.Frames.Depth())
	}
	rt.Leave(inner)
	if rt.Stack.Boundary() != outer.Boundary || rt.Stack.Height() != 2 {
		t.Errorf("expected outer boundary %d and height 2, have %d and %d",
			outer.Boundary, rt.Stack.Boundary(), rt.Stack.Height())
	}
	rt.Leave(outer)
	if rt.Stack.Height() != 3 {
		t.Errorf("expected all 3 values visible at top level, have %d", rt.Stack.Height())
	}
}
