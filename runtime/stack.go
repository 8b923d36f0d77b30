package runtime

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/value"
)

// Stack is the evaluation stack. There is exactly one stack per top-level
// evaluation; nested invocations share it.
//
// A protection boundary hides the values below it: while a boundary is set,
// Pop, Peek and Clear act as if the stack ended at the boundary. Boundaries
// are set and released by the invocation frames of a Runtime.
type Stack struct {
	values   *arraylist.List
	boundary int
}

// NewStack creates an empty stack without a boundary.
func NewStack() *Stack {
	return &Stack{values: arraylist.New()}
}

// Push pushes values onto the stack. The last argument becomes TOS.
func (st *Stack) Push(vals ...value.Value) {
	for _, v := range vals {
		st.values.Add(v)
	}
}

// Pop removes and returns TOS. It is a StackUnderflow to pop below the
// protection boundary.
func (st *Stack) Pop() (value.Value, error) {
	if st.Height() == 0 {
		return nil, stackscript.Errorf(stackscript.StackUnderflow, "stack is empty")
	}
	last := st.values.Size() - 1
	v, _ := st.values.Get(last)
	st.values.Remove(last)
	return v.(value.Value), nil
}

// Take pops n values and returns them in stack order, i.e. the former TOS
// is the last element.
func (st *Stack) Take(n int) ([]value.Value, error) {
	if n > st.Height() {
		return nil, stackscript.Errorf(stackscript.StackUnderflow,
			"need %d operands, have %d", n, st.Height())
	}
	vals := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		vals[i], _ = st.Pop()
	}
	return vals, nil
}

// Peek returns the i-th value from the top without removing it (Peek(0) is
// TOS). Values below the boundary cannot be peeked at.
func (st *Stack) Peek(i int) (value.Value, error) {
	if i < 0 || i >= st.Height() {
		return nil, stackscript.Errorf(stackscript.StackUnderflow,
			"cannot access stack entry %d, stack height is %d", i, st.Height())
	}
	v, _ := st.values.Get(st.values.Size() - 1 - i)
	return v.(value.Value), nil
}

// Height returns the number of values visible above the protection boundary.
func (st *Stack) Height() int {
	return st.values.Size() - st.boundary
}

// Size returns the physical size of the stack, including values hidden by
// the protection boundary.
func (st *Stack) Size() int {
	return st.values.Size()
}

// Boundary returns the current protection boundary.
func (st *Stack) Boundary() int {
	return st.boundary
}

// Clear removes all visible values. Values below the boundary remain.
func (st *Stack) Clear() {
	for st.values.Size() > st.boundary {
		st.values.Remove(st.values.Size() - 1)
	}
}

// Values returns the visible values, bottom first.
func (st *Stack) Values() []value.Value {
	vals := make([]value.Value, 0, st.Height())
	for i := st.boundary; i < st.values.Size(); i++ {
		v, _ := st.values.Get(i)
		vals = append(vals, v.(value.Value))
	}
	return vals
}

// protect sets a new boundary. Boundaries may only grow while frames nest.
func (st *Stack) protect(boundary int) {
	if boundary > st.values.Size() {
		boundary = st.values.Size()
	}
	st.boundary = boundary
}
