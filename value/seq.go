package value

// ElemSeq is a sequence over the elements of lists, tuples and strings.
// Strings yield their characters as one-character strings.
//
// Iterate with
//
//    seq, _ := Seq(v)
//    for e := seq.Next(); e != nil; e = seq.Next() { … }
//
// A sequence over a list sees the elements the list holds when the sequence
// is created.
type ElemSeq struct {
	elem Value
	seq  ElemGenerator
}

// ElemGenerator is a function type to generate a sequence.
type ElemGenerator func() ElemSeq

// Seq wraps a list, tuple or string into a sequence. For other values, Seq
// returns false.
func Seq(v Value) (ElemSeq, bool) {
	var at func(int) Value
	var n int
	switch x := v.(type) {
	case *List:
		elems := x.Elems
		n, at = len(elems), func(i int) Value { return elems[i] }
	case Tuple:
		n, at = len(x.elems), func(i int) Value { return x.elems[i] }
	case String:
		runes := []rune(string(x))
		n, at = len(runes), func(i int) Value { return String(runes[i]) }
	default:
		return ElemSeq{}, false
	}
	var S func(int) ElemGenerator
	S = func(i int) ElemGenerator {
		return func() ElemSeq {
			if i >= n {
				return ElemSeq{}
			}
			return ElemSeq{at(i), S(i + 1)}
		}
	}
	return ElemSeq{nil, S(0)}, true
}

// Next returns the next element of a sequence, or nil at the end.
func (seq *ElemSeq) Next() Value {
	if seq.seq == nil {
		return nil
	}
	*seq = seq.seq()
	return seq.elem
}

// Values returns the remaining elements of a sequence as a slice.
func (seq ElemSeq) Values() []Value {
	var vals []Value
	for e := seq.Next(); e != nil; e = seq.Next() {
		vals = append(vals, e)
	}
	return vals
}

// Length returns the number of elements of a list, tuple or string, and false
// for other values.
func Length(v Value) (int, bool) {
	switch x := v.(type) {
	case *List:
		return len(x.Elems), true
	case Tuple:
		return len(x.elems), true
	case String:
		return len([]rune(string(x))), true
	}
	return 0, false
}

// Index returns the i-th element of a list, tuple or string, counting from 1.
// The second result is false if i is out of range or v is not indexable.
func Index(v Value, i int64) (Value, bool) {
	n, ok := Length(v)
	if !ok || i < 1 || i > int64(n) {
		return nil, false
	}
	switch x := v.(type) {
	case *List:
		return x.Elems[i-1], true
	case Tuple:
		return x.elems[i-1], true
	case String:
		return String([]rune(string(x))[i-1]), true
	}
	return nil, false
}
