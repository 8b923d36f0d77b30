package value

import (
	"github.com/npillmayer/stackscript"
)

// Truthy maps any value to a boolean. Numeric zero, empty strings, lists
// and tuples are false. Blocks are always true.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Bool:
		return bool(x)
	case Int:
		return x != 0
	case Float:
		return x != 0
	case String:
		return len(x) > 0
	case *List:
		return len(x.Elems) > 0
	case Tuple:
		return len(x.elems) > 0
	case Block:
		return true
	}
	return false
}

// Equals tests two values for equality. Lists are equal only if they are the
// same list. Numbers of mixed kinds compare numerically.
func Equals(a, b Value) bool {
	if IsNumber(a) && IsNumber(b) {
		if a.Kind() == IntKind && b.Kind() == IntKind {
			return a.(Int) == b.(Int)
		}
		return AsFloat(a) == AsFloat(b)
	}
	switch x := a.(type) {
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *List:
		y, ok := b.(*List)
		return ok && x == y
	case Tuple:
		y, ok := b.(Tuple)
		if !ok || len(x.elems) != len(y.elems) {
			return false
		}
		for i := range x.elems {
			if !Equals(x.elems[i], y.elems[i]) {
				return false
			}
		}
		return true
	case Block:
		y, ok := b.(Block)
		return ok && symbolsEqual(x.body, y.body)
	}
	return false
}

// Compare orders two numbers. It returns -1, 0 or +1 for a<b, a=b or a>b.
// Mixed kinds are compared as floats. Comparing non-numbers is a TypeError.
func Compare(a, b Value) (int, error) {
	if !IsNumber(a) || !IsNumber(b) {
		err := stackscript.Errorf(stackscript.TypeError, "cannot compare non-numeric values")
		err.Operands = KindNames(a, b)
		return 0, err
	}
	if a.Kind() == IntKind && b.Kind() == IntKind {
		x, y := a.(Int), b.(Int)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	x, y := AsFloat(a), AsFloat(b)
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

// IsNumber is a predicate: is v an Int or a Float?
func IsNumber(v Value) bool {
	if v == nil {
		return false
	}
	k := v.Kind()
	return k == IntKind || k == FloatKind
}

// AsFloat promotes a number to float64. Non-numbers yield 0.
func AsFloat(v Value) float64 {
	switch x := v.(type) {
	case Int:
		return float64(x)
	case Float:
		return float64(x)
	}
	return 0
}
