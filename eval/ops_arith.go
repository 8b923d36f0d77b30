package eval

import (
	"math"

	"github.com/npillmayer/stackscript/value"
)

func registerArithmetic(t *OperatorTable) {
	t.Register("+", ints(func(a, b int64) (int64, error) { return a + b, nil }), Int, Int)
	t.Register("+", floats(func(a, b float64) (float64, error) { return a + b, nil }), Number, Number)
	t.Register("-", ints(func(a, b int64) (int64, error) { return a - b, nil }), Int, Int)
	t.Register("-", floats(func(a, b float64) (float64, error) { return a - b, nil }), Number, Number)
	t.Register("*", ints(func(a, b int64) (int64, error) { return a * b, nil }), Int, Int)
	t.Register("*", floats(func(a, b float64) (float64, error) { return a * b, nil }), Number, Number)
	t.Register("/", ints(intDiv), Int, Int)
	t.Register("/", floats(floatDiv), Number, Number)
	t.Register("%", ints(intMod), Int, Int)
	t.Register("**", opPowInt, Int, Int)
	t.Register("**", floats(func(a, b float64) (float64, error) { return math.Pow(a, b), nil }), Number, Number)
	t.Register("|", ints(func(a, b int64) (int64, error) { return a | b, nil }), Int, Int)
	t.Register("&", ints(func(a, b int64) (int64, error) { return a & b, nil }), Int, Int)
	t.Register("^", ints(func(a, b int64) (int64, error) { return a ^ b, nil }), Int, Int)
	t.Register("|", bools(func(a, b bool) bool { return a || b }), Bool, Bool)
	t.Register("&", bools(func(a, b bool) bool { return a && b }), Bool, Bool)
	t.Register("^", bools(func(a, b bool) bool { return a != b }), Bool, Bool)
	t.Register("<<", ints(shiftLeft), Int, Int)
	t.Register(">>", ints(shiftRight), Int, Int)
	t.Register("<", comparison(func(c int) bool { return c < 0 }), Number, Number)
	t.Register("<=", comparison(func(c int) bool { return c <= 0 }), Number, Number)
	t.Register(">", comparison(func(c int) bool { return c > 0 }), Number, Number)
	t.Register(">=", comparison(func(c int) bool { return c >= 0 }), Number, Number)
}

type intFunc func(a, b int64) (int64, error)
type floatFunc func(a, b float64) (float64, error)

// ints lifts an integer function to an operator. Integer arithmetic wraps
// around on overflow.
func ints(f intFunc) OpFunc {
	return func(x *Exec, args []value.Value) error {
		r, err := f(int64(args[0].(value.Int)), int64(args[1].(value.Int)))
		if err != nil {
			return err
		}
		x.Push(value.Int(r))
		return nil
	}
}

// floats lifts a float function to an operator, promoting integer operands.
func floats(f floatFunc) OpFunc {
	return func(x *Exec, args []value.Value) error {
		r, err := f(value.AsFloat(args[0]), value.AsFloat(args[1]))
		if err != nil {
			return err
		}
		x.Push(value.Float(r))
		return nil
	}
}

func bools(f func(a, b bool) bool) OpFunc {
	return func(x *Exec, args []value.Value) error {
		x.Push(value.Bool(f(bool(args[0].(value.Bool)), bool(args[1].(value.Bool)))))
		return nil
	}
}

func comparison(pred func(int) bool) OpFunc {
	return func(x *Exec, args []value.Value) error {
		c, err := value.Compare(args[0], args[1])
		if err != nil {
			return err
		}
		x.Push(value.Bool(pred(c)))
		return nil
	}
}

// intDiv truncates towards zero.
func intDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivisionByZero()
	}
	return a / b, nil
}

func floatDiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivisionByZero()
	}
	return a / b, nil
}

// intMod is the floored modulus: the result has the sign of the divisor.
func intMod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivisionByZero()
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

// opPowInt raises an integer to an integer power. Negative exponents yield
// a float.
func opPowInt(x *Exec, args []value.Value) error {
	base, exp := int64(args[0].(value.Int)), int64(args[1].(value.Int))
	if exp < 0 {
		x.Push(value.Float(math.Pow(float64(base), float64(exp))))
		return nil
	}
	r := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
		exp >>= 1
	}
	x.Push(value.Int(r))
	return nil
}

func shiftLeft(a, n int64) (int64, error) {
	if err := checkCount(value.Int(n), "shift count"); err != nil {
		return 0, err
	}
	return a << uint64(n), nil
}

func shiftRight(a, n int64) (int64, error) {
	if err := checkCount(value.Int(n), "shift count"); err != nil {
		return 0, err
	}
	return a >> uint64(n), nil
}
