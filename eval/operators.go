package eval

import (
	"sync"

	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/value"
)

var defaultOps *OperatorTable
var defaultOnce sync.Once // monitors one-time creation of the default operators

// DefaultOperators returns the table of built-in operators. The table is shared
// by all evaluators using it and must not be modified. Clients wanting to add
// operators should start with a table from NewOperators.
func DefaultOperators() *OperatorTable {
	defaultOnce.Do(func() {
		defaultOps = NewOperators()
	})
	return defaultOps
}

// NewOperators creates a new operator table holding the built-in operators.
func NewOperators() *OperatorTable {
	t := NewOperatorTable()
	registerGeneral(t)
	registerArithmetic(t)
	registerSequences(t)
	registerControl(t)
	return t
}

// --- Errors ----------------------------------------------------------------

func operandError(kind stackscript.ErrorKind, msg string, operands ...value.Value) error {
	err := stackscript.Errorf(kind, "%s", msg)
	err.Operands = value.KindNames(operands...)
	return err
}

func errDivisionByZero() error {
	return stackscript.Errorf(stackscript.DivisionError, "division by zero")
}

func checkCount(n value.Int, what string) error {
	if n < 0 {
		return stackscript.Errorf(stackscript.TypeError, "negative %s: %d", what, n)
	}
	return nil
}
