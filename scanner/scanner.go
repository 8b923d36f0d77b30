/*
Package scanner defines an interface for scanners to be used with the parser
of package syntax.

A scanner implementation backed by lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stackscript"
)

// tracer traces with key 'stackscript.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("stackscript.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() stackscript.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   stackscript.TokType
	lexeme string
	Val    interface{}
	span   stackscript.Span
}

// MakeDefaultToken creates a token from its components.
func MakeDefaultToken(typ stackscript.TokType, lexeme string, span stackscript.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() stackscript.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() stackscript.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q %v>", t.kind, t.lexeme, t.span)
}

var _ stackscript.Token = DefaultToken{}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case stackscript.Token:
		return t.Lexeme()
	default:
		return fmt.Sprintf("%v", t)
	}
}
