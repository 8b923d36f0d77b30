package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/scanner"
	"github.com/npillmayer/stackscript/scanner/lexmach"
	"github.com/npillmayer/stackscript/value"
)

var lexer *lexmach.LMAdapter
var lexerErr error

var startOnce sync.Once // monitors one-time creation of the lexer

func createLexer() (*lexmach.LMAdapter, error) {
	startOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = Lexer()
	})
	return lexer, lexerErr
}

// closers maps opening brackets to closing ones.
var closers = map[string]string{"[": "]", "(": ")", "{": "}"}

// IncompleteError is returned by Parse if the input ends within an
// unclosed group. Interactive clients may ask for more input.
type IncompleteError struct {
	Open string // the unclosed bracket
	err  *stackscript.Error
}

func (e *IncompleteError) Error() string {
	return e.err.Error()
}

// Unwrap makes an IncompleteError a stackscript.SyntaxError.
func (e *IncompleteError) Unwrap() error {
	return e.err
}

// Parse parses an input string, given in stackscript format, and returns the
// sequence of symbols. Spans of symbols are byte offsets into input.
//
// All errors are of kind stackscript.SyntaxError.
func Parse(input string) ([]value.Symbol, error) {
	lex, err := createLexer()
	if err != nil {
		return nil, stackscript.Errorf(stackscript.SyntaxError, "cannot create lexer: %v", err)
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, stackscript.Errorf(stackscript.SyntaxError, "%v", err)
	}
	p := &parser{scan: scan}
	scan.SetErrorHandler(p.scanError)
	syms, _, err := p.sequence(nil)
	if err != nil {
		tracer().Debugf("parse error: %v", err)
		return nil, err
	}
	tracer().Debugf("parsed %d top-level symbols", len(syms))
	return syms, nil
}

// parser is a tiny recursive-descent parser for bracket groups.
type parser struct {
	scan scanner.Tokenizer
	err  *stackscript.Error // first scanner error, if any
}

func (p *parser) scanError(e error) {
	tracer().Debugf("scanner: %v", e)
	if p.err == nil {
		p.err = stackscript.Errorf(stackscript.SyntaxError, "illegal input: %v", e)
	}
}

// sequence reads atoms until the closing bracket of open, or until EOF for
// the top level. It returns the symbols and the span of the closing token.
func (p *parser) sequence(open stackscript.Token) ([]value.Symbol, stackscript.Span, error) {
	syms := make([]value.Symbol, 0, 8)
	for {
		tok := p.scan.NextToken()
		if p.err != nil {
			return nil, tok.Span(), p.err
		}
		if tok.TokType() == scanner.EOF {
			if open != nil {
				e := stackscript.Errorf(stackscript.SyntaxError, "unclosed '%s'", open.Lexeme()).At(open.Span())
				return nil, tok.Span(), &IncompleteError{Open: open.Lexeme(), err: e}
			}
			return syms, tok.Span(), nil
		}
		lexeme := tok.Lexeme()
		if isBracket(tok) {
			if _, ok := closers[lexeme]; ok {
				body, end, err := p.sequence(tok)
				if err != nil {
					return nil, end, err
				}
				syms = append(syms, makeGroup(lexeme, body).WithSpan(tok.Span().Extend(end)))
				continue
			}
			if open != nil && closers[open.Lexeme()] == lexeme {
				return syms, tok.Span(), nil
			}
			if open == nil {
				return nil, tok.Span(), stackscript.Errorf(stackscript.SyntaxError,
					"unexpected '%s'", lexeme).At(tok.Span())
			}
			return nil, tok.Span(), stackscript.Errorf(stackscript.SyntaxError,
				"mismatched '%s', expected '%s'", lexeme, closers[open.Lexeme()]).At(tok.Span())
		}
		sym, err := atom(tok)
		if err != nil {
			return nil, tok.Span(), err
		}
		syms = append(syms, sym.WithSpan(tok.Span()))
	}
}

func isBracket(tok stackscript.Token) bool {
	for _, b := range brackets {
		if int(tok.TokType()) == tokenIds[b] {
			return true
		}
	}
	return false
}

func makeGroup(open string, body []value.Symbol) value.Symbol {
	switch open {
	case "[":
		return value.Group(value.ListGroup, body...)
	case "(":
		return value.Group(value.TupleGroup, body...)
	}
	return value.BlockLiteral(body...)
}

// atom classifies a single non-bracket token.
func atom(tok stackscript.Token) (value.Symbol, error) {
	lexeme := tok.Lexeme()
	switch int(tok.TokType()) {
	case tokenIds["ID"]:
		return value.Ident(lexeme), nil
	case tokenIds["INT"]:
		n, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return value.Symbol{}, literalError("integer", lexeme, tok, err)
		}
		return value.Literal(value.Int(n)), nil
	case tokenIds["FLOAT"]:
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil && !math.IsInf(f, 0) {
			return value.Symbol{}, literalError("float", lexeme, tok, err)
		}
		return value.Literal(value.Float(f)), nil
	case tokenIds["STRING"]:
		s, err := strconv.Unquote(strings.ReplaceAll(lexeme, "\n", `\n`))
		if err != nil {
			return value.Symbol{}, literalError("string", lexeme, tok, err)
		}
		return value.Literal(value.String(s)), nil
	case tokenIds["RAWSTRING"]:
		return value.Literal(value.String(lexeme[1 : len(lexeme)-1])), nil
	case tokenIds["true"]:
		return value.Literal(value.True), nil
	case tokenIds["false"]:
		return value.Literal(value.False), nil
	}
	return value.Operator(lexeme), nil
}

func literalError(what, lexeme string, tok stackscript.Token, err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return stackscript.Errorf(stackscript.SyntaxError, "invalid %s literal %s: %v",
		what, lexeme, err).At(tok.Span())
}

// Balance returns the nesting depth of brackets at the end of input.
// A positive result means that input contains unclosed groups, a negative
// result that it contains excess closing brackets.
func Balance(input string) int {
	lex, err := createLexer()
	if err != nil {
		return 0
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return 0
	}
	scan.SetErrorHandler(func(error) {})
	depth := 0
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		if !isBracket(tok) {
			continue
		}
		if _, ok := closers[tok.Lexeme()]; ok {
			depth++
		} else {
			depth--
		}
	}
	return depth
}

// Format returns source text for a program.
func Format(syms []value.Symbol) string {
	var b strings.Builder
	for i, sym := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym.String())
	}
	return b.String()
}
