package syntax

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/value"
)

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.syntax")
	defer teardown()
	//
	lex, err := Lexer()
	if err != nil {
		t.Fatal(err)
	}
	input := `a 1.5 -3 "x\"y" 'raw' // comment
	{ . * } ~= <= ** while whiles`
	scan, err := lex.Scanner(input)
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(e error) {
		t.Error(e)
	})
	count := 0
	for token := scan.NextToken(); token.TokType() != -1; token = scan.NextToken() {
		t.Logf("token = %q with value = %d", token.Lexeme(), token.TokType())
		count++
	}
	if count != 14 {
		t.Errorf("expected 14 tokens, got %d", count)
	}
}

func TestParseAtoms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.syntax")
	defer teardown()
	//
	syms, err := Parse(`1 -2 2.5 1e3 -1e999 "a\tb" 'c\d' true false x not ~=`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []value.Symbol{
		value.Literal(value.Int(1)),
		value.Literal(value.Int(-2)),
		value.Literal(value.Float(2.5)),
		value.Literal(value.Float(1000)),
		value.Literal(value.Float(math.Inf(-1))),
		value.Literal(value.String("a\tb")),
		value.Literal(value.String(`c\d`)),
		value.Literal(value.True),
		value.Literal(value.False),
		value.Ident("x"),
		value.Operator("not"),
		value.Operator("~="),
	}
	if len(syms) != len(expected) {
		t.Fatalf("expected %d symbols, got %d: %v", len(expected), len(syms), syms)
	}
	for i := range expected {
		if !syms[i].Equals(expected[i]) {
			t.Errorf("symbol #%d: expected %v, got %v", i, expected[i], syms[i])
		}
	}
}

func TestParseGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.syntax")
	defer teardown()
	//
	syms, err := Parse(`[1 (2 3) {x 1 +}] {}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(syms) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(syms))
	}
	list := syms[0]
	if list.Type != value.GroupSymbol || list.Group != value.ListGroup || len(list.Body) != 3 {
		t.Fatalf("expected list group with 3 elements, got %v", list)
	}
	if list.Body[1].Group != value.TupleGroup {
		t.Errorf("expected tuple group, got %v", list.Body[1])
	}
	blk, ok := list.Body[2].Value.(value.Block)
	if list.Body[2].Type != value.LiteralSymbol || !ok || blk.Len() != 3 {
		t.Errorf("expected block literal of 3 symbols, got %v", list.Body[2])
	}
	if syms[1].Value.String() != "{}" {
		t.Errorf("expected empty block, got %v", syms[1])
	}
	if syms[0].Span.From() != 0 || syms[0].Span.To() != 17 {
		t.Errorf("expected list to span (0…17), got %v", syms[0].Span)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.syntax")
	defer teardown()
	//
	for _, input := range []string{"[1 2)", "1 ]", "99999999999999999999", `"a\qb"`, "a @ b"} {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("expected syntax error for %q", input)
			continue
		}
		if !errors.Is(err, stackscript.ErrSyntax) {
			t.Errorf("expected syntax error for %q, got %v", input, err)
		}
		var inc *IncompleteError
		if errors.As(err, &inc) {
			t.Errorf("did not expect %q to be incomplete", input)
		}
	}
}

func TestParseIncomplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.syntax")
	defer teardown()
	//
	_, err := Parse("{ 1 [ 2")
	var inc *IncompleteError
	if !errors.As(err, &inc) {
		t.Fatalf("expected incomplete input, got %v", err)
	}
	if inc.Open != "[" {
		t.Errorf("expected innermost open bracket '[', got %q", inc.Open)
	}
	if !errors.Is(err, stackscript.ErrSyntax) {
		t.Errorf("expected incomplete input to be a syntax error")
	}
	if Balance("{ 1 [ 2") != 2 || Balance("{ '[' }") != 0 || Balance("]") != -1 {
		t.Errorf("bracket balance miscounted")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.syntax")
	defer teardown()
	//
	for _, input := range []string{
		`1 2.0 "a\nb" true [1 (2 3)] {x . *} : y`,
		`1e+30 -0.5 "" {}`,
	} {
		syms, err := Parse(input)
		if err != nil {
			t.Fatal(err)
		}
		again, err := Parse(Format(syms))
		if err != nil {
			t.Fatalf("cannot re-parse %q: %v", Format(syms), err)
		}
		if len(again) != len(syms) {
			t.Fatalf("round trip changed length: %q", Format(syms))
		}
		for i := range syms {
			if !syms[i].Equals(again[i]) {
				t.Errorf("round trip changed %v into %v", syms[i], again[i])
			}
		}
	}
}
