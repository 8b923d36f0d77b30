package value

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stackscript"
)

func TestTruthiness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.eval")
	defer teardown()
	//
	cases := []struct {
		v      Value
		truthy bool
	}{
		{True, true},
		{False, false},
		{Int(0), false},
		{Int(-1), true},
		{Float(0), false},
		{Float(0.1), true},
		{String(""), false},
		{String("a"), true},
		{NewList(nil), false},
		{NewList([]Value{Int(0)}), true},
		{NewTuple(), false},
		{NewTuple(False), true},
		{NewBlock(nil), true},
	}
	for i, c := range cases {
		if Truthy(c.v) != c.truthy {
			t.Errorf("case #%d: expected truthiness of %v to be %v", i, c.v, c.truthy)
		}
	}
}

func TestListIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.eval")
	defer teardown()
	//
	a := NewList([]Value{Int(1), Int(2)})
	b := NewList([]Value{Int(1), Int(2)})
	if Equals(a, b) {
		t.Errorf("expected lists of equal contents not to be equal")
	}
	if !Equals(a, a) {
		t.Errorf("expected list to be equal to itself")
	}
	alias := a
	alias.Elems = append(alias.Elems, Int(3))
	if a.Len() != 3 {
		t.Errorf("expected alias to share the list")
	}
}

func TestStructuralEquality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.eval")
	defer teardown()
	//
	if !Equals(NewTuple(Int(1), String("x")), NewTuple(Int(1), String("x"))) {
		t.Errorf("expected tuples to compare structurally")
	}
	if Equals(NewTuple(Int(1)), NewTuple(Int(1), Int(2))) {
		t.Errorf("expected tuples of different length to differ")
	}
	b1 := NewBlock([]Symbol{Literal(Int(1)), Ident("x"), Operator("+")})
	b2 := NewBlock([]Symbol{
		Literal(Int(1)).WithSpan(stackscript.Span{4, 5}),
		Ident("x"),
		Operator("+"),
	})
	if !Equals(b1, b2) {
		t.Errorf("expected blocks to compare structurally, ignoring positions")
	}
	if Equals(b1, NewBlock([]Symbol{Literal(Float(1)), Ident("x"), Operator("+")})) {
		t.Errorf("expected blocks with literals of different kinds to differ")
	}
	if !Equals(Int(2), Float(2)) || Equals(Int(2), String("2")) {
		t.Errorf("numeric equality broken")
	}
}

func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.eval")
	defer teardown()
	//
	if c, err := Compare(Int(1), Float(1.5)); err != nil || c != -1 {
		t.Errorf("expected 1 < 1.5, got %d, %v", c, err)
	}
	if c, err := Compare(Int(3), Int(3)); err != nil || c != 0 {
		t.Errorf("expected 3 = 3, got %d, %v", c, err)
	}
	_, err := Compare(String("a"), Int(1))
	if !errors.Is(err, stackscript.ErrType) {
		t.Errorf("expected TypeError, got %v", err)
	}
}

func TestInspectFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.eval")
	defer teardown()
	//
	cases := []struct {
		v    Value
		text string
	}{
		{Int(-7), "-7"},
		{Float(2), "2.0"},
		{Float(0.25), "0.25"},
		{Float(math.Inf(1)), "1e999"},
		{Float(math.Inf(-1)), "-1e999"},
		{Float(math.NaN()), "NaN"},
		{String("a\"b"), `"a\"b"`},
		{True, "true"},
		{NewList([]Value{Int(1), String("x")}), `[1 "x"]`},
		{NewTuple(Int(1), NewTuple()), "(1 ())"},
		{NewBlock([]Symbol{Ident("x"), Operator(".")}), "{ x . }"},
	}
	for _, c := range cases {
		if c.v.String() != c.text {
			t.Errorf("expected %q, got %q", c.text, c.v.String())
		}
	}
}

func TestSeqAndIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.eval")
	defer teardown()
	//
	seq, ok := Seq(String("héj"))
	if !ok {
		t.Fatalf("expected string to be a sequence")
	}
	vals := seq.Values()
	if len(vals) != 3 || vals[1] != String("é") {
		t.Errorf("expected characters of string, got %v", vals)
	}
	seq, _ = Seq(NewTuple(Int(1), Int(2)))
	if e := seq.Next(); e != Int(1) {
		t.Errorf("expected first element 1, got %v", e)
	}
	if e := seq.Next(); e != Int(2) {
		t.Errorf("expected second element 2, got %v", e)
	}
	if seq.Next() != nil {
		t.Errorf("expected exhausted sequence")
	}
	if _, ok := Seq(Int(1)); ok {
		t.Errorf("expected int not to be a sequence")
	}
	l := NewList([]Value{Int(10), Int(20)})
	if v, ok := Index(l, 1); !ok || v != Int(10) {
		t.Errorf("expected index 1 to be first element, got %v", v)
	}
	for _, i := range []int64{0, 3, -1} {
		if _, ok := Index(l, i); ok {
			t.Errorf("expected index %d to be out of range", i)
		}
	}
}
