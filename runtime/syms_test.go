package runtime

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/value"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewTag(t *testing.T) {
	symtab := NewSymbolTable()
	tag, _ := symtab.DefineTag("new-sym")
	if tag == nil {
		t.Error("no tag created for table")
	}
	tag.Value = value.Int(5)
	if tag.Value != value.Int(5) {
		t.Errorf("tag value does not work")
	}
}

func TestTwoTagsDistinct(t *testing.T) {
	symtab := NewSymbolTable()
	tag1, _ := symtab.DefineTag("new-sym1")
	tag2, _ := symtab.DefineTag("new-sym2")
	if tag1 == tag2 {
		t.Error("2 tags with equal name")
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	tag, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(tag.Name()); !found {
		t.Error("cannot find stored tag in table")
	}
	if _, found := symtab.ResolveOrDefineTag(""); found {
		t.Error("empty names must not be defined")
	}
}

func TestDefineTagReplaces(t *testing.T) {
	symtab := NewSymbolTable()
	tag, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != tag {
		t.Error("tag should have been replaced")
	}
}

func TestScopeUpsearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.runtime")
	defer teardown()
	//
	parent := NewScope("parent", nil)
	scope := NewScope("current", parent)
	parent.Bind("n", value.Int(1))
	v, err := scope.Lookup("n")
	if err != nil {
		t.Fatal(err)
	}
	if v != value.Int(1) {
		t.Errorf("expected n=1 from parent scope, got %v", v)
	}
}

func TestScopeLookupFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.runtime")
	defer teardown()
	//
	scope := NewScope("current", NewGlobals())
	_, err := scope.Lookup("nope")
	if !errors.Is(err, stackscript.ErrName) {
		t.Errorf("expected NameError, got %v", err)
	}
}

func TestBindShadows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.runtime")
	defer teardown()
	//
	parent := NewGlobals()
	parent.Bind("n", value.Int(1))
	child := NewScope("child", parent)
	child.Bind("n", value.Int(2))
	if v, _ := child.Lookup("n"); v != value.Int(2) {
		t.Errorf("expected shadowing binding n=2 in child, got %v", v)
	}
	if v, _ := parent.Lookup("n"); v != value.Int(1) {
		t.Errorf("binding in child must not modify parent, got n=%v", v)
	}
}

func TestEachIsOrdered(t *testing.T) {
	scope := NewGlobals()
	scope.Bind("b", value.Int(2))
	scope.Bind("a", value.Int(1))
	var names []string
	scope.Tags().Each(func(nm string, tag *Tag) {
		names = append(names, nm)
	})
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected ordered names [a b], got %v", names)
	}
}
