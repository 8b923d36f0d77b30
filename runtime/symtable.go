package runtime

import (
	"fmt"
	"sort"

	"github.com/npillmayer/stackscript"
	"github.com/npillmayer/stackscript/value"
)

// Symbol table for name bindings. Symbol tables are attached to scopes.
// Scopes are organized in a chain, linking back to the scope they were created from.
//

// --- Tags -------------------------------------------------------

// Tag is the type to be stored into symbol tables. It may be a little
// surprising this type is not called 'Symbol', but programs consist of
// symbols (literals, names, operators), too. Thus, symbols are what the
// parser produces, tags are what the runtime binds.
//
type Tag struct {
	name  string
	Value value.Value
}

// NewTag creates a new tag.
func NewTag(nm string) *Tag {
	var tag = &Tag{
		name: nm,
	}
	return tag
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'=%v>", s.Name(), s.Value)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table     map[string]*Tag
	createTag func(string) *Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table:     make(map[string]*Tag),
		createTag: NewTag,
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := t.createTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created tag.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table, ordered by name, executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	names := make([]string, 0, len(t.Table))
	for k := range t.Table {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		mapper(k, t.Table[k])
	}
}

// === Scopes ================================================================

// Scope is a named scope, which binds names to values. Scopes link back to a
// parent scope, forming a chain. Blocks do not capture scopes: a block
// invocation creates a child of the scope active at the invocation site.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new, empty scope as a child of parent, which may be nil.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	return sc
}

// NewGlobals creates a root scope, to be owned by a driver and handed to
// evaluations.
func NewGlobals() *Scope {
	return NewScope("globals", nil)
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// Bind binds a value to a name in this scope. Bindings of the same name in
// outer scopes are shadowed, never modified.
func (s *Scope) Bind(name string, v value.Value) {
	tag, _ := s.symtab.ResolveOrDefineTag(name)
	if tag != nil {
		tag.Value = v
	}
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of the scope chain) the tag was found in.
//
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.ResolveTag(tagname); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}

// Lookup finds the value bound to a name, searching this scope and its
// parents. Returns a NameError if the name is not bound anywhere in the chain.
func (s *Scope) Lookup(name string) (value.Value, error) {
	tag, sc := s.ResolveTag(name)
	if tag == nil {
		tracer().Debugf("name '%s' not found from %s", name, s)
		err := stackscript.Errorf(stackscript.NameError, "could not resolve name '%s'", name)
		err.Name = name
		return nil, err
	}
	tracer().P("scope", sc.Name).Debugf("resolved '%s'", name)
	return tag.Value, nil
}
