package common

import "github.com/christopherzimmerman/jfmc/dtypes"

type ScopeType uint8

const (
	SCOPE_GLOBAL ScopeType = iota
	SCOPE_FUNCTION
	SCOPE_BLOCK
	SCOPE_LOOP
	SCOPE_STRUCT
)

// Scope is one node in the tree of scopes the symbol table walks.
// Grounded on original_source/src/symbol_table.h's Scope: a parent
// back-pointer, a name->symbol table, and scope-kind-specific metadata
// (ReturnType for SCOPE_FUNCTION, StructName for SCOPE_STRUCT).
type Scope struct {
	Parent *Scope
	Type   ScopeType
	Level  int

	symbols map[string]*Symbol

	ReturnType dtypes.Type
	StructName string
}

func newScope(parent *Scope, kind ScopeType) *Scope {
	level := 0
	if parent != nil {
		level = parent.Level + 1
	}

	return &Scope{
		Parent:  parent,
		Type:    kind,
		Level:   level,
		symbols: make(map[string]*Symbol),
	}
}

// Declare inserts sym into the scope. ok is false if a symbol with the
// same name is already present (data model invariant 4: no two symbols
// share a name within one scope).
func (s *Scope) Declare(sym *Symbol) bool {
	if _, exists := s.symbols[sym.Name]; exists {
		return false
	}

	sym.DefScope = s
	s.symbols[sym.Name] = sym
	return true
}

func (s *Scope) Lookup(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}
