package common

import (
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
)

type SymbolKind uint8

const (
	SYM_VARIABLE SymbolKind = iota
	SYM_PARAMETER
	SYM_FUNCTION
	SYM_STRUCT
	SYM_FIELD
)

// Symbol is the one-of-five union from the data model. Not every field
// applies to every Kind — FuncParams/FuncParamNames only to SYM_FUNCTION,
// Index only to SYM_PARAMETER, Fields only to SYM_STRUCT.
type Symbol struct {
	Name string
	Span *report.TextSpan
	Kind SymbolKind
	Type dtypes.Type

	Mutable     bool
	Initialized bool

	// SYM_PARAMETER
	Index int

	// SYM_FUNCTION: ordered parameter types and names, return type.
	// Per-parameter mutability is not recorded.
	FuncParams     []dtypes.Type
	FuncParamNames []string
	ReturnType     dtypes.Type

	// SYM_STRUCT: ordered fields, each itself a SYM_FIELD symbol.
	Fields []*Symbol

	// DefScope is the back-pointer to the scope this symbol was
	// declared in.
	DefScope *Scope
}
