package common

import "github.com/christopherzimmerman/jfmc/dtypes"

// Block holds an ordered list of statements and, per the grammar, an
// optional trailing expression with no semicolon that becomes the
// block's value (only meaningful where a block is used as an
// expression — the codegen treats it as an ordinary compound statement
// either way, since the source language never uses a block's value).
type Block struct {
	AstBase

	Stmts   []AstNode
	Trailer AstExpr
}

type If struct {
	AstBase

	Cond AstExpr
	Then *Block
	Else AstNode // *Block or *If, nil if no else
}

type While struct {
	AstBase

	Cond AstExpr
	Body *Block
}

// For is the exclusive-upper-bound range loop: `for i in start..end`.
type For struct {
	AstBase

	IterName string
	Start    AstExpr
	End      AstExpr
	Body     *Block
}

type Loop struct {
	AstBase

	Body *Block
}

type Return struct {
	AstBase

	Value AstExpr // nil for a bare `return;`
}

type Break struct {
	AstBase
}

type Continue struct {
	AstBase
}

// Let declares a local binding. Type is nil when no annotation was
// given — semantic analysis requires one before codegen (spec: "no
// type inference beyond constant literals").
type Let struct {
	AstBase

	Name        string
	Type        dtypes.Type
	Initializer AstExpr
	Mutable     bool

	Symbol *Symbol
}

type AssignOp uint8

const (
	ASSIGN AssignOp = iota
	ASSIGN_ADD
	ASSIGN_SUB
	ASSIGN_MUL
	ASSIGN_DIV
)

type Assignment struct {
	AstExprBase

	Target AstExpr
	Op     AssignOp
	Value  AstExpr
}
