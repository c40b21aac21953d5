package common

import "github.com/christopherzimmerman/jfmc/dtypes"

type BinOpKind uint8

const (
	BINOP_ADD BinOpKind = iota
	BINOP_SUB
	BINOP_MUL
	BINOP_DIV
	BINOP_MOD

	BINOP_EQ
	BINOP_NEQ
	BINOP_LT
	BINOP_GT
	BINOP_LE
	BINOP_GE

	BINOP_AND
	BINOP_OR

	BINOP_BAND
	BINOP_BOR
	BINOP_BXOR
	BINOP_SHL
	BINOP_SHR
)

type BinaryOp struct {
	AstExprBase

	Op       BinOpKind
	Lhs, Rhs AstExpr
}

/* -------------------------------------------------------------------------- */

type UnOpKind uint8

const (
	UNOP_NEG UnOpKind = iota
	UNOP_NOT
	UNOP_DEREF
	UNOP_ADDR
)

// UnaryOp covers `-x`, `!x`, `*p`, `&x`, and `&mut x` — IsMutRef only
// matters when Op is UNOP_ADDR.
type UnaryOp struct {
	AstExprBase

	Op       UnOpKind
	Operand  AstExpr
	IsMutRef bool
}

func (u *UnaryOp) IsMutable() bool {
	if u.Op != UNOP_DEREF {
		return false
	}

	switch pt := u.Operand.GetType().Inner().(type) {
	case *dtypes.PointerType:
		return true
	case *dtypes.ReferenceType:
		return pt.Mutable
	default:
		return false
	}
}

/* -------------------------------------------------------------------------- */

type Cast struct {
	AstExprBase

	Expr   AstExpr
	Target dtypes.Type
}

type Call struct {
	AstExprBase

	Callee AstExpr
	Args   []AstExpr
}

type Field struct {
	AstExprBase

	Object    AstExpr
	FieldName string
}

func (f *Field) IsMutable() bool {
	return f.Object.IsMutable()
}

type Index struct {
	AstExprBase

	Array AstExpr
	Idx   AstExpr
}

func (idx *Index) IsMutable() bool {
	return idx.Array.IsMutable()
}

// Identifier's Name may contain `::`, the mangled encoding of a path
// expression (glossary: "Mangling").
type Identifier struct {
	AstExprBase

	Name   string
	Symbol *Symbol
}

func (id *Identifier) IsMutable() bool {
	return id.Symbol != nil && id.Symbol.Mutable
}

/* -------------------------------------------------------------------------- */

type LiteralKind uint8

const (
	LIT_INT LiteralKind = iota
	LIT_FLOAT
	LIT_CHAR
	LIT_BOOL
	LIT_STR
)

type Literal struct {
	AstExprBase

	Kind LiteralKind

	IntValue   int64
	FloatValue float64
	CharValue  byte
	BoolValue  bool
	StrValue   string
}

type ArrayLiteral struct {
	AstExprBase

	Elements []AstExpr
}

type StructLiteral struct {
	AstExprBase

	StructName  string
	FieldNames  []string
	FieldValues []AstExpr
}
