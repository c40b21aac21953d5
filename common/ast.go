package common

import (
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
)

// AstNode is the common interface every AST variant implements: a
// source span and nothing else. Statements, definitions, and bare
// blocks only ever need this.
type AstNode interface {
	GetSpan() *report.TextSpan
}

type AstBase struct {
	Span *report.TextSpan
}

func (ab *AstBase) GetSpan() *report.TextSpan {
	return ab.Span
}

/* -------------------------------------------------------------------------- */

// AstExpr is any node that produces a value: it carries a resolved
// Type (nil/Unknown until semantic analysis fills it in) and knows
// whether it denotes mutable storage, for assignment-target checking.
type AstExpr interface {
	AstNode

	GetType() dtypes.Type
	SetType(dtypes.Type)
	IsMutable() bool
}

type AstExprBase struct {
	Span *report.TextSpan
	Type dtypes.Type
}

func (ae *AstExprBase) GetSpan() *report.TextSpan {
	return ae.Span
}

func (ae *AstExprBase) GetType() dtypes.Type {
	return ae.Type
}

func (ae *AstExprBase) SetType(t dtypes.Type) {
	ae.Type = t
}

func (ae *AstExprBase) IsMutable() bool {
	return false
}
