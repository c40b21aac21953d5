package codegen

import (
	"testing"

	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
)

func lit(kind common.LiteralKind, i int64, s string) *common.Literal {
	l := &common.Literal{Kind: kind, IntValue: i, StrValue: s}
	switch kind {
	case common.LIT_INT:
		l.SetType(dtypes.GlobI32Type)
	case common.LIT_STR:
		l.SetType(dtypes.GlobStrType)
	case common.LIT_BOOL:
		l.SetType(dtypes.GlobBoolType)
	}
	return l
}

func genString(t *testing.T, emit func(g *Generator)) string {
	t.Helper()
	g := NewGenerator()
	emit(g)
	return g.out.String()
}

func TestGenLiteralUntypedFallsBackToComment(t *testing.T) {
	out := genString(t, func(g *Generator) { g.genLiteral(&common.Literal{Kind: common.LIT_INT, IntValue: 1}) })
	if out != "/* untyped literal */" {
		t.Errorf("genLiteral(untyped) = %q", out)
	}
}

func TestGenLiteralStringIsRawPassthrough(t *testing.T) {
	// The lexeme already carries its escapes verbatim (spec §4.1); codegen
	// must pass it through C's own string syntax, not re-escape it.
	out := genString(t, func(g *Generator) { g.genLiteral(lit(common.LIT_STR, 0, `a\nb`)) })
	if out != `"a\nb"` {
		t.Errorf("genLiteral(string with escape) = %q; want a raw passthrough %q", out, `"a\nb"`)
	}
}

func TestGenBinaryOpIsParenthesized(t *testing.T) {
	bo := &common.BinaryOp{Op: common.BINOP_ADD, Lhs: lit(common.LIT_INT, 1, ""), Rhs: lit(common.LIT_INT, 2, "")}
	out := genString(t, func(g *Generator) { g.genBinaryOp(bo) })
	if out != "(1 + 2)" {
		t.Errorf("genBinaryOp = %q; want %q", out, "(1 + 2)")
	}
}

func TestGenUnaryAddrOfArrayDecays(t *testing.T) {
	arrIdent := &common.Identifier{Name: "xs"}
	arrIdent.SetType(&dtypes.ArrayType{ElemType: dtypes.GlobI32Type, Size: 3})

	addr := &common.UnaryOp{Op: common.UNOP_ADDR, Operand: arrIdent}
	out := genString(t, func(g *Generator) { g.genUnaryOp(addr) })
	if out != "xs" {
		t.Errorf("genUnaryOp(&array) = %q; want bare array decay %q", out, "xs")
	}
}

func TestGenUnaryAddrOfScalarEmitsAmpersand(t *testing.T) {
	scalar := &common.Identifier{Name: "n"}
	scalar.SetType(dtypes.GlobI32Type)

	addr := &common.UnaryOp{Op: common.UNOP_ADDR, Operand: scalar}
	out := genString(t, func(g *Generator) { g.genUnaryOp(addr) })
	if out != "&n" {
		t.Errorf("genUnaryOp(&scalar) = %q; want %q", out, "&n")
	}
}

func TestGenStructLiteralNestedElidesInnerTypeHeader(t *testing.T) {
	inner := &common.StructLiteral{StructName: "Inner", FieldNames: []string{"v"}, FieldValues: []common.AstExpr{lit(common.LIT_INT, 1, "")}}
	outer := &common.StructLiteral{StructName: "Outer", FieldNames: []string{"inner"}, FieldValues: []common.AstExpr{inner}}

	out := genString(t, func(g *Generator) { g.genStructLiteral(outer) })
	want := "(Outer){.inner = {.v = 1}}"
	if out != want {
		t.Errorf("genStructLiteral(nested) = %q; want %q", out, want)
	}
}

func TestGenCallPrintBoolRendersTernary(t *testing.T) {
	arg := lit(common.LIT_BOOL, 0, "")
	arg.BoolValue = true
	call := &common.Call{Callee: &common.Identifier{Name: "println"}, Args: []common.AstExpr{arg}}

	out := genString(t, func(g *Generator) { g.genCall(call) })
	want := `printf("%s\n", 1 ? "true" : "false")`
	if out != want {
		t.Errorf("genCall(println(bool)) = %q; want %q", out, want)
	}
}
