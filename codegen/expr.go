package codegen

import (
	"strconv"
	"strings"

	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
)

var binOpSymbol = map[common.BinOpKind]string{
	common.BINOP_ADD:  " + ",
	common.BINOP_SUB:  " - ",
	common.BINOP_MUL:  " * ",
	common.BINOP_DIV:  " / ",
	common.BINOP_MOD:  " %% ",
	common.BINOP_EQ:   " == ",
	common.BINOP_NEQ:  " != ",
	common.BINOP_LT:   " < ",
	common.BINOP_GT:   " > ",
	common.BINOP_LE:   " <= ",
	common.BINOP_GE:   " >= ",
	common.BINOP_AND:  " && ",
	common.BINOP_OR:   " || ",
	common.BINOP_BAND: " & ",
	common.BINOP_BOR:  " | ",
	common.BINOP_BXOR: " ^ ",
	common.BINOP_SHL:  " << ",
	common.BINOP_SHR:  " >> ",
}

func (g *Generator) genExpr(expr common.AstExpr) {
	if expr == nil {
		return
	}

	switch v := expr.(type) {
	case *common.Literal:
		g.genLiteral(v)
	case *common.Identifier:
		g.write(mangle(v.Name))
	case *common.BinaryOp:
		g.genBinaryOp(v)
	case *common.UnaryOp:
		g.genUnaryOp(v)
	case *common.Cast:
		g.genCast(v)
	case *common.Call:
		g.genCall(v)
	case *common.Field:
		g.genExpr(v.Object)
		g.write(".%s", v.FieldName)
	case *common.Index:
		g.genExpr(v.Array)
		g.write("[")
		g.genExpr(v.Idx)
		g.write("]")
	case *common.Assignment:
		g.genAssignment(v)
	case *common.ArrayLiteral:
		g.genArrayLiteral(v)
	case *common.StructLiteral:
		g.genStructLiteral(v)
	default:
		g.write("/* unsupported expression */")
	}
}

// mangle rewrites `Struct::method`-style path identifiers into their
// C form (glossary: "Mangling").
func mangle(name string) string {
	return strings.ReplaceAll(name, "::", "_")
}

// genLiteral implements the self-check from spec §4.4: a literal that
// reached codegen without a resolved type emits a comment instead of
// aborting.
func (g *Generator) genLiteral(lit *common.Literal) {
	typ := lit.GetType()
	if typ == nil {
		g.write("/* untyped literal */")
		return
	}

	switch typ.Inner().(type) {
	case *dtypes.IntType:
		g.write("%d", lit.IntValue)
	case *dtypes.FloatType:
		g.write(strconv.FormatFloat(lit.FloatValue, 'f', -1, 64))
	case *dtypes.StrType:
		// The lexeme's escapes are preserved raw (spec §4.1: escape
		// interpretation is deferred to codegen); write it through C's own
		// string syntax rather than re-escaping it.
		g.write("\"%s\"", lit.StrValue)
	case *dtypes.BoolType:
		if lit.BoolValue {
			g.write("1")
		} else {
			g.write("0")
		}
	case *dtypes.CharType:
		g.write("'%c'", lit.CharValue)
	default:
		g.write("/* unknown literal */")
	}
}

func (g *Generator) genBinaryOp(v *common.BinaryOp) {
	g.write("(")
	g.genExpr(v.Lhs)
	g.write(binOpSymbol[v.Op])
	g.genExpr(v.Rhs)
	g.write(")")
}

// genUnaryOp implements spec §4.4's array-decay special case: `&x`
// where x has array type emits just `x`.
func (g *Generator) genUnaryOp(v *common.UnaryOp) {
	switch v.Op {
	case common.UNOP_NEG:
		g.write("-")
		g.genExpr(v.Operand)
	case common.UNOP_NOT:
		g.write("!")
		g.genExpr(v.Operand)
	case common.UNOP_DEREF:
		g.write("*")
		g.genExpr(v.Operand)
	case common.UNOP_ADDR:
		if isArrayTyped(v.Operand) {
			g.genExpr(v.Operand)
		} else {
			g.write("&")
			g.genExpr(v.Operand)
		}
	}
}

func isArrayTyped(e common.AstExpr) bool {
	t := e.GetType()
	if t == nil {
		return false
	}
	_, ok := t.Inner().(*dtypes.ArrayType)
	return ok
}

func (g *Generator) genCast(c *common.Cast) {
	g.write("(%s)", lowerType(c.Target))
	g.genExpr(c.Expr)
}

func (g *Generator) genAssignment(a *common.Assignment) {
	g.genExpr(a.Target)
	g.write(assignOpSymbol(a.Op))
	g.genExpr(a.Value)
}

func assignOpSymbol(op common.AssignOp) string {
	switch op {
	case common.ASSIGN_ADD:
		return " += "
	case common.ASSIGN_SUB:
		return " -= "
	case common.ASSIGN_MUL:
		return " *= "
	case common.ASSIGN_DIV:
		return " /= "
	default:
		return " = "
	}
}

func (g *Generator) genArrayLiteral(al *common.ArrayLiteral) {
	g.write("{")
	for i, e := range al.Elements {
		if i > 0 {
			g.write(", ")
		}
		g.genExpr(e)
	}
	g.write("}")
}

// genStructLiteral implements the C99 compound-literal rule from spec
// §4.4: `(Name){ .field = value, … }`, with the type header elided
// when nested inside another struct literal's field list.
func (g *Generator) genStructLiteral(sl *common.StructLiteral) {
	if g.inStructInit {
		g.write("{")
	} else {
		g.write("(%s){", sl.StructName)
	}

	prevInit := g.inStructInit
	g.inStructInit = true

	for i, fname := range sl.FieldNames {
		if i > 0 {
			g.write(", ")
		}
		g.write(".%s = ", fname)
		g.genExpr(sl.FieldValues[i])
	}

	g.inStructInit = prevInit
	g.write("}")
}
