package walk

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
)

var binOpSymbol = map[common.BinOpKind]string{
	common.BINOP_ADD:  "+",
	common.BINOP_SUB:  "-",
	common.BINOP_MUL:  "*",
	common.BINOP_DIV:  "/",
	common.BINOP_MOD:  "%",
	common.BINOP_EQ:   "==",
	common.BINOP_NEQ:  "!=",
	common.BINOP_LT:   "<",
	common.BINOP_GT:   ">",
	common.BINOP_LE:   "<=",
	common.BINOP_GE:   ">=",
	common.BINOP_AND:  "&&",
	common.BINOP_OR:   "||",
	common.BINOP_BAND: "&",
	common.BINOP_BOR:  "|",
	common.BINOP_BXOR: "^",
	common.BINOP_SHL:  "<<",
	common.BINOP_SHR:  ">>",
}

var unOpSymbol = map[common.UnOpKind]string{
	common.UNOP_NEG:   "-",
	common.UNOP_NOT:   "!",
	common.UNOP_DEREF: "*",
	common.UNOP_ADDR:  "&",
}

func (w *Walker) walkBinaryOp(v *common.BinaryOp) dtypes.Type {
	lt := w.walkExpr(v.Lhs)
	rt := w.walkExpr(v.Rhs)
	return w.checkBinOp(v.Op, lt, rt, v.GetSpan())
}

// checkBinOp implements spec §4.3's binary operator type-checking
// table: arithmetic widens to the widest of {f64, f32, i32} present on
// either side, comparisons and equality always produce bool, logical
// ops require bool on both sides, and bitwise/shift ops require
// integral operands on both sides and carry the left operand's type.
func (w *Walker) checkBinOp(op common.BinOpKind, lt, rt dtypes.Type, span *report.TextSpan) dtypes.Type {
	if lt == nil || rt == nil {
		return &dtypes.UnknownType{}
	}

	switch op {
	case common.BINOP_ADD, common.BINOP_SUB, common.BINOP_MUL, common.BINOP_DIV, common.BINOP_MOD:
		if !dtypes.IsNumberType(lt) || !dtypes.IsNumberType(rt) {
			w.badOperands(op, lt, rt, span)
			return &dtypes.UnknownType{}
		}
		return arithmeticResult(lt, rt)

	case common.BINOP_LT, common.BINOP_GT, common.BINOP_LE, common.BINOP_GE:
		if !dtypes.IsNumberType(lt) || !dtypes.IsNumberType(rt) {
			w.badOperands(op, lt, rt, span)
		}
		return dtypes.GlobBoolType

	case common.BINOP_EQ, common.BINOP_NEQ:
		if !dtypes.Equal(lt, rt) {
			w.badOperands(op, lt, rt, span)
		}
		return dtypes.GlobBoolType

	case common.BINOP_AND, common.BINOP_OR:
		if !dtypes.Equal(lt, dtypes.GlobBoolType) || !dtypes.Equal(rt, dtypes.GlobBoolType) {
			w.badOperands(op, lt, rt, span)
		}
		return dtypes.GlobBoolType

	case common.BINOP_BAND, common.BINOP_BOR, common.BINOP_BXOR, common.BINOP_SHL, common.BINOP_SHR:
		if !dtypes.IsIntegerType(lt) || !dtypes.IsIntegerType(rt) {
			w.badOperands(op, lt, rt, span)
			return &dtypes.UnknownType{}
		}
		return lt

	default:
		return &dtypes.UnknownType{}
	}
}

// arithmeticResult picks the widest of {f64, f32, i32} present across
// the two operands (spec §4.3) — neither operand's own bit width
// beyond that tier matters for the result.
func arithmeticResult(lt, rt dtypes.Type) dtypes.Type {
	if dtypes.IsFloatType(lt) || dtypes.IsFloatType(rt) {
		if isF64(lt) || isF64(rt) {
			return dtypes.GlobF64Type
		}
		return dtypes.GlobF32Type
	}
	return dtypes.GlobI32Type
}

func isF64(t dtypes.Type) bool {
	ft, ok := t.Inner().(*dtypes.FloatType)
	return ok && ft.BitSize == 64
}

func (w *Walker) badOperands(op common.BinOpKind, lt, rt dtypes.Type, span *report.TextSpan) {
	w.error(span, "cannot apply '%s' to %s and %s", binOpSymbol[op], dumpType(lt), dumpType(rt))
}

/* -------------------------------------------------------------------------- */

func (w *Walker) walkUnaryOp(v *common.UnaryOp) dtypes.Type {
	operandT := w.walkExpr(v.Operand)
	return w.checkUnOp(v.Op, operandT, v.IsMutRef, v.GetSpan())
}

func (w *Walker) checkUnOp(op common.UnOpKind, operandT dtypes.Type, isMutRef bool, span *report.TextSpan) dtypes.Type {
	if operandT == nil {
		return &dtypes.UnknownType{}
	}

	switch op {
	case common.UNOP_NEG:
		if !dtypes.IsNumberType(operandT) {
			w.badUnaryOperand(op, operandT, span)
			return &dtypes.UnknownType{}
		}
		return operandT

	case common.UNOP_NOT:
		if !dtypes.Equal(operandT, dtypes.GlobBoolType) {
			w.badUnaryOperand(op, operandT, span)
		}
		return dtypes.GlobBoolType

	case common.UNOP_DEREF:
		switch pt := operandT.Inner().(type) {
		case *dtypes.PointerType:
			return pt.Pointee
		case *dtypes.ReferenceType:
			return pt.Referent
		default:
			w.badUnaryOperand(op, operandT, span)
			return &dtypes.UnknownType{}
		}

	case common.UNOP_ADDR:
		return &dtypes.ReferenceType{Referent: operandT, Mutable: isMutRef}

	default:
		return &dtypes.UnknownType{}
	}
}

func (w *Walker) badUnaryOperand(op common.UnOpKind, t dtypes.Type, span *report.TextSpan) {
	w.error(span, "cannot apply '%s' to type %s", unOpSymbol[op], dumpType(t))
}
