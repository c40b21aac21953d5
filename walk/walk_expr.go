package walk

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
)

// walkExpr decorates expr with its resolved type and returns it.
// Already-checked nodes short-circuit on revisit (spec §4.3's
// decoration invariant) — harmless since every node is visited from
// exactly one parent, but cheap insurance for anything walked twice
// (an expression statement inside a block's trailer path, say).
func (w *Walker) walkExpr(expr common.AstExpr) dtypes.Type {
	if expr == nil {
		return &dtypes.UnknownType{}
	}

	if t := expr.GetType(); t != nil {
		return t
	}

	var result dtypes.Type

	switch v := expr.(type) {
	case *common.Literal:
		result = w.walkLiteral(v)
	case *common.Identifier:
		result = w.walkIdentifier(v)
	case *common.BinaryOp:
		result = w.walkBinaryOp(v)
	case *common.UnaryOp:
		result = w.walkUnaryOp(v)
	case *common.Cast:
		result = w.walkCast(v)
	case *common.Call:
		result = w.walkCall(v)
	case *common.Field:
		result = w.walkField(v)
	case *common.Index:
		result = w.walkIndex(v)
	case *common.Assignment:
		result = w.walkAssignment(v)
	case *common.ArrayLiteral:
		result = w.walkArrayLiteral(v)
	case *common.StructLiteral:
		result = w.walkStructLiteral(v)
	default:
		report.Throw(unreachableStmtError{})
	}

	if result == nil {
		result = &dtypes.UnknownType{}
	}

	expr.SetType(result)
	return result
}

/* -------------------------------------------------------------------------- */

func (w *Walker) walkLiteral(lit *common.Literal) dtypes.Type {
	switch lit.Kind {
	case common.LIT_INT:
		return dtypes.GlobDefaultIntType
	case common.LIT_FLOAT:
		return dtypes.GlobDefaultFloatType
	case common.LIT_CHAR:
		return dtypes.GlobCharType
	case common.LIT_BOOL:
		return dtypes.GlobBoolType
	case common.LIT_STR:
		return dtypes.GlobStrType
	default:
		return &dtypes.UnknownType{}
	}
}

func (w *Walker) walkIdentifier(id *common.Identifier) dtypes.Type {
	sym := w.lookup(id.Name, id.GetSpan())
	if sym == nil {
		return &dtypes.UnknownType{}
	}

	id.Symbol = sym
	return sym.Type
}

func (w *Walker) walkCast(c *common.Cast) dtypes.Type {
	w.walkExpr(c.Expr)
	// "Always permitted if the operand produced a type" (spec §4.3) — no
	// narrowing check, so nothing further to validate here.
	return c.Target
}

/* -------------------------------------------------------------------------- */

func (w *Walker) walkCall(call *common.Call) dtypes.Type {
	switch callee := call.Callee.(type) {
	case *common.Identifier:
		switch callee.Name {
		case "println", "print":
			for _, a := range call.Args {
				w.walkExpr(a)
			}
			return dtypes.GlobVoidType
		case "sqrt":
			return w.walkSqrtCall(call)
		}

		return w.walkPlainCall(call, callee)

	case *common.Field:
		return w.walkMethodCall(call, callee)

	default:
		w.walkExpr(call.Callee)
		for _, a := range call.Args {
			w.walkExpr(a)
		}
		w.error(call.GetSpan(), "expression is not callable")
		return &dtypes.UnknownType{}
	}
}

func (w *Walker) walkSqrtCall(call *common.Call) dtypes.Type {
	if len(call.Args) != 1 {
		w.error(call.GetSpan(), "sqrt expects exactly one argument")
		for _, a := range call.Args {
			w.walkExpr(a)
		}
		return dtypes.GlobF32Type
	}

	argT := w.walkExpr(call.Args[0])
	if argT != nil && !dtypes.IsNumberType(argT) {
		w.error(call.Args[0].GetSpan(), "sqrt argument must be numeric")
	}

	// "sqrt always returns f32 even when called with an f64 argument" —
	// spec §9 flags this as a silent narrowing, kept as-is.
	return dtypes.GlobF32Type
}

func (w *Walker) walkPlainCall(call *common.Call, callee *common.Identifier) dtypes.Type {
	sym := w.lookup(callee.Name, callee.GetSpan())
	if sym == nil {
		for _, a := range call.Args {
			w.walkExpr(a)
		}
		return &dtypes.UnknownType{}
	}

	callee.Symbol = sym

	if sym.Kind != common.SYM_FUNCTION {
		w.error(callee.GetSpan(), "'%s' is not a function", callee.Name)
		for _, a := range call.Args {
			w.walkExpr(a)
		}
		return &dtypes.UnknownType{}
	}

	w.checkArgs(sym.FuncParams, call.Args, call.GetSpan())
	return sym.ReturnType
}

// walkMethodCall implements "Call (method via field)" from spec §4.3:
// auto-dereference the receiver, resolve Struct::method, and pass the
// receiver as the implicit first argument.
func (w *Walker) walkMethodCall(call *common.Call, callee *common.Field) dtypes.Type {
	objType := w.walkExpr(callee.Object)
	deref := dtypes.Deref(objType)

	st, ok := deref.Inner().(*dtypes.StructType)
	if !ok {
		w.error(callee.GetSpan(), "method call on a non-struct value")
		for _, a := range call.Args {
			w.walkExpr(a)
		}
		return &dtypes.UnknownType{}
	}

	mangled := st.Name + "::" + callee.FieldName
	sym, ok := w.symtab.Lookup(mangled)
	if !ok {
		w.error(callee.GetSpan(), "%s has no method '%s'", st.Name, callee.FieldName)
		for _, a := range call.Args {
			w.walkExpr(a)
		}
		return &dtypes.UnknownType{}
	}

	if len(sym.FuncParams) == 0 {
		w.error(callee.GetSpan(), "'%s' is not a valid method for %s", callee.FieldName, st.Name)
		return &dtypes.UnknownType{}
	}

	w.checkArgs(sym.FuncParams[1:], call.Args, call.GetSpan())
	return sym.ReturnType
}

func (w *Walker) checkArgs(params []dtypes.Type, args []common.AstExpr, span *report.TextSpan) {
	if len(args) != len(params) {
		w.error(span, "expected %d argument(s), got %d", len(params), len(args))
	}

	for i, a := range args {
		at := w.walkExpr(a)
		if i < len(params) && at != nil {
			w.mustCompatible(params[i], at, a.GetSpan())
		}
	}
}

/* -------------------------------------------------------------------------- */

// walkField implements "Field" from spec §4.3: object must be a
// struct, or reference/pointer to struct (auto-dereferenced).
func (w *Walker) walkField(f *common.Field) dtypes.Type {
	objType := w.walkExpr(f.Object)
	deref := dtypes.Deref(objType)

	st, ok := deref.Inner().(*dtypes.StructType)
	if !ok {
		w.error(f.GetSpan(), "field access on a non-struct value")
		return &dtypes.UnknownType{}
	}

	structSym, ok := w.symtab.LookupStruct(st.Name)
	if !ok {
		w.error(f.GetSpan(), "unknown struct type '%s'", st.Name)
		return &dtypes.UnknownType{}
	}

	for _, field := range structSym.Fields {
		if field.Name == f.FieldName {
			return field.Type
		}
	}

	w.error(f.GetSpan(), "%s has no field '%s'", st.Name, f.FieldName)
	return &dtypes.UnknownType{}
}

// walkIndex implements "Index" from spec §4.3: array value must be
// array or pointer (or reference-to-array, auto-dereferenced); index
// must be integral.
func (w *Walker) walkIndex(idx *common.Index) dtypes.Type {
	arrType := w.walkExpr(idx.Array)
	idxType := w.walkExpr(idx.Idx)

	if idxType != nil && !dtypes.IsIntegerType(idxType) {
		w.error(idx.Idx.GetSpan(), "index must be integral")
	}

	deref := dtypes.Deref(arrType)

	switch d := deref.Inner().(type) {
	case *dtypes.ArrayType:
		return d.ElemType
	case *dtypes.PointerType:
		return d.Pointee
	default:
		w.error(idx.Array.GetSpan(), "cannot index a non-array, non-pointer value")
		return &dtypes.UnknownType{}
	}
}

/* -------------------------------------------------------------------------- */

func (w *Walker) walkAssignment(a *common.Assignment) dtypes.Type {
	targetType := w.walkExpr(a.Target)

	if !a.Target.IsMutable() {
		w.error(a.Target.GetSpan(), "assignment target is not mutable")
	}

	valType := w.walkExpr(a.Value)

	if a.Op == common.ASSIGN {
		if targetType != nil && valType != nil {
			w.mustCompatible(targetType, valType, a.Value.GetSpan())
		}
		return targetType
	}

	opKind, ok := compoundAssignOps[a.Op]
	if !ok {
		return targetType
	}

	resType := w.checkBinOp(opKind, targetType, valType, a.GetSpan())
	if targetType != nil && resType != nil {
		w.mustCompatible(targetType, resType, a.GetSpan())
	}

	return targetType
}

var compoundAssignOps = map[common.AssignOp]common.BinOpKind{
	common.ASSIGN_ADD: common.BINOP_ADD,
	common.ASSIGN_SUB: common.BINOP_SUB,
	common.ASSIGN_MUL: common.BINOP_MUL,
	common.ASSIGN_DIV: common.BINOP_DIV,
}

/* -------------------------------------------------------------------------- */

func (w *Walker) walkArrayLiteral(al *common.ArrayLiteral) dtypes.Type {
	var elemType dtypes.Type = &dtypes.UnknownType{}

	for i, elem := range al.Elements {
		t := w.walkExpr(elem)
		if i == 0 {
			elemType = t
			continue
		}
		if t != nil {
			w.mustCompatible(elemType, t, elem.GetSpan())
		}
	}

	return &dtypes.ArrayType{ElemType: elemType, Size: uint64(len(al.Elements))}
}

func (w *Walker) walkStructLiteral(sl *common.StructLiteral) dtypes.Type {
	structSym, ok := w.symtab.LookupStruct(sl.StructName)
	if !ok {
		w.error(sl.GetSpan(), "unknown struct type '%s'", sl.StructName)
		for _, v := range sl.FieldValues {
			w.walkExpr(v)
		}
		return &dtypes.UnknownType{}
	}

	seen := make(map[string]bool)

	for i, fname := range sl.FieldNames {
		if seen[fname] {
			w.error(sl.GetSpan(), "duplicate field '%s' in struct literal", fname)
		}
		seen[fname] = true

		var fieldType dtypes.Type
		for _, f := range structSym.Fields {
			if f.Name == fname {
				fieldType = f.Type
				break
			}
		}

		valType := w.walkExpr(sl.FieldValues[i])

		if fieldType == nil {
			w.error(sl.GetSpan(), "%s has no field '%s'", sl.StructName, fname)
			continue
		}

		if valType != nil {
			w.mustCompatible(fieldType, valType, sl.FieldValues[i].GetSpan())
		}
	}

	return &dtypes.StructType{Name: sl.StructName}
}
