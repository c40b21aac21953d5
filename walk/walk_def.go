package walk

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
)

// registerStructs is pass 1 from spec §4.3: every Struct goes into the
// type registry before anything else is looked at, so any struct may
// refer to any other struct by name regardless of declaration order.
func (w *Walker) registerStructs(prog *common.Program) {
	for _, item := range prog.Items {
		st, ok := item.(*common.Struct)
		if !ok {
			continue
		}

		fields := make([]*common.Symbol, 0, len(st.Fields))
		for _, f := range st.Fields {
			fields = append(fields, &common.Symbol{
				Name: f.Name, Kind: common.SYM_FIELD, Type: f.Type, Span: st.GetSpan(),
			})
		}

		sym := &common.Symbol{
			Name: st.Name, Span: st.GetSpan(), Kind: common.SYM_STRUCT,
			Type: &dtypes.StructType{Name: st.Name}, Fields: fields,
		}

		if !w.symtab.DeclareStruct(sym) {
			w.error(st.GetSpan(), "duplicate struct definition: '%s'", st.Name)
			continue
		}

		w.StructsAnalyzed++
	}
}

// registerCallables is pass 2 from spec §4.3, widened to cover plain
// functions and externs alongside impl methods: every callable's
// signature must be known before any body is walked, which is what
// lets a function call one defined later in the file.
func (w *Walker) registerCallables(prog *common.Program) {
	for _, item := range prog.Items {
		switch v := item.(type) {
		case *common.Function:
			if v.ReceiverStruct == "" {
				w.registerFunctionSymbol(v.Name, v.Params, v.ReturnType, v.GetSpan(), v)
			}
		case *common.ExternFunction:
			w.registerFunctionSymbol(v.Name, v.Params, v.ReturnType, v.GetSpan(), nil)
		case *common.Impl:
			for _, m := range v.Functions {
				w.checkSelfParam(m, v.StructName)
				w.registerFunctionSymbol(m.MangledName(), m.Params, m.ReturnType, m.GetSpan(), m)
			}
		}
	}
}

func (w *Walker) checkSelfParam(m *common.Function, structName string) {
	if len(m.Params) == 0 || m.Params[0].Name != "self" {
		w.error(m.GetSpan(), "impl method '%s' must declare 'self' as its first parameter", m.Name)
		return
	}

	recv, ok := m.Params[0].Type.Inner().(*dtypes.StructType)
	if !ok || recv.Name != structName {
		w.error(m.GetSpan(), "'self' parameter of '%s' must have type %s", m.Name, structName)
	}
}

func (w *Walker) registerFunctionSymbol(
	name string,
	params []common.Param,
	ret dtypes.Type,
	span *report.TextSpan,
	fn *common.Function,
) {
	paramTypes := make([]dtypes.Type, len(params))
	paramNames := make([]string, len(params))
	for i, p := range params {
		paramTypes[i] = p.Type
		paramNames[i] = p.Name
	}

	sym := &common.Symbol{
		Name: name, Span: span, Kind: common.SYM_FUNCTION,
		Type:           &dtypes.FuncType{Params: paramTypes, ReturnType: ret},
		FuncParams:     paramTypes,
		FuncParamNames: paramNames,
		ReturnType:     ret,
	}

	if !w.declare(sym) {
		return
	}

	if fn != nil {
		fn.Symbol = sym
	}
}

/* -------------------------------------------------------------------------- */

// analyzeBodies is pass 3 from spec §4.3: every remaining item
// (function/method bodies, global lets, bare top-level statements) is
// walked in declaration order.
func (w *Walker) analyzeBodies(prog *common.Program) {
	for _, item := range prog.Items {
		switch v := item.(type) {
		case *common.Function:
			w.analyzeFunction(v)
		case *common.Impl:
			for _, m := range v.Functions {
				w.analyzeFunction(m)
			}
		case *common.Let:
			w.walkLet(v)
		case *common.Struct, *common.ExternFunction, *common.Include:
			// no body to walk
		default:
			w.walkStmt(item)
		}
	}
}

func (w *Walker) analyzeFunction(fn *common.Function) {
	prevReturn := w.curFuncReturn
	w.curFuncReturn = fn.ReturnType
	w.funcDepth++

	w.pushScope(common.SCOPE_FUNCTION)

	for i, param := range fn.Params {
		sym := &common.Symbol{
			Name: param.Name, Span: fn.GetSpan(), Kind: common.SYM_PARAMETER,
			Type: param.Type, Index: i, Initialized: true,
		}
		w.declare(sym)
	}

	if fn.Body != nil {
		w.walkBlockBody(fn.Body)
	}

	w.popScope()
	w.curFuncReturn = prevReturn
	w.funcDepth--

	w.FuncsAnalyzed++
}
