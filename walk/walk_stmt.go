package walk

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
)

func (w *Walker) walkStmt(stmt common.AstNode) {
	switch v := stmt.(type) {
	case *common.Let:
		w.walkLet(v)
	case *common.If:
		w.walkIf(v)
	case *common.While:
		w.walkWhile(v)
	case *common.For:
		w.walkFor(v)
	case *common.Loop:
		w.walkLoop(v)
	case *common.Return:
		w.walkReturn(v)
	case *common.Break:
		w.walkBreak(v)
	case *common.Continue:
		w.walkContinue(v)
	case *common.Block:
		w.walkBlock(v)
	case common.AstExpr:
		w.walkExpr(v)
	default:
		report.Throw(unreachableStmtError{})
	}
}

type unreachableStmtError struct{}

func (unreachableStmtError) Error() string { return "unreachable AST statement variant" }

/* -------------------------------------------------------------------------- */

func (w *Walker) walkLet(let *common.Let) {
	var initType dtypes.Type
	if let.Initializer != nil {
		initType = w.walkExpr(let.Initializer)
	}

	if let.Type == nil {
		w.error(let.GetSpan(), "variable '%s' requires a type annotation", let.Name)
		let.Type = &dtypes.UnknownType{}
	} else if initType != nil {
		w.mustCompatible(let.Type, initType, let.Initializer.GetSpan())
	}

	sym := &common.Symbol{
		Name: let.Name, Span: let.GetSpan(), Kind: common.SYM_VARIABLE,
		Type: let.Type, Mutable: let.Mutable, Initialized: let.Initializer != nil,
	}

	w.declare(sym)
	let.Symbol = sym

	w.VarsAnalyzed++
}

/* -------------------------------------------------------------------------- */

func (w *Walker) walkIf(ifStmt *common.If) {
	condT := w.walkExpr(ifStmt.Cond)
	if condT != nil && !dtypes.Equal(condT, dtypes.GlobBoolType) {
		w.error(ifStmt.Cond.GetSpan(), "if condition must be bool")
	}

	w.walkBlock(ifStmt.Then)

	switch e := ifStmt.Else.(type) {
	case nil:
	case *common.Block:
		w.walkBlock(e)
	case *common.If:
		w.walkIf(e)
	}
}

func (w *Walker) walkWhile(ws *common.While) {
	condT := w.walkExpr(ws.Cond)
	if condT != nil && !dtypes.Equal(condT, dtypes.GlobBoolType) {
		w.error(ws.Cond.GetSpan(), "while condition must be bool")
	}

	w.loopDepth++
	w.pushScope(common.SCOPE_LOOP)
	w.walkBlockBody(ws.Body)
	w.popScope()
	w.loopDepth--
}

// walkFor declares the iterator variable inside the loop's own scope,
// since it is immutable and scoped only to the loop body (spec §4.3:
// "for range endpoints... iterator variable is immutable i32").
func (w *Walker) walkFor(fs *common.For) {
	startT := w.walkExpr(fs.Start)
	endT := w.walkExpr(fs.End)

	if startT != nil && !dtypes.IsIntegerType(startT) {
		w.error(fs.Start.GetSpan(), "for-loop start must be integral")
	}
	if endT != nil && !dtypes.IsIntegerType(endT) {
		w.error(fs.End.GetSpan(), "for-loop end must be integral")
	}

	w.loopDepth++
	w.pushScope(common.SCOPE_LOOP)

	iterSym := &common.Symbol{
		Name: fs.IterName, Span: fs.GetSpan(), Kind: common.SYM_VARIABLE,
		Type: dtypes.GlobI32Type, Mutable: false, Initialized: true,
	}
	w.declare(iterSym)

	w.walkBlockBody(fs.Body)

	w.popScope()
	w.loopDepth--
}

func (w *Walker) walkLoop(ls *common.Loop) {
	w.loopDepth++
	w.pushScope(common.SCOPE_LOOP)
	w.walkBlockBody(ls.Body)
	w.popScope()
	w.loopDepth--
}

func (w *Walker) walkReturn(ret *common.Return) {
	if w.funcDepth <= 0 {
		w.error(ret.GetSpan(), "'return' outside of a function")
		if ret.Value != nil {
			w.walkExpr(ret.Value)
		}
		return
	}

	if ret.Value != nil {
		valT := w.walkExpr(ret.Value)
		if valT != nil {
			w.mustCompatible(w.curFuncReturn, valT, ret.Value.GetSpan())
		}
		return
	}

	if w.curFuncReturn != nil && !dtypes.Equal(w.curFuncReturn, dtypes.GlobVoidType) {
		w.error(ret.GetSpan(), "missing return value in function returning %s", dumpType(w.curFuncReturn))
	}
}

func (w *Walker) walkBreak(b *common.Break) {
	if w.loopDepth <= 0 {
		w.error(b.GetSpan(), "'break' outside of a loop")
	}
}

func (w *Walker) walkContinue(c *common.Continue) {
	if w.loopDepth <= 0 {
		w.error(c.GetSpan(), "'continue' outside of a loop")
	}
}
