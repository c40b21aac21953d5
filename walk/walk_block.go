package walk

import "github.com/christopherzimmerman/jfmc/common"

// walkBlock pushes a fresh scope for a nested block (an if/else arm, or
// an explicit bare block) — spec §4.3's "pushes a new scope... for the
// arms of an if, or any explicit block." Loop bodies (while/for/loop)
// get a SCOPE_LOOP scope from their own walkers, and a function's own
// body shares the function's scope; both call walkBlockBody directly.
func (w *Walker) walkBlock(block *common.Block) {
	w.pushScope(common.SCOPE_BLOCK)
	w.walkBlockBody(block)
	w.popScope()
}

func (w *Walker) walkBlockBody(block *common.Block) {
	for _, stmt := range block.Stmts {
		w.walkStmt(stmt)
	}

	if block.Trailer != nil {
		w.walkExpr(block.Trailer)
	}
}
