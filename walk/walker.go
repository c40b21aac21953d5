package walk

import (
	"fmt"

	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
	"github.com/christopherzimmerman/jfmc/util"
)

// Walker is the semantic analyzer: three ordered passes over a
// Program's top-level items (register structs, register impl methods,
// analyze everything else), using common.SymbolTable for scoped name
// resolution. Grounded on the teacher's Walker, generalized from a
// flat scope-stack + panic-on-first-error model to a scope tree plus
// an accumulating report.Log, since the spec requires a single run to
// collect more than one independent semantic diagnostic.
type Walker struct {
	fileName string
	symtab   *common.SymbolTable
	log      *report.Log

	loopDepth     int
	funcDepth     int
	curFuncReturn dtypes.Type

	FuncsAnalyzed   int
	StructsAnalyzed int
	VarsAnalyzed    int
}

func NewWalker(fileName string) *Walker {
	return &Walker{
		fileName: fileName,
		symtab:   common.NewSymbolTable(),
	}
}

// Analyze runs the three passes described in spec §4.3 and returns
// the accumulated diagnostic log. Codegen must never be invoked if the
// log is non-empty (spec §7). An internal error (report.Throw, reserved
// for an unreachable AST variant) is recovered here rather than
// crashing the process, and folded into the same log.
func (w *Walker) Analyze(prog *common.Program) (log *report.Log) {
	w.log = report.NewLog()
	log = w.log
	defer report.Catch(w.log)

	w.registerStructs(prog)
	w.registerCallables(prog)
	w.analyzeBodies(prog)

	return w.log
}

/* -------------------------------------------------------------------------- */

func (w *Walker) lookup(name string, span *report.TextSpan) *common.Symbol {
	if sym, ok := w.symtab.Lookup(name); ok {
		return sym
	}

	w.error(span, "undefined symbol: '%s'", name)
	return nil
}

func (w *Walker) declare(sym *common.Symbol) bool {
	if !w.symtab.Declare(sym) {
		w.error(sym.Span, "multiple symbols with name '%s' defined in same scope", sym.Name)
		return false
	}
	return true
}

func (w *Walker) pushScope(kind common.ScopeType) {
	w.symtab.PushScope(kind)
}

func (w *Walker) popScope() {
	w.symtab.PopScope()
}

/* -------------------------------------------------------------------------- */

func (w *Walker) error(span *report.TextSpan, format string, a ...any) {
	w.log.Add(&report.SourceError{
		Message: fmt.Sprintf(format, a...),
		Info: &report.SourceInfo{
			FileName: w.fileName,
			Span:     span,
		},
	})
}

// mustCompatible is the single gate through which every "compatible"
// rule in spec §4.3's type-checking table passes.
func (w *Walker) mustCompatible(dest, src dtypes.Type, span *report.TextSpan) {
	if !dtypes.Compatible(dest, src) {
		w.error(span, "type mismatch: expected a value compatible with %s, got %s",
			dumpType(dest), dumpType(src))
	}
}

func dumpType(t dtypes.Type) string {
	return util.DumpString(t)
}
