package codegen

import (
	"fmt"
	"strings"

	"github.com/christopherzimmerman/jfmc/common"
)

// fixedIncludes is the C11 standard library surface the generated
// source always depends on (spec §4.4's prologue).
var fixedIncludes = []string{"stdio.h", "stdlib.h", "stdint.h", "stdbool.h", "math.h"}

// Generator walks a decorated Program and emits C11 source text into
// an internal buffer. Grounded on the teacher's total absence of a C
// backend plus smasonuk-sicpu/pkg/compiler.CodeGen's textual-emission
// idiom: a strings.Builder sink, a line-oriented write helper, and an
// explicit indent counter rather than a pretty-printer library.
type Generator struct {
	out         strings.Builder
	indentLevel int

	// inStructInit mirrors the original implementation's
	// in_struct_init flag: true while emitting a struct literal's
	// field list so a nested struct literal elides its own type
	// header and emits only the braced initializer.
	inStructInit bool
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) indent() {
	g.out.WriteString(strings.Repeat("    ", g.indentLevel))
}

func (g *Generator) write(format string, args ...any) {
	fmt.Fprintf(&g.out, format, args...)
}

func (g *Generator) writeln(format string, args ...any) {
	g.indent()
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteString("\n")
}

// Generate lowers prog to C source text. The caller must only invoke
// this once semantic analysis has reported zero errors (spec §7:
// "Codegen is never invoked on a failed semantic analysis").
func Generate(prog *common.Program) string {
	g := NewGenerator()
	g.genProgram(prog)
	return g.out.String()
}

func (g *Generator) genProgram(prog *common.Program) {
	for _, inc := range fixedIncludes {
		g.writeln("#include <%s>", inc)
	}

	for _, item := range prog.Items {
		if inc, ok := item.(*common.Include); ok {
			g.writeln("#include <%s>", inc.Path)
		}
	}

	g.writeln("")

	for _, item := range prog.Items {
		if st, ok := item.(*common.Struct); ok {
			g.genStruct(st)
		}
	}

	for _, item := range prog.Items {
		if impl, ok := item.(*common.Impl); ok {
			g.genImpl(impl)
		}
	}

	for _, item := range prog.Items {
		if fn, ok := item.(*common.Function); ok && fn.ReceiverStruct == "" {
			g.genFunction(fn.Name, fn)
		}
	}
}
