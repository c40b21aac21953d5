package codegen

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
)

func (g *Generator) genCall(call *common.Call) {
	switch callee := call.Callee.(type) {
	case *common.Identifier:
		switch callee.Name {
		case "println":
			g.genPrintCall(call, true)
			return
		case "print":
			g.genPrintCall(call, false)
			return
		case "sqrt":
			g.write("sqrt(")
			if len(call.Args) > 0 {
				g.genExpr(call.Args[0])
			}
			g.write(")")
			return
		}

		g.write(mangle(callee.Name))
		g.genArgList(call.Args)

	case *common.Field:
		g.genMethodCall(call, callee)

	default:
		g.genExpr(call.Callee)
		g.genArgList(call.Args)
	}
}

func (g *Generator) genArgList(args []common.AstExpr) {
	g.write("(")
	for i, a := range args {
		if i > 0 {
			g.write(", ")
		}
		g.genExpr(a)
	}
	g.write(")")
}

// genMethodCall implements spec §4.4's "obj.method(args…)" lowering to
// "Struct_method(obj, args…)".
func (g *Generator) genMethodCall(call *common.Call, callee *common.Field) {
	structName := "ERROR_unknown_struct"
	if t := callee.Object.GetType(); t != nil {
		if st, ok := dtypes.Deref(t).Inner().(*dtypes.StructType); ok {
			structName = st.Name
		}
	}

	g.write("%s_%s(", structName, callee.FieldName)
	g.genExpr(callee.Object)

	for _, a := range call.Args {
		g.write(", ")
		g.genExpr(a)
	}

	g.write(")")
}

// genPrintCall implements spec §4.4's println/print format-string
// selection table, keyed by the argument's resolved type.
func (g *Generator) genPrintCall(call *common.Call, newline bool) {
	suffix := ""
	if newline {
		suffix = "\\n"
	}

	if len(call.Args) == 0 {
		g.write("printf(\"%s\")", suffix)
		return
	}

	arg := call.Args[0]
	typ := arg.GetType()
	if typ == nil {
		g.write("printf(\"%s\")", suffix)
		return
	}

	switch t := typ.Inner().(type) {
	case *dtypes.StrType:
		g.write("printf(\"%%s%s\", ", suffix)
		g.genExpr(arg)
		g.write(")")

	case *dtypes.IntType:
		if t.Signed {
			g.write("printf(\"%%lld%s\", (long long)", suffix)
		} else {
			g.write("printf(\"%%llu%s\", (unsigned long long)", suffix)
		}
		g.genExpr(arg)
		g.write(")")

	case *dtypes.FloatType:
		g.write("printf(\"%%f%s\", ", suffix)
		g.genExpr(arg)
		g.write(")")

	case *dtypes.BoolType:
		g.write("printf(\"%%s%s\", ", suffix)
		g.genExpr(arg)
		g.write(" ? \"true\" : \"false\")")

	case *dtypes.CharType:
		g.write("printf(\"%%c%s\", ", suffix)
		g.genExpr(arg)
		g.write(")")

	default:
		g.write("printf(\"<unknown>%s\")", suffix)
	}
}
