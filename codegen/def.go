package codegen

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
)

// declString renders "T name" for a scalar/struct/pointer type, or
// "T name[N]" for an array — the one declaration-site special case in
// spec §4.4's type-lowering table, shared by struct fields, function
// parameters, and let statements.
func declString(name string, typ dtypes.Type) string {
	if arr, ok := typ.Inner().(*dtypes.ArrayType); ok {
		return lowerType(arr.ElemType) + " " + name + arraySuffix(arr.Size)
	}
	return lowerType(typ) + " " + name
}

func arraySuffix(size uint64) string {
	return "[" + itoa(size) + "]"
}

// genStruct emits a typedef-struct. Extern structs are skipped: they
// name a type the user's own included headers already declare (spec
// §4.4's "Ordering" rule, extended by symmetry to structs the same way
// it is stated explicitly for extern functions).
func (g *Generator) genStruct(st *common.Struct) {
	if st.IsExtern {
		return
	}

	g.writeln("typedef struct %s {", st.Name)
	g.indentLevel++

	for _, f := range st.Fields {
		g.writeln("%s;", declString(f.Name, f.Type))
	}

	g.indentLevel--
	g.writeln("} %s;", st.Name)
	g.writeln("")
}

func (g *Generator) genImpl(impl *common.Impl) {
	for _, m := range impl.Functions {
		g.genFunction(impl.StructName+"_"+m.Name, m)
	}
}

func (g *Generator) genFunction(cName string, fn *common.Function) {
	g.write("%s %s(", lowerType(fn.ReturnType), cName)

	if len(fn.Params) == 0 {
		g.write("void")
	} else {
		for i, p := range fn.Params {
			if i > 0 {
				g.write(", ")
			}
			// Mutability is parameter-level and discarded per spec
			// §4.4's "Mutability lowering" — every parameter lowers
			// to a plain (non-const) C type.
			g.write(declString(p.Name, p.Type))
		}
	}

	g.write(") ")

	if fn.Body != nil {
		g.genBlock(fn.Body)
	} else {
		g.write("{ }")
	}

	g.write("\n\n")
}
