package codegen

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
)

func (g *Generator) genBlock(block *common.Block) {
	g.write("{\n")
	g.indentLevel++

	for _, stmt := range block.Stmts {
		g.indent()
		g.genStmt(stmt)
		g.write("\n")
	}

	if block.Trailer != nil {
		g.indent()
		g.genExpr(block.Trailer)
		g.write(";\n")
	}

	g.indentLevel--
	g.indent()
	g.write("}")
}

func (g *Generator) genStmt(stmt common.AstNode) {
	switch v := stmt.(type) {
	case *common.Let:
		g.genLet(v)
	case *common.If:
		g.genIf(v)
	case *common.While:
		g.genWhile(v)
	case *common.For:
		g.genFor(v)
	case *common.Loop:
		g.genLoop(v)
	case *common.Return:
		g.genReturn(v)
	case *common.Break:
		g.write("break;")
	case *common.Continue:
		g.write("continue;")
	case *common.Block:
		g.genBlock(v)
	case common.AstExpr:
		g.genExpr(v)
		g.write(";")
	default:
		g.write("/* unsupported statement */")
	}
}

// genLet implements spec §4.4's `let [mut] x: T = v` lowering:
// immutability becomes `const`, and an array-typed variable declares
// with its size suffix instead of through lowerType alone.
func (g *Generator) genLet(let *common.Let) {
	if !let.Mutable {
		g.write("const ")
	}

	typ := let.Type
	if typ == nil {
		typ = &dtypes.UnknownType{}
	}

	g.write(declString(let.Name, typ))

	if let.Initializer != nil {
		g.write(" = ")
		g.genExpr(let.Initializer)
	}

	g.write(";")
}

func (g *Generator) genIf(ifStmt *common.If) {
	g.write("if (")
	g.genExpr(ifStmt.Cond)
	g.write(") ")
	g.genBlock(ifStmt.Then)

	switch e := ifStmt.Else.(type) {
	case nil:
	case *common.Block:
		g.write(" else ")
		g.genBlock(e)
	case *common.If:
		g.write(" else ")
		g.genIf(e)
	}
}

func (g *Generator) genWhile(ws *common.While) {
	g.write("while (")
	g.genExpr(ws.Cond)
	g.write(") ")
	g.genBlock(ws.Body)
}

// genFor implements spec §4.4's `for i in a..b` -> `for (int i = a; i
// < b; i++)` lowering; the iterator is always `int` regardless of a
// parsed-and-discarded source annotation (walk always binds it i32).
func (g *Generator) genFor(fs *common.For) {
	g.write("for (int %s = ", fs.IterName)
	g.genExpr(fs.Start)
	g.write("; %s < ", fs.IterName)
	g.genExpr(fs.End)
	g.write("; %s++) ", fs.IterName)
	g.genBlock(fs.Body)
}

func (g *Generator) genLoop(ls *common.Loop) {
	g.write("while (1) ")
	g.genBlock(ls.Body)
}

func (g *Generator) genReturn(ret *common.Return) {
	g.write("return")
	if ret.Value != nil {
		g.write(" ")
		g.genExpr(ret.Value)
	}
	g.write(";")
}
