package syntax

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
)

func (p *Parser) parseInclude() common.AstNode {
	startSpan := p.tok.Span
	p.want(TOK_INCLUDE)
	p.want(TOK_LPAREN)

	pathTok := p.wantAndGet(TOK_STRLIT)

	endSpan := p.wantAndGet(TOK_RPAREN).Span
	p.want(TOK_SEMICOLON)

	return &common.Include{
		AstBase:  common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		Path:     pathTok.Value,
		IsSystem: true,
	}
}

func (p *Parser) parseExtern() common.AstNode {
	startSpan := p.tok.Span
	p.want(TOK_EXTERN)

	if p.has(TOK_STRUCT) {
		st := p.parseStructBody(startSpan)
		st.IsExtern = true
		return st
	}

	name, params, retType, endSpan := p.parseFnSig()
	p.want(TOK_SEMICOLON)

	return &common.ExternFunction{
		AstBase:    common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		Name:       name,
		Params:     params,
		ReturnType: retType,
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseFn(receiverStruct string) *common.Function {
	startSpan := p.tok.Span
	name, params, retType, _ := p.parseFnSig()

	body := p.parseBlock()

	return &common.Function{
		AstBase:        common.AstBase{Span: report.SpanOver(startSpan, body.GetSpan())},
		Name:           name,
		Params:         params,
		ReturnType:     retType,
		Body:           body,
		ReceiverStruct: receiverStruct,
	}
}

// parseFnSig parses `"fn" IDENT "(" params? ")" ( "->" type )?` and
// returns the span of its last consumed token.
func (p *Parser) parseFnSig() (name string, params []common.Param, retType dtypes.Type, endSpan *report.TextSpan) {
	p.want(TOK_FN)

	nameTok := p.wantAndGet(TOK_IDENT)
	name = nameTok.Value
	endSpan = nameTok.Span

	p.want(TOK_LPAREN)

	if !p.has(TOK_RPAREN) {
		guard := newLoopGuard()
		for {
			if !guard.step(p, "function parameters") {
				break
			}

			pname := p.wantAndGet(TOK_IDENT).Value
			p.want(TOK_COLON)
			ptype := p.parseType()
			params = append(params, common.Param{Name: pname, Type: ptype})

			if p.has(TOK_COMMA) {
				p.next()
			} else {
				break
			}
		}
	}

	endSpan = p.wantAndGet(TOK_RPAREN).Span

	retType = dtypes.GlobVoidType
	if p.has(TOK_ARROW) {
		p.next()
		retType = p.parseType()
		endSpan = p.prevSpan
	}

	return
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseStruct() common.AstNode {
	startSpan := p.tok.Span
	return p.parseStructBody(startSpan)
}

func (p *Parser) parseStructBody(startSpan *report.TextSpan) *common.Struct {
	p.want(TOK_STRUCT)
	name := p.wantAndGet(TOK_IDENT).Value

	p.want(TOK_LBRACE)

	var fields []common.Param
	if !p.has(TOK_RBRACE) {
		guard := newLoopGuard()
		for {
			if !guard.step(p, "struct fields") {
				break
			}

			fname := p.wantAndGet(TOK_IDENT).Value
			p.want(TOK_COLON)
			ftype := p.parseType()
			fields = append(fields, common.Param{Name: fname, Type: ftype})

			if p.has(TOK_COMMA) {
				p.next()
			} else {
				break
			}
		}
	}

	endSpan := p.wantAndGet(TOK_RBRACE).Span

	return &common.Struct{
		AstBase: common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		Name:    name,
		Fields:  fields,
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseImpl() common.AstNode {
	startSpan := p.tok.Span
	p.want(TOK_IMPL)

	structName := p.wantAndGet(TOK_IDENT).Value

	p.want(TOK_LBRACE)

	var fns []*common.Function
	guard := newLoopGuard()
	for !p.has(TOK_RBRACE) {
		if !guard.step(p, "impl items") {
			break
		}

		fns = append(fns, p.parseFn(structName))
	}

	endSpan := p.wantAndGet(TOK_RBRACE).Span

	return &common.Impl{
		AstBase:    common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		StructName: structName,
		Functions:  fns,
	}
}
