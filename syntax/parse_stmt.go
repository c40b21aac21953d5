package syntax

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/dtypes"
	"github.com/christopherzimmerman/jfmc/report"
)

// parseBlock implements `block := "{" statement* expr? "}"`: a plain
// expression with no trailing ";" immediately before "}" becomes the
// block's value instead of an ordinary statement.
func (p *Parser) parseBlock() *common.Block {
	startSpan := p.wantAndGet(TOK_LBRACE).Span

	var stmts []common.AstNode
	var trailer common.AstExpr

	guard := newLoopGuard()
	for !p.has(TOK_RBRACE) {
		if !guard.step(p, "block statements") {
			break
		}

		if isStmtKeyword(p.tok.Kind) {
			stmts = append(stmts, p.parseStatement())
		} else {
			expr := p.parseExpr()

			if p.has(TOK_SEMICOLON) {
				p.next()
				stmts = append(stmts, expr)
			} else if p.has(TOK_RBRACE) {
				trailer = expr
				break
			} else {
				p.want(TOK_SEMICOLON)
				stmts = append(stmts, expr)
			}
		}

		if p.panicking {
			p.synchronize()
		}
	}

	endSpan := p.wantAndGet(TOK_RBRACE).Span

	return &common.Block{
		AstBase: common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		Stmts:   stmts,
		Trailer: trailer,
	}
}

func isStmtKeyword(kind TokenKind) bool {
	switch kind {
	case TOK_LET, TOK_IF, TOK_WHILE, TOK_FOR, TOK_LOOP,
		TOK_RETURN, TOK_BREAK, TOK_CONTINUE, TOK_LBRACE:
		return true
	default:
		return false
	}
}

func (p *Parser) parseStatement() common.AstNode {
	switch p.tok.Kind {
	case TOK_LET:
		stmt := p.parseLet()
		p.want(TOK_SEMICOLON)
		return stmt
	case TOK_IF:
		return p.parseIf()
	case TOK_WHILE:
		return p.parseWhile()
	case TOK_FOR:
		return p.parseFor()
	case TOK_LOOP:
		return p.parseLoop()
	case TOK_RETURN:
		return p.parseReturn()
	case TOK_BREAK:
		span := p.tok.Span
		p.next()
		p.want(TOK_SEMICOLON)
		return &common.Break{AstBase: common.AstBase{Span: span}}
	case TOK_CONTINUE:
		span := p.tok.Span
		p.next()
		p.want(TOK_SEMICOLON)
		return &common.Continue{AstBase: common.AstBase{Span: span}}
	case TOK_LBRACE:
		return p.parseBlock()
	default:
		expr := p.parseExpr()
		p.want(TOK_SEMICOLON)
		return expr
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseLet() *common.Let {
	startSpan := p.tok.Span
	p.want(TOK_LET)

	mutable := false
	if p.has(TOK_MUT) {
		mutable = true
		p.next()
	}

	name := p.wantAndGet(TOK_IDENT).Value

	var typ dtypes.Type
	if p.has(TOK_COLON) {
		p.next()
		typ = p.parseType()
	}

	var init common.AstExpr
	if p.has(TOK_ASSIGN) {
		p.next()
		init = p.parseExpr()
	}

	endSpan := p.prevSpan

	return &common.Let{
		AstBase:     common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		Name:        name,
		Type:        typ,
		Initializer: init,
		Mutable:     mutable,
	}
}

/* -------------------------------------------------------------------------- */

// if condition parens are required by this parser even though the
// surface documentation calls them optional (spec open question #1).
func (p *Parser) parseIf() *common.If {
	startSpan := p.tok.Span
	p.want(TOK_IF)

	p.want(TOK_LPAREN)
	cond := p.parseExpr()
	p.want(TOK_RPAREN)

	then := p.parseBlock()

	var elseBranch common.AstNode
	endSpan := then.GetSpan()
	if p.has(TOK_ELSE) {
		p.next()

		if p.has(TOK_IF) {
			elseBranch = p.parseIf()
		} else {
			elseBranch = p.parseBlock()
		}
		endSpan = elseBranch.GetSpan()
	}

	return &common.If{
		AstBase: common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		Cond:    cond,
		Then:    then,
		Else:    elseBranch,
	}
}

func (p *Parser) parseWhile() *common.While {
	startSpan := p.tok.Span
	p.want(TOK_WHILE)

	p.want(TOK_LPAREN)
	cond := p.parseExpr()
	p.want(TOK_RPAREN)

	body := p.parseBlock()

	return &common.While{
		AstBase: common.AstBase{Span: report.SpanOver(startSpan, body.GetSpan())},
		Cond:    cond,
		Body:    body,
	}
}

// parseFor implements `for IDENT ( ":" type )? in EXPR ".." EXPR block`.
// The optional type annotation is accepted for surface compatibility
// but the analyzer always assigns the iterator an immutable i32.
func (p *Parser) parseFor() *common.For {
	startSpan := p.tok.Span
	p.want(TOK_FOR)

	iterName := p.wantAndGet(TOK_IDENT).Value

	if p.has(TOK_COLON) {
		p.next()
		p.parseType()
	}

	p.want(TOK_IN)
	start := p.parseExpr()
	p.want(TOK_DOTDOT)
	end := p.parseExpr()

	body := p.parseBlock()

	return &common.For{
		AstBase:  common.AstBase{Span: report.SpanOver(startSpan, body.GetSpan())},
		IterName: iterName,
		Start:    start,
		End:      end,
		Body:     body,
	}
}

func (p *Parser) parseLoop() *common.Loop {
	startSpan := p.tok.Span
	p.want(TOK_LOOP)

	body := p.parseBlock()

	return &common.Loop{
		AstBase: common.AstBase{Span: report.SpanOver(startSpan, body.GetSpan())},
		Body:    body,
	}
}

func (p *Parser) parseReturn() *common.Return {
	startSpan := p.tok.Span
	p.want(TOK_RETURN)

	var value common.AstExpr
	endSpan := startSpan
	if !p.has(TOK_SEMICOLON) {
		value = p.parseExpr()
		endSpan = value.GetSpan()
	}

	p.want(TOK_SEMICOLON)

	return &common.Return{
		AstBase: common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		Value:   value,
	}
}
