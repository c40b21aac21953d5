package syntax

import (
	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/report"
)

// parseExpr is the entry point for the whole precedence chain in
// spec §4.2: assignment (right-assoc) < logical-or < logical-and <
// bitwise-or < bitwise-xor < bitwise-and < equality < comparison <
// cast < shift < additive < multiplicative < unary < postfix < primary.
func (p *Parser) parseExpr() common.AstExpr {
	return p.parseAssignment()
}

var assignOps = map[TokenKind]common.AssignOp{
	TOK_ASSIGN:   common.ASSIGN,
	TOK_PLUSEQ:   common.ASSIGN_ADD,
	TOK_MINUSEQ:  common.ASSIGN_SUB,
	TOK_STAREQ:   common.ASSIGN_MUL,
	TOK_SLASHEQ:  common.ASSIGN_DIV,
}

func (p *Parser) parseAssignment() common.AstExpr {
	lhs := p.parseLogicalOr()

	if op, ok := assignOps[p.tok.Kind]; ok {
		p.next()
		rhs := p.parseAssignment()

		return &common.Assignment{
			AstExprBase: common.AstExprBase{Span: report.SpanOver(lhs.GetSpan(), rhs.GetSpan())},
			Target:      lhs,
			Op:          op,
			Value:       rhs,
		}
	}

	return lhs
}

/* -------------------------------------------------------------------------- */

// binaryChain is the shared left-associative precedence-climbing step:
// parse one operand at the next-higher level, then fold in zero or
// more same-precedence operators.
func (p *Parser) binaryChain(next func() common.AstExpr, ops map[TokenKind]common.BinOpKind) common.AstExpr {
	lhs := next()

	for {
		opKind, ok := ops[p.tok.Kind]
		if !ok {
			return lhs
		}

		p.next()
		rhs := next()

		lhs = &common.BinaryOp{
			AstExprBase: common.AstExprBase{Span: report.SpanOver(lhs.GetSpan(), rhs.GetSpan())},
			Op:          opKind,
			Lhs:         lhs,
			Rhs:         rhs,
		}
	}
}

func (p *Parser) parseLogicalOr() common.AstExpr {
	return p.binaryChain(p.parseLogicalAnd, map[TokenKind]common.BinOpKind{TOK_PIPEPIPE: common.BINOP_OR})
}

func (p *Parser) parseLogicalAnd() common.AstExpr {
	return p.binaryChain(p.parseBitOr, map[TokenKind]common.BinOpKind{TOK_AMPAMP: common.BINOP_AND})
}

func (p *Parser) parseBitOr() common.AstExpr {
	return p.binaryChain(p.parseBitXor, map[TokenKind]common.BinOpKind{TOK_PIPE: common.BINOP_BOR})
}

func (p *Parser) parseBitXor() common.AstExpr {
	return p.binaryChain(p.parseBitAnd, map[TokenKind]common.BinOpKind{TOK_CARET: common.BINOP_BXOR})
}

func (p *Parser) parseBitAnd() common.AstExpr {
	return p.binaryChain(p.parseEquality, map[TokenKind]common.BinOpKind{TOK_AMP: common.BINOP_BAND})
}

func (p *Parser) parseEquality() common.AstExpr {
	return p.binaryChain(p.parseComparison, map[TokenKind]common.BinOpKind{
		TOK_EQ: common.BINOP_EQ, TOK_NEQ: common.BINOP_NEQ,
	})
}

func (p *Parser) parseComparison() common.AstExpr {
	return p.binaryChain(p.parseCast, map[TokenKind]common.BinOpKind{
		TOK_LT: common.BINOP_LT, TOK_GT: common.BINOP_GT,
		TOK_LE: common.BINOP_LE, TOK_GE: common.BINOP_GE,
	})
}

// parseCast sits between comparison and shift in the precedence chain.
// Its right-hand side is a type, not an expression, so it cannot reuse
// binaryChain.
func (p *Parser) parseCast() common.AstExpr {
	lhs := p.parseShift()

	for p.has(TOK_AS) {
		p.next()
		target := p.parseType()

		lhs = &common.Cast{
			AstExprBase: common.AstExprBase{Span: report.SpanOver(lhs.GetSpan(), p.prevSpan)},
			Expr:        lhs,
			Target:      target,
		}
	}

	return lhs
}

func (p *Parser) parseShift() common.AstExpr {
	return p.binaryChain(p.parseAdditive, map[TokenKind]common.BinOpKind{
		TOK_SHL: common.BINOP_SHL, TOK_SHR: common.BINOP_SHR,
	})
}

func (p *Parser) parseAdditive() common.AstExpr {
	return p.binaryChain(p.parseMultiplicative, map[TokenKind]common.BinOpKind{
		TOK_PLUS: common.BINOP_ADD, TOK_MINUS: common.BINOP_SUB,
	})
}

func (p *Parser) parseMultiplicative() common.AstExpr {
	return p.binaryChain(p.parseUnary, map[TokenKind]common.BinOpKind{
		TOK_STAR: common.BINOP_MUL, TOK_FSLASH: common.BINOP_DIV, TOK_PERCENT: common.BINOP_MOD,
	})
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parseUnary() common.AstExpr {
	startSpan := p.tok.Span

	switch p.tok.Kind {
	case TOK_MINUS:
		p.next()
		operand := p.parseUnary()
		return &common.UnaryOp{
			AstExprBase: common.AstExprBase{Span: report.SpanOver(startSpan, operand.GetSpan())},
			Op:          common.UNOP_NEG, Operand: operand,
		}
	case TOK_BANG:
		p.next()
		operand := p.parseUnary()
		return &common.UnaryOp{
			AstExprBase: common.AstExprBase{Span: report.SpanOver(startSpan, operand.GetSpan())},
			Op:          common.UNOP_NOT, Operand: operand,
		}
	case TOK_STAR:
		p.next()
		operand := p.parseUnary()
		return &common.UnaryOp{
			AstExprBase: common.AstExprBase{Span: report.SpanOver(startSpan, operand.GetSpan())},
			Op:          common.UNOP_DEREF, Operand: operand,
		}
	case TOK_AMP:
		p.next()

		isMutRef := false
		if p.has(TOK_MUT) {
			isMutRef = true
			p.next()
		}

		operand := p.parseUnary()
		return &common.UnaryOp{
			AstExprBase: common.AstExprBase{Span: report.SpanOver(startSpan, operand.GetSpan())},
			Op:          common.UNOP_ADDR, Operand: operand, IsMutRef: isMutRef,
		}
	default:
		return p.parsePostfix()
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parsePostfix() common.AstExpr {
	expr := p.parsePrimary()

	guard := newLoopGuard()
	for {
		if !guard.step(p, "postfix chain") {
			return expr
		}

		switch p.tok.Kind {
		case TOK_LPAREN:
			expr = p.parseCallArgs(expr)
		case TOK_LBRACKET:
			p.next()
			idx := p.parseExpr()
			endSpan := p.wantAndGet(TOK_RBRACKET).Span
			expr = &common.Index{
				AstExprBase: common.AstExprBase{Span: report.SpanOver(expr.GetSpan(), endSpan)},
				Array:       expr, Idx: idx,
			}
		case TOK_DOT:
			p.next()
			fieldTok := p.wantAndGet(TOK_IDENT)
			expr = &common.Field{
				AstExprBase: common.AstExprBase{Span: report.SpanOver(expr.GetSpan(), fieldTok.Span)},
				Object:      expr, FieldName: fieldTok.Value,
			}
		case TOK_COLONCOLON:
			ident, ok := expr.(*common.Identifier)
			if !ok {
				p.errorHere("'::' is only valid after an identifier")
				return expr
			}
			p.next()
			segTok := p.wantAndGet(TOK_IDENT)
			expr = &common.Identifier{
				AstExprBase: common.AstExprBase{Span: report.SpanOver(ident.GetSpan(), segTok.Span)},
				Name:        ident.Name + "::" + segTok.Value,
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallArgs(callee common.AstExpr) *common.Call {
	p.want(TOK_LPAREN)

	var args []common.AstExpr
	if !p.has(TOK_RPAREN) {
		guard := newLoopGuard()
		for {
			if !guard.step(p, "call arguments") {
				break
			}

			args = append(args, p.parseExpr())

			if p.has(TOK_COMMA) {
				p.next()
			} else {
				break
			}
		}
	}

	endSpan := p.wantAndGet(TOK_RPAREN).Span

	return &common.Call{
		AstExprBase: common.AstExprBase{Span: report.SpanOver(callee.GetSpan(), endSpan)},
		Callee:      callee, Args: args,
	}
}

/* -------------------------------------------------------------------------- */

func (p *Parser) parsePrimary() common.AstExpr {
	switch p.tok.Kind {
	case TOK_INTLIT:
		tok := p.tok
		p.next()
		return &common.Literal{
			AstExprBase: common.AstExprBase{Span: tok.Span},
			Kind:        common.LIT_INT, IntValue: tok.IntValue,
		}
	case TOK_FLOATLIT:
		tok := p.tok
		p.next()
		return &common.Literal{
			AstExprBase: common.AstExprBase{Span: tok.Span},
			Kind:        common.LIT_FLOAT, FloatValue: tok.FloatValue,
		}
	case TOK_CHARLIT:
		tok := p.tok
		p.next()
		return &common.Literal{
			AstExprBase: common.AstExprBase{Span: tok.Span},
			Kind:        common.LIT_CHAR, CharValue: tok.CharValue,
		}
	case TOK_STRLIT:
		tok := p.tok
		p.next()
		return &common.Literal{
			AstExprBase: common.AstExprBase{Span: tok.Span},
			Kind:        common.LIT_STR, StrValue: tok.Value,
		}
	case TOK_TRUE, TOK_FALSE:
		tok := p.tok
		p.next()
		return &common.Literal{
			AstExprBase: common.AstExprBase{Span: tok.Span},
			Kind:        common.LIT_BOOL, BoolValue: tok.BoolValue,
		}
	case TOK_IDENT:
		identTok := p.tok
		p.next()

		if p.has(TOK_LBRACE) && p.looksLikeStructLiteral() {
			return p.parseStructLiteralBody(identTok)
		}

		return &common.Identifier{
			AstExprBase: common.AstExprBase{Span: identTok.Span},
			Name:        identTok.Value,
		}
	case TOK_LPAREN:
		p.next()
		inner := p.parseExpr()
		p.want(TOK_RPAREN)
		return inner
	case TOK_LBRACKET:
		return p.parseArrayLiteral()
	default:
		p.reject()
		return &common.Literal{AstExprBase: common.AstExprBase{Span: p.tok.Span}}
	}
}

// looksLikeStructLiteral implements the bounded, non-consuming lookahead
// from spec §4.2: at IDENT "{", check one token further without
// advancing the cursor.
func (p *Parser) looksLikeStructLiteral() bool {
	if p.peekKind(1) == TOK_RBRACE {
		return true
	}
	return p.peekKind(1) == TOK_IDENT && p.peekKind(2) == TOK_COLON
}

func (p *Parser) peekKind(offset int) TokenKind {
	idx := p.pos + offset
	if idx >= len(p.toks) {
		return TOK_EOF
	}
	return p.toks[idx].Kind
}

func (p *Parser) parseStructLiteralBody(nameTok *Token) *common.StructLiteral {
	p.want(TOK_LBRACE)

	var names []string
	var values []common.AstExpr

	if !p.has(TOK_RBRACE) {
		guard := newLoopGuard()
		for {
			if !guard.step(p, "struct literal fields") {
				break
			}

			fname := p.wantAndGet(TOK_IDENT).Value
			p.want(TOK_COLON)
			fval := p.parseExpr()

			names = append(names, fname)
			values = append(values, fval)

			if p.has(TOK_COMMA) {
				p.next()
			} else {
				break
			}
		}
	}

	endSpan := p.wantAndGet(TOK_RBRACE).Span

	return &common.StructLiteral{
		AstExprBase: common.AstExprBase{Span: report.SpanOver(nameTok.Span, endSpan)},
		StructName:  nameTok.Value,
		FieldNames:  names,
		FieldValues: values,
	}
}

func (p *Parser) parseArrayLiteral() *common.ArrayLiteral {
	startSpan := p.wantAndGet(TOK_LBRACKET).Span

	var elems []common.AstExpr
	if !p.has(TOK_RBRACKET) {
		guard := newLoopGuard()
		for {
			if !guard.step(p, "array literal elements") {
				break
			}

			elems = append(elems, p.parseExpr())

			if p.has(TOK_COMMA) {
				p.next()
			} else {
				break
			}
		}
	}

	endSpan := p.wantAndGet(TOK_RBRACKET).Span

	return &common.ArrayLiteral{
		AstExprBase: common.AstExprBase{Span: report.SpanOver(startSpan, endSpan)},
		Elements:    elems,
	}
}
