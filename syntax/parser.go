package syntax

import (
	"fmt"

	"github.com/christopherzimmerman/jfmc/common"
	"github.com/christopherzimmerman/jfmc/report"
)

// Parser is a token-vector recursive-descent parser with Pratt-style
// precedence climbing for expressions. Grounded on the teacher's
// single-token-of-lookahead Parser, generalized from "Throw on first
// error" to panic-mode recovery since the spec requires a run to
// collect more than one parse diagnostic.
type Parser struct {
	fileName string
	toks     []*Token
	pos      int

	tok      *Token
	prevSpan *report.TextSpan

	log       *report.Log
	panicking bool
}

func NewParser(fileName string, toks []*Token) *Parser {
	p := &Parser{
		fileName: fileName,
		toks:     toks,
		log:      report.NewLog(),
	}
	p.tok = p.toks[0]
	return p
}

// declStart is the synchronization set named in spec §4.2: tokens that
// plausibly begin a fresh declaration or statement.
var declStart = map[TokenKind]bool{
	TOK_FN: true, TOK_LET: true, TOK_IF: true, TOK_WHILE: true,
	TOK_FOR: true, TOK_LOOP: true, TOK_RETURN: true, TOK_BREAK: true,
	TOK_CONTINUE: true, TOK_STRUCT: true, TOK_IMPL: true,
}

const maxLoopIters = 100000

func Parse(fileName string, toks []*Token) (*common.Program, *report.Log) {
	p := NewParser(fileName, toks)
	return p.Parse(), p.log
}

func (p *Parser) Parse() *common.Program {
	startSpan := p.tok.Span

	var items []common.AstNode

	guard := newLoopGuard()
	for !p.has(TOK_EOF) {
		if !guard.step(p, "top-level declarations") {
			break
		}

		item := p.parseDeclaration()
		if item != nil {
			items = append(items, item)
		}

		if p.panicking {
			p.synchronize()
		}
	}

	endSpan := p.prevSpan
	if endSpan == nil {
		endSpan = startSpan
	}

	return &common.Program{
		AstBase: common.AstBase{Span: report.SpanOver(startSpan, endSpan)},
		Items:   items,
	}
}

func (p *Parser) parseDeclaration() common.AstNode {
	switch p.tok.Kind {
	case TOK_INCLUDE:
		return p.parseInclude()
	case TOK_EXTERN:
		return p.parseExtern()
	case TOK_FN:
		return p.parseFn("")
	case TOK_STRUCT:
		return p.parseStruct()
	case TOK_IMPL:
		return p.parseImpl()
	case TOK_LET:
		stmt := p.parseLet()
		p.want(TOK_SEMICOLON)
		return stmt
	default:
		return p.parseStatement()
	}
}

/* -------------------------------------------------------------------------- */

// loopGuard enforces the two guards spec §4.2 requires on every
// unbounded parsing loop: a hard iteration cap, and a "cursor did not
// advance" check that forces an advance rather than spinning forever.
type loopGuard struct {
	iters   int
	lastPos int
	started bool
}

func newLoopGuard() *loopGuard {
	return &loopGuard{}
}

func (g *loopGuard) step(p *Parser, what string) bool {
	if g.started && p.pos == g.lastPos {
		p.next()
	}
	g.started = true
	g.lastPos = p.pos

	g.iters++
	if g.iters > maxLoopIters {
		p.errorHere("parser exceeded iteration limit parsing %s", what)
		return false
	}

	return !p.has(TOK_EOF)
}

/* -------------------------------------------------------------------------- */

func (p *Parser) next() {
	if p.tok.Kind != TOK_EOF {
		p.prevSpan = p.tok.Span
		p.pos++
		if p.pos < len(p.toks) {
			p.tok = p.toks[p.pos]
		}
	}
}

func (p *Parser) has(kind TokenKind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) want(kind TokenKind) {
	if p.has(kind) {
		p.next()
	} else {
		p.reject()
	}
}

func (p *Parser) wantAndGet(kind TokenKind) *Token {
	if p.has(kind) {
		tok := p.tok
		p.next()
		return tok
	}

	p.reject()
	return p.tok
}

func (p *Parser) reject() {
	if p.tok.Kind == TOK_EOF {
		p.errorHere("unexpected end of file")
	} else {
		p.errorHere("unexpected token: %q", p.tok.Value)
	}
}

// errorHere records a diagnostic (once per panic episode) and enters
// panic mode. Callers at a declaration/statement boundary are expected
// to call synchronize afterward.
func (p *Parser) errorHere(msg string, a ...any) {
	if p.panicking {
		return
	}
	p.panicking = true

	p.log.Add(&report.SourceError{
		Message: fmt.Sprintf(msg, a...),
		Info: &report.SourceInfo{
			FileName: p.fileName,
			Span:     p.tok.Span,
		},
	})
}

// synchronize discards tokens until past the next ";" or at the next
// declaration-starter token, then exits panic mode.
func (p *Parser) synchronize() {
	guard := newLoopGuard()

	for !p.has(TOK_EOF) {
		if !guard.step(p, "error synchronization") {
			break
		}

		if p.tok.Kind == TOK_SEMICOLON {
			p.next()
			break
		}

		if declStart[p.tok.Kind] {
			break
		}

		p.next()
	}

	p.panicking = false
}
