package syntax

import "testing"

func TestLexEndsInExactlyOneEOF(t *testing.T) {
	srcs := []string{
		"",
		"fn main() -> i32 { return 0; }",
		"let x: i32 = 1;",
	}

	for _, src := range srcs {
		toks := Lex([]byte(src), "test.jfm")
		if len(toks) == 0 {
			t.Fatalf("Lex(%q) produced no tokens", src)
		}

		eofCount := 0
		for i, tok := range toks {
			if tok.Kind == TOK_EOF {
				eofCount++
				if i != len(toks)-1 {
					t.Errorf("Lex(%q): EOF not last token", src)
				}
			}
		}

		if eofCount != 1 {
			t.Errorf("Lex(%q) produced %d EOF tokens; want exactly 1", src, eofCount)
		}
	}
}

func TestLexSpanIsMonotoneNonDecreasing(t *testing.T) {
	src := "fn main() -> i32 {\n    let x: i32 = 1;\n    return x;\n}"
	toks := Lex([]byte(src), "test.jfm")

	var prevLine, prevCol int
	for i, tok := range toks {
		if tok.Span.StartLine < prevLine || (tok.Span.StartLine == prevLine && tok.Span.StartCol < prevCol) {
			t.Errorf("token %d (%q) span went backwards: (%d,%d) after (%d,%d)",
				i, tok.Value, tok.Span.StartLine, tok.Span.StartCol, prevLine, prevCol)
		}
		prevLine, prevCol = tok.Span.StartLine, tok.Span.StartCol
	}
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks := Lex([]byte("fn foo"), "test.jfm")
	if toks[0].Kind != TOK_FN {
		t.Errorf("toks[0].Kind = %v; want TOK_FN", toks[0].Kind)
	}
	if toks[1].Kind != TOK_IDENT || toks[1].Value != "foo" {
		t.Errorf("toks[1] = %+v; want ident 'foo'", toks[1])
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src      string
		wantKind TokenKind
	}{
		{"42", TOK_INTLIT},
		{"3.14", TOK_FLOATLIT},
		{"1e10", TOK_FLOATLIT},
		{"1e", TOK_INTLIT}, // trailing 'e' with no exponent digits backtracks to an int literal
	}

	for _, tc := range tests {
		toks := Lex([]byte(tc.src), "test.jfm")
		if toks[0].Kind != tc.wantKind {
			t.Errorf("Lex(%q)[0].Kind = %v; want %v", tc.src, toks[0].Kind, tc.wantKind)
		}
	}
}

func TestLexMultiByteOperatorsPreferredOverSingleByte(t *testing.T) {
	tests := []struct {
		src  string
		want TokenKind
	}{
		{"==", TOK_EQ},
		{"!=", TOK_NEQ},
		{"<=", TOK_LE},
		{"&&", TOK_AMPAMP},
		{"..", TOK_DOTDOT},
		{"::", TOK_COLONCOLON},
		{"->", TOK_ARROW},
		{"<", TOK_LT},
		{"&", TOK_AMP},
	}

	for _, tc := range tests {
		toks := Lex([]byte(tc.src), "test.jfm")
		if toks[0].Kind != tc.want {
			t.Errorf("Lex(%q)[0].Kind = %v; want %v", tc.src, toks[0].Kind, tc.want)
		}
	}
}

func TestLexUnterminatedStringProducesErrorToken(t *testing.T) {
	toks := Lex([]byte(`"unterminated`), "test.jfm")
	last := toks[len(toks)-1]
	if last.Kind != TOK_ERROR {
		t.Errorf("Lex(unterminated string) last token = %v; want TOK_ERROR", last.Kind)
	}
}

func TestLexUnterminatedBlockCommentConsumesRestOfFile(t *testing.T) {
	// Spec's documented current (not-fixed) behaviour: an unterminated
	// block comment silently swallows the rest of the file rather than
	// producing a lexical error.
	toks := Lex([]byte("let x: i32 = 1; /* never closed"), "test.jfm")
	if len(toks) == 0 || toks[len(toks)-1].Kind != TOK_EOF {
		t.Errorf("Lex(unterminated block comment) should end in EOF, got %v", toks[len(toks)-1].Kind)
	}
	for _, tok := range toks {
		if tok.Kind == TOK_ERROR {
			t.Errorf("Lex(unterminated block comment) produced an error token; spec says it should not")
		}
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks := Lex([]byte(`"hi\n\"there\""`), "test.jfm")
	if toks[0].Kind != TOK_STRLIT {
		t.Fatalf("Lex(escaped string)[0].Kind = %v; want TOK_STRLIT", toks[0].Kind)
	}
}

func TestLexCharLiteral(t *testing.T) {
	toks := Lex([]byte(`'a'`), "test.jfm")
	if toks[0].Kind != TOK_CHARLIT || toks[0].CharValue != 'a' {
		t.Errorf("Lex('a') = %+v; want CHARLIT 'a'", toks[0])
	}

	escTok := Lex([]byte(`'\n'`), "test.jfm")
	if escTok[0].Kind != TOK_CHARLIT || escTok[0].CharValue != '\n' {
		t.Errorf("Lex('\\n') = %+v; want CHARLIT '\\n'", escTok[0])
	}
}
