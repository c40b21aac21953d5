package syntax

import (
	"fmt"
	"io"

	"github.com/christopherzimmerman/jfmc/report"
)

type TokenKind uint8

const (
	// keywords
	TOK_FN TokenKind = iota
	TOK_LET
	TOK_MUT
	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_FOR
	TOK_LOOP
	TOK_BREAK
	TOK_CONTINUE
	TOK_RETURN
	TOK_STRUCT
	TOK_IMPL
	TOK_IN
	TOK_INCLUDE
	TOK_EXTERN
	TOK_AS
	TOK_TRUE
	TOK_FALSE

	// primitive type keywords
	TOK_I8
	TOK_I16
	TOK_I32
	TOK_I64
	TOK_U8
	TOK_U16
	TOK_U32
	TOK_U64
	TOK_F32
	TOK_F64
	TOK_BOOL
	TOK_CHAR
	TOK_STR
	TOK_VOID

	// literals and identifier
	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_CHARLIT
	TOK_STRLIT

	// punctuation and operators
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_FSLASH
	TOK_PERCENT

	TOK_AMP
	TOK_PIPE
	TOK_CARET
	TOK_SHL
	TOK_SHR

	TOK_AMPAMP
	TOK_PIPEPIPE
	TOK_BANG

	TOK_ASSIGN
	TOK_PLUSEQ
	TOK_MINUSEQ
	TOK_STAREQ
	TOK_SLASHEQ

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LE
	TOK_GE

	TOK_DOT
	TOK_DOTDOT
	TOK_COLONCOLON
	TOK_ARROW

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_SEMICOLON
	TOK_COLON

	TOK_EOF
	TOK_ERROR
)

var keywords = map[string]TokenKind{
	"fn":       TOK_FN,
	"let":      TOK_LET,
	"mut":      TOK_MUT,
	"if":       TOK_IF,
	"else":     TOK_ELSE,
	"while":    TOK_WHILE,
	"for":      TOK_FOR,
	"loop":     TOK_LOOP,
	"break":    TOK_BREAK,
	"continue": TOK_CONTINUE,
	"return":   TOK_RETURN,
	"struct":   TOK_STRUCT,
	"impl":     TOK_IMPL,
	"in":       TOK_IN,
	"include":  TOK_INCLUDE,
	"extern":   TOK_EXTERN,
	"as":       TOK_AS,
	"true":     TOK_TRUE,
	"false":    TOK_FALSE,

	"i8":   TOK_I8,
	"i16":  TOK_I16,
	"i32":  TOK_I32,
	"i64":  TOK_I64,
	"u8":   TOK_U8,
	"u16":  TOK_U16,
	"u32":  TOK_U32,
	"u64":  TOK_U64,
	"f32":  TOK_F32,
	"f64":  TOK_F64,
	"bool": TOK_BOOL,
	"char": TOK_CHAR,
	"str":  TOK_STR,
	"void": TOK_VOID,
}

// LiteralKind tags the decoded payload carried by a literal token.
type LiteralKind uint8

const (
	LITVAL_NONE LiteralKind = iota
	LITVAL_INT
	LITVAL_FLOAT
	LITVAL_CHAR
	LITVAL_BOOL
)

type Token struct {
	Kind  TokenKind
	Value string
	Span  *report.TextSpan

	// ErrorMsg holds the static diagnostic message when Kind is
	// TOK_ERROR, in place of a lexeme.
	ErrorMsg string

	LitKind    LiteralKind
	IntValue   int64
	FloatValue float64
	CharValue  byte
	BoolValue  bool
}

func (tok *Token) Dump(w io.Writer) {
	fmt.Fprintf(w, "Token(%d, %q, [%d, %d])", tok.Kind, tok.Value, tok.Span.StartLine, tok.Span.StartCol)
}
