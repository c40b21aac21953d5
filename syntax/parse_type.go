package syntax

import "github.com/christopherzimmerman/jfmc/dtypes"

var primTypeTokens = map[TokenKind]dtypes.Type{
	TOK_I8:   dtypes.GlobI8Type,
	TOK_I16:  dtypes.GlobI16Type,
	TOK_I32:  dtypes.GlobI32Type,
	TOK_I64:  dtypes.GlobI64Type,
	TOK_U8:   dtypes.GlobU8Type,
	TOK_U16:  dtypes.GlobU16Type,
	TOK_U32:  dtypes.GlobU32Type,
	TOK_U64:  dtypes.GlobU64Type,
	TOK_F32:  dtypes.GlobF32Type,
	TOK_F64:  dtypes.GlobF64Type,
	TOK_BOOL: dtypes.GlobBoolType,
	TOK_CHAR: dtypes.GlobCharType,
	TOK_STR:  dtypes.GlobStrType,
	TOK_VOID: dtypes.GlobVoidType,
}

// parseType implements the type syntax from spec §4.2: `&[mut] T`,
// `*T`, `[T; INT]`, a primitive keyword, or a struct-name identifier.
func (p *Parser) parseType() dtypes.Type {
	switch p.tok.Kind {
	case TOK_AMP:
		p.next()

		mutable := false
		if p.has(TOK_MUT) {
			mutable = true
			p.next()
		}

		return &dtypes.ReferenceType{Referent: p.parseType(), Mutable: mutable}

	case TOK_STAR:
		p.next()
		return &dtypes.PointerType{Pointee: p.parseType()}

	case TOK_LBRACKET:
		p.next()

		elem := p.parseType()
		p.want(TOK_SEMICOLON)

		sizeTok := p.wantAndGet(TOK_INTLIT)
		p.want(TOK_RBRACKET)

		return &dtypes.ArrayType{ElemType: elem, Size: uint64(sizeTok.IntValue)}

	case TOK_IDENT:
		name := p.tok.Value
		p.next()
		return &dtypes.StructType{Name: name}

	default:
		if typ, ok := primTypeTokens[p.tok.Kind]; ok {
			p.next()
			return typ
		}

		p.reject()
		return &dtypes.UnknownType{}
	}
}
