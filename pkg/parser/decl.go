package parser

import (
	"github.com/quillc/quill-cc/pkg/diag"
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

// parseTranslationUnit parses external declarations until end of input,
// resynchronizing at declaration boundaries after failures
func (p *Parser) parseTranslationUnit() *syntax.TranslationUnit {
	tu := newNode[syntax.TranslationUnit](p)
	var b listBuilder[syntax.Declaration]
	for !p.cur.at(lexer.TokenEOF) {
		decl, ok := p.parseExternalDeclaration()
		if decl != nil {
			b.append(decl)
		}
		if !ok {
			p.ignoreDeclarationOrDefinition()
			if p.cur.at(lexer.TokenRBrace) {
				p.cur.consume()
			}
		}
	}
	tu.Decls = b.head
	return tu
}

func (p *Parser) parseExternalDeclaration() (syntax.Declaration, bool) {
	switch p.cur.peek(1).Kind {
	case lexer.TokenSemicolon:
		n := newNode[syntax.IncompleteDeclaration](p)
		n.SemicolonIdx = p.cur.consume()
		return n, true
	case lexer.TokenStaticAssert:
		return p.parseStaticAssertDeclaration()
	case lexer.TokenGNUAsm:
		return p.parseAsmStatementDeclaration()
	case lexer.TokenTemplateMarker:
		return p.parseTemplateDeclaration()
	case lexer.TokenGNUExtension:
		ext := p.cur.consume()
		return p.parseDeclarationOrFunctionDefinition(ext, fileScope)
	default:
		return p.parseDeclarationOrFunctionDefinition(syntax.InvalidTokenIndex, fileScope)
	}
}

func (p *Parser) parseTemplateDeclaration() (syntax.Declaration, bool) {
	if !p.opts().Ext.TemplateDeclarations {
		p.expectedFeature("template declarations")
	}
	n := newNode[syntax.TemplateDeclaration](p)
	n.TemplateKwIdx = p.cur.consume()
	decl, ok := p.parseExternalDeclaration()
	n.Decl = decl
	return n, ok
}

func (p *Parser) parseAsmStatementDeclaration() (syntax.Declaration, bool) {
	stmt, ok := p.parseAsmStatement()
	n := newNode[syntax.ExtGNUAsmStatementDeclaration](p)
	n.AsmStmt = stmt
	return n, ok
}

func (p *Parser) parseStaticAssertDeclaration() (syntax.Declaration, bool) {
	n := newNode[syntax.StaticAssertDeclaration](p)
	n.StaticAssertKwIdx = p.cur.consume()
	if !p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx) {
		return n, false
	}
	n.Expr = p.parseConditionalExpression()
	if p.match(lexer.TokenComma, &n.CommaIdx) {
		n.Message = p.parseStringLiteral()
	}
	p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
	ok := p.matchOrSkipTo(lexer.TokenSemicolon, &n.SemicolonIdx)
	return n, ok
}

// parseDeclarationOrFunctionDefinition parses the shared
// declaration-specifiers prefix, then decides between a declaration with
// declarators, a tag declaration, and a function definition
func (p *Parser) parseDeclarationOrFunctionDefinition(extKw syntax.TokenIndex, scope declarationScope) (syntax.Declaration, bool) {
	info := p.parseDeclarationSpecifiers(scope)
	if info.count == 0 {
		p.expectedFIRSTof(diag.NTDeclaration)
		return nil, false
	}

	var semi syntax.TokenIndex
	if p.match(lexer.TokenSemicolon, &semi) {
		if info.tagSpec != nil && info.count == 1 {
			td := newNode[syntax.TagDeclaration](p)
			td.K = info.tagKind
			td.TypeSpec = info.tagSpec
			td.SemicolonIdx = semi
			return td, true
		}
		n := newNode[syntax.IncompleteDeclaration](p)
		n.ExtKwIdx = extKw
		n.Specs = info.list
		n.SemicolonIdx = semi
		return n, true
	}

	// a tag declared inline alongside declarators is lifted into the
	// specifier list
	if info.tagSpec != nil {
		td := newNode[syntax.TagDeclaration](p)
		td.K = info.tagKind
		td.TypeSpec = info.tagSpec
		w := newNode[syntax.TypeDeclarationAsSpecifier](p)
		w.TypeDecl = td
		info.tagCell.Value = w
	}

	var db sepListBuilder[syntax.Declarator]
	first, ok := p.parseDeclarator(namedDeclarator, scope)
	if !ok {
		n := newNode[syntax.IncompleteDeclaration](p)
		n.ExtKwIdx = extKw
		n.Specs = info.list
		return n, false
	}
	if p.cur.at(lexer.TokenAssign) {
		p.attachInitializer(first)
	}
	db.append(first)

	if p.cur.at(lexer.TokenLBrace) {
		if scope == fileScope && isFunctionDefinitionDeclarator(first) {
			fd := newNode[syntax.FunctionDefinition](p)
			fd.ExtKwIdx = extKw
			fd.Specs = info.list
			fd.Decltor = first
			body, ok := p.parseCompoundStatement()
			fd.Body = body
			return fd, ok
		}
		p.expectedToken(lexer.TokenSemicolon)
		n := newNode[syntax.VariableAndOrFunctionDeclaration](p)
		n.ExtKwIdx = extKw
		n.Specs = info.list
		n.Decltors = db.head
		return n, false
	}

	for {
		var comma syntax.TokenIndex
		if !p.match(lexer.TokenComma, &comma) {
			break
		}
		db.delimit(comma)
		d, ok := p.parseDeclarator(namedDeclarator, scope)
		if !ok {
			n := newNode[syntax.VariableAndOrFunctionDeclaration](p)
			n.ExtKwIdx = extKw
			n.Specs = info.list
			n.Decltors = db.head
			return n, false
		}
		if p.cur.at(lexer.TokenAssign) {
			p.attachInitializer(d)
		}
		db.append(d)
	}

	n := newNode[syntax.VariableAndOrFunctionDeclaration](p)
	n.ExtKwIdx = extKw
	n.Specs = info.list
	n.Decltors = db.head
	if !p.match(lexer.TokenSemicolon, &n.SemicolonIdx) {
		p.expectedToken(lexer.TokenSemicolon)
		return n, false
	}
	return n, true
}

// isFunctionDefinitionDeclarator reports whether d may open a function
// body: its outermost non-parenthesized shape must be a function
// declarator wrapping an identifier
func isFunctionDefinitionDeclarator(d syntax.Declarator) bool {
	f, ok := syntax.StrippedDeclarator(d).(*syntax.ArrayOrFunctionDeclarator)
	if !ok || f.K != syntax.KindFunctionDeclarator {
		return false
	}
	_, named := syntax.InnermostDeclarator(f.InnerDecltor).(*syntax.IdentifierDeclarator)
	return named
}

// specifier parsing

type specifierContext int

const (
	declarationSpecifiers specifierContext = iota
	specifierQualifierList
)

// specInfo summarizes one parsed specifier list
type specInfo struct {
	list     *syntax.SpecifierList
	count    int
	seenType bool
	tagSpec  *syntax.TaggedTypeSpecifier // inline tag with a body, if any
	tagCell  *syntax.SpecifierList       // the cell holding it
	tagKind  syntax.Kind                 // its freestanding declaration kind
}

func (p *Parser) parseDeclarationSpecifiers(scope declarationScope) specInfo {
	return p.parseSpecifiers(declarationSpecifiers, scope)
}

func (p *Parser) parseSpecifierQualifierList() specInfo {
	return p.parseSpecifiers(specifierQualifierList, blockScope)
}

func (p *Parser) parseSpecifiers(ctx specifierContext, scope declarationScope) specInfo {
	var info specInfo
	var b listBuilder[syntax.Specifier]
	add := func(s syntax.Specifier) {
		b.append(s)
		info.count++
	}
	trivial := func(k syntax.Kind) {
		n := newNode[syntax.TrivialSpecifier](p)
		n.K = k
		n.KwIdx = p.cur.consume()
		add(n)
	}
	for {
		tok := p.cur.peek(1)
		// after an inline tag body only qualifiers and attributes may
		// continue the list
		if info.tagSpec != nil && !isQualifierKeyword(tok.Kind) && tok.Kind != lexer.TokenGNUAttribute {
			break
		}
		switch tok.Kind {
		case lexer.TokenTypedef:
			if ctx != declarationSpecifiers {
				goto done
			}
			trivial(syntax.KindTypedefStorageClass)
		case lexer.TokenExtern:
			if ctx != declarationSpecifiers {
				goto done
			}
			trivial(syntax.KindExternStorageClass)
		case lexer.TokenStatic:
			if ctx != declarationSpecifiers {
				goto done
			}
			trivial(syntax.KindStaticStorageClass)
		case lexer.TokenAuto:
			if ctx != declarationSpecifiers {
				goto done
			}
			trivial(syntax.KindAutoStorageClass)
		case lexer.TokenRegister:
			if ctx != declarationSpecifiers {
				goto done
			}
			trivial(syntax.KindRegisterStorageClass)
		case lexer.TokenThreadLocal, lexer.TokenGNUThread:
			if ctx != declarationSpecifiers {
				goto done
			}
			trivial(syntax.KindThreadLocalStorageClass)
		case lexer.TokenConst:
			trivial(syntax.KindConstQualifier)
		case lexer.TokenVolatile:
			trivial(syntax.KindVolatileQualifier)
		case lexer.TokenRestrict:
			trivial(syntax.KindRestrictQualifier)
		case lexer.TokenAtomic:
			if p.cur.peek(2).Kind == lexer.TokenLParen {
				n := newNode[syntax.AtomicTypeSpecifier](p)
				n.AtomicKwIdx = p.cur.consume()
				n.OpenParenIdx = p.cur.consume()
				tn, _ := p.parseTypeName()
				n.TyName = tn
				p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
				add(n)
				info.seenType = true
			} else {
				trivial(syntax.KindAtomicQualifier)
			}
		case lexer.TokenInline:
			if ctx != declarationSpecifiers {
				goto done
			}
			trivial(syntax.KindInlineSpecifier)
		case lexer.TokenNoreturn:
			if ctx != declarationSpecifiers {
				goto done
			}
			trivial(syntax.KindNoReturnSpecifier)
		case lexer.TokenAlignas:
			if ctx != declarationSpecifiers {
				goto done
			}
			n := newNode[syntax.AlignmentSpecifier](p)
			n.AlignasKwIdx = p.cur.consume()
			n.TyRef = p.parseParenthesizedTypeOrExpression()
			add(n)
		case lexer.TokenVoid, lexer.TokenChar_, lexer.TokenShort, lexer.TokenInt_,
			lexer.TokenLong, lexer.TokenFloat_, lexer.TokenDouble, lexer.TokenSigned,
			lexer.TokenUnsigned, lexer.TokenBool, lexer.TokenComplex, lexer.TokenImaginary,
			lexer.TokenWCharT, lexer.TokenChar16T, lexer.TokenChar32T:
			trivial(syntax.KindBasicTypeSpecifier)
			info.seenType = true
		case lexer.TokenStruct, lexer.TokenUnion, lexer.TokenEnum:
			ts, _ := p.parseTaggedTypeSpecifier()
			add(ts)
			info.seenType = true
			if ts.OpenBraceIdx != syntax.InvalidTokenIndex {
				info.tagSpec = ts
				info.tagCell = b.tail
				switch ts.K {
				case syntax.KindStructTypeSpecifier:
					info.tagKind = syntax.KindStructDeclaration
				case syntax.KindUnionTypeSpecifier:
					info.tagKind = syntax.KindUnionDeclaration
				default:
					info.tagKind = syntax.KindEnumDeclaration
				}
			}
		case lexer.TokenGNUTypeof:
			n := newNode[syntax.ExtGNUTypeof](p)
			n.TypeofKwIdx = p.cur.consume()
			n.TyRef = p.parseParenthesizedTypeOrExpression()
			add(n)
			info.seenType = true
		case lexer.TokenGNUAttribute:
			add(p.parseExtGNUAttributeSpecifier())
		case lexer.TokenForall, lexer.TokenExists:
			if ctx != declarationSpecifiers {
				goto done
			}
			if !p.opts().Ext.QuantifiedTypes {
				p.expectedFeature("quantified types")
			}
			n := newNode[syntax.QuantifiedTypeSpecifier](p)
			if tok.Kind == lexer.TokenForall {
				n.K = syntax.KindForallTypeSpecifier
			} else {
				n.K = syntax.KindExistsTypeSpecifier
			}
			n.QuantKwIdx = p.cur.consume()
			p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx)
			if !p.match(lexer.TokenIdent, &n.IdentIdx) {
				p.expectedCategory(diag.CategoryIdentifier)
			}
			p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
			add(n)
		case lexer.TokenIdent:
			if info.seenType {
				goto done
			}
			// Only at file scope may the identifier open a declarator
			// instead of naming a type; elsewhere the caller has already
			// settled the ambiguity and the identifier is taken greedily.
			if scope == fileScope && p.determineIdentifierRole() == roleDeclarator {
				goto done
			}
			n := newNode[syntax.TypedefName](p)
			n.IdentIdx = p.cur.consume()
			add(n)
			info.seenType = true
		default:
			goto done
		}
	}
done:
	info.list = b.head
	return info
}

func isQualifierKeyword(k lexer.TokenKind) bool {
	switch k {
	case lexer.TokenConst, lexer.TokenVolatile, lexer.TokenRestrict, lexer.TokenAtomic:
		return true
	}
	return false
}

func isBasicTypeKeyword(k lexer.TokenKind) bool {
	switch k {
	case lexer.TokenVoid, lexer.TokenChar_, lexer.TokenShort, lexer.TokenInt_,
		lexer.TokenLong, lexer.TokenFloat_, lexer.TokenDouble, lexer.TokenSigned,
		lexer.TokenUnsigned, lexer.TokenBool, lexer.TokenComplex, lexer.TokenImaginary,
		lexer.TokenWCharT, lexer.TokenChar16T, lexer.TokenChar32T:
		return true
	}
	return false
}

// startsDeclarationSpecifiers reports whether k unambiguously begins a
// specifier list; identifiers need the oracle and are not covered
func startsDeclarationSpecifiers(k lexer.TokenKind) bool {
	if isBasicTypeKeyword(k) || isQualifierKeyword(k) {
		return true
	}
	switch k {
	case lexer.TokenTypedef, lexer.TokenExtern, lexer.TokenStatic, lexer.TokenAuto,
		lexer.TokenRegister, lexer.TokenThreadLocal, lexer.TokenGNUThread,
		lexer.TokenInline, lexer.TokenNoreturn, lexer.TokenAlignas,
		lexer.TokenStruct, lexer.TokenUnion, lexer.TokenEnum,
		lexer.TokenGNUTypeof, lexer.TokenGNUAttribute,
		lexer.TokenForall, lexer.TokenExists:
		return true
	}
	return false
}

// parseTaggedTypeSpecifier parses struct, union and enum specifiers,
// elaborated or with a body
func (p *Parser) parseTaggedTypeSpecifier() (*syntax.TaggedTypeSpecifier, bool) {
	n := newNode[syntax.TaggedTypeSpecifier](p)
	switch p.cur.peek(1).Kind {
	case lexer.TokenStruct:
		n.K = syntax.KindStructTypeSpecifier
	case lexer.TokenUnion:
		n.K = syntax.KindUnionTypeSpecifier
	default:
		n.K = syntax.KindEnumTypeSpecifier
	}
	n.TagKwIdx = p.cur.consume()
	n.Attrs1 = p.parseAttributeSpecifiers()
	p.match(lexer.TokenIdent, &n.IdentIdx)
	if p.match(lexer.TokenLBrace, &n.OpenBraceIdx) {
		if n.K == syntax.KindEnumTypeSpecifier {
			n.Enums = p.parseEnumeratorList()
		} else {
			n.Decls = p.parseMemberDeclarationList()
		}
		p.matchOrSkipTo(lexer.TokenRBrace, &n.CloseBraceIdx)
	} else if n.IdentIdx == syntax.InvalidTokenIndex {
		p.expectedCategory(diag.CategoryIdentifier)
		n.Attrs2 = p.parseAttributeSpecifiers()
		return n, false
	}
	n.Attrs2 = p.parseAttributeSpecifiers()
	return n, true
}

func (p *Parser) parseMemberDeclarationList() *syntax.DeclarationList {
	var b listBuilder[syntax.Declaration]
	for !p.cur.at(lexer.TokenRBrace) && !p.cur.at(lexer.TokenEOF) {
		decl, ok := p.parseMemberDeclaration()
		if decl != nil {
			b.append(decl)
		}
		if !ok {
			p.ignoreMemberDeclaration()
		}
	}
	return b.head
}

func (p *Parser) parseMemberDeclaration() (syntax.Declaration, bool) {
	var extKw syntax.TokenIndex
	p.match(lexer.TokenGNUExtension, &extKw)
	if p.cur.at(lexer.TokenStaticAssert) {
		return p.parseStaticAssertDeclaration()
	}
	info := p.parseSpecifierQualifierList()
	if info.count == 0 {
		p.expectedFIRSTof(diag.NTStructDeclaration)
		return nil, false
	}
	n := newNode[syntax.FieldDeclaration](p)
	n.ExtKwIdx = extKw
	n.Specs = info.list
	if p.match(lexer.TokenSemicolon, &n.SemicolonIdx) {
		// anonymous struct or union member
		return n, true
	}
	var b sepListBuilder[syntax.Declarator]
	for {
		d, ok := p.parseMemberDeclarator()
		if !ok {
			n.Decltors = b.head
			return n, false
		}
		b.append(d)
		var comma syntax.TokenIndex
		if !p.match(lexer.TokenComma, &comma) {
			break
		}
		b.delimit(comma)
	}
	n.Decltors = b.head
	ok := p.matchOrSkipTo(lexer.TokenSemicolon, &n.SemicolonIdx)
	return n, ok
}

func (p *Parser) parseMemberDeclarator() (syntax.Declarator, bool) {
	if p.cur.at(lexer.TokenColon) {
		n := newNode[syntax.BitfieldDeclarator](p)
		n.ColonIdx = p.cur.consume()
		n.Expr = p.parseConditionalExpression()
		n.Attrs = p.parseAttributeSpecifiers()
		return n, true
	}
	d, ok := p.parseDeclarator(namedDeclarator, blockScope)
	if !ok {
		return nil, false
	}
	var colon syntax.TokenIndex
	if p.match(lexer.TokenColon, &colon) {
		n := newNode[syntax.BitfieldDeclarator](p)
		n.InnerDecltor = d
		n.ColonIdx = colon
		n.Expr = p.parseConditionalExpression()
		n.Attrs = p.parseAttributeSpecifiers()
		return n, true
	}
	return d, true
}

func (p *Parser) parseEnumeratorList() *syntax.EnumeratorList {
	var b sepListBuilder[*syntax.EnumeratorDeclaration]
	for !p.cur.at(lexer.TokenRBrace) && !p.cur.at(lexer.TokenEOF) {
		n := newNode[syntax.EnumeratorDeclaration](p)
		if !p.match(lexer.TokenIdent, &n.IdentIdx) {
			p.expectedFIRSTof(diag.NTEnumerator)
			p.ignoreMemberDeclaration()
			break
		}
		n.Attrs = p.parseAttributeSpecifiers()
		if p.match(lexer.TokenAssign, &n.EqualsIdx) {
			n.Expr = p.parseConditionalExpression()
		}
		b.append(n)
		var comma syntax.TokenIndex
		if !p.match(lexer.TokenComma, &comma) {
			break
		}
		b.delimit(comma)
	}
	return b.head
}

// parseTypeName parses a specifier-qualifier list followed by an
// abstract declarator
func (p *Parser) parseTypeName() (*syntax.TypeName, bool) {
	info := p.parseSpecifierQualifierList()
	if info.count == 0 {
		p.expectedFIRSTof(diag.NTTypeName)
		return nil, false
	}
	n := newNode[syntax.TypeName](p)
	n.Specs = info.list
	if declaratorFollows(p.cur.peek(1).Kind) {
		d, ok := p.parseDeclarator(abstractDeclarator, prototypeScope)
		n.Decltor = d
		return n, ok
	}
	return n, true
}

// declaratorFollows reports whether k can begin a declarator
func declaratorFollows(k lexer.TokenKind) bool {
	switch k {
	case lexer.TokenStar, lexer.TokenLParen, lexer.TokenLBracket,
		lexer.TokenIdent, lexer.TokenGNUAttribute:
		return true
	}
	return false
}

// attachInitializer consumes = initializer and attaches it to the
// outermost shape of d once enclosing parentheses are stripped. Shapes
// without an initializer slot are diagnosed; the initializer is still
// parsed so the cursor stays synchronized.
func (p *Parser) attachInitializer(d syntax.Declarator) {
	var eq syntax.TokenIndex
	p.match(lexer.TokenAssign, &eq)
	switch t := syntax.StrippedDeclarator(d).(type) {
	case *syntax.IdentifierDeclarator:
		t.EqualsIdx = eq
		t.Init = p.parseInitializer()
	case *syntax.PointerDeclarator:
		t.EqualsIdx = eq
		t.Init = p.parseInitializer()
	case *syntax.ArrayOrFunctionDeclarator:
		if t.K == syntax.KindFunctionDeclarator && !isFunctionPointerShape(t) {
			p.reportCode(diag.CodeUnexpectedInitializerOfDeclarator)
		}
		t.EqualsIdx = eq
		t.Init = p.parseInitializer()
	default:
		p.reportCode(diag.CodeUnexpectedInitializerOfDeclarator)
		p.parseInitializer()
	}
}

// isFunctionPointerShape reports whether f is a function declarator over
// a parenthesized pointer, the one function shape that may legally carry
// an initializer
func isFunctionPointerShape(f *syntax.ArrayOrFunctionDeclarator) bool {
	paren, ok := f.InnerDecltor.(*syntax.ParenthesizedDeclarator)
	if !ok {
		return false
	}
	_, ptr := syntax.StrippedDeclarator(paren).(*syntax.PointerDeclarator)
	return ptr
}
