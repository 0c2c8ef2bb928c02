package parser

import (
	"github.com/quillc/quill-cc/pkg/diag"
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

// declaratorMode selects which declarator shapes are acceptable
type declaratorMode int

const (
	namedDeclarator    declaratorMode = iota // must name an identifier
	abstractDeclarator                       // must not name one
	anyDeclarator                            // parameter position, either
)

// parseDeclarator parses a pointer chain terminating in a direct
// declarator with suffixes
func (p *Parser) parseDeclarator(mode declaratorMode, scope declarationScope) (syntax.Declarator, bool) {
	attrs := p.parseAttributeSpecifiers()
	if p.cur.at(lexer.TokenStar) {
		n := newNode[syntax.PointerDeclarator](p)
		n.Attrs = attrs
		n.AsteriskIdx = p.cur.consume()
		n.Quals = p.parseTypeQualifierList()
		inner, ok := p.parseDeclarator(mode, scope)
		n.InnerDecltor = inner
		return n, ok
	}
	return p.parseDirectDeclarator(mode, scope, attrs)
}

func (p *Parser) parseDirectDeclarator(mode declaratorMode, scope declarationScope, attrs *syntax.SpecifierList) (syntax.Declarator, bool) {
	var base syntax.Declarator
	switch {
	case p.cur.at(lexer.TokenIdent) && mode != abstractDeclarator:
		n := newNode[syntax.IdentifierDeclarator](p)
		n.Attrs1 = attrs
		n.IdentIdx = p.cur.consume()
		base = n
	case p.cur.at(lexer.TokenLParen) && !p.parenOpensParameterSuffix(mode):
		n := newNode[syntax.ParenthesizedDeclarator](p)
		n.OpenParenIdx = p.cur.consume()
		inner, ok := p.parseDeclarator(mode, scope)
		n.InnerDecltor = inner
		if !ok {
			p.ignoreDeclarator()
		}
		p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
		base = n
	default:
		if mode == namedDeclarator && !p.cur.at(lexer.TokenLParen) && !p.cur.at(lexer.TokenLBracket) {
			p.expectedFIRSTof(diag.NTDeclarator)
			return nil, false
		}
		n := newNode[syntax.AbstractDeclarator](p)
		n.Attrs = attrs
		base = n
	}
	return p.parseDeclaratorSuffixes(base, scope)
}

// parenOpensParameterSuffix decides, standing on an opening paren in
// direct-declarator head position, whether the paren begins a parameter
// suffix of an omitted declarator rather than a parenthesized inner
// declarator
func (p *Parser) parenOpensParameterSuffix(mode declaratorMode) bool {
	next := p.cur.peek(2)
	switch {
	case next.Kind == lexer.TokenRParen:
		return true
	case startsDeclarationSpecifiers(next.Kind):
		return true
	case next.Kind == lexer.TokenIdent:
		if mode == namedDeclarator {
			return false
		}
		b := p.snapshot()
		p.cur.consume()
		role := p.determineIdentifierRole()
		b.backtrack()
		return role == roleTypedefName
	default:
		return false
	}
}

func (p *Parser) parseDeclaratorSuffixes(base syntax.Declarator, scope declarationScope) (syntax.Declarator, bool) {
	d := base
	for {
		switch {
		case p.cur.at(lexer.TokenLParen):
			ps, ok := p.parseParameterSuffix()
			n := newNode[syntax.ArrayOrFunctionDeclarator](p)
			n.K = syntax.KindFunctionDeclarator
			n.InnerDecltor = d
			n.Suffix = ps
			d = n
			if !ok {
				return d, false
			}
		case p.cur.at(lexer.TokenLBracket):
			ss, ok := p.parseSubscriptSuffix(scope)
			n := newNode[syntax.ArrayOrFunctionDeclarator](p)
			n.K = syntax.KindArrayDeclarator
			n.InnerDecltor = d
			n.Suffix = ss
			d = n
			if !ok {
				return d, false
			}
		default:
			p.attachDeclaratorTrailers(d)
			return d, true
		}
	}
}

// attachDeclaratorTrailers parses trailing asm labels and attributes
// into the slots of the outermost declarator shape that carries them
func (p *Parser) attachDeclaratorTrailers(d syntax.Declarator) {
	if !p.cur.at(lexer.TokenGNUAsm) && !p.cur.at(lexer.TokenGNUAttribute) {
		return
	}
	asm := p.parseAsmLabelOpt()
	attrs := p.parseAttributeSpecifiers()
	if asm == nil {
		asm = p.parseAsmLabelOpt()
	}
	switch t := d.(type) {
	case *syntax.IdentifierDeclarator:
		t.Attrs2 = attrs
		t.AsmLabel = asm
	case *syntax.ArrayOrFunctionDeclarator:
		t.Attrs2 = attrs
		t.AsmLabel = asm
	}
}

func (p *Parser) parseTypeQualifierList() *syntax.SpecifierList {
	var b listBuilder[syntax.Specifier]
	for {
		var k syntax.Kind
		switch p.cur.peek(1).Kind {
		case lexer.TokenConst:
			k = syntax.KindConstQualifier
		case lexer.TokenVolatile:
			k = syntax.KindVolatileQualifier
		case lexer.TokenRestrict:
			k = syntax.KindRestrictQualifier
		case lexer.TokenAtomic:
			k = syntax.KindAtomicQualifier
		case lexer.TokenGNUAttribute:
			b.append(p.parseExtGNUAttributeSpecifier())
			continue
		default:
			return b.head
		}
		n := newNode[syntax.TrivialSpecifier](p)
		n.K = k
		n.KwIdx = p.cur.consume()
		b.append(n)
	}
}

func (p *Parser) parseParameterSuffix() (*syntax.ParameterSuffix, bool) {
	n := newNode[syntax.ParameterSuffix](p)
	p.match(lexer.TokenLParen, &n.OpenParenIdx)
	if p.match(lexer.TokenRParen, &n.CloseParenIdx) {
		p.match(lexer.TokenOmission, &n.OmissionKwIdx)
		return n, true
	}
	var b sepListBuilder[*syntax.ParameterDeclaration]
	first := true
	for {
		if p.cur.at(lexer.TokenEllipsis) {
			if first {
				p.reportCode(diag.CodeNamedParameterBeforeEllipsis)
			}
			n.EllipsisIdx = p.cur.consume()
			break
		}
		param, ok := p.parseParameterDeclaration()
		if !ok {
			p.skipTo(lexer.TokenRParen)
			break
		}
		b.append(param)
		first = false
		var comma syntax.TokenIndex
		if !p.match(lexer.TokenComma, &comma) {
			break
		}
		b.delimit(comma)
	}
	n.Params = b.head
	ok := p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
	p.match(lexer.TokenOmission, &n.OmissionKwIdx)
	return n, ok
}

func (p *Parser) parseParameterDeclaration() (*syntax.ParameterDeclaration, bool) {
	info := p.parseDeclarationSpecifiers(prototypeScope)
	if info.count == 0 {
		p.expectedFIRSTof(diag.NTParameterDeclaration)
		return nil, false
	}
	n := newNode[syntax.ParameterDeclaration](p)
	n.Specs = info.list
	if declaratorFollows(p.cur.peek(1).Kind) {
		d, ok := p.parseParameterDeclarator()
		n.Decltor = d
		if !ok {
			return n, false
		}
	}
	return n, true
}

// parseParameterDeclarator disambiguates named against abstract
// declarators by speculation: the named form is tried first and
// abandoned if it fails
func (p *Parser) parseParameterDeclarator() (syntax.Declarator, bool) {
	b := p.snapshot()
	d, ok := p.parseDeclarator(anyDeclarator, prototypeScope)
	if ok {
		return d, true
	}
	b.backtrack()
	return p.parseDeclarator(abstractDeclarator, prototypeScope)
}

func (p *Parser) parseSubscriptSuffix(scope declarationScope) (*syntax.SubscriptSuffix, bool) {
	n := newNode[syntax.SubscriptSuffix](p)
	p.match(lexer.TokenLBracket, &n.OpenBracketIdx)
	if p.match(lexer.TokenRBracket, &n.CloseBracketIdx) {
		return n, true
	}
	if p.cur.at(lexer.TokenStar) && p.cur.peek(2).Kind == lexer.TokenRBracket {
		if scope == prototypeScope {
			n.AsteriskIdx = p.cur.consume()
		} else {
			p.reportCode(diag.CodeUnexpectedPointerInArrayDeclarator)
			p.cur.consume()
		}
		ok := p.matchOrSkipTo(lexer.TokenRBracket, &n.CloseBracketIdx)
		return n, ok
	}
	restricted := false
	if p.cur.at(lexer.TokenStatic) {
		restricted = true
		n.StaticKwIdx = p.cur.consume()
	}
	if quals := p.parseTypeQualifierList(); quals != nil {
		restricted = true
		n.Quals = quals
	}
	if n.StaticKwIdx == syntax.InvalidTokenIndex && p.cur.at(lexer.TokenStatic) {
		restricted = true
		n.StaticKwIdx = p.cur.consume()
	}
	if restricted && scope != prototypeScope {
		p.reportCode(diag.CodeUnexpectedStaticOrQualifierInArrayDeclarator)
		n.StaticKwIdx = syntax.InvalidTokenIndex
		n.Quals = nil
	}
	if !p.cur.at(lexer.TokenRBracket) {
		n.Expr = p.parseAssignmentExpression()
	}
	ok := p.matchOrSkipTo(lexer.TokenRBracket, &n.CloseBracketIdx)
	return n, ok
}

// attributes and asm labels

func (p *Parser) parseAttributeSpecifiers() *syntax.SpecifierList {
	var b listBuilder[syntax.Specifier]
	for p.cur.at(lexer.TokenGNUAttribute) {
		b.append(p.parseExtGNUAttributeSpecifier())
	}
	return b.head
}

func (p *Parser) parseExtGNUAttributeSpecifier() *syntax.ExtGNUAttributeSpecifier {
	n := newNode[syntax.ExtGNUAttributeSpecifier](p)
	n.AttrKwIdx = p.cur.consume()
	p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx1)
	p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx2)
	var b sepListBuilder[*syntax.ExtGNUAttribute]
	for !p.cur.at(lexer.TokenRParen) && !p.cur.at(lexer.TokenEOF) {
		a := newNode[syntax.ExtGNUAttribute](p)
		a.KwOrIdentIdx = p.cur.consume()
		if p.match(lexer.TokenLParen, &a.OpenParenIdx) {
			var eb sepListBuilder[syntax.Expression]
			for !p.cur.at(lexer.TokenRParen) && !p.cur.at(lexer.TokenEOF) {
				eb.append(p.parseAssignmentExpression())
				var comma syntax.TokenIndex
				if !p.match(lexer.TokenComma, &comma) {
					break
				}
				eb.delimit(comma)
			}
			a.Exprs = eb.head
			p.matchOrSkipTo(lexer.TokenRParen, &a.CloseParenIdx)
		}
		b.append(a)
		var comma syntax.TokenIndex
		if !p.match(lexer.TokenComma, &comma) {
			break
		}
		b.delimit(comma)
	}
	n.Attrs = b.head
	p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx1)
	p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx2)
	return n
}

func (p *Parser) parseAsmLabelOpt() *syntax.ExtGNUAsmLabel {
	if !p.cur.at(lexer.TokenGNUAsm) {
		return nil
	}
	n := newNode[syntax.ExtGNUAsmLabel](p)
	n.AsmKwIdx = p.cur.consume()
	p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx)
	n.Label = p.parseStringLiteral()
	p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
	return n
}

// initializers

func (p *Parser) parseInitializer() syntax.Initializer {
	if p.cur.at(lexer.TokenLBrace) {
		return p.parseBraceEnclosedInitializer()
	}
	n := newNode[syntax.ExpressionInitializer](p)
	n.Expr = p.parseAssignmentExpression()
	return n
}

func (p *Parser) parseBraceEnclosedInitializer() *syntax.BraceEnclosedInitializer {
	n := newNode[syntax.BraceEnclosedInitializer](p)
	p.match(lexer.TokenLBrace, &n.OpenBraceIdx)
	var b sepListBuilder[syntax.Initializer]
	for !p.cur.at(lexer.TokenRBrace) && !p.cur.at(lexer.TokenEOF) {
		b.append(p.parseInitializerListItem())
		var comma syntax.TokenIndex
		if !p.match(lexer.TokenComma, &comma) {
			break
		}
		b.delimit(comma)
	}
	n.Inits = b.head
	p.matchOrSkipTo(lexer.TokenRBrace, &n.CloseBraceIdx)
	return n
}

func (p *Parser) parseInitializerListItem() syntax.Initializer {
	switch p.cur.peek(1).Kind {
	case lexer.TokenDot, lexer.TokenLBracket:
		if p.opts().Dialect.Before(syntax.C99) && !p.opts().Ext.GNUDesignatedInitializers {
			p.expectedFeature("designated initializers")
		}
		n := newNode[syntax.DesignatedInitializer](p)
		n.Desigs = p.parseDesignatorList()
		if !p.match(lexer.TokenAssign, &n.EqualsIdx) {
			// tolerated: the tree keeps an invalid equals index
			p.expectedToken(lexer.TokenAssign)
		}
		n.Init = p.parseInitializer()
		return n
	case lexer.TokenAssign:
		p.reportCode(diag.CodeExpectedFieldDesignator)
		n := newNode[syntax.DesignatedInitializer](p)
		n.EqualsIdx = p.cur.consume()
		n.Init = p.parseInitializer()
		return n
	default:
		return p.parseInitializer()
	}
}

func (p *Parser) parseDesignatorList() *syntax.DesignatorList {
	var b listBuilder[syntax.Designator]
	for {
		switch p.cur.peek(1).Kind {
		case lexer.TokenDot:
			n := newNode[syntax.FieldDesignator](p)
			n.DotIdx = p.cur.consume()
			if !p.match(lexer.TokenIdent, &n.IdentIdx) {
				p.reportCode(diag.CodeExpectedFieldName)
			}
			b.append(n)
		case lexer.TokenLBracket:
			n := newNode[syntax.ArrayDesignator](p)
			n.OpenBracketIdx = p.cur.consume()
			n.Expr = p.parseConditionalExpression()
			p.matchOrSkipTo(lexer.TokenRBracket, &n.CloseBracketIdx)
			b.append(n)
		default:
			return b.head
		}
	}
}
