package parser

import (
	"github.com/quillc/quill-cc/pkg/diag"
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

// parseCompoundStatement parses a brace-enclosed block. On a malformed
// inner statement the recovery skips forward and the loop resumes at
// the next plausible statement start.
func (p *Parser) parseCompoundStatement() (*syntax.CompoundStatement, bool) {
	n := newNode[syntax.CompoundStatement](p)
	if !p.expect(lexer.TokenLBrace, &n.OpenBraceIdx) {
		return n, false
	}
	var stmts listBuilder[syntax.Statement]
	for !p.cur.at(lexer.TokenRBrace) && !p.cur.at(lexer.TokenEOF) {
		stmt, ok := p.parseStatement()
		if stmt != nil {
			stmts.append(stmt)
		}
		if !ok {
			p.ignoreStatement()
		}
	}
	n.Stmts = stmts.head
	ok := p.matchOrSkipTo(lexer.TokenRBrace, &n.CloseBraceIdx)
	return n, ok
}

// ignoreStatement consumes tokens through the next semicolon, stopping
// before a closing brace so the enclosing block can resynchronize
func (p *Parser) ignoreStatement() {
	for {
		switch p.cur.peek(1).Kind {
		case lexer.TokenSemicolon:
			p.cur.consume()
			return
		case lexer.TokenRBrace, lexer.TokenEOF:
			return
		default:
			p.cur.consume()
		}
	}
}

func (p *Parser) parseStatement() (syntax.Statement, bool) {
	switch p.cur.peek(1).Kind {
	case lexer.TokenLBrace:
		return p.parseCompoundStatement()
	case lexer.TokenIf:
		return p.parseIfStatement()
	case lexer.TokenSwitch:
		return p.parseSwitchStatement()
	case lexer.TokenWhile:
		return p.parseWhileStatement()
	case lexer.TokenDo:
		return p.parseDoStatement()
	case lexer.TokenFor:
		return p.parseForStatement()
	case lexer.TokenGoto:
		return p.parseGotoStatement()
	case lexer.TokenContinue:
		n := newNode[syntax.ContinueStatement](p)
		n.KwIdx = p.cur.consume()
		ok := p.expect(lexer.TokenSemicolon, &n.SemicolonIdx)
		return n, ok
	case lexer.TokenBreak:
		n := newNode[syntax.BreakStatement](p)
		n.KwIdx = p.cur.consume()
		ok := p.expect(lexer.TokenSemicolon, &n.SemicolonIdx)
		return n, ok
	case lexer.TokenReturn:
		return p.parseReturnStatement()
	case lexer.TokenCase:
		return p.parseCaseLabelStatement()
	case lexer.TokenDefault:
		return p.parseDefaultLabelStatement()
	case lexer.TokenGNUAsm:
		return p.parseAsmStatement()
	case lexer.TokenStaticAssert:
		decl, ok := p.parseStaticAssertDeclaration()
		n := newNode[syntax.DeclarationStatement](p)
		n.Decl = decl
		return n, ok
	case lexer.TokenSemicolon:
		n := newNode[syntax.ExpressionStatement](p)
		n.SemicolonIdx = p.cur.consume()
		return n, true
	case lexer.TokenIdent:
		if p.cur.peek(2).Kind == lexer.TokenColon {
			return p.parseIdentifierLabelStatement()
		}
		return p.parseExpressionOrDeclarationStatement()
	case lexer.TokenGNUExtension:
		return p.parseExtensionStatement()
	case lexer.TokenTemplateMarker:
		decl, ok := p.parseTemplateDeclaration()
		n := newNode[syntax.DeclarationStatement](p)
		n.Decl = decl
		return n, ok
	default:
		if startsDeclarationSpecifiers(p.cur.peek(1).Kind) {
			return p.parseDeclarationStatement()
		}
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseDeclarationStatement() (syntax.Statement, bool) {
	return p.parseDeclarationStatementExt(syntax.InvalidTokenIndex)
}

func (p *Parser) parseDeclarationStatementExt(extKw syntax.TokenIndex) (syntax.Statement, bool) {
	n := newNode[syntax.DeclarationStatement](p)
	decl, ok := p.parseDeclarationOrFunctionDefinition(extKw, blockScope)
	n.Decl = decl
	if decl == nil {
		return nil, false
	}
	return n, ok
}

// parseExtensionStatement decides whether a statement-position
// __extension__ prefixes a declaration or an expression
func (p *Parser) parseExtensionStatement() (syntax.Statement, bool) {
	save := p.snapshot()
	extKw := p.cur.consume()
	if startsDeclarationSpecifiers(p.cur.peek(1).Kind) {
		return p.parseDeclarationStatementExt(extKw)
	}
	if p.cur.at(lexer.TokenIdent) && p.determineIdentifierRole() == roleTypedefName {
		return p.parseDeclarationStatementExt(extKw)
	}
	save.backtrack()
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() (syntax.Statement, bool) {
	n := newNode[syntax.ExpressionStatement](p)
	n.Expr = p.parseExpression()
	ok := p.expect(lexer.TokenSemicolon, &n.SemicolonIdx)
	return n, ok
}

// parseExpressionOrDeclarationStatement handles a statement opening
// with an identifier. The role oracle decides whether it heads a
// declaration; a declarator shaped like a parenthesized or pointer
// form is still a valid expression, so in that case both readings are
// parsed in full and carried on one node.
func (p *Parser) parseExpressionOrDeclarationStatement() (syntax.Statement, bool) {
	if p.determineIdentifierRole() != roleTypedefName {
		return p.parseExpressionStatement()
	}
	save := p.snapshot()
	declStmt, declOK := p.parseDeclarationStatement()
	if !declOK {
		save.backtrack()
		return p.parseExpressionStatement()
	}
	ds, isDecl := declStmt.(*syntax.DeclarationStatement)
	if !isDecl || !declarationReadsAsExpression(ds.Decl) {
		return declStmt, declOK
	}
	declEnd := p.cur.idx
	save.backtrack()
	exprStmt, exprOK := p.parseExpressionStatement()
	es, isExpr := exprStmt.(*syntax.ExpressionStatement)
	if !exprOK || !isExpr || p.cur.idx != declEnd {
		p.cur.idx = declEnd
		return declStmt, declOK
	}
	n := newNode[syntax.AmbiguousExpressionOrDeclarationStatement](p)
	n.ExprStmt = es
	n.DeclStmt = ds
	return n, true
}

// declarationReadsAsExpression reports whether a declaration headed by
// a lone typedef-name specifier also scans as an expression, which is
// the case when every declarator is a pointer or parenthesized form.
// T * x ; and T ( x ) ; are the classic shapes.
func declarationReadsAsExpression(decl syntax.Declaration) bool {
	vd, ok := decl.(*syntax.VariableAndOrFunctionDeclaration)
	if !ok || vd.Decltors == nil {
		return false
	}
	if !specifiersAreLoneTypedefName(vd.Specs) {
		return false
	}
	for cell := vd.Decltors; cell != nil; cell = cell.Next {
		switch d := cell.Value.(type) {
		case *syntax.PointerDeclarator:
			if d.Attrs != nil || d.Quals != nil {
				return false
			}
		case *syntax.ParenthesizedDeclarator:
		case *syntax.ArrayOrFunctionDeclarator:
			if d.K != syntax.KindFunctionDeclarator {
				return false
			}
			if _, paren := d.InnerDecltor.(*syntax.ParenthesizedDeclarator); !paren {
				return false
			}
		default:
			return false
		}
		if initializerOf(cell.Value) != nil {
			return false
		}
	}
	return true
}

func specifiersAreLoneTypedefName(specs *syntax.SpecifierList) bool {
	if specs == nil || specs.Next != nil {
		return false
	}
	_, ok := specs.Value.(*syntax.TypedefName)
	return ok
}

func initializerOf(d syntax.Declarator) syntax.Initializer {
	switch d := d.(type) {
	case *syntax.IdentifierDeclarator:
		return d.Init
	case *syntax.PointerDeclarator:
		return d.Init
	case *syntax.ArrayOrFunctionDeclarator:
		return d.Init
	default:
		return nil
	}
}

func (p *Parser) parseIfStatement() (syntax.Statement, bool) {
	n := newNode[syntax.IfStatement](p)
	n.IfKwIdx = p.cur.consume()
	if !p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx) {
		return n, false
	}
	n.Cond = p.parseExpression()
	if !p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx) {
		return n, false
	}
	then, ok := p.parseStatement()
	n.Then = then
	if !ok {
		return n, false
	}
	if p.match(lexer.TokenElse, &n.ElseKwIdx) {
		n.Else, ok = p.parseStatement()
	}
	return n, ok
}

func (p *Parser) parseSwitchStatement() (syntax.Statement, bool) {
	n := newNode[syntax.SwitchStatement](p)
	n.SwitchKwIdx = p.cur.consume()
	if !p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx) {
		return n, false
	}
	n.Cond = p.parseExpression()
	if !p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx) {
		return n, false
	}
	body, ok := p.parseStatement()
	n.Body = body
	return n, ok
}

func (p *Parser) parseWhileStatement() (syntax.Statement, bool) {
	n := newNode[syntax.WhileStatement](p)
	n.WhileKwIdx = p.cur.consume()
	if !p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx) {
		return n, false
	}
	n.Cond = p.parseExpression()
	if !p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx) {
		return n, false
	}
	body, ok := p.parseStatement()
	n.Body = body
	return n, ok
}

func (p *Parser) parseDoStatement() (syntax.Statement, bool) {
	n := newNode[syntax.DoStatement](p)
	n.DoKwIdx = p.cur.consume()
	body, ok := p.parseStatement()
	n.Body = body
	if !ok {
		return n, false
	}
	if !p.expect(lexer.TokenWhile, &n.WhileKwIdx) {
		return n, false
	}
	if !p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx) {
		return n, false
	}
	n.Cond = p.parseExpression()
	if !p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx) {
		return n, false
	}
	ok = p.expect(lexer.TokenSemicolon, &n.SemicolonIdx)
	return n, ok
}

// parseForStatement parses the three-clause for loop. The init clause
// is a full statement so it carries its own semicolon, matching the
// declaration form C99 allows there.
func (p *Parser) parseForStatement() (syntax.Statement, bool) {
	n := newNode[syntax.ForStatement](p)
	n.ForKwIdx = p.cur.consume()
	if !p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx) {
		return n, false
	}
	init, ok := p.parseForInitClause()
	n.Init = init
	if !ok {
		p.skipTo(lexer.TokenRParen)
	}
	if !p.cur.at(lexer.TokenSemicolon) && !p.cur.at(lexer.TokenRParen) {
		n.Cond = p.parseExpression()
	}
	if !p.matchOrSkipTo(lexer.TokenSemicolon, &n.SemicolonIdx) {
		p.skipTo(lexer.TokenRParen)
	}
	if !p.cur.at(lexer.TokenRParen) {
		n.Step = p.parseExpression()
	}
	if !p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx) {
		return n, false
	}
	body, ok := p.parseStatement()
	n.Body = body
	return n, ok
}

func (p *Parser) parseForInitClause() (syntax.Statement, bool) {
	switch {
	case p.cur.at(lexer.TokenSemicolon):
		n := newNode[syntax.ExpressionStatement](p)
		n.SemicolonIdx = p.cur.consume()
		return n, true
	case p.cur.at(lexer.TokenIdent):
		if p.cur.peek(2).Kind != lexer.TokenColon {
			return p.parseExpressionOrDeclarationStatement()
		}
		return p.parseExpressionStatement()
	case startsDeclarationSpecifiers(p.cur.peek(1).Kind):
		return p.parseDeclarationStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseGotoStatement() (syntax.Statement, bool) {
	n := newNode[syntax.GotoStatement](p)
	n.GotoKwIdx = p.cur.consume()
	if !p.match(lexer.TokenIdent, &n.IdentIdx) {
		p.expectedCategory(diag.CategoryIdentifier)
		return n, false
	}
	ok := p.expect(lexer.TokenSemicolon, &n.SemicolonIdx)
	return n, ok
}

func (p *Parser) parseReturnStatement() (syntax.Statement, bool) {
	n := newNode[syntax.ReturnStatement](p)
	n.KwIdx = p.cur.consume()
	if !p.cur.at(lexer.TokenSemicolon) {
		n.Expr = p.parseExpression()
	}
	ok := p.expect(lexer.TokenSemicolon, &n.SemicolonIdx)
	return n, ok
}

func (p *Parser) parseIdentifierLabelStatement() (syntax.Statement, bool) {
	n := newNode[syntax.LabeledStatement](p)
	n.K = syntax.KindIdentifierLabelStatement
	n.LabelIdx = p.cur.consume()
	n.ColonIdx = p.cur.consume()
	stmt, ok := p.parseStatement()
	n.Stmt = stmt
	return n, ok
}

func (p *Parser) parseCaseLabelStatement() (syntax.Statement, bool) {
	n := newNode[syntax.LabeledStatement](p)
	n.K = syntax.KindCaseLabelStatement
	n.LabelIdx = p.cur.consume()
	n.Expr = p.parseConditionalExpression()
	if !p.expect(lexer.TokenColon, &n.ColonIdx) {
		return n, false
	}
	stmt, ok := p.parseStatement()
	n.Stmt = stmt
	return n, ok
}

func (p *Parser) parseDefaultLabelStatement() (syntax.Statement, bool) {
	n := newNode[syntax.LabeledStatement](p)
	n.K = syntax.KindDefaultLabelStatement
	n.LabelIdx = p.cur.consume()
	if !p.expect(lexer.TokenColon, &n.ColonIdx) {
		return n, false
	}
	stmt, ok := p.parseStatement()
	n.Stmt = stmt
	return n, ok
}

// parseAsmStatement parses a GNU inline assembly statement with up to
// four colon sections: outputs, inputs, clobbers and goto labels
func (p *Parser) parseAsmStatement() (*syntax.ExtGNUAsmStatement, bool) {
	n := newNode[syntax.ExtGNUAsmStatement](p)
	if !p.opts().Ext.GNUAsm {
		p.expectedFeature("inline assembly")
	}
	n.AsmKwIdx = p.cur.consume()
	n.Quals = p.parseAsmQualifiers()
	if !p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx) {
		return n, false
	}
	n.Template = p.parseStringLiteral()
	if n.Template == nil {
		p.skipTo(lexer.TokenRParen)
		p.match(lexer.TokenRParen, &n.CloseParenIdx)
		p.match(lexer.TokenSemicolon, &n.SemicolonIdx)
		return n, false
	}
	if p.match(lexer.TokenColon, &n.Colon1Idx) {
		n.Outputs = p.parseAsmOperandList()
	}
	if p.match(lexer.TokenColon, &n.Colon2Idx) {
		n.Inputs = p.parseAsmOperandList()
	}
	if p.match(lexer.TokenColon, &n.Colon3Idx) {
		n.Clobbers = p.parseAsmClobberList()
	}
	if p.match(lexer.TokenColon, &n.Colon4Idx) {
		n.GotoLabels = p.parseAsmGotoLabelList()
	}
	if !p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx) {
		return n, false
	}
	ok := p.expect(lexer.TokenSemicolon, &n.SemicolonIdx)
	return n, ok
}

func (p *Parser) parseAsmQualifiers() *syntax.SpecifierList {
	var quals listBuilder[syntax.Specifier]
	for {
		var k syntax.Kind
		switch p.cur.peek(1).Kind {
		case lexer.TokenVolatile:
			k = syntax.KindAsmVolatileQualifier
		case lexer.TokenInline:
			k = syntax.KindAsmInlineQualifier
		case lexer.TokenGoto:
			k = syntax.KindAsmGotoQualifier
		default:
			return quals.head
		}
		q := newNode[syntax.TrivialSpecifier](p)
		q.K = k
		q.KwIdx = p.cur.consume()
		quals.append(q)
	}
}

func (p *Parser) parseAsmOperandList() *syntax.AsmOperandList {
	var ops sepListBuilder[*syntax.AsmOperand]
	for isStringToken(p.cur.peek(1).Kind) || p.cur.at(lexer.TokenLBracket) {
		op, ok := p.parseAsmOperand()
		ops.append(op)
		if !ok {
			p.skipTo(lexer.TokenRParen)
			break
		}
		if !p.cur.at(lexer.TokenComma) {
			break
		}
		ops.delimit(p.cur.consume())
	}
	return ops.head
}

func (p *Parser) parseAsmOperand() (*syntax.AsmOperand, bool) {
	n := newNode[syntax.AsmOperand](p)
	if p.match(lexer.TokenLBracket, &n.OpenBracketIdx) {
		name := newNode[syntax.IdentifierName](p)
		if !p.match(lexer.TokenIdent, &name.IdentIdx) {
			p.expectedCategory(diag.CategoryIdentifier)
			return n, false
		}
		n.Name = name
		if !p.matchOrSkipTo(lexer.TokenRBracket, &n.CloseBracketIdx) {
			return n, false
		}
	}
	n.Constraint = p.parseStringLiteral()
	if n.Constraint == nil {
		return n, false
	}
	if !p.expect(lexer.TokenLParen, &n.OpenParenIdx) {
		return n, false
	}
	n.Expr = p.parseExpression()
	ok := p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
	return n, ok
}

func (p *Parser) parseAsmClobberList() *syntax.ExpressionList {
	var clobbers sepListBuilder[syntax.Expression]
	for isStringToken(p.cur.peek(1).Kind) {
		lit := p.parseStringLiteral()
		if lit == nil {
			break
		}
		clobbers.append(lit)
		if !p.cur.at(lexer.TokenComma) {
			break
		}
		clobbers.delimit(p.cur.consume())
	}
	return clobbers.head
}

func (p *Parser) parseAsmGotoLabelList() *syntax.IdentifierNameList {
	var labels sepListBuilder[*syntax.IdentifierName]
	for p.cur.at(lexer.TokenIdent) {
		name := newNode[syntax.IdentifierName](p)
		name.IdentIdx = p.cur.consume()
		labels.append(name)
		if !p.cur.at(lexer.TokenComma) {
			break
		}
		labels.delimit(p.cur.consume())
	}
	return labels.head
}
