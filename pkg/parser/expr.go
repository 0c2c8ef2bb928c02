package parser

import (
	"github.com/quillc/quill-cc/pkg/diag"
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

// Infix operator precedence, highest binds tightest. Conditional and
// assignment are right associative; everything else is left associative.
const (
	precSequencing = iota + 1
	precAssignment
	precConditional
	precLogicalOR
	precLogicalAND
	precBitwiseOR
	precBitwiseXOR
	precBitwiseAND
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

type infixOp struct {
	prec       int
	kind       syntax.Kind
	rightAssoc bool
}

var infixOps = map[lexer.TokenKind]infixOp{
	lexer.TokenStar:          {precMultiplicative, syntax.KindMultiplyExpression, false},
	lexer.TokenSlash:         {precMultiplicative, syntax.KindDivideExpression, false},
	lexer.TokenPercent:       {precMultiplicative, syntax.KindModuloExpression, false},
	lexer.TokenPlus:          {precAdditive, syntax.KindAddExpression, false},
	lexer.TokenMinus:         {precAdditive, syntax.KindSubtractExpression, false},
	lexer.TokenShl:           {precShift, syntax.KindLeftShiftExpression, false},
	lexer.TokenShr:           {precShift, syntax.KindRightShiftExpression, false},
	lexer.TokenLt:            {precRelational, syntax.KindLessThanExpression, false},
	lexer.TokenLe:            {precRelational, syntax.KindLessThanOrEqualExpression, false},
	lexer.TokenGt:            {precRelational, syntax.KindGreaterThanExpression, false},
	lexer.TokenGe:            {precRelational, syntax.KindGreaterThanOrEqualExpression, false},
	lexer.TokenEq:            {precEquality, syntax.KindEqualsExpression, false},
	lexer.TokenNe:            {precEquality, syntax.KindNotEqualsExpression, false},
	lexer.TokenAmpersand:     {precBitwiseAND, syntax.KindBitwiseANDExpression, false},
	lexer.TokenCaret:         {precBitwiseXOR, syntax.KindBitwiseXORExpression, false},
	lexer.TokenPipe:          {precBitwiseOR, syntax.KindBitwiseORExpression, false},
	lexer.TokenAnd:           {precLogicalAND, syntax.KindLogicalANDExpression, false},
	lexer.TokenOr:            {precLogicalOR, syntax.KindLogicalORExpression, false},
	lexer.TokenQuestion:      {precConditional, syntax.KindConditionalExpression, true},
	lexer.TokenAssign:        {precAssignment, syntax.KindBasicAssignmentExpression, true},
	lexer.TokenStarAssign:    {precAssignment, syntax.KindMultiplyAssignmentExpression, true},
	lexer.TokenSlashAssign:   {precAssignment, syntax.KindDivideAssignmentExpression, true},
	lexer.TokenPercentAssign: {precAssignment, syntax.KindModuloAssignmentExpression, true},
	lexer.TokenPlusAssign:    {precAssignment, syntax.KindAddAssignmentExpression, true},
	lexer.TokenMinusAssign:   {precAssignment, syntax.KindSubtractAssignmentExpression, true},
	lexer.TokenShlAssign:     {precAssignment, syntax.KindLeftShiftAssignmentExpression, true},
	lexer.TokenShrAssign:     {precAssignment, syntax.KindRightShiftAssignmentExpression, true},
	lexer.TokenAndAssign:     {precAssignment, syntax.KindAndAssignmentExpression, true},
	lexer.TokenXorAssign:     {precAssignment, syntax.KindXorAssignmentExpression, true},
	lexer.TokenOrAssign:      {precAssignment, syntax.KindOrAssignmentExpression, true},
	lexer.TokenComma:         {precSequencing, syntax.KindSequencingExpression, false},
}

// parseExpression parses a full expression including the comma operator
func (p *Parser) parseExpression() syntax.Expression {
	return p.parseBinaryExpression(precSequencing)
}

// parseAssignmentExpression parses an expression excluding the comma
// operator, the form accepted by argument and initializer positions
func (p *Parser) parseAssignmentExpression() syntax.Expression {
	return p.parseBinaryExpression(precAssignment)
}

// parseConditionalExpression parses the constant-expression form
func (p *Parser) parseConditionalExpression() syntax.Expression {
	return p.parseBinaryExpression(precConditional)
}

// parseBinaryExpression is the n-ary precedence climber over every
// infix operator of precedence at least minPrec
func (p *Parser) parseBinaryExpression(minPrec int) syntax.Expression {
	p.enterExpression()
	defer p.leaveExpression()
	lhs := p.parseCastExpression()
	for {
		op, ok := infixOps[p.cur.peek(1).Kind]
		if !ok || op.prec < minPrec {
			return lhs
		}
		switch {
		case op.kind == syntax.KindConditionalExpression:
			n := newNode[syntax.ConditionalExpression](p)
			n.Cond = lhs
			n.QuestionIdx = p.cur.consume()
			if !p.cur.at(lexer.TokenColon) {
				n.WhenTrue = p.parseExpression()
			}
			if !p.match(lexer.TokenColon, &n.ColonIdx) {
				p.expectedToken(lexer.TokenColon)
			}
			n.WhenFalse = p.parseBinaryExpression(op.prec)
			lhs = n
		case op.kind == syntax.KindSequencingExpression:
			n := newNode[syntax.SequencingExpression](p)
			n.LHS = lhs
			n.OperatorIdx = p.cur.consume()
			n.RHS = p.parseBinaryExpression(op.prec + 1)
			lhs = n
		case op.prec == precAssignment:
			n := newNode[syntax.AssignmentExpression](p)
			n.K = op.kind
			n.LHS = lhs
			n.OperatorIdx = p.cur.consume()
			n.RHS = p.parseBinaryExpression(op.prec)
			lhs = n
		default:
			n := newNode[syntax.BinaryExpression](p)
			n.K = op.kind
			n.LHS = lhs
			n.OperatorIdx = p.cur.consume()
			n.RHS = p.parseBinaryExpression(op.prec + 1)
			lhs = n
		}
	}
}

// parseCastExpression handles casts, compound literals and the
// cast-vs-parenthesized speculation on an identifier after the paren
func (p *Parser) parseCastExpression() syntax.Expression {
	if !p.cur.at(lexer.TokenLParen) {
		return p.parseUnaryExpression()
	}
	next := p.cur.peek(2)
	switch {
	case startsDeclarationSpecifiers(next.Kind):
		return p.parseCastOrCompoundLiteral(false)
	case next.Kind == lexer.TokenIdent:
		b := p.snapshot()
		expr := p.parseCastOrCompoundLiteral(true)
		if expr != nil {
			return expr
		}
		b.backtrack()
		return p.parseUnaryExpression()
	default:
		return p.parseUnaryExpression()
	}
}

// parseCastOrCompoundLiteral parses ( type-name ) followed by either a
// brace initializer or a cast operand. In speculative mode it returns
// nil instead of committing when the tokens cannot be a cast.
func (p *Parser) parseCastOrCompoundLiteral(speculative bool) syntax.Expression {
	open := p.cur.consume()
	tn, ok := p.parseTypeName()
	if !ok || !p.cur.at(lexer.TokenRParen) {
		if speculative {
			return nil
		}
		p.expectedToken(lexer.TokenRParen)
		p.skipTo(lexer.TokenRParen)
	}
	var closeIdx syntax.TokenIndex
	p.match(lexer.TokenRParen, &closeIdx)

	if p.cur.at(lexer.TokenLBrace) {
		if p.opts().Dialect.Before(syntax.C99) && !p.opts().Ext.GNUCompoundLiterals {
			p.expectedFeature("compound literals")
		}
		n := newNode[syntax.CompoundLiteralExpression](p)
		n.OpenParenIdx = open
		n.TyName = tn
		n.CloseParenIdx = closeIdx
		n.Init = p.parseBraceEnclosedInitializer()
		return p.parsePostfixSuffixes(n)
	}
	if speculative && !startsCastOperand(p.cur.peek(1).Kind) {
		return nil
	}
	opTok := p.cur.peek(1).Kind
	cast := newNode[syntax.CastExpression](p)
	cast.OpenParenIdx = open
	cast.TyName = tn
	cast.CloseParenIdx = closeIdx
	cast.Expr = p.parseCastExpression()
	if amb := p.castBinaryAmbiguity(cast, opTok); amb != nil {
		return amb
	}
	return cast
}

// startsCastOperand reports whether k may begin the operand of a cast
func startsCastOperand(k lexer.TokenKind) bool {
	switch k {
	case lexer.TokenIdent, lexer.TokenIntegerConstant, lexer.TokenFloatingConstant,
		lexer.TokenCharConstant, lexer.TokenCharConstantWide, lexer.TokenCharConstantU16,
		lexer.TokenCharConstantU32, lexer.TokenString, lexer.TokenStringWide,
		lexer.TokenStringU8, lexer.TokenStringU16, lexer.TokenStringU32,
		lexer.TokenTrue, lexer.TokenFalse, lexer.TokenNULL, lexer.TokenNullptr,
		lexer.TokenPredefinedName, lexer.TokenLParen, lexer.TokenGeneric,
		lexer.TokenIncrement, lexer.TokenDecrement, lexer.TokenAmpersand,
		lexer.TokenStar, lexer.TokenPlus, lexer.TokenMinus, lexer.TokenTilde,
		lexer.TokenNot, lexer.TokenSizeof, lexer.TokenAlignof, lexer.TokenGNUExtension:
		return true
	}
	return false
}

// castBinaryAmbiguity builds the dual reading of a cast over a unary
// operator when the type is a bare typedef-name: ( x ) * y is either a
// cast of *y to x or x multiplied by y
func (p *Parser) castBinaryAmbiguity(cast *syntax.CastExpression, opTok lexer.TokenKind) syntax.Expression {
	var binKind syntax.Kind
	switch opTok {
	case lexer.TokenAmpersand:
		binKind = syntax.KindBitwiseANDExpression
	case lexer.TokenStar:
		binKind = syntax.KindMultiplyExpression
	case lexer.TokenPlus:
		binKind = syntax.KindAddExpression
	case lexer.TokenMinus:
		binKind = syntax.KindSubtractExpression
	default:
		return nil
	}
	unary, ok := cast.Expr.(*syntax.PrefixUnaryExpression)
	if !ok {
		return nil
	}
	tdn := bareTypedefName(cast.TyName)
	if tdn == nil {
		return nil
	}
	id := newNode[syntax.IdentifierName](p)
	id.IdentIdx = tdn.IdentIdx
	paren := newNode[syntax.ParenthesizedExpression](p)
	paren.OpenParenIdx = cast.OpenParenIdx
	paren.Expr = id
	paren.CloseParenIdx = cast.CloseParenIdx
	bin := newNode[syntax.BinaryExpression](p)
	bin.K = binKind
	bin.LHS = paren
	bin.OperatorIdx = unary.OperatorIdx
	bin.RHS = unary.Expr
	amb := newNode[syntax.AmbiguousCastOrBinaryExpression](p)
	amb.CastExpr = cast
	amb.BinaryExpr = bin
	return amb
}

// bareTypedefName returns the type name's sole typedef-name specifier,
// or nil when the type is anything more structured
func bareTypedefName(tn *syntax.TypeName) *syntax.TypedefName {
	if tn == nil || tn.Specs == nil || tn.Specs.Next != nil {
		return nil
	}
	if tn.Decltor != nil {
		if _, abstract := tn.Decltor.(*syntax.AbstractDeclarator); !abstract {
			return nil
		}
	}
	tdn, ok := tn.Specs.Value.(*syntax.TypedefName)
	if !ok {
		return nil
	}
	return tdn
}

func (p *Parser) parseUnaryExpression() syntax.Expression {
	p.enterExpression()
	defer p.leaveExpression()
	var k syntax.Kind
	switch p.cur.peek(1).Kind {
	case lexer.TokenIncrement:
		k = syntax.KindPreIncrementExpression
	case lexer.TokenDecrement:
		k = syntax.KindPreDecrementExpression
	case lexer.TokenAmpersand:
		k = syntax.KindAddressOfExpression
	case lexer.TokenStar:
		k = syntax.KindPointerIndirectionExpression
	case lexer.TokenPlus:
		k = syntax.KindUnaryPlusExpression
	case lexer.TokenMinus:
		k = syntax.KindUnaryMinusExpression
	case lexer.TokenTilde:
		k = syntax.KindBitwiseNotExpression
	case lexer.TokenNot:
		k = syntax.KindLogicalNotExpression
	case lexer.TokenGNUExtension:
		k = syntax.KindExtensionExpression
	case lexer.TokenSizeof:
		return p.parseTypeTraitExpression(syntax.KindSizeofExpression)
	case lexer.TokenAlignof:
		return p.parseTypeTraitExpression(syntax.KindAlignofExpression)
	default:
		return p.parsePostfixExpression()
	}
	n := newNode[syntax.PrefixUnaryExpression](p)
	n.K = k
	n.OperatorIdx = p.cur.consume()
	switch k {
	case syntax.KindPreIncrementExpression, syntax.KindPreDecrementExpression:
		n.Expr = p.parseUnaryExpression()
	default:
		n.Expr = p.parseCastExpression()
	}
	return n
}

// parseTypeTraitExpression parses sizeof and _Alignof, whose operand is
// a parenthesized type name or an expression
func (p *Parser) parseTypeTraitExpression(k syntax.Kind) syntax.Expression {
	n := newNode[syntax.TypeTraitExpression](p)
	n.K = k
	n.OperatorIdx = p.cur.consume()
	if p.cur.at(lexer.TokenLParen) && p.parenOpensTypeOperand() {
		n.TyRef = p.parseParenthesizedTypeOrExpression()
		return n
	}
	er := newNode[syntax.ExpressionAsTypeReference](p)
	er.Expr = p.parseUnaryExpression()
	n.TyRef = er
	return n
}

// parenOpensTypeOperand reports whether the parenthesized tokens ahead
// read as a type name, including the identifier-only ambiguous form
func (p *Parser) parenOpensTypeOperand() bool {
	next := p.cur.peek(2)
	if startsDeclarationSpecifiers(next.Kind) {
		return true
	}
	if next.Kind != lexer.TokenIdent {
		return false
	}
	if p.cur.peek(3).Kind == lexer.TokenRParen {
		return true
	}
	b := p.snapshot()
	p.cur.consume()
	role := p.determineIdentifierRole()
	b.backtrack()
	return role == roleTypedefName
}

// parseParenthesizedTypeOrExpression parses the ( type-name ) and
// ( expression ) operand forms shared by _Alignas, _Alignof, sizeof and
// typeof, producing the ambiguity node for identifier-only contents
func (p *Parser) parseParenthesizedTypeOrExpression() syntax.TypeReference {
	if !p.cur.at(lexer.TokenLParen) {
		p.expectedToken(lexer.TokenLParen)
		er := newNode[syntax.ExpressionAsTypeReference](p)
		er.Expr = p.parseConditionalExpression()
		return er
	}
	if p.cur.peek(2).Kind == lexer.TokenIdent && p.cur.peek(3).Kind == lexer.TokenRParen {
		return p.parseAmbiguousTypeOperand()
	}
	if p.parenOpensTypeOperand() {
		tr := newNode[syntax.TypeNameAsTypeReference](p)
		tr.OpenParenIdx = p.cur.consume()
		tn, _ := p.parseTypeName()
		tr.TyName = tn
		p.matchOrSkipTo(lexer.TokenRParen, &tr.CloseParenIdx)
		return tr
	}
	er := newNode[syntax.ExpressionAsTypeReference](p)
	pe := newNode[syntax.ParenthesizedExpression](p)
	pe.OpenParenIdx = p.cur.consume()
	pe.Expr = p.parseExpression()
	p.matchOrSkipTo(lexer.TokenRParen, &pe.CloseParenIdx)
	er.Expr = pe
	return er
}

// parseAmbiguousTypeOperand builds both readings of ( identifier ) in a
// type-or-expression operand position
func (p *Parser) parseAmbiguousTypeOperand() syntax.TypeReference {
	open := p.cur.consume()
	identIdx := p.cur.consume()
	var closeIdx syntax.TokenIndex
	p.match(lexer.TokenRParen, &closeIdx)

	tdn := newNode[syntax.TypedefName](p)
	tdn.IdentIdx = identIdx
	tn := newNode[syntax.TypeName](p)
	tn.Specs = &syntax.SpecifierList{Value: tdn}
	tr := newNode[syntax.TypeNameAsTypeReference](p)
	tr.OpenParenIdx = open
	tr.TyName = tn
	tr.CloseParenIdx = closeIdx

	id := newNode[syntax.IdentifierName](p)
	id.IdentIdx = identIdx
	pe := newNode[syntax.ParenthesizedExpression](p)
	pe.OpenParenIdx = open
	pe.Expr = id
	pe.CloseParenIdx = closeIdx
	er := newNode[syntax.ExpressionAsTypeReference](p)
	er.Expr = pe

	amb := newNode[syntax.AmbiguousTypeNameOrExpressionAsTypeReference](p)
	amb.TyNameRef = tr
	amb.ExprRef = er
	return amb
}

func (p *Parser) parsePostfixExpression() syntax.Expression {
	return p.parsePostfixSuffixes(p.parsePrimaryExpression())
}

func (p *Parser) parsePostfixSuffixes(expr syntax.Expression) syntax.Expression {
	for {
		switch p.cur.peek(1).Kind {
		case lexer.TokenLBracket:
			n := newNode[syntax.ArraySubscriptExpression](p)
			n.Expr = expr
			n.OpenBracketIdx = p.cur.consume()
			n.ArgExpr = p.parseExpression()
			p.matchOrSkipTo(lexer.TokenRBracket, &n.CloseBracketIdx)
			expr = n
		case lexer.TokenLParen:
			n := newNode[syntax.CallExpression](p)
			n.Expr = expr
			n.OpenParenIdx = p.cur.consume()
			var b sepListBuilder[syntax.Expression]
			for !p.cur.at(lexer.TokenRParen) && !p.cur.at(lexer.TokenEOF) {
				b.append(p.parseAssignmentExpression())
				var comma syntax.TokenIndex
				if !p.match(lexer.TokenComma, &comma) {
					break
				}
				b.delimit(comma)
			}
			n.Args = b.head
			p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
			expr = n
		case lexer.TokenDot, lexer.TokenArrow:
			n := newNode[syntax.MemberAccessExpression](p)
			if p.cur.at(lexer.TokenDot) {
				n.K = syntax.KindDirectMemberAccessExpression
			} else {
				n.K = syntax.KindIndirectMemberAccessExpression
			}
			n.Expr = expr
			n.OperatorIdx = p.cur.consume()
			if p.cur.at(lexer.TokenIdent) {
				id := newNode[syntax.IdentifierName](p)
				id.IdentIdx = p.cur.consume()
				n.MemberName = id
			} else {
				p.expectedCategory(diag.CategoryIdentifier)
			}
			expr = n
		case lexer.TokenIncrement:
			n := newNode[syntax.PostfixUnaryExpression](p)
			n.K = syntax.KindPostIncrementExpression
			n.Expr = expr
			n.OperatorIdx = p.cur.consume()
			expr = n
		case lexer.TokenDecrement:
			n := newNode[syntax.PostfixUnaryExpression](p)
			n.K = syntax.KindPostDecrementExpression
			n.Expr = expr
			n.OperatorIdx = p.cur.consume()
			expr = n
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimaryExpression() syntax.Expression {
	tok := p.cur.peek(1)
	switch tok.Kind {
	case lexer.TokenIdent:
		n := newNode[syntax.IdentifierName](p)
		n.IdentIdx = p.cur.consume()
		return n
	case lexer.TokenPredefinedName:
		n := newNode[syntax.PredefinedName](p)
		n.KwIdx = p.cur.consume()
		return n
	case lexer.TokenIntegerConstant:
		return p.constant(syntax.KindIntegerConstantExpression)
	case lexer.TokenFloatingConstant:
		return p.constant(syntax.KindFloatingConstantExpression)
	case lexer.TokenCharConstant, lexer.TokenCharConstantWide,
		lexer.TokenCharConstantU16, lexer.TokenCharConstantU32:
		return p.constant(syntax.KindCharacterConstantExpression)
	case lexer.TokenTrue, lexer.TokenFalse:
		return p.constant(syntax.KindBooleanConstantExpression)
	case lexer.TokenNULL, lexer.TokenNullptr:
		return p.constant(syntax.KindNullConstantExpression)
	case lexer.TokenString, lexer.TokenStringWide, lexer.TokenStringU8,
		lexer.TokenStringU16, lexer.TokenStringU32:
		return p.parseStringLiteral()
	case lexer.TokenGeneric:
		return p.parseGenericSelection()
	case lexer.TokenLParen:
		if p.cur.peek(2).Kind == lexer.TokenLBrace {
			return p.parseStatementExpression()
		}
		n := newNode[syntax.ParenthesizedExpression](p)
		n.OpenParenIdx = p.cur.consume()
		n.Expr = p.parseExpression()
		p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
		return n
	default:
		p.expectedFIRSTof(diag.NTExpression)
		n := newNode[syntax.IdentifierName](p)
		return n
	}
}

func (p *Parser) constant(k syntax.Kind) *syntax.ConstantExpression {
	n := newNode[syntax.ConstantExpression](p)
	n.K = k
	n.ConstantIdx = p.cur.consume()
	return n
}

// parseStringLiteral parses one string literal and chains any adjacent
// literals onto it. Differing encoding prefixes are chained without
// complaint; compatibility is checked by a later phase.
func (p *Parser) parseStringLiteral() *syntax.StringLiteralExpression {
	if !isStringToken(p.cur.peek(1).Kind) {
		p.expectedCategory(diag.CategoryStringLiteral)
		return nil
	}
	head := newNode[syntax.StringLiteralExpression](p)
	head.LiteralIdx = p.cur.consume()
	tail := head
	for isStringToken(p.cur.peek(1).Kind) {
		next := newNode[syntax.StringLiteralExpression](p)
		next.LiteralIdx = p.cur.consume()
		tail.Adjacent = next
		tail = next
	}
	return head
}

func isStringToken(k lexer.TokenKind) bool {
	switch k {
	case lexer.TokenString, lexer.TokenStringWide, lexer.TokenStringU8,
		lexer.TokenStringU16, lexer.TokenStringU32:
		return true
	}
	return false
}

func (p *Parser) parseGenericSelection() syntax.Expression {
	n := newNode[syntax.GenericSelectionExpression](p)
	n.GenericKwIdx = p.cur.consume()
	p.matchOrSkipTo(lexer.TokenLParen, &n.OpenParenIdx)
	n.Expr = p.parseAssignmentExpression()
	if !p.matchOrSkipTo(lexer.TokenComma, &n.CommaIdx) {
		p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
		return n
	}
	var b sepListBuilder[*syntax.GenericAssociation]
	for {
		a := newNode[syntax.GenericAssociation](p)
		if p.cur.at(lexer.TokenDefault) {
			a.K = syntax.KindDefaultGenericAssociation
			a.DefaultKwIdx = p.cur.consume()
		} else {
			a.K = syntax.KindTypedGenericAssociation
			tn, ok := p.parseTypeName()
			a.TyName = tn
			if !ok {
				p.expectedFIRSTof(diag.NTGenericAssociation)
				p.skipTo(lexer.TokenRParen)
				b.append(a)
				break
			}
		}
		if !p.match(lexer.TokenColon, &a.ColonIdx) {
			p.expectedToken(lexer.TokenColon)
		}
		a.Expr = p.parseAssignmentExpression()
		b.append(a)
		var comma syntax.TokenIndex
		if !p.match(lexer.TokenComma, &comma) {
			break
		}
		b.delimit(comma)
	}
	n.Assocs = b.head
	p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
	return n
}

func (p *Parser) parseStatementExpression() syntax.Expression {
	if !p.opts().Ext.GNUStatementExpressions {
		p.expectedFeature("statement expressions")
	}
	n := newNode[syntax.StatementExpression](p)
	n.OpenParenIdx = p.cur.consume()
	body, _ := p.parseCompoundStatement()
	n.Stmt = body
	p.matchOrSkipTo(lexer.TokenRParen, &n.CloseParenIdx)
	return n
}
