package syntax

// IdentifierName is an identifier used in expression position
type IdentifierName struct {
	IdentIdx TokenIndex
}

// PredefinedName is a predefined identifier such as __func__
type PredefinedName struct {
	KwIdx TokenIndex
}

// ConstantExpression is an integer, floating, character, boolean or
// null-pointer constant; the kind records the constant category
type ConstantExpression struct {
	K           Kind
	ConstantIdx TokenIndex
}

// StringLiteralExpression is a string literal; adjacent literals are
// chained through Adjacent
type StringLiteralExpression struct {
	LiteralIdx TokenIndex
	Adjacent   *StringLiteralExpression
}

// ParenthesizedExpression is ( expression )
type ParenthesizedExpression struct {
	OpenParenIdx  TokenIndex
	Expr          Expression
	CloseParenIdx TokenIndex
}

// GenericSelectionExpression is a C11 _Generic selection
type GenericSelectionExpression struct {
	GenericKwIdx  TokenIndex
	OpenParenIdx  TokenIndex
	Expr          Expression
	CommaIdx      TokenIndex
	Assocs        *GenericAssociationList
	CloseParenIdx TokenIndex
}

// GenericAssociation is one association of a generic selection; the
// default association has a nil type name and a valid default-keyword index
type GenericAssociation struct {
	K            Kind // KindTypedGenericAssociation or KindDefaultGenericAssociation
	TyName       *TypeName
	DefaultKwIdx TokenIndex
	ColonIdx     TokenIndex
	Expr         Expression
}

// StatementExpression is the GNU ( { ... } ) statement-expression form
type StatementExpression struct {
	OpenParenIdx  TokenIndex
	Stmt          *CompoundStatement
	CloseParenIdx TokenIndex
}

// PostfixUnaryExpression is post-increment or post-decrement
type PostfixUnaryExpression struct {
	K           Kind
	Expr        Expression
	OperatorIdx TokenIndex
}

// PrefixUnaryExpression covers pre-increment/decrement, address-of,
// indirection, unary plus/minus, bitwise/logical not and the
// __extension__ prefix
type PrefixUnaryExpression struct {
	K           Kind
	OperatorIdx TokenIndex
	Expr        Expression
}

// MemberAccessExpression is direct (.) or indirect (->) member access
type MemberAccessExpression struct {
	K           Kind
	Expr        Expression
	OperatorIdx TokenIndex
	MemberName  *IdentifierName
}

// ArraySubscriptExpression is expr [ expr ]
type ArraySubscriptExpression struct {
	Expr            Expression
	OpenBracketIdx  TokenIndex
	ArgExpr         Expression
	CloseBracketIdx TokenIndex
}

// CallExpression is expr ( arguments )
type CallExpression struct {
	Expr          Expression
	OpenParenIdx  TokenIndex
	Args          *ExpressionList
	CloseParenIdx TokenIndex
}

// CompoundLiteralExpression is ( type-name ) { initializer-list }
type CompoundLiteralExpression struct {
	OpenParenIdx  TokenIndex
	TyName        *TypeName
	CloseParenIdx TokenIndex
	Init          Initializer
}

// CastExpression is ( type-name ) cast-expression
type CastExpression struct {
	OpenParenIdx  TokenIndex
	TyName        *TypeName
	CloseParenIdx TokenIndex
	Expr          Expression
}

// TypeTraitExpression is sizeof or _Alignof applied to a parenthesized
// type name or an expression
type TypeTraitExpression struct {
	K           Kind // KindSizeofExpression or KindAlignofExpression
	OperatorIdx TokenIndex
	TyRef       TypeReference
}

// BinaryExpression covers all left-associative infix operators from
// multiplicative through logical-OR; the kind records the operator
type BinaryExpression struct {
	K           Kind
	LHS         Expression
	OperatorIdx TokenIndex
	RHS         Expression
}

// ConditionalExpression is cond ? whenTrue : whenFalse. WhenTrue is nil
// for the GNU elided-middle form cond ?: whenFalse.
type ConditionalExpression struct {
	Cond        Expression
	QuestionIdx TokenIndex
	WhenTrue    Expression
	ColonIdx    TokenIndex
	WhenFalse   Expression
}

// AssignmentExpression covers = and the compound assignment operators;
// the kind records the operator
type AssignmentExpression struct {
	K           Kind
	LHS         Expression
	OperatorIdx TokenIndex
	RHS         Expression
}

// SequencingExpression is the comma operator
type SequencingExpression struct {
	LHS         Expression
	OperatorIdx TokenIndex
	RHS         Expression
}

// AmbiguousCastOrBinaryExpression carries both interpretations of a span
// like ( T ) * y, which may be a cast of a unary expression or a binary
// expression over a parenthesized operand
type AmbiguousCastOrBinaryExpression struct {
	CastExpr   *CastExpression
	BinaryExpr *BinaryExpression
}

// TypeName is a specifier-qualifier list with an abstract declarator
type TypeName struct {
	Specs   *SpecifierList
	Decltor Declarator
}

// TypeNameAsTypeReference is a parenthesized type name in a
// type-or-expression operand position
type TypeNameAsTypeReference struct {
	OpenParenIdx  TokenIndex
	TyName        *TypeName
	CloseParenIdx TokenIndex
}

// ExpressionAsTypeReference is an expression in a type-or-expression
// operand position
type ExpressionAsTypeReference struct {
	Expr Expression
}

// AmbiguousTypeNameOrExpressionAsTypeReference carries both readings of a
// parenthesized identifier operand
type AmbiguousTypeNameOrExpressionAsTypeReference struct {
	TyNameRef *TypeNameAsTypeReference
	ExprRef   *ExpressionAsTypeReference
}

func (n *IdentifierName) Kind() Kind             { return KindIdentifierName }
func (n *PredefinedName) Kind() Kind             { return KindPredefinedName }
func (n *ConstantExpression) Kind() Kind         { return n.K }
func (n *StringLiteralExpression) Kind() Kind    { return KindStringLiteralExpression }
func (n *ParenthesizedExpression) Kind() Kind    { return KindParenthesizedExpression }
func (n *GenericSelectionExpression) Kind() Kind { return KindGenericSelectionExpression }
func (n *GenericAssociation) Kind() Kind         { return n.K }
func (n *StatementExpression) Kind() Kind        { return KindStatementExpression }
func (n *PostfixUnaryExpression) Kind() Kind     { return n.K }
func (n *PrefixUnaryExpression) Kind() Kind      { return n.K }
func (n *MemberAccessExpression) Kind() Kind     { return n.K }
func (n *ArraySubscriptExpression) Kind() Kind   { return KindArraySubscriptExpression }
func (n *CallExpression) Kind() Kind             { return KindCallExpression }
func (n *CompoundLiteralExpression) Kind() Kind  { return KindCompoundLiteralExpression }
func (n *CastExpression) Kind() Kind             { return KindCastExpression }
func (n *TypeTraitExpression) Kind() Kind        { return n.K }
func (n *BinaryExpression) Kind() Kind           { return n.K }
func (n *ConditionalExpression) Kind() Kind      { return KindConditionalExpression }
func (n *AssignmentExpression) Kind() Kind       { return n.K }
func (n *SequencingExpression) Kind() Kind       { return KindSequencingExpression }
func (n *AmbiguousCastOrBinaryExpression) Kind() Kind {
	return KindAmbiguousCastOrBinaryExpression
}
func (n *TypeName) Kind() Kind                  { return KindTypeName }
func (n *TypeNameAsTypeReference) Kind() Kind   { return KindTypeNameAsTypeReference }
func (n *ExpressionAsTypeReference) Kind() Kind { return KindExpressionAsTypeReference }
func (n *AmbiguousTypeNameOrExpressionAsTypeReference) Kind() Kind {
	return KindAmbiguousTypeNameOrExpressionAsTypeReference
}

func (*IdentifierName) implExpression()                  {}
func (*PredefinedName) implExpression()                  {}
func (*ConstantExpression) implExpression()              {}
func (*StringLiteralExpression) implExpression()         {}
func (*ParenthesizedExpression) implExpression()         {}
func (*GenericSelectionExpression) implExpression()      {}
func (*StatementExpression) implExpression()             {}
func (*PostfixUnaryExpression) implExpression()          {}
func (*PrefixUnaryExpression) implExpression()           {}
func (*MemberAccessExpression) implExpression()          {}
func (*ArraySubscriptExpression) implExpression()        {}
func (*CallExpression) implExpression()                  {}
func (*CompoundLiteralExpression) implExpression()       {}
func (*CastExpression) implExpression()                  {}
func (*TypeTraitExpression) implExpression()             {}
func (*BinaryExpression) implExpression()                {}
func (*ConditionalExpression) implExpression()           {}
func (*AssignmentExpression) implExpression()            {}
func (*SequencingExpression) implExpression()            {}
func (*AmbiguousCastOrBinaryExpression) implExpression() {}

func (*TypeNameAsTypeReference) implTypeReference()                      {}
func (*ExpressionAsTypeReference) implTypeReference()                    {}
func (*AmbiguousTypeNameOrExpressionAsTypeReference) implTypeReference() {}
