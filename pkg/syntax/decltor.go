package syntax

// PointerDeclarator is a *-prefixed declarator with optional attributes
// and qualifiers between the asterisk and the inner declarator
type PointerDeclarator struct {
	Attrs        *SpecifierList
	AsteriskIdx  TokenIndex
	Quals        *SpecifierList
	InnerDecltor Declarator
	EqualsIdx    TokenIndex
	Init         Initializer
}

// IdentifierDeclarator names the declared entity
type IdentifierDeclarator struct {
	Attrs1    *SpecifierList
	IdentIdx  TokenIndex
	Attrs2    *SpecifierList
	AsmLabel  *ExtGNUAsmLabel
	EqualsIdx TokenIndex
	Init      Initializer
}

// AbstractDeclarator is the empty declarator of a type name or an unnamed
// parameter
type AbstractDeclarator struct {
	Attrs *SpecifierList
}

// ParenthesizedDeclarator wraps an inner declarator in parentheses
type ParenthesizedDeclarator struct {
	OpenParenIdx  TokenIndex
	InnerDecltor  Declarator
	CloseParenIdx TokenIndex
}

// ArrayOrFunctionDeclarator applies a subscript or parameter suffix to an
// inner declarator; its kind is KindArrayDeclarator or KindFunctionDeclarator
type ArrayOrFunctionDeclarator struct {
	K            Kind
	Attrs1       *SpecifierList
	InnerDecltor Declarator
	Suffix       Node // *SubscriptSuffix or *ParameterSuffix
	Attrs2       *SpecifierList
	AsmLabel     *ExtGNUAsmLabel
	EqualsIdx    TokenIndex
	Init         Initializer
}

// BitfieldDeclarator is a member declarator with a width expression
type BitfieldDeclarator struct {
	InnerDecltor Declarator // nil for an unnamed bit-field
	ColonIdx     TokenIndex
	Expr         Expression
	Attrs        *SpecifierList
}

// ParameterSuffix is the ( parameter-list ) suffix of a function declarator
type ParameterSuffix struct {
	OpenParenIdx  TokenIndex
	Params        *ParameterList
	EllipsisIdx   TokenIndex
	CloseParenIdx TokenIndex
	OmissionKwIdx TokenIndex // omission extension marker after the closing paren
}

// SubscriptSuffix is the [ ... ] suffix of an array declarator
type SubscriptSuffix struct {
	OpenBracketIdx  TokenIndex
	StaticKwIdx     TokenIndex
	Quals           *SpecifierList
	Expr            Expression
	AsteriskIdx     TokenIndex // variable-length array sentinel
	CloseBracketIdx TokenIndex
}

func (n *PointerDeclarator) Kind() Kind         { return KindPointerDeclarator }
func (n *IdentifierDeclarator) Kind() Kind      { return KindIdentifierDeclarator }
func (n *AbstractDeclarator) Kind() Kind        { return KindAbstractDeclarator }
func (n *ParenthesizedDeclarator) Kind() Kind   { return KindParenthesizedDeclarator }
func (n *ArrayOrFunctionDeclarator) Kind() Kind { return n.K }
func (n *BitfieldDeclarator) Kind() Kind        { return KindBitfieldDeclarator }
func (n *ParameterSuffix) Kind() Kind           { return KindParameterSuffix }
func (n *SubscriptSuffix) Kind() Kind           { return KindSubscriptSuffix }

func (*PointerDeclarator) implDeclarator()         {}
func (*IdentifierDeclarator) implDeclarator()      {}
func (*AbstractDeclarator) implDeclarator()        {}
func (*ParenthesizedDeclarator) implDeclarator()   {}
func (*ArrayOrFunctionDeclarator) implDeclarator() {}
func (*BitfieldDeclarator) implDeclarator()        {}
