package syntax

// ExpressionInitializer initializes with a single assignment expression
type ExpressionInitializer struct {
	Expr Expression
}

// BraceEnclosedInitializer is a { ... } initializer list
type BraceEnclosedInitializer struct {
	OpenBraceIdx  TokenIndex
	Inits         *InitializerList
	CloseBraceIdx TokenIndex
}

// DesignatedInitializer prefixes an initializer with a designator chain.
// EqualsIdx is InvalidTokenIndex when the = was missing from the source.
type DesignatedInitializer struct {
	Desigs    *DesignatorList
	EqualsIdx TokenIndex
	Init      Initializer
}

// FieldDesignator selects a member subobject: .field
type FieldDesignator struct {
	DotIdx   TokenIndex
	IdentIdx TokenIndex
}

// ArrayDesignator selects an element subobject: [ constant-expression ]
type ArrayDesignator struct {
	OpenBracketIdx  TokenIndex
	Expr            Expression
	CloseBracketIdx TokenIndex
}

func (n *ExpressionInitializer) Kind() Kind    { return KindExpressionInitializer }
func (n *BraceEnclosedInitializer) Kind() Kind { return KindBraceEnclosedInitializer }
func (n *DesignatedInitializer) Kind() Kind    { return KindDesignatedInitializer }
func (n *FieldDesignator) Kind() Kind          { return KindFieldDesignator }
func (n *ArrayDesignator) Kind() Kind          { return KindArrayDesignator }

func (*ExpressionInitializer) implInitializer()    {}
func (*BraceEnclosedInitializer) implInitializer() {}
func (*DesignatedInitializer) implInitializer()    {}

func (*FieldDesignator) implDesignator() {}
func (*ArrayDesignator) implDesignator() {}
