package syntax

// CompoundStatement is a { ... } block
type CompoundStatement struct {
	OpenBraceIdx  TokenIndex
	Stmts         *StatementList
	CloseBraceIdx TokenIndex
}

// DeclarationStatement wraps a declaration in statement position
type DeclarationStatement struct {
	Decl Declaration
}

// ExpressionStatement is an expression followed by a semicolon; a bare
// semicolon has a nil expression
type ExpressionStatement struct {
	Expr         Expression
	SemicolonIdx TokenIndex
}

// IfStatement is if ( cond ) stmt [else stmt]
type IfStatement struct {
	IfKwIdx       TokenIndex
	OpenParenIdx  TokenIndex
	Cond          Expression
	CloseParenIdx TokenIndex
	Then          Statement
	ElseKwIdx     TokenIndex
	Else          Statement
}

// SwitchStatement is switch ( cond ) stmt
type SwitchStatement struct {
	SwitchKwIdx   TokenIndex
	OpenParenIdx  TokenIndex
	Cond          Expression
	CloseParenIdx TokenIndex
	Body          Statement
}

// WhileStatement is while ( cond ) stmt
type WhileStatement struct {
	WhileKwIdx    TokenIndex
	OpenParenIdx  TokenIndex
	Cond          Expression
	CloseParenIdx TokenIndex
	Body          Statement
}

// DoStatement is do stmt while ( cond ) ;
type DoStatement struct {
	DoKwIdx       TokenIndex
	Body          Statement
	WhileKwIdx    TokenIndex
	OpenParenIdx  TokenIndex
	Cond          Expression
	CloseParenIdx TokenIndex
	SemicolonIdx  TokenIndex
}

// ForStatement is for ( init cond ; step ) stmt. Init is a declaration
// statement or an expression statement and carries the first semicolon.
type ForStatement struct {
	ForKwIdx      TokenIndex
	OpenParenIdx  TokenIndex
	Init          Statement
	Cond          Expression
	SemicolonIdx  TokenIndex
	Step          Expression
	CloseParenIdx TokenIndex
	Body          Statement
}

// LabeledStatement is a label, case or default label applied to a
// statement; the kind records which
type LabeledStatement struct {
	K        Kind
	LabelIdx TokenIndex // identifier, case keyword or default keyword
	Expr     Expression // case expression, nil otherwise
	ColonIdx TokenIndex
	Stmt     Statement
}

// GotoStatement is goto label ;
type GotoStatement struct {
	GotoKwIdx    TokenIndex
	IdentIdx     TokenIndex
	SemicolonIdx TokenIndex
}

// ContinueStatement is continue ;
type ContinueStatement struct {
	KwIdx        TokenIndex
	SemicolonIdx TokenIndex
}

// BreakStatement is break ;
type BreakStatement struct {
	KwIdx        TokenIndex
	SemicolonIdx TokenIndex
}

// ReturnStatement is return [expr] ;
type ReturnStatement struct {
	KwIdx        TokenIndex
	Expr         Expression
	SemicolonIdx TokenIndex
}

// ExtGNUAsmStatement is a GNU inline assembly statement
type ExtGNUAsmStatement struct {
	AsmKwIdx      TokenIndex
	Quals         *SpecifierList
	OpenParenIdx  TokenIndex
	Template      *StringLiteralExpression
	Colon1Idx     TokenIndex
	Outputs       *AsmOperandList
	Colon2Idx     TokenIndex
	Inputs        *AsmOperandList
	Colon3Idx     TokenIndex
	Clobbers      *ExpressionList
	Colon4Idx     TokenIndex
	GotoLabels    *IdentifierNameList
	CloseParenIdx TokenIndex
	SemicolonIdx  TokenIndex
}

// AsmOperand is one input or output operand of an asm statement
type AsmOperand struct {
	OpenBracketIdx  TokenIndex
	Name            *IdentifierName
	CloseBracketIdx TokenIndex
	Constraint      *StringLiteralExpression
	OpenParenIdx    TokenIndex
	Expr            Expression
	CloseParenIdx   TokenIndex
}

// AmbiguousExpressionOrDeclarationStatement carries both readings of a
// statement like T * x ; whose first identifier may be a typedef-name or
// an expression operand
type AmbiguousExpressionOrDeclarationStatement struct {
	ExprStmt *ExpressionStatement
	DeclStmt *DeclarationStatement
}

func (n *CompoundStatement) Kind() Kind    { return KindCompoundStatement }
func (n *DeclarationStatement) Kind() Kind { return KindDeclarationStatement }
func (n *ExpressionStatement) Kind() Kind  { return KindExpressionStatement }
func (n *IfStatement) Kind() Kind          { return KindIfStatement }
func (n *SwitchStatement) Kind() Kind      { return KindSwitchStatement }
func (n *WhileStatement) Kind() Kind       { return KindWhileStatement }
func (n *DoStatement) Kind() Kind          { return KindDoStatement }
func (n *ForStatement) Kind() Kind         { return KindForStatement }
func (n *LabeledStatement) Kind() Kind     { return n.K }
func (n *GotoStatement) Kind() Kind        { return KindGotoStatement }
func (n *ContinueStatement) Kind() Kind    { return KindContinueStatement }
func (n *BreakStatement) Kind() Kind       { return KindBreakStatement }
func (n *ReturnStatement) Kind() Kind      { return KindReturnStatement }
func (n *ExtGNUAsmStatement) Kind() Kind   { return KindExtGNUAsmStatement }
func (n *AsmOperand) Kind() Kind           { return KindAsmOperand }
func (n *AmbiguousExpressionOrDeclarationStatement) Kind() Kind {
	return KindAmbiguousExpressionOrDeclarationStatement
}

func (*CompoundStatement) implStatement()                         {}
func (*DeclarationStatement) implStatement()                      {}
func (*ExpressionStatement) implStatement()                       {}
func (*IfStatement) implStatement()                               {}
func (*SwitchStatement) implStatement()                           {}
func (*WhileStatement) implStatement()                            {}
func (*DoStatement) implStatement()                               {}
func (*ForStatement) implStatement()                              {}
func (*LabeledStatement) implStatement()                          {}
func (*GotoStatement) implStatement()                             {}
func (*ContinueStatement) implStatement()                         {}
func (*BreakStatement) implStatement()                            {}
func (*ReturnStatement) implStatement()                           {}
func (*ExtGNUAsmStatement) implStatement()                        {}
func (*AmbiguousExpressionOrDeclarationStatement) implStatement() {}
