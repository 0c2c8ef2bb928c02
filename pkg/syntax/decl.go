package syntax

// TranslationUnit is the root of every syntax tree
type TranslationUnit struct {
	Decls *DeclarationList
}

// IncompleteDeclaration is a declaration with no declarators, including the
// degenerate bare-semicolon form
type IncompleteDeclaration struct {
	ExtKwIdx     TokenIndex // __extension__, if present
	Specs        *SpecifierList
	SemicolonIdx TokenIndex
}

// StaticAssertDeclaration is a C11 _Static_assert declaration
type StaticAssertDeclaration struct {
	StaticAssertKwIdx TokenIndex
	OpenParenIdx      TokenIndex
	Expr              Expression
	CommaIdx          TokenIndex
	Message           *StringLiteralExpression
	CloseParenIdx     TokenIndex
	SemicolonIdx      TokenIndex
}

// VariableAndOrFunctionDeclaration declares one or more variables and/or
// functions through a shared specifier list
type VariableAndOrFunctionDeclaration struct {
	ExtKwIdx     TokenIndex
	Specs        *SpecifierList
	Decltors     *DeclaratorList
	SemicolonIdx TokenIndex
}

// FunctionDefinition is a function declaration carrying a body
type FunctionDefinition struct {
	ExtKwIdx TokenIndex
	Specs    *SpecifierList
	Decltor  Declarator
	Body     *CompoundStatement
}

// ParameterDeclaration is one entry of a parameter-type list
type ParameterDeclaration struct {
	Specs   *SpecifierList
	Decltor Declarator
}

// FieldDeclaration is a struct or union member declaration
type FieldDeclaration struct {
	ExtKwIdx     TokenIndex
	Specs        *SpecifierList
	Decltors     *DeclaratorList
	SemicolonIdx TokenIndex
}

// EnumeratorDeclaration is one enumerator of an enum body
type EnumeratorDeclaration struct {
	IdentIdx  TokenIndex
	Attrs     *SpecifierList
	EqualsIdx TokenIndex
	Expr      Expression
}

// TagDeclaration is a freestanding struct, union or enum declaration whose
// kind is KindStructDeclaration, KindUnionDeclaration or KindEnumDeclaration
type TagDeclaration struct {
	K            Kind
	TypeSpec     *TaggedTypeSpecifier
	SemicolonIdx TokenIndex
}

// ExtGNUAsmStatementDeclaration is a file-scope GNU asm declaration
type ExtGNUAsmStatementDeclaration struct {
	AsmStmt *ExtGNUAsmStatement
}

// TemplateDeclaration wraps a declaration marked with the template
// extension keyword
type TemplateDeclaration struct {
	TemplateKwIdx TokenIndex
	Decl          Declaration
}

func (n *TranslationUnit) Kind() Kind                  { return KindTranslationUnit }
func (n *IncompleteDeclaration) Kind() Kind            { return KindIncompleteDeclaration }
func (n *StaticAssertDeclaration) Kind() Kind          { return KindStaticAssertDeclaration }
func (n *VariableAndOrFunctionDeclaration) Kind() Kind { return KindVariableAndOrFunctionDeclaration }
func (n *FunctionDefinition) Kind() Kind               { return KindFunctionDefinition }
func (n *ParameterDeclaration) Kind() Kind             { return KindParameterDeclaration }
func (n *FieldDeclaration) Kind() Kind                 { return KindFieldDeclaration }
func (n *EnumeratorDeclaration) Kind() Kind            { return KindEnumeratorDeclaration }
func (n *TagDeclaration) Kind() Kind                   { return n.K }
func (n *ExtGNUAsmStatementDeclaration) Kind() Kind    { return KindExtGNUAsmStatementDeclaration }
func (n *TemplateDeclaration) Kind() Kind              { return KindTemplateDeclaration }

func (*IncompleteDeclaration) implDeclaration()            {}
func (*StaticAssertDeclaration) implDeclaration()          {}
func (*VariableAndOrFunctionDeclaration) implDeclaration() {}
func (*FunctionDefinition) implDeclaration()               {}
func (*ParameterDeclaration) implDeclaration()             {}
func (*FieldDeclaration) implDeclaration()                 {}
func (*EnumeratorDeclaration) implDeclaration()            {}
func (*TagDeclaration) implDeclaration()                   {}
func (*ExtGNUAsmStatementDeclaration) implDeclaration()    {}
func (*TemplateDeclaration) implDeclaration()              {}
