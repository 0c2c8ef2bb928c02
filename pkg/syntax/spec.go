package syntax

// TrivialSpecifier is a single-keyword specifier: storage classes, basic
// type specifiers, type qualifiers, function specifiers and asm qualifiers.
// Its kind identifies the role; its token identifies the keyword.
type TrivialSpecifier struct {
	K     Kind
	KwIdx TokenIndex
}

// TypedefName is an identifier used as a type specifier
type TypedefName struct {
	IdentIdx TokenIndex
}

// TaggedTypeSpecifier is a struct, union or enum specifier, elaborated or
// with a brace-enclosed body. Struct and union bodies populate Decls;
// enum bodies populate Enums.
type TaggedTypeSpecifier struct {
	K             Kind // KindStructTypeSpecifier, KindUnionTypeSpecifier or KindEnumTypeSpecifier
	TagKwIdx      TokenIndex
	Attrs1        *SpecifierList
	IdentIdx      TokenIndex
	OpenBraceIdx  TokenIndex
	Decls         *DeclarationList
	Enums         *EnumeratorList
	CloseBraceIdx TokenIndex
	Attrs2        *SpecifierList
}

// AtomicTypeSpecifier is the _Atomic ( type-name ) specifier form
type AtomicTypeSpecifier struct {
	AtomicKwIdx   TokenIndex
	OpenParenIdx  TokenIndex
	TyName        *TypeName
	CloseParenIdx TokenIndex
}

// TypeDeclarationAsSpecifier lifts an inline tag declaration into the
// specifier list of the declaration that carries declarators
type TypeDeclarationAsSpecifier struct {
	TypeDecl *TagDeclaration
}

// AlignmentSpecifier is the C11 _Alignas specifier; its operand is either
// a type name or a constant expression
type AlignmentSpecifier struct {
	AlignasKwIdx TokenIndex
	TyRef        TypeReference
}

// ExtGNUTypeof is the GNU typeof specifier
type ExtGNUTypeof struct {
	TypeofKwIdx TokenIndex
	TyRef       TypeReference
}

// ExtGNUAttributeSpecifier is a GNU __attribute__((...)) specifier
type ExtGNUAttributeSpecifier struct {
	AttrKwIdx      TokenIndex
	OpenParenIdx1  TokenIndex
	OpenParenIdx2  TokenIndex
	Attrs          *AttributeList
	CloseParenIdx1 TokenIndex
	CloseParenIdx2 TokenIndex
}

// ExtGNUAttribute is one attribute inside an attribute specifier; the
// parenthesized argument list is optional
type ExtGNUAttribute struct {
	KwOrIdentIdx  TokenIndex
	OpenParenIdx  TokenIndex
	Exprs         *ExpressionList
	CloseParenIdx TokenIndex
}

// ExtGNUAsmLabel is a GNU asm register/label annotation on a declarator
type ExtGNUAsmLabel struct {
	AsmKwIdx      TokenIndex
	OpenParenIdx  TokenIndex
	Label         *StringLiteralExpression
	CloseParenIdx TokenIndex
}

// QuantifiedTypeSpecifier is a _Forall or _Exists quantified type
// specifier over a type variable
type QuantifiedTypeSpecifier struct {
	K             Kind // KindForallTypeSpecifier or KindExistsTypeSpecifier
	QuantKwIdx    TokenIndex
	OpenParenIdx  TokenIndex
	IdentIdx      TokenIndex
	CloseParenIdx TokenIndex
}

func (n *TrivialSpecifier) Kind() Kind           { return n.K }
func (n *TypedefName) Kind() Kind                { return KindTypedefName }
func (n *TaggedTypeSpecifier) Kind() Kind        { return n.K }
func (n *AtomicTypeSpecifier) Kind() Kind        { return KindAtomicTypeSpecifier }
func (n *TypeDeclarationAsSpecifier) Kind() Kind { return KindTypeDeclarationAsSpecifier }
func (n *AlignmentSpecifier) Kind() Kind         { return KindAlignmentSpecifier }
func (n *ExtGNUTypeof) Kind() Kind               { return KindExtGNUTypeof }
func (n *ExtGNUAttributeSpecifier) Kind() Kind   { return KindExtGNUAttributeSpecifier }
func (n *ExtGNUAttribute) Kind() Kind            { return KindExtGNUAttribute }
func (n *ExtGNUAsmLabel) Kind() Kind             { return KindExtGNUAsmLabel }
func (n *QuantifiedTypeSpecifier) Kind() Kind    { return n.K }

func (*TrivialSpecifier) implSpecifier()           {}
func (*TypedefName) implSpecifier()                {}
func (*TaggedTypeSpecifier) implSpecifier()        {}
func (*AtomicTypeSpecifier) implSpecifier()        {}
func (*TypeDeclarationAsSpecifier) implSpecifier() {}
func (*AlignmentSpecifier) implSpecifier()         {}
func (*ExtGNUTypeof) implSpecifier()               {}
func (*ExtGNUAttributeSpecifier) implSpecifier()   {}
func (*ExtGNUAsmLabel) implSpecifier()             {}
func (*QuantifiedTypeSpecifier) implSpecifier()    {}
