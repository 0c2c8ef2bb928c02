package syntax

// List is a singly-linked list cell holding one node
type List[T Node] struct {
	Value T
	Next  *List[T]
}

// SeparatedList is a singly-linked list cell that additionally records the
// index of the delimiter token following its element, or InvalidTokenIndex
// when no delimiter follows it (a trailing comma is kept on the last element)
type SeparatedList[T Node] struct {
	Value    T
	DelimIdx TokenIndex
	Next     *SeparatedList[T]
}

// Len returns the number of elements in the list
func (l *List[T]) Len() int {
	n := 0
	for it := l; it != nil; it = it.Next {
		n++
	}
	return n
}

// Len returns the number of elements in the list
func (l *SeparatedList[T]) Len() int {
	n := 0
	for it := l; it != nil; it = it.Next {
		n++
	}
	return n
}

// Last returns the final cell of the list, or nil
func (l *SeparatedList[T]) Last() *SeparatedList[T] {
	if l == nil {
		return nil
	}
	it := l
	for it.Next != nil {
		it = it.Next
	}
	return it
}

type (
	DeclarationList          = List[Declaration]
	SpecifierList            = List[Specifier]
	StatementList            = List[Statement]
	DesignatorList           = List[Designator]
	DeclaratorList           = SeparatedList[Declarator]
	ExpressionList           = SeparatedList[Expression]
	InitializerList          = SeparatedList[Initializer]
	ParameterList            = SeparatedList[*ParameterDeclaration]
	EnumeratorList           = SeparatedList[*EnumeratorDeclaration]
	AttributeList            = SeparatedList[*ExtGNUAttribute]
	GenericAssociationList   = SeparatedList[*GenericAssociation]
	AsmOperandList           = SeparatedList[*AsmOperand]
	IdentifierNameList       = SeparatedList[*IdentifierName]
)
