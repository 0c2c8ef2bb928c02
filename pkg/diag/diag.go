// Package diag defines the structured diagnostics produced by the parser.
// Reports carry a code and an anchor token index; no text formatting
// happens here.
package diag

import (
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

// Code identifies a report kind
type Code int

const (
	CodeExpectedToken Code = iota
	CodeExpectedTokenWithin
	CodeExpectedTokenOfCategory
	CodeExpectedFIRSTof
	CodeExpectedFOLLOWof
	CodeExpectedFeature
	CodeNamedParameterBeforeEllipsis
	CodeUnexpectedInitializerOfDeclarator
	CodeUnexpectedPointerInArrayDeclarator
	CodeUnexpectedStaticOrQualifierInArrayDeclarator
	CodeExpectedFieldDesignator
	CodeExpectedFieldName
)

var codeNames = map[Code]string{
	CodeExpectedToken:                                "ExpectedToken",
	CodeExpectedTokenWithin:                          "ExpectedTokenWithin",
	CodeExpectedTokenOfCategory:                      "ExpectedTokenOfCategory",
	CodeExpectedFIRSTof:                              "ExpectedFIRSTof",
	CodeExpectedFOLLOWof:                             "ExpectedFOLLOWof",
	CodeExpectedFeature:                              "ExpectedFeature",
	CodeNamedParameterBeforeEllipsis:                 "NamedParameterBeforeEllipsis",
	CodeUnexpectedInitializerOfDeclarator:            "UnexpectedInitializerOfDeclarator",
	CodeUnexpectedPointerInArrayDeclarator:           "UnexpectedPointerInArrayDeclarator",
	CodeUnexpectedStaticOrQualifierInArrayDeclarator: "UnexpectedStaticOrQualifierInArrayDeclarator",
	CodeExpectedFieldDesignator:                      "ExpectedFieldDesignator",
	CodeExpectedFieldName:                            "ExpectedFieldName",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// TokenCategory names a class of tokens for category expectations
type TokenCategory int

const (
	CategoryIdentifier TokenCategory = iota
	CategoryConstant
	CategoryStringLiteral
)

var categoryNames = map[TokenCategory]string{
	CategoryIdentifier:    "identifier",
	CategoryConstant:      "constant",
	CategoryStringLiteral: "string literal",
}

func (c TokenCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// NonTerminal names a grammar non-terminal for FIRST/FOLLOW expectations
type NonTerminal string

const (
	NTDeclaration         NonTerminal = "declaration"
	NTDeclarator          NonTerminal = "declarator"
	NTDirectDeclarator    NonTerminal = "direct-declarator"
	NTSpecifierQualifier  NonTerminal = "specifier-qualifier-list"
	NTTypeSpecifier       NonTerminal = "type-specifier"
	NTParameterDeclaration NonTerminal = "parameter-declaration"
	NTEnumerator          NonTerminal = "enumerator"
	NTStructDeclaration   NonTerminal = "struct-declaration"
	NTExpression          NonTerminal = "expression"
	NTInitializer         NonTerminal = "initializer"
	NTDesignatedInitializer NonTerminal = "designated-initializer"
	NTStatement           NonTerminal = "statement"
	NTGenericAssociation  NonTerminal = "generic-association"
	NTAttributeSpecifier  NonTerminal = "attribute-specifier"
	NTAsmOperand          NonTerminal = "asm-operand"
	NTTypeName            NonTerminal = "type-name"
)

// Report is one structured diagnostic
type Report struct {
	Code        Code
	TokenIdx    syntax.TokenIndex
	Expected    []lexer.TokenKind
	Category    TokenCategory
	NonTerminal NonTerminal
	Feature     string
}

// Sink receives structured reports, one method per report kind. It must be
// safe for concurrent use only if shared across parsers; a single parser
// never contends with itself.
type Sink interface {
	ExpectedToken(at syntax.TokenIndex, kind lexer.TokenKind)
	ExpectedTokenWithin(at syntax.TokenIndex, kinds []lexer.TokenKind)
	ExpectedTokenOfCategory(at syntax.TokenIndex, category TokenCategory)
	ExpectedFIRSTof(at syntax.TokenIndex, nt NonTerminal)
	ExpectedFOLLOWof(at syntax.TokenIndex, nt NonTerminal)
	ExpectedFeature(at syntax.TokenIndex, feature string)
	NamedParameterBeforeEllipsis(at syntax.TokenIndex)
	UnexpectedInitializerOfDeclarator(at syntax.TokenIndex)
	UnexpectedPointerInArrayDeclarator(at syntax.TokenIndex)
	UnexpectedStaticOrQualifierInArrayDeclarator(at syntax.TokenIndex)
	ExpectedFieldDesignator(at syntax.TokenIndex)
	ExpectedFieldName(at syntax.TokenIndex)
}

// Emit delivers a report to a sink through the method matching its code
func Emit(s Sink, r Report) {
	switch r.Code {
	case CodeExpectedToken:
		kind := lexer.TokenEOF
		if len(r.Expected) > 0 {
			kind = r.Expected[0]
		}
		s.ExpectedToken(r.TokenIdx, kind)
	case CodeExpectedTokenWithin:
		s.ExpectedTokenWithin(r.TokenIdx, r.Expected)
	case CodeExpectedTokenOfCategory:
		s.ExpectedTokenOfCategory(r.TokenIdx, r.Category)
	case CodeExpectedFIRSTof:
		s.ExpectedFIRSTof(r.TokenIdx, r.NonTerminal)
	case CodeExpectedFOLLOWof:
		s.ExpectedFOLLOWof(r.TokenIdx, r.NonTerminal)
	case CodeExpectedFeature:
		s.ExpectedFeature(r.TokenIdx, r.Feature)
	case CodeNamedParameterBeforeEllipsis:
		s.NamedParameterBeforeEllipsis(r.TokenIdx)
	case CodeUnexpectedInitializerOfDeclarator:
		s.UnexpectedInitializerOfDeclarator(r.TokenIdx)
	case CodeUnexpectedPointerInArrayDeclarator:
		s.UnexpectedPointerInArrayDeclarator(r.TokenIdx)
	case CodeUnexpectedStaticOrQualifierInArrayDeclarator:
		s.UnexpectedStaticOrQualifierInArrayDeclarator(r.TokenIdx)
	case CodeExpectedFieldDesignator:
		s.ExpectedFieldDesignator(r.TokenIdx)
	case CodeExpectedFieldName:
		s.ExpectedFieldName(r.TokenIdx)
	}
}
