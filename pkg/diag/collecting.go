package diag

import (
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

// CollectingSink accumulates reports in order of arrival
type CollectingSink struct {
	Reports []Report
}

func (s *CollectingSink) add(r Report) {
	s.Reports = append(s.Reports, r)
}

func (s *CollectingSink) ExpectedToken(at syntax.TokenIndex, kind lexer.TokenKind) {
	s.add(Report{Code: CodeExpectedToken, TokenIdx: at, Expected: []lexer.TokenKind{kind}})
}

func (s *CollectingSink) ExpectedTokenWithin(at syntax.TokenIndex, kinds []lexer.TokenKind) {
	s.add(Report{Code: CodeExpectedTokenWithin, TokenIdx: at, Expected: kinds})
}

func (s *CollectingSink) ExpectedTokenOfCategory(at syntax.TokenIndex, category TokenCategory) {
	s.add(Report{Code: CodeExpectedTokenOfCategory, TokenIdx: at, Category: category})
}

func (s *CollectingSink) ExpectedFIRSTof(at syntax.TokenIndex, nt NonTerminal) {
	s.add(Report{Code: CodeExpectedFIRSTof, TokenIdx: at, NonTerminal: nt})
}

func (s *CollectingSink) ExpectedFOLLOWof(at syntax.TokenIndex, nt NonTerminal) {
	s.add(Report{Code: CodeExpectedFOLLOWof, TokenIdx: at, NonTerminal: nt})
}

func (s *CollectingSink) ExpectedFeature(at syntax.TokenIndex, feature string) {
	s.add(Report{Code: CodeExpectedFeature, TokenIdx: at, Feature: feature})
}

func (s *CollectingSink) NamedParameterBeforeEllipsis(at syntax.TokenIndex) {
	s.add(Report{Code: CodeNamedParameterBeforeEllipsis, TokenIdx: at})
}

func (s *CollectingSink) UnexpectedInitializerOfDeclarator(at syntax.TokenIndex) {
	s.add(Report{Code: CodeUnexpectedInitializerOfDeclarator, TokenIdx: at})
}

func (s *CollectingSink) UnexpectedPointerInArrayDeclarator(at syntax.TokenIndex) {
	s.add(Report{Code: CodeUnexpectedPointerInArrayDeclarator, TokenIdx: at})
}

func (s *CollectingSink) UnexpectedStaticOrQualifierInArrayDeclarator(at syntax.TokenIndex) {
	s.add(Report{Code: CodeUnexpectedStaticOrQualifierInArrayDeclarator, TokenIdx: at})
}

func (s *CollectingSink) ExpectedFieldDesignator(at syntax.TokenIndex) {
	s.add(Report{Code: CodeExpectedFieldDesignator, TokenIdx: at})
}

func (s *CollectingSink) ExpectedFieldName(at syntax.TokenIndex) {
	s.add(Report{Code: CodeExpectedFieldName, TokenIdx: at})
}
