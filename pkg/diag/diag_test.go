package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quillc/quill-cc/pkg/lexer"
)

func TestEmitRoundTrip(t *testing.T) {
	reports := []Report{
		{Code: CodeExpectedToken, TokenIdx: 3, Expected: []lexer.TokenKind{lexer.TokenSemicolon}},
		{Code: CodeExpectedTokenWithin, TokenIdx: 4, Expected: []lexer.TokenKind{lexer.TokenComma, lexer.TokenSemicolon}},
		{Code: CodeExpectedTokenOfCategory, TokenIdx: 5, Category: CategoryIdentifier},
		{Code: CodeExpectedFIRSTof, TokenIdx: 6, NonTerminal: NTExpression},
		{Code: CodeExpectedFOLLOWof, TokenIdx: 7, NonTerminal: NTDeclaration},
		{Code: CodeExpectedFeature, TokenIdx: 8, Feature: "statement expressions"},
		{Code: CodeNamedParameterBeforeEllipsis, TokenIdx: 9},
		{Code: CodeUnexpectedInitializerOfDeclarator, TokenIdx: 10},
		{Code: CodeUnexpectedPointerInArrayDeclarator, TokenIdx: 11},
		{Code: CodeUnexpectedStaticOrQualifierInArrayDeclarator, TokenIdx: 12},
		{Code: CodeExpectedFieldDesignator, TokenIdx: 13},
		{Code: CodeExpectedFieldName, TokenIdx: 14},
	}

	sink := &CollectingSink{}
	for _, r := range reports {
		Emit(sink, r)
	}

	if diff := cmp.Diff(reports, sink.Reports); diff != "" {
		t.Errorf("reports did not survive the round trip (-want +got):\n%s", diff)
	}
}

func TestEmitExpectedTokenDefaultsToEOF(t *testing.T) {
	sink := &CollectingSink{}
	Emit(sink, Report{Code: CodeExpectedToken, TokenIdx: 1})
	if len(sink.Reports) != 1 {
		t.Fatalf("expected one report, got %d", len(sink.Reports))
	}
	got := sink.Reports[0].Expected
	if len(got) != 1 || got[0] != lexer.TokenEOF {
		t.Errorf("expected an EOF expectation, got %v", got)
	}
}

func TestCodeString(t *testing.T) {
	if got := CodeExpectedFeature.String(); got != "ExpectedFeature" {
		t.Errorf("got %q", got)
	}
	if got := Code(999).String(); got != "UNKNOWN" {
		t.Errorf("got %q", got)
	}
}

func TestCategoryString(t *testing.T) {
	if got := CategoryStringLiteral.String(); got != "string literal" {
		t.Errorf("got %q", got)
	}
}
