package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `int main() { return 42; }`

	tests := []struct {
		expectedKind    TokenKind
		expectedLiteral string
	}{
		{TokenInt_, "int"},
		{TokenIdent, "main"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenLBrace, "{"},
		{TokenReturn, "return"},
		{TokenIntegerConstant, "42"},
		{TokenSemicolon, ";"},
		{TokenRBrace, "}"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - token kind wrong. expected=%q, got=%q",
				i, tt.expectedKind, tok.Kind)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % = == != < <= > >= && || ! & | ^ ~ << >> <<= >>= += -= *= /= %= &= |= ^= ++ -- ? : -> . ...`

	tests := []struct {
		expectedKind    TokenKind
		expectedLiteral string
	}{
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenPercent, "%"},
		{TokenAssign, "="},
		{TokenEq, "=="},
		{TokenNe, "!="},
		{TokenLt, "<"},
		{TokenLe, "<="},
		{TokenGt, ">"},
		{TokenGe, ">="},
		{TokenAnd, "&&"},
		{TokenOr, "||"},
		{TokenNot, "!"},
		{TokenAmpersand, "&"},
		{TokenPipe, "|"},
		{TokenCaret, "^"},
		{TokenTilde, "~"},
		{TokenShl, "<<"},
		{TokenShr, ">>"},
		{TokenShlAssign, "<<="},
		{TokenShrAssign, ">>="},
		{TokenPlusAssign, "+="},
		{TokenMinusAssign, "-="},
		{TokenStarAssign, "*="},
		{TokenSlashAssign, "/="},
		{TokenPercentAssign, "%="},
		{TokenAndAssign, "&="},
		{TokenOrAssign, "|="},
		{TokenXorAssign, "^="},
		{TokenIncrement, "++"},
		{TokenDecrement, "--"},
		{TokenQuestion, "?"},
		{TokenColon, ":"},
		{TokenArrow, "->"},
		{TokenDot, "."},
		{TokenEllipsis, "..."},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - token kind wrong. expected=%q, got=%q",
				i, tt.expectedKind, tok.Kind)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `_Bool _Atomic _Static_assert _Thread_local _Generic _Alignas _Alignof _Noreturn ` +
		`__attribute__ __asm__ __extension__ typeof __typeof__ __thread __restrict __inline ` +
		`wchar_t char16_t char32_t true false NULL nullptr __func__ _Template _Forall _Exists _Omission`

	kinds := []TokenKind{
		TokenBool, TokenAtomic, TokenStaticAssert, TokenThreadLocal, TokenGeneric,
		TokenAlignas, TokenAlignof, TokenNoreturn,
		TokenGNUAttribute, TokenGNUAsm, TokenGNUExtension, TokenGNUTypeof, TokenGNUTypeof,
		TokenGNUThread, TokenRestrict, TokenInline,
		TokenWCharT, TokenChar16T, TokenChar32T,
		TokenTrue, TokenFalse, TokenNULL, TokenNullptr, TokenPredefinedName,
		TokenTemplateMarker, TokenForall, TokenExists, TokenOmission,
		TokenEOF,
	}

	l := New(input)
	for i, want := range kinds {
		tok := l.NextToken()
		if tok.Kind != want {
			t.Fatalf("kinds[%d] - token kind wrong. expected=%q, got=%q (literal %q)",
				i, want, tok.Kind, tok.Literal)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input        string
		expectedKind TokenKind
	}{
		{"42", TokenIntegerConstant},
		{"052", TokenIntegerConstant},
		{"0x2a", TokenIntegerConstant},
		{"0X2A", TokenIntegerConstant},
		{"0b101010", TokenIntegerConstant},
		{"42u", TokenIntegerConstant},
		{"42UL", TokenIntegerConstant},
		{"42ull", TokenIntegerConstant},
		{"3.14", TokenFloatingConstant},
		{".5", TokenFloatingConstant},
		{"1e9", TokenFloatingConstant},
		{"1E-9", TokenFloatingConstant},
		{"2.5e+3", TokenFloatingConstant},
		{"0x1.8p3", TokenFloatingConstant},
		{"0x1p-2", TokenFloatingConstant},
		{"1.0f", TokenFloatingConstant},
		{"42f", TokenFloatingConstant},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind {
			t.Errorf("input %q - token kind wrong. expected=%q, got=%q",
				tt.input, tt.expectedKind, tok.Kind)
		}
		if tok.Literal != tt.input {
			t.Errorf("input %q - literal wrong. got=%q", tt.input, tok.Literal)
		}
		if next := l.NextToken(); next.Kind != TokenEOF {
			t.Errorf("input %q - trailing token %q", tt.input, next.Literal)
		}
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	tests := []struct {
		input           string
		expectedKind    TokenKind
		expectedLiteral string
	}{
		{`"hello"`, TokenString, "hello"},
		{`"a\"b"`, TokenString, `a\"b`},
		{`L"wide"`, TokenStringWide, "wide"},
		{`u8"text"`, TokenStringU8, "text"},
		{`u"text"`, TokenStringU16, "text"},
		{`U"text"`, TokenStringU32, "text"},
		{`'a'`, TokenCharConstant, "a"},
		{`'\n'`, TokenCharConstant, `\n`},
		{`L'a'`, TokenCharConstantWide, "a"},
		{`u'a'`, TokenCharConstantU16, "a"},
		{`U'a'`, TokenCharConstantU32, "a"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind {
			t.Errorf("input %q - token kind wrong. expected=%q, got=%q",
				tt.input, tt.expectedKind, tok.Kind)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Errorf("input %q - literal wrong. expected=%q, got=%q",
				tt.input, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestPrefixNotFollowedByQuote(t *testing.T) {
	l := New(`L u u8 U`)
	for i := 0; i < 4; i++ {
		tok := l.NextToken()
		if tok.Kind != TokenIdent {
			t.Fatalf("token %d: expected IDENT, got %q (%q)", i, tok.Kind, tok.Literal)
		}
	}
}

func TestComments(t *testing.T) {
	input := `int // comment
main /* block
comment */ ()`

	tests := []struct {
		expectedKind    TokenKind
		expectedLiteral string
	}{
		{TokenInt_, "int"},
		{TokenIdent, "main"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - token kind wrong. expected=%q, got=%q",
				i, tt.expectedKind, tok.Kind)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenize(t *testing.T) {
	toks := Tokenize("x + 1;")
	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(toks))
	}
	if toks[len(toks)-1].Kind != TokenEOF {
		t.Fatalf("expected trailing EOF, got %q", toks[len(toks)-1].Kind)
	}
}
