package syntax

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/quillc/quill-cc/pkg/lexer"
)

func TestNewTreeReservesZeroSlot(t *testing.T) {
	tokens := lexer.Tokenize("int x;")
	tree := NewTree(tokens, DefaultOptions())

	if got := tree.TokenCount(); got != len(tokens)+1 {
		t.Errorf("token count: got %d, want %d", got, len(tokens)+1)
	}
	if tok := tree.TokenAt(InvalidTokenIndex); tok.Kind != lexer.TokenEOF || tok.Literal != "" {
		t.Errorf("sentinel slot must be the zero token, got %+v", tok)
	}
	if tok := tree.TokenAt(1); tok.Literal != "int" {
		t.Errorf("first real token: got %q", tok.Literal)
	}
	if tok := tree.TokenAt(TokenIndex(tree.TokenCount())); tok.Kind != lexer.TokenEOF {
		t.Errorf("out-of-range index must yield the zero token, got %+v", tok)
	}
	if tok := tree.TokenAt(-1); tok.Kind != lexer.TokenEOF {
		t.Errorf("negative index must yield the zero token, got %+v", tok)
	}
}

func TestNodeLimitPanics(t *testing.T) {
	tree := NewTree(nil, DefaultOptions())
	tree.SetNodeLimit(1)
	NewNode[TranslationUnit](tree)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		limitErr, ok := r.(NodeLimitError)
		if !ok {
			t.Fatalf("expected NodeLimitError, got %v", r)
		}
		if limitErr.Limit != 1 {
			t.Errorf("limit: got %d, want 1", limitErr.Limit)
		}
	}()
	NewNode[TranslationUnit](tree)
}

func TestNodeCount(t *testing.T) {
	tree := NewTree(nil, DefaultOptions())
	if tree.NodeCount() != 0 {
		t.Errorf("fresh tree node count: got %d", tree.NodeCount())
	}
	NewNode[TranslationUnit](tree)
	NewNode[IncompleteDeclaration](tree)
	if tree.NodeCount() != 2 {
		t.Errorf("node count: got %d, want 2", tree.NodeCount())
	}
}

func TestDialectBefore(t *testing.T) {
	cases := []struct {
		d, other Dialect
		want     bool
	}{
		{C89, C99, true},
		{C89, C11, true},
		{C99, C11, true},
		{C11, C99, false},
		{C99, C99, false},
	}
	for _, tc := range cases {
		if got := tc.d.Before(tc.other); got != tc.want {
			t.Errorf("%v.Before(%v): got %v", tc.d, tc.other, got)
		}
	}
}

func TestOptionsFromYAML(t *testing.T) {
	src := "dialect: 1\nextensions:\n  gnu_asm: true\n  quantified_types: false\n"
	opts := DefaultOptions()
	if err := yaml.Unmarshal([]byte(src), &opts); err != nil {
		t.Fatal(err)
	}
	if opts.Dialect != C89 {
		t.Errorf("dialect: got %v", opts.Dialect)
	}
	if !opts.Ext.GNUAsm {
		t.Error("gnu_asm should stay enabled")
	}
	if opts.Ext.QuantifiedTypes {
		t.Error("quantified_types should be disabled")
	}
	if !opts.Ext.GNUStatementExpressions {
		t.Error("unmentioned extensions keep their defaults")
	}
}

func TestDumpRendersTokensAndChildren(t *testing.T) {
	tokens := lexer.Tokenize("int;")
	tree := NewTree(tokens, DefaultOptions())

	spec := NewNode[TrivialSpecifier](tree)
	spec.K = KindBasicTypeSpecifier
	spec.KwIdx = 1

	decl := NewNode[IncompleteDeclaration](tree)
	decl.Specs = &SpecifierList{Value: spec}
	decl.SemicolonIdx = 2

	tree.Root = NewNode[TranslationUnit](tree)
	tree.Root.Decls = &DeclarationList{Value: decl}

	var buf bytes.Buffer
	Dump(&buf, tree)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "TranslationUnit" {
		t.Errorf("line 0: got %q", lines[0])
	}
	if want := `  Decls: IncompleteDeclaration SemicolonIdx=";"`; lines[1] != want {
		t.Errorf("line 1: got %q, want %q", lines[1], want)
	}
	if want := `    Specs: BasicTypeSpecifier KwIdx="int"`; lines[2] != want {
		t.Errorf("line 2: got %q, want %q", lines[2], want)
	}
}

func TestDumpSkipsAbsentTokenSlots(t *testing.T) {
	tree := NewTree(lexer.Tokenize(";"), DefaultOptions())
	decl := NewNode[IncompleteDeclaration](tree)
	decl.SemicolonIdx = 1

	tree.Root = NewNode[TranslationUnit](tree)
	tree.Root.Decls = &DeclarationList{Value: decl}

	var buf bytes.Buffer
	Dump(&buf, tree)
	if strings.Contains(buf.String(), "ExtKwIdx") {
		t.Errorf("absent slots must not be rendered:\n%s", buf.String())
	}
}

func TestDumpNilRoot(t *testing.T) {
	tree := NewTree(nil, DefaultOptions())
	var buf bytes.Buffer
	Dump(&buf, tree)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSeparatedListLast(t *testing.T) {
	var l *ExpressionList
	if l.Last() != nil {
		t.Error("nil list has no last cell")
	}
	a := &ExpressionList{}
	b := &ExpressionList{}
	a.Next = b
	if a.Last() != b {
		t.Error("expected the trailing cell")
	}
	if a.Len() != 2 {
		t.Errorf("len: got %d", a.Len())
	}
}
