package parser

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/quillc/quill-cc/pkg/diag"
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

type corpusCase struct {
	Name        string   `yaml:"name"`
	Input       string   `yaml:"input"`
	Dialect     string   `yaml:"dialect,omitempty"`
	Disable     []string `yaml:"disable,omitempty"`
	Diagnostics int      `yaml:"diagnostics,omitempty"`
	Contains    []string `yaml:"contains,omitempty"`
}

type corpusFile struct {
	Tests []corpusCase `yaml:"tests"`
}

func caseOptions(t *testing.T, tc corpusCase) syntax.Options {
	t.Helper()
	opts := syntax.DefaultOptions()
	switch tc.Dialect {
	case "":
	case "c89":
		opts.Dialect = syntax.C89
	case "c99":
		opts.Dialect = syntax.C99
	case "c11":
		opts.Dialect = syntax.C11
	default:
		t.Fatalf("unknown dialect %q", tc.Dialect)
	}
	for _, name := range tc.Disable {
		switch name {
		case "gnu_asm":
			opts.Ext.GNUAsm = false
		case "gnu_statement_expressions":
			opts.Ext.GNUStatementExpressions = false
		case "gnu_designated_initializers":
			opts.Ext.GNUDesignatedInitializers = false
		case "gnu_compound_literals":
			opts.Ext.GNUCompoundLiterals = false
		case "gnu_llvm_availability":
			opts.Ext.GNULLVMAvailability = false
		case "gnu_alignment":
			opts.Ext.GNUAlignment = false
		case "quantified_types":
			opts.Ext.QuantifiedTypes = false
		case "template_declarations":
			opts.Ext.TemplateDeclarations = false
		default:
			t.Fatalf("unknown extension %q", name)
		}
	}
	return opts
}

func TestParseCorpus(t *testing.T) {
	data, err := os.ReadFile("../../testdata/parse.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var corpus corpusFile
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		t.Fatal(err)
	}
	if len(corpus.Tests) == 0 {
		t.Fatal("corpus is empty")
	}

	for _, tc := range corpus.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			sink := &diag.CollectingSink{}
			tree, err := ParseSource(tc.Input, caseOptions(t, tc), sink)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if tree.Root == nil {
				t.Fatal("expected a root node")
			}
			if got := len(sink.Reports); got != tc.Diagnostics {
				t.Errorf("diagnostics: got %d, want %d\n%+v", got, tc.Diagnostics, sink.Reports)
			}

			var buf bytes.Buffer
			syntax.Dump(&buf, tree)
			dump := buf.String()
			for _, kind := range tc.Contains {
				if !strings.Contains(dump, kind) {
					t.Errorf("dump missing %s:\n%s", kind, dump)
				}
			}
		})
	}
}

func parseOne(t *testing.T, src string) (*syntax.Tree, *diag.CollectingSink) {
	t.Helper()
	sink := &diag.CollectingSink{}
	tree, err := ParseSource(src, syntax.DefaultOptions(), sink)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return tree, sink
}

func firstDeclaration(t *testing.T, tree *syntax.Tree) syntax.Declaration {
	t.Helper()
	if tree.Root == nil || tree.Root.Decls == nil {
		t.Fatal("expected at least one declaration")
	}
	return tree.Root.Decls.Value
}

func TestFunctionDefinitionShape(t *testing.T) {
	tree, sink := parseOne(t, "int f(void) { return 0; }")
	if len(sink.Reports) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", sink.Reports)
	}
	def, ok := firstDeclaration(t, tree).(*syntax.FunctionDefinition)
	if !ok {
		t.Fatalf("expected a function definition, got %T", firstDeclaration(t, tree))
	}
	if def.Body == nil {
		t.Fatal("expected a body")
	}
	decltor, ok := def.Decltor.(*syntax.ArrayOrFunctionDeclarator)
	if !ok {
		t.Fatalf("expected a function declarator, got %T", def.Decltor)
	}
	if decltor.K != syntax.KindFunctionDeclarator {
		t.Errorf("declarator kind: got %v", decltor.K)
	}
	ret, ok := def.Body.Stmts.Value.(*syntax.ReturnStatement)
	if !ok {
		t.Fatalf("expected a return statement, got %T", def.Body.Stmts.Value)
	}
	if ret.Expr == nil {
		t.Error("expected a return value")
	}
}

func TestDeclarationSharesSpecifiers(t *testing.T) {
	tree, sink := parseOne(t, "int x, *y, z[3];")
	if len(sink.Reports) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", sink.Reports)
	}
	decl, ok := firstDeclaration(t, tree).(*syntax.VariableAndOrFunctionDeclaration)
	if !ok {
		t.Fatalf("expected a variable declaration, got %T", firstDeclaration(t, tree))
	}
	if got := decl.Decltors.Len(); got != 3 {
		t.Fatalf("declarators: got %d, want 3", got)
	}
	if decl.Specs.Len() != 1 {
		t.Errorf("specifiers: got %d, want 1", decl.Specs.Len())
	}
}

func bodyStatements(t *testing.T, tree *syntax.Tree) *syntax.StatementList {
	t.Helper()
	def, ok := firstDeclaration(t, tree).(*syntax.FunctionDefinition)
	if !ok {
		t.Fatalf("expected a function definition, got %T", firstDeclaration(t, tree))
	}
	if def.Body == nil || def.Body.Stmts == nil {
		t.Fatal("expected a non-empty body")
	}
	return def.Body.Stmts
}

func TestCastOrBinaryAmbiguity(t *testing.T) {
	tree, sink := parseOne(t, "void f(void) { r = (x) * y; }")
	if len(sink.Reports) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", sink.Reports)
	}
	stmt, ok := bodyStatements(t, tree).Value.(*syntax.ExpressionStatement)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", bodyStatements(t, tree).Value)
	}
	assign, ok := stmt.Expr.(*syntax.AssignmentExpression)
	if !ok {
		t.Fatalf("expected an assignment, got %T", stmt.Expr)
	}
	amb, ok := assign.RHS.(*syntax.AmbiguousCastOrBinaryExpression)
	if !ok {
		t.Fatalf("expected an ambiguity node, got %T", assign.RHS)
	}
	if amb.CastExpr == nil || amb.BinaryExpr == nil {
		t.Fatal("both interpretations must be present")
	}
	if amb.BinaryExpr.K != syntax.KindMultiplyExpression {
		t.Errorf("binary kind: got %v", amb.BinaryExpr.K)
	}
	unary, ok := amb.CastExpr.Expr.(*syntax.PrefixUnaryExpression)
	if !ok {
		t.Fatalf("cast operand: got %T", amb.CastExpr.Expr)
	}
	if unary.K != syntax.KindPointerIndirectionExpression {
		t.Errorf("cast operand kind: got %v", unary.K)
	}
	paren, ok := amb.BinaryExpr.LHS.(*syntax.ParenthesizedExpression)
	if !ok {
		t.Fatalf("binary LHS: got %T", amb.BinaryExpr.LHS)
	}
	if paren.OpenParenIdx != amb.CastExpr.OpenParenIdx {
		t.Error("readings disagree on the open paren token")
	}
}

func TestStatementAmbiguity(t *testing.T) {
	tree, sink := parseOne(t, "void f(void) { T * x; }")
	if len(sink.Reports) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", sink.Reports)
	}
	amb, ok := bodyStatements(t, tree).Value.(*syntax.AmbiguousExpressionOrDeclarationStatement)
	if !ok {
		t.Fatalf("expected an ambiguity node, got %T", bodyStatements(t, tree).Value)
	}
	if amb.ExprStmt == nil || amb.DeclStmt == nil {
		t.Fatal("both interpretations must be present")
	}
	mul, ok := amb.ExprStmt.Expr.(*syntax.BinaryExpression)
	if !ok || mul.K != syntax.KindMultiplyExpression {
		t.Errorf("expression reading: got %T", amb.ExprStmt.Expr)
	}
	decl, ok := amb.DeclStmt.Decl.(*syntax.VariableAndOrFunctionDeclaration)
	if !ok {
		t.Fatalf("declaration reading: got %T", amb.DeclStmt.Decl)
	}
	if _, ok := decl.Decltors.Value.(*syntax.PointerDeclarator); !ok {
		t.Errorf("declarator reading: got %T", decl.Decltors.Value)
	}
}

func TestStatementNotAmbiguousWithInitializer(t *testing.T) {
	tree, sink := parseOne(t, "void f(void) { T * x = 0; }")
	if len(sink.Reports) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", sink.Reports)
	}
	if _, ok := bodyStatements(t, tree).Value.(*syntax.DeclarationStatement); !ok {
		t.Errorf("expected a plain declaration statement, got %T", bodyStatements(t, tree).Value)
	}
}

func TestSpeculationDiscardsDiagnostics(t *testing.T) {
	// The parenthesized operand is first tried as a type name; the
	// failed speculation must leave no diagnostics behind.
	_, sink := parseOne(t, "int n = (x);")
	if len(sink.Reports) != 0 {
		t.Errorf("unexpected diagnostics: %+v", sink.Reports)
	}
}

func TestExpressionDepthLimit(t *testing.T) {
	depth := MaxExpressionDepth + 10
	src := "int x = " + strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth) + ";"
	sink := &diag.CollectingSink{}
	tree, err := ParseSource(src, syntax.DefaultOptions(), sink)
	if err == nil {
		t.Fatal("expected the depth limit to abort the parse")
	}
	var depthErr ExpressionDepthError
	if !errors.As(err, &depthErr) {
		t.Fatalf("expected ExpressionDepthError, got %v", err)
	}
	if depthErr.Limit != MaxExpressionDepth {
		t.Errorf("limit: got %d, want %d", depthErr.Limit, MaxExpressionDepth)
	}
	if tree.Root != nil {
		t.Error("an aborted parse must leave the root nil")
	}
}

func TestNodeLimit(t *testing.T) {
	tokens := lexer.Tokenize("int x; int y; int z;")
	tree := syntax.NewTree(tokens, syntax.DefaultOptions())
	tree.SetNodeLimit(2)
	err := Parse(tree, &diag.CollectingSink{})
	if err == nil {
		t.Fatal("expected the node budget to abort the parse")
	}
	var limitErr syntax.NodeLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected NodeLimitError, got %v", err)
	}
	if tree.Root != nil {
		t.Error("an aborted parse must leave the root nil")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := "typedef int T; void f(void) { T * x; r = (y) & z; }"
	var dumps [2]string
	for i := range dumps {
		sink := &diag.CollectingSink{}
		tree, err := ParseSource(src, syntax.DefaultOptions(), sink)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		var buf bytes.Buffer
		syntax.Dump(&buf, tree)
		dumps[i] = buf.String()
	}
	if diff := cmp.Diff(dumps[0], dumps[1]); diff != "" {
		t.Errorf("parses differ (-first +second):\n%s", diff)
	}
}

func TestRecoveryKeepsParsing(t *testing.T) {
	tree, sink := parseOne(t, "int x = ; int y;")
	if len(sink.Reports) == 0 {
		t.Fatal("expected diagnostics")
	}
	count := 0
	for it := tree.Root.Decls; it != nil; it = it.Next {
		count++
	}
	if count < 2 {
		t.Errorf("expected recovery to reach the second declaration, got %d", count)
	}
}

func TestDiagnosticTokenIndexesAreValid(t *testing.T) {
	tree, sink := parseOne(t, "struct s { int a int b; };")
	if len(sink.Reports) == 0 {
		t.Fatal("expected diagnostics")
	}
	for _, r := range sink.Reports {
		if r.TokenIdx <= 0 || int(r.TokenIdx) >= tree.TokenCount() {
			t.Errorf("report %v has out-of-range token index %d", r.Code, r.TokenIdx)
		}
	}
}

func TestOracleVerdicts(t *testing.T) {
	cases := []struct {
		src  string
		want identifierRole
	}{
		{"T x;", roleTypedefName},
		{"T * x;", roleTypedefName},
		{"T;", roleDeclarator},
		{"T, y;", roleDeclarator},
		{"T = 1;", roleDeclarator},
		{"T (x);", roleTypedefName},
		{"T [3];", roleDeclarator},
		{"T const volatile y;", roleTypedefName},
	}
	for _, tc := range cases {
		tokens := lexer.Tokenize(tc.src)
		tree := syntax.NewTree(tokens, syntax.DefaultOptions())
		p := &Parser{tree: tree, sink: &diag.CollectingSink{}, cur: cursor{tree: tree, idx: 1}}
		if got := p.determineIdentifierRole(); got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.src, got, tc.want)
		}
	}
}
