package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetFlags() {
	dTokens = false
	dParse = false
	stdFlag = "c11"
	optionsFile = ""
	noColor = false
}

func TestVersion(t *testing.T) {
	if version == "" {
		t.Error("version should not be empty")
	}
}

func TestFlagsExist(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)

	expectedFlags := []string{"dtokens", "dparse", "std", "options", "no-color"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag --%s to exist", flagName)
		}
	}
}

func TestNormalizeFlags(t *testing.T) {
	args := normalizeFlags([]string{"-dparse", "-dtokens", "--std", "c99", "test.c"})
	want := []string{"--dparse", "--dtokens", "--std", "c99", "test.c"}
	for i, arg := range args {
		if arg != want[i] {
			t.Errorf("arg %d: got %q, want %q", i, arg, want[i])
		}
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseWellFormedFile(t *testing.T) {
	resetFlags()
	path := writeTempFile(t, "ok.c", "int main(void) { return 0; }\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--no-color", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v\nstderr: %s", err, errOut.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("expected no diagnostics, got %q", errOut.String())
	}
}

func TestParseDumpWritesOutputFile(t *testing.T) {
	resetFlags()
	path := writeTempFile(t, "ok.c", "int x;\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dparse", "--no-color", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v\nstderr: %s", err, errOut.String())
	}

	outPath := strings.TrimSuffix(path, ".c") + ".parsed.txt"
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected dump file: %v", err)
	}
	if !strings.Contains(string(data), "TranslationUnit") {
		t.Errorf("dump file missing root node, got:\n%s", data)
	}
	if !strings.Contains(out.String(), "TranslationUnit") {
		t.Errorf("stdout missing root node, got:\n%s", out.String())
	}
}

func TestParseMalformedFileReportsDiagnostics(t *testing.T) {
	resetFlags()
	path := writeTempFile(t, "bad.c", "int x = ;\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--no-color", path})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for malformed input")
	}
	stderr := errOut.String()
	if !strings.Contains(stderr, "error:") {
		t.Errorf("expected diagnostics on stderr, got %q", stderr)
	}
	if !strings.Contains(stderr, path) {
		t.Errorf("expected diagnostics to name the file, got %q", stderr)
	}
}

func TestTokenDump(t *testing.T) {
	resetFlags()
	path := writeTempFile(t, "ok.c", "int x;\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--dtokens", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stdout := out.String()
	for _, want := range []string{"int", "IDENT", ";"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected token dump to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestUnknownStandardRejected(t *testing.T) {
	resetFlags()
	path := writeTempFile(t, "ok.c", "int x;\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--std", "c23", path})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for unknown standard")
	}
	if !strings.Contains(errOut.String(), "unknown standard") {
		t.Errorf("expected stderr to mention the standard, got %q", errOut.String())
	}
}

func TestOptionsFileDisablesExtension(t *testing.T) {
	resetFlags()
	optsPath := writeTempFile(t, "opts.yaml", "dialect: c11\nextensions:\n  gnu_statement_expressions: false\n")
	path := writeTempFile(t, "stmtexpr.c", "int f(void) { return ({ 1; }); }\n")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--no-color", "--options", optsPath, path})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected diagnostics with statement expressions disabled")
	}
	if !strings.Contains(errOut.String(), "statement expressions") {
		t.Errorf("expected a feature diagnostic, got %q", errOut.String())
	}
}

func TestMissingFile(t *testing.T) {
	resetFlags()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.c")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(errOut.String(), "error reading") {
		t.Errorf("expected a read error message, got %q", errOut.String())
	}
}

func TestNoArgsShowsHelp(t *testing.T) {
	resetFlags()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "quill-cc") {
		t.Errorf("expected help output, got %q", out.String())
	}
}
