package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quillc/quill-cc/pkg/diag"
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/parser"
	"github.com/quillc/quill-cc/pkg/syntax"
)

var version = "0.1.0"

// Debug flags for dumping frontend output
var (
	dTokens bool
	dParse  bool
)

// Language options
var (
	stdFlag     string
	optionsFile string
	noColor     bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	// Normalize compiler-style single-dash flags to double-dash for pflag compatibility
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists all debug flags that should accept single-dash style
var debugFlagNames = []string{"dtokens", "dparse"}

// normalizeFlags converts single-dash flags like -dparse to --dparse
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quill-cc [file]",
		Short: "quill-cc parses C source into a concrete syntax tree",
		Long: `quill-cc is the parsing frontend of the quill C compiler. It lexes
and parses a translation unit into a token-preserving concrete syntax
tree, reporting structured diagnostics and recovering from malformed
input instead of stopping at the first error.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			filename := args[0]

			opts, err := buildOptions(errOut)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(filename)
			if err != nil {
				fmt.Fprintf(errOut, "quill-cc: error reading %s: %v\n", filename, err)
				return err
			}

			if dTokens {
				return doTokens(string(content), out)
			}
			return doParse(filename, string(content), opts, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVar(&dTokens, "dtokens", false, "Dump the token stream")
	rootCmd.Flags().BoolVar(&dParse, "dparse", false, "Dump the syntax tree after parsing")
	rootCmd.Flags().StringVar(&stdFlag, "std", "c11", "Language standard (c89, c99, c11)")
	rootCmd.Flags().StringVar(&optionsFile, "options", "", "YAML file with dialect and extension options")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")

	return rootCmd
}

// buildOptions assembles parser options from the --std flag and the
// optional YAML options file; the file takes precedence where set
func buildOptions(errOut io.Writer) (syntax.Options, error) {
	opts := syntax.DefaultOptions()

	switch stdFlag {
	case "c89", "c90":
		opts.Dialect = syntax.C89
	case "c99":
		opts.Dialect = syntax.C99
	case "c11", "":
		opts.Dialect = syntax.C11
	default:
		err := fmt.Errorf("unknown standard %q", stdFlag)
		fmt.Fprintf(errOut, "quill-cc: %v\n", err)
		return opts, err
	}

	if optionsFile != "" {
		data, err := os.ReadFile(optionsFile)
		if err != nil {
			fmt.Fprintf(errOut, "quill-cc: error reading %s: %v\n", optionsFile, err)
			return opts, err
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			fmt.Fprintf(errOut, "quill-cc: error parsing %s: %v\n", optionsFile, err)
			return opts, err
		}
	}
	return opts, nil
}

// doTokens lexes the input and dumps one token per line
func doTokens(content string, out io.Writer) error {
	for _, tok := range lexer.Tokenize(content) {
		fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Kind, tok.Literal)
	}
	return nil
}

// doParse parses the file, prints diagnostics, and on -dparse writes the
// syntax tree to a .parsed.txt file as well as stdout
func doParse(filename, content string, opts syntax.Options, out, errOut io.Writer) error {
	sink := &diag.CollectingSink{}
	tree, err := parser.ParseSource(content, opts, sink)
	if err != nil {
		fmt.Fprintf(errOut, "quill-cc: %s: %v\n", filename, err)
		return err
	}

	printReports(errOut, filename, tree, sink.Reports)

	if dParse {
		outputFilename := parsedOutputFilename(filename)
		outFile, err := os.Create(outputFilename)
		if err != nil {
			fmt.Fprintf(errOut, "quill-cc: error creating %s: %v\n", outputFilename, err)
			return err
		}
		defer outFile.Close()

		syntax.Dump(outFile, tree)
		syntax.Dump(out, tree)
	}

	if len(sink.Reports) > 0 {
		return fmt.Errorf("parsing produced %d diagnostics", len(sink.Reports))
	}
	return nil
}

// parsedOutputFilename returns the output filename for -dparse.
// input.c -> input.parsed.txt
func parsedOutputFilename(filename string) string {
	ext := ".c"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".parsed.txt"
	}
	return filename + ".parsed.txt"
}

func printReports(errOut io.Writer, filename string, tree *syntax.Tree, reports []diag.Report) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)
	if noColor {
		bold.DisableColor()
		red.DisableColor()
	}
	for _, r := range reports {
		tok := tree.TokenAt(r.TokenIdx)
		bold.Fprintf(errOut, "%s:%d:%d: ", filename, tok.Line, tok.Column)
		red.Fprint(errOut, "error: ")
		fmt.Fprintln(errOut, describeReport(r))
	}
}

// describeReport renders one structured report as a short message
func describeReport(r diag.Report) string {
	switch r.Code {
	case diag.CodeExpectedToken:
		if len(r.Expected) > 0 {
			return fmt.Sprintf("expected %s", r.Expected[0])
		}
		return "expected end of input"
	case diag.CodeExpectedTokenWithin:
		names := make([]string, len(r.Expected))
		for i, k := range r.Expected {
			names[i] = k.String()
		}
		return fmt.Sprintf("expected one of %s", strings.Join(names, ", "))
	case diag.CodeExpectedTokenOfCategory:
		return fmt.Sprintf("expected %s", r.Category)
	case diag.CodeExpectedFIRSTof:
		return fmt.Sprintf("expected start of %s", r.NonTerminal)
	case diag.CodeExpectedFOLLOWof:
		return fmt.Sprintf("expected continuation of %s", r.NonTerminal)
	case diag.CodeExpectedFeature:
		return fmt.Sprintf("feature %s is not enabled", r.Feature)
	case diag.CodeNamedParameterBeforeEllipsis:
		return "a named parameter is required before an ellipsis"
	case diag.CodeUnexpectedInitializerOfDeclarator:
		return "unexpected initializer for this declarator"
	case diag.CodeUnexpectedPointerInArrayDeclarator:
		return "a [*] array bound is only valid in a function prototype"
	case diag.CodeUnexpectedStaticOrQualifierInArrayDeclarator:
		return "static and type qualifiers in an array declarator are only valid in a function prototype"
	case diag.CodeExpectedFieldDesignator:
		return "expected a field or array designator"
	case diag.CodeExpectedFieldName:
		return "expected a field name"
	default:
		return r.Code.String()
	}
}
