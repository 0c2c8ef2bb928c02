package syntax

import (
	"fmt"
	"strconv"
)

// Dialect selects the base language standard
type Dialect int

const (
	C11 Dialect = iota
	C89
	C99
)

var dialectNames = map[Dialect]string{
	C89: "c89",
	C99: "c99",
	C11: "c11",
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// UnmarshalText reads a dialect from its name (c89, c99, c11) or from its
// numeric value, so options files may spell it either way
func (d *Dialect) UnmarshalText(text []byte) error {
	for dialect, name := range dialectNames {
		if string(text) == name || string(text) == strconv.Itoa(int(dialect)) {
			*d = dialect
			return nil
		}
	}
	return fmt.Errorf("unknown dialect %q", text)
}

// Before reports whether d predates other
func (d Dialect) Before(other Dialect) bool {
	order := map[Dialect]int{C89: 0, C99: 1, C11: 2}
	return order[d] < order[other]
}

// Extensions holds the extension feature flags of a parse. The parser
// does not consult GNULLVMAvailability or GNUAlignment.
type Extensions struct {
	GNUAsm                    bool `yaml:"gnu_asm"`
	GNUStatementExpressions   bool `yaml:"gnu_statement_expressions"`
	GNUDesignatedInitializers bool `yaml:"gnu_designated_initializers"`
	GNUCompoundLiterals       bool `yaml:"gnu_compound_literals"`
	GNULLVMAvailability       bool `yaml:"gnu_llvm_availability"`
	GNUAlignment              bool `yaml:"gnu_alignment"`
	QuantifiedTypes           bool `yaml:"quantified_types"`
	TemplateDeclarations      bool `yaml:"template_declarations"`
}

// DefaultExtensions enables every extension
func DefaultExtensions() Extensions {
	return Extensions{
		GNUAsm:                    true,
		GNUStatementExpressions:   true,
		GNUDesignatedInitializers: true,
		GNUCompoundLiterals:       true,
		GNULLVMAvailability:       true,
		GNUAlignment:              true,
		QuantifiedTypes:           true,
		TemplateDeclarations:      true,
	}
}

// Options configures a parse
type Options struct {
	Dialect Dialect    `yaml:"dialect"`
	Ext     Extensions `yaml:"extensions"`
}

// DefaultOptions is C11 with every extension enabled
func DefaultOptions() Options {
	return Options{Dialect: C11, Ext: DefaultExtensions()}
}
