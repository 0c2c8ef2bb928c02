package syntax

import (
	"fmt"

	"github.com/quillc/quill-cc/pkg/lexer"
)

// DefaultNodeLimit caps the number of nodes a tree may allocate
const DefaultNodeLimit = 1 << 22

// NodeLimitError is the fatal condition raised when a tree's node budget
// is exhausted
type NodeLimitError struct {
	Limit int
}

func (e NodeLimitError) Error() string {
	return fmt.Sprintf("syntax node limit of %d exceeded", e.Limit)
}

// Tree owns the token sequence, the parse options and every node
// allocated for it. Nodes never outlive their tree.
type Tree struct {
	tokens    []lexer.Token
	opts      Options
	Root      *TranslationUnit
	allocated int
	nodeLimit int
}

// NewTree creates a tree over a fully lexed token sequence. The sequence
// is stored with a reserved zero slot so that token indexes start at 1 and
// index 0 serves as the invalid sentinel.
func NewTree(tokens []lexer.Token, opts Options) *Tree {
	stored := make([]lexer.Token, 0, len(tokens)+1)
	stored = append(stored, lexer.Token{})
	stored = append(stored, tokens...)
	return &Tree{tokens: stored, opts: opts, nodeLimit: DefaultNodeLimit}
}

// SetNodeLimit overrides the tree's node budget
func (t *Tree) SetNodeLimit(n int) {
	t.nodeLimit = n
}

// TokenCount returns the number of stored tokens, including the reserved
// zero slot and the trailing EOF
func (t *Tree) TokenCount() int {
	return len(t.tokens)
}

// TokenAt returns the token at the given index. The invalid sentinel and
// out-of-range indexes yield a zero token, whose kind is EOF.
func (t *Tree) TokenAt(i TokenIndex) lexer.Token {
	if i <= 0 || int(i) >= len(t.tokens) {
		return lexer.Token{}
	}
	return t.tokens[i]
}

// Options returns the parse options
func (t *Tree) Options() Options {
	return t.opts
}

// NodeCount returns the number of nodes allocated so far
func (t *Tree) NodeCount() int {
	return t.allocated
}

// NewNode allocates a zero-valued node owned by the tree. It never returns
// nil; exhausting the node budget panics with NodeLimitError, which the
// parser converts into a fatal parse failure.
func NewNode[T any](t *Tree) *T {
	if t.allocated >= t.nodeLimit {
		panic(NodeLimitError{t.nodeLimit})
	}
	t.allocated++
	return new(T)
}
