package parser

import (
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

// cursor is the parser's position in the tree's token sequence. Index 1
// is the first real token; the cursor never moves past the trailing EOF.
type cursor struct {
	tree *syntax.Tree
	idx  syntax.TokenIndex
}

// peek returns the k-th upcoming token without consuming it; peek(1) is
// the current token. Past the end of input it returns the zero token,
// whose kind is EOF.
func (c *cursor) peek(k int) lexer.Token {
	return c.tree.TokenAt(c.idx + syntax.TokenIndex(k-1))
}

// at reports whether the current token has the given kind
func (c *cursor) at(kind lexer.TokenKind) bool {
	return c.peek(1).Kind == kind
}

// consume advances past the current token and returns its index. At the
// end of input it returns the invalid index without advancing, so the
// trailing EOF is never consumed.
func (c *cursor) consume() syntax.TokenIndex {
	if c.peek(1).Kind == lexer.TokenEOF {
		return syntax.InvalidTokenIndex
	}
	idx := c.idx
	c.idx++
	return idx
}

// match consumes the current token into out if it has the given kind
func (p *Parser) match(kind lexer.TokenKind, out *syntax.TokenIndex) bool {
	if p.cur.at(kind) {
		*out = p.cur.consume()
		return true
	}
	return false
}

// expect consumes the current token into out if it has the given kind,
// and otherwise reports the expectation without advancing
func (p *Parser) expect(kind lexer.TokenKind, out *syntax.TokenIndex) bool {
	if p.match(kind, out) {
		return true
	}
	p.expectedToken(kind)
	return false
}

// matchOrSkipTo behaves like expect, but on a mismatch it additionally
// scans forward for the expected kind, stopping before any closing
// delimiter or the end of input. The expected token is consumed if the
// scan reaches it.
func (p *Parser) matchOrSkipTo(kind lexer.TokenKind, out *syntax.TokenIndex) bool {
	if p.match(kind, out) {
		return true
	}
	p.expectedToken(kind)
	p.skipTo(kind)
	return p.match(kind, out)
}

// skipTo scans forward until the given kind, stopping before closing
// delimiters and the end of input
func (p *Parser) skipTo(kind lexer.TokenKind) {
	for {
		switch k := p.cur.peek(1).Kind; k {
		case kind, lexer.TokenEOF, lexer.TokenRParen, lexer.TokenRBracket, lexer.TokenRBrace:
			return
		default:
			p.cur.consume()
		}
	}
}
