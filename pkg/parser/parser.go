// Package parser implements a recursive descent parser for C11 with the
// GNU extensions and the quantified type extensions. It produces a
// concrete syntax tree over the lexed token sequence and reports
// structured diagnostics to a sink; it never formats messages itself.
package parser

import (
	"fmt"

	"github.com/quillc/quill-cc/pkg/diag"
	"github.com/quillc/quill-cc/pkg/lexer"
	"github.com/quillc/quill-cc/pkg/syntax"
)

// MaxExpressionDepth caps the nesting of expression parse frames
const MaxExpressionDepth = 1000

// ExpressionDepthError is the fatal condition raised when expression
// nesting exceeds MaxExpressionDepth
type ExpressionDepthError struct {
	Limit int
}

func (e ExpressionDepthError) Error() string {
	return fmt.Sprintf("expression depth limit of %d exceeded", e.Limit)
}

// declarationScope selects the grammar rules that differ between
// file scope, block scope and prototype scope
type declarationScope int

const (
	fileScope declarationScope = iota
	blockScope
	prototypeScope
)

// Parser holds the mutable state of one parse over one tree
type Parser struct {
	tree      *syntax.Tree
	sink      diag.Sink
	cur       cursor
	reports   []diag.Report
	exprDepth int
}

// Parse consumes the tree's token sequence and populates tree.Root.
// Diagnostics are buffered during the parse so that speculation can
// discard them, and delivered to the sink in order once parsing ends.
// Exceeding the expression depth or the tree's node budget aborts the
// parse; the tree's root is left nil and the condition is returned.
func Parse(tree *syntax.Tree, sink diag.Sink) (err error) {
	p := &Parser{tree: tree, sink: sink, cur: cursor{tree: tree, idx: 1}}
	defer func() {
		for _, r := range p.reports {
			diag.Emit(sink, r)
		}
		if r := recover(); r != nil {
			switch e := r.(type) {
			case ExpressionDepthError:
				tree.Root = nil
				err = e
			case syntax.NodeLimitError:
				tree.Root = nil
				err = e
			default:
				panic(r)
			}
		}
	}()
	tree.Root = p.parseTranslationUnit()
	return nil
}

// ParseSource lexes src and parses it under opts
func ParseSource(src string, opts syntax.Options, sink diag.Sink) (*syntax.Tree, error) {
	tokens := lexer.Tokenize(src)
	tree := syntax.NewTree(tokens, opts)
	if err := Parse(tree, sink); err != nil {
		return tree, err
	}
	return tree, nil
}

func newNode[T any](p *Parser) *T {
	return syntax.NewNode[T](p.tree)
}

func (p *Parser) opts() syntax.Options {
	return p.tree.Options()
}

func (p *Parser) report(r diag.Report) {
	p.reports = append(p.reports, r)
}

func (p *Parser) expectedToken(kind lexer.TokenKind) {
	p.report(diag.Report{Code: diag.CodeExpectedToken, TokenIdx: p.cur.idx, Expected: []lexer.TokenKind{kind}})
}

func (p *Parser) expectedTokenWithin(kinds []lexer.TokenKind) {
	p.report(diag.Report{Code: diag.CodeExpectedTokenWithin, TokenIdx: p.cur.idx, Expected: kinds})
}

func (p *Parser) expectedCategory(category diag.TokenCategory) {
	p.report(diag.Report{Code: diag.CodeExpectedTokenOfCategory, TokenIdx: p.cur.idx, Category: category})
}

func (p *Parser) expectedFIRSTof(nt diag.NonTerminal) {
	p.report(diag.Report{Code: diag.CodeExpectedFIRSTof, TokenIdx: p.cur.idx, NonTerminal: nt})
}

func (p *Parser) expectedFOLLOWof(nt diag.NonTerminal) {
	p.report(diag.Report{Code: diag.CodeExpectedFOLLOWof, TokenIdx: p.cur.idx, NonTerminal: nt})
}

func (p *Parser) expectedFeature(feature string) {
	p.report(diag.Report{Code: diag.CodeExpectedFeature, TokenIdx: p.cur.idx, Feature: feature})
}

func (p *Parser) reportCode(code diag.Code) {
	p.report(diag.Report{Code: code, TokenIdx: p.cur.idx})
}

func (p *Parser) enterExpression() {
	p.exprDepth++
	if p.exprDepth > MaxExpressionDepth {
		panic(ExpressionDepthError{MaxExpressionDepth})
	}
}

func (p *Parser) leaveExpression() {
	p.exprDepth--
}

// ignoreDeclarationOrDefinition advances past a declaration that could
// not be parsed. It consumes up to and including the terminating
// semicolon at brace depth zero, or stops before a closing brace at
// depth zero or the end of input.
func (p *Parser) ignoreDeclarationOrDefinition() {
	depth := 0
	for {
		switch p.cur.peek(1).Kind {
		case lexer.TokenEOF:
			return
		case lexer.TokenSemicolon:
			p.cur.consume()
			if depth == 0 {
				return
			}
		case lexer.TokenLBrace:
			depth++
			p.cur.consume()
		case lexer.TokenRBrace:
			if depth == 0 {
				return
			}
			depth--
			p.cur.consume()
		default:
			p.cur.consume()
		}
	}
}

// ignoreMemberDeclaration advances past a member declaration that could
// not be parsed, consuming up to and including the next semicolon or
// stopping before a closing brace or the end of input
func (p *Parser) ignoreMemberDeclaration() {
	for {
		switch p.cur.peek(1).Kind {
		case lexer.TokenEOF, lexer.TokenRBrace:
			return
		case lexer.TokenSemicolon:
			p.cur.consume()
			return
		default:
			p.cur.consume()
		}
	}
}

// ignoreDeclarator advances past a declarator that could not be parsed,
// stopping before any token that may follow one
func (p *Parser) ignoreDeclarator() {
	for {
		switch p.cur.peek(1).Kind {
		case lexer.TokenEOF, lexer.TokenComma, lexer.TokenSemicolon,
			lexer.TokenRParen, lexer.TokenRBrace, lexer.TokenLBrace:
			return
		default:
			p.cur.consume()
		}
	}
}
