package parser

import "github.com/quillc/quill-cc/pkg/syntax"

// listBuilder accumulates plain list cells in arrival order
type listBuilder[T syntax.Node] struct {
	head, tail *syntax.List[T]
}

func (b *listBuilder[T]) append(v T) {
	cell := &syntax.List[T]{Value: v}
	if b.tail == nil {
		b.head = cell
	} else {
		b.tail.Next = cell
	}
	b.tail = cell
}

// sepListBuilder accumulates separated list cells in arrival order
type sepListBuilder[T syntax.Node] struct {
	head, tail *syntax.SeparatedList[T]
}

func (b *sepListBuilder[T]) append(v T) {
	cell := &syntax.SeparatedList[T]{Value: v}
	if b.tail == nil {
		b.head = cell
	} else {
		b.tail.Next = cell
	}
	b.tail = cell
}

// delimit records the delimiter token following the most recent element
func (b *sepListBuilder[T]) delimit(idx syntax.TokenIndex) {
	if b.tail != nil {
		b.tail.DelimIdx = idx
	}
}
