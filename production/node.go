package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// Node wraps the children produced by its inner production in a single
// AST node spanning the consumed region. Grammar composition is a tree
// of parsers, but AST shape is chosen explicitly: only Node, Suffixes,
// (optionally) Lookahead and the null leaf of NewNullable introduce
// nodes.
//
// The hidden variant discards the children instead, which is how whole
// subtrees are kept out of the AST.
type Node[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	inner parse.Production[T, N]
	node  *N
}

func NewNode[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N], node N) *Node[T, N] {
	return &Node[T, N]{
		symbol: symbol{name: "[" + inner.Name() + "; @" + node.String() + "]"},
		inner:  inner,
		node:   &node,
	}
}

// NewHiddenNode consumes like inner but contributes no nodes.
func NewHiddenNode[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N]) *Node[T, N] {
	return &Node[T, N]{symbol: symbol{name: "[" + inner.Name() + ";]"}, inner: inner}
}

func (p *Node[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	data, err := ctx.Parse(p.inner, index)
	if err != nil {
		return parse.SuccessData[parse.FltrPtr, N]{}, err
	}
	if p.node == nil {
		return parse.HiddenSuccess[parse.FltrPtr, N](data.ConsumedIndex), nil
	}
	start := ctx.Stream.At(index).Start
	end := ctx.Stream.At(data.ConsumedIndex).Start
	return parse.TreeSuccess(data.ConsumedIndex, parse.NewASTNode(*p.node, start, end, data.Children)), nil
}

func (p *Node[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	data, err := ctx.ParseRaw(p.inner, index)
	if err != nil {
		return parse.SuccessData[parse.StreamPtr, N]{}, err
	}
	if p.node == nil {
		return parse.HiddenSuccess[parse.StreamPtr, N](data.ConsumedIndex), nil
	}
	start := ctx.Stream.Raw(index).Start
	end := ctx.Stream.Raw(data.ConsumedIndex).Start
	return parse.TreeSuccess(data.ConsumedIndex, parse.NewASTNode(*p.node, start, end, data.Children)), nil
}

func (p *Node[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	data, err := ctx.ParseBytes(p.inner, pointer)
	if err != nil {
		return parse.SuccessData[int, N]{}, err
	}
	if p.node == nil {
		return parse.HiddenSuccess[int, N](data.ConsumedIndex), nil
	}
	return parse.TreeSuccess(data.ConsumedIndex, parse.NewASTNode(*p.node, pointer, data.ConsumedIndex, data.Children)), nil
}

func (p *Node[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	p.inner.WriteGrammar(w, visited)
}
