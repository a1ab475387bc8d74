package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// Lookahead evaluates its inner production and discards the position
// advance. On success it emits an optional zero-width node at the
// current position; on failure it propagates the failure.
type Lookahead[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	inner parse.Production[T, N]
	node  *N
}

func NewLookahead[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N], node N) *Lookahead[T, N] {
	return &Lookahead[T, N]{symbol: symbol{name: "?=" + inner.Name()}, inner: inner, node: &node}
}

func NewHiddenLookahead[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N]) *Lookahead[T, N] {
	return &Lookahead[T, N]{symbol: symbol{name: "?=" + inner.Name()}, inner: inner}
}

func (p *Lookahead[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	if _, err := ctx.Parse(p.inner, index); err != nil {
		return parse.SuccessData[parse.FltrPtr, N]{}, err
	}
	if p.node == nil {
		return parse.HiddenSuccess[parse.FltrPtr, N](index), nil
	}
	pointer := ctx.Stream.At(index).Start
	return parse.TreeSuccess(index, parse.Leaf(*p.node, pointer, pointer)), nil
}

func (p *Lookahead[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	if _, err := ctx.ParseRaw(p.inner, index); err != nil {
		return parse.SuccessData[parse.StreamPtr, N]{}, err
	}
	if p.node == nil {
		return parse.HiddenSuccess[parse.StreamPtr, N](index), nil
	}
	pointer := ctx.Stream.Raw(index).Start
	return parse.TreeSuccess(index, parse.Leaf(*p.node, pointer, pointer)), nil
}

func (p *Lookahead[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	if _, err := ctx.ParseBytes(p.inner, pointer); err != nil {
		return parse.SuccessData[int, N]{}, err
	}
	if p.node == nil {
		return parse.HiddenSuccess[int, N](pointer), nil
	}
	return parse.TreeSuccess(pointer, parse.Leaf(*p.node, pointer, pointer)), nil
}

func (p *Lookahead[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	p.inner.WriteGrammar(w, visited)
}
