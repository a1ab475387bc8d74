package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// Nullable turns any production into one that always matches. When the
// wrapped production fails, nothing is consumed and the empty
// derivation is marked with a zero-width null leaf; NewNullableHidden
// omits the leaf.
type Nullable[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	inner parse.Production[T, N]
	leaf  bool
}

func NewNullable[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N]) *Nullable[T, N] {
	return &Nullable[T, N]{symbol: symbol{name: "(" + inner.Name() + ")?"}, inner: inner, leaf: true}
}

func NewNullableHidden[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N]) *Nullable[T, N] {
	return &Nullable[T, N]{symbol: symbol{name: "(" + inner.Name() + ")?"}, inner: inner}
}

func (p *Nullable[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	data, err := ctx.Parse(p.inner, index)
	if err == nil {
		return data, nil
	}
	if parse.IsFatal(err) {
		return parse.SuccessData[parse.FltrPtr, N]{}, err
	}
	if !p.leaf {
		return parse.HiddenSuccess[parse.FltrPtr, N](index), nil
	}
	return parse.TreeSuccess(index, parse.NullLeaf[N](ctx.Stream.At(index).Start)), nil
}

func (p *Nullable[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	data, err := ctx.ParseRaw(p.inner, index)
	if err == nil {
		return data, nil
	}
	if parse.IsFatal(err) {
		return parse.SuccessData[parse.StreamPtr, N]{}, err
	}
	if !p.leaf {
		return parse.HiddenSuccess[parse.StreamPtr, N](index), nil
	}
	return parse.TreeSuccess(index, parse.NullLeaf[N](ctx.Stream.Raw(index).Start)), nil
}

func (p *Nullable[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	data, err := ctx.ParseBytes(p.inner, pointer)
	if err == nil {
		return data, nil
	}
	if parse.IsFatal(err) {
		return parse.SuccessData[int, N]{}, err
	}
	if !p.leaf {
		return parse.HiddenSuccess[int, N](pointer), nil
	}
	return parse.TreeSuccess(pointer, parse.NullLeaf[N](pointer)), nil
}

func (p *Nullable[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	p.inner.WriteGrammar(w, visited)
}
