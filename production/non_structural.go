package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// NonStructural evaluates its inner production with the structural
// filter disabled: the child sees every token, including the
// whitespace and line-break lexes hidden from the rest of the grammar.
// The raw range offered to the child starts just past the previous
// structural token; afterwards the parent resumes on the structural
// view at the first structural token at or past the raw end.
//
// With fillRange the child must consume the entire non-structural gap
// up to the current structural token.
type NonStructural[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	inner     parse.Production[T, N]
	fillRange bool
}

func NewNonStructural[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N], fillRange bool) *NonStructural[T, N] {
	return &NonStructural[T, N]{symbol: symbol{name: "%" + inner.Name() + "%"}, inner: inner, fillRange: fillRange}
}

func (p *NonStructural[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	var startRaw parse.StreamPtr
	if index > 0 {
		startRaw = ctx.Stream.StreamPtr(index-1) + 1
	}
	data, err := ctx.ParseRaw(p.inner, startRaw)
	if err != nil {
		return parse.SuccessData[parse.FltrPtr, N]{}, err
	}
	if p.fillRange && data.ConsumedIndex != ctx.Stream.StreamPtr(index) {
		return parse.SuccessData[parse.FltrPtr, N]{}, parse.ErrNoMatch
	}
	resumed := ctx.Stream.FltrPtrAtOrAfter(data.ConsumedIndex)
	return parse.Success(resumed, data.Children), nil
}

// ParseRaw delegates: inside a non-structural scope the filter is
// already off.
func (p *NonStructural[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	return ctx.ParseRaw(p.inner, index)
}

func (p *NonStructural[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	return ctx.ParseBytes(p.inner, pointer)
}

func (p *NonStructural[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	p.inner.WriteGrammar(w, visited)
}
