package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// List repeats its symbol greedily from the current position and emits
// the concatenated children. The loop stops when the symbol fails or
// when an iteration consumes nothing; fewer than MinCount successful
// iterations is a no-match.
type List[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	inner    parse.Production[T, N]
	minCount int
}

func NewList[T parse.TokenKind[T], N parse.NodeKind[N]](inner parse.Production[T, N]) *List[T, N] {
	return &List[T, N]{symbol: symbol{name: "(" + inner.Name() + ")*"}, inner: inner}
}

// WithMinCount requires at least n successful iterations.
func (p *List[T, N]) WithMinCount(n int) *List[T, N] {
	p.minCount = n
	if n > 0 {
		p.name = "(" + p.inner.Name() + ")+"
	}
	return p
}

func (p *List[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	return listEval(p.inner, index, p.minCount, filteredStep(ctx))
}

func (p *List[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	return listEval(p.inner, index, p.minCount, rawStep(ctx))
}

func (p *List[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	return listEval(p.inner, pointer, p.minCount, bytesStep(ctx))
}

func (p *List[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	p.inner.WriteGrammar(w, visited)
}
