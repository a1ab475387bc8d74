package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// Union tries each alternative in declared order at the same position
// and returns the first success — ordered choice, never longest match.
// When every alternative fails, the user-visible report comes from the
// deepest failure reached while exploring them.
//
// Like Concat, a Union may be created deferred and assigned later.
type Union[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	children []parse.Production[T, N]
	assigned bool
}

func NewUnion[T parse.TokenKind[T], N parse.NodeKind[N]](name string, children ...parse.Production[T, N]) *Union[T, N] {
	return &Union[T, N]{symbol: symbol{name: name}, children: children, assigned: true}
}

func InitUnion[T parse.TokenKind[T], N parse.NodeKind[N]](name string) *Union[T, N] {
	return &Union[T, N]{symbol: symbol{name: name}}
}

func (p *Union[T, N]) SetSymbols(children ...parse.Production[T, N]) error {
	if p.assigned {
		return &parse.ConfigurationError{
			Kind:   parse.ConfigUninitializedProduction,
			Symbol: p.name,
			Reason: "symbols are already assigned",
		}
	}
	p.children = children
	p.assigned = true
	return nil
}

func (p *Union[T, N]) uninitialized() error {
	return &parse.ConfigurationError{
		Kind:   parse.ConfigUninitializedProduction,
		Symbol: p.name,
		Reason: "evaluated before SetSymbols",
	}
}

func (p *Union[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	if !p.assigned {
		return parse.SuccessData[parse.FltrPtr, N]{}, p.uninitialized()
	}
	return unionEval(p.children, index, filteredStep(ctx))
}

func (p *Union[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	if !p.assigned {
		return parse.SuccessData[parse.StreamPtr, N]{}, p.uninitialized()
	}
	return unionEval(p.children, index, rawStep(ctx))
}

func (p *Union[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	if !p.assigned {
		return parse.SuccessData[int, N]{}, p.uninitialized()
	}
	return unionEval(p.children, pointer, bytesStep(ctx))
}

func (p *Union[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	if !writeRule(w, visited, p.name, childNames(p.children, " | ")) {
		return
	}
	for _, child := range p.children {
		child.WriteGrammar(w, visited)
	}
}
