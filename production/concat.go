package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// Concat derives every child in order from the cumulative position and
// emits the concatenation of their node output. An empty child list
// matches trivially.
//
// A Concat may be created uninitialized with InitConcat, shared into
// other productions, and assigned its children later with SetSymbols;
// this is how grammar cycles are closed. Evaluating an uninitialized
// Concat is a configuration fault.
type Concat[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	children []parse.Production[T, N]
	assigned bool
}

func NewConcat[T parse.TokenKind[T], N parse.NodeKind[N]](name string, children ...parse.Production[T, N]) *Concat[T, N] {
	return &Concat[T, N]{symbol: symbol{name: name}, children: children, assigned: true}
}

// InitConcat creates a deferred Concat whose children are assigned
// later with SetSymbols.
func InitConcat[T parse.TokenKind[T], N parse.NodeKind[N]](name string) *Concat[T, N] {
	return &Concat[T, N]{symbol: symbol{name: name}}
}

// SetSymbols assigns the children of a deferred Concat. Assigning twice
// is an error: grammars are immutable once built.
func (p *Concat[T, N]) SetSymbols(children ...parse.Production[T, N]) error {
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

func (p *Concat[T, N]) uninitialized() error {
	return &parse.ConfigurationError{
		Kind:   parse.ConfigUninitializedProduction,
		Symbol: p.name,
		Reason: "evaluated before SetSymbols",
	}
}

func (p *Concat[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	if !p.assigned {
		return parse.SuccessData[parse.FltrPtr, N]{}, p.uninitialized()
	}
	return concatEval(p.children, index, filteredStep(ctx))
}

func (p *Concat[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	if !p.assigned {
		return parse.SuccessData[parse.StreamPtr, N]{}, p.uninitialized()
	}
	return concatEval(p.children, index, rawStep(ctx))
}

func (p *Concat[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	if !p.assigned {
		return parse.SuccessData[int, N]{}, p.uninitialized()
	}
	return concatEval(p.children, pointer, bytesStep(ctx))
}

func (p *Concat[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	if !writeRule(w, visited, p.name, childNames(p.children, " ")) {
		return
	}
	for _, child := range p.children {
		child.WriteGrammar(w, visited)
	}
}
