package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// SeparatedList alternates element and separator, starting with
// element. At least one element is required.
//
// Inclusive lists must not end on a trailing separator: when the
// element after a separator fails, the list rewinds to just past the
// last successful element. Non-inclusive lists keep the trailing
// separator.
type SeparatedList[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	element   parse.Production[T, N]
	separator parse.Production[T, N]
	inclusive bool
}

func NewSeparatedList[T parse.TokenKind[T], N parse.NodeKind[N]](element, separator parse.Production[T, N], inclusive bool) *SeparatedList[T, N] {
	name := element.Name() + " (" + separator.Name() + " " + element.Name() + ")*"
	if !inclusive {
		name += " (" + separator.Name() + ")?"
	}
	return &SeparatedList[T, N]{
		symbol:    symbol{name: name},
		element:   element,
		separator: separator,
		inclusive: inclusive,
	}
}

func (p *SeparatedList[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	return separatedEval(p.element, p.separator, p.inclusive, index, filteredStep(ctx))
}

func (p *SeparatedList[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	return separatedEval(p.element, p.separator, p.inclusive, index, rawStep(ctx))
}

func (p *SeparatedList[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	return separatedEval(p.element, p.separator, p.inclusive, pointer, bytesStep(ctx))
}

func (p *SeparatedList[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	p.element.WriteGrammar(w, visited)
	p.separator.WriteGrammar(w, visited)
}
