package production

import (
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// Suffix pairs a suffix production with the node kind that wraps the
// combined head+suffix derivation.
type Suffix[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	Production parse.Production[T, N]
	Node       N
}

// Suffixes parses its head once, then tries each suffix alternative in
// order. The first suffix to match wraps the concatenation of the
// head's and the suffix's output in a single node spanning both. When
// no suffix matches, an optional Suffixes returns the head's output
// unwrapped; otherwise the whole production fails.
//
// This is the shape of E -> X Y1 | X Y2 | ... | X, parsing X only once.
type Suffixes[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	head     parse.Production[T, N]
	optional bool
	suffixes []Suffix[T, N]
	assigned bool
}

func NewSuffixes[T parse.TokenKind[T], N parse.NodeKind[N]](name string, head parse.Production[T, N], optional bool, suffixes ...Suffix[T, N]) *Suffixes[T, N] {
	return &Suffixes[T, N]{
		symbol:   symbol{name: name},
		head:     head,
		optional: optional,
		suffixes: suffixes,
		assigned: true,
	}
}

// InitSuffixes creates a deferred Suffixes whose alternatives are
// assigned later with SetSuffixes.
func InitSuffixes[T parse.TokenKind[T], N parse.NodeKind[N]](name string, head parse.Production[T, N], optional bool) *Suffixes[T, N] {
	return &Suffixes[T, N]{symbol: symbol{name: name}, head: head, optional: optional}
}

func (p *Suffixes[T, N]) SetSuffixes(suffixes ...Suffix[T, N]) error {
	if p.assigned {
		return &parse.ConfigurationError{
			Kind:   parse.ConfigUninitializedProduction,
			Symbol: p.name,
			Reason: "suffixes are already assigned",
		}
	}
	p.suffixes = suffixes
	p.assigned = true
	return nil
}

func (p *Suffixes[T, N]) uninitialized() error {
	return &parse.ConfigurationError{
		Kind:   parse.ConfigUninitializedProduction,
		Symbol: p.name,
		Reason: "evaluated before SetSuffixes",
	}
}

// wrap joins head and suffix children under a node covering [start, end).
func (p *Suffixes[T, N]) wrap(node N, start, end int, head, tail []*parse.ASTNode[N]) *parse.ASTNode[N] {
	children := make([]*parse.ASTNode[N], 0, len(head)+len(tail))
	children = append(children, head...)
	children = append(children, tail...)
	return parse.NewASTNode(node, start, end, children)
}

func (p *Suffixes[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	if !p.assigned {
		return parse.SuccessData[parse.FltrPtr, N]{}, p.uninitialized()
	}
	headData, err := ctx.Parse(p.head, index)
	if err != nil {
		return parse.SuccessData[parse.FltrPtr, N]{}, err
	}
	for _, suffix := range p.suffixes {
		tailData, err := ctx.Parse(suffix.Production, headData.ConsumedIndex)
		if err != nil {
			if parse.IsFatal(err) {
				return parse.SuccessData[parse.FltrPtr, N]{}, err
			}
			continue
		}
		start := ctx.Stream.At(index).Start
		end := ctx.Stream.At(tailData.ConsumedIndex).Start
		tree := p.wrap(suffix.Node, start, end, headData.Children, tailData.Children)
		return parse.TreeSuccess(tailData.ConsumedIndex, tree), nil
	}
	if p.optional {
		return headData, nil
	}
	return parse.SuccessData[parse.FltrPtr, N]{}, parse.ErrNoMatch
}

func (p *Suffixes[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	if !p.assigned {
		return parse.SuccessData[parse.StreamPtr, N]{}, p.uninitialized()
	}
	headData, err := ctx.ParseRaw(p.head, index)
	if err != nil {
		return parse.SuccessData[parse.StreamPtr, N]{}, err
	}
	for _, suffix := range p.suffixes {
		tailData, err := ctx.ParseRaw(suffix.Production, headData.ConsumedIndex)
		if err != nil {
			if parse.IsFatal(err) {
				return parse.SuccessData[parse.StreamPtr, N]{}, err
			}
			continue
		}
		start := ctx.Stream.Raw(index).Start
		end := ctx.Stream.Raw(tailData.ConsumedIndex).Start
		tree := p.wrap(suffix.Node, start, end, headData.Children, tailData.Children)
		return parse.TreeSuccess(tailData.ConsumedIndex, tree), nil
	}
	if p.optional {
		return headData, nil
	}
	return parse.SuccessData[parse.StreamPtr, N]{}, parse.ErrNoMatch
}

func (p *Suffixes[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	if !p.assigned {
		return parse.SuccessData[int, N]{}, p.uninitialized()
	}
	headData, err := ctx.ParseBytes(p.head, pointer)
	if err != nil {
		return parse.SuccessData[int, N]{}, err
	}
	for _, suffix := range p.suffixes {
		tailData, err := ctx.ParseBytes(suffix.Production, headData.ConsumedIndex)
		if err != nil {
			if parse.IsFatal(err) {
				return parse.SuccessData[int, N]{}, err
			}
			continue
		}
		tree := p.wrap(suffix.Node, pointer, tailData.ConsumedIndex, headData.Children, tailData.Children)
		return parse.TreeSuccess(tailData.ConsumedIndex, tree), nil
	}
	if p.optional {
		return headData, nil
	}
	return parse.SuccessData[int, N]{}, parse.ErrNoMatch
}

func (p *Suffixes[T, N]) WriteGrammar(w io.Writer, visited map[string]bool) {
	body := ""
	for i, suffix := range p.suffixes {
		if i > 0 {
			body += " | "
		}
		body += "[" + p.head.Name() + " " + suffix.Production.Name() + "; @" + suffix.Node.String() + "]"
	}
	if p.optional {
		body += " | " + p.head.Name()
	}
	if !writeRule(w, visited, p.name, body) {
		return
	}
	p.head.WriteGrammar(w, visited)
	for _, suffix := range p.suffixes {
		suffix.Production.WriteGrammar(w, visited)
	}
}
