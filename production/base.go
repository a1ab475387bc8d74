package production

import (
	"fmt"
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// symbol carries the name and log configuration every combinator has.
type symbol struct {
	name string
	log  parse.LogSpec
}

func (s *symbol) Name() string { return s.name }

// SetLog attaches a level and label for structured log events emitted
// while this production evaluates.
func (s *symbol) SetLog(level parse.LogLevel, label string) {
	s.log = parse.LogSpec{Level: level, Label: label}
}

func (s *symbol) LogSpec() parse.LogSpec { return s.log }

// stepFn evaluates a child production at an index in one of the three
// modes; the combinator loops below are generic over it.
type stepFn[I any, T parse.TokenKind[T], N parse.NodeKind[N]] func(p parse.Production[T, N], index I) (parse.SuccessData[I, N], error)

func filteredStep[T parse.TokenKind[T], N parse.NodeKind[N]](ctx *parse.Context[T, N]) stepFn[parse.FltrPtr, T, N] {
	return func(p parse.Production[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
		return ctx.Parse(p, index)
	}
}

func rawStep[T parse.TokenKind[T], N parse.NodeKind[N]](ctx *parse.Context[T, N]) stepFn[parse.StreamPtr, T, N] {
	return func(p parse.Production[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
		return ctx.ParseRaw(p, index)
	}
}

func bytesStep[T parse.TokenKind[T], N parse.NodeKind[N]](ctx *parse.Context[T, N]) stepFn[int, T, N] {
	return func(p parse.Production[T, N], pointer int) (parse.SuccessData[int, N], error) {
		return ctx.ParseBytes(p, pointer)
	}
}

// concatEval derives every child in order from the cumulative position
// and concatenates their node output.
func concatEval[I any, T parse.TokenKind[T], N parse.NodeKind[N]](children []parse.Production[T, N], index I, step stepFn[I, T, N]) (parse.SuccessData[I, N], error) {
	var nodes []*parse.ASTNode[N]
	moved := index
	for _, child := range children {
		data, err := step(child, moved)
		if err != nil {
			return parse.SuccessData[I, N]{}, err
		}
		moved = data.ConsumedIndex
		nodes = append(nodes, data.Children...)
	}
	return parse.Success(moved, nodes), nil
}

// unionEval tries each alternative at the same position and returns the
// first success. Failed alternatives feed the deepest-failure tracker
// through their terminals; the union itself reports a plain no-match.
func unionEval[I any, T parse.TokenKind[T], N parse.NodeKind[N]](children []parse.Production[T, N], index I, step stepFn[I, T, N]) (parse.SuccessData[I, N], error) {
	for _, child := range children {
		data, err := step(child, index)
		if err == nil {
			return data, nil
		}
		if parse.IsFatal(err) {
			return parse.SuccessData[I, N]{}, err
		}
	}
	return parse.SuccessData[I, N]{}, parse.ErrNoMatch
}

// listEval repeats the symbol greedily. An iteration that consumes
// nothing terminates the loop; fewer than min successes is a no-match.
func listEval[I comparable, T parse.TokenKind[T], N parse.NodeKind[N]](sym parse.Production[T, N], index I, min int, step stepFn[I, T, N]) (parse.SuccessData[I, N], error) {
	var nodes []*parse.ASTNode[N]
	moved := index
	count := 0
	for {
		data, err := step(sym, moved)
		if err != nil {
			if parse.IsFatal(err) {
				return parse.SuccessData[I, N]{}, err
			}
			break
		}
		nodes = append(nodes, data.Children...)
		count++
		if data.ConsumedIndex == moved {
			break
		}
		moved = data.ConsumedIndex
	}
	if count < min {
		return parse.SuccessData[I, N]{}, parse.ErrNoMatch
	}
	return parse.Success(moved, nodes), nil
}

// separatedEval alternates element and separator starting with element.
// inclusive forbids a trailing separator: after a separator whose
// following element fails, the list rewinds to just past the last
// element. Non-inclusive lists keep the trailing separator.
func separatedEval[I comparable, T parse.TokenKind[T], N parse.NodeKind[N]](element, separator parse.Production[T, N], inclusive bool, index I, step stepFn[I, T, N]) (parse.SuccessData[I, N], error) {
	first, err := step(element, index)
	if err != nil {
		return parse.SuccessData[I, N]{}, err
	}
	var nodes []*parse.ASTNode[N]
	nodes = append(nodes, first.Children...)
	moved := first.ConsumedIndex
	for {
		sepData, err := step(separator, moved)
		if err != nil {
			if parse.IsFatal(err) {
				return parse.SuccessData[I, N]{}, err
			}
			break
		}
		elemData, err := step(element, sepData.ConsumedIndex)
		if err != nil {
			if parse.IsFatal(err) {
				return parse.SuccessData[I, N]{}, err
			}
			if !inclusive {
				nodes = append(nodes, sepData.Children...)
				moved = sepData.ConsumedIndex
			}
			break
		}
		nodes = append(nodes, sepData.Children...)
		nodes = append(nodes, elemData.Children...)
		if elemData.ConsumedIndex == moved {
			break
		}
		moved = elemData.ConsumedIndex
	}
	return parse.Success(moved, nodes), nil
}

// writeRule emits "name : body ;" once per name.
func writeRule(w io.Writer, visited map[string]bool, name, body string) bool {
	if visited[name] {
		return false
	}
	visited[name] = true
	fmt.Fprintf(w, "%s\n     : %s\n     ;\n\n", name, body)
	return true
}

func childNames[T parse.TokenKind[T], N parse.NodeKind[N]](children []parse.Production[T, N], sep string) string {
	out := ""
	for i, child := range children {
		if i > 0 {
			out += sep
		}
		out += child.Name()
	}
	return out
}
