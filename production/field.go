package production

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/dhamidi/parsekit/parse"
)

// wrongTokenMode is the fault shared by byte-mode terminals evaluated
// against a token stream.
func wrongTokenMode[I any, N parse.NodeKind[N]](name string) (parse.SuccessData[I, N], error) {
	return parse.SuccessData[I, N]{}, &parse.ConfigurationError{
		Kind:   parse.ConfigWrongMode,
		Symbol: name,
		Reason: "byte terminals cannot run against a token stream",
	}
}

// RegexField matches an anchored regular expression directly over the
// input bytes of a lexerless parse.
type RegexField[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	re   *regexp.Regexp
	node *N
}

func NewRegexField[T parse.TokenKind[T], N parse.NodeKind[N]](pattern string, node N) (*RegexField[T, N], error) {
	p, err := newRegexField[T, N](pattern)
	if err != nil {
		return nil, err
	}
	p.node = &node
	return p, nil
}

func NewHiddenRegexField[T parse.TokenKind[T], N parse.NodeKind[N]](pattern string) (*RegexField[T, N], error) {
	return newRegexField[T, N](pattern)
}

func newRegexField[T parse.TokenKind[T], N parse.NodeKind[N]](pattern string) (*RegexField[T, N], error) {
	anchored := `\A(?:` + strings.TrimPrefix(pattern, "^") + `)`
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return &RegexField[T, N]{symbol: symbol{name: "/" + pattern + "/"}, re: re}, nil
}

func (p *RegexField[T, N]) ParseFiltered(*parse.Context[T, N], parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	return wrongTokenMode[parse.FltrPtr, N](p.name)
}

func (p *RegexField[T, N]) ParseRaw(*parse.Context[T, N], parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	return wrongTokenMode[parse.StreamPtr, N](p.name)
}

func (p *RegexField[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	loc := p.re.FindIndex(ctx.Code.Value[pointer:])
	if loc == nil || loc[1] == 0 {
		ctx.RecordMismatch(p.name, pointer)
		return parse.SuccessData[int, N]{}, parse.ErrNoMatch
	}
	end := pointer + loc[1]
	if p.node == nil {
		return parse.HiddenSuccess[int, N](end), nil
	}
	return parse.TreeSuccess(end, parse.Leaf(*p.node, pointer, end)), nil
}

func (p *RegexField[T, N]) WriteGrammar(io.Writer, map[string]bool) {}

// ConstantField matches one fixed string over the input bytes.
type ConstantField[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	value []byte
	node  *N
}

func NewConstantField[T parse.TokenKind[T], N parse.NodeKind[N]](value string, node N) *ConstantField[T, N] {
	return &ConstantField[T, N]{symbol: symbol{name: fmt.Sprintf("%q", value)}, value: []byte(value), node: &node}
}

func NewHiddenConstantField[T parse.TokenKind[T], N parse.NodeKind[N]](value string) *ConstantField[T, N] {
	return &ConstantField[T, N]{symbol: symbol{name: fmt.Sprintf("%q", value)}, value: []byte(value)}
}

func (p *ConstantField[T, N]) ParseFiltered(*parse.Context[T, N], parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	return wrongTokenMode[parse.FltrPtr, N](p.name)
}

func (p *ConstantField[T, N]) ParseRaw(*parse.Context[T, N], parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	return wrongTokenMode[parse.StreamPtr, N](p.name)
}

func (p *ConstantField[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	if !bytes.HasPrefix(ctx.Code.Value[pointer:], p.value) {
		ctx.RecordMismatch(p.name, pointer)
		return parse.SuccessData[int, N]{}, parse.ErrNoMatch
	}
	end := pointer + len(p.value)
	if p.node == nil {
		return parse.HiddenSuccess[int, N](end), nil
	}
	return parse.TreeSuccess(end, parse.Leaf(*p.node, pointer, end)), nil
}

func (p *ConstantField[T, N]) WriteGrammar(io.Writer, map[string]bool) {}

// FieldMapping is one literal/node pair for PunctuationsField and
// ConstantFieldSet; a nil Node hides the matched literal.
type FieldMapping[N any] struct {
	Value string
	Node  *N
}

func MappedField[N any](value string, node N) FieldMapping[N] {
	return FieldMapping[N]{Value: value, Node: &node}
}

func HiddenField[N any](value string) FieldMapping[N] {
	return FieldMapping[N]{Value: value}
}

// PunctuationsField matches the longest literal from a fixed set over
// the input bytes, attaching the node kind of the matched literal.
type PunctuationsField[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	fields []FieldMapping[N]
}

func NewPunctuationsField[T parse.TokenKind[T], N parse.NodeKind[N]](fields []FieldMapping[N]) (*PunctuationsField[T, N], error) {
	seen := make(map[string]bool, len(fields))
	sorted := make([]FieldMapping[N], len(fields))
	copy(sorted, fields)
	for _, f := range sorted {
		if f.Value == "" {
			return nil, fmt.Errorf("empty punctuation literal")
		}
		if seen[f.Value] {
			return nil, fmt.Errorf("duplicate punctuation %q", f.Value)
		}
		seen[f.Value] = true
	}
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i].Value) > len(sorted[j].Value) })
	name := ""
	for i, f := range sorted {
		if i > 0 {
			name += "|"
		}
		name += fmt.Sprintf("%q", f.Value)
	}
	return &PunctuationsField[T, N]{symbol: symbol{name: name}, fields: sorted}, nil
}

func (p *PunctuationsField[T, N]) ParseFiltered(*parse.Context[T, N], parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	return wrongTokenMode[parse.FltrPtr, N](p.name)
}

func (p *PunctuationsField[T, N]) ParseRaw(*parse.Context[T, N], parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	return wrongTokenMode[parse.StreamPtr, N](p.name)
}

func (p *PunctuationsField[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	rest := ctx.Code.Value[pointer:]
	for _, f := range p.fields {
		if bytes.HasPrefix(rest, []byte(f.Value)) {
			end := pointer + len(f.Value)
			if f.Node == nil {
				return parse.HiddenSuccess[int, N](end), nil
			}
			return parse.TreeSuccess(end, parse.Leaf(*f.Node, pointer, end)), nil
		}
	}
	ctx.RecordMismatch(p.name, pointer)
	return parse.SuccessData[int, N]{}, parse.ErrNoMatch
}

func (p *PunctuationsField[T, N]) WriteGrammar(io.Writer, map[string]bool) {}

// ConstantFieldSet matches any of a set of fixed strings, longest
// first.
type ConstantFieldSet[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	fields []FieldMapping[N]
}

func NewConstantFieldSet[T parse.TokenKind[T], N parse.NodeKind[N]](fields []FieldMapping[N]) *ConstantFieldSet[T, N] {
	sorted := make([]FieldMapping[N], len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i].Value) > len(sorted[j].Value) })
	name := ""
	for i, f := range sorted {
		if i > 0 {
			name += "|"
		}
		name += fmt.Sprintf("%q", f.Value)
	}
	return &ConstantFieldSet[T, N]{symbol: symbol{name: name}, fields: sorted}
}

func (p *ConstantFieldSet[T, N]) ParseFiltered(*parse.Context[T, N], parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	return wrongTokenMode[parse.FltrPtr, N](p.name)
}

func (p *ConstantFieldSet[T, N]) ParseRaw(*parse.Context[T, N], parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	return wrongTokenMode[parse.StreamPtr, N](p.name)
}

func (p *ConstantFieldSet[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	rest := ctx.Code.Value[pointer:]
	for _, f := range p.fields {
		if len(f.Value) > 0 && bytes.HasPrefix(rest, []byte(f.Value)) {
			end := pointer + len(f.Value)
			if f.Node == nil {
				return parse.HiddenSuccess[int, N](end), nil
			}
			return parse.TreeSuccess(end, parse.Leaf(*f.Node, pointer, end)), nil
		}
	}
	ctx.RecordMismatch(p.name, pointer)
	return parse.SuccessData[int, N]{}, parse.ErrNoMatch
}

func (p *ConstantFieldSet[T, N]) WriteGrammar(io.Writer, map[string]bool) {}
