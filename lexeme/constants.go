package lexeme

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/dhamidi/parsekit/parse"
)

// Constants matches one of a fixed set of string values, longest first.
// Unlike Punctuations it compares each candidate directly, which keeps
// it handy for small keyword sets without building a trie.
type Constants[T parse.TokenKind[T]] struct {
	logSpec
	values []Punctuation[T]
}

func NewConstants[T parse.TokenKind[T]](values []Punctuation[T]) *Constants[T] {
	sorted := make([]Punctuation[T], len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Value) > len(sorted[j].Value)
	})
	return &Constants[T]{values: sorted}
}

func (c *Constants[T]) Consume(code *parse.Code, pointer int, _ []parse.Lex[T], _ *StateStack) (parse.Lex[T], bool, bool) {
	rest := code.Value[pointer:]
	for _, v := range c.values {
		if len(v.Value) > 0 && bytes.HasPrefix(rest, []byte(v.Value)) {
			return parse.Lex[T]{Token: v.Token, Start: pointer, End: pointer + len(v.Value)}, false, true
		}
	}
	return parse.Lex[T]{}, false, false
}

func (c *Constants[T]) Fields() []Field[T] {
	fields := make([]Field[T], len(c.values))
	for i, v := range c.values {
		fields[i] = Field[T]{Token: v.Token, Pattern: strconv.Quote(v.Value)}
	}
	return fields
}
