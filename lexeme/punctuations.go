package lexeme

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dhamidi/parsekit/parse"
)

// Punctuations matches the longest literal from a fixed set of strings,
// so "<=" wins over "<" regardless of declaration order. The literals
// are stored in a byte trie walked once per attempt.
type Punctuations[T parse.TokenKind[T]] struct {
	logSpec
	tree   *fieldTree[T]
	fields []Field[T]
}

// Punctuation is one literal/token pair for NewPunctuations.
type Punctuation[T any] struct {
	Value string
	Token T
}

func NewPunctuations[T parse.TokenKind[T]](fields []Punctuation[T]) (*Punctuations[T], error) {
	p := &Punctuations[T]{tree: newFieldTree[T]()}
	for _, f := range fields {
		if f.Value == "" {
			return nil, fmt.Errorf("%w: empty literal", ErrInvalidPattern)
		}
		if err := p.tree.insert([]byte(f.Value), f.Token); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePunctuation, f.Value)
		}
		p.fields = append(p.fields, Field[T]{Token: f.Token, Pattern: strconv.Quote(f.Value)})
	}
	return p, nil
}

func (p *Punctuations[T]) Consume(code *parse.Code, pointer int, _ []parse.Lex[T], _ *StateStack) (parse.Lex[T], bool, bool) {
	token, n, ok := p.tree.find(code.Value[pointer:])
	if !ok {
		return parse.Lex[T]{}, false, false
	}
	return parse.Lex[T]{Token: token, Start: pointer, End: pointer + n}, false, true
}

func (p *Punctuations[T]) Fields() []Field[T] { return p.fields }

// fieldTree is a byte trie. Nodes keep their children sorted for binary
// search; find remembers the deepest token passed on the walk so a
// failed longer path still yields the longest matched literal.
type fieldTree[T any] struct {
	token    *T
	children []fieldEdge[T]
}

type fieldEdge[T any] struct {
	b    byte
	node *fieldTree[T]
}

func newFieldTree[T any]() *fieldTree[T] {
	return &fieldTree[T]{}
}

func (t *fieldTree[T]) insert(value []byte, token T) error {
	node := t
	for _, b := range value {
		i := sort.Search(len(node.children), func(j int) bool { return node.children[j].b >= b })
		if i == len(node.children) || node.children[i].b != b {
			child := newFieldTree[T]()
			node.children = append(node.children, fieldEdge[T]{})
			copy(node.children[i+1:], node.children[i:])
			node.children[i] = fieldEdge[T]{b: b, node: child}
			node = child
			continue
		}
		node = node.children[i].node
	}
	if node.token != nil {
		return ErrDuplicatePunctuation
	}
	node.token = &token
	return nil
}

func (t *fieldTree[T]) find(code []byte) (T, int, bool) {
	node := t
	var bestToken *T
	bestLen := 0
	for i := 0; i < len(code); i++ {
		j := sort.Search(len(node.children), func(k int) bool { return node.children[k].b >= code[i] })
		if j == len(node.children) || node.children[j].b != code[i] {
			break
		}
		node = node.children[j].node
		if node.token != nil {
			bestToken = node.token
			bestLen = i + 1
		}
	}
	if bestToken == nil {
		var zero T
		return zero, 0, false
	}
	return *bestToken, bestLen, true
}
