package production

import (
	"fmt"
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// TokenField matches exactly one token of the given kind. With a node
// kind it emits a leaf covering the lex; without, it consumes silently.
type TokenField[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	token  T
	node   *N
}

func NewTokenField[T parse.TokenKind[T], N parse.NodeKind[N]](token T, node N) *TokenField[T, N] {
	return &TokenField[T, N]{
		symbol: symbol{name: fmt.Sprintf("[&%v; %v]", token, node)},
		token:  token,
		node:   &node,
	}
}

// NewHiddenTokenField consumes the token without contributing a node.
func NewHiddenTokenField[T parse.TokenKind[T], N parse.NodeKind[N]](token T) *TokenField[T, N] {
	return &TokenField[T, N]{
		symbol: symbol{name: fmt.Sprintf("[&%v;]", token)},
		token:  token,
	}
}

func (p *TokenField[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	lex := ctx.Stream.At(index)
	if lex.Token != p.token {
		ctx.RecordMismatch(p.token.String(), lex.Start)
		return parse.SuccessData[parse.FltrPtr, N]{}, parse.ErrNoMatch
	}
	if p.node == nil {
		return parse.HiddenSuccess[parse.FltrPtr, N](index + 1), nil
	}
	return parse.TreeSuccess(index+1, parse.Leaf(*p.node, lex.Start, lex.End)), nil
}

func (p *TokenField[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	lex := ctx.Stream.Raw(index)
	if lex.Token != p.token {
		ctx.RecordMismatch(p.token.String(), lex.Start)
		return parse.SuccessData[parse.StreamPtr, N]{}, parse.ErrNoMatch
	}
	if p.node == nil {
		return parse.HiddenSuccess[parse.StreamPtr, N](index + 1), nil
	}
	return parse.TreeSuccess(index+1, parse.Leaf(*p.node, lex.Start, lex.End)), nil
}

func (p *TokenField[T, N]) ParseBytes(*parse.Context[T, N], int) (parse.SuccessData[int, N], error) {
	return parse.SuccessData[int, N]{}, &parse.ConfigurationError{
		Kind:   parse.ConfigWrongMode,
		Symbol: p.name,
		Reason: "token terminals cannot run under a lexerless parser",
	}
}

func (p *TokenField[T, N]) WriteGrammar(io.Writer, map[string]bool) {}

// TokenMapping is one entry of a TokenFieldSet: the token to match and
// the node kind to attach, or nil to hide the token.
type TokenMapping[T any, N any] struct {
	Token T
	Node  *N
}

// TokenFieldSet matches any one token from a set, attaching the node
// kind associated with the matched token. Used for operator sets that
// carry semantic tags.
type TokenFieldSet[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
	set map[T]*N
}

func NewTokenFieldSet[T parse.TokenKind[T], N parse.NodeKind[N]](mappings []TokenMapping[T, N]) *TokenFieldSet[T, N] {
	set := make(map[T]*N, len(mappings))
	name := ""
	for i, m := range mappings {
		set[m.Token] = m.Node
		if i > 0 {
			name += "|"
		}
		name += fmt.Sprintf("[&%v]", m.Token)
	}
	return &TokenFieldSet[T, N]{symbol: symbol{name: name}, set: set}
}

// Mapped is a convenience constructor for a visible TokenMapping.
func Mapped[T any, N any](token T, node N) TokenMapping[T, N] {
	return TokenMapping[T, N]{Token: token, Node: &node}
}

// HiddenMapped is a convenience constructor for a hidden TokenMapping.
func HiddenMapped[T any, N any](token T) TokenMapping[T, N] {
	return TokenMapping[T, N]{Token: token}
}

func (p *TokenFieldSet[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	lex := ctx.Stream.At(index)
	node, ok := p.set[lex.Token]
	if !ok {
		for token := range p.set {
			ctx.RecordMismatch(token.String(), lex.Start)
		}
		return parse.SuccessData[parse.FltrPtr, N]{}, parse.ErrNoMatch
	}
	if node == nil {
		return parse.HiddenSuccess[parse.FltrPtr, N](index + 1), nil
	}
	return parse.TreeSuccess(index+1, parse.Leaf(*node, lex.Start, lex.End)), nil
}

func (p *TokenFieldSet[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	lex := ctx.Stream.Raw(index)
	node, ok := p.set[lex.Token]
	if !ok {
		for token := range p.set {
			ctx.RecordMismatch(token.String(), lex.Start)
		}
		return parse.SuccessData[parse.StreamPtr, N]{}, parse.ErrNoMatch
	}
	if node == nil {
		return parse.HiddenSuccess[parse.StreamPtr, N](index + 1), nil
	}
	return parse.TreeSuccess(index+1, parse.Leaf(*node, lex.Start, lex.End)), nil
}

func (p *TokenFieldSet[T, N]) ParseBytes(*parse.Context[T, N], int) (parse.SuccessData[int, N], error) {
	return parse.SuccessData[int, N]{}, &parse.ConfigurationError{
		Kind:   parse.ConfigWrongMode,
		Symbol: p.name,
		Reason: "token terminals cannot run under a lexerless parser",
	}
}

func (p *TokenFieldSet[T, N]) WriteGrammar(io.Writer, map[string]bool) {}

// EOFProd matches the end-of-input sentinel without advancing.
type EOFProd[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
}

func NewEOFProd[T parse.TokenKind[T], N parse.NodeKind[N]]() *EOFProd[T, N] {
	return &EOFProd[T, N]{symbol: symbol{name: "EOF"}}
}

func (p *EOFProd[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	if ctx.Stream.IsEOF(index) {
		return parse.HiddenSuccess[parse.FltrPtr, N](index), nil
	}
	ctx.RecordMismatch("EOF", ctx.Stream.At(index).Start)
	return parse.SuccessData[parse.FltrPtr, N]{}, parse.ErrNoMatch
}

func (p *EOFProd[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	if ctx.Stream.IsRawEOF(index) {
		return parse.HiddenSuccess[parse.StreamPtr, N](index), nil
	}
	ctx.RecordMismatch("EOF", ctx.Stream.Raw(index).Start)
	return parse.SuccessData[parse.StreamPtr, N]{}, parse.ErrNoMatch
}

func (p *EOFProd[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	if pointer >= ctx.Code.Len() {
		return parse.HiddenSuccess[int, N](pointer), nil
	}
	ctx.RecordMismatch("EOF", pointer)
	return parse.SuccessData[int, N]{}, parse.ErrNoMatch
}

func (p *EOFProd[T, N]) WriteGrammar(io.Writer, map[string]bool) {}

// NullProd matches the empty derivation and emits a null leaf.
type NullProd[T parse.TokenKind[T], N parse.NodeKind[N]] struct {
	symbol
}

func NewNullProd[T parse.TokenKind[T], N parse.NodeKind[N]]() *NullProd[T, N] {
	return &NullProd[T, N]{symbol: symbol{name: "ε"}}
}

func (p *NullProd[T, N]) ParseFiltered(ctx *parse.Context[T, N], index parse.FltrPtr) (parse.SuccessData[parse.FltrPtr, N], error) {
	return parse.TreeSuccess(index, parse.NullLeaf[N](ctx.Stream.At(index).Start)), nil
}

func (p *NullProd[T, N]) ParseRaw(ctx *parse.Context[T, N], index parse.StreamPtr) (parse.SuccessData[parse.StreamPtr, N], error) {
	return parse.TreeSuccess(index, parse.NullLeaf[N](ctx.Stream.Raw(index).Start)), nil
}

func (p *NullProd[T, N]) ParseBytes(ctx *parse.Context[T, N], pointer int) (parse.SuccessData[int, N], error) {
	return parse.TreeSuccess(pointer, parse.NullLeaf[N](pointer)), nil
}

func (p *NullProd[T, N]) WriteGrammar(io.Writer, map[string]bool) {}
