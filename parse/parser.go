package parse

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Tokenization is what a DefaultParser needs from package lexeme: the
// conversion of input bytes into an ordered lex stream ending in EOF.
type Tokenization[T TokenKind[T]] interface {
	Tokenize(code *Code) ([]Lex[T], error)
}

// GrammarWriter is implemented by tokenizers that can render their
// lexeme fragments; Grammar output includes them when available.
type GrammarWriter interface {
	WriteGrammar(w io.Writer)
}

// DefaultParser drives a grammar over a tokenized input: the tokenizer
// produces the lex stream, the structural view hides non-structural
// lexes, and the root production is evaluated from position zero.
type DefaultParser[T TokenKind[T], N NodeKind[N]] struct {
	tokenizer Tokenization[T]
	root      Production[T, N]
	debug     map[string]Production[T, N]
	sink      LogSink
}

func NewDefaultParser[T TokenKind[T], N NodeKind[N]](tokenizer Tokenization[T], root Production[T, N]) *DefaultParser[T, N] {
	return &DefaultParser[T, N]{
		tokenizer: tokenizer,
		root:      root,
		debug:     make(map[string]Production[T, N]),
		sink:      CommonLogSink("parsekit.parse"),
	}
}

// SetLogSink replaces the commonlog-backed default sink.
func (p *DefaultParser[T, N]) SetLogSink(sink LogSink) { p.sink = sink }

// Tokenize runs only the lexical phase.
func (p *DefaultParser[T, N]) Tokenize(input []byte) ([]Lex[T], error) {
	return p.tokenizer.Tokenize(NewCode(input))
}

// Parse tokenizes the input and evaluates the root production on the
// structural view from position zero.
func (p *DefaultParser[T, N]) Parse(input []byte) ([]*ASTNode[N], error) {
	_, trees, err := p.TokenizeAndParse(input)
	return trees, err
}

// TokenizeAndParse is Parse, returning the lex stream as well.
func (p *DefaultParser[T, N]) TokenizeAndParse(input []byte) ([]Lex[T], []*ASTNode[N], error) {
	code := NewCode(input)
	lexes, err := p.tokenizer.Tokenize(code)
	if err != nil {
		return nil, nil, err
	}
	stream := NewTokenStream(lexes)
	ctx := NewContext[T, N](code, stream, p.sink)
	data, err := ctx.Parse(p.root, 0)
	if err != nil {
		return lexes, nil, parseErrorFor(ctx, err)
	}
	return lexes, data.Children, nil
}

// AddDebugProduction registers a production for ad-hoc partial parsing
// with DebugProductionAt. The primary parse path is unaffected.
func (p *DefaultParser[T, N]) AddDebugProduction(name string, prod Production[T, N]) {
	p.debug[name] = prod
}

// DebugProductionAt tokenizes the input and evaluates the registered
// production from the first structural token at or past the byte
// offset, with the full cache and log infrastructure active.
func (p *DefaultParser[T, N]) DebugProductionAt(name string, input []byte, pointer int) ([]*ASTNode[N], error) {
	prod, ok := p.debug[name]
	if !ok {
		return nil, fmt.Errorf("production %q is not registered for debugging", name)
	}
	code := NewCode(input)
	lexes, err := p.tokenizer.Tokenize(code)
	if err != nil {
		return nil, err
	}
	stream := NewTokenStream(lexes)
	ctx := NewContext[T, N](code, stream, p.sink)
	data, err := ctx.Parse(prod, stream.FltrPtrAtPointer(pointer))
	if err != nil {
		return nil, parseErrorFor(ctx, err)
	}
	return data.Children, nil
}

// Grammar renders the production rules followed by the tokenizer's
// lexeme fragments.
func (p *DefaultParser[T, N]) Grammar() string {
	var sb strings.Builder
	p.root.WriteGrammar(&sb, make(map[string]bool))
	if gw, ok := p.tokenizer.(GrammarWriter); ok {
		gw.WriteGrammar(&sb)
	}
	return sb.String()
}

// LexerlessParser evaluates a grammar of byte-mode terminals directly
// over the input, without a tokenizer.
type LexerlessParser[T TokenKind[T], N NodeKind[N]] struct {
	root  Production[T, N]
	debug map[string]Production[T, N]
	sink  LogSink
}

func NewLexerlessParser[T TokenKind[T], N NodeKind[N]](root Production[T, N]) *LexerlessParser[T, N] {
	return &LexerlessParser[T, N]{
		root:  root,
		debug: make(map[string]Production[T, N]),
		sink:  CommonLogSink("parsekit.parse"),
	}
}

func (p *LexerlessParser[T, N]) SetLogSink(sink LogSink) { p.sink = sink }

func (p *LexerlessParser[T, N]) Parse(input []byte) ([]*ASTNode[N], error) {
	code := NewCode(input)
	ctx := NewContext[T, N](code, nil, p.sink)
	data, err := ctx.ParseBytes(p.root, 0)
	if err != nil {
		return nil, parseErrorFor(ctx, err)
	}
	return data.Children, nil
}

func (p *LexerlessParser[T, N]) AddDebugProduction(name string, prod Production[T, N]) {
	p.debug[name] = prod
}

func (p *LexerlessParser[T, N]) DebugProductionAt(name string, input []byte, pointer int) ([]*ASTNode[N], error) {
	prod, ok := p.debug[name]
	if !ok {
		return nil, fmt.Errorf("production %q is not registered for debugging", name)
	}
	code := NewCode(input)
	ctx := NewContext[T, N](code, nil, p.sink)
	data, err := ctx.ParseBytes(prod, pointer)
	if err != nil {
		return nil, parseErrorFor(ctx, err)
	}
	return data.Children, nil
}

func (p *LexerlessParser[T, N]) Grammar() string {
	var sb strings.Builder
	p.root.WriteGrammar(&sb, make(map[string]bool))
	return sb.String()
}

// parseErrorFor converts an engine error into the user-visible error
// value: configuration faults pass through, validation failures carry
// their own position and message, and an unmatched root becomes the
// deepest-failure report.
func parseErrorFor[T TokenKind[T], N NodeKind[N]](ctx *Context[T, N], err error) error {
	var cfg *ConfigurationError
	if errors.As(err, &cfg) {
		return cfg
	}
	var val *ValidationError
	if errors.As(err, &val) {
		return &ParseError{
			Kind:     ErrValidation,
			Position: val.Position,
			Where:    ctx.Code.Position(val.Position),
			Message:  val.Message,
		}
	}

	pointer, expected := ctx.DeepestFailure()
	if pointer < 0 {
		pointer = 0
	}
	kind := ErrUnexpectedToken
	eos := ctx.Code.Len()
	if ctx.Stream != nil {
		eos = ctx.Stream.EOSPointer()
	}
	message := ""
	if pointer >= eos {
		kind = ErrUnexpectedEOF
		message = "Unexpected end of file."
	} else if ctx.Stream != nil {
		if lex, ok := lexAtPointer(ctx.Stream, pointer); ok {
			message = fmt.Sprintf("Unexpected '%s'.", ctx.Code.Value[lex.Start:lex.End])
		}
	} else {
		message = fmt.Sprintf("Unexpected '%s'.", ctx.Code.Value[pointer:pointer+1])
	}
	return &ParseError{
		Kind:     kind,
		Position: pointer,
		Where:    ctx.Code.Position(pointer),
		Expected: expected,
		Message:  message,
	}
}

func lexAtPointer[T TokenKind[T]](stream *TokenStream[T], pointer int) (Lex[T], bool) {
	lexes := stream.Lexes()
	i := sort.Search(len(lexes), func(j int) bool { return lexes[j].End > pointer })
	if i >= len(lexes) {
		return Lex[T]{}, false
	}
	return lexes[i], true
}
