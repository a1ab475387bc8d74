package lexeme

import (
	"fmt"
	"io"

	"github.com/dhamidi/parsekit/parse"
)

// Tokenizer is the single-state driver: matchers are trialed in
// declared order at the current offset and the first one to advance
// wins. There is no longest-match across matchers, so callers list the
// more specific patterns first.
type Tokenizer[T parse.TokenKind[T]] struct {
	lexemes []Lexeme[T]
	sink    parse.LogSink
}

func NewTokenizer[T parse.TokenKind[T]](lexemes ...Lexeme[T]) *Tokenizer[T] {
	return &Tokenizer[T]{lexemes: lexemes, sink: parse.CommonLogSink("parsekit.lexeme")}
}

// SetLogSink replaces the commonlog-backed default sink.
func (t *Tokenizer[T]) SetLogSink(sink parse.LogSink) { t.sink = sink }

func (t *Tokenizer[T]) Tokenize(code *parse.Code) ([]parse.Lex[T], error) {
	return tokenize(code, func(*StateStack) ([]Lexeme[T], error) { return t.lexemes, nil }, t.sink)
}

// WriteGrammar renders the matcher fragments.
func (t *Tokenizer[T]) WriteGrammar(w io.Writer) {
	fmt.Fprintln(w, "fragment {")
	writeFields(w, t.lexemes)
	fmt.Fprintln(w, "}")
}

// CombinedTokenizer owns a set of lexical states, each with its own
// matcher list, plus a stack initialized to the default state. Each
// step dispatches to the matcher list of the stack-top state; StateMixin
// actions mutate the stack.
type CombinedTokenizer[T parse.TokenKind[T]] struct {
	defaultState int
	states       map[int][]Lexeme[T]
	sink         parse.LogSink
}

func NewCombinedTokenizer[T parse.TokenKind[T]](defaultState int, lexemes ...Lexeme[T]) *CombinedTokenizer[T] {
	return &CombinedTokenizer[T]{
		defaultState: defaultState,
		states:       map[int][]Lexeme[T]{defaultState: lexemes},
		sink:         parse.CommonLogSink("parsekit.lexeme"),
	}
}

func (t *CombinedTokenizer[T]) AddState(state int, lexemes ...Lexeme[T]) {
	t.states[state] = lexemes
}

func (t *CombinedTokenizer[T]) SetLogSink(sink parse.LogSink) { t.sink = sink }

func (t *CombinedTokenizer[T]) Tokenize(code *parse.Code) ([]parse.Lex[T], error) {
	return tokenize(code, func(stack *StateStack) ([]Lexeme[T], error) {
		state := stack.Top(t.defaultState)
		lexemes, ok := t.states[state]
		if !ok {
			return nil, fmt.Errorf("tokenizer state %d is not defined", state)
		}
		return lexemes, nil
	}, t.sink)
}

func (t *CombinedTokenizer[T]) WriteGrammar(w io.Writer) {
	for state, lexemes := range t.states {
		fmt.Fprintf(w, "fragment state_%d {\n", state)
		writeFields(w, lexemes)
		fmt.Fprintln(w, "}")
	}
}

// tokenize is the loop shared by both drivers. The stack is local to
// this one call; the synthetic EOF lex terminates every success.
func tokenize[T parse.TokenKind[T]](code *parse.Code, current func(*StateStack) ([]Lexeme[T], error), sink parse.LogSink) ([]parse.Lex[T], error) {
	var emitted []parse.Lex[T]
	var stack StateStack
	pointer := 0

	for {
		if pointer == code.Len() {
			var zero T
			emitted = append(emitted, parse.Lex[T]{Token: zero.EOF(), Start: pointer, End: pointer})
			return emitted, nil
		}

		lexemes, err := current(&stack)
		if err != nil {
			return nil, err
		}

		advanced := false
		for _, lx := range lexemes {
			lex, discard, ok := lx.Consume(code, pointer, emitted, &stack)
			logLexeme(sink, lx.LogSpec(), code, pointer, lex, ok)
			if !ok || lex.End <= pointer {
				continue
			}
			if !discard {
				emitted = append(emitted, lex)
			}
			pointer = lex.End
			advanced = true
			break
		}
		if !advanced {
			return nil, &parse.TokenizationError{
				Kind:     parse.ErrUnexpectedCharacter,
				Position: pointer,
				Where:    code.Position(pointer),
			}
		}
	}
}

func logLexeme[T parse.TokenKind[T]](sink parse.LogSink, spec parse.LogSpec, code *parse.Code, pointer int, lex parse.Lex[T], ok bool) {
	if sink == nil || spec.Level == parse.LogNone {
		return
	}
	if ok && spec.Level >= parse.LogSuccess {
		sink(parse.LogEvent{
			Symbol:  spec.Label,
			Outcome: parse.OutcomeSuccess,
			Where:   code.Position(lex.Start),
			Start:   lex.Start,
			End:     lex.End,
			Message: fmt.Sprintf("Lexeme success for '%s': token %v from %s to %s.", spec.Label, lex.Token, code.Position(lex.Start), code.Position(lex.End)),
		})
	}
	if !ok && spec.Level >= parse.LogResult {
		sink(parse.LogEvent{
			Symbol:  spec.Label,
			Outcome: parse.OutcomeFailure,
			Where:   code.Position(pointer),
			Start:   pointer,
			End:     pointer,
			Message: fmt.Sprintf("Lexeme error for '%s': at %s.", spec.Label, code.Position(pointer)),
		})
	}
}

func writeFields[T parse.TokenKind[T]](w io.Writer, lexemes []Lexeme[T]) {
	for _, lx := range lexemes {
		for _, f := range lx.Fields() {
			fmt.Fprintf(w, "      %v : %s ,\n", f.Token, f.Pattern)
		}
	}
}
