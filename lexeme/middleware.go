package lexeme

import "github.com/dhamidi/parsekit/parse"

// Middleware gates an inner matcher on a predicate over the lexes
// emitted so far. The canonical use is the regex-versus-division
// ambiguity: a regex literal is only attempted when the previous token
// cannot end an expression.
type Middleware[T parse.TokenKind[T]] struct {
	logSpec
	inner     Lexeme[T]
	predicate func(code []byte, emitted []parse.Lex[T]) bool
}

func NewMiddleware[T parse.TokenKind[T]](inner Lexeme[T], predicate func([]byte, []parse.Lex[T]) bool) *Middleware[T] {
	return &Middleware[T]{inner: inner, predicate: predicate}
}

func (m *Middleware[T]) Consume(code *parse.Code, pointer int, emitted []parse.Lex[T], stack *StateStack) (parse.Lex[T], bool, bool) {
	if !m.predicate(code.Value, emitted) {
		return parse.Lex[T]{}, false, false
	}
	return m.inner.Consume(code, pointer, emitted, stack)
}

func (m *Middleware[T]) Fields() []Field[T] { return m.inner.Fields() }
