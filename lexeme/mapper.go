package lexeme

import (
	"fmt"

	"github.com/dhamidi/parsekit/parse"
)

// Mapper runs an inner matcher and replaces the produced kind when the
// matched text equals one of the override strings. The usual setup is
// keyword recognition layered over an identifier pattern.
type Mapper[T parse.TokenKind[T]] struct {
	logSpec
	inner  Lexeme[T]
	fields map[string]T
}

// Mapping is one text/token override for NewMapper.
type Mapping[T any] struct {
	Value string
	Token T
}

func NewMapper[T parse.TokenKind[T]](inner Lexeme[T], fields []Mapping[T]) (*Mapper[T], error) {
	m := &Mapper[T]{inner: inner, fields: make(map[string]T, len(fields))}
	for _, f := range fields {
		if _, ok := m.fields[f.Value]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMapping, f.Value)
		}
		m.fields[f.Value] = f.Token
	}
	return m, nil
}

func (m *Mapper[T]) Consume(code *parse.Code, pointer int, emitted []parse.Lex[T], stack *StateStack) (parse.Lex[T], bool, bool) {
	lex, discard, ok := m.inner.Consume(code, pointer, emitted, stack)
	if !ok {
		return lex, discard, false
	}
	if token, found := m.fields[string(code.Value[lex.Start:lex.End])]; found {
		lex.Token = token
	}
	return lex, discard, true
}

func (m *Mapper[T]) Fields() []Field[T] {
	var fields []Field[T]
	for value, token := range m.fields {
		fields = append(fields, Field[T]{Token: token, Pattern: fmt.Sprintf("%q", value)})
	}
	return append(fields, m.inner.Fields()...)
}

// ThunkMapper is a Mapper whose override is computed by a function; the
// inner kind is kept when the function reports no replacement.
type ThunkMapper[T parse.TokenKind[T]] struct {
	logSpec
	inner Lexeme[T]
	thunk func(lex parse.Lex[T], code []byte, emitted []parse.Lex[T]) (T, bool)
}

func NewThunkMapper[T parse.TokenKind[T]](inner Lexeme[T], thunk func(parse.Lex[T], []byte, []parse.Lex[T]) (T, bool)) *ThunkMapper[T] {
	return &ThunkMapper[T]{inner: inner, thunk: thunk}
}

func (m *ThunkMapper[T]) Consume(code *parse.Code, pointer int, emitted []parse.Lex[T], stack *StateStack) (parse.Lex[T], bool, bool) {
	lex, discard, ok := m.inner.Consume(code, pointer, emitted, stack)
	if !ok {
		return lex, discard, false
	}
	if token, replace := m.thunk(lex, code.Value, emitted); replace {
		lex.Token = token
	}
	return lex, discard, true
}

func (m *ThunkMapper[T]) Fields() []Field[T] { return m.inner.Fields() }
