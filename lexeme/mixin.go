package lexeme

import "github.com/dhamidi/parsekit/parse"

// StateMixin runs an inner matcher and, on success, applies the stack
// action registered for the produced token kind. Actions drive the
// CombinedTokenizer between lexical states; an action's discard flag
// consumes the matched range without emitting the lex.
type StateMixin[T parse.TokenKind[T]] struct {
	logSpec
	inner   Lexeme[T]
	actions map[T]Action
}

// StateAction pairs a token kind with the stack action it triggers.
type StateAction[T any] struct {
	Token  T
	Action Action
}

func NewStateMixin[T parse.TokenKind[T]](inner Lexeme[T], actions []StateAction[T]) *StateMixin[T] {
	m := &StateMixin[T]{inner: inner, actions: make(map[T]Action, len(actions))}
	for _, a := range actions {
		m.actions[a.Token] = a.Action
	}
	return m
}

func (m *StateMixin[T]) Consume(code *parse.Code, pointer int, emitted []parse.Lex[T], stack *StateStack) (parse.Lex[T], bool, bool) {
	lex, discard, ok := m.inner.Consume(code, pointer, emitted, stack)
	if !ok {
		return lex, discard, false
	}
	if action, found := m.actions[lex.Token]; found {
		discard = applyAction(stack, action) || discard
	}
	return lex, discard, true
}

func (m *StateMixin[T]) Fields() []Field[T] { return m.inner.Fields() }

// ThunkStateMixin computes the stack action with a function instead of
// a fixed table.
type ThunkStateMixin[T parse.TokenKind[T]] struct {
	logSpec
	inner Lexeme[T]
	thunk func(lex parse.Lex[T], code []byte, emitted []parse.Lex[T]) Action
}

func NewThunkStateMixin[T parse.TokenKind[T]](inner Lexeme[T], thunk func(parse.Lex[T], []byte, []parse.Lex[T]) Action) *ThunkStateMixin[T] {
	return &ThunkStateMixin[T]{inner: inner, thunk: thunk}
}

func (m *ThunkStateMixin[T]) Consume(code *parse.Code, pointer int, emitted []parse.Lex[T], stack *StateStack) (parse.Lex[T], bool, bool) {
	lex, discard, ok := m.inner.Consume(code, pointer, emitted, stack)
	if !ok {
		return lex, discard, false
	}
	discard = applyAction(stack, m.thunk(lex, code.Value, emitted)) || discard
	return lex, discard, true
}

func (m *ThunkStateMixin[T]) Fields() []Field[T] { return m.inner.Fields() }
