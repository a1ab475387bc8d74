package lexeme

import (
	"errors"

	"github.com/dhamidi/parsekit/parse"
)

// Matcher-construction errors.
var (
	ErrInvalidPattern       = errors.New("invalid pattern")
	ErrDuplicatePunctuation = errors.New("duplicate punctuation")
	ErrDuplicateMapping     = errors.New("duplicate mapping")
)

// Lexeme is one matcher of a tokenizer. Consume inspects the input at
// pointer and reports whether it matched; on a match, lex covers the
// consumed range (lex.End > pointer) and discard suppresses emission of
// the lex while still advancing the offset. emitted is the read-only
// prefix of already produced lexes, and stack is the lexical state
// stack of the enclosing tokenizer.
type Lexeme[T parse.TokenKind[T]] interface {
	Consume(code *parse.Code, pointer int, emitted []parse.Lex[T], stack *StateStack) (lex parse.Lex[T], discard, ok bool)

	// Fields describes the matcher's token/pattern pairs for grammar
	// rendering.
	Fields() []Field[T]

	LogSpec() parse.LogSpec
}

// Field is one token/pattern pair in the rendered lexeme grammar.
type Field[T any] struct {
	Token   T
	Pattern string
}

// StateStack is the pushdown stack of lexical states owned by one
// tokenize call.
type StateStack struct {
	states []int
}

func (s *StateStack) Push(state int) {
	s.states = append(s.states, state)
}

func (s *StateStack) Pop() (int, bool) {
	if len(s.states) == 0 {
		return 0, false
	}
	top := s.states[len(s.states)-1]
	s.states = s.states[:len(s.states)-1]
	return top, true
}

// Switch replaces the top of the stack, pushing when empty.
func (s *StateStack) Switch(state int) {
	if len(s.states) == 0 {
		s.states = append(s.states, state)
		return
	}
	s.states[len(s.states)-1] = state
}

// Top returns the current state, or fallback for an empty stack.
func (s *StateStack) Top(fallback int) int {
	if len(s.states) == 0 {
		return fallback
	}
	return s.states[len(s.states)-1]
}

func (s *StateStack) Len() int { return len(s.states) }

// ActionKind enumerates the stack mutations a StateMixin can apply.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPush
	ActionPop
	ActionSwitch
)

// Action is a stack mutation paired with a discard flag; Discard
// suppresses emission of the lex that triggered the action.
type Action struct {
	Kind    ActionKind
	State   int
	Discard bool
}

func Push(state int, discard bool) Action {
	return Action{Kind: ActionPush, State: state, Discard: discard}
}

func Pop(discard bool) Action {
	return Action{Kind: ActionPop, Discard: discard}
}

func Switch(state int, discard bool) Action {
	return Action{Kind: ActionSwitch, State: state, Discard: discard}
}

func None(discard bool) Action {
	return Action{Kind: ActionNone, Discard: discard}
}

func applyAction(stack *StateStack, a Action) bool {
	switch a.Kind {
	case ActionPush:
		stack.Push(a.State)
	case ActionPop:
		stack.Pop()
	case ActionSwitch:
		stack.Switch(a.State)
	}
	return a.Discard
}

// logSpec is embedded by every matcher to carry its SetLog state.
type logSpec struct {
	log parse.LogSpec
}

// SetLog attaches a level and label for structured log events.
func (s *logSpec) SetLog(level parse.LogLevel, label string) {
	s.log = parse.LogSpec{Level: level, Label: label}
}

func (s *logSpec) LogSpec() parse.LogSpec { return s.log }
