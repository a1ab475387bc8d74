package lexeme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dhamidi/parsekit/parse"
)

// Pattern matches an anchored regular expression at the current offset
// and emits one lex of the given kind.
type Pattern[T parse.TokenKind[T]] struct {
	logSpec
	token T
	re    *regexp.Regexp
}

// NewPattern compiles the pattern anchored at the match offset. The
// expression must not match the empty string; a zero-width matcher
// would stall the tokenizer loop.
func NewPattern[T parse.TokenKind[T]](token T, pattern string) (*Pattern[T], error) {
	anchored := `\A(?:` + strings.TrimPrefix(pattern, "^") + `)`
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	if re.MatchString("") {
		return nil, fmt.Errorf("%w: %q must not match the empty string", ErrInvalidPattern, pattern)
	}
	return &Pattern[T]{token: token, re: re}, nil
}

func (p *Pattern[T]) Consume(code *parse.Code, pointer int, _ []parse.Lex[T], _ *StateStack) (parse.Lex[T], bool, bool) {
	loc := p.re.FindIndex(code.Value[pointer:])
	if loc == nil || loc[1] == 0 {
		return parse.Lex[T]{}, false, false
	}
	return parse.Lex[T]{Token: p.token, Start: pointer, End: pointer + loc[1]}, false, true
}

func (p *Pattern[T]) Fields() []Field[T] {
	return []Field[T]{{Token: p.token, Pattern: "/" + p.re.String() + "/"}}
}
