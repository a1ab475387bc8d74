package parse

import "fmt"

// TokenKind is implemented by user-defined token kind types. The type
// parameter is the implementing type itself:
//
//	type Token int
//	func (t Token) EOF() Token          { return TokenEOF }
//	func (t Token) IsStructural() bool  { return t != TokenSpace }
//	func (t Token) String() string      { ... }
//
// EOF returns the sentinel kind appended at the end of every token
// stream. IsStructural reports whether the token participates in the
// grammar; non-structural tokens (whitespace, line breaks) are hidden
// from the parser's view unless a NonStructural scope reveals them.
type TokenKind[T any] interface {
	comparable
	EOF() T
	IsStructural() bool
	fmt.Stringer
}

// NodeKind is implemented by user-defined AST node kind types. Null
// returns the placeholder kind used for empty derivations.
type NodeKind[N any] interface {
	comparable
	Null() N
	fmt.Stringer
}

// Lex is one element of the tokenized stream: a token kind paired with
// the byte range it covers. Start and End are offsets into the input;
// a successful tokenization is contiguous and ends in a synthetic
// zero-width EOF lex.
type Lex[T any] struct {
	Token T
	Start int
	End   int
}

func (l Lex[T]) String() string {
	return fmt.Sprintf("(%v %d %d)", l.Token, l.Start, l.End)
}
