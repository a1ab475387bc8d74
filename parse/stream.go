package parse

import "sort"

// FltrPtr indexes the structural (filtered) view of a token stream.
type FltrPtr int

// StreamPtr indexes the raw, unfiltered token stream.
type StreamPtr int

// TokenStream is the tokenized input exposed to the parser in two views:
// the raw lex sequence and the structural view, which hides every lex
// whose kind reports IsStructural() == false. Both views are maintained
// so a NonStructural scope can reveal the hidden tokens to its child and
// translate the cursor back afterwards.
type TokenStream[T TokenKind[T]] struct {
	lexes    []Lex[T]
	filtered []StreamPtr
}

// NewTokenStream builds the structural view over lexes. The slice must
// end in the synthetic EOF lex produced by tokenization.
func NewTokenStream[T TokenKind[T]](lexes []Lex[T]) *TokenStream[T] {
	filtered := make([]StreamPtr, 0, len(lexes))
	for i, lex := range lexes {
		if lex.Token.IsStructural() {
			filtered = append(filtered, StreamPtr(i))
		}
	}
	return &TokenStream[T]{lexes: lexes, filtered: filtered}
}

// At returns the lex at a structural index. Out-of-range indices clamp
// to the final (EOF) lex.
func (s *TokenStream[T]) At(i FltrPtr) Lex[T] {
	if int(i) >= len(s.filtered) {
		return s.lexes[len(s.lexes)-1]
	}
	return s.lexes[s.filtered[i]]
}

// Raw returns the lex at a raw index, clamping like At.
func (s *TokenStream[T]) Raw(i StreamPtr) Lex[T] {
	if int(i) >= len(s.lexes) {
		return s.lexes[len(s.lexes)-1]
	}
	return s.lexes[i]
}

// Len is the number of structural tokens, including EOF.
func (s *TokenStream[T]) Len() int { return len(s.filtered) }

// RawLen is the total number of tokens, including EOF.
func (s *TokenStream[T]) RawLen() int { return len(s.lexes) }

// Lexes returns the raw stream.
func (s *TokenStream[T]) Lexes() []Lex[T] { return s.lexes }

func (s *TokenStream[T]) IsEOF(i FltrPtr) bool {
	lex := s.At(i)
	return lex.Token == lex.Token.EOF()
}

func (s *TokenStream[T]) IsRawEOF(i StreamPtr) bool {
	lex := s.Raw(i)
	return lex.Token == lex.Token.EOF()
}

// StreamPtr translates a structural index into its raw index.
func (s *TokenStream[T]) StreamPtr(i FltrPtr) StreamPtr {
	if int(i) >= len(s.filtered) {
		return StreamPtr(len(s.lexes) - 1)
	}
	return s.filtered[i]
}

// FltrPtrAtOrAfter returns the first structural index whose raw index is
// at or past i. Used to resume the structural view after a NonStructural
// scope consumed raw tokens.
func (s *TokenStream[T]) FltrPtrAtOrAfter(i StreamPtr) FltrPtr {
	n := sort.Search(len(s.filtered), func(j int) bool { return s.filtered[j] >= i })
	return FltrPtr(n)
}

// FltrPtrAtPointer returns the first structural index whose lex starts
// at or past the byte offset. Used to begin debug parses mid-input.
func (s *TokenStream[T]) FltrPtrAtPointer(pointer int) FltrPtr {
	n := sort.Search(len(s.filtered), func(j int) bool {
		return s.lexes[s.filtered[j]].Start >= pointer
	})
	return FltrPtr(n)
}

// EOSPointer is the byte offset of the end of input.
func (s *TokenStream[T]) EOSPointer() int {
	return s.lexes[len(s.lexes)-1].End
}
