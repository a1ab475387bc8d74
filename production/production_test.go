package production_test

// The tests in this package drive grammars over hand-built token
// streams through a stub tokenization, so combinator behavior is
// observed without a real lexer in the loop.

import (
	"github.com/dhamidi/parsekit/parse"
	"github.com/dhamidi/parsekit/production"
)

type token int

const (
	tEOF token = iota
	tA
	tB
	tC
	tD
	tSpace
	tComma
)

func (t token) EOF() token { return tEOF }

func (t token) IsStructural() bool { return t != tSpace }

var tokenNames = map[token]string{
	tEOF:   "EOF",
	tA:     "A",
	tB:     "B",
	tC:     "C",
	tD:     "D",
	tSpace: "Space",
	tComma: "Comma",
}

func (t token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "Unknown"
}

type node int

const (
	nNull node = iota
	nA
	nB
	nC
	nD
	nSpace
	nWrap
	nMark
)

func (n node) Null() node { return nNull }

var nodeNames = map[node]string{
	nNull:  "NULL",
	nA:     "A",
	nB:     "B",
	nC:     "C",
	nD:     "D",
	nSpace: "Space",
	nWrap:  "Wrap",
	nMark:  "Mark",
}

func (n node) String() string {
	if name, ok := nodeNames[n]; ok {
		return name
	}
	return "Unknown"
}

type prod = parse.Production[token, node]

// stubTokenizer turns a token list into a contiguous lex stream, one
// byte per token, ending in EOF.
type stubTokenizer struct {
	tokens []token
}

func (s *stubTokenizer) Tokenize(code *parse.Code) ([]parse.Lex[token], error) {
	lexes := make([]parse.Lex[token], 0, len(s.tokens)+1)
	for i, t := range s.tokens {
		lexes = append(lexes, parse.Lex[token]{Token: t, Start: i, End: i + 1})
	}
	lexes = append(lexes, parse.Lex[token]{Token: tEOF, Start: len(s.tokens), End: len(s.tokens)})
	return lexes, nil
}

// input is the matching source text for a stub stream: one letter per
// token.
func input(tokens ...token) []byte {
	out := make([]byte, len(tokens))
	for i, t := range tokens {
		switch t {
		case tA:
			out[i] = 'a'
		case tB:
			out[i] = 'b'
		case tC:
			out[i] = 'c'
		case tD:
			out[i] = 'd'
		case tSpace:
			out[i] = ' '
		case tComma:
			out[i] = ','
		}
	}
	return out
}

func newParser(root prod, tokens ...token) (*parse.DefaultParser[token, node], []byte) {
	parser := parse.NewDefaultParser[token, node](&stubTokenizer{tokens: tokens}, root)
	parser.SetLogSink(nil)
	return parser, input(tokens...)
}

func field(t token, n node) prod {
	return production.NewTokenField[token, node](t, n)
}

func hide(t token) prod {
	return production.NewHiddenTokenField[token, node](t)
}

func eofProd() prod {
	return production.NewEOFProd[token, node]()
}
