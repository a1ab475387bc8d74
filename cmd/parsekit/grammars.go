package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/parsekit/examples/json"
	"github.com/dhamidi/parsekit/examples/jsexpr"
	"github.com/dhamidi/parsekit/langserver"
	"github.com/dhamidi/parsekit/parse"
)

// grammarRunner adapts one bundled grammar to the CLI: every command
// talks to the grammar through these closures so the generic token and
// node types stay out of the command code.
type grammarRunner struct {
	parseTrees func(input []byte) (string, error)
	tokens     func(input []byte) (string, error)
	grammar    func() string
	check      langserver.CheckFunc
}

func runnerFor(name string) (*grammarRunner, error) {
	switch name {
	case "jsexpr":
		return tokenizedRunner(jsexpr.NewParser()), nil
	case "jsexpr-arith":
		return tokenizedRunner(jsexpr.NewArithmeticParser()), nil
	case "json":
		return tokenizedRunner(json.NewParser()), nil
	case "json-lexerless":
		return lexerlessRunner(json.NewLexerlessParser()), nil
	}
	return nil, fmt.Errorf("unknown grammar %q", name)
}

func tokenizedRunner[T parse.TokenKind[T], N parse.NodeKind[N]](parser *parse.DefaultParser[T, N]) *grammarRunner {
	return &grammarRunner{
		parseTrees: func(input []byte) (string, error) {
			trees, err := parser.Parse(input)
			if err != nil {
				return "", err
			}
			return renderTrees(trees), nil
		},
		tokens: func(input []byte) (string, error) {
			lexes, err := parser.Tokenize(input)
			if err != nil {
				return "", err
			}
			return renderLexes(lexes), nil
		},
		grammar: parser.Grammar,
		check: func(input []byte) error {
			_, err := parser.Parse(input)
			return err
		},
	}
}

func lexerlessRunner[T parse.TokenKind[T], N parse.NodeKind[N]](parser *parse.LexerlessParser[T, N]) *grammarRunner {
	return &grammarRunner{
		parseTrees: func(input []byte) (string, error) {
			trees, err := parser.Parse(input)
			if err != nil {
				return "", err
			}
			return renderTrees(trees), nil
		},
		tokens: func(input []byte) (string, error) {
			return "", fmt.Errorf("a lexerless grammar has no token stream")
		},
		grammar: parser.Grammar,
		check: func(input []byte) error {
			_, err := parser.Parse(input)
			return err
		},
	}
}

func renderTrees[N parse.NodeKind[N]](trees []*parse.ASTNode[N]) string {
	var sb strings.Builder
	for _, tree := range trees {
		sb.WriteString(tree.String())
	}
	return sb.String()
}

func renderLexes[T parse.TokenKind[T]](lexes []parse.Lex[T]) string {
	var sb strings.Builder
	for _, lex := range lexes {
		fmt.Fprintf(&sb, "%v %d..%d\n", lex.Token, lex.Start, lex.End)
	}
	return sb.String()
}
