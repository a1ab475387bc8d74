package production_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dhamidi/parsekit/parse"
	"github.com/dhamidi/parsekit/production"
)

func TestParseDeterminism(t *testing.T) {
	root := listGrammar()
	parser, text := newParser(root, tA, tComma, tA, tComma, tA)

	first, err := parser.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	second, err := parser.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if renderAll(first) != renderAll(second) {
		t.Errorf("two parses differ:\n%s\nvs\n%s", renderAll(first), renderAll(second))
	}
}

func listGrammar() prod {
	list := production.NewSeparatedList[token, node](field(tA, nA), hide(tComma), true)
	listNode := production.NewNode[token, node](list, nWrap)
	return production.NewConcat[token, node]("root", listNode, eofProd())
}

func renderAll(trees []*parse.ASTNode[node]) string {
	out := ""
	for _, tree := range trees {
		out += tree.String()
	}
	return out
}

func TestCacheEvaluatesOncePerPosition(t *testing.T) {
	// The shared production x appears as the first symbol of both
	// alternatives. Ordered choice evaluates the second alternative
	// at the same position after the first fails; the cache must
	// serve the repeat without re-running x.
	x := production.NewConcat[token, node]("x", field(tA, nA))
	x.SetLog(parse.LogSuccess, "x")
	first := production.NewConcat[token, node]("first", x, hide(tB))
	second := production.NewConcat[token, node]("second", x, hide(tC))
	union := production.NewUnion[token, node]("choice", first, second)
	root := production.NewConcat[token, node]("root", union, eofProd())

	parser, text := newParser(root, tA, tC)
	evaluations := 0
	parser.SetLogSink(func(e parse.LogEvent) {
		if e.Symbol == "x" && e.Outcome == parse.OutcomeSuccess {
			evaluations++
		}
	})

	if _, err := parser.Parse(text); err != nil {
		t.Fatal(err)
	}
	if evaluations != 1 {
		t.Errorf("x evaluated %d times at position 0, want 1", evaluations)
	}
}

func TestCacheHitsReturnIdenticalNodes(t *testing.T) {
	x := production.NewNode[token, node](
		production.NewConcat[token, node]("x", field(tA, nA)), nWrap)
	first := production.NewConcat[token, node]("first", x, hide(tB))
	second := production.NewConcat[token, node]("second", x, hide(tC))
	union := production.NewUnion[token, node]("choice", first, second)
	root := production.NewConcat[token, node]("root", union, eofProd())

	parser, text := newParser(root, tA, tC)
	trees, err := parser.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 1 || trees[0].Node != nWrap {
		t.Fatalf("got %v, want [Wrap]", trees)
	}
}

func TestDirectLeftRecursionFault(t *testing.T) {
	loop := production.InitConcat[token, node]("loop")
	if err := loop.SetSymbols(loop, field(tA, nA)); err != nil {
		t.Fatal(err)
	}
	parser, text := newParser(loop, tA)

	_, err := parser.Parse(text)
	var cfg *parse.ConfigurationError
	if !errors.As(err, &cfg) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
	if cfg.Kind != parse.ConfigUnboundedRecursion {
		t.Errorf("Kind = %v, want unbounded recursion", cfg.Kind)
	}
	if cfg.Symbol != "loop" {
		t.Errorf("Symbol = %q, want loop", cfg.Symbol)
	}
}

func TestIndirectLeftRecursionFault(t *testing.T) {
	outer := production.InitConcat[token, node]("outer")
	inner := production.NewConcat[token, node]("inner", outer)
	if err := outer.SetSymbols(inner, field(tA, nA)); err != nil {
		t.Fatal(err)
	}
	parser, text := newParser(outer, tA)

	var cfg *parse.ConfigurationError
	if _, err := parser.Parse(text); !errors.As(err, &cfg) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
}

func TestUninitializedProductionFault(t *testing.T) {
	deferred := production.InitConcat[token, node]("pending")
	root := production.NewConcat[token, node]("root", deferred, eofProd())
	parser, text := newParser(root, tA)

	_, err := parser.Parse(text)
	var cfg *parse.ConfigurationError
	if !errors.As(err, &cfg) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
	if cfg.Kind != parse.ConfigUninitializedProduction {
		t.Errorf("Kind = %v, want uninitialized production", cfg.Kind)
	}
}

func TestSetSymbolsTwiceFails(t *testing.T) {
	deferred := production.InitConcat[token, node]("pending")
	if err := deferred.SetSymbols(field(tA, nA)); err != nil {
		t.Fatal(err)
	}
	if err := deferred.SetSymbols(field(tB, nB)); err == nil {
		t.Error("second SetSymbols succeeded, want error")
	}
}

func TestValidatorAbortsParse(t *testing.T) {
	pair := production.NewConcat[token, node]("pair", field(tA, nA), field(tB, nB))
	validated := production.NewValidator[token, node](pair, func(children []*parse.ASTNode[node], code []byte) error {
		if string(code[children[0].Start:children[0].End]) == "a" {
			return fmt.Errorf("a is not allowed here")
		}
		return nil
	})
	// The union would normally try its second alternative, but a
	// validation failure is fatal, not a failed alternative.
	fallback := production.NewConcat[token, node]("fallback", hide(tA), hide(tB))
	union := production.NewUnion[token, node]("choice", validated, fallback)
	root := production.NewConcat[token, node]("root", union, eofProd())
	parser, text := newParser(root, tA, tB)

	_, err := parser.Parse(text)
	var parseErr *parse.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want ParseError", err)
	}
	if parseErr.Kind != parse.ErrValidation {
		t.Errorf("Kind = %v, want validation", parseErr.Kind)
	}
	if parseErr.Position != 0 {
		t.Errorf("Position = %d, want 0", parseErr.Position)
	}
}

func TestNonStructuralRevealsFilteredTokens(t *testing.T) {
	spaceField := field(tSpace, nSpace)
	gap := production.NewNonStructural[token, node](spaceField, false)
	root := production.NewConcat[token, node]("root", field(tA, nA), gap, field(tB, nB), eofProd())
	parser, text := newParser(root, tA, tSpace, tB)

	trees, err := parser.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 3 || trees[1].Node != nSpace {
		t.Fatalf("got %v, want [A Space B]", trees)
	}
	if trees[1].Start != 1 || trees[1].End != 2 {
		t.Errorf("space node spans %d-%d, want 1-2", trees[1].Start, trees[1].End)
	}
}

func TestNonStructuralFillRange(t *testing.T) {
	// With fillRange the child must consume the whole gap; a single
	// space production cannot cover two space tokens produced
	// separately.
	spaceField := hide(tSpace)
	gap := production.NewNonStructural[token, node](spaceField, true)
	root := production.NewConcat[token, node]("root", field(tA, nA), gap, field(tB, nB), eofProd())

	parser, text := newParser(root, tA, tSpace, tB)
	if _, err := parser.Parse(text); err != nil {
		t.Fatalf("single-space gap failed: %v", err)
	}

	parser, text = newParser(root, tA, tSpace, tSpace, tB)
	if _, err := parser.Parse(text); err == nil {
		t.Error("two-space gap satisfied fillRange with one space consumed, want failure")
	}
}

func TestWrongModeFault(t *testing.T) {
	root := production.NewConcat[token, node]("root", field(tA, nA))
	lexerless := parse.NewLexerlessParser[token, node](root)
	lexerless.SetLogSink(nil)

	_, err := lexerless.Parse([]byte("a"))
	var cfg *parse.ConfigurationError
	if !errors.As(err, &cfg) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
	if cfg.Kind != parse.ConfigWrongMode {
		t.Errorf("Kind = %v, want wrong parsing mode", cfg.Kind)
	}
}

func TestDebugProductionAt(t *testing.T) {
	pair := production.NewNode[token, node](
		production.NewConcat[token, node]("pair", field(tA, nA), field(tB, nB)), nWrap)
	root := production.NewConcat[token, node]("root", field(tC, nC), pair, eofProd())
	parser, text := newParser(root, tC, tA, tB)
	parser.AddDebugProduction("pair", pair)

	trees, err := parser.DebugProductionAt("pair", text, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 1 || trees[0].Node != nWrap || trees[0].Start != 1 || trees[0].End != 3 {
		t.Fatalf("got %v, want Wrap 1-3", trees)
	}

	if _, err := parser.DebugProductionAt("missing", text, 0); err == nil {
		t.Error("unregistered debug production succeeded, want error")
	}
}

func TestGrammarRendering(t *testing.T) {
	union := production.NewUnion[token, node]("value", field(tA, nA), field(tB, nB))
	root := production.NewConcat[token, node]("root", union, eofProd())
	parser, _ := newParser(root, tA)

	grammar := parser.Grammar()
	if grammar == "" {
		t.Fatal("empty grammar")
	}
	for _, want := range []string{"root", "value"} {
		if !containsLine(grammar, want) {
			t.Errorf("grammar output missing rule %q:\n%s", want, grammar)
		}
	}
}

func containsLine(s, prefix string) bool {
	for start := 0; start < len(s); {
		end := start
		for end < len(s) && s[end] != '\n' {
			end++
		}
		if len(s[start:end]) >= len(prefix) && s[start:start+len(prefix)] == prefix {
			return true
		}
		start = end + 1
	}
	return false
}
