package lexeme

import (
	"errors"
	"testing"

	"github.com/dhamidi/parsekit/parse"
)

func lexEqual(t *testing.T, got, want []parse.Lex[token]) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lexes %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("lex %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizerExpression(t *testing.T) {
	tokenizer := NewTokenizer[token](space(), identifier(), number(), expressionPunctuations())

	lexes, err := tokenizer.Tokenize(parse.NewCode([]byte("a+b+c=d")))
	if err != nil {
		t.Fatal(err)
	}
	lexEqual(t, lexes, []parse.Lex[token]{
		{Token: tID, Start: 0, End: 1},
		{Token: tAdd, Start: 1, End: 2},
		{Token: tID, Start: 2, End: 3},
		{Token: tAdd, Start: 3, End: 4},
		{Token: tID, Start: 4, End: 5},
		{Token: tAssign, Start: 5, End: 6},
		{Token: tID, Start: 6, End: 7},
		{Token: tEOF, Start: 7, End: 7},
	})
}

func TestTokenizerLongestPunctuation(t *testing.T) {
	tokenizer := NewTokenizer[token](space(), identifier(), expressionPunctuations())

	lexes, err := tokenizer.Tokenize(parse.NewCode([]byte("a<=b<c")))
	if err != nil {
		t.Fatal(err)
	}
	lexEqual(t, lexes, []parse.Lex[token]{
		{Token: tID, Start: 0, End: 1},
		{Token: tLTE, Start: 1, End: 3},
		{Token: tID, Start: 3, End: 4},
		{Token: tLT, Start: 4, End: 5},
		{Token: tID, Start: 5, End: 6},
		{Token: tEOF, Start: 6, End: 6},
	})
}

func TestTokenizerKeywordMapping(t *testing.T) {
	mapped, err := NewMapper[token](identifier(), []Mapping[token]{
		{Value: "if", Token: tIf},
		{Value: "true", Token: tTrue},
	})
	if err != nil {
		t.Fatal(err)
	}
	tokenizer := NewTokenizer[token](space(), mapped, expressionPunctuations())

	lexes, err := tokenizer.Tokenize(parse.NewCode([]byte("if(true){}")))
	if err != nil {
		t.Fatal(err)
	}
	lexEqual(t, lexes, []parse.Lex[token]{
		{Token: tIf, Start: 0, End: 2},
		{Token: tOpenParen, Start: 2, End: 3},
		{Token: tTrue, Start: 3, End: 7},
		{Token: tCloseParen, Start: 7, End: 8},
		{Token: tOpenBrace, Start: 8, End: 9},
		{Token: tCloseBrace, Start: 9, End: 10},
		{Token: tEOF, Start: 10, End: 10},
	})
}

func TestTokenizerUnexpectedCharacter(t *testing.T) {
	tokenizer := NewTokenizer[token](identifier())

	_, err := tokenizer.Tokenize(parse.NewCode([]byte("ab#cd")))
	var tokErr *parse.TokenizationError
	if !errors.As(err, &tokErr) {
		t.Fatalf("got %v, want TokenizationError", err)
	}
	if tokErr.Position != 2 {
		t.Errorf("Position = %d, want 2", tokErr.Position)
	}
	if tokErr.Kind != parse.ErrUnexpectedCharacter {
		t.Errorf("Kind = %v, want unexpected character", tokErr.Kind)
	}
}

func TestTokenizerEmptyInput(t *testing.T) {
	tokenizer := NewTokenizer[token](identifier())

	lexes, err := tokenizer.Tokenize(parse.NewCode(nil))
	if err != nil {
		t.Fatal(err)
	}
	lexEqual(t, lexes, []parse.Lex[token]{{Token: tEOF, Start: 0, End: 0}})
}

func TestMiddlewareRegexDisambiguation(t *testing.T) {
	regexLiteral := mustPattern(tRegexLiteral, `/([^\\/\r\n\[]|\\.|\[[^]]+\])+/`)
	guarded := NewMiddleware[token](regexLiteral, func(_ []byte, emitted []parse.Lex[token]) bool {
		if len(emitted) == 0 {
			return true
		}
		switch emitted[len(emitted)-1].Token {
		case tID, tNumber:
			return false
		}
		return true
	})
	// The guarded regex literal must come before punctuations so "/"
	// is tried as a regex before division.
	tokenizer := NewTokenizer[token](identifier(), number(), guarded, expressionPunctuations())

	division, err := tokenizer.Tokenize(parse.NewCode([]byte("2/xy/6")))
	if err != nil {
		t.Fatal(err)
	}
	lexEqual(t, division, []parse.Lex[token]{
		{Token: tNumber, Start: 0, End: 1},
		{Token: tDiv, Start: 1, End: 2},
		{Token: tID, Start: 2, End: 4},
		{Token: tDiv, Start: 4, End: 5},
		{Token: tNumber, Start: 5, End: 6},
		{Token: tEOF, Start: 6, End: 6},
	})

	regex, err := tokenizer.Tokenize(parse.NewCode([]byte("a=/xy/")))
	if err != nil {
		t.Fatal(err)
	}
	lexEqual(t, regex, []parse.Lex[token]{
		{Token: tID, Start: 0, End: 1},
		{Token: tAssign, Start: 1, End: 2},
		{Token: tRegexLiteral, Start: 2, End: 6},
		{Token: tEOF, Start: 6, End: 6},
	})
}

func TestThunkMapper(t *testing.T) {
	comment := mustPattern(tComment, `/\*(.|\n)*?\*/`)
	variants := NewThunkMapper[token](comment, func(lex parse.Lex[token], code []byte, _ []parse.Lex[token]) (token, bool) {
		for _, b := range code[lex.Start:lex.End] {
			if b == '\n' {
				return tMultilineComment, true
			}
		}
		return tEOF, false
	})
	tokenizer := NewTokenizer[token](variants)

	inline, err := tokenizer.Tokenize(parse.NewCode([]byte("/*one line*/")))
	if err != nil {
		t.Fatal(err)
	}
	if inline[0].Token != tComment {
		t.Errorf("inline comment token = %v, want Comment", inline[0].Token)
	}

	multi, err := tokenizer.Tokenize(parse.NewCode([]byte("/*first\nsecond*/")))
	if err != nil {
		t.Fatal(err)
	}
	if multi[0].Token != tMultilineComment {
		t.Errorf("multiline comment token = %v, want MultilineComment", multi[0].Token)
	}
}

func TestConstants(t *testing.T) {
	constants := NewConstants([]Punctuation[token]{
		{Value: "<", Token: tLT},
		{Value: "<=", Token: tLTE},
	})
	tokenizer := NewTokenizer[token](identifier(), constants)

	lexes, err := tokenizer.Tokenize(parse.NewCode([]byte("a<=b")))
	if err != nil {
		t.Fatal(err)
	}
	if lexes[1].Token != tLTE || lexes[1].End != 3 {
		t.Errorf("got %v, want LTE ending at 3", lexes[1])
	}
}

func TestPatternRejectsNullable(t *testing.T) {
	if _, err := NewPattern(tID, `a*`); err == nil {
		t.Error("NewPattern(a*) succeeded, want error")
	}
	if _, err := NewPattern(tID, `[`); err == nil {
		t.Error("NewPattern([) succeeded, want error")
	}
}

func TestPunctuationsRejectDuplicates(t *testing.T) {
	_, err := NewPunctuations([]Punctuation[token]{
		{Value: "+", Token: tAdd},
		{Value: "+", Token: tSub},
	})
	if !errors.Is(err, ErrDuplicatePunctuation) {
		t.Errorf("got %v, want ErrDuplicatePunctuation", err)
	}
}

func TestMapperRejectsDuplicates(t *testing.T) {
	_, err := NewMapper[token](identifier(), []Mapping[token]{
		{Value: "if", Token: tIf},
		{Value: "if", Token: tTrue},
	})
	if !errors.Is(err, ErrDuplicateMapping) {
		t.Errorf("got %v, want ErrDuplicateMapping", err)
	}
}
