package lexeme

// Token vocabulary shared by the tests in this package.

type token int

const (
	tEOF token = iota
	tID
	tNumber
	tSpace
	tAdd
	tSub
	tMul
	tDiv
	tLT
	tLTE
	tGT
	tGTE
	tEQ
	tAssign
	tSemicolon
	tOpenBrace
	tCloseBrace
	tOpenParen
	tCloseParen
	tIf
	tTrue
	tRegexLiteral
	tTemplateTick
	tTemplateExprStart
	tTemplateString
	tComment
	tMultilineComment
)

func (t token) EOF() token { return tEOF }

func (t token) IsStructural() bool { return t != tSpace }

var tokenNames = map[token]string{
	tEOF:               "EOF",
	tID:                "ID",
	tNumber:            "Number",
	tSpace:             "Space",
	tAdd:               "Add",
	tSub:               "Sub",
	tMul:               "Mul",
	tDiv:               "Div",
	tLT:                "LT",
	tLTE:               "LTE",
	tGT:                "GT",
	tGTE:               "GTE",
	tEQ:                "EQ",
	tAssign:            "Assign",
	tSemicolon:         "Semicolon",
	tOpenBrace:         "OpenBrace",
	tCloseBrace:        "CloseBrace",
	tOpenParen:         "OpenParen",
	tCloseParen:        "CloseParen",
	tIf:                "If",
	tTrue:              "True",
	tRegexLiteral:      "RegexLiteral",
	tTemplateTick:      "TemplateTick",
	tTemplateExprStart: "TemplateExprStart",
	tTemplateString:    "TemplateString",
	tComment:           "Comment",
	tMultilineComment:  "MultilineComment",
}

func (t token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "Unknown"
}

func mustPattern(t token, pattern string) *Pattern[token] {
	p, err := NewPattern(t, pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func mustPunctuations(fields []Punctuation[token]) *Punctuations[token] {
	p, err := NewPunctuations(fields)
	if err != nil {
		panic(err)
	}
	return p
}

func identifier() *Pattern[token] {
	return mustPattern(tID, `[_$a-zA-Z][_$\w]*`)
}

func number() *Pattern[token] {
	return mustPattern(tNumber, `(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?`)
}

func space() *Pattern[token] {
	return mustPattern(tSpace, `[ \t]+`)
}

func expressionPunctuations() *Punctuations[token] {
	return mustPunctuations([]Punctuation[token]{
		{Value: "+", Token: tAdd},
		{Value: "-", Token: tSub},
		{Value: "*", Token: tMul},
		{Value: "/", Token: tDiv},
		{Value: "<", Token: tLT},
		{Value: "<=", Token: tLTE},
		{Value: ">", Token: tGT},
		{Value: ">=", Token: tGTE},
		{Value: "==", Token: tEQ},
		{Value: "=", Token: tAssign},
		{Value: "{", Token: tOpenBrace},
		{Value: "}", Token: tCloseBrace},
		{Value: "(", Token: tOpenParen},
		{Value: ")", Token: tCloseParen},
		{Value: ";", Token: tSemicolon},
	})
}
