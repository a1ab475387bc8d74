// Package lexeme implements the matchers a tokenizer is composed of and
// the two tokenizer drivers.
//
// A matcher inspects the input at an offset and either produces one lex
// or declines without consuming. Matchers are trialed in declared order,
// so more specific patterns must be listed before general ones. The
// CombinedTokenizer additionally keeps a stack of lexical states, driven
// by StateMixin actions, for syntax like template literals where the
// lexer has to switch modes mid-stream.
package lexeme
