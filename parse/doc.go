// Package parse contains the core engine of parsekit: the token and node
// kind contracts, lexes and AST nodes, the filtered token stream, the
// per-parse memo cache with recursion detection, structured log events,
// and the parser drivers.
//
// A grammar is a DAG of production values (package production) evaluated
// over a token stream produced by a tokenizer (package lexeme). Grammars
// are built once and are read-only afterwards; every call to Parse owns a
// fresh cache and error tracker, so a single grammar may serve concurrent
// parses.
package parse
