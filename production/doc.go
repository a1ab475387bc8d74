// Package production implements the combinators a grammar is composed
// of: terminals over tokens or raw bytes, concatenation and ordered
// alternation, repetition and separated lists, suffix chaining,
// lookahead, node wrapping and the non-structural escape.
//
// Productions are shareable handles: build each one once, reference it
// from as many parents as needed, and close grammar cycles through a
// deferred Concat or Union whose symbols are assigned after the
// referencing productions exist. Evaluation always goes through the
// parse context, which memoizes every (production, position) pair and
// turns re-entry into a controlled recursion fault; raw-view
// evaluations inside NonStructural scopes are the exception and bypass
// both.
package production
