package parse

import "io"

// SuccessData is the result of a production deriving input: the index
// just past the consumed region and the AST nodes contributed. Most
// combinators are transparent and pass through the concatenation of
// their children's nodes; Children is empty for hidden derivations.
type SuccessData[I any, N NodeKind[N]] struct {
	ConsumedIndex I
	Children      []*ASTNode[N]
}

// Success returns a result carrying children.
func Success[I any, N NodeKind[N]](consumed I, children []*ASTNode[N]) SuccessData[I, N] {
	return SuccessData[I, N]{ConsumedIndex: consumed, Children: children}
}

// HiddenSuccess returns a result with no nodes.
func HiddenSuccess[I any, N NodeKind[N]](consumed I) SuccessData[I, N] {
	return SuccessData[I, N]{ConsumedIndex: consumed}
}

// TreeSuccess returns a result carrying a single node.
func TreeSuccess[I any, N NodeKind[N]](consumed I, tree *ASTNode[N]) SuccessData[I, N] {
	return SuccessData[I, N]{ConsumedIndex: consumed, Children: []*ASTNode[N]{tree}}
}

// Range returns the byte range covered by the produced children, or
// ok=false when the derivation is hidden.
func (d SuccessData[I, N]) Range() (start, end int, ok bool) {
	if len(d.Children) == 0 {
		return 0, 0, false
	}
	return d.Children[0].Start, d.Children[len(d.Children)-1].End, true
}

// Production is one node of the grammar DAG. The same production value
// may be shared by several parents, including itself through a deferred
// concatenation; identity of the value is what the parse cache keys on.
//
// A production is evaluated in one of three modes: on the structural
// token view (ParseFiltered), on the raw token view inside NonStructural
// scopes (ParseRaw), or directly on input bytes under a LexerlessParser
// (ParseBytes). Failure to derive is reported as ErrNoMatch; any other
// error is a fault that aborts the parse.
//
// Children are never evaluated directly: combinators go through the
// Context, which caches every (production, position) pair and detects
// re-entry on the structural view and in byte mode. Raw-view
// evaluations inside NonStructural scopes are neither cached nor
// checked for re-entry.
type Production[T TokenKind[T], N NodeKind[N]] interface {
	// Name identifies the production in grammar output and log events.
	Name() string

	// LogSpec returns the logging configuration set with SetLog.
	LogSpec() LogSpec

	ParseFiltered(ctx *Context[T, N], index FltrPtr) (SuccessData[FltrPtr, N], error)
	ParseRaw(ctx *Context[T, N], index StreamPtr) (SuccessData[StreamPtr, N], error)
	ParseBytes(ctx *Context[T, N], pointer int) (SuccessData[int, N], error)

	// WriteGrammar renders the production rule in an EBNF-like form.
	// Implementations recurse into children once per name, using
	// visited to break grammar cycles.
	WriteGrammar(w io.Writer, visited map[string]bool)
}
