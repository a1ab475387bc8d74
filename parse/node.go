package parse

import (
	"fmt"
	"strings"
)

// ASTNode is a node of the abstract syntax tree. Start and End are byte
// offsets into the input; a node's range contains the ranges of all its
// children and sibling ranges never overlap.
type ASTNode[N NodeKind[N]] struct {
	Node     N
	Start    int
	End      int
	Children []*ASTNode[N]
}

func NewASTNode[N NodeKind[N]](node N, start, end int, children []*ASTNode[N]) *ASTNode[N] {
	return &ASTNode[N]{Node: node, Start: start, End: end, Children: children}
}

// Leaf creates a childless node covering [start, end).
func Leaf[N NodeKind[N]](node N, start, end int) *ASTNode[N] {
	return &ASTNode[N]{Node: node, Start: start, End: end}
}

// NullLeaf creates a zero-width node with the null kind at pointer.
func NullLeaf[N NodeKind[N]](pointer int) *ASTNode[N] {
	var zero N
	return Leaf(zero.Null(), pointer, pointer)
}

// Find returns the first node in the tree (pre-order) satisfying p.
func (n *ASTNode[N]) Find(p func(*ASTNode[N]) bool) *ASTNode[N] {
	if p(n) {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(p); found != nil {
			return found
		}
	}
	return nil
}

// FindByKind returns the first node of the given kind, searching the
// whole subtree including n itself.
func (n *ASTNode[N]) FindByKind(kind N) *ASTNode[N] {
	return n.Find(func(t *ASTNode[N]) bool { return t.Node == kind })
}

// ListByKind collects every node of the given kind in pre-order.
func (n *ASTNode[N]) ListByKind(kind N) []*ASTNode[N] {
	var out []*ASTNode[N]
	n.Walk(func(t *ASTNode[N]) {
		if t.Node == kind {
			out = append(out, t)
		}
	})
	return out
}

// Child returns the first direct child of the given kind.
func (n *ASTNode[N]) Child(kind N) *ASTNode[N] {
	for _, child := range n.Children {
		if child.Node == kind {
			return child
		}
	}
	return nil
}

// Contains reports whether the subtree holds a node of the given kind.
func (n *ASTNode[N]) Contains(kind N) bool {
	return n.FindByKind(kind) != nil
}

// Walk visits the tree in pre-order.
func (n *ASTNode[N]) Walk(visit func(*ASTNode[N])) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Text returns the input slice covered by the node.
func (n *ASTNode[N]) Text(code *Code) string {
	return string(code.Value[n.Start:n.End])
}

// String renders the tree with one indented line per node:
//
//	Sum # 0-6
//	  Product # 0-1
//	    ID # 0-1
func (n *ASTNode[N]) String() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0)
	return sb.String()
}

func (n *ASTNode[N]) stringIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	fmt.Fprintf(sb, "%s # %d-%d\n", n.Node.String(), n.Start, n.End)
	for _, child := range n.Children {
		child.stringIndent(sb, indent+1)
	}
}
