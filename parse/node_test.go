package parse

import (
	"strings"
	"testing"
)

func testTree() *ASTNode[testNode] {
	return NewASTNode(nodeList, 0, 5, []*ASTNode[testNode]{
		Leaf(nodeID, 0, 1),
		NewASTNode(nodeList, 2, 5, []*ASTNode[testNode]{
			Leaf(nodeID, 2, 3),
			Leaf(nodeID, 4, 5),
		}),
	})
}

func TestNodeSearch(t *testing.T) {
	tree := testTree()

	if got := tree.FindByKind(nodeID); got == nil || got.Start != 0 {
		t.Fatalf("FindByKind(nodeID) = %v, want leaf at 0", got)
	}
	if got := len(tree.ListByKind(nodeID)); got != 3 {
		t.Errorf("ListByKind(nodeID) returned %d nodes, want 3", got)
	}
	if got := tree.Child(nodeList); got == nil || got.Start != 2 {
		t.Errorf("Child(nodeList) = %v, want inner list at 2", got)
	}
	if !tree.Contains(nodeID) {
		t.Error("Contains(nodeID) = false, want true")
	}
	if tree.Child(nodeNull) != nil {
		t.Error("Child(nodeNull) != nil, want nil")
	}
}

func TestNodeText(t *testing.T) {
	code := NewCode([]byte("a bc d"))
	leaf := Leaf(nodeID, 2, 4)
	if got := leaf.Text(code); got != "bc" {
		t.Errorf("Text() = %q, want %q", got, "bc")
	}
}

func TestNodeString(t *testing.T) {
	got := testTree().String()
	want := strings.Join([]string{
		"List # 0-5",
		"  ID # 0-1",
		"  List # 2-5",
		"    ID # 2-3",
		"    ID # 4-5",
		"",
	}, "\n")
	if got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestNullLeaf(t *testing.T) {
	leaf := NullLeaf[testNode](7)
	if leaf.Node != nodeNull || leaf.Start != 7 || leaf.End != 7 {
		t.Errorf("NullLeaf(7) = %v %d-%d, want NULL 7-7", leaf.Node, leaf.Start, leaf.End)
	}
}
