package template

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveViaIndex(t *testing.T) {
	tree := Builtin(KindConfirm)

	ok, err := tree.Resolve(PartButtonOK)
	require.NoError(t, err)
	require.Equal(t, NodeButton, ok.Type)
	require.Equal(t, "Yes", ok.Text)
}

func TestResolveFallbackWalk(t *testing.T) {
	// A tree whose index was never built exercises the BFS path.
	root := &Node{Type: NodePanel, Children: []*Node{
		{Type: NodePanel, Children: []*Node{
			{Type: NodeButton, Name: "deep_button"},
		}},
		{Type: NodeText, Name: "shallow_text"},
	}}

	n, err := ResolveIn(root, "deep_button")
	require.NoError(t, err)
	require.Equal(t, NodeButton, n.Type)
}

func TestResolveBreadthFirstOrder(t *testing.T) {
	// Two nodes share a name; BFS must return the shallower one.
	shallow := &Node{Type: NodeText, Name: "dup"}
	deep := &Node{Type: NodeButton, Name: "dup"}
	root := &Node{Type: NodePanel, Children: []*Node{
		{Type: NodePanel, Children: []*Node{deep}},
		shallow,
	}}

	n, err := ResolveIn(root, "dup")
	require.NoError(t, err)
	require.Same(t, shallow, n)
}

func TestResolveNotFound(t *testing.T) {
	tree := Builtin(KindAlert)
	_, err := tree.Resolve("button_cancel")
	require.ErrorIs(t, err, ErrPartNotFound)

	_, err = tree.Resolve("")
	require.ErrorIs(t, err, ErrPartNotFound)
}

func TestResolveNilTree(t *testing.T) {
	var tree *Tree
	_, err := tree.Resolve("anything")
	require.ErrorIs(t, err, ErrPartNotFound)
}

func TestResolveBounded(t *testing.T) {
	// A pathologically wide tree must terminate in not-found instead of
	// walking forever.
	root := &Node{Type: NodePanel}
	for i := 0; i < maxResolveVisits+10; i++ {
		root.Children = append(root.Children, &Node{
			Type: NodeText,
			Name: fmt.Sprintf("n%d", i),
		})
	}

	_, err := ResolveIn(root, fmt.Sprintf("n%d", maxResolveVisits+5))
	require.ErrorIs(t, err, ErrPartNotFound)
}
